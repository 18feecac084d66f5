// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package pagination provides shared types and helpers for API list endpoints.
//
// # Overview
//
// It standardizes how page-based navigation is requested via query parameters
// and how a page of results is delivered to clients:
//
//	{"total": 12, "pages": 3, "currentPage": 2, "data": [...]}
package pagination

import (
	"math"
	"net/http"
	"strconv"
)

const (
	// DefaultLimit is the number of items per page if not specified.
	DefaultLimit = 10
	// MaxLimit is the upper bound for items per page to prevent system abuse.
	MaxLimit = 100
	// DefaultPage is the starting page (1-indexed).
	DefaultPage = 1
	// MaxPage is the largest page whose offset still fits in an int at [MaxLimit].
	MaxPage = math.MaxInt / MaxLimit
)

// Params holds the parsed page and limit from a request's query string.
type Params struct {
	Page  int
	Limit int
}

// Offset returns the SQL OFFSET value derived from [Page] and [Limit].
func (p Params) Offset() int {
	if p.Page <= 1 {
		return 0
	}
	return (p.Page - 1) * p.Limit
}

// Page is one page of a list response.
type Page[T any] struct {
	Total       int `json:"total"`
	Pages       int `json:"pages"`
	CurrentPage int `json:"currentPage"`
	Data        []T `json:"data"`
}

// NewPage builds a page, computing the page count from total and limit.
//
// Data is never nil so that an empty page encodes as [] rather than null.
func NewPage[T any](params Params, total int, data []T) Page[T] {
	if data == nil {
		data = []T{}
	}

	return Page[T]{
		Total:       total,
		Pages:       TotalPages(total, params.Limit),
		CurrentPage: params.Page,
		Data:        data,
	}
}

// TotalPages returns ceil(total / limit), or 0 when limit is not positive.
func TotalPages(total, limit int) int {
	if limit <= 0 {
		return 0
	}
	return (total + limit - 1) / limit
}

// FromRequest parses "page" and "limit" query parameters from an HTTP request.
//
// # Clamping
//
// Missing, invalid or non-positive values fall back to [DefaultPage] and
// [DefaultLimit]. Limits above [MaxLimit] are capped at [MaxLimit] and pages
// above [MaxPage] at [MaxPage], so [Params.Offset] never overflows.
func FromRequest(r *http.Request) Params {
	page := parseIntParam(r, "page", DefaultPage)
	limit := parseIntParam(r, "limit", DefaultLimit)

	if page < 1 {
		page = DefaultPage
	}
	if page > MaxPage {
		page = MaxPage
	}

	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	return Params{Page: page, Limit: limit}
}

// parseIntParam parses a single integer query parameter with a fallback default.
func parseIntParam(r *http.Request, key string, defaultVal int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return defaultVal
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return defaultVal
	}

	return n
}
