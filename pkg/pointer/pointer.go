// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package pointer provides small generic helpers for optional values.

Partial-update payloads decode absent JSON fields as nil pointers; these
helpers apply them without repeating nil checks.
*/
package pointer

// To returns a pointer to the provided value (e.g. pointer.To("title")).
func To[T any](v T) *T {
	return &v
}

// Fallback dereferences p, or returns fallback when p is nil.
func Fallback[T any](p *T, fallback T) T {
	if p == nil {
		return fallback
	}
	return *p
}
