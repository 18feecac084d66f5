// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/scribe/internal/platform/middleware"
)

/*
TestRealIP prefers proxy headers over the socket address.
*/
func TestRealIP(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		want    string
	}{
		{"real_ip", map[string]string{"X-Real-IP": "10.0.0.1"}, "10.0.0.1"},
		{"forwarded_first_hop", map[string]string{"X-Forwarded-For": "10.0.0.2, 10.0.0.3"}, "10.0.0.2"},
		{"remote_addr", nil, "192.0.2.1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest(http.MethodGet, "/", nil)
			for key, value := range tt.headers {
				request.Header.Set(key, value)
			}
			assert.Equal(t, tt.want, middleware.RealIP(request))
		})
	}
}
