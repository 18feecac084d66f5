// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package bootstrap_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/scribe/internal/platform/bootstrap"
)

/*
TestNewLogger tags every entry with app and service and honours the debug flag.
*/
func TestNewLogger(t *testing.T) {
	var buffer bytes.Buffer

	logger := bootstrap.NewLogger(&buffer, "blog-service", false)
	logger.Debug("hidden")
	logger.Info("shown")

	lines := bytes.Split(bytes.TrimSpace(buffer.Bytes()), []byte("\n"))
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &entry))
	assert.Equal(t, "shown", entry["msg"])
	assert.Equal(t, "scribe", entry["app"])
	assert.Equal(t, "blog-service", entry["service"])

	buffer.Reset()
	bootstrap.NewLogger(&buffer, "blog-service", true).Debug("visible")
	assert.Contains(t, buffer.String(), `"msg":"visible"`)
}
