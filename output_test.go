package scsstypes

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetermineOutputFormat(t *testing.T) {
	tests := []struct {
		flag  string
		quiet bool
		want  OutputFormat
	}{
		{"", false, OutputText},
		{"text", false, OutputText},
		{"json", false, OutputJSON},
		{"json", true, OutputJSON},
		{"", true, OutputNone},
		{"text", true, OutputNone},
		{"bogus", false, OutputText},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DetermineOutputFormat(tt.flag, tt.quiet), "flag=%q quiet=%v", tt.flag, tt.quiet)
	}
}

func TestWriteSummary_Text(t *testing.T) {
	var buf bytes.Buffer
	summary := Summary{Files: 3, Written: []string{"a", "b"}, Skipped: []string{"c"}}

	require.NoError(t, WriteSummary(&buf, summary, nil, OutputText, "dev"))
	assert.Equal(t, "3 files: 2 written, 0 removed, 1 skipped, 0 failed, 0 orphans removed\n", buf.String())
}

func TestWriteSummary_JSON(t *testing.T) {
	var buf bytes.Buffer
	summary := Summary{Files: 1, Written: []string{"a.module.scss.d.ts"}, Duration: 1500 * time.Millisecond}

	require.NoError(t, WriteSummary(&buf, summary, errors.New("boom"), OutputJSON, "1.2.3"))

	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "1.2.3", got["version"])
	assert.Equal(t, float64(1500), got["duration_ms"])
	assert.Equal(t, "boom", got["error"])
	assert.Equal(t, []any{}, got["orphans"])
	assert.Equal(t, []any{}, got["failed"])
}

func TestWriteSummary_None(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSummary(&buf, Summary{Files: 1}, nil, OutputNone, ""))
	assert.Empty(t, buf.String())
}
