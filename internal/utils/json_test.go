package utils

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	SGF string `json:"sgf"`
}

func TestDecodeJSONRequest(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"sgf":"(;B[aa])"}`))
	var p payload
	require.NoError(t, DecodeJSONRequest(r, &p, 1024))
	assert.Equal(t, "(;B[aa])", p.SGF)
}

func TestDecodeJSONRequestErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		max  int64
	}{
		{name: "unknown field", body: `{"sgf":"x","extra":1}`, max: 1024},
		{name: "malformed", body: `{"sgf":`, max: 1024},
		{name: "too large", body: `{"sgf":"0123456789"}`, max: 8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			var p payload
			assert.Error(t, DecodeJSONRequest(r, &p, tt.max))
		})
	}
}
