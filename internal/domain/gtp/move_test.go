package gtp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gonotation/internal/errors"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Move
	}{
		{name: "lower pass", in: "pass", want: Pass},
		{name: "mixed pass", in: "PaSs", want: Pass},
		{name: "corner", in: "A1", want: Coordinate('A', 1)},
		{name: "two digit row", in: "D16", want: Coordinate('D', 16)},
		{name: "lowercase letter", in: "j10", want: Coordinate('J', 10)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseErrors(t *testing.T) {
	_, err := Parse("")
	assert.ErrorIs(t, err, errors.ErrEmptyString)

	for _, bad := range []string{"I5", "Z", "D0", "D-1", "4D", "D256", "DD"} {
		_, err := Parse(bad)
		assert.ErrorIs(t, err, errors.ErrInvalidCoordinate, bad)
	}
}

func TestString(t *testing.T) {
	assert.Equal(t, "pass", Pass.String())
	assert.Equal(t, "Q4", Coordinate('Q', 4).String())

	for _, s := range []string{"A1", "T19", "pass", "J10"} {
		m, err := Parse(s)
		require.NoError(t, err)
		assert.Equal(t, s, m.String())
	}
}

func TestTextMarshal(t *testing.T) {
	var m Move
	require.NoError(t, m.UnmarshalText([]byte("k3")))
	assert.Equal(t, Coordinate('K', 3), m)
	text, err := m.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "K3", string(text))
}
