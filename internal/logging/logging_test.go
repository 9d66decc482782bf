package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tcs := []struct {
		in   string
		want int
		err  bool
	}{
		{"", INFO, false},
		{"info", INFO, false},
		{"DEBUG", DEBUG, false},
		{" trace ", TRACE, false},
		{"loud", INFO, true},
	}
	for _, tc := range tcs {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseLevel(tc.in)
			if tc.err {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestNewLogger(t *testing.T) {
	log, err := NewLogger(DEBUG, false)
	require.NoError(t, err)
	assert.True(t, log.V(DEBUG).Enabled())
	assert.False(t, log.V(TRACE).Enabled())

	log, err = NewLogger(-3, true)
	require.NoError(t, err)
	assert.True(t, log.V(INFO).Enabled())
	assert.False(t, log.V(DEBUG).Enabled())
}
