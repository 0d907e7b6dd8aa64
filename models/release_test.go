package models

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRepo(t *testing.T) {
	r, err := ParseRepo("acme/tool")
	require.NoError(t, err)
	assert.Equal(t, Repo{Owner: "acme", Name: "tool"}, r)
	assert.Equal(t, "acme/tool", r.String())

	for _, bad := range []string{"", "acme", "acme/", "/tool", "acme/tool/extra"} {
		_, err := ParseRepo(bad)
		var usage *UsageError
		assert.True(t, errors.As(err, &usage), bad)
	}
}

func TestParseRateLimitResetTime(t *testing.T) {
	now := time.Unix(1700000000, 0)

	h := http.Header{}
	h.Set("X-RateLimit-Remaining", "0")
	h.Set("X-RateLimit-Reset", "1700000090")
	until, ok := ParseRateLimitResetTime(h, now)
	assert.True(t, ok)
	assert.Equal(t, 90*time.Second, until)

	h.Set("X-RateLimit-Reset", "1600000000")
	until, ok = ParseRateLimitResetTime(h, now)
	assert.True(t, ok)
	assert.Zero(t, until)

	h.Set("X-RateLimit-Remaining", "12")
	_, ok = ParseRateLimitResetTime(h, now)
	assert.False(t, ok)

	_, ok = ParseRateLimitResetTime(http.Header{}, now)
	assert.False(t, ok)

	h = http.Header{}
	h.Set("X-RateLimit-Remaining", "0")
	h.Set("X-RateLimit-Reset", "soon")
	_, ok = ParseRateLimitResetTime(h, now)
	assert.False(t, ok)
}
