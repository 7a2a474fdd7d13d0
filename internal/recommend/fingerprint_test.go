// internal/recommend/fingerprint_test.go
package recommend

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

var hexPattern = regexp.MustCompile(`^[0-9a-f]{64}$`)

func TestFingerprint_LowercaseHex(t *testing.T) {
	fp := Fingerprint("recommend", []byte(`{"hallId":1}`))
	assert.Regexp(t, hexPattern, fp)
}

func TestFingerprint_Deterministic(t *testing.T) {
	text := "recommend"
	vars := []byte(`{"hallId":7,"prefs":{"veganOnly":true}}`)

	first := Fingerprint(text, vars)
	for i := 0; i < 50; i++ {
		assert.Equal(t, first, Fingerprint(text, vars))
	}
}

func TestFingerprint_SensitiveToEitherInput(t *testing.T) {
	base := Fingerprint("recommend", []byte(`{"hallId":1}`))

	tests := []struct {
		name string
		text string
		vars string
	}{
		{"different text", "halls", `{"hallId":1}`},
		{"different variables", "recommend", `{"hallId":2}`},
		{"whitespace in variables matters", "recommend", `{"hallId": 1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotEqual(t, base, Fingerprint(tt.text, []byte(tt.vars)))
		})
	}
}

func TestFingerprint_SeparatorPreventsAmbiguity(t *testing.T) {
	// "ab" + "c" and "a" + "bc" must not collide.
	assert.NotEqual(t,
		Fingerprint("ab", []byte("c")),
		Fingerprint("a", []byte("bc")))
}

func TestFingerprint_KnownVector(t *testing.T) {
	// sha256("recommend|{}")
	assert.Equal(t,
		"8b576327e91180ce0a60087c8db7508c014ed7d9e0e92e1e34798d50f44c6ca7",
		Fingerprint("recommend", []byte("{}")))
}

func TestCacheKey_Prefixed(t *testing.T) {
	fp := Fingerprint("recommend", []byte("{}"))
	key := CacheKey(fp)

	assert.True(t, strings.HasPrefix(key, KeyPrefix))
	assert.Equal(t, "rec:"+fp, key)
}
