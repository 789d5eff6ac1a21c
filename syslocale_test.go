package syslocale

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/napalu/syslocale/env"
)

// stubLocales replaces the platform backend with a fixed candidate list
// for the duration of the test.
func stubLocales(t *testing.T, raw []string) {
	t.Helper()
	original := lookupSystemLocales
	lookupSystemLocales = func(env.Resolver) []string {
		return raw
	}
	t.Cleanup(func() {
		lookupSystemLocales = original
	})
}

func TestGetLocale(t *testing.T) {
	tests := []struct {
		name     string
		raw      []string
		expected string
		ok       bool
	}{
		{
			name:     "no candidates",
			raw:      nil,
			expected: "",
			ok:       false,
		},
		{
			name:     "single candidate is normalized",
			raw:      []string{"en_US.UTF-8"},
			expected: "en-US",
			ok:       true,
		},
		{
			name:     "first candidate wins",
			raw:      []string{"ja-JP", "en-US"},
			expected: "ja-JP",
			ok:       true,
		},
		{
			name:     "unusable candidates are skipped",
			raw:      []string{"", ".UTF-8", "fr_FR@euro"},
			expected: "fr-FR",
			ok:       true,
		},
		{
			name:     "all candidates unusable",
			raw:      []string{"", "@euro"},
			expected: "",
			ok:       false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stubLocales(t, tt.raw)

			locale, ok := GetLocale()
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, locale)
		})
	}
}

func TestGetLocalesOrderAndDeduplication(t *testing.T) {
	// "fr_FR.UTF-8" and "fr-FR" normalize to the same tag; only the
	// first occurrence survives and order is otherwise preserved.
	stubLocales(t, []string{"fr_FR.UTF-8", "fr-FR", "en", "de_DE"})

	assert.Equal(t, []string{"fr-FR", "en", "de-DE"}, GetLocales())
}

func TestGetLocaleInvariants(t *testing.T) {
	// Whatever the host reports, a present locale is non-empty and
	// carries no underscore separators.
	locale, ok := GetLocale()
	if ok {
		require.NotEmpty(t, locale)
		assert.NotContains(t, locale, "_")
	} else {
		assert.Empty(t, locale)
	}
}

func TestGetLanguageTag(t *testing.T) {
	stubLocales(t, []string{"de_DE.UTF-8"})

	tag, ok := GetLanguageTag()
	require.True(t, ok)
	assert.Equal(t, language.MustParse("de-DE"), tag)
}

func TestGetLanguageTagUnparseable(t *testing.T) {
	stubLocales(t, []string{"!!"})

	tag, ok := GetLanguageTag()
	assert.False(t, ok)
	assert.Equal(t, language.Und, tag)
}

func TestGetLanguageTagAbsent(t *testing.T) {
	stubLocales(t, nil)

	tag, ok := GetLanguageTag()
	assert.False(t, ok)
	assert.Equal(t, language.Und, tag)
}

func TestGetLocaleConcurrent(t *testing.T) {
	stubLocales(t, []string{"en_US.UTF-8"})

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			locale, ok := GetLocale()
			assert.True(t, ok)
			assert.Equal(t, "en-US", locale)
		}()
	}
	wg.Wait()
}
