// Package syslocale reports the user's preferred locale as a BCP-47
// language tag, such as "en-US".
//
// The platform backend is selected at build time. Supported targets:
//
//	Linux, BSD and other Unix variants - locale environment variables
//	macOS and iOS                      - NSLocale preferred languages
//	Windows                            - user default locale name
//	js/wasm                            - navigator language negotiation
//
// On every other target the library builds and always reports absence.
// There is no error channel: any failure to determine a locale, on any
// platform, collapses to the "not found" result and the caller picks
// its own default:
//
//	locale, ok := syslocale.GetLocale()
//	if !ok {
//		locale = "en-US"
//	}
package syslocale

import (
	"golang.org/x/text/language"

	"github.com/napalu/syslocale/env"
)

// lookupSystemLocales points at the platform backend. It is a variable
// so tests can substitute candidate lists without touching OS state.
var lookupSystemLocales = lookupLocales

// GetLocale returns the user's primary preferred locale as a normalized
// BCP-47 tag. The reported boolean is false when no locale preference
// could be determined; the returned string is never empty and never
// contains an underscore when the boolean is true.
func GetLocale() (string, bool) {
	locales := GetLocales()
	if len(locales) == 0 {
		return "", false
	}
	return locales[0], true
}

// GetLocales returns every locale the user prefers, most preferred
// first, each normalized to BCP-47 form. Platforms that expose a single
// preference yield at most one entry. The slice is empty when nothing
// could be determined.
func GetLocales() []string {
	raw := lookupSystemLocales(env.DefaultResolver{})

	var locales []string
	seen := make(map[string]struct{}, len(raw))
	for _, candidate := range raw {
		tag, ok := NormalizeLocaleString(candidate)
		if !ok {
			continue
		}
		if _, dup := seen[tag]; dup {
			continue
		}
		seen[tag] = struct{}{}
		locales = append(locales, tag)
	}
	return locales
}

// GetLanguageTag returns the primary preferred locale as a parsed
// language.Tag for callers that feed the result into golang.org/x/text
// based i18n machinery. Absence and unparseable platform strings both
// report (language.Und, false).
func GetLanguageTag() (language.Tag, bool) {
	locale, ok := GetLocale()
	if !ok {
		return language.Und, false
	}

	tag, err := language.Parse(locale)
	if err != nil {
		return language.Und, false
	}
	return tag, true
}
