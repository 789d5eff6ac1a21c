package syslocale

import (
	"strings"

	"github.com/napalu/syslocale/env"
)

// Environment variables consulted on POSIX-like systems, most specific
// first. LANGUAGE is the gettext priority list and may carry several
// locales separated by colons; the LC_* variables and LANG hold one.
const (
	envLanguage = "LANGUAGE"
	envLCAll    = "LC_ALL"
	envLCCType  = "LC_CTYPE"
	envLang     = "LANG"
)

// readEnvLocales applies the POSIX precedence order: LANGUAGE, then
// LC_ALL, LC_CTYPE and LANG. The first variable with a non-empty value
// wins; an empty variable is skipped, not treated as a result.
func readEnvLocales(r env.Resolver) []string {
	if list := r.Get(envLanguage); list != "" {
		var locales []string
		for _, entry := range strings.Split(list, ":") {
			if entry != "" {
				locales = append(locales, entry)
			}
		}
		if len(locales) > 0 {
			return locales
		}
	}

	for _, key := range []string{envLCAll, envLCCType, envLang} {
		if value := r.Get(key); value != "" {
			return []string{value}
		}
	}

	return nil
}
