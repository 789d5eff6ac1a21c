//go:build unix && !darwin

package syslocale

import "github.com/napalu/syslocale/env"

// lookupLocales reads the locale from the environment. The C library's
// global locale is deliberately not consulted: setlocale is not safe to
// call while other threads may be mutating the process-wide locale, and
// the environment carries the same information.
func lookupLocales(r env.Resolver) []string {
	return readEnvLocales(r)
}
