//go:build darwin && !cgo

package syslocale

import (
	"os/exec"
	"strings"

	"github.com/napalu/syslocale/env"
)

// lookupLocales handles darwin builds without cgo, where NSLocale is
// out of reach. The environment is checked first (terminal sessions
// usually carry LANG), then the user defaults database is read through
// the defaults tool.
func lookupLocales(r env.Resolver) []string {
	if locales := readEnvLocales(r); len(locales) > 0 {
		return locales
	}
	return readAppleLanguages()
}

// readAppleLanguages reads the global AppleLanguages preference. The
// output is a plist array, one entry per line:
//
//	(
//	    "en-US",
//	    ja
//	)
func readAppleLanguages() []string {
	out, err := exec.Command("defaults", "read", "-g", "AppleLanguages").Output()
	if err != nil {
		return nil
	}

	var locales []string
	for _, line := range strings.Split(string(out), "\n") {
		entry := strings.Trim(strings.TrimSpace(line), `",`)
		if entry == "" || entry == "(" || entry == ")" {
			continue
		}
		locales = append(locales, entry)
	}
	return locales
}
