//go:build js && wasm

package syslocale

import (
	"syscall/js"

	"github.com/napalu/syslocale/env"
)

// lookupLocales reads the embedder's language negotiation result. The
// navigator object is read from the global scope directly so the same
// code works in both window and worker contexts.
func lookupLocales(_ env.Resolver) []string {
	navigator := js.Global().Get("navigator")
	if navigator.Type() != js.TypeObject {
		return nil
	}

	if languages := navigator.Get("languages"); languages.Type() == js.TypeObject {
		n := languages.Length()
		locales := make([]string, 0, n)
		for i := 0; i < n; i++ {
			if entry := languages.Index(i); entry.Type() == js.TypeString {
				locales = append(locales, entry.String())
			}
		}
		if len(locales) > 0 {
			return locales
		}
	}

	if lang := navigator.Get("language"); lang.Type() == js.TypeString {
		return []string{lang.String()}
	}
	return nil
}
