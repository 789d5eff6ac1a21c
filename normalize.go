package syslocale

import "strings"

// NormalizeLocaleString converts a platform locale string into a
// well-formed BCP-47 language tag. It is designed to clean up locale
// strings commonly found in environment variables (e.g., "en_US.UTF-8")
// and produce a canonical representation (e.g., "en-US").
//
// The rules applied, in order: any codeset suffix introduced by "." is
// dropped, any modifier suffix introduced by "@" is dropped, and the
// Unix separator "_" is replaced with the BCP-47 separator "-". Casing
// is left exactly as the platform supplied it. The reported boolean is
// false when nothing remains after cleanup.
//
// Normalization is idempotent: an already normalized tag comes back
// unchanged.
func NormalizeLocaleString(raw string) (string, bool) {
	tag := raw
	if idx := strings.IndexByte(tag, '.'); idx != -1 {
		tag = tag[:idx]
	}
	if idx := strings.IndexByte(tag, '@'); idx != -1 {
		tag = tag[:idx]
	}
	tag = strings.ReplaceAll(tag, "_", "-")

	if tag == "" {
		return "", false
	}
	return tag, true
}
