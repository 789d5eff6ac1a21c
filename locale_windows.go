//go:build windows

package syslocale

import (
	"unsafe"

	"golang.org/x/sys/windows"
	"golang.org/x/sys/windows/registry"

	"github.com/napalu/syslocale/env"
)

// localeNameMaxLength is LOCALE_NAME_MAX_LENGTH from the Windows SDK.
const localeNameMaxLength = 85

// lookupLocales tries the user default locale name, the UI language and
// finally the registry. The first method that produces a name wins.
func lookupLocales(_ env.Resolver) []string {
	if name := userDefaultLocaleName(); name != "" {
		return []string{name}
	}
	if name := uiLanguageLocaleName(); name != "" {
		return []string{name}
	}
	if name := registryLocaleName(); name != "" {
		return []string{name}
	}
	return nil
}

// userDefaultLocaleName calls GetUserDefaultLocaleName, which on Vista
// and later returns a name already in BCP-47 form (e.g. "en-US").
func userDefaultLocaleName() string {
	kernel32 := windows.NewLazySystemDLL("kernel32.dll")
	proc := kernel32.NewProc("GetUserDefaultLocaleName")
	if proc.Find() != nil {
		return ""
	}

	buf := make([]uint16, localeNameMaxLength)
	ret, _, _ := proc.Call(
		uintptr(unsafe.Pointer(&buf[0])),
		uintptr(len(buf)),
	)
	if ret == 0 {
		return ""
	}
	return windows.UTF16ToString(buf)
}

// uiLanguageLocaleName converts the LANGID reported by
// GetUserDefaultUILanguage into a locale name via LCIDToLocaleName.
// Both calls are guarded so pre-Vista systems fall through to the
// registry instead of failing.
func uiLanguageLocaleName() string {
	kernel32 := windows.NewLazySystemDLL("kernel32.dll")

	getUILanguage := kernel32.NewProc("GetUserDefaultUILanguage")
	if getUILanguage.Find() != nil {
		return ""
	}
	langID, _, _ := getUILanguage.Call()
	if langID == 0 {
		return ""
	}

	toLocaleName := kernel32.NewProc("LCIDToLocaleName")
	if toLocaleName.Find() != nil {
		return ""
	}

	// A LANGID with the default sort order is a valid LCID.
	buf := make([]uint16, localeNameMaxLength)
	ret, _, _ := toLocaleName.Call(
		uintptr(uint32(uint16(langID))),
		uintptr(unsafe.Pointer(&buf[0])),
		uintptr(len(buf)),
		0,
	)
	if ret == 0 {
		return ""
	}
	return windows.UTF16ToString(buf)
}

// registryLocaleName reads the LocaleName value from the current user's
// international settings as a last resort.
func registryLocaleName() string {
	k, err := registry.OpenKey(registry.CURRENT_USER,
		`Control Panel\International`, registry.QUERY_VALUE)
	if err != nil {
		return ""
	}
	defer k.Close()

	name, _, err := k.GetStringValue("LocaleName")
	if err != nil {
		return ""
	}
	return name
}
