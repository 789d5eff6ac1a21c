//go:build darwin && cgo

package syslocale

/*
#cgo CFLAGS: -x objective-c
#cgo LDFLAGS: -framework Foundation
#include <stdlib.h>
#include <string.h>
#import <Foundation/Foundation.h>

static char* CopyPreferredLanguages() {
	@autoreleasepool {
		NSArray<NSString *> *languages = [NSLocale preferredLanguages];
		if (languages == nil || [languages count] == 0) {
			return NULL;
		}

		NSString *joined = [languages componentsJoinedByString:@"\n"];
		const char *utf8 = [joined UTF8String];
		if (utf8 == NULL) {
			return NULL;
		}
		return strdup(utf8);
	}
}
*/
import "C"

import (
	"strings"
	"unsafe"

	"github.com/napalu/syslocale/env"
)

// lookupLocales returns the languages from the user's Language &
// Region preferences in their configured order, e.g. ["ja-JP", "en-US"].
func lookupLocales(_ env.Resolver) []string {
	joined := C.CopyPreferredLanguages()
	if joined == nil {
		return nil
	}
	defer C.free(unsafe.Pointer(joined))

	var locales []string
	for _, entry := range strings.Split(C.GoString(joined), "\n") {
		if entry != "" {
			locales = append(locales, entry)
		}
	}
	return locales
}
