// Cropwise - Crop Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cropwise

package logging

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// MaxLogValueLen bounds user-supplied strings written to the log.
const MaxLogValueLen = 2048

// SanitizeValue escapes control characters (0x00-0x1F, 0x7F) as \xNN so
// user input cannot forge log lines, and truncates to MaxLogValueLen runes.
func SanitizeValue(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	n := 0
	for _, r := range s {
		if n == MaxLogValueLen {
			b.WriteString("...")
			break
		}
		if r < 0x20 || r == 0x7F {
			fmt.Fprintf(&b, "\\x%02x", r)
		} else {
			b.WriteRune(r)
		}
		n++
	}
	return b.String()
}

// SanitizeEmail masks the local part of an email address.
// Example: "john.doe@example.com" -> "jo***@example.com"
func SanitizeEmail(email string) string {
	if email == "" {
		return ""
	}

	at := strings.LastIndex(email, "@")
	if at <= 0 {
		return "***"
	}

	local, domain := email[:at], email[at:]
	if utf8.RuneCountInString(local) <= 2 {
		return "***" + SanitizeValue(domain)
	}
	r1, s1 := utf8.DecodeRuneInString(local)
	r2, _ := utf8.DecodeRuneInString(local[s1:])
	return SanitizeValue(string([]rune{r1, r2})) + "***" + SanitizeValue(domain)
}
