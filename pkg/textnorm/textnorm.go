// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package textnorm canonicalizes user-supplied labels before they are
// validated, compared or stored.
//
// # Usage
//
// Two names that render identically ("café" typed with a precomposed é or
// with e + combining acute) must collide on the (owner, name) unique key, so
// every name goes through [Label] first.
package textnorm

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Label trims surrounding whitespace and converts s to Unicode NFC.
func Label(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}
