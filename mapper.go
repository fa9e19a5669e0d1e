// Copyright 2026 The goidna Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package uts46

import (
	"io"
	"strings"
	"unicode/utf8"
)

// A Mapper lazily rewrites a stream of code points into its UTS #46
// mapped form. It implements io.RuneReader: each call to ReadRune yields
// the next mapped code point, pulling from the source only as needed.
//
// Invalid input is reported in band: a disallowed code point, and an
// ignored one when ignoredAsErrors is set, each produce a single U+FFFD
// in the output. There is no separate error channel.
//
// A Mapper holds iteration state and is for use by a single consumer;
// it is not safe for concurrent use.
type Mapper struct {
	src             io.RuneReader
	pending         string // unread tail of the current replacement text
	ignoredAsErrors bool
}

// NewMapper returns a Mapper reading from src. If ignoredAsErrors is set,
// code points with the Ignored disposition produce U+FFFD instead of
// being dropped.
func NewMapper(src io.RuneReader, ignoredAsErrors bool) *Mapper {
	return &Mapper{src: src, ignoredAsErrors: ignoredAsErrors}
}

// ReadRune returns the next mapped code point and the length of its
// UTF-8 encoding. It returns io.EOF once the source is exhausted and no
// replacement text remains pending, and propagates any other source
// error as is.
func (m *Mapper) ReadRune() (rune, int, error) {
	for {
		if m.pending != "" {
			r, size := utf8.DecodeRuneInString(m.pending)
			m.pending = m.pending[size:]
			return r, size, nil
		}
		r, size, err := m.src.ReadRune()
		if err != nil {
			return 0, 0, err
		}
		// Fast path for the characters that dominate real-world domain
		// labels. These are all valid, so skipping the table lookup
		// does not change the result.
		if r == '.' || r == '-' || '0' <= r && r <= '9' || 'a' <= r && r <= 'z' {
			return r, size, nil
		}
		e := findMapping(r)
		switch Category(e.cat) {
		case Valid, Deviation, DisallowedSTD3Valid, DisallowedIdna2008:
			return r, size, nil
		case Ignored:
			if m.ignoredAsErrors {
				return utf8.RuneError, 3, nil
			}
			// Dropped; pull the next code point.
		case Mapped, DisallowedSTD3Mapped:
			// The replacement may hold zero, one or several code
			// points; it is drained before more input is consumed.
			m.pending = e.text()
		default: // Disallowed
			return utf8.RuneError, 3, nil
		}
	}
}

// MapString returns the mapped form of s.
func MapString(s string, ignoredAsErrors bool) string {
	var b strings.Builder
	b.Grow(len(s))
	m := NewMapper(strings.NewReader(s), ignoredAsErrors)
	for {
		r, _, err := m.ReadRune()
		if err != nil {
			return b.String()
		}
		b.WriteRune(r)
	}
}
