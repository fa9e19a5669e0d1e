// Copyright 2026 The goidna Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package uts46

import (
	"unicode/utf8"

	"golang.org/x/text/transform"
)

const runeError = "�"

// Transformer implements the transform.Transformer interface.
type Transformer struct {
	t transform.Transformer
}

// Reset implements the transform.Transformer interface.
func (t Transformer) Reset() { t.t.Reset() }

// Transform implements the transform.Transformer interface.
func (t Transformer) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	return t.t.Transform(dst, src, atEOF)
}

// Bytes returns a new byte slice with the result of applying t to b.
func (t Transformer) Bytes(b []byte) []byte {
	b, _, _ = transform.Bytes(t, b)
	return b
}

// String returns a string with the result of applying t to s.
func (t Transformer) String(s string) string {
	s, _, _ = transform.String(t, s)
	return s
}

// Map returns a Transformer that rewrites UTF-8 text to its UTS #46
// mapped form. Bytes that do not form a valid UTF-8 encoding are treated
// as disallowed code points.
func Map(ignoredAsErrors bool) Transformer {
	return Transformer{mapTransform{ignoredAsErrors: ignoredAsErrors}}
}

type mapTransform struct {
	transform.NopResetter
	ignoredAsErrors bool
}

func (t mapTransform) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		r, size := utf8.DecodeRune(src[nSrc:])
		if size == 1 && r == utf8.RuneError && !atEOF && !utf8.FullRune(src[nSrc:]) {
			return nDst, nSrc, transform.ErrShortSrc
		}
		passThrough := false
		var out string
		if r == '.' || r == '-' || '0' <= r && r <= '9' || 'a' <= r && r <= 'z' {
			passThrough = true
		} else {
			e := findMapping(r)
			switch Category(e.cat) {
			case Valid, Deviation, DisallowedSTD3Valid, DisallowedIdna2008:
				passThrough = true
			case Ignored:
				if t.ignoredAsErrors {
					out = runeError
				}
			case Mapped, DisallowedSTD3Mapped:
				out = e.text()
			default: // Disallowed; also reached for invalid bytes.
				out = runeError
			}
		}
		if passThrough {
			if nDst+size > len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			nDst += copy(dst[nDst:], src[nSrc:nSrc+size])
		} else if out != "" {
			if nDst+len(out) > len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			nDst += copy(dst[nDst:], out)
		}
		nSrc += size
	}
	return nDst, nSrc, nil
}
