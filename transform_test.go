// Copyright 2026 The goidna Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package uts46

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/transform"
)

func TestTransformerString(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"a.example-1", "a.example-1"},
		{"A.Example-1", "a.example-1"},
		{"x™", "xtm"},
		{"ＡＢＣ０１", "abc01"},
		{"blog。example", "blog.example"},
		{"a\u00adb", "ab"},
		{"a\u0080b", "a�b"},
	}
	m := Map(false)
	for _, tc := range tests {
		assert.Equal(t, tc.want, m.String(tc.in), "input %+q", tc.in)
		assert.Equal(t, tc.want, string(m.Bytes([]byte(tc.in))), "input %+q", tc.in)
	}
}

func TestTransformerIgnoredAsErrors(t *testing.T) {
	m := Map(true)
	assert.Equal(t, "a�b", m.String("a\u00adb"))
}

func TestTransformerInvalidUTF8(t *testing.T) {
	m := Map(false)
	assert.Equal(t, "a�b", string(m.Bytes([]byte{'a', 0xff, 'b'})))
}

func TestTransformerLongInput(t *testing.T) {
	// Force several internal buffer cycles through transform.String.
	in := strings.Repeat("Ω", 1000)
	want := strings.Repeat("ω", 1000)
	assert.Equal(t, want, Map(false).String(in))
}

func TestTransformShortDst(t *testing.T) {
	m := Map(false)
	dst := make([]byte, 2)
	nDst, nSrc, err := m.Transform(dst, []byte("ABC"), true)
	assert.Equal(t, 2, nDst)
	assert.Equal(t, 2, nSrc)
	assert.Equal(t, transform.ErrShortDst, err)
	assert.Equal(t, "ab", string(dst[:nDst]))
}

func TestTransformShortSrc(t *testing.T) {
	m := Map(false)
	dst := make([]byte, 16)

	// First byte of a two-byte encoding.
	nDst, nSrc, err := m.Transform(dst, []byte{0xce}, false)
	assert.Equal(t, 0, nDst)
	assert.Equal(t, 0, nSrc)
	assert.Equal(t, transform.ErrShortSrc, err)

	// At EOF the partial encoding is a disallowed code point.
	nDst, nSrc, err = m.Transform(dst, []byte{0xce}, true)
	assert.NoError(t, err)
	assert.Equal(t, 1, nSrc)
	assert.Equal(t, "�", string(dst[:nDst]))
}
