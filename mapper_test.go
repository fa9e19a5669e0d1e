// Copyright 2026 The goidna Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package uts46

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drain(t *testing.T, m *Mapper) string {
	t.Helper()
	var b strings.Builder
	for {
		r, size, err := m.ReadRune()
		if err == io.EOF {
			return b.String()
		}
		require.NoError(t, err)
		require.Equal(t, len(string(r)), size, "ReadRune size for %U", r)
		b.WriteRune(r)
	}
}

func TestMapperEmpty(t *testing.T) {
	m := NewMapper(strings.NewReader(""), false)
	assert.Equal(t, "", drain(t, m))

	_, _, err := m.ReadRune()
	assert.Equal(t, io.EOF, err)
}

func TestMapperFastPath(t *testing.T) {
	const s = "a.example-1"
	assert.Equal(t, s, MapString(s, false))
	assert.Equal(t, s, MapString(s, true))
}

func TestMapperCaseFold(t *testing.T) {
	assert.Equal(t, "a.example-1", MapString("a.EXAMPLE-1", false))
	assert.Equal(t, "a.example-1", MapString("A.Example-1", true))
}

func TestMapperIdempotent(t *testing.T) {
	for _, s := range []string{
		"a.EXAMPLE-1",
		"BÜCHER.example",
		"ΕΛΛΑΣ.example",
		"БЛОГ.example",
		"weiß.example",
	} {
		once := MapString(s, false)
		assert.Equal(t, once, MapString(once, false), "input %q", s)
	}
}

func TestMapperIgnored(t *testing.T) {
	// U+00AD SOFT HYPHEN is ignored: dropped by default, an error
	// marker when ignored code points are reported.
	assert.Equal(t, "ab", MapString("a\u00adb", false))
	assert.Equal(t, "a\ufffdb", MapString("a\u00adb", true))
}

func TestMapperDisallowed(t *testing.T) {
	// Exactly one U+FFFD regardless of the ignored-as-errors setting.
	assert.Equal(t, "a\ufffdb", MapString("a\u0080b", false))
	assert.Equal(t, "a\ufffdb", MapString("a\u0080b", true))
}

func TestMapperDeviation(t *testing.T) {
	// Deviation code points pass through unchanged; transitional
	// remapping is a lookup-level concern.
	assert.Equal(t, "weiß", MapString("weiß", false))
	assert.Equal(t, "a\u200cb", MapString("a\u200cb", false))
}

func TestMapperReplacementOrder(t *testing.T) {
	// A multi-character replacement is drained in order before the
	// next input code point is consumed.
	m := NewMapper(strings.NewReader("℡z"), false)
	var got []rune
	for {
		r, _, err := m.ReadRune()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		got = append(got, r)
	}
	assert.Equal(t, []rune{'t', 'e', 'l', 'z'}, got)
}

func TestMapperMapped(t *testing.T) {
	tests := []struct{ in, want string }{
		{"Über", "über"},
		{"pĀq", "pāq"},
		{"Ḁ", "ḁ"},
		{"ẞ", "ß"},
		{"Kelvin", "kelvin"},
		{"x™", "xtm"},
		{"ＡＢＣ", "abc"},
		{"０１", "01"},
		{"blog。example", "blog.example"},
		{"½", "1⁄2"},
		{"БЛОГ。пример", "блог.пример"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, MapString(tc.in, false), "input %+q", tc.in)
	}
}

func TestMapperLazy(t *testing.T) {
	// The source is consumed one code point at a time; nothing is read
	// past what the output requires.
	src := strings.NewReader("ABC")
	m := NewMapper(src, false)
	r, _, err := m.ReadRune()
	require.NoError(t, err)
	assert.Equal(t, 'a', r)
	assert.Equal(t, 2, src.Len())
}
