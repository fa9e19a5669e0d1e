// Copyright 2026 The goidna Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package uts46

import (
	"testing"
	"unicode"
)

func TestLookupFastPathChars(t *testing.T) {
	for _, r := range ".-0123456789abcdefghijklmnopqrstuvwxyz" {
		if m := Lookup(r); m.Category != Valid {
			t.Errorf("Lookup(%q).Category = %v; want Valid", r, m.Category)
		}
	}
}

func TestLookup(t *testing.T) {
	tests := []struct {
		r    rune
		cat  Category
		text string
	}{
		{'A', Mapped, "a"},
		{'N', Mapped, "n"},
		{'Z', Mapped, "z"},
		{0x00C9, Mapped, "é"},
		{0x00D8, Mapped, "ø"},
		{0x00DF, Deviation, "ss"},
		{0x0100, Mapped, "ā"},
		{0x1E00, Mapped, "ḁ"},
		{0x1E9E, Mapped, "ß"},
		{0x0386, Mapped, "ά"},
		{0x0391, Mapped, "α"},
		{0x03A3, Mapped, "σ"},
		{0x03A9, Mapped, "ω"},
		{0x03C2, Deviation, "σ"},
		{0x0416, Mapped, "ж"},
		{0x200C, Deviation, ""},
		{0x200D, Deviation, ""},
		{0x00AD, Ignored, ""},
		{0x200B, Ignored, ""},
		{0xFE0F, Ignored, ""},
		{0x0080, Disallowed, ""},
		{0x03A2, Disallowed, ""},
		{0x10FFFF, Disallowed, ""},
		{'_', DisallowedSTD3Valid, ""},
		{'@', DisallowedSTD3Valid, ""},
		{0x00A0, DisallowedSTD3Mapped, " "},
		{0xFF01, DisallowedSTD3Mapped, "!"},
		{0x00A9, DisallowedIdna2008, ""},
		{0x00B5, Mapped, "μ"},
		{0x2121, Mapped, "tel"},
		{0x212A, Mapped, "k"},
		{0x212B, Mapped, "å"},
		{0x3002, Mapped, "."},
		{0x4E2D, Valid, ""},
		{0xFF0D, Mapped, "-"},
		{0xFF0E, Mapped, "."},
		{0xFF21, Mapped, "a"},
		{0xFF41, Mapped, "a"},
		{0xFF5A, Mapped, "z"},
	}
	for _, tc := range tests {
		m := Lookup(tc.r)
		if m.Category != tc.cat || m.Text != tc.text {
			t.Errorf("Lookup(%U) = {%v %q}; want {%v %q}",
				tc.r, m.Category, m.Text, tc.cat, tc.text)
		}
	}
}

func TestSimplify(t *testing.T) {
	lenient := &Profile{}
	tests := []struct {
		p    *Profile
		cat  Category
		want Category
	}{
		{NonTransitional, Valid, Valid},
		{NonTransitional, Mapped, Mapped},
		{NonTransitional, Ignored, Ignored},
		{NonTransitional, Disallowed, Disallowed},
		{NonTransitional, Deviation, Valid},
		{Transitional, Deviation, Mapped},
		{NonTransitional, DisallowedSTD3Valid, Disallowed},
		{NonTransitional, DisallowedSTD3Mapped, Disallowed},
		{lenient, DisallowedSTD3Valid, Valid},
		{lenient, DisallowedSTD3Mapped, Mapped},
		{NonTransitional, DisallowedIdna2008, Valid},
	}
	for _, tc := range tests {
		if got := tc.p.Simplify(tc.cat); got != tc.want {
			t.Errorf("Simplify(%v) with %+v = %v; want %v", tc.cat, tc.p, got, tc.want)
		}
	}
}

// TestRangeIndex checks the structural invariants of the generated
// range index: it starts at U+0000 and its bases increase strictly.
func TestRangeIndex(t *testing.T) {
	if mappingRanges[0].base != 0 {
		t.Fatalf("first range starts at %U; want U+0000", mappingRanges[0].base)
	}
	for i := 1; i < len(mappingRanges); i++ {
		if mappingRanges[i].base <= mappingRanges[i-1].base {
			t.Fatalf("range %d: base %U not after %U",
				i, mappingRanges[i].base, mappingRanges[i-1].base)
		}
	}
}

// TestLookupTotal looks up every code point. Lookup must return a
// defined disposition everywhere, and the replacement text of a mapped
// code point must itself survive mapping unchanged.
func TestLookupTotal(t *testing.T) {
	for r := rune(0); r <= unicode.MaxRune; r++ {
		m := Lookup(r)
		if m.Category < Valid || m.Category > DisallowedIdna2008 {
			t.Fatalf("Lookup(%U): undefined category %d", r, m.Category)
		}
		switch m.Category {
		case Mapped:
			// U+1E9E maps to the deviation U+00DF.
			for _, rr := range m.Text {
				switch c := Lookup(rr).Category; c {
				case Valid, DisallowedIdna2008, Deviation:
				default:
					t.Fatalf("Lookup(%U): replacement %U is %v", r, rr, c)
				}
			}
		case Deviation:
			for _, rr := range m.Text {
				switch c := Lookup(rr).Category; c {
				case Valid:
				default:
					t.Fatalf("Lookup(%U): replacement %U is %v", r, rr, c)
				}
			}
		case DisallowedSTD3Mapped:
			for _, rr := range m.Text {
				switch c := Lookup(rr).Category; c {
				case Valid, DisallowedSTD3Valid, DisallowedIdna2008:
				default:
					t.Fatalf("Lookup(%U): replacement %U is %v", r, rr, c)
				}
			}
		default:
			if m.Text != "" {
				t.Fatalf("Lookup(%U): %v carries text %q", r, m.Category, m.Text)
			}
		}
	}
}
