// Copyright 2026 The goidna Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ucd provides a parser for the line-oriented, semicolon-
// separated files of the Unicode Character Database and of the other
// Unicode data areas that share the format, such as IdnaMappingTable.txt.
//
// A data line has the form
//
//	0620..063F    ; valid     # comment
//
// where the first field is a code point or an inclusive code point range
// and subsequent fields are property values.
package ucd

import (
	"bufio"
	"io"
	"log"
	"strconv"
	"strings"
)

// Parse calls f on each data line of r. It is a convenience wrapper
// around New for callers that need no options.
func Parse(r io.ReadCloser, f func(p *Parser)) {
	defer r.Close()
	p := New(r)
	for p.Next() {
		f(p)
	}
	if err := p.Err(); err != nil {
		log.Fatal(err)
	}
}

// An Option configures a Parser.
type Option func(p *Parser)

// CommentHandler installs a callback invoked for every full-line comment,
// with the leading "#" and surrounding space removed.
func CommentHandler(f func(s string)) Option {
	return func(p *Parser) { p.commentHandler = f }
}

// A Parser parses one data line at a time.
type Parser struct {
	scanner        *bufio.Scanner
	fields         []string
	comment        string
	err            error
	commentHandler func(s string)
}

// New returns a Parser reading from r.
func New(r io.Reader, o ...Option) *Parser {
	p := &Parser{scanner: bufio.NewScanner(r)}
	for _, f := range o {
		f(p)
	}
	return p
}

// Next advances to the next data line. It returns false when the input
// is exhausted or a read error occurred.
func (p *Parser) Next() bool {
	for p.scanner.Scan() {
		line := p.scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			c := strings.TrimSpace(line[i+1:])
			line = line[:i]
			if strings.TrimSpace(line) == "" {
				if p.commentHandler != nil && c != "" {
					p.commentHandler(c)
				}
				continue
			}
			p.comment = c
		} else {
			p.comment = ""
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		p.fields = strings.Split(line, ";")
		for i, f := range p.fields {
			p.fields[i] = strings.TrimSpace(f)
		}
		return true
	}
	p.err = p.scanner.Err()
	return false
}

// Err returns the first read error encountered.
func (p *Parser) Err() error { return p.err }

// Comment returns the trailing comment of the current line, if any.
func (p *Parser) Comment() string { return p.comment }

// String returns field i of the current line, or "" if the field does
// not exist.
func (p *Parser) String(i int) string {
	if i >= len(p.fields) {
		return ""
	}
	return p.fields[i]
}

// Rune returns field i as a single code point. For field 0 of a range
// line it returns the first code point of the range.
func (p *Parser) Rune(i int) rune {
	first, _ := p.Range(i)
	return first
}

// Range returns field i as an inclusive code point range. A field
// holding a single code point yields an identical first and last.
func (p *Parser) Range(i int) (first, last rune) {
	f := p.String(i)
	if j := strings.Index(f, ".."); j >= 0 {
		return p.parseRune(f[:j]), p.parseRune(f[j+2:])
	}
	r := p.parseRune(f)
	return r, r
}

// Runes returns field i as a sequence of code points, such as the
// replacement text of a mapped entry.
func (p *Parser) Runes(i int) (runes []rune) {
	for _, f := range strings.Fields(p.String(i)) {
		runes = append(runes, p.parseRune(f))
	}
	return runes
}

func (p *Parser) parseRune(s string) rune {
	x, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		log.Fatalf("ucd: bad rune %q: %v", s, err)
	}
	return rune(x)
}
