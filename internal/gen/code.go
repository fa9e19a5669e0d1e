// Copyright 2026 The goidna Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gen

import (
	"bytes"
	"fmt"
	"hash"
	"hash/fnv"
	"io"
	"unicode"
	"unicode/utf8"
)

// CodeWriter is a utility for writing generated code. It tracks the size
// and a content hash of the emitted tables and separates written blocks
// with blank lines.
type CodeWriter struct {
	buf  bytes.Buffer
	Size int
	Hash hash.Hash32
}

// NewCodeWriter returns a new CodeWriter.
func NewCodeWriter() *CodeWriter {
	return &CodeWriter{Hash: fnv.New32()}
}

func (w *CodeWriter) Write(p []byte) (n int, err error) {
	return w.buf.Write(p)
}

// WriteGoFile appends a summary of the total table size and writes the
// buffer as a Go file with the given package name.
func (w *CodeWriter) WriteGoFile(filename, pkg string) {
	w.WriteComment("Total table size %d bytes (%dKiB); checksum: %X",
		w.Size, w.Size/1024, w.Hash.Sum32())
	WriteGoFile(filename, pkg, w.buf.Bytes())
	w.buf.Reset()
}

// WriteComment writes a comment block, prefixing each line with "//".
func (w *CodeWriter) WriteComment(comment string, args ...interface{}) {
	fmt.Fprintf(w, "\n\n// ")
	s := fmt.Sprintf(comment, args...)
	for i, line := range bytes.Split([]byte(s), []byte("\n")) {
		if i > 0 {
			fmt.Fprintf(w, "\n// ")
		}
		w.buf.Write(line)
	}
	fmt.Fprintf(w, "\n")
}

// WriteConst writes a string constant with the given name, rendered as a
// multi-line literal with non-printable characters escaped.
func (w *CodeWriter) WriteConst(name, s string) {
	w.Size += len(s)
	fmt.Fprintf(w, "\n\nconst %s = ", name)
	w.writeString(s)
	fmt.Fprintf(w, "\n")
}

func (w *CodeWriter) writeString(s string) {
	io.WriteString(w.Hash, s)

	const maxWidth = 80 - 4 - len(`"`) - len(`" +`)
	fmt.Fprintf(w, `"`)
	n := maxWidth
	for p := 0; p < len(s); {
		r, sz := utf8.DecodeRuneInString(s[p:])
		out := s[p : p+sz]
		chars := 1
		if !unicode.IsPrint(r) || r == utf8.RuneError || r == '"' || r == '\\' {
			switch sz {
			case 1:
				out = fmt.Sprintf("\\x%02x", s[p])
			case 2, 3:
				out = fmt.Sprintf("\\u%04x", r)
			case 4:
				out = fmt.Sprintf("\\U%08x", r)
			}
			chars = len(out)
		}
		if n -= chars; n < 0 {
			fmt.Fprintf(w, "\" +\n\"")
			n = maxWidth - chars
		}
		fmt.Fprintf(w, "%s", out)
		p += sz
	}
	fmt.Fprintf(w, `"`)
}
