// Copyright 2026 The goidna Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gen contains common code for the table generator and for the
// long-running tests that validate the generated tables against the
// Unicode data files.
package gen

import (
	"flag"
	"fmt"
	"go/format"
	"io"
	"log"
	"net/http"
	"os"
	"path"
	"path/filepath"
)

var (
	unicodeVersion = flag.String("unicode",
		getEnv("UNICODE_VERSION", "15.1.0"),
		"Unicode version to use")

	url = flag.String("url",
		getEnv("UNICODE_URL", "https://www.unicode.org/Public"),
		"URL of the Unicode data distribution")

	localDir = flag.String("local",
		os.Getenv("UNICODE_DIR"),
		"directory containing local copies of the Unicode data files")
)

func getEnv(name, def string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return def
}

// Init performs common initialization for a generator. It must be called
// before any data file is opened.
func Init() {
	log.SetPrefix("")
	log.SetFlags(0)
	flag.Parse()
}

// UnicodeVersion reports the Unicode version the data files are fetched
// for.
func UnicodeVersion() string { return *unicodeVersion }

// OpenUCDFile opens the named file of the Unicode Character Database,
// fetching and caching it as needed.
func OpenUCDFile(file string) io.ReadCloser {
	return openUnicode(path.Join(*unicodeVersion, "ucd", file))
}

// OpenUnicodeFile opens a file from an area of the Unicode data
// distribution outside the UCD proper, such as "idna". An empty version
// selects the version this package was configured with.
func OpenUnicodeFile(category, version, file string) io.ReadCloser {
	if version == "" {
		version = *unicodeVersion
	}
	return openUnicode(path.Join(category, version, file))
}

func openUnicode(p string) io.ReadCloser {
	if *localDir != "" {
		f, err := os.Open(filepath.Join(*localDir, filepath.FromSlash(p)))
		if err != nil {
			log.Fatalf("open %s: %v", p, err)
		}
		return f
	}
	return fetch(p)
}

// fetch downloads a data file into the user cache directory, reusing a
// previously downloaded copy when present.
func fetch(p string) io.ReadCloser {
	dir, err := os.UserCacheDir()
	if err != nil {
		log.Fatalf("cache dir: %v", err)
	}
	name := filepath.Join(dir, "goidna-uts46", filepath.FromSlash(p))
	if f, err := os.Open(name); err == nil {
		return f
	}
	if err := os.MkdirAll(filepath.Dir(name), 0755); err != nil {
		log.Fatalf("mkdir: %v", err)
	}
	resp, err := http.Get(*url + "/" + p)
	if err != nil {
		log.Fatalf("get %s: %v", p, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		log.Fatalf("get %s: %s", p, resp.Status)
	}
	f, err := os.Create(name)
	if err != nil {
		log.Fatalf("create %s: %v", name, err)
	}
	if _, err := io.Copy(f, resp.Body); err != nil {
		os.Remove(name)
		log.Fatalf("fetch %s: %v", p, err)
	}
	if err := f.Close(); err != nil {
		log.Fatalf("close %s: %v", name, err)
	}
	f, err = os.Open(name)
	if err != nil {
		log.Fatalf("open %s: %v", name, err)
	}
	return f
}

const header = `// Code generated by running "go generate" in github.com/goidna/uts46. DO NOT EDIT.

package %s

`

// WriteGoFile formats the generated body and writes it, with the
// standard header, to the named file.
func WriteGoFile(filename, pkg string, b []byte) {
	src := []byte(fmt.Sprintf(header, pkg))
	src = append(src, b...)
	out, err := format.Source(src)
	if err != nil {
		// Write the unformatted source to ease debugging of the
		// generator.
		os.WriteFile(filename, src, 0644)
		log.Fatalf("format %s: %v", filename, err)
	}
	if err := os.WriteFile(filename, out, 0644); err != nil {
		log.Fatalf("write %s: %v", filename, err)
	}
}
