// Copyright 2026 lamW Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package numio reads and writes plain-text streams of float64 values for the
// lamw tool. Inputs may be gzip or zstd compressed.
package numio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// ErrParse is wrapped by every malformed-token error from ReadFloats.
var ErrParse = errors.New("numio: malformed number")

// maxLine bounds a single input line.
const maxLine = 16 << 20

// Open opens path for reading. "-" is standard input. Files ending in .gz or
// .zst are decompressed transparently.
func Open(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("numio: open: %w", err)
	}

	rc, err := decompress(f, path)
	if err != nil {
		f.Close()
		return nil, err
	}
	return rc, nil
}

// decompress wraps f in the decoder selected by the extension of name.
func decompress(f *os.File, name string) (io.ReadCloser, error) {
	switch {
	case strings.HasSuffix(name, ".gz"):
		zr, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("numio: gzip %s: %w", name, err)
		}
		return &stackCloser{Reader: zr, closers: []io.Closer{zr, f}}, nil
	case strings.HasSuffix(name, ".zst"):
		zr, err := zstd.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("numio: zstd %s: %w", name, err)
		}
		rc := zr.IOReadCloser()
		return &stackCloser{Reader: rc, closers: []io.Closer{rc, f}}, nil
	default:
		return f, nil
	}
}

// stackCloser closes a decoder and the file below it, in that order.
type stackCloser struct {
	io.Reader
	closers []io.Closer
}

func (s *stackCloser) Close() error {
	var errs []error
	for _, c := range s.closers {
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// ReadFloats parses every number in r. Values may be separated by whitespace,
// commas or semicolons; text after '#' on a line is ignored. Inf, -Inf and NaN
// are accepted in any case.
func ReadFloats(r io.Reader) ([]float64, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)

	var out []float64
	line := 0
	for sc.Scan() {
		line++
		text := sc.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		for _, tok := range strings.FieldsFunc(text, isSeparator) {
			x, err := ParseFloat(tok)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			out = append(out, x)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("numio: read: %w", err)
	}
	return out, nil
}

// ParseFloat parses a single token the way ReadFloats does.
func ParseFloat(tok string) (float64, error) {
	x, err := strconv.ParseFloat(strings.TrimSpace(tok), 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			// Overflow and underflow still carry the correctly rounded value.
			return x, nil
		}
		return 0, fmt.Errorf("%w: %q", ErrParse, tok)
	}
	return x, nil
}

func isSeparator(r rune) bool {
	switch r {
	case ' ', '\t', '\r', ',', ';':
		return true
	}
	return false
}

// WriteFloats writes xs to w one per line using the fmt verb format.
func WriteFloats(w io.Writer, format string, xs []float64) error {
	bw := bufio.NewWriter(w)
	for _, x := range xs {
		if _, err := fmt.Fprintf(bw, format, x); err != nil {
			return fmt.Errorf("numio: write: %w", err)
		}
		if err := bw.WriteByte('\n'); err != nil {
			return fmt.Errorf("numio: write: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("numio: write: %w", err)
	}
	return nil
}
