// Copyright 2026 lamW Authors. SPDX-License-Identifier: Apache-2.0

package numio

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/require"
)

const sample = "# lambert inputs\n1, 2.5 -0.1\n\n1e-300;Inf  -inf # trailing\nNaN\n"

func checkSample(t *testing.T, got []float64) {
	t.Helper()
	require.Len(t, got, 7)
	require.Equal(t, []float64{1, 2.5, -0.1, 1e-300}, got[:4])
	require.True(t, math.IsInf(got[4], 1))
	require.True(t, math.IsInf(got[5], -1))
	require.True(t, math.IsNaN(got[6]))
}

func TestReadFloats(t *testing.T) {
	got, err := ReadFloats(strings.NewReader(sample))
	require.NoError(t, err)
	checkSample(t, got)
}

func TestReadFloatsEmpty(t *testing.T) {
	got, err := ReadFloats(strings.NewReader("# nothing\n\n"))
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestReadFloatsError(t *testing.T) {
	_, err := ReadFloats(strings.NewReader("1 2\n3 four\n"))
	require.ErrorIs(t, err, ErrParse)
	require.Contains(t, err.Error(), "line 2")
	require.Contains(t, err.Error(), `"four"`)
}

func TestParseFloatRange(t *testing.T) {
	x, err := ParseFloat("1e400")
	require.NoError(t, err)
	require.True(t, math.IsInf(x, 1))

	x, err = ParseFloat("-1e-400")
	require.NoError(t, err)
	require.Equal(t, 0.0, x)
}

func TestWriteFloats(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteFloats(&buf, "%v", []float64{0.5671432904097838, math.NaN(), math.Inf(-1)}))
	require.Equal(t, "0.5671432904097838\nNaN\n-Inf\n", buf.String())

	buf.Reset()
	require.NoError(t, WriteFloats(&buf, "%.3f", []float64{1.23456}))
	require.Equal(t, "1.235\n", buf.String())
}

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

func readAll(t *testing.T, path string) []float64 {
	t.Helper()
	rc, err := Open(path)
	require.NoError(t, err)
	defer func() { require.NoError(t, rc.Close()) }()

	got, err := ReadFloats(rc)
	require.NoError(t, err)
	return got
}

func TestOpenPlain(t *testing.T) {
	checkSample(t, readAll(t, writeFile(t, "in.txt", []byte(sample))))
}

func TestOpenGzip(t *testing.T) {
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write([]byte(sample))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	checkSample(t, readAll(t, writeFile(t, "in.txt.gz", buf.Bytes())))
}

func TestOpenZstd(t *testing.T) {
	var buf bytes.Buffer
	zw, err := zstd.NewWriter(&buf)
	require.NoError(t, err)
	_, err = zw.Write([]byte(sample))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	checkSample(t, readAll(t, writeFile(t, "in.txt.zst", buf.Bytes())))
}

func TestOpenErrors(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing.txt"))
	require.ErrorIs(t, err, os.ErrNotExist)

	_, err = Open(writeFile(t, "bad.gz", []byte("not gzip at all")))
	require.Error(t, err)
}
