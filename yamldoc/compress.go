package yamldoc

import (
	"bufio"
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"
)

//Compression formats recognized from file extensions.
const (
	Plain = ""
	Gzip  = "gz"
	Zstd  = "zst"
)

//Format returns the compression format of the file name, deduced from its
//extension: ".gz" for gzip, ".zst" or ".zstd" for z-standard, anything else
//for a plain file.
func Format(name string) string {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".gz":
		return Gzip
	case ".zst", ".zstd":
		return Zstd
	}
	return Plain
}

//zstdReadCloser is needed because *zstd.Decoder's Close does not return an error.
type zstdReadCloser struct {
	*zstd.Decoder
	f *os.File
}

func (z zstdReadCloser) Close() error {
	z.Decoder.Close()
	return z.f.Close()
}

//readCloser closes the decompressor and the file underneath.
type readCloser struct {
	io.Reader
	closers []io.Closer
}

func (r readCloser) Close() error {
	var err error
	for _, c := range r.closers {
		if e := c.Close(); e != nil && err == nil {
			err = e
		}
	}
	return err
}

//Open opens the file name for reading, decompressing it on the fly
//if its extension says so (see Format).
func Open(name string) (io.ReadCloser, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, Error{err.Error(), name, []string{"os.Open", "Open"}, true, err}
	}
	switch Format(name) {
	case Gzip:
		r, err := gzip.NewReader(bufio.NewReader(f))
		if err != nil {
			f.Close()
			return nil, Error{err.Error(), name, []string{"gzip.NewReader", "Open"}, true, err}
		}
		return readCloser{r, []io.Closer{r, f}}, nil
	case Zstd:
		r, err := zstd.NewReader(bufio.NewReader(f))
		if err != nil {
			f.Close()
			return nil, Error{err.Error(), name, []string{"zstd.NewReader", "Open"}, true, err}
		}
		return zstdReadCloser{r, f}, nil
	}
	return f, nil
}

//writeCloser flushes and closes the compressor, then the file.
type writeCloser struct {
	io.WriteCloser
	f *os.File
}

func (w writeCloser) Close() error {
	err := w.WriteCloser.Close()
	if err2 := w.f.Close(); err == nil {
		err = err2
	}
	return err
}

//Create creates the file name for writing, compressing what is written
//if its extension says so (see Format).
func Create(name string) (io.WriteCloser, error) {
	f, err := os.Create(name)
	if err != nil {
		return nil, Error{err.Error(), name, []string{"os.Create", "Create"}, true, err}
	}
	switch Format(name) {
	case Gzip:
		return writeCloser{gzip.NewWriter(f), f}, nil
	case Zstd:
		w, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedBetterCompression))
		if err != nil {
			f.Close()
			return nil, Error{err.Error(), name, []string{"zstd.NewWriter", "Create"}, true, err}
		}
		return writeCloser{w, f}, nil
	}
	return f, nil
}
