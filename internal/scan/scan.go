// Package scan reads lists of cubes in the text format: one cube per line, as three comma-separated integers
// "x,y,z". Blank lines are ignored and spaces around lines and numbers are trimmed.
//
// Inputs compressed with zstd or gzip are decompressed transparently, see Open.
package scan

import (
	"bufio"
	"bytes"
	"encoding/binary"
	xxhash "github.com/cespare/xxhash/v2"
	"github.com/janpfeifer/droplet/internal/geom"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pkg/errors"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"
)

// ErrMalformedInput is returned (wrapped with the input name, line number and text) for lines that are not
// exactly three integers within [geom.MinCoord, geom.MaxCoord].
var ErrMalformedInput = errors.New("malformed input")

const (
	// StdinName is the path that refers to the standard input.
	StdinName = "-"

	// MaxLineLength is the longest line accepted by Parse, in bytes.
	MaxLineLength = bufio.MaxScanTokenSize
)

var (
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
	gzipMagic = []byte{0x1f, 0x8b}
)

// Parse reads the cubes from r, one per line. name is used in error messages.
//
// An input without cubes is not an error here: it returns an empty list.
func Parse(r io.Reader, name string) (cubes []geom.Cube, err error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), MaxLineLength)
	var lineNum int
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		c, err := parseCube(line)
		if err != nil {
			return nil, errors.Wrapf(ErrMalformedInput, "%s:%d: %q: %v", name, lineNum, line, err)
		}
		cubes = append(cubes, c)
	}
	if err := scanner.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return nil, errors.Wrapf(ErrMalformedInput, "%s:%d: line longer than %d bytes", name, lineNum+1, MaxLineLength)
		}
		return nil, errors.Wrapf(err, "failed to read %s after line %d", name, lineNum)
	}
	return cubes, nil
}

func parseCube(line string) (c geom.Cube, err error) {
	fields := strings.Split(line, ",")
	if len(fields) != int(geom.NumAxes) {
		return c, errors.Errorf("expected 3 comma-separated integers, got %d fields", len(fields))
	}
	for axis, field := range fields {
		v, err := strconv.ParseInt(strings.TrimSpace(field), 10, 32)
		if err != nil {
			return c, err
		}
		c = c.WithCoord(geom.Axis(axis), int32(v))
	}
	if !c.InRange() {
		return c, errors.Errorf("coordinates must be within [%d, %d]", geom.MinCoord, geom.MaxCoord)
	}
	return c, nil
}

// readCloser reads from a decompressor and closes it along with the underlying file.
type readCloser struct {
	io.Reader
	close func() error
}

func (rc *readCloser) Close() error { return rc.close() }

// Open the input at path for reading, StdinName meaning the standard input (which is not closed).
// Inputs starting with the zstd or the gzip magic numbers are decompressed.
func Open(path string) (io.ReadCloser, error) {
	var file io.ReadCloser
	if path == StdinName {
		file = io.NopCloser(os.Stdin)
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to open input")
		}
		file = f
	}
	r, err := decompress(file)
	if err != nil {
		_ = file.Close()
		return nil, errors.WithMessagef(err, "input %q", path)
	}
	return r, nil
}

func decompress(file io.ReadCloser) (io.ReadCloser, error) {
	buffered := bufio.NewReader(file)
	magic, err := buffered.Peek(len(zstdMagic))
	if err != nil && err != io.EOF {
		return nil, errors.Wrap(err, "failed to read header")
	}
	switch {
	case bytes.HasPrefix(magic, zstdMagic):
		dec, err := zstd.NewReader(buffered)
		if err != nil {
			return nil, errors.Wrap(err, "failed to start zstd decoder")
		}
		return &readCloser{Reader: dec, close: func() error {
			dec.Close()
			return file.Close()
		}}, nil
	case bytes.HasPrefix(magic, gzipMagic):
		dec, err := gzip.NewReader(buffered)
		if err != nil {
			return nil, errors.Wrap(err, "failed to start gzip decoder")
		}
		return &readCloser{Reader: dec, close: func() error {
			err := dec.Close()
			if fileErr := file.Close(); err == nil {
				err = fileErr
			}
			return err
		}}, nil
	default:
		return &readCloser{Reader: buffered, close: file.Close}, nil
	}
}

// ReadFile opens and parses the input at path, see Open and Parse.
func ReadFile(path string) ([]geom.Cube, error) {
	r, err := Open(path)
	if err != nil {
		return nil, err
	}
	name := path
	if path == StdinName {
		name = "stdin"
	}
	cubes, err := Parse(r, name)
	if closeErr := r.Close(); err == nil && closeErr != nil {
		err = errors.Wrapf(closeErr, "failed to close %s", name)
	}
	return cubes, err
}

// Dedup returns a new list with the cubes in canonical order (see geom.Cube.Compare) and without duplicates.
func Dedup(cubes []geom.Cube) []geom.Cube {
	cubes = slices.Clone(cubes)
	slices.SortFunc(cubes, geom.Cube.Compare)
	return slices.Compact(cubes)
}

// Fingerprint returns a hash of the set of cubes: it doesn't depend on their order or on duplicates.
func Fingerprint(cubes []geom.Cube) uint64 {
	hasher := xxhash.New()
	var buf [4 * geom.NumAxes]byte
	for _, c := range Dedup(cubes) {
		for axis := range geom.NumAxes {
			binary.LittleEndian.PutUint32(buf[4*int(axis):], uint32(c.Coord(axis)))
		}
		_, _ = hasher.Write(buf[:])
	}
	return hasher.Sum64()
}
