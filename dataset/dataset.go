package dataset

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"go.uber.org/multierr"

	"github.com/hupe1980/kcluster/blobstore"
	"github.com/hupe1980/kcluster/internal/compress"
)

// maxLineSize bounds a single input line. Very high-dimensional points can
// exceed bufio's 64KiB default.
const maxLineSize = 64 << 20

// Dataset is a parsed clustering input.
type Dataset struct {
	K      int
	M      int
	Points [][]float64
}

// Parse reads a dataset in the text format from r.
func Parse(r io.Reader) (*Dataset, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	ds := &Dataset{}
	line := 0
	header := false

	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())

		if !header {
			k, m, err := parseHeader(fields)
			if err != nil {
				return nil, &ParseError{Line: line, Err: err}
			}
			ds.K, ds.M = k, m
			header = true
			continue
		}

		if len(fields) == 0 {
			continue
		}
		p, err := parsePoint(fields, ds.M)
		if err != nil {
			return nil, &ParseError{Line: line, Err: err}
		}
		ds.Points = append(ds.Points, p)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("dataset: read: %w", err)
	}

	if !header {
		return nil, &ParseError{Line: 1, Err: fmt.Errorf("%w: empty input", ErrMalformedHeader)}
	}
	if len(ds.Points) < ds.K {
		return nil, fmt.Errorf("%w: %d points, k=%d", ErrTooFewPoints, len(ds.Points), ds.K)
	}
	return ds, nil
}

func parseHeader(fields []string) (int, int, error) {
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("%w: want \"K M\", got %d fields", ErrMalformedHeader, len(fields))
	}
	k, err := strconv.Atoi(fields[0])
	if err != nil || k < 1 {
		return 0, 0, fmt.Errorf("%w: K must be a positive integer, got %q", ErrMalformedHeader, fields[0])
	}
	m, err := strconv.Atoi(fields[1])
	if err != nil || m < 1 {
		return 0, 0, fmt.Errorf("%w: M must be a positive integer, got %q", ErrMalformedHeader, fields[1])
	}
	return k, m, nil
}

func parsePoint(fields []string, m int) ([]float64, error) {
	if len(fields) != m {
		return nil, fmt.Errorf("%w: want %d, got %d", ErrCoordinateCount, m, len(fields))
	}
	p := make([]float64, m)
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidNumber, f)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%w: %q", ErrNonFinite, f)
		}
		p[i] = v
	}
	return p, nil
}

// Load opens name in store and parses it, decompressing by name suffix.
func Load(ctx context.Context, store blobstore.BlobStore, name string) (_ *Dataset, err error) {
	blob, err := store.Open(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("dataset: open %s: %w", name, err)
	}
	defer func() {
		err = multierr.Append(err, blob.Close())
	}()

	rc, err := compress.NewReader(blobstore.NewReader(ctx, blob), compress.FromName(name))
	if err != nil {
		return nil, fmt.Errorf("dataset: %s: %w", name, err)
	}
	defer func() {
		err = multierr.Append(err, rc.Close())
	}()

	ds, err := Parse(rc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return ds, nil
}
