// Package report renders and persists clustering results.
package report

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/hupe1980/kcluster"
	"github.com/hupe1980/kcluster/blobstore"
	"github.com/hupe1980/kcluster/codec"
	"github.com/hupe1980/kcluster/internal/compress"
)

// DefaultPlaces is the number of decimal places centers are rounded to.
const DefaultPlaces = 3

// Report is the printable and persistable summary of one clustering run.
type Report struct {
	Name       string      `json:"name,omitempty"`
	K          int         `json:"k"`
	M          int         `json:"m"`
	Iterations int         `json:"iterations"`
	Converged  bool        `json:"converged"`
	Inertia    float64     `json:"inertia"`
	Sizes      []int       `json:"sizes"`
	Centers    [][]float64 `json:"centers"`
}

// FromResult builds a report for the dataset called name.
// Centers are rounded to DefaultPlaces.
func FromResult(name string, res *kcluster.Result) *Report {
	return &Report{
		Name:       name,
		K:          len(res.Centers),
		M:          res.Dimension(),
		Iterations: res.Iterations,
		Converged:  res.Converged,
		Inertia:    res.Inertia,
		Sizes:      append([]int(nil), res.Sizes...),
		Centers:    Round(res.Centers, DefaultPlaces),
	}
}

// Round returns a copy of centers with every coordinate rounded to places
// decimal places, half away from zero. Values that round to zero are
// returned as +0.
func Round(centers [][]float64, places int) [][]float64 {
	scale := math.Pow(10, float64(places))
	out := make([][]float64, len(centers))
	for i, c := range centers {
		r := make([]float64, len(c))
		for j, v := range c {
			r[j] = math.Round(v*scale) / scale
			if r[j] == 0 {
				r[j] = 0 // drop the sign of -0
			}
		}
		out[i] = r
	}
	return out
}

// WriteText prints the "Final centers are:" block, one center per line with
// space-separated coordinates.
func WriteText(w io.Writer, r *Report) error {
	bw := bufio.NewWriter(w)
	bw.WriteString("Final centers are:\n")
	for _, c := range r.Centers {
		for j, v := range c {
			if j > 0 {
				bw.WriteByte(' ')
			}
			bw.WriteString(strconv.FormatFloat(v, 'f', -1, 64))
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// WriteJSON encodes r with c followed by a newline. A nil codec means
// codec.Default.
func WriteJSON(w io.Writer, r *Report, c codec.Codec) error {
	data, err := encode(r, c)
	if err != nil {
		return err
	}
	_, err = w.Write(append(data, '\n'))
	return err
}

func encode(r *Report, c codec.Codec) ([]byte, error) {
	if c == nil {
		c = codec.Default
	}
	data, err := c.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("report: encode with %s: %w", c.Name(), err)
	}
	return data, nil
}

// SaveOptions controls Save.
type SaveOptions struct {
	// Codec encodes the report. Default: codec.Default.
	Codec codec.Codec
}

// Save encodes r and writes it to store under name. Names ending in .zst or
// .lz4 are compressed accordingly.
func Save(ctx context.Context, store blobstore.BlobStore, name string, r *Report, opts SaveOptions) error {
	data, err := encode(r, opts.Codec)
	if err != nil {
		return err
	}
	data, err = compress.Compress(data, compress.FromName(name))
	if err != nil {
		return fmt.Errorf("report: compress %s: %w", name, err)
	}
	if err := store.Put(ctx, name, data); err != nil {
		return fmt.Errorf("report: save %s: %w", name, err)
	}
	return nil
}

// Load reads a report written by Save.
func Load(ctx context.Context, store blobstore.BlobStore, name string, c codec.Codec) (*Report, error) {
	if c == nil {
		c = codec.Default
	}
	data, err := blobstore.ReadAll(ctx, store, name)
	if err != nil {
		return nil, fmt.Errorf("report: open %s: %w", name, err)
	}
	data, err = compress.Decompress(data, compress.FromName(name))
	if err != nil {
		return nil, fmt.Errorf("report: decompress %s: %w", name, err)
	}
	r := &Report{}
	if err := c.Unmarshal(data, r); err != nil {
		return nil, fmt.Errorf("report: decode %s: %w", name, err)
	}
	return r, nil
}
