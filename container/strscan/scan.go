// Package strscan finds printable-ASCII runs in a container buffer and
// filters them through an inclusion policy.
package strscan

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/joshuapare/epckit/internal/format"
	"github.com/joshuapare/epckit/pkg/types"
)

// IsPrintable reports whether b may appear in a string run.
func IsPrintable(b byte) bool {
	return b >= format.PrintableMin && b <= format.PrintableMax
}

// Scan walks data once and returns every run accepted by p, ordered by
// offset. A run that ends exactly at the end of data is still evaluated.
func Scan(data []byte, p Policy) []types.StringEntry {
	return scanRange(data, 0, len(data), p, nil)
}

// ScanParallel splits data into chunkSize ranges and scans them on up to
// workers goroutines. The result is identical to Scan: a run is owned by the
// chunk it starts in and is followed past the chunk end when it crosses one.
func ScanParallel(ctx context.Context, data []byte, p Policy, workers, chunkSize int) ([]types.StringEntry, error) {
	if workers <= 1 || chunkSize <= 0 || len(data) <= chunkSize {
		return Scan(data, p), nil
	}
	n := (len(data) + chunkSize - 1) / chunkSize
	parts := make([][]types.StringEntry, n)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for k := range n {
		lo := k * chunkSize
		hi := min(lo+chunkSize, len(data))
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			parts[k] = scanRange(data, lo, hi, p, nil)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := 0
	for _, part := range parts {
		total += len(part)
	}
	out := make([]types.StringEntry, 0, total)
	for _, part := range parts {
		out = append(out, part...)
	}
	return out, nil
}

// scanRange appends the runs that start in [lo, hi). Runs may extend beyond
// hi; a run already in progress at lo belongs to the previous range.
func scanRange(data []byte, lo, hi int, p Policy, out []types.StringEntry) []types.StringEntry {
	i := lo
	if i > 0 && IsPrintable(data[i-1]) {
		for i < len(data) && IsPrintable(data[i]) {
			i++
		}
	}
	for i < hi {
		if !IsPrintable(data[i]) {
			i++
			continue
		}
		start := i
		for i < len(data) && IsPrintable(data[i]) {
			i++
		}
		if text := string(data[start:i]); p(text) {
			out = append(out, types.StringEntry{Offset: uint32(start), Text: text})
		}
	}
	return out
}
