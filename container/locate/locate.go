// Package locate finds index records by searching a container buffer for the
// little-endian encoding of a target offset.
//
// There is no known record table, length, or stride, so the search treats the
// buffer as unstructured bytes: every position is tested, hits may overlap,
// and a hit is kept only when a whole record's worth of fields can follow it.
package locate

import (
	"bytes"
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/joshuapare/epckit/internal/buf"
	"github.com/joshuapare/epckit/internal/format"
	"github.com/joshuapare/epckit/pkg/types"
)

// Pattern returns the four bytes searched for when locating target.
func Pattern(target uint32) [4]byte {
	return buf.LE32(target)
}

// Locate returns every position p, in ascending order, where the four bytes
// at p encode target little-endian and p+12 < len(data).
func Locate(data []byte, target uint32) []types.RecordRef {
	pat := Pattern(target)
	return locateRange(data, pat[:], 0, len(data), nil)
}

// LocateParallel is Locate split across workers. Chunk search windows overlap
// by three bytes so a match straddling a split is found exactly once.
func LocateParallel(ctx context.Context, data []byte, target uint32, workers, chunkSize int) ([]types.RecordRef, error) {
	if workers <= 1 || chunkSize <= 0 || len(data) <= chunkSize {
		return Locate(data, target), nil
	}
	pat := Pattern(target)
	n := (len(data) + chunkSize - 1) / chunkSize
	parts := make([][]types.RecordRef, n)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for k := range n {
		lo := k * chunkSize
		hi := min(lo+chunkSize, len(data))
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			parts[k] = locateRange(data, pat[:], lo, hi, nil)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var out []types.RecordRef
	for _, part := range parts {
		out = append(out, part...)
	}
	return out, nil
}

// locateRange appends hits whose start lies in [lo, hi).
func locateRange(data, pat []byte, lo, hi int, out []types.RecordRef) []types.RecordRef {
	end := min(hi+len(pat)-1, len(data))
	window := data[lo:end]
	for i := 0; ; {
		j := bytes.Index(window[i:], pat)
		if j < 0 {
			break
		}
		p := lo + i + j
		if p+format.RecordMinSpan < len(data) {
			out = append(out, types.RecordRef(p))
		}
		i += j + 1
	}
	return out
}
