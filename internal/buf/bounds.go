package buf

import (
	"fmt"
	"math"
)

// AddOverflowSafe adds a and b, returning ok = false when the result would overflow int.
func AddOverflowSafe(a, b int) (int, bool) {
	switch {
	case b > 0 && a > math.MaxInt-b:
		return 0, false
	case b < 0 && a < math.MinInt-b:
		return 0, false
	default:
		return a + b, true
	}
}

// CheckRange validates that [off, off+n) lies inside a buffer of bufLen bytes
// and returns the exclusive end offset.
//
//	end, err := buf.CheckRange(len(data), int(blob.Start), int(blob.Length))
//	if err != nil {
//	    return fmt.Errorf("blob: %w", err)
//	}
func CheckRange(bufLen, off, n int) (int, error) {
	if off < 0 {
		return 0, fmt.Errorf("negative offset: %d", off)
	}
	if n < 0 {
		return 0, fmt.Errorf("negative length: %d", n)
	}
	end, ok := AddOverflowSafe(off, n)
	if !ok {
		return 0, fmt.Errorf("overflow: offset=%d + size=%d", off, n)
	}
	if end > bufLen {
		return 0, fmt.Errorf("bounds: end=%d > len=%d", end, bufLen)
	}
	return end, nil
}

// Slice returns the sub-slice [off:off+n] if it fits within len(b).
func Slice(b []byte, off, n int) ([]byte, bool) {
	end, err := CheckRange(len(b), off, n)
	if err != nil {
		return nil, false
	}
	return b[off:end], true
}

// Has reports whether b[off:off+n] is within bounds.
func Has(b []byte, off, n int) bool {
	_, err := CheckRange(len(b), off, n)
	return err == nil
}

// Clip returns [lo, hi) clamped to [0, n].
func Clip(lo, hi, n int) (int, int) {
	lo = min(max(lo, 0), n)
	hi = min(hi, n)
	if hi < lo {
		hi = lo
	}
	return lo, hi
}
