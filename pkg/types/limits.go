package types

import (
	"log/slog"
	"runtime"
)

// ============================================================================
// Scan and extraction limits
// ============================================================================
// The container has no header describing record-table size or stride, so
// these are tuning knobs for the heuristics rather than format constants.

const (
	// DefaultParallelThreshold is the buffer size at which string scans and
	// record searches are split across workers.
	DefaultParallelThreshold = 8 << 20 // 8 MiB

	// DefaultChunkSize is the byte range handed to each scan worker.
	DefaultChunkSize = 1 << 20 // 1 MiB

	// DefaultNameLookahead bounds the search for a record name's zero terminator.
	DefaultNameLookahead = 256

	// MinChunkSize keeps chunks large enough that boundary fix-ups stay rare.
	MinChunkSize = 4 << 10
)

// DefaultTextureExtensions lists the raster-image suffixes treated as
// texture names. Matching is case-insensitive.
var DefaultTextureExtensions = []string{".dds", ".tga", ".png", ".jpg", ".bmp"}

// OpenOptions controls how a container is loaded and scanned.
type OpenOptions struct {
	// Mmap maps the file read-only instead of reading it into the heap.
	// Slices returned from the container are invalid after Close.
	// Default: false
	Mmap bool

	// Workers is the number of scan workers for large buffers.
	// Zero selects GOMAXPROCS; negative forces serial scanning.
	Workers int

	// ParallelThreshold is the minimum buffer length for parallel scans.
	// Default: DefaultParallelThreshold
	ParallelThreshold int

	// ChunkSize is the byte range per worker task.
	// Default: DefaultChunkSize
	ChunkSize int

	// NameLookahead bounds the zero-terminator search when resolving a
	// record's name.
	// Default: DefaultNameLookahead
	NameLookahead int

	// TextureExtensions overrides the texture suffix set. Entries must
	// include the leading dot.
	// Default: DefaultTextureExtensions
	TextureExtensions []string

	// Logger receives debug output. Nil discards all logging.
	Logger *slog.Logger
}

// DefaultOpenOptions returns the defaults used by the CLI and explorer.
func DefaultOpenOptions() OpenOptions {
	return OpenOptions{
		ParallelThreshold: DefaultParallelThreshold,
		ChunkSize:         DefaultChunkSize,
		NameLookahead:     DefaultNameLookahead,
		TextureExtensions: DefaultTextureExtensions,
	}
}

// Normalize fills zero fields with defaults and returns the result.
func (o OpenOptions) Normalize() OpenOptions {
	if o.ParallelThreshold <= 0 {
		o.ParallelThreshold = DefaultParallelThreshold
	}
	if o.ChunkSize <= 0 {
		o.ChunkSize = DefaultChunkSize
	}
	if o.ChunkSize < MinChunkSize {
		o.ChunkSize = MinChunkSize
	}
	if o.NameLookahead <= 0 {
		o.NameLookahead = DefaultNameLookahead
	}
	if len(o.TextureExtensions) == 0 {
		o.TextureExtensions = DefaultTextureExtensions
	}
	if o.Workers == 0 {
		o.Workers = runtime.GOMAXPROCS(0)
	}
	if o.Logger == nil {
		o.Logger = slog.New(slog.DiscardHandler)
	}
	return o
}

// Parallel reports whether a buffer of n bytes should be scanned in parallel.
func (o OpenOptions) Parallel(n int) bool {
	return o.Workers > 1 && n >= o.ParallelThreshold
}
