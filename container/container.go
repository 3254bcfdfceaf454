package container

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/joshuapare/epckit/internal/buf"
	"github.com/joshuapare/epckit/internal/mmfile"
	"github.com/joshuapare/epckit/pkg/types"
)

// Container is a loaded .epc file: an immutable byte buffer plus the path it
// came from. It is backed by a heap copy or a read-only mapping.
type Container struct {
	path    string
	data    []byte
	release func() error
	mapped  bool
	closed  atomic.Bool
	once    sync.Once
}

// Open loads the file at path. With opts.Mmap the file is mapped read-only;
// otherwise it is read fully into memory.
func Open(path string, opts types.OpenOptions) (*Container, error) {
	load := mmfile.Read
	if opts.Mmap {
		load = mmfile.Map
	}
	data, release, err := load(path)
	if err != nil {
		return nil, types.Errorf(types.ErrKindFileRead, types.NoOffset, err, "open %s", path)
	}
	if uint64(len(data)) > uint64(^uint32(0)) {
		_ = release()
		return nil, types.Errorf(types.ErrKindFileRead, types.NoOffset, nil,
			"open %s: %d bytes exceeds 32-bit offset range", path, len(data))
	}
	return &Container{path: path, data: data, release: release, mapped: opts.Mmap}, nil
}

// FromBytes wraps an in-memory buffer. The caller must not modify data afterwards.
func FromBytes(name string, data []byte) *Container {
	return &Container{path: name, data: data, release: func() error { return nil }}
}

// Close releases the backing mapping. When the container was opened with
// Mmap, slices obtained from it are invalid afterwards and the container
// reports a zero length. Heap-backed containers stay readable.
//
// Close does not wait for readers. Callers sharing a container across
// goroutines must stop using it first; epc.Session does this with
// reference counts.
func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	var err error
	c.once.Do(func() {
		if c.mapped {
			c.closed.Store(true)
		}
		err = c.release()
	})
	return err
}

// bytes returns the buffer, or nil once a mapping has been released.
func (c *Container) bytes() []byte {
	if c.closed.Load() {
		return nil
	}
	return c.data
}

// Path returns the source path or name given at load time.
func (c *Container) Path() string { return c.path }

// Bytes returns the whole buffer. It must be treated as read-only.
func (c *Container) Bytes() []byte { return c.bytes() }

// Len returns the buffer length N.
func (c *Container) Len() int { return len(c.bytes()) }

// Slice returns the bytes covered by b.
func (c *Container) Slice(b types.Blob) ([]byte, error) {
	data := c.bytes()
	end, err := buf.CheckRange(len(data), int(b.Start), int(b.Length))
	if err != nil {
		return nil, types.Errorf(types.ErrKindOutOfBounds, int64(b.Start), err, "blob")
	}
	return data[b.Start:end], nil
}

// Window returns the bytes in [off-before, off+after) clipped to the buffer,
// together with the offset of the first returned byte.
func (c *Container) Window(off, before, after int) (int, []byte) {
	data := c.bytes()
	lo, hi := buf.Clip(off-before, off+after, len(data))
	return lo, data[lo:hi]
}

func (c *Container) String() string {
	return fmt.Sprintf("%s (%d bytes)", c.path, c.Len())
}
