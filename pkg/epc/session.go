package epc

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/joshuapare/epckit/pkg/types"
)

// Session holds the currently loaded catalog. Readers never observe a
// partially replaced catalog: Load builds the new one completely before
// swapping it in.
//
// A replaced catalog is closed once its last Acquire holder is done. With
// OpenOptions.Mmap that unmaps its buffer, so goroutines that may race a
// Load must read through Acquire rather than Current.
type Session struct {
	opts types.OpenOptions
	cur  atomic.Pointer[Catalog]
	mu   sync.Mutex // serializes Load and Close
}

// NewSession creates an empty session.
func NewSession(opts types.OpenOptions) *Session {
	return &Session{opts: opts.Normalize()}
}

// Options returns the options used for every load.
func (s *Session) Options() types.OpenOptions { return s.opts }

// Load opens path and makes it the current catalog. On failure the previous
// catalog, if any, stays current. The returned catalog belongs to the
// session; use Acquire to keep reading it across later loads.
func (s *Session) Load(ctx context.Context, path string) (*Catalog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cat, err := Load(ctx, path, s.opts)
	if err != nil {
		return nil, err
	}
	s.swap(cat)
	return cat, nil
}

// LoadBytes is Load for an in-memory buffer.
func (s *Session) LoadBytes(ctx context.Context, name string, data []byte) (*Catalog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cat, err := LoadBytes(ctx, name, data, s.opts)
	if err != nil {
		return nil, err
	}
	s.swap(cat)
	return cat, nil
}

// Reload loads the current catalog's path again.
func (s *Session) Reload(ctx context.Context) (*Catalog, error) {
	cat, err := s.Current()
	if err != nil {
		return nil, err
	}
	return s.Load(ctx, cat.Path())
}

func (s *Session) swap(cat *Catalog) {
	// Errors are logged by release.
	_ = s.cur.Swap(cat).Close()
	s.opts.Logger.Debug("catalog replaced", "path", cat.Path(), "generation", cat.Generation())
}

func errNotLoaded() error {
	return types.Errorf(types.ErrKindNotFound, types.NoOffset, nil, "no container loaded")
}

// Current returns the loaded catalog without holding a reference to it.
func (s *Session) Current() (*Catalog, error) {
	cat := s.cur.Load()
	if cat == nil {
		return nil, errNotLoaded()
	}
	return cat, nil
}

// Acquire returns the loaded catalog and holds a reference to it until done
// is called. The catalog and the slices it hands out stay readable in the
// meantime, even if a Load replaces it.
//
//	cat, done, err := s.Acquire()
//	if err != nil {
//	    return err
//	}
//	defer done()
func (s *Session) Acquire() (*Catalog, func(), error) {
	for {
		cat := s.cur.Load()
		if cat == nil {
			return nil, nil, errNotLoaded()
		}
		if cat.retain() {
			var once sync.Once
			return cat, func() { once.Do(func() { _ = cat.release() }) }, nil
		}
		// Released: either replaced since the Load above, or closed by
		// its owner while still current.
		if s.cur.Load() == cat {
			return nil, nil, types.Errorf(types.ErrKindNotFound, types.NoOffset, nil, "container %s is closed", cat.Path())
		}
	}
}

// SelectString selects string i of the current catalog.
func (s *Session) SelectString(ctx context.Context, i int) (*Selection, error) {
	cat, done, err := s.Acquire()
	if err != nil {
		return nil, err
	}
	defer done()
	return cat.SelectString(ctx, i)
}

// SelectRecord resolves record j of sel against the current catalog. A
// selection made before the last load is rejected with types.ErrStale.
func (s *Session) SelectRecord(sel *Selection, j int) (*RecordDetail, error) {
	cat, done, err := s.Acquire()
	if err != nil {
		return nil, err
	}
	defer done()
	return cat.SelectRecord(sel, j)
}

// RecordBlob returns the blob of record j of sel, or types.ErrStale.
func (s *Session) RecordBlob(sel *Selection, j int) (types.Blob, error) {
	cat, done, err := s.Acquire()
	if err != nil {
		return types.Blob{}, err
	}
	defer done()
	return cat.RecordBlob(sel, j)
}

// SelectTexture selects texture i of the current catalog.
func (s *Session) SelectTexture(i int) (*TextureDetail, error) {
	cat, done, err := s.Acquire()
	if err != nil {
		return nil, err
	}
	defer done()
	return cat.SelectTexture(i)
}

// Close drops the current catalog. Its container is released once
// outstanding Acquire holders are done.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cur.Swap(nil).Close()
}
