package epc

import (
	"bytes"
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/joshuapare/epckit/container"
	"github.com/joshuapare/epckit/container/extract"
	"github.com/joshuapare/epckit/container/locate"
	"github.com/joshuapare/epckit/container/printer"
	"github.com/joshuapare/epckit/container/strscan"
	"github.com/joshuapare/epckit/internal/format"
	"github.com/joshuapare/epckit/pkg/types"
)

// generations hands out a unique id to every catalog ever built in the process.
var generations atomic.Uint64

// Catalog is one loaded container plus the tables derived from it. It is
// immutable after Load and safe for concurrent readers.
//
// The container is released when the last reference is dropped: the one
// Load returns, dropped by Close, plus one per Session.Acquire.
type Catalog struct {
	c        *container.Container
	opts     types.OpenOptions
	log      *slog.Logger
	gen      uint64
	strs     []types.StringEntry
	textures []types.StringEntry
	notices  []*types.Error

	refs      atomic.Int64
	closeOnce sync.Once
}

// Selection is the request-scoped result of selecting a string: the index
// records that embed its offset and the hex window around it.
type Selection struct {
	Generation uint64
	Target     uint32
	String     types.StringEntry
	Records    []types.RecordRef
	Hex        []printer.HexRow
}

// RecordDetail describes one index record. Name is the ASCII form used for
// export file names; DisplayName keeps high bytes as Windows-1252. A name
// that could not be fully resolved is still reported, with NameErr set.
// BlobErr holds the extent failure, if any; Blob is only meaningful when
// BlobErr is nil.
type RecordDetail struct {
	Index       int
	Ref         types.RecordRef
	Fields      types.RecordFields
	Name        string
	DisplayName string
	NameErr     error
	Raw         []byte
	Blob        types.Blob
	BlobErr     error
}

// TextureDetail describes one texture name and the blob that follows it.
// Occurrences lists every position of name+NUL; the first one is used.
type TextureDetail struct {
	Index       int
	Entry       types.StringEntry
	Occurrences []int
	Blob        types.Blob
}

// Load reads the container at path and builds its string and texture tables.
// Nothing is returned on failure; callers holding an older catalog keep it.
func Load(ctx context.Context, path string, opts types.OpenOptions) (*Catalog, error) {
	opts = opts.Normalize()
	c, err := container.Open(path, opts)
	if err != nil {
		opts.Logger.Debug("load failed", "path", path, "error", err)
		return nil, err
	}
	return build(ctx, c, opts)
}

// LoadBytes builds a catalog over an in-memory buffer. The caller must not
// modify data afterwards.
func LoadBytes(ctx context.Context, name string, data []byte, opts types.OpenOptions) (*Catalog, error) {
	return build(ctx, container.FromBytes(name, data), opts.Normalize())
}

func build(ctx context.Context, c *container.Container, opts types.OpenOptions) (*Catalog, error) {
	started := time.Now()
	cat := &Catalog{
		c:    c,
		opts: opts,
		log:  opts.Logger.With("path", c.Path()),
		gen:  generations.Add(1),
	}
	cat.refs.Store(1)

	var err error
	cat.strs, err = cat.scan(ctx, strscan.General)
	if err != nil {
		_ = c.Close()
		return nil, err
	}
	cat.textures, err = cat.scan(ctx, strscan.TextureWith(opts.TextureExtensions...))
	if err != nil {
		_ = c.Close()
		return nil, err
	}

	if len(cat.strs) == 0 {
		cat.notices = append(cat.notices, types.Errorf(types.ErrKindEmptyResult, types.NoOffset, nil, "no strings found"))
	}
	if len(cat.textures) == 0 {
		cat.notices = append(cat.notices, types.Errorf(types.ErrKindEmptyResult, types.NoOffset, nil, "no texture references found"))
	}

	cat.log.Debug("container loaded",
		"size", c.Len(),
		"strings", len(cat.strs),
		"textures", len(cat.textures),
		"parallel", opts.Parallel(c.Len()),
		"elapsed", time.Since(started),
	)
	return cat, nil
}

func (cat *Catalog) scan(ctx context.Context, p strscan.Policy) ([]types.StringEntry, error) {
	data := cat.c.Bytes()
	if cat.opts.Parallel(len(data)) {
		return strscan.ScanParallel(ctx, data, p, cat.opts.Workers, cat.opts.ChunkSize)
	}
	return strscan.Scan(data, p), nil
}

// Close drops the reference returned by Load. The container itself is
// released once outstanding Session.Acquire holders are done; until then
// they keep reading it.
func (cat *Catalog) Close() error {
	if cat == nil {
		return nil
	}
	var err error
	cat.closeOnce.Do(func() { err = cat.release() })
	return err
}

// retain takes a reference unless the container is already released.
func (cat *Catalog) retain() bool {
	for {
		n := cat.refs.Load()
		if n <= 0 {
			return false
		}
		if cat.refs.CompareAndSwap(n, n+1) {
			return true
		}
	}
}

// release drops a reference and closes the container on the last one.
func (cat *Catalog) release() error {
	if cat.refs.Add(-1) != 0 {
		return nil
	}
	cat.log.Debug("container released", "generation", cat.gen)
	if err := cat.c.Close(); err != nil {
		cat.log.Warn("closing container", "error", err)
		return err
	}
	return nil
}

// Path returns the source path.
func (cat *Catalog) Path() string { return cat.c.Path() }

// Len returns the buffer length.
func (cat *Catalog) Len() int { return cat.c.Len() }

// Generation identifies this catalog among all catalogs built in the process.
func (cat *Catalog) Generation() uint64 { return cat.gen }

// Strings returns the general string table in offset order.
func (cat *Catalog) Strings() []types.StringEntry { return cat.strs }

// Textures returns the texture table in offset order.
func (cat *Catalog) Textures() []types.StringEntry { return cat.textures }

// Notices returns the EmptyResult notices produced while loading. They are
// informational; the catalog stays fully usable.
func (cat *Catalog) Notices() []*types.Error { return cat.notices }

// Records finds the index records that embed target.
func (cat *Catalog) Records(ctx context.Context, target uint32) ([]types.RecordRef, error) {
	data := cat.c.Bytes()
	if cat.opts.Parallel(len(data)) {
		return locate.LocateParallel(ctx, data, target, cat.opts.Workers, cat.opts.ChunkSize)
	}
	return locate.Locate(data, target), nil
}

// SelectString selects entry i of the string table.
func (cat *Catalog) SelectString(ctx context.Context, i int) (*Selection, error) {
	if i < 0 || i >= len(cat.strs) {
		return nil, types.Errorf(types.ErrKindNotFound, types.NoOffset, nil,
			"string index %d out of range [0,%d)", i, len(cat.strs))
	}
	sel, err := cat.SelectOffset(ctx, cat.strs[i].Offset)
	if err != nil {
		return nil, err
	}
	sel.String = cat.strs[i]
	return sel, nil
}

// SelectOffset selects an arbitrary target offset, as if a string started there.
func (cat *Catalog) SelectOffset(ctx context.Context, target uint32) (*Selection, error) {
	refs, err := cat.Records(ctx, target)
	if err != nil {
		return nil, err
	}
	cat.log.Debug("records located", "target", target, "records", len(refs))
	return &Selection{
		Generation: cat.gen,
		Target:     target,
		Records:    refs,
		Hex:        cat.HexWindow(target),
	}, nil
}

func (cat *Catalog) checkSelection(sel *Selection) error {
	if sel == nil {
		return types.Errorf(types.ErrKindNotFound, types.NoOffset, nil, "no selection")
	}
	if sel.Generation != cat.gen {
		return types.Errorf(types.ErrKindStale, int64(sel.Target), nil,
			"stale selection: made against generation %d, current is %d", sel.Generation, cat.gen)
	}
	return nil
}

// SelectRecord decodes record j of sel and computes its blob.
func (cat *Catalog) SelectRecord(sel *Selection, j int) (*RecordDetail, error) {
	if err := cat.checkSelection(sel); err != nil {
		return nil, err
	}
	if j < 0 || j >= len(sel.Records) {
		return nil, types.Errorf(types.ErrKindNotFound, types.NoOffset, nil,
			"record index %d out of range [0,%d)", j, len(sel.Records))
	}
	data := cat.c.Bytes()
	ref := sel.Records[j]
	fields, err := format.DecodeRecord(data, int(ref))
	if err != nil {
		return nil, err
	}
	d := &RecordDetail{
		Index:  j,
		Ref:    ref,
		Fields: fields,
		Raw:    bytes.Clone(format.RawRecord(data, int(ref))),
	}
	raw, nameErr := format.NameBytes(data, fields.NameOffset, cat.opts.NameLookahead)
	d.Name, d.DisplayName, d.NameErr = format.DecodeASCII(raw), format.DecodeDisplay(raw), nameErr
	d.Blob, d.BlobErr = extract.RecordBlob(data, sel.Records, j)
	if d.BlobErr != nil {
		cat.log.Debug("record blob failed", "record", uint32(ref), "error", d.BlobErr)
	}
	return d, nil
}

// RecordBlob returns the blob of record j of sel.
func (cat *Catalog) RecordBlob(sel *Selection, j int) (types.Blob, error) {
	if err := cat.checkSelection(sel); err != nil {
		return types.Blob{}, err
	}
	return extract.RecordBlob(cat.c.Bytes(), sel.Records, j)
}

// SelectTexture computes the blob of texture i.
func (cat *Catalog) SelectTexture(i int) (*TextureDetail, error) {
	if i < 0 || i >= len(cat.textures) {
		return nil, types.Errorf(types.ErrKindNotFound, types.NoOffset, nil,
			"texture index %d out of range [0,%d)", i, len(cat.textures))
	}
	data := cat.c.Bytes()
	tex := cat.textures[i]
	blob, err := extract.TextureBlob(data, tex, cat.textures)
	if err != nil {
		cat.log.Debug("texture blob failed", "texture", tex.Text, "error", err)
		return nil, err
	}
	return &TextureDetail{
		Index:       i,
		Entry:       tex,
		Occurrences: extract.FindAll(data, extract.NamePattern(tex.Text)),
		Blob:        blob,
	}, nil
}

// HexWindow returns the bytes within 32 of off as 16-byte rows. The rows
// hold a copy and stay valid after the catalog is released.
func (cat *Catalog) HexWindow(off uint32) []printer.HexRow {
	start, w := cat.c.Window(int(off), format.HexWindowRadius, format.HexWindowRadius)
	return printer.HexRows(start, bytes.Clone(w))
}

// BlobBytes returns the bytes of b. The slice aliases the container buffer
// and must not be modified. With OpenOptions.Mmap it is only valid while a
// reference to the catalog is held.
func (cat *Catalog) BlobBytes(b types.Blob) ([]byte, error) {
	return cat.c.Slice(b)
}
