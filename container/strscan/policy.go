package strscan

import (
	"strings"

	"github.com/joshuapare/epckit/internal/format"
	"github.com/joshuapare/epckit/pkg/types"
)

// Policy decides whether a completed printable run is kept.
type Policy func(text string) bool

// separators are the path-ish characters that mark a general string as a
// likely resource name.
const separators = `./\_`

// General keeps runs of at least four bytes that either contain a separator
// (. / \ _) or are entirely alphanumeric.
func General(text string) bool {
	if len(text) < format.MinStringLen {
		return false
	}
	return strings.ContainsAny(text, separators) || isAlnum(text)
}

// Texture keeps runs whose extension is one of the default image suffixes.
// There is no minimum length, so a custom set from TextureWith can keep
// runs General would drop.
var Texture = TextureWith(types.DefaultTextureExtensions...)

// TextureWith returns a texture policy for the given extension set. Each
// extension carries its leading dot; matching is case-insensitive.
func TextureWith(exts ...string) Policy {
	set := make(map[string]struct{}, len(exts))
	for _, e := range exts {
		set[strings.ToLower(e)] = struct{}{}
	}
	return func(text string) bool {
		ext := Ext(text)
		if ext == "" {
			return false
		}
		_, ok := set[strings.ToLower(ext)]
		return ok
	}
}

// Ext returns the extension of the last path component of name, including
// the dot. Leading dots of the component do not start an extension, so
// ".png" has none.
func Ext(name string) string {
	base := name[strings.LastIndexAny(name, `/\`)+1:]
	base = strings.TrimLeft(base, ".")
	i := strings.LastIndexByte(base, '.')
	if i < 0 {
		return ""
	}
	return base[i:]
}

func isAlnum(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !('a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9') {
			return false
		}
	}
	return true
}
