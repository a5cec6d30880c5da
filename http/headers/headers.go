package headers

import (
	"iter"
	"strings"

	"github.com/indigo-web/utils/strcomp"
)

// Header is a single header name with all of its values. The name keeps the casing
// it was last set with.
type Header struct {
	Name   string
	Values []string
}

// Headers is an ordered associative structure for header names and their values. Names
// are compared case-insensitively, while the casing used by the last Set is kept for
// output. It uses linear search instead of a map, which proves to be more efficient on
// relatively low amount of entries, which is almost always the case for response headers.
//
// Headers isn't safe for concurrent use.
type Headers struct {
	entries []Header
}

func New() *Headers {
	return new(Headers)
}

// NewPrealloc returns an instance of Headers with pre-allocated underlying storage.
func NewPrealloc(n int) *Headers {
	return &Headers{
		entries: make([]Header, 0, n),
	}
}

// Set replaces all the values of the header. If a header with case-insensitively equal
// name already exists, it keeps its position but takes the new name casing.
func (h *Headers) Set(name string, values ...string) *Headers {
	if i := h.find(name); i != -1 {
		h.entries[i] = Header{Name: name, Values: clone(values)}
		return h
	}

	h.entries = append(h.entries, Header{Name: name, Values: clone(values)})
	return h
}

// Add appends values to the header. In case the header doesn't exist yet, it behaves
// exactly like Set.
func (h *Headers) Add(name string, values ...string) *Headers {
	i := h.find(name)
	if i == -1 {
		return h.Set(name, values...)
	}

	entry := &h.entries[i]
	// the values slice may be shared with a clone, so never append in place
	merged := make([]string, 0, len(entry.Values)+len(values))
	entry.Values = append(append(merged, entry.Values...), values...)

	return h
}

// Get returns a copy of all the values of the header. Returns nil if the header doesn't exist.
func (h *Headers) Get(name string) []string {
	if i := h.find(name); i != -1 {
		return clone(h.entries[i].Values)
	}

	return nil
}

// Line returns all the values of the header joined by a comma. Returns an empty string
// if the header doesn't exist.
func (h *Headers) Line(name string) string {
	if i := h.find(name); i != -1 {
		return strings.Join(h.entries[i].Values, ", ")
	}

	return ""
}

// Has indicates, whether there's an entry of the header.
func (h *Headers) Has(name string) bool {
	return h.find(name) != -1
}

// Remove deletes the header. Removing a non-existing header is a no-op.
func (h *Headers) Remove(name string) *Headers {
	if i := h.find(name); i != -1 {
		h.entries = append(h.entries[:i:i], h.entries[i+1:]...)
	}

	return h
}

// All returns a deep copy of all the headers in the order of their first insertion.
func (h *Headers) All() []Header {
	all := make([]Header, len(h.entries))
	for i, entry := range h.entries {
		all[i] = Header{Name: entry.Name, Values: clone(entry.Values)}
	}

	return all
}

// Iter returns an iterator over the headers. Yielded values must not be modified.
func (h *Headers) Iter() iter.Seq2[string, []string] {
	return func(yield func(string, []string) bool) {
		for _, entry := range h.entries {
			if !yield(entry.Name, entry.Values) {
				break
			}
		}
	}
}

// Len returns a number of stored headers.
func (h *Headers) Len() int {
	return len(h.entries)
}

// Clone creates a deep copy, which may be modified independently.
func (h *Headers) Clone() *Headers {
	entries := make([]Header, len(h.entries))
	for i, entry := range h.entries {
		entries[i] = Header{Name: entry.Name, Values: clone(entry.Values)}
	}

	return &Headers{entries: entries}
}

func (h *Headers) find(name string) int {
	for i, entry := range h.entries {
		if strcomp.EqualFold(name, entry.Name) {
			return i
		}
	}

	return -1
}

func clone[T any](source []T) []T {
	if len(source) == 0 {
		return nil
	}

	newSlice := make([]T, len(source))
	copy(newSlice, source)

	return newSlice
}
