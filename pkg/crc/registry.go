package crc

import (
	"fmt"
	"strings"
)

// Entry is a registry record: a parameter set and the alternative names it
// answers to.
type Entry struct {
	Params  Params
	Aliases []string
}

// Registry maps variant names to parameter sets. It is immutable once built
// and safe for concurrent use.
type Registry struct {
	entries []Entry
	index   map[string]int
}

// NewRegistry validates every entry and indexes it under its name and
// aliases. Names are compared by normalizeName.
func NewRegistry(entries ...Entry) (*Registry, error) {
	r := &Registry{
		entries: make([]Entry, 0, len(entries)),
		index:   make(map[string]int),
	}
	for _, e := range entries {
		if err := r.add(e); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func (r *Registry) add(e Entry) error {
	if err := e.Params.Validate(); err != nil {
		return err
	}
	keys := make(map[string]struct{})
	for _, name := range append([]string{e.Params.Name}, e.Aliases...) {
		key := normalizeName(name)
		if key == "" {
			return fmt.Errorf("%w: empty name for %s", ErrInvalidParams, e.Params.Name)
		}
		if _, ok := r.index[key]; ok {
			return fmt.Errorf("%w: %q", ErrDuplicateVariant, name)
		}
		keys[key] = struct{}{}
	}
	idx := len(r.entries)
	r.entries = append(r.entries, Entry{Params: e.Params, Aliases: append([]string(nil), e.Aliases...)})
	for key := range keys {
		r.index[key] = idx
	}
	return nil
}

// Extend returns a new registry holding r's entries followed by entries.
// r is left untouched.
func (r *Registry) Extend(entries ...Entry) (*Registry, error) {
	return NewRegistry(append(r.Entries(), entries...)...)
}

// Lookup returns the parameter set registered under name.
func (r *Registry) Lookup(name string) (Params, error) {
	e, err := r.LookupEntry(name)
	return e.Params, err
}

// LookupEntry is Lookup returning the aliases as well.
func (r *Registry) LookupEntry(name string) (Entry, error) {
	idx, ok := r.index[normalizeName(name)]
	if !ok {
		return Entry{}, fmt.Errorf("%w: %q", ErrUnknownVariant, name)
	}
	e := r.entries[idx]
	return Entry{Params: e.Params, Aliases: append([]string(nil), e.Aliases...)}, nil
}

// Compute looks name up and checksums data with DefaultEngine.
func (r *Registry) Compute(name string, data []byte) (uint64, error) {
	p, err := r.Lookup(name)
	if err != nil {
		return 0, err
	}
	return fastChecksum(p, data), nil
}

// Entries returns a copy of the registered entries in registration order.
func (r *Registry) Entries() []Entry {
	out := make([]Entry, len(r.entries))
	for i, e := range r.entries {
		out[i] = Entry{Params: e.Params, Aliases: append([]string(nil), e.Aliases...)}
	}
	return out
}

// Names returns the canonical variant names in registration order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.entries))
	for i, e := range r.entries {
		names[i] = e.Params.Name
	}
	return names
}

func (r *Registry) Len() int { return len(r.entries) }

// normalizeName lower-cases name and drops separators, so "CRC-16/MODBUS"
// and "crc16-modbus" are the same key.
func normalizeName(name string) string {
	var sb strings.Builder
	for _, c := range strings.ToLower(strings.TrimSpace(name)) {
		switch c {
		case '-', '/', '_', ' ', '(', ')', '.':
			continue
		}
		sb.WriteRune(c)
	}
	return sb.String()
}
