package models

import "fmt"

// Package represents one parsed desc entry of a sync database.
// It is immutable once built: accessors hand out copies.
type Package struct {
	name     string
	metadata map[string][]string
}

// NewPackage builds a Package from parsed metadata. The name is taken
// from the first line of the "name" field, which must be present.
func NewPackage(metadata map[string][]string) (*Package, error) {
	names, ok := metadata["name"]
	if !ok {
		return nil, fmt.Errorf("missing %%NAME%% field")
	}
	if len(names) == 0 || names[0] == "" {
		return nil, fmt.Errorf("empty %%NAME%% field")
	}

	md := make(map[string][]string, len(metadata))
	for k, v := range metadata {
		md[k] = cloneValues(v)
	}

	return &Package{
		name:     names[0],
		metadata: md,
	}, nil
}

// Name returns the package name
func (p *Package) Name() string {
	return p.name
}

// Metadata returns a copy of every field, keyed by lower-cased field name
func (p *Package) Metadata() map[string][]string {
	md := make(map[string][]string, len(p.metadata))
	for k, v := range p.metadata {
		md[k] = cloneValues(v)
	}
	return md
}

// Values returns the value lines of a field, or nil when absent
func (p *Package) Values(key string) []string {
	v, ok := p.metadata[key]
	if !ok {
		return nil
	}
	return cloneValues(v)
}

// Has reports whether the field was present in the descriptor
func (p *Package) Has(key string) bool {
	_, ok := p.metadata[key]
	return ok
}

// Field returns the first value line of a field, or "" when absent
func (p *Package) Field(key string) string {
	if v := p.metadata[key]; len(v) > 0 {
		return v[0]
	}
	return ""
}

// Version returns the %VERSION% field
func (p *Package) Version() string {
	return p.Field("version")
}

// Arch returns the %ARCH% field
func (p *Package) Arch() string {
	return p.Field("arch")
}

// Depends returns the %DEPENDS% lines
func (p *Package) Depends() []string {
	return p.Values("depends")
}

// Identity returns a name:version:arch triple for display
func (p *Package) Identity() string {
	return fmt.Sprintf("%s:%s:%s", p.name, p.Version(), p.Arch())
}

func cloneValues(v []string) []string {
	out := make([]string, len(v))
	copy(out, v)
	return out
}
