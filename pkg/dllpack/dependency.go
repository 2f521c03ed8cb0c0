package dllpack

import (
	"encoding/json"
	"strings"

	"github.com/pkg/errors"
)

// DependencyKind discriminates the two variants of Dependency.
type DependencyKind string

const (
	// DependencyRawLib is a platform binary downloaded as-is.
	DependencyRawLib DependencyKind = "rawlib"
	// DependencyDllPack is another manifest document, resolved recursively.
	DependencyDllPack DependencyKind = "dllpack"
)

// Dependency is a tagged union: either a RawLib (a binary to download
// directly) or a DllPack (another manifest to recurse into). Kind
// discriminates which fields are meaningful.
type Dependency struct {
	Kind DependencyKind

	URL string

	// Name is only meaningful for RawLib; when empty the last URL path
	// segment is used.
	Name string
}

// dependencyWire is the JSON wire shape of a Dependency.
type dependencyWire struct {
	Type string `json:"type"`
	URL  string `json:"url"`
	Name string `json:"name,omitempty"`
}

// UnmarshalJSON rejects any "type" other than "rawlib"/"dllpack": unknown
// values must fail parsing.
func (d *Dependency) UnmarshalJSON(data []byte) error {
	var wire dependencyWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return errors.Wrap(err, "decoding dependency")
	}

	switch DependencyKind(wire.Type) {
	case DependencyRawLib:
		d.Kind = DependencyRawLib
	case DependencyDllPack:
		d.Kind = DependencyDllPack
	default:
		return errors.Errorf("unknown dependency type %q", wire.Type)
	}

	d.URL = wire.URL
	d.Name = wire.Name
	return nil
}

// MarshalJSON is the inverse of UnmarshalJSON.
func (d Dependency) MarshalJSON() ([]byte, error) {
	wire := dependencyWire{
		Type: string(d.Kind),
		URL:  d.URL,
		Name: d.Name,
	}
	return json.Marshal(wire)
}

// resolvedName returns Name if set, else the last path segment of URL.
func (d Dependency) resolvedName() string {
	if d.Name != "" {
		return d.Name
	}
	return lastURLPathSegment(d.URL)
}

// lastURLPathSegment returns the last "/"-delimited, non-empty segment of
// a URL (the host, for a URL with no path), used as the default artifact
// filename when a manifest entry omits "name".
func lastURLPathSegment(rawURL string) string {
	trimmed := strings.TrimRight(rawURL, "/")
	if idx := strings.LastIndexByte(trimmed, '/'); idx >= 0 {
		return trimmed[idx+1:]
	}
	return trimmed
}
