package dllpack

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// SpecVersion is the only manifest format version this module understands.
// Any other value is a hard parse error.
const SpecVersion = "1.0.0"

// PlatformManifest describes how to obtain the artifact for one target
// platform and what further artifacts it requires.
type PlatformManifest struct {
	URL  string `json:"url"`
	Name string `json:"name,omitempty"`
	// Dependencies is semantically unordered; identity across the graph
	// is by URL only.
	Dependencies []Dependency `json:"dependencies,omitempty"`
}

// resolvedName mirrors Dependency.resolvedName for the top-level artifact
// named by a PlatformManifest.
func (p PlatformManifest) resolvedName() string {
	if p.Name != "" {
		return p.Name
	}
	return lastURLPathSegment(p.URL)
}

// Manifest is a mapping from platform identifier to PlatformManifest.
// Keys are unique (guaranteed by being a Go map) and compared by exact
// string equality against the caller-supplied platform.
type Manifest struct {
	Platforms map[string]PlatformManifest `json:"platforms"`
}

// DllPackFile is the top-level manifest document: a spec-version tag plus
// the platform manifest.
type DllPackFile struct {
	SpecVersion string   `json:"spec-version"`
	Manifest    Manifest `json:"manifest"`
}

// ParseDllPackFile parses and validates a manifest document's bytes,
// rejecting any spec-version other than SpecVersion.
func ParseDllPackFile(data []byte) (*DllPackFile, error) {
	var file DllPackFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, &ParseError{Reason: errors.Wrap(err, "decoding dllpack file").Error()}
	}

	if file.SpecVersion != SpecVersion {
		return nil, &ParseError{Reason: "unsupported spec-version: " + file.SpecVersion}
	}

	return &file, nil
}

// Serialize is the inverse of ParseDllPackFile on the supported subset:
// for any file with SpecVersion == SpecVersion, ParseDllPackFile(file.Serialize()) == file.
func (f *DllPackFile) Serialize() ([]byte, error) {
	return json.Marshal(f)
}
