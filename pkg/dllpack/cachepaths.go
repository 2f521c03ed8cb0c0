package dllpack

import (
	"net/url"
	"path/filepath"
)

// encodeURL percent-encodes a full URL so it can be used as a single path
// component.
func encodeURL(rawURL string) string {
	return url.QueryEscape(rawURL)
}

// ManifestInfo identifies a manifest document: its URL and where it lives
// (or will live) on disk. Used as a map key: == compares both fields, and
// within one working directory OnDiskPath is derived from URL, so two
// infos there are equal exactly when their URLs are.
type ManifestInfo struct {
	URL      string
	OnDiskPath string
}

// newManifestInfo derives a ManifestInfo for url under working directory
// workDir: "W / _manifests / enc(url)".
func newManifestInfo(rawURL, workDir string) ManifestInfo {
	return ManifestInfo{
		URL:        rawURL,
		OnDiskPath: filepath.Join(workDir, "_manifests", encodeURL(rawURL)),
	}
}

// DllInfo identifies a binary artifact: its URL, resolved name, on-disk
// path, and the binary directory it lives in (used to derive the
// WebAssembly module-cache side path). Identity is by URL.
type DllInfo struct {
	URL        string
	Name       string
	OnDiskPath string
	CacheDir   string
}

// newDllInfo derives a DllInfo for (url, name) under working directory
// workDir: binary directory "W / enc(url)", binary file "<dir>/name". If
// name is empty, the last URL path segment is used.
func newDllInfo(rawURL, name, workDir string) DllInfo {
	if name == "" {
		name = lastURLPathSegment(rawURL)
	}
	dir := filepath.Join(workDir, encodeURL(rawURL))
	return DllInfo{
		URL:        rawURL,
		Name:       name,
		OnDiskPath: filepath.Join(dir, name),
		CacheDir:   dir,
	}
}

// wasmModuleCacheDir is "<binary-dir> / module-cache-<name>", the directory
// wazero's compilation cache uses to persist the compiled form of the
// WebAssembly module across loads.
func (d DllInfo) wasmModuleCacheDir() string {
	return filepath.Join(d.CacheDir, "module-cache-"+d.Name)
}

// existCacheDir returns the binary directory if it already exists on
// disk, acting as a cached-bundle probe, and "" otherwise.
func (d DllInfo) existCacheDir() (string, bool) {
	if pathExists(d.CacheDir) {
		return d.CacheDir, true
	}
	return "", false
}
