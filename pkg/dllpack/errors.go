package dllpack

import "fmt"

// ParseError wraps a malformed manifest document: bad JSON or an
// unsupported spec-version.
type ParseError struct {
	URL    string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error for %s: %s", e.URL, e.Reason)
}

// PlatformNotSupportedError means the requested platform is not a key of
// some transitively reached manifest. load() catches this specifically to
// fall back to wasm32-wasip1.
type PlatformNotSupportedError struct {
	Platform string
}

func (e *PlatformNotSupportedError) Error() string {
	return fmt.Sprintf("platform %q is not supported", e.Platform)
}

// UnresolvedDependenciesError means Kahn's algorithm terminated with
// unresolved nodes: a cycle, or an invariant violation.
type UnresolvedDependenciesError struct {
	Platform string
}

func (e *UnresolvedDependenciesError) Error() string {
	return fmt.Sprintf("failed to resolve all dependencies for platform %q; it may be a circular dependency", e.Platform)
}

// DownloadHTTPError is a non-success HTTP status returned while fetching a
// manifest or binary.
type DownloadHTTPError struct {
	URL    string
	Status string
}

func (e *DownloadHTTPError) Error() string {
	return fmt.Sprintf("failed to download %s: %s", e.URL, e.Status)
}

// SymbolNotFoundError means the requested function name is absent from the
// loaded image.
type SymbolNotFoundError struct {
	Name string
}

func (e *SymbolNotFoundError) Error() string {
	return fmt.Sprintf("symbol not found: %s", e.Name)
}

// BackendMismatchError is raised when a function bound to one backend
// (native or WebAssembly) is invoked against a handle of the other.
type BackendMismatchError struct{}

func (e *BackendMismatchError) Error() string {
	return "function backend does not match library backend"
}

// WasmWithDependenciesError means the primary resolved to a WebAssembly
// target but its manifest declares a non-empty dependency list, which
// basic WebAssembly modules cannot express.
type WasmWithDependenciesError struct {
	URL string
}

func (e *WasmWithDependenciesError) Error() string {
	return fmt.Sprintf("wasm module %s cannot declare dependencies", e.URL)
}

// WasmTrapError wraps a runtime trap/error raised by a WebAssembly call.
type WasmTrapError struct {
	Name string
	Err  error
}

func (e *WasmTrapError) Error() string {
	return fmt.Sprintf("wasm trap calling %q: %v", e.Name, e.Err)
}

func (e *WasmTrapError) Unwrap() error {
	return e.Err
}

// UnsupportedSchemeError is raised when a URL's scheme has no registered
// download backend.
type UnsupportedSchemeError struct {
	Scheme string
}

func (e *UnsupportedSchemeError) Error() string {
	return fmt.Sprintf("unsupported URL scheme: %q", e.Scheme)
}
