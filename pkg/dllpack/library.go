package dllpack

import (
	"context"

	"github.com/pkg/errors"
	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
)

// backendKind discriminates the two variants of Library and Function.
type backendKind int

const (
	nativeBackend backendKind = iota
	wasmBackend
)

// nativeHandle is one opened native shared object, by symbol-resolution
// handle (as returned by the platform dynamic linker via purego).
type nativeHandle uintptr

// nativeLibrary owns the primary dynamic library together with every
// transitive native dependency. deps are held solely to pin their
// mappings in the process address space until the handle is dropped;
// ordering matches the resolver's emission order.
type nativeLibrary struct {
	primary nativeHandle
	deps    []nativeHandle
}

// wasmLibrary co-owns a WebAssembly instance and its execution context:
// any typed call must be issued against the same runtime/context that
// instantiated the function.
type wasmLibrary struct {
	runtime  wazero.Runtime
	instance api.Module
	ctx      context.Context
}

// Library is the unified handle over a native dynamic library (plus its
// transitive native dependencies held live) or a WebAssembly instance
// (plus its store).
type Library struct {
	kind   backendKind
	native *nativeLibrary
	wasm   *wasmLibrary
}

// Kind reports which backend this handle was loaded through.
func (l *Library) Kind() string {
	if l.kind == wasmBackend {
		return "wasm"
	}
	return "native"
}

// Close releases the underlying OS/WebAssembly resources. For the native
// backend this is best-effort: purego, the cgo-free dynamic-linker binding
// this module uses, does not expose an unload primitive, so native
// handles are released only when the process exits (documented in
// DESIGN.md). For the WebAssembly backend, the instance and its owning
// runtime are closed, releasing all associated memory.
func (l *Library) Close(ctx context.Context) error {
	if l.kind == wasmBackend && l.wasm != nil {
		if err := l.wasm.instance.Close(ctx); err != nil {
			return errors.Wrap(err, "closing wasm instance")
		}
		return errors.Wrap(l.wasm.runtime.Close(ctx), "closing wasm runtime")
	}
	return nil
}

// symbolAddress resolves name against the primary native handle, wrapping
// a missing symbol as SymbolNotFoundError.
func (l *nativeLibrary) symbolAddress(name string) (uintptr, error) {
	addr, err := dlsym(uintptr(l.primary), name)
	if err != nil {
		return 0, &SymbolNotFoundError{Name: name}
	}
	return addr, nil
}

// exportedFunction resolves name against the wasm instance, wrapping a
// missing export as SymbolNotFoundError.
func (l *wasmLibrary) exportedFunction(name string) (api.Function, error) {
	fn := l.instance.ExportedFunction(name)
	if fn == nil {
		return nil, &SymbolNotFoundError{Name: name}
	}
	return fn, nil
}
