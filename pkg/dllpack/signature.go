package dllpack

import (
	"fmt"
	"reflect"

	"github.com/tetratelabs/wazero/api"
)

// Typed symbol binding. For each supported arity (0 through 16) this file
// and signature_gen.go synthesize a FuncN[A1..AN, R] type pairing a tuple
// of Go input types with a result type, bindable against either backend.
//
// The native path resolves the symbol once via reflect.FuncOf-shaped
// registration (purego.RegisterFunc against a synthesized C-calling-
// convention function pointer) and calls through reflect.Value.Call.
// The wasm path resolves the named export once and calls it through
// wazero's raw uint64 ABI, encoding/decoding each value by its Go type.
//
// Calling a function bound to one backend against a Library of the other
// returns BackendMismatchError from Call, and a missing symbol/export
// returns SymbolNotFoundError at bind time (GetFunctionN).

// encodeWasmValue converts a single call argument into wasm's raw uint64
// value representation.
func encodeWasmValue(v any) uint64 {
	switch x := v.(type) {
	case int32:
		return api.EncodeI32(x)
	case uint32:
		return uint64(x)
	case int64:
		return api.EncodeI64(x)
	case uint64:
		return x
	case float32:
		return api.EncodeF32(x)
	case float64:
		return api.EncodeF64(x)
	case int:
		return api.EncodeI64(int64(x))
	case uintptr:
		return uint64(x)
	default:
		panic(fmt.Sprintf("dllpack: unsupported wasm argument type %T", v))
	}
}

// decodeWasmValue converts a single raw uint64 wasm value back into T.
func decodeWasmValue[T any](raw uint64) T {
	var zero T
	switch any(zero).(type) {
	case int32:
		return any(api.DecodeI32(raw)).(T)
	case uint32:
		return any(uint32(raw)).(T)
	case int64:
		return any(api.DecodeI64(raw)).(T)
	case uint64:
		return any(raw).(T)
	case float32:
		return any(api.DecodeF32(raw)).(T)
	case float64:
		return any(api.DecodeF64(raw)).(T)
	case int:
		return any(int(api.DecodeI64(raw))).(T)
	case uintptr:
		return any(uintptr(raw)).(T)
	default:
		panic(fmt.Sprintf("dllpack: unsupported wasm result type %T", zero))
	}
}

// nativeReflectFunc builds a reflect.Value of a func(ins...) out type and
// registers it against sym via purego, so it can be invoked through
// reflect.Value.Call. A wrong signature here is undefined behavior on the
// native path, same as any raw extern "C" function pointer.
func nativeReflectFunc(sym uintptr, ins []reflect.Type, out reflect.Type) reflect.Value {
	fnType := reflect.FuncOf(ins, []reflect.Type{out}, false)
	fnPtr := reflect.New(fnType)
	registerNativeFunc(fnPtr.Interface(), sym)
	return fnPtr.Elem()
}

// --- Arity 0 ---

// Func0 binds a zero-argument function returning R.
type Func0[R any] struct {
	kind     backendKind
	name     string
	nativeFn reflect.Value
	wasmFn   api.Function
}

// GetFunction0 looks up a zero-argument function bound against lib.
func GetFunction0[R any](lib *Library, name string) (*Func0[R], error) {
	var zero R
	if lib.kind == nativeBackend {
		sym, err := lib.native.symbolAddress(name)
		if err != nil {
			return nil, err
		}
		fn := nativeReflectFunc(sym, nil, reflect.TypeOf(zero))
		return &Func0[R]{kind: nativeBackend, name: name, nativeFn: fn}, nil
	}
	fn, err := lib.wasm.exportedFunction(name)
	if err != nil {
		return nil, err
	}
	return &Func0[R]{kind: wasmBackend, name: name, wasmFn: fn}, nil
}

// Call invokes the bound function against lib.
func (f *Func0[R]) Call(lib *Library) (R, error) {
	var zero R
	if f.kind != lib.kind {
		return zero, &BackendMismatchError{}
	}
	if f.kind == nativeBackend {
		results := f.nativeFn.Call(nil)
		return results[0].Interface().(R), nil
	}
	results, err := f.wasmFn.Call(lib.wasm.ctx)
	if err != nil {
		return zero, &WasmTrapError{Name: f.name, Err: err}
	}
	return decodeWasmValue[R](results[0]), nil
}

// --- Arity 1 ---

// Func1 binds a one-argument function returning R.
type Func1[A1, R any] struct {
	kind     backendKind
	name     string
	nativeFn reflect.Value
	wasmFn   api.Function
}

func GetFunction1[A1, R any](lib *Library, name string) (*Func1[A1, R], error) {
	var a1 A1
	var zero R
	if lib.kind == nativeBackend {
		sym, err := lib.native.symbolAddress(name)
		if err != nil {
			return nil, err
		}
		fn := nativeReflectFunc(sym, []reflect.Type{reflect.TypeOf(a1)}, reflect.TypeOf(zero))
		return &Func1[A1, R]{kind: nativeBackend, name: name, nativeFn: fn}, nil
	}
	fn, err := lib.wasm.exportedFunction(name)
	if err != nil {
		return nil, err
	}
	return &Func1[A1, R]{kind: wasmBackend, name: name, wasmFn: fn}, nil
}

func (f *Func1[A1, R]) Call(lib *Library, a1 A1) (R, error) {
	var zero R
	if f.kind != lib.kind {
		return zero, &BackendMismatchError{}
	}
	if f.kind == nativeBackend {
		results := f.nativeFn.Call([]reflect.Value{reflect.ValueOf(a1)})
		return results[0].Interface().(R), nil
	}
	results, err := f.wasmFn.Call(lib.wasm.ctx, encodeWasmValue(a1))
	if err != nil {
		return zero, &WasmTrapError{Name: f.name, Err: err}
	}
	return decodeWasmValue[R](results[0]), nil
}

// --- Arity 2 ---

// Func2 binds a two-argument function returning R.
type Func2[A1, A2, R any] struct {
	kind     backendKind
	name     string
	nativeFn reflect.Value
	wasmFn   api.Function
}

func GetFunction2[A1, A2, R any](lib *Library, name string) (*Func2[A1, A2, R], error) {
	var a1 A1
	var a2 A2
	var zero R
	if lib.kind == nativeBackend {
		sym, err := lib.native.symbolAddress(name)
		if err != nil {
			return nil, err
		}
		fn := nativeReflectFunc(sym, []reflect.Type{reflect.TypeOf(a1), reflect.TypeOf(a2)}, reflect.TypeOf(zero))
		return &Func2[A1, A2, R]{kind: nativeBackend, name: name, nativeFn: fn}, nil
	}
	fn, err := lib.wasm.exportedFunction(name)
	if err != nil {
		return nil, err
	}
	return &Func2[A1, A2, R]{kind: wasmBackend, name: name, wasmFn: fn}, nil
}

func (f *Func2[A1, A2, R]) Call(lib *Library, a1 A1, a2 A2) (R, error) {
	var zero R
	if f.kind != lib.kind {
		return zero, &BackendMismatchError{}
	}
	if f.kind == nativeBackend {
		results := f.nativeFn.Call([]reflect.Value{reflect.ValueOf(a1), reflect.ValueOf(a2)})
		return results[0].Interface().(R), nil
	}
	results, err := f.wasmFn.Call(lib.wasm.ctx, encodeWasmValue(a1), encodeWasmValue(a2))
	if err != nil {
		return zero, &WasmTrapError{Name: f.name, Err: err}
	}
	return decodeWasmValue[R](results[0]), nil
}

// --- Arity 3 ---

// Func3 binds a three-argument function returning R.
type Func3[A1, A2, A3, R any] struct {
	kind     backendKind
	name     string
	nativeFn reflect.Value
	wasmFn   api.Function
}

func GetFunction3[A1, A2, A3, R any](lib *Library, name string) (*Func3[A1, A2, A3, R], error) {
	var a1 A1
	var a2 A2
	var a3 A3
	var zero R
	if lib.kind == nativeBackend {
		sym, err := lib.native.symbolAddress(name)
		if err != nil {
			return nil, err
		}
		fn := nativeReflectFunc(sym, []reflect.Type{reflect.TypeOf(a1), reflect.TypeOf(a2), reflect.TypeOf(a3)}, reflect.TypeOf(zero))
		return &Func3[A1, A2, A3, R]{kind: nativeBackend, name: name, nativeFn: fn}, nil
	}
	fn, err := lib.wasm.exportedFunction(name)
	if err != nil {
		return nil, err
	}
	return &Func3[A1, A2, A3, R]{kind: wasmBackend, name: name, wasmFn: fn}, nil
}

func (f *Func3[A1, A2, A3, R]) Call(lib *Library, a1 A1, a2 A2, a3 A3) (R, error) {
	var zero R
	if f.kind != lib.kind {
		return zero, &BackendMismatchError{}
	}
	if f.kind == nativeBackend {
		results := f.nativeFn.Call([]reflect.Value{reflect.ValueOf(a1), reflect.ValueOf(a2), reflect.ValueOf(a3)})
		return results[0].Interface().(R), nil
	}
	results, err := f.wasmFn.Call(lib.wasm.ctx, encodeWasmValue(a1), encodeWasmValue(a2), encodeWasmValue(a3))
	if err != nil {
		return zero, &WasmTrapError{Name: f.name, Err: err}
	}
	return decodeWasmValue[R](results[0]), nil
}

// --- Arity 4 ---

// Func4 binds a four-argument function returning R.
type Func4[A1, A2, A3, A4, R any] struct {
	kind     backendKind
	name     string
	nativeFn reflect.Value
	wasmFn   api.Function
}

func GetFunction4[A1, A2, A3, A4, R any](lib *Library, name string) (*Func4[A1, A2, A3, A4, R], error) {
	var a1 A1
	var a2 A2
	var a3 A3
	var a4 A4
	var zero R
	if lib.kind == nativeBackend {
		sym, err := lib.native.symbolAddress(name)
		if err != nil {
			return nil, err
		}
		fn := nativeReflectFunc(sym, []reflect.Type{reflect.TypeOf(a1), reflect.TypeOf(a2), reflect.TypeOf(a3), reflect.TypeOf(a4)}, reflect.TypeOf(zero))
		return &Func4[A1, A2, A3, A4, R]{kind: nativeBackend, name: name, nativeFn: fn}, nil
	}
	fn, err := lib.wasm.exportedFunction(name)
	if err != nil {
		return nil, err
	}
	return &Func4[A1, A2, A3, A4, R]{kind: wasmBackend, name: name, wasmFn: fn}, nil
}

func (f *Func4[A1, A2, A3, A4, R]) Call(lib *Library, a1 A1, a2 A2, a3 A3, a4 A4) (R, error) {
	var zero R
	if f.kind != lib.kind {
		return zero, &BackendMismatchError{}
	}
	if f.kind == nativeBackend {
		results := f.nativeFn.Call([]reflect.Value{reflect.ValueOf(a1), reflect.ValueOf(a2), reflect.ValueOf(a3), reflect.ValueOf(a4)})
		return results[0].Interface().(R), nil
	}
	results, err := f.wasmFn.Call(lib.wasm.ctx, encodeWasmValue(a1), encodeWasmValue(a2), encodeWasmValue(a3), encodeWasmValue(a4))
	if err != nil {
		return zero, &WasmTrapError{Name: f.name, Err: err}
	}
	return decodeWasmValue[R](results[0]), nil
}
