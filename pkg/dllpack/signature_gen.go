package dllpack

import (
	"reflect"

	"github.com/tetratelabs/wazero/api"
)

// Arities 5 through 16, generated in the same shape as the hand-written
// arities 0 through 4 in signature.go.

// --- Arity 5 ---

// Func5 binds a 5-argument function returning R.
type Func5[A1, A2, A3, A4, A5, R any] struct {
	kind     backendKind
	name     string
	nativeFn reflect.Value
	wasmFn   api.Function
}

func GetFunction5[A1, A2, A3, A4, A5, R any](lib *Library, name string) (*Func5[A1, A2, A3, A4, A5, R], error) {
	var a1 A1
	var a2 A2
	var a3 A3
	var a4 A4
	var a5 A5
	var zero R
	if lib.kind == nativeBackend {
		sym, err := lib.native.symbolAddress(name)
		if err != nil {
			return nil, err
		}
		fn := nativeReflectFunc(sym, []reflect.Type{reflect.TypeOf(a1), reflect.TypeOf(a2), reflect.TypeOf(a3), reflect.TypeOf(a4), reflect.TypeOf(a5)}, reflect.TypeOf(zero))
		return &Func5[A1, A2, A3, A4, A5, R]{kind: nativeBackend, name: name, nativeFn: fn}, nil
	}
	fn, err := lib.wasm.exportedFunction(name)
	if err != nil {
		return nil, err
	}
	return &Func5[A1, A2, A3, A4, A5, R]{kind: wasmBackend, name: name, wasmFn: fn}, nil
}

func (f *Func5[A1, A2, A3, A4, A5, R]) Call(lib *Library, a1 A1, a2 A2, a3 A3, a4 A4, a5 A5) (R, error) {
	var zero R
	if f.kind != lib.kind {
		return zero, &BackendMismatchError{}
	}
	if f.kind == nativeBackend {
		results := f.nativeFn.Call([]reflect.Value{reflect.ValueOf(a1), reflect.ValueOf(a2), reflect.ValueOf(a3), reflect.ValueOf(a4), reflect.ValueOf(a5)})
		return results[0].Interface().(R), nil
	}
	results, err := f.wasmFn.Call(lib.wasm.ctx, encodeWasmValue(a1), encodeWasmValue(a2), encodeWasmValue(a3), encodeWasmValue(a4), encodeWasmValue(a5))
	if err != nil {
		return zero, &WasmTrapError{Name: f.name, Err: err}
	}
	return decodeWasmValue[R](results[0]), nil
}

// --- Arity 6 ---

// Func6 binds a 6-argument function returning R.
type Func6[A1, A2, A3, A4, A5, A6, R any] struct {
	kind     backendKind
	name     string
	nativeFn reflect.Value
	wasmFn   api.Function
}

func GetFunction6[A1, A2, A3, A4, A5, A6, R any](lib *Library, name string) (*Func6[A1, A2, A3, A4, A5, A6, R], error) {
	var a1 A1
	var a2 A2
	var a3 A3
	var a4 A4
	var a5 A5
	var a6 A6
	var zero R
	if lib.kind == nativeBackend {
		sym, err := lib.native.symbolAddress(name)
		if err != nil {
			return nil, err
		}
		fn := nativeReflectFunc(sym, []reflect.Type{reflect.TypeOf(a1), reflect.TypeOf(a2), reflect.TypeOf(a3), reflect.TypeOf(a4), reflect.TypeOf(a5), reflect.TypeOf(a6)}, reflect.TypeOf(zero))
		return &Func6[A1, A2, A3, A4, A5, A6, R]{kind: nativeBackend, name: name, nativeFn: fn}, nil
	}
	fn, err := lib.wasm.exportedFunction(name)
	if err != nil {
		return nil, err
	}
	return &Func6[A1, A2, A3, A4, A5, A6, R]{kind: wasmBackend, name: name, wasmFn: fn}, nil
}

func (f *Func6[A1, A2, A3, A4, A5, A6, R]) Call(lib *Library, a1 A1, a2 A2, a3 A3, a4 A4, a5 A5, a6 A6) (R, error) {
	var zero R
	if f.kind != lib.kind {
		return zero, &BackendMismatchError{}
	}
	if f.kind == nativeBackend {
		results := f.nativeFn.Call([]reflect.Value{reflect.ValueOf(a1), reflect.ValueOf(a2), reflect.ValueOf(a3), reflect.ValueOf(a4), reflect.ValueOf(a5), reflect.ValueOf(a6)})
		return results[0].Interface().(R), nil
	}
	results, err := f.wasmFn.Call(lib.wasm.ctx, encodeWasmValue(a1), encodeWasmValue(a2), encodeWasmValue(a3), encodeWasmValue(a4), encodeWasmValue(a5), encodeWasmValue(a6))
	if err != nil {
		return zero, &WasmTrapError{Name: f.name, Err: err}
	}
	return decodeWasmValue[R](results[0]), nil
}

// --- Arity 7 ---

// Func7 binds a 7-argument function returning R.
type Func7[A1, A2, A3, A4, A5, A6, A7, R any] struct {
	kind     backendKind
	name     string
	nativeFn reflect.Value
	wasmFn   api.Function
}

func GetFunction7[A1, A2, A3, A4, A5, A6, A7, R any](lib *Library, name string) (*Func7[A1, A2, A3, A4, A5, A6, A7, R], error) {
	var a1 A1
	var a2 A2
	var a3 A3
	var a4 A4
	var a5 A5
	var a6 A6
	var a7 A7
	var zero R
	if lib.kind == nativeBackend {
		sym, err := lib.native.symbolAddress(name)
		if err != nil {
			return nil, err
		}
		fn := nativeReflectFunc(sym, []reflect.Type{reflect.TypeOf(a1), reflect.TypeOf(a2), reflect.TypeOf(a3), reflect.TypeOf(a4), reflect.TypeOf(a5), reflect.TypeOf(a6), reflect.TypeOf(a7)}, reflect.TypeOf(zero))
		return &Func7[A1, A2, A3, A4, A5, A6, A7, R]{kind: nativeBackend, name: name, nativeFn: fn}, nil
	}
	fn, err := lib.wasm.exportedFunction(name)
	if err != nil {
		return nil, err
	}
	return &Func7[A1, A2, A3, A4, A5, A6, A7, R]{kind: wasmBackend, name: name, wasmFn: fn}, nil
}

func (f *Func7[A1, A2, A3, A4, A5, A6, A7, R]) Call(lib *Library, a1 A1, a2 A2, a3 A3, a4 A4, a5 A5, a6 A6, a7 A7) (R, error) {
	var zero R
	if f.kind != lib.kind {
		return zero, &BackendMismatchError{}
	}
	if f.kind == nativeBackend {
		results := f.nativeFn.Call([]reflect.Value{reflect.ValueOf(a1), reflect.ValueOf(a2), reflect.ValueOf(a3), reflect.ValueOf(a4), reflect.ValueOf(a5), reflect.ValueOf(a6), reflect.ValueOf(a7)})
		return results[0].Interface().(R), nil
	}
	results, err := f.wasmFn.Call(lib.wasm.ctx, encodeWasmValue(a1), encodeWasmValue(a2), encodeWasmValue(a3), encodeWasmValue(a4), encodeWasmValue(a5), encodeWasmValue(a6), encodeWasmValue(a7))
	if err != nil {
		return zero, &WasmTrapError{Name: f.name, Err: err}
	}
	return decodeWasmValue[R](results[0]), nil
}

// --- Arity 8 ---

// Func8 binds a 8-argument function returning R.
type Func8[A1, A2, A3, A4, A5, A6, A7, A8, R any] struct {
	kind     backendKind
	name     string
	nativeFn reflect.Value
	wasmFn   api.Function
}

func GetFunction8[A1, A2, A3, A4, A5, A6, A7, A8, R any](lib *Library, name string) (*Func8[A1, A2, A3, A4, A5, A6, A7, A8, R], error) {
	var a1 A1
	var a2 A2
	var a3 A3
	var a4 A4
	var a5 A5
	var a6 A6
	var a7 A7
	var a8 A8
	var zero R
	if lib.kind == nativeBackend {
		sym, err := lib.native.symbolAddress(name)
		if err != nil {
			return nil, err
		}
		fn := nativeReflectFunc(sym, []reflect.Type{reflect.TypeOf(a1), reflect.TypeOf(a2), reflect.TypeOf(a3), reflect.TypeOf(a4), reflect.TypeOf(a5), reflect.TypeOf(a6), reflect.TypeOf(a7), reflect.TypeOf(a8)}, reflect.TypeOf(zero))
		return &Func8[A1, A2, A3, A4, A5, A6, A7, A8, R]{kind: nativeBackend, name: name, nativeFn: fn}, nil
	}
	fn, err := lib.wasm.exportedFunction(name)
	if err != nil {
		return nil, err
	}
	return &Func8[A1, A2, A3, A4, A5, A6, A7, A8, R]{kind: wasmBackend, name: name, wasmFn: fn}, nil
}

func (f *Func8[A1, A2, A3, A4, A5, A6, A7, A8, R]) Call(lib *Library, a1 A1, a2 A2, a3 A3, a4 A4, a5 A5, a6 A6, a7 A7, a8 A8) (R, error) {
	var zero R
	if f.kind != lib.kind {
		return zero, &BackendMismatchError{}
	}
	if f.kind == nativeBackend {
		results := f.nativeFn.Call([]reflect.Value{reflect.ValueOf(a1), reflect.ValueOf(a2), reflect.ValueOf(a3), reflect.ValueOf(a4), reflect.ValueOf(a5), reflect.ValueOf(a6), reflect.ValueOf(a7), reflect.ValueOf(a8)})
		return results[0].Interface().(R), nil
	}
	results, err := f.wasmFn.Call(lib.wasm.ctx, encodeWasmValue(a1), encodeWasmValue(a2), encodeWasmValue(a3), encodeWasmValue(a4), encodeWasmValue(a5), encodeWasmValue(a6), encodeWasmValue(a7), encodeWasmValue(a8))
	if err != nil {
		return zero, &WasmTrapError{Name: f.name, Err: err}
	}
	return decodeWasmValue[R](results[0]), nil
}

// --- Arity 9 ---

// Func9 binds a 9-argument function returning R.
type Func9[A1, A2, A3, A4, A5, A6, A7, A8, A9, R any] struct {
	kind     backendKind
	name     string
	nativeFn reflect.Value
	wasmFn   api.Function
}

func GetFunction9[A1, A2, A3, A4, A5, A6, A7, A8, A9, R any](lib *Library, name string) (*Func9[A1, A2, A3, A4, A5, A6, A7, A8, A9, R], error) {
	var a1 A1
	var a2 A2
	var a3 A3
	var a4 A4
	var a5 A5
	var a6 A6
	var a7 A7
	var a8 A8
	var a9 A9
	var zero R
	if lib.kind == nativeBackend {
		sym, err := lib.native.symbolAddress(name)
		if err != nil {
			return nil, err
		}
		fn := nativeReflectFunc(sym, []reflect.Type{reflect.TypeOf(a1), reflect.TypeOf(a2), reflect.TypeOf(a3), reflect.TypeOf(a4), reflect.TypeOf(a5), reflect.TypeOf(a6), reflect.TypeOf(a7), reflect.TypeOf(a8), reflect.TypeOf(a9)}, reflect.TypeOf(zero))
		return &Func9[A1, A2, A3, A4, A5, A6, A7, A8, A9, R]{kind: nativeBackend, name: name, nativeFn: fn}, nil
	}
	fn, err := lib.wasm.exportedFunction(name)
	if err != nil {
		return nil, err
	}
	return &Func9[A1, A2, A3, A4, A5, A6, A7, A8, A9, R]{kind: wasmBackend, name: name, wasmFn: fn}, nil
}

func (f *Func9[A1, A2, A3, A4, A5, A6, A7, A8, A9, R]) Call(lib *Library, a1 A1, a2 A2, a3 A3, a4 A4, a5 A5, a6 A6, a7 A7, a8 A8, a9 A9) (R, error) {
	var zero R
	if f.kind != lib.kind {
		return zero, &BackendMismatchError{}
	}
	if f.kind == nativeBackend {
		results := f.nativeFn.Call([]reflect.Value{reflect.ValueOf(a1), reflect.ValueOf(a2), reflect.ValueOf(a3), reflect.ValueOf(a4), reflect.ValueOf(a5), reflect.ValueOf(a6), reflect.ValueOf(a7), reflect.ValueOf(a8), reflect.ValueOf(a9)})
		return results[0].Interface().(R), nil
	}
	results, err := f.wasmFn.Call(lib.wasm.ctx, encodeWasmValue(a1), encodeWasmValue(a2), encodeWasmValue(a3), encodeWasmValue(a4), encodeWasmValue(a5), encodeWasmValue(a6), encodeWasmValue(a7), encodeWasmValue(a8), encodeWasmValue(a9))
	if err != nil {
		return zero, &WasmTrapError{Name: f.name, Err: err}
	}
	return decodeWasmValue[R](results[0]), nil
}

// --- Arity 10 ---

// Func10 binds a 10-argument function returning R.
type Func10[A1, A2, A3, A4, A5, A6, A7, A8, A9, A10, R any] struct {
	kind     backendKind
	name     string
	nativeFn reflect.Value
	wasmFn   api.Function
}

func GetFunction10[A1, A2, A3, A4, A5, A6, A7, A8, A9, A10, R any](lib *Library, name string) (*Func10[A1, A2, A3, A4, A5, A6, A7, A8, A9, A10, R], error) {
	var a1 A1
	var a2 A2
	var a3 A3
	var a4 A4
	var a5 A5
	var a6 A6
	var a7 A7
	var a8 A8
	var a9 A9
	var a10 A10
	var zero R
	if lib.kind == nativeBackend {
		sym, err := lib.native.symbolAddress(name)
		if err != nil {
			return nil, err
		}
		fn := nativeReflectFunc(sym, []reflect.Type{reflect.TypeOf(a1), reflect.TypeOf(a2), reflect.TypeOf(a3), reflect.TypeOf(a4), reflect.TypeOf(a5), reflect.TypeOf(a6), reflect.TypeOf(a7), reflect.TypeOf(a8), reflect.TypeOf(a9), reflect.TypeOf(a10)}, reflect.TypeOf(zero))
		return &Func10[A1, A2, A3, A4, A5, A6, A7, A8, A9, A10, R]{kind: nativeBackend, name: name, nativeFn: fn}, nil
	}
	fn, err := lib.wasm.exportedFunction(name)
	if err != nil {
		return nil, err
	}
	return &Func10[A1, A2, A3, A4, A5, A6, A7, A8, A9, A10, R]{kind: wasmBackend, name: name, wasmFn: fn}, nil
}

func (f *Func10[A1, A2, A3, A4, A5, A6, A7, A8, A9, A10, R]) Call(lib *Library, a1 A1, a2 A2, a3 A3, a4 A4, a5 A5, a6 A6, a7 A7, a8 A8, a9 A9, a10 A10) (R, error) {
	var zero R
	if f.kind != lib.kind {
		return zero, &BackendMismatchError{}
	}
	if f.kind == nativeBackend {
		results := f.nativeFn.Call([]reflect.Value{reflect.ValueOf(a1), reflect.ValueOf(a2), reflect.ValueOf(a3), reflect.ValueOf(a4), reflect.ValueOf(a5), reflect.ValueOf(a6), reflect.ValueOf(a7), reflect.ValueOf(a8), reflect.ValueOf(a9), reflect.ValueOf(a10)})
		return results[0].Interface().(R), nil
	}
	results, err := f.wasmFn.Call(lib.wasm.ctx, encodeWasmValue(a1), encodeWasmValue(a2), encodeWasmValue(a3), encodeWasmValue(a4), encodeWasmValue(a5), encodeWasmValue(a6), encodeWasmValue(a7), encodeWasmValue(a8), encodeWasmValue(a9), encodeWasmValue(a10))
	if err != nil {
		return zero, &WasmTrapError{Name: f.name, Err: err}
	}
	return decodeWasmValue[R](results[0]), nil
}

// --- Arity 11 ---

// Func11 binds a 11-argument function returning R.
type Func11[A1, A2, A3, A4, A5, A6, A7, A8, A9, A10, A11, R any] struct {
	kind     backendKind
	name     string
	nativeFn reflect.Value
	wasmFn   api.Function
}

func GetFunction11[A1, A2, A3, A4, A5, A6, A7, A8, A9, A10, A11, R any](lib *Library, name string) (*Func11[A1, A2, A3, A4, A5, A6, A7, A8, A9, A10, A11, R], error) {
	var a1 A1
	var a2 A2
	var a3 A3
	var a4 A4
	var a5 A5
	var a6 A6
	var a7 A7
	var a8 A8
	var a9 A9
	var a10 A10
	var a11 A11
	var zero R
	if lib.kind == nativeBackend {
		sym, err := lib.native.symbolAddress(name)
		if err != nil {
			return nil, err
		}
		fn := nativeReflectFunc(sym, []reflect.Type{reflect.TypeOf(a1), reflect.TypeOf(a2), reflect.TypeOf(a3), reflect.TypeOf(a4), reflect.TypeOf(a5), reflect.TypeOf(a6), reflect.TypeOf(a7), reflect.TypeOf(a8), reflect.TypeOf(a9), reflect.TypeOf(a10), reflect.TypeOf(a11)}, reflect.TypeOf(zero))
		return &Func11[A1, A2, A3, A4, A5, A6, A7, A8, A9, A10, A11, R]{kind: nativeBackend, name: name, nativeFn: fn}, nil
	}
	fn, err := lib.wasm.exportedFunction(name)
	if err != nil {
		return nil, err
	}
	return &Func11[A1, A2, A3, A4, A5, A6, A7, A8, A9, A10, A11, R]{kind: wasmBackend, name: name, wasmFn: fn}, nil
}

func (f *Func11[A1, A2, A3, A4, A5, A6, A7, A8, A9, A10, A11, R]) Call(lib *Library, a1 A1, a2 A2, a3 A3, a4 A4, a5 A5, a6 A6, a7 A7, a8 A8, a9 A9, a10 A10, a11 A11) (R, error) {
	var zero R
	if f.kind != lib.kind {
		return zero, &BackendMismatchError{}
	}
	if f.kind == nativeBackend {
		results := f.nativeFn.Call([]reflect.Value{reflect.ValueOf(a1), reflect.ValueOf(a2), reflect.ValueOf(a3), reflect.ValueOf(a4), reflect.ValueOf(a5), reflect.ValueOf(a6), reflect.ValueOf(a7), reflect.ValueOf(a8), reflect.ValueOf(a9), reflect.ValueOf(a10), reflect.ValueOf(a11)})
		return results[0].Interface().(R), nil
	}
	results, err := f.wasmFn.Call(lib.wasm.ctx, encodeWasmValue(a1), encodeWasmValue(a2), encodeWasmValue(a3), encodeWasmValue(a4), encodeWasmValue(a5), encodeWasmValue(a6), encodeWasmValue(a7), encodeWasmValue(a8), encodeWasmValue(a9), encodeWasmValue(a10), encodeWasmValue(a11))
	if err != nil {
		return zero, &WasmTrapError{Name: f.name, Err: err}
	}
	return decodeWasmValue[R](results[0]), nil
}

// --- Arity 12 ---

// Func12 binds a 12-argument function returning R.
type Func12[A1, A2, A3, A4, A5, A6, A7, A8, A9, A10, A11, A12, R any] struct {
	kind     backendKind
	name     string
	nativeFn reflect.Value
	wasmFn   api.Function
}

func GetFunction12[A1, A2, A3, A4, A5, A6, A7, A8, A9, A10, A11, A12, R any](lib *Library, name string) (*Func12[A1, A2, A3, A4, A5, A6, A7, A8, A9, A10, A11, A12, R], error) {
	var a1 A1
	var a2 A2
	var a3 A3
	var a4 A4
	var a5 A5
	var a6 A6
	var a7 A7
	var a8 A8
	var a9 A9
	var a10 A10
	var a11 A11
	var a12 A12
	var zero R
	if lib.kind == nativeBackend {
		sym, err := lib.native.symbolAddress(name)
		if err != nil {
			return nil, err
		}
		fn := nativeReflectFunc(sym, []reflect.Type{reflect.TypeOf(a1), reflect.TypeOf(a2), reflect.TypeOf(a3), reflect.TypeOf(a4), reflect.TypeOf(a5), reflect.TypeOf(a6), reflect.TypeOf(a7), reflect.TypeOf(a8), reflect.TypeOf(a9), reflect.TypeOf(a10), reflect.TypeOf(a11), reflect.TypeOf(a12)}, reflect.TypeOf(zero))
		return &Func12[A1, A2, A3, A4, A5, A6, A7, A8, A9, A10, A11, A12, R]{kind: nativeBackend, name: name, nativeFn: fn}, nil
	}
	fn, err := lib.wasm.exportedFunction(name)
	if err != nil {
		return nil, err
	}
	return &Func12[A1, A2, A3, A4, A5, A6, A7, A8, A9, A10, A11, A12, R]{kind: wasmBackend, name: name, wasmFn: fn}, nil
}

func (f *Func12[A1, A2, A3, A4, A5, A6, A7, A8, A9, A10, A11, A12, R]) Call(lib *Library, a1 A1, a2 A2, a3 A3, a4 A4, a5 A5, a6 A6, a7 A7, a8 A8, a9 A9, a10 A10, a11 A11, a12 A12) (R, error) {
	var zero R
	if f.kind != lib.kind {
		return zero, &BackendMismatchError{}
	}
	if f.kind == nativeBackend {
		results := f.nativeFn.Call([]reflect.Value{reflect.ValueOf(a1), reflect.ValueOf(a2), reflect.ValueOf(a3), reflect.ValueOf(a4), reflect.ValueOf(a5), reflect.ValueOf(a6), reflect.ValueOf(a7), reflect.ValueOf(a8), reflect.ValueOf(a9), reflect.ValueOf(a10), reflect.ValueOf(a11), reflect.ValueOf(a12)})
		return results[0].Interface().(R), nil
	}
	results, err := f.wasmFn.Call(lib.wasm.ctx, encodeWasmValue(a1), encodeWasmValue(a2), encodeWasmValue(a3), encodeWasmValue(a4), encodeWasmValue(a5), encodeWasmValue(a6), encodeWasmValue(a7), encodeWasmValue(a8), encodeWasmValue(a9), encodeWasmValue(a10), encodeWasmValue(a11), encodeWasmValue(a12))
	if err != nil {
		return zero, &WasmTrapError{Name: f.name, Err: err}
	}
	return decodeWasmValue[R](results[0]), nil
}

// --- Arity 13 ---

// Func13 binds a 13-argument function returning R.
type Func13[A1, A2, A3, A4, A5, A6, A7, A8, A9, A10, A11, A12, A13, R any] struct {
	kind     backendKind
	name     string
	nativeFn reflect.Value
	wasmFn   api.Function
}

func GetFunction13[A1, A2, A3, A4, A5, A6, A7, A8, A9, A10, A11, A12, A13, R any](lib *Library, name string) (*Func13[A1, A2, A3, A4, A5, A6, A7, A8, A9, A10, A11, A12, A13, R], error) {
	var a1 A1
	var a2 A2
	var a3 A3
	var a4 A4
	var a5 A5
	var a6 A6
	var a7 A7
	var a8 A8
	var a9 A9
	var a10 A10
	var a11 A11
	var a12 A12
	var a13 A13
	var zero R
	if lib.kind == nativeBackend {
		sym, err := lib.native.symbolAddress(name)
		if err != nil {
			return nil, err
		}
		fn := nativeReflectFunc(sym, []reflect.Type{reflect.TypeOf(a1), reflect.TypeOf(a2), reflect.TypeOf(a3), reflect.TypeOf(a4), reflect.TypeOf(a5), reflect.TypeOf(a6), reflect.TypeOf(a7), reflect.TypeOf(a8), reflect.TypeOf(a9), reflect.TypeOf(a10), reflect.TypeOf(a11), reflect.TypeOf(a12), reflect.TypeOf(a13)}, reflect.TypeOf(zero))
		return &Func13[A1, A2, A3, A4, A5, A6, A7, A8, A9, A10, A11, A12, A13, R]{kind: nativeBackend, name: name, nativeFn: fn}, nil
	}
	fn, err := lib.wasm.exportedFunction(name)
	if err != nil {
		return nil, err
	}
	return &Func13[A1, A2, A3, A4, A5, A6, A7, A8, A9, A10, A11, A12, A13, R]{kind: wasmBackend, name: name, wasmFn: fn}, nil
}

func (f *Func13[A1, A2, A3, A4, A5, A6, A7, A8, A9, A10, A11, A12, A13, R]) Call(lib *Library, a1 A1, a2 A2, a3 A3, a4 A4, a5 A5, a6 A6, a7 A7, a8 A8, a9 A9, a10 A10, a11 A11, a12 A12, a13 A13) (R, error) {
	var zero R
	if f.kind != lib.kind {
		return zero, &BackendMismatchError{}
	}
	if f.kind == nativeBackend {
		results := f.nativeFn.Call([]reflect.Value{reflect.ValueOf(a1), reflect.ValueOf(a2), reflect.ValueOf(a3), reflect.ValueOf(a4), reflect.ValueOf(a5), reflect.ValueOf(a6), reflect.ValueOf(a7), reflect.ValueOf(a8), reflect.ValueOf(a9), reflect.ValueOf(a10), reflect.ValueOf(a11), reflect.ValueOf(a12), reflect.ValueOf(a13)})
		return results[0].Interface().(R), nil
	}
	results, err := f.wasmFn.Call(lib.wasm.ctx, encodeWasmValue(a1), encodeWasmValue(a2), encodeWasmValue(a3), encodeWasmValue(a4), encodeWasmValue(a5), encodeWasmValue(a6), encodeWasmValue(a7), encodeWasmValue(a8), encodeWasmValue(a9), encodeWasmValue(a10), encodeWasmValue(a11), encodeWasmValue(a12), encodeWasmValue(a13))
	if err != nil {
		return zero, &WasmTrapError{Name: f.name, Err: err}
	}
	return decodeWasmValue[R](results[0]), nil
}

// --- Arity 14 ---

// Func14 binds a 14-argument function returning R.
type Func14[A1, A2, A3, A4, A5, A6, A7, A8, A9, A10, A11, A12, A13, A14, R any] struct {
	kind     backendKind
	name     string
	nativeFn reflect.Value
	wasmFn   api.Function
}

func GetFunction14[A1, A2, A3, A4, A5, A6, A7, A8, A9, A10, A11, A12, A13, A14, R any](lib *Library, name string) (*Func14[A1, A2, A3, A4, A5, A6, A7, A8, A9, A10, A11, A12, A13, A14, R], error) {
	var a1 A1
	var a2 A2
	var a3 A3
	var a4 A4
	var a5 A5
	var a6 A6
	var a7 A7
	var a8 A8
	var a9 A9
	var a10 A10
	var a11 A11
	var a12 A12
	var a13 A13
	var a14 A14
	var zero R
	if lib.kind == nativeBackend {
		sym, err := lib.native.symbolAddress(name)
		if err != nil {
			return nil, err
		}
		fn := nativeReflectFunc(sym, []reflect.Type{reflect.TypeOf(a1), reflect.TypeOf(a2), reflect.TypeOf(a3), reflect.TypeOf(a4), reflect.TypeOf(a5), reflect.TypeOf(a6), reflect.TypeOf(a7), reflect.TypeOf(a8), reflect.TypeOf(a9), reflect.TypeOf(a10), reflect.TypeOf(a11), reflect.TypeOf(a12), reflect.TypeOf(a13), reflect.TypeOf(a14)}, reflect.TypeOf(zero))
		return &Func14[A1, A2, A3, A4, A5, A6, A7, A8, A9, A10, A11, A12, A13, A14, R]{kind: nativeBackend, name: name, nativeFn: fn}, nil
	}
	fn, err := lib.wasm.exportedFunction(name)
	if err != nil {
		return nil, err
	}
	return &Func14[A1, A2, A3, A4, A5, A6, A7, A8, A9, A10, A11, A12, A13, A14, R]{kind: wasmBackend, name: name, wasmFn: fn}, nil
}

func (f *Func14[A1, A2, A3, A4, A5, A6, A7, A8, A9, A10, A11, A12, A13, A14, R]) Call(lib *Library, a1 A1, a2 A2, a3 A3, a4 A4, a5 A5, a6 A6, a7 A7, a8 A8, a9 A9, a10 A10, a11 A11, a12 A12, a13 A13, a14 A14) (R, error) {
	var zero R
	if f.kind != lib.kind {
		return zero, &BackendMismatchError{}
	}
	if f.kind == nativeBackend {
		results := f.nativeFn.Call([]reflect.Value{reflect.ValueOf(a1), reflect.ValueOf(a2), reflect.ValueOf(a3), reflect.ValueOf(a4), reflect.ValueOf(a5), reflect.ValueOf(a6), reflect.ValueOf(a7), reflect.ValueOf(a8), reflect.ValueOf(a9), reflect.ValueOf(a10), reflect.ValueOf(a11), reflect.ValueOf(a12), reflect.ValueOf(a13), reflect.ValueOf(a14)})
		return results[0].Interface().(R), nil
	}
	results, err := f.wasmFn.Call(lib.wasm.ctx, encodeWasmValue(a1), encodeWasmValue(a2), encodeWasmValue(a3), encodeWasmValue(a4), encodeWasmValue(a5), encodeWasmValue(a6), encodeWasmValue(a7), encodeWasmValue(a8), encodeWasmValue(a9), encodeWasmValue(a10), encodeWasmValue(a11), encodeWasmValue(a12), encodeWasmValue(a13), encodeWasmValue(a14))
	if err != nil {
		return zero, &WasmTrapError{Name: f.name, Err: err}
	}
	return decodeWasmValue[R](results[0]), nil
}

// --- Arity 15 ---

// Func15 binds a 15-argument function returning R.
type Func15[A1, A2, A3, A4, A5, A6, A7, A8, A9, A10, A11, A12, A13, A14, A15, R any] struct {
	kind     backendKind
	name     string
	nativeFn reflect.Value
	wasmFn   api.Function
}

func GetFunction15[A1, A2, A3, A4, A5, A6, A7, A8, A9, A10, A11, A12, A13, A14, A15, R any](lib *Library, name string) (*Func15[A1, A2, A3, A4, A5, A6, A7, A8, A9, A10, A11, A12, A13, A14, A15, R], error) {
	var a1 A1
	var a2 A2
	var a3 A3
	var a4 A4
	var a5 A5
	var a6 A6
	var a7 A7
	var a8 A8
	var a9 A9
	var a10 A10
	var a11 A11
	var a12 A12
	var a13 A13
	var a14 A14
	var a15 A15
	var zero R
	if lib.kind == nativeBackend {
		sym, err := lib.native.symbolAddress(name)
		if err != nil {
			return nil, err
		}
		fn := nativeReflectFunc(sym, []reflect.Type{reflect.TypeOf(a1), reflect.TypeOf(a2), reflect.TypeOf(a3), reflect.TypeOf(a4), reflect.TypeOf(a5), reflect.TypeOf(a6), reflect.TypeOf(a7), reflect.TypeOf(a8), reflect.TypeOf(a9), reflect.TypeOf(a10), reflect.TypeOf(a11), reflect.TypeOf(a12), reflect.TypeOf(a13), reflect.TypeOf(a14), reflect.TypeOf(a15)}, reflect.TypeOf(zero))
		return &Func15[A1, A2, A3, A4, A5, A6, A7, A8, A9, A10, A11, A12, A13, A14, A15, R]{kind: nativeBackend, name: name, nativeFn: fn}, nil
	}
	fn, err := lib.wasm.exportedFunction(name)
	if err != nil {
		return nil, err
	}
	return &Func15[A1, A2, A3, A4, A5, A6, A7, A8, A9, A10, A11, A12, A13, A14, A15, R]{kind: wasmBackend, name: name, wasmFn: fn}, nil
}

func (f *Func15[A1, A2, A3, A4, A5, A6, A7, A8, A9, A10, A11, A12, A13, A14, A15, R]) Call(lib *Library, a1 A1, a2 A2, a3 A3, a4 A4, a5 A5, a6 A6, a7 A7, a8 A8, a9 A9, a10 A10, a11 A11, a12 A12, a13 A13, a14 A14, a15 A15) (R, error) {
	var zero R
	if f.kind != lib.kind {
		return zero, &BackendMismatchError{}
	}
	if f.kind == nativeBackend {
		results := f.nativeFn.Call([]reflect.Value{reflect.ValueOf(a1), reflect.ValueOf(a2), reflect.ValueOf(a3), reflect.ValueOf(a4), reflect.ValueOf(a5), reflect.ValueOf(a6), reflect.ValueOf(a7), reflect.ValueOf(a8), reflect.ValueOf(a9), reflect.ValueOf(a10), reflect.ValueOf(a11), reflect.ValueOf(a12), reflect.ValueOf(a13), reflect.ValueOf(a14), reflect.ValueOf(a15)})
		return results[0].Interface().(R), nil
	}
	results, err := f.wasmFn.Call(lib.wasm.ctx, encodeWasmValue(a1), encodeWasmValue(a2), encodeWasmValue(a3), encodeWasmValue(a4), encodeWasmValue(a5), encodeWasmValue(a6), encodeWasmValue(a7), encodeWasmValue(a8), encodeWasmValue(a9), encodeWasmValue(a10), encodeWasmValue(a11), encodeWasmValue(a12), encodeWasmValue(a13), encodeWasmValue(a14), encodeWasmValue(a15))
	if err != nil {
		return zero, &WasmTrapError{Name: f.name, Err: err}
	}
	return decodeWasmValue[R](results[0]), nil
}

// --- Arity 16 ---

// Func16 binds a 16-argument function returning R.
type Func16[A1, A2, A3, A4, A5, A6, A7, A8, A9, A10, A11, A12, A13, A14, A15, A16, R any] struct {
	kind     backendKind
	name     string
	nativeFn reflect.Value
	wasmFn   api.Function
}

func GetFunction16[A1, A2, A3, A4, A5, A6, A7, A8, A9, A10, A11, A12, A13, A14, A15, A16, R any](lib *Library, name string) (*Func16[A1, A2, A3, A4, A5, A6, A7, A8, A9, A10, A11, A12, A13, A14, A15, A16, R], error) {
	var a1 A1
	var a2 A2
	var a3 A3
	var a4 A4
	var a5 A5
	var a6 A6
	var a7 A7
	var a8 A8
	var a9 A9
	var a10 A10
	var a11 A11
	var a12 A12
	var a13 A13
	var a14 A14
	var a15 A15
	var a16 A16
	var zero R
	if lib.kind == nativeBackend {
		sym, err := lib.native.symbolAddress(name)
		if err != nil {
			return nil, err
		}
		fn := nativeReflectFunc(sym, []reflect.Type{reflect.TypeOf(a1), reflect.TypeOf(a2), reflect.TypeOf(a3), reflect.TypeOf(a4), reflect.TypeOf(a5), reflect.TypeOf(a6), reflect.TypeOf(a7), reflect.TypeOf(a8), reflect.TypeOf(a9), reflect.TypeOf(a10), reflect.TypeOf(a11), reflect.TypeOf(a12), reflect.TypeOf(a13), reflect.TypeOf(a14), reflect.TypeOf(a15), reflect.TypeOf(a16)}, reflect.TypeOf(zero))
		return &Func16[A1, A2, A3, A4, A5, A6, A7, A8, A9, A10, A11, A12, A13, A14, A15, A16, R]{kind: nativeBackend, name: name, nativeFn: fn}, nil
	}
	fn, err := lib.wasm.exportedFunction(name)
	if err != nil {
		return nil, err
	}
	return &Func16[A1, A2, A3, A4, A5, A6, A7, A8, A9, A10, A11, A12, A13, A14, A15, A16, R]{kind: wasmBackend, name: name, wasmFn: fn}, nil
}

func (f *Func16[A1, A2, A3, A4, A5, A6, A7, A8, A9, A10, A11, A12, A13, A14, A15, A16, R]) Call(lib *Library, a1 A1, a2 A2, a3 A3, a4 A4, a5 A5, a6 A6, a7 A7, a8 A8, a9 A9, a10 A10, a11 A11, a12 A12, a13 A13, a14 A14, a15 A15, a16 A16) (R, error) {
	var zero R
	if f.kind != lib.kind {
		return zero, &BackendMismatchError{}
	}
	if f.kind == nativeBackend {
		results := f.nativeFn.Call([]reflect.Value{reflect.ValueOf(a1), reflect.ValueOf(a2), reflect.ValueOf(a3), reflect.ValueOf(a4), reflect.ValueOf(a5), reflect.ValueOf(a6), reflect.ValueOf(a7), reflect.ValueOf(a8), reflect.ValueOf(a9), reflect.ValueOf(a10), reflect.ValueOf(a11), reflect.ValueOf(a12), reflect.ValueOf(a13), reflect.ValueOf(a14), reflect.ValueOf(a15), reflect.ValueOf(a16)})
		return results[0].Interface().(R), nil
	}
	results, err := f.wasmFn.Call(lib.wasm.ctx, encodeWasmValue(a1), encodeWasmValue(a2), encodeWasmValue(a3), encodeWasmValue(a4), encodeWasmValue(a5), encodeWasmValue(a6), encodeWasmValue(a7), encodeWasmValue(a8), encodeWasmValue(a9), encodeWasmValue(a10), encodeWasmValue(a11), encodeWasmValue(a12), encodeWasmValue(a13), encodeWasmValue(a14), encodeWasmValue(a15), encodeWasmValue(a16))
	if err != nil {
		return zero, &WasmTrapError{Name: f.name, Err: err}
	}
	return decodeWasmValue[R](results[0]), nil
}
