package dllpack

import (
	"github.com/ebitengine/purego"
)

// dlopenImpl and dlsymImpl indirect through purego, the cgo-free Go
// binding to the platform dynamic linker; tests override these vars to
// exercise the loader's dependency-ordering logic without real shared
// objects on disk.
var (
	dlopenImpl = purego.Dlopen
	dlsymImpl  = purego.Dlsym
)

// dlopenEager opens path with eager symbol resolution and local scope
// (RTLD_NOW | RTLD_LOCAL on Unix; the platform-default open on Windows).
func dlopenEager(path string) (uintptr, error) {
	return dlopenImpl(path, purego.RTLD_NOW|purego.RTLD_LOCAL)
}

// dlsym resolves name against an open library handle.
func dlsym(handle uintptr, name string) (uintptr, error) {
	return dlsymImpl(handle, name)
}

// registerNativeFunc binds fnPtr, a pointer to a Go func variable shaped by
// reflect.FuncOf, to the C calling convention at cfn. After this call,
// fnPtr's func value can be invoked directly and marshals its arguments
// through purego.RegisterFunc's C calling convention.
func registerNativeFunc(fnPtr any, cfn uintptr) {
	purego.RegisterFunc(fnPtr, cfn)
}
