package dllpack

import (
	"context"
	"os"
	"runtime"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/imports/wasi_snapshot_preview1"
)

// The loader resolves a manifest graph into a live Library handle by
// opening each binary through the appropriate backend, in load order.

// LoadOption customizes a Load/LoadWithPlatform call, in the style of
// wazero's own config.go functional options.
type LoadOption func(*loadConfig)

type loadConfig struct {
	wasmFallbackPlatform string
}

func defaultLoadConfig() *loadConfig {
	return &loadConfig{wasmFallbackPlatform: "wasm32-wasip1"}
}

// WithWasmFallbackPlatform overrides the platform key Load() falls back to
// when the host platform is unsupported. Defaults to "wasm32-wasip1".
func WithWasmFallbackPlatform(platform string) LoadOption {
	return func(c *loadConfig) {
		c.wasmFallbackPlatform = platform
	}
}

// HostPlatform is this process's platform key, expressed the way manifests
// key their platforms table (a GOOS-GOARCH style triple). Go has no
// compile-time target-triple constant, so this is computed from
// runtime.GOOS/runtime.GOARCH at package init.
var HostPlatform = runtime.GOOS + "-" + runtime.GOARCH

func isWasmPlatform(platform string) bool {
	return strings.Contains(platform, "wasm")
}

// LoadWithPlatform loads url for an explicit platform key, with no
// host-platform auto-selection or wasm fallback.
func LoadWithPlatform(ctx context.Context, rawURL, workDir, platform string, opts ...LoadOption) (*Library, error) {
	cfg := defaultLoadConfig()
	for _, o := range opts {
		o(cfg)
	}

	if isWasmPlatform(platform) {
		return loadWasm(ctx, rawURL, workDir, platform)
	}
	return loadNative(ctx, rawURL, workDir, platform)
}

// Load resolves and loads url for the host platform, falling back to
// WebAssembly when the host platform is unsupported by the manifest graph.
func Load(ctx context.Context, rawURL, workDir string, opts ...LoadOption) (*Library, error) {
	cfg := defaultLoadConfig()
	for _, o := range opts {
		o(cfg)
	}

	lib, err := loadNative(ctx, rawURL, workDir, HostPlatform)
	if err == nil {
		return lib, nil
	}

	var notSupported *PlatformNotSupportedError
	if !errors.As(err, &notSupported) {
		return nil, err
	}

	log.WithField("url", rawURL).Debug("host platform unsupported, falling back to wasm")
	return loadWasm(ctx, rawURL, workDir, cfg.wasmFallbackPlatform)
}

// loadNative resolves url for platform and opens the primary and every
// transitive native dependency, in resolver emission order (each
// dependency opened strictly before anything that depends on it).
func loadNative(ctx context.Context, rawURL, workDir, platform string) (*Library, error) {
	log.WithFields(logrus.Fields{"platform": platform, "url": rawURL}).Debug("toplevel-load")

	primary, deps, err := Resolve(ctx, rawURL, workDir, platform)
	if err != nil {
		return nil, err
	}

	depHandles := make([]nativeHandle, 0, len(deps))
	for _, d := range deps {
		log.WithField("url", d.URL).Trace("loading dependency")
		h, err := dlopenEager(d.OnDiskPath)
		if err != nil {
			return nil, errors.Wrapf(err, "opening dependency %s", d.URL)
		}
		depHandles = append(depHandles, nativeHandle(h))
	}

	log.WithField("url", primary.URL).Trace("loading base library")
	h, err := dlopenEager(primary.OnDiskPath)
	if err != nil {
		return nil, errors.Wrapf(err, "opening base library %s", primary.URL)
	}

	return &Library{
		kind: nativeBackend,
		native: &nativeLibrary{
			primary: nativeHandle(h),
			deps:    depHandles,
		},
	}, nil
}

// loadWasm resolves url for platform and instantiates it as a WebAssembly
// module. A basic wasm module cannot declare dependencies; a non-empty
// dependency list is rejected as WasmWithDependenciesError.
func loadWasm(ctx context.Context, rawURL, workDir, platform string) (*Library, error) {
	log.WithFields(logrus.Fields{"platform": platform, "url": rawURL}).Debug("toplevel-load")

	baseInfo := newManifestInfo(rawURL, workDir)
	if err := cachedFetchManifest(ctx, baseInfo); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(baseInfo.OnDiskPath)
	if err != nil {
		return nil, errors.Wrapf(err, "reading manifest %s", baseInfo.OnDiskPath)
	}
	file, err := ParseDllPackFile(data)
	if err != nil {
		return nil, err
	}
	if pm, ok := file.Manifest.Platforms[platform]; ok && len(pm.Dependencies) > 0 {
		return nil, &WasmWithDependenciesError{URL: rawURL}
	}

	primary, deps, err := Resolve(ctx, rawURL, workDir, platform)
	if err != nil {
		return nil, err
	}
	if len(deps) > 0 {
		return nil, &WasmWithDependenciesError{URL: rawURL}
	}

	cacheDir := primary.wasmModuleCacheDir()
	if err := os.MkdirAll(cacheDir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "creating wasm compilation cache dir %s", cacheDir)
	}
	compilationCache, err := wazero.NewCompilationCacheWithDir(cacheDir)
	if err != nil {
		return nil, errors.Wrap(err, "opening wasm compilation cache")
	}

	runtimeConfig := wazero.NewRuntimeConfig().WithCompilationCache(compilationCache)
	rt := wazero.NewRuntimeWithConfig(ctx, runtimeConfig)

	if _, err := wasi_snapshot_preview1.Instantiate(ctx, rt); err != nil {
		_ = rt.Close(ctx)
		return nil, errors.Wrap(err, "instantiating wasi_snapshot_preview1")
	}

	wasmBin, err := os.ReadFile(primary.OnDiskPath)
	if err != nil {
		_ = rt.Close(ctx)
		return nil, errors.Wrapf(err, "reading wasm binary %s", primary.OnDiskPath)
	}

	compiled, err := rt.CompileModule(ctx, wasmBin)
	if err != nil {
		_ = rt.Close(ctx)
		return nil, errors.Wrap(err, "compiling wasm module")
	}

	fsConfig := wazero.NewFSConfig().WithDirMount("/", "/")
	moduleConfig := wazero.NewModuleConfig().
		WithStdin(os.Stdin).
		WithStdout(os.Stdout).
		WithStderr(os.Stderr).
		WithFSConfig(fsConfig)
	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok {
			moduleConfig = moduleConfig.WithEnv(k, v)
		}
	}

	instance, err := rt.InstantiateModule(ctx, compiled, moduleConfig)
	if err != nil {
		_ = rt.Close(ctx)
		return nil, errors.Wrap(err, "instantiating wasm module")
	}

	return &Library{
		kind: wasmBackend,
		wasm: &wasmLibrary{
			runtime:  rt,
			instance: instance,
			ctx:      ctx,
		},
	}, nil
}
