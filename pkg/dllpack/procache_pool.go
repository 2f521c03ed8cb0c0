package dllpack

import (
	"context"
	"sync"

	"github.com/pkg/errors"
)

// The pooled cache is a process-global Source -> *resourcePool map, where
// each pool holds idle Library instances for that Source. Unlike the
// single-instance cache, this lets multiple goroutines use the same
// Source concurrently, each against its own Library.
//
// Go has no destructor, so a borrowed Library is returned to its pool via
// an explicit Release method plus a RunPooled wrapper that calls it
// through defer, restoring it on every exit path including panics.
type resourcePool struct {
	mu        sync.Mutex
	available []*Library
	inUse     int
}

var (
	poolCacheMu sync.RWMutex
	poolCache   = map[Source]*resourcePool{}
)

func poolFor(source Source) *resourcePool {
	poolCacheMu.RLock()
	p, ok := poolCache[source]
	poolCacheMu.RUnlock()
	if ok {
		return p
	}

	poolCacheMu.Lock()
	defer poolCacheMu.Unlock()
	if p, ok := poolCache[source]; ok {
		return p
	}
	p = &resourcePool{}
	poolCache[source] = p
	return p
}

// ResourceGuard holds one Library borrowed from a pool. Release returns it
// so a later acquire for the same Source can reuse it.
type ResourceGuard struct {
	source  Source
	pool    *resourcePool
	library *Library
}

// Library returns the borrowed handle.
func (g *ResourceGuard) Library() *Library {
	return g.library
}

// Release returns the borrowed Library to its pool. Safe to call at most
// once; callers should prefer RunPooled/RunPooledWithPlatform, which call
// this via defer automatically.
func (g *ResourceGuard) Release() {
	if g.library == nil {
		return
	}
	g.pool.mu.Lock()
	g.pool.available = append(g.pool.available, g.library)
	g.pool.inUse--
	g.pool.mu.Unlock()
	log.WithField("url", g.source.URL).Debug("pool cache: returned library")
	g.library = nil
}

// AcquireWithPlatform borrows an idle Library for (url, platform), loading a
// new one if the pool has none idle. Callers must call Release (or use
// RunPooledWithPlatform) to return it.
func AcquireWithPlatform(ctx context.Context, rawURL, workDir, platform string) (*ResourceGuard, error) {
	source := Source{URL: rawURL, Platform: platform}
	pool := poolFor(source)

	pool.mu.Lock()
	if n := len(pool.available); n > 0 {
		lib := pool.available[n-1]
		pool.available = pool.available[:n-1]
		pool.inUse++
		pool.mu.Unlock()
		log.WithField("url", rawURL).Debug("pool cache: reusing existing library")
		return &ResourceGuard{source: source, pool: pool, library: lib}, nil
	}
	pool.mu.Unlock()

	log.WithField("url", rawURL).Debug("pool cache: creating new library")
	lib, err := LoadWithPlatform(ctx, rawURL, workDir, platform)
	if err != nil {
		return nil, err
	}

	pool.mu.Lock()
	pool.inUse++
	pool.mu.Unlock()

	return &ResourceGuard{source: source, pool: pool, library: lib}, nil
}

// RunPooledWithPlatform borrows a Library for (url, platform), invokes run
// against it, and returns it to the pool before returning, whatever path
// run takes to return (including a panic unwinding through it).
func RunPooledWithPlatform[T any](ctx context.Context, rawURL, workDir, platform string, run func(*Library) (T, error)) (T, error) {
	var zero T
	guard, err := AcquireWithPlatform(ctx, rawURL, workDir, platform)
	if err != nil {
		return zero, err
	}
	defer guard.Release()

	return run(guard.Library())
}

// RunPooled is RunPooledWithPlatform for the host platform, falling back to
// WebAssembly when the host platform is unsupported.
func RunPooled[T any](ctx context.Context, rawURL, workDir string, run func(*Library) (T, error)) (T, error) {
	result, err := RunPooledWithPlatform(ctx, rawURL, workDir, HostPlatform, run)
	if err == nil {
		return result, nil
	}

	var notSupported *PlatformNotSupportedError
	if !errors.As(err, &notSupported) {
		var zero T
		return zero, err
	}

	log.WithField("url", rawURL).Debug("pool cache: falling back to wasm32-wasip1")
	return RunPooledWithPlatform(ctx, rawURL, workDir, "wasm32-wasip1", run)
}
