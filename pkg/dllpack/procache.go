package dllpack

import (
	"context"
	"sync"

	"github.com/pkg/errors"
)

// The single-instance cache is a process-global Source -> *Library map
// guarded by one mutex. Intended for libraries that are not safe to use
// concurrently from multiple goroutines — the lock is held for the
// duration of the callback on every call, serializing all access to a
// given Source. On a miss the lock is released while the library loads and
// reacquired to insert it.
type Source struct {
	URL      string
	Platform string
}

var (
	singleCacheMu sync.Mutex
	singleCache   = map[Source]*Library{}
)

// RunCachedWithPlatform loads (or reuses) the single Library cached for
// (url, platform) and invokes run against it while holding the cache lock.
func RunCachedWithPlatform[T any](ctx context.Context, rawURL, workDir, platform string, run func(*Library) (T, error)) (T, error) {
	var zero T
	source := Source{URL: rawURL, Platform: platform}

	singleCacheMu.Lock()
	if lib, ok := singleCache[source]; ok {
		defer singleCacheMu.Unlock()
		log.WithField("url", rawURL).Debug("single cache: found existing library")
		return run(lib)
	}
	singleCacheMu.Unlock()

	// Load without holding the lock, so a concurrent miss on the same key
	// doesn't block behind us. Two concurrent misses racing here is the
	// documented benign case: whichever insert happens last wins and the
	// other goroutine's handle is simply never referenced again.
	log.WithField("url", rawURL).Debug("single cache: creating new library")
	lib, err := LoadWithPlatform(ctx, rawURL, workDir, platform)
	if err != nil {
		return zero, err
	}

	singleCacheMu.Lock()
	singleCache[source] = lib
	defer singleCacheMu.Unlock()

	return run(lib)
}

// RunCached is RunCachedWithPlatform for the host platform, falling back to
// WebAssembly when the host platform is unsupported, matching Load's
// fallback behavior.
func RunCached[T any](ctx context.Context, rawURL, workDir string, run func(*Library) (T, error)) (T, error) {
	result, err := RunCachedWithPlatform(ctx, rawURL, workDir, HostPlatform, run)
	if err == nil {
		return result, nil
	}

	var notSupported *PlatformNotSupportedError
	if !errors.As(err, &notSupported) {
		var zero T
		return zero, err
	}

	log.WithField("url", rawURL).Debug("single cache: falling back to wasm32-wasip1")
	return RunCachedWithPlatform(ctx, rawURL, workDir, "wasm32-wasip1", run)
}
