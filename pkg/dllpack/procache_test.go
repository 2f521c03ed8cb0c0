package dllpack

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupWasmManifest(t *testing.T, workDir, manifestURL, artifactURL string) {
	t.Helper()
	writeManifestFile(t, workDir, manifestURL, singlePlatformManifest("wasm32-wasip1", artifactURL, "a.wasm"))
	writeBinaryFile(t, workDir, artifactURL, "a.wasm", minimalWasmModule)
}

func TestRunCachedWithPlatformLoadsOnceAcrossCalls(t *testing.T) {
	workDir := t.TempDir()
	manifestURL := "https://example.com/procache-reuse.dllpack"
	setupWasmManifest(t, workDir, manifestURL, "https://example.com/procache-reuse.wasm")

	var seen []*Library
	for i := 0; i < 3; i++ {
		_, err := RunCachedWithPlatform(context.Background(), manifestURL, workDir, "wasm32-wasip1", func(lib *Library) (struct{}, error) {
			seen = append(seen, lib)
			return struct{}{}, nil
		})
		require.NoError(t, err)
	}

	require.Len(t, seen, 3)
	assert.Same(t, seen[0], seen[1])
	assert.Same(t, seen[1], seen[2])
}

func TestRunCachedFallsBackToWasmPlatform(t *testing.T) {
	workDir := t.TempDir()
	manifestURL := "https://example.com/procache-fallback.dllpack"
	setupWasmManifest(t, workDir, manifestURL, "https://example.com/procache-fallback.wasm")

	result, err := RunCached(context.Background(), manifestURL, workDir, func(lib *Library) (string, error) {
		return lib.Kind(), nil
	})
	require.NoError(t, err)
	assert.Equal(t, "wasm", result)
}

func TestRunCachedConcurrentMissesResolveToOneSurvivor(t *testing.T) {
	workDir := t.TempDir()
	manifestURL := "https://example.com/procache-race.dllpack"
	setupWasmManifest(t, workDir, manifestURL, "https://example.com/procache-race.wasm")

	const callers = 8
	var wg sync.WaitGroup
	libs := make([]*Library, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := RunCachedWithPlatform(context.Background(), manifestURL, workDir, "wasm32-wasip1", func(lib *Library) (struct{}, error) {
				libs[i] = lib
				return struct{}{}, nil
			})
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	// The benign race is last-writer-wins: every caller got *a* handle,
	// and the one left in the cache afterward is referenced by whichever
	// caller happened to win the final insert.
	source := Source{URL: manifestURL, Platform: "wasm32-wasip1"}
	singleCacheMu.Lock()
	final := singleCache[source]
	singleCacheMu.Unlock()
	require.NotNil(t, final)

	for _, lib := range libs {
		require.NotNil(t, lib)
	}
}
