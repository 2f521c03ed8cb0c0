package dllpack

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeManifestFile(t *testing.T, workDir, url string, file *DllPackFile) {
	t.Helper()
	data, err := file.Serialize()
	require.NoError(t, err)
	info := newManifestInfo(url, workDir)
	require.NoError(t, ensureParentDir(info.OnDiskPath))
	require.NoError(t, os.WriteFile(info.OnDiskPath, data, 0o644))
}

func writeBinaryFile(t *testing.T, workDir, url, name string, content []byte) {
	t.Helper()
	info := newDllInfo(url, name, workDir)
	require.NoError(t, ensureParentDir(info.OnDiskPath))
	require.NoError(t, os.WriteFile(info.OnDiskPath, content, 0o644))
}

func singlePlatformManifest(platform, artifactURL, name string, deps ...Dependency) *DllPackFile {
	return &DllPackFile{
		SpecVersion: SpecVersion,
		Manifest: Manifest{
			Platforms: map[string]PlatformManifest{
				platform: {URL: artifactURL, Name: name, Dependencies: deps},
			},
		},
	}
}

func indexOfDepURL(deps []DllInfo, url string) int {
	for i, d := range deps {
		if d.URL == url {
			return i
		}
	}
	return -1
}

func TestResolveDiamondOrdersSharedDependencyFirst(t *testing.T) {
	workDir := t.TempDir()
	const platform = "p1"

	baseManifestURL := "https://example.com/base.dllpack"
	bManifestURL := "https://example.com/b.dllpack"
	cManifestURL := "https://example.com/c.dllpack"
	dManifestURL := "https://example.com/d.dllpack"

	baseArt := "https://example.com/base.bin"
	bArt := "https://example.com/b.bin"
	cArt := "https://example.com/c.bin"
	dArt := "https://example.com/d.bin"

	writeManifestFile(t, workDir, baseManifestURL, singlePlatformManifest(platform, baseArt, "base.bin",
		Dependency{Kind: DependencyDllPack, URL: bManifestURL},
		Dependency{Kind: DependencyDllPack, URL: cManifestURL},
	))
	writeManifestFile(t, workDir, bManifestURL, singlePlatformManifest(platform, bArt, "b.bin",
		Dependency{Kind: DependencyDllPack, URL: dManifestURL},
	))
	writeManifestFile(t, workDir, cManifestURL, singlePlatformManifest(platform, cArt, "c.bin",
		Dependency{Kind: DependencyDllPack, URL: dManifestURL},
	))
	writeManifestFile(t, workDir, dManifestURL, singlePlatformManifest(platform, dArt, "d.bin"))

	writeBinaryFile(t, workDir, baseArt, "base.bin", []byte("base"))
	writeBinaryFile(t, workDir, bArt, "b.bin", []byte("b"))
	writeBinaryFile(t, workDir, cArt, "c.bin", []byte("c"))
	writeBinaryFile(t, workDir, dArt, "d.bin", []byte("d"))

	primary, deps, err := Resolve(context.Background(), baseManifestURL, workDir, platform)
	require.NoError(t, err)

	assert.Equal(t, baseArt, primary.URL)
	require.Len(t, deps, 3)

	dIdx := indexOfDepURL(deps, dArt)
	bIdx := indexOfDepURL(deps, bArt)
	cIdx := indexOfDepURL(deps, cArt)
	require.True(t, dIdx >= 0 && bIdx >= 0 && cIdx >= 0)

	assert.Less(t, dIdx, bIdx, "shared dependency d must load before b")
	assert.Less(t, dIdx, cIdx, "shared dependency d must load before c")
}

func TestResolveDetectsCycle(t *testing.T) {
	workDir := t.TempDir()
	const platform = "p1"

	aManifestURL := "https://example.com/a.dllpack"
	bManifestURL := "https://example.com/b.dllpack"

	writeManifestFile(t, workDir, aManifestURL, singlePlatformManifest(platform, "https://example.com/a.bin", "a.bin",
		Dependency{Kind: DependencyDllPack, URL: bManifestURL},
	))
	writeManifestFile(t, workDir, bManifestURL, singlePlatformManifest(platform, "https://example.com/b.bin", "b.bin",
		Dependency{Kind: DependencyDllPack, URL: aManifestURL},
	))

	_, _, err := Resolve(context.Background(), aManifestURL, workDir, platform)
	require.Error(t, err)
	var unresolved *UnresolvedDependenciesError
	assert.ErrorAs(t, err, &unresolved)
}

func TestResolvePlatformNotSupported(t *testing.T) {
	workDir := t.TempDir()
	xManifestURL := "https://example.com/x.dllpack"

	writeManifestFile(t, workDir, xManifestURL, singlePlatformManifest("other-platform", "https://example.com/x.bin", "x.bin"))

	_, _, err := Resolve(context.Background(), xManifestURL, workDir, "p1")
	require.Error(t, err)
	var notSupported *PlatformNotSupportedError
	assert.ErrorAs(t, err, &notSupported)
}

func TestGatherCachedPerformsNoNetworkIO(t *testing.T) {
	workDir := t.TempDir()
	const platform = "p1"

	baseManifestURL := "https://example.invalid/base.dllpack"
	subManifestURL := "https://example.invalid/sub.dllpack"
	rawURL := "https://example.invalid/raw.bin"

	writeManifestFile(t, workDir, baseManifestURL, singlePlatformManifest(platform, "https://example.invalid/base.bin", "base.bin",
		Dependency{Kind: DependencyDllPack, URL: subManifestURL},
		Dependency{Kind: DependencyRawLib, URL: rawURL, Name: "raw.bin"},
	))
	writeManifestFile(t, workDir, subManifestURL, singlePlatformManifest(platform, "https://example.invalid/sub.bin", "sub.bin"))
	writeBinaryFile(t, workDir, rawURL, "raw.bin", []byte("raw"))

	result, err := GatherCached(baseManifestURL, workDir)
	require.NoError(t, err)
	require.NotNil(t, result)

	var sawSubManifest, sawRawBinary bool
	for _, entry := range result.Entries {
		if entry.URL == subManifestURL {
			sawSubManifest = true
		}
		if entry.URL == rawURL {
			sawRawBinary = true
		}
	}
	assert.True(t, sawSubManifest)
	assert.True(t, sawRawBinary)
}

func TestGatherCachedReturnsNilWhenUncached(t *testing.T) {
	workDir := t.TempDir()
	result, err := GatherCached("https://example.invalid/never-fetched.dllpack", workDir)
	require.NoError(t, err)
	assert.Nil(t, result)
}
