package dllpack

import (
	"context"
	"os"

	"github.com/pkg/errors"
)

// resolution is the intermediate state built by the fetch phase: every
// manifest node reached while resolving one (url, platform) pair.
type resolution struct {
	base                  ManifestInfo
	resultMap             map[ManifestInfo]PlatformManifest
	dependencyMap         map[ManifestInfo][]ManifestInfo
	reverseDependencyMap  map[ManifestInfo][]ManifestInfo
}

// fetchManifests is the DFS fetch phase: starting from baseURL, download
// (via cache) and parse every manifest reachable through DllPack
// dependencies for platform, populating the forward and reverse
// dependency maps.
func fetchManifests(ctx context.Context, baseURL, workDir, platform string) (*resolution, error) {
	r := &resolution{
		base:                 newManifestInfo(baseURL, workDir),
		resultMap:            map[ManifestInfo]PlatformManifest{},
		dependencyMap:        map[ManifestInfo][]ManifestInfo{},
		reverseDependencyMap: map[ManifestInfo][]ManifestInfo{},
	}

	if err := fetchManifestsInner(ctx, r.base, workDir, platform, r); err != nil {
		return nil, err
	}

	return r, nil
}

func fetchManifestsInner(ctx context.Context, node ManifestInfo, workDir, platform string, r *resolution) error {
	if err := cachedFetchManifest(ctx, node); err != nil {
		return err
	}

	data, err := os.ReadFile(node.OnDiskPath)
	if err != nil {
		return errors.Wrapf(err, "reading manifest %s", node.OnDiskPath)
	}

	file, err := ParseDllPackFile(data)
	if err != nil {
		return err
	}

	pm, ok := file.Manifest.Platforms[platform]
	if !ok {
		return &PlatformNotSupportedError{Platform: platform}
	}

	r.resultMap[node] = pm

	var deps []ManifestInfo
	for _, dep := range pm.Dependencies {
		if dep.Kind != DependencyDllPack {
			continue
		}

		childInfo := newManifestInfo(dep.URL, workDir)
		deps = append(deps, childInfo)

		if _, seen := r.resultMap[childInfo]; !seen {
			if err := fetchManifestsInner(ctx, childInfo, workDir, platform, r); err != nil {
				return err
			}
		}

		r.reverseDependencyMap[childInfo] = append(r.reverseDependencyMap[childInfo], node)
	}

	r.dependencyMap[node] = deps

	return nil
}

// Resolve runs the full resolver: recursive manifest fetch, Kahn
// topological sort, cycle detection, and binary materialization. It
// returns the primary artifact and its dependencies in load order (each
// entry's declared dependencies appear strictly earlier).
func Resolve(ctx context.Context, baseURL, workDir, platform string) (primary DllInfo, deps []DllInfo, err error) {
	r, err := fetchManifests(ctx, baseURL, workDir, platform)
	if err != nil {
		return DllInfo{}, nil, err
	}

	order, err := topoSort(r, baseURL, platform)
	if err != nil {
		return DllInfo{}, nil, err
	}

	deps = make([]DllInfo, 0, len(order))
	for _, node := range order {
		pm := r.resultMap[node]
		info := newDllInfo(pm.URL, pm.Name, workDir)
		if err := cachedFetchBinary(ctx, info); err != nil {
			return DllInfo{}, nil, err
		}
		deps = append(deps, info)
	}

	basePM := r.resultMap[r.base]
	primary = newDllInfo(basePM.URL, basePM.Name, workDir)
	if err := cachedFetchBinary(ctx, primary); err != nil {
		return DllInfo{}, nil, err
	}

	return primary, deps, nil
}

// topoSort runs Kahn's algorithm over the dependency graph gathered by
// fetchManifests, excluding the top-level node (matched by URL equality
// with baseURL) from the returned order.
func topoSort(r *resolution, baseURL, platform string) ([]ManifestInfo, error) {
	remaining := make(map[ManifestInfo]int, len(r.dependencyMap))
	for node, deps := range r.dependencyMap {
		remaining[node] = len(deps)
	}

	var worklist []ManifestInfo
	var order []ManifestInfo
	unresolved := len(r.resultMap)

	for node, count := range remaining {
		if count == 0 {
			worklist = append(worklist, node)
			unresolved--
			if node.URL != baseURL {
				order = append(order, node)
			}
		}
	}

	for len(worklist) > 0 {
		node := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]

		for _, dependent := range r.reverseDependencyMap[node] {
			remaining[dependent]--
			if remaining[dependent] == 0 {
				worklist = append(worklist, dependent)
				unresolved--
				if dependent.URL != baseURL {
					order = append(order, dependent)
				}
			}
		}
	}

	if unresolved > 0 {
		return nil, &UnresolvedDependenciesError{Platform: platform}
	}

	return order, nil
}

// CachedDependencies is the result of GatherCached: the on-disk location
// of the top-level manifest and every cached artifact reachable from it
// across every platform, without performing any network I/O.
type CachedDependencies struct {
	ManifestPath string
	Entries      []CachedEntry
}

// CachedEntry pairs a dependency's URL with its on-disk path.
type CachedEntry struct {
	URL  string
	Path string
}

// GatherCached walks every platform of the top-level manifest (and every
// discovered dllpack child) using only already-on-disk manifests; it
// performs no network I/O. Returns (nil, nil) if the top-level manifest
// itself is not cached.
func GatherCached(baseURL, workDir string) (*CachedDependencies, error) {
	base := newManifestInfo(baseURL, workDir)
	if !pathExists(base.OnDiskPath) {
		return nil, nil
	}

	data, err := os.ReadFile(base.OnDiskPath)
	if err != nil {
		return nil, errors.Wrapf(err, "reading cached manifest %s", base.OnDiskPath)
	}

	baseFile, err := ParseDllPackFile(data)
	if err != nil {
		return nil, errors.Wrap(err, "parsing cached top-level manifest")
	}

	result := &CachedDependencies{ManifestPath: base.OnDiskPath}

	visited := map[ManifestInfo]bool{base: true}
	queue := []*DllPackFile{baseFile}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, pm := range current.Manifest.Platforms {
			binInfo := newDllInfo(pm.URL, pm.Name, workDir)
			if pathExists(binInfo.OnDiskPath) {
				result.Entries = append(result.Entries, CachedEntry{URL: pm.URL, Path: binInfo.OnDiskPath})
			}

			for _, dep := range pm.Dependencies {
				switch dep.Kind {
				case DependencyDllPack:
					subInfo := newManifestInfo(dep.URL, workDir)
					if visited[subInfo] || !pathExists(subInfo.OnDiskPath) {
						continue
					}

					subData, err := os.ReadFile(subInfo.OnDiskPath)
					if err != nil {
						return nil, errors.Wrapf(err, "reading cached manifest %s", subInfo.OnDiskPath)
					}
					subFile, err := ParseDllPackFile(subData)
					if err != nil {
						return nil, errors.Wrapf(err, "parsing cached manifest %s", dep.URL)
					}

					result.Entries = append(result.Entries, CachedEntry{URL: dep.URL, Path: subInfo.OnDiskPath})
					visited[subInfo] = true
					queue = append(queue, subFile)

				case DependencyRawLib:
					dllInfo := newDllInfo(dep.URL, dep.Name, workDir)
					if pathExists(dllInfo.OnDiskPath) {
						result.Entries = append(result.Entries, CachedEntry{URL: dep.URL, Path: dllInfo.OnDiskPath})
					}
				}
			}
		}
	}

	return result, nil
}
