package dllpack

import (
	"context"
	"encoding/json"
	"io"
	"net/url"
	"runtime"
	"strings"

	"github.com/pkg/errors"
	ocispec "github.com/opencontainers/image-spec/specs-go/v1"
	"oras.land/oras-go/v2/registry/remote"
)

// ociBackend resolves "oci://registry/repository:tag" references against
// an OCI distribution registry using oras-go: it resolves the reference
// to a platform-specific manifest and fetches its first layer.
// Content-addressing here comes from the registry protocol itself: once
// resolved, every fetch is by immutable digest.
type ociBackend struct{}

func (ociBackend) fetch(ctx context.Context, rawURL string) ([]byte, error) {
	ref, err := ociReference(rawURL)
	if err != nil {
		return nil, err
	}

	repo, err := remote.NewRepository(ref)
	if err != nil {
		return nil, errors.Wrapf(err, "creating oci repository for %s", ref)
	}

	descriptor, err := repo.Resolve(ctx, repo.Reference.Reference)
	if err != nil {
		return nil, errors.Wrapf(err, "resolving oci reference %s", ref)
	}

	manifestDesc := descriptor
	if descriptor.MediaType == ocispec.MediaTypeImageIndex {
		manifestDesc, err = selectPlatformManifest(ctx, repo, descriptor)
		if err != nil {
			return nil, err
		}
	} else if descriptor.MediaType != ocispec.MediaTypeImageManifest {
		return nil, errors.Errorf("unsupported oci media type: %s", descriptor.MediaType)
	}

	rc, err := repo.Fetch(ctx, manifestDesc)
	if err != nil {
		return nil, errors.Wrap(err, "fetching oci manifest")
	}
	defer rc.Close()

	manifestBytes, err := io.ReadAll(rc)
	if err != nil {
		return nil, errors.Wrap(err, "reading oci manifest")
	}

	var manifest ocispec.Manifest
	if err := json.Unmarshal(manifestBytes, &manifest); err != nil {
		return nil, errors.Wrap(err, "decoding oci manifest")
	}

	if len(manifest.Layers) == 0 {
		return nil, errors.New("oci manifest has no layers")
	}

	layer, err := repo.Fetch(ctx, manifest.Layers[0])
	if err != nil {
		return nil, errors.Wrap(err, "fetching oci layer")
	}
	defer layer.Close()

	return io.ReadAll(layer)
}

// ociReference turns "oci://registry/repo:tag" into the "registry/repo:tag"
// form oras-go expects.
func ociReference(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", errors.Wrapf(err, "parsing oci url %q", rawURL)
	}
	ref := u.Host + u.Path
	return strings.TrimSuffix(ref, "/"), nil
}

func selectPlatformManifest(ctx context.Context, repo *remote.Repository, indexDesc ocispec.Descriptor) (ocispec.Descriptor, error) {
	rc, err := repo.Fetch(ctx, indexDesc)
	if err != nil {
		return ocispec.Descriptor{}, errors.Wrap(err, "fetching oci index")
	}
	defer rc.Close()

	indexBytes, err := io.ReadAll(rc)
	if err != nil {
		return ocispec.Descriptor{}, errors.Wrap(err, "reading oci index")
	}

	var index ocispec.Index
	if err := json.Unmarshal(indexBytes, &index); err != nil {
		return ocispec.Descriptor{}, errors.Wrap(err, "decoding oci index")
	}

	for _, m := range index.Manifests {
		if m.Platform != nil && m.Platform.OS == runtime.GOOS && m.Platform.Architecture == runtime.GOARCH {
			return m, nil
		}
	}

	return ocispec.Descriptor{}, errors.Errorf("no oci manifest for %s/%s", runtime.GOOS, runtime.GOARCH)
}
