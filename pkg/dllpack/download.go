package dllpack

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// downloadBackend fetches the bytes named by rawURL. Implementations are
// selected by URL scheme; see backendFor. Beyond plain HTTP, this also
// covers registry- and object-store-addressed URLs.
type downloadBackend interface {
	fetch(ctx context.Context, rawURL string) ([]byte, error)
}

var (
	httpDownloadBackend downloadBackend = httpBackend{}
	ociDownloadBackend  downloadBackend = ociBackend{}
	s3DownloadBackend   downloadBackend = s3Backend{}
)

// backendFor returns the downloadBackend registered for rawURL's scheme.
func backendFor(rawURL string) (downloadBackend, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing url %q", rawURL)
	}

	switch strings.ToLower(u.Scheme) {
	case "http", "https":
		return httpDownloadBackend, nil
	case "oci":
		return ociDownloadBackend, nil
	case "s3":
		return s3DownloadBackend, nil
	default:
		return nil, &UnsupportedSchemeError{Scheme: u.Scheme}
	}
}

// fetchToPath performs: backend lookup -> fetch -> ensure parent directory
// -> write the whole response body to path. This is the shared body of
// fetchManifest and fetchBinary.
func fetchToPath(ctx context.Context, rawURL, path string) error {
	backend, err := backendFor(rawURL)
	if err != nil {
		return err
	}

	content, err := backend.fetch(ctx, rawURL)
	if err != nil {
		return err
	}

	if err := ensureParentDir(path); err != nil {
		return errors.Wrapf(err, "creating parent directory for %s", path)
	}

	if err := os.WriteFile(path, content, 0o644); err != nil {
		return errors.Wrapf(err, "writing %s", path)
	}

	return nil
}

// fetchManifest downloads the manifest identified by info, unconditionally.
func fetchManifest(ctx context.Context, info ManifestInfo) error {
	log.WithField("path", info.OnDiskPath).Debug("downloading manifest")
	return fetchToPath(ctx, info.URL, info.OnDiskPath)
}

// cachedFetchManifest short-circuits when the manifest is already on disk;
// it does not revalidate.
func cachedFetchManifest(ctx context.Context, info ManifestInfo) error {
	if pathExists(info.OnDiskPath) {
		log.WithField("path", info.OnDiskPath).Trace("manifest cached")
		return nil
	}
	return fetchManifest(ctx, info)
}

// fetchBinary downloads the binary identified by info, unconditionally.
func fetchBinary(ctx context.Context, info DllInfo) error {
	log.WithField("path", info.OnDiskPath).Debug("downloading binary")
	return fetchToPath(ctx, info.URL, info.OnDiskPath)
}

// cachedFetchBinary short-circuits when the binary is already on disk; it
// does not revalidate. Idempotent: running it twice with the same info
// produces the same file content and leaves no other side effect.
func cachedFetchBinary(ctx context.Context, info DllInfo) error {
	if pathExists(info.OnDiskPath) {
		log.WithField("path", info.OnDiskPath).Trace("binary cached")
		return nil
	}
	return fetchBinary(ctx, info)
}

// httpBackend is the default backend: a synchronous blocking GET.
type httpBackend struct{}

func (httpBackend) fetch(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "building request for %s", rawURL)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &DownloadHTTPError{URL: rawURL, Status: resp.Status}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrapf(err, "reading response body for %s", rawURL)
	}

	return body, nil
}
