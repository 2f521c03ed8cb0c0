package dllpack

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPBackendFetchSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("payload"))
	}))
	defer srv.Close()

	body, err := (httpBackend{}).fetch(context.Background(), srv.URL+"/a.bin")
	require.NoError(t, err)
	assert.Equal(t, "payload", string(body))
}

func TestHTTPBackendFetchNonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := (httpBackend{}).fetch(context.Background(), srv.URL+"/missing.bin")
	require.Error(t, err)
	var httpErr *DownloadHTTPError
	assert.ErrorAs(t, err, &httpErr)
}

func TestBackendForDispatchesByScheme(t *testing.T) {
	b, err := backendFor("https://example.com/a.bin")
	require.NoError(t, err)
	assert.Equal(t, httpDownloadBackend, b)

	b, err = backendFor("oci://registry.example.com/repo:tag")
	require.NoError(t, err)
	assert.Equal(t, ociDownloadBackend, b)

	b, err = backendFor("s3://bucket/key")
	require.NoError(t, err)
	assert.Equal(t, s3DownloadBackend, b)

	_, err = backendFor("ftp://example.com/a.bin")
	require.Error(t, err)
	var unsupported *UnsupportedSchemeError
	assert.ErrorAs(t, err, &unsupported)
}

// fakeBackend lets fetchToPath/cachedFetch* be exercised without a real
// network call, the same dependency-injection seam download_oci.go and
// download_s3.go exist behind.
type fakeBackend struct {
	content []byte
	err     error
	calls   int
}

func (f *fakeBackend) fetch(ctx context.Context, rawURL string) ([]byte, error) {
	f.calls++
	return f.content, f.err
}

func TestFetchToPathCreatesParentDirAndWrites(t *testing.T) {
	workDir := t.TempDir()
	fake := &fakeBackend{content: []byte("hello")}

	prev := httpDownloadBackend
	httpDownloadBackend = fake
	defer func() { httpDownloadBackend = prev }()

	target := filepath.Join(workDir, "sub", "dir", "a.bin")
	require.NoError(t, fetchToPath(context.Background(), "https://example.com/a.bin", target))

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))
}

func TestCachedFetchBinaryIsIdempotent(t *testing.T) {
	workDir := t.TempDir()
	fake := &fakeBackend{content: []byte("v1")}

	prev := httpDownloadBackend
	httpDownloadBackend = fake
	defer func() { httpDownloadBackend = prev }()

	info := newDllInfo("https://example.com/a.bin", "a.bin", workDir)

	require.NoError(t, cachedFetchBinary(context.Background(), info))
	require.NoError(t, cachedFetchBinary(context.Background(), info))

	assert.Equal(t, 1, fake.calls, "second call must short-circuit on the cached file")

	data, err := os.ReadFile(info.OnDiskPath)
	require.NoError(t, err)
	assert.Equal(t, "v1", string(data))
}
