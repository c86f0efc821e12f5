package github

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"setupvim/internal/core/ports"
	"setupvim/internal/platform/errors"
	"setupvim/internal/platform/httpclient"
	"setupvim/internal/platform/logx"
	"setupvim/internal/testutil"
)

const latestBody = `{
  "tag_name": "v9.1.0100",
  "assets": [
    {"name": "gvim_9.1.0100_x64.zip", "browser_download_url": "https://example.com/gvim_9.1.0100_x64.zip"},
    {"name": "gvim_9.1.0100_x64_signed.exe", "browser_download_url": "https://example.com/gvim_9.1.0100_x64_signed.exe"},
    {"name": "gvim_9.1.0100_x86.zip", "browser_download_url": "https://example.com/gvim_9.1.0100_x86.zip"}
  ]
}`

func newTestClient(t *testing.T, token string, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	hc := httpclient.New(httpclient.DefaultConfig(), logx.NewDiscard())
	return New(hc, token, logx.NewDiscard()).WithAPIURL(server.URL + "/")
}

func TestClient_Release_Latest(t *testing.T) {
	c := newTestClient(t, "ghs_secret", func(w http.ResponseWriter, r *http.Request) {
		testutil.AssertEqual(t, r.URL.Path, "/repos/vim/vim-win32-installer/releases/latest", "path")
		testutil.AssertEqual(t, r.Header.Get("Authorization"), "token ghs_secret", "auth header")
		testutil.AssertEqual(t, r.Header.Get("Accept"), "application/vnd.github+json", "API media type")
		w.Write([]byte(latestBody))
	})

	rel, err := c.Release(context.Background(), "vim/vim-win32-installer", "")
	testutil.RequireNoError(t, err, "Release")
	testutil.AssertEqual(t, rel.Tag, "v9.1.0100", "tag")
	testutil.AssertEqual(t, len(rel.Assets), 3, "assets")
}

func TestClient_Release_ByTagAnonymous(t *testing.T) {
	c := newTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
		testutil.AssertEqual(t, r.URL.Path, "/repos/vim/vim-win32-installer/releases/tags/v9.0.0001", "path")
		testutil.AssertEqual(t, r.Header.Get("Authorization"), "", "no auth header")
		w.Write([]byte(`{"tag_name":"v9.0.0001","assets":[]}`))
	})

	rel, err := c.Release(context.Background(), "vim/vim-win32-installer", "v9.0.0001")
	testutil.RequireNoError(t, err, "Release")
	testutil.AssertEqual(t, rel.Tag, "v9.0.0001", "tag")
}

func TestClient_Release_Errors(t *testing.T) {
	t.Run("rate limited", func(t *testing.T) {
		c := newTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-RateLimit-Remaining", "0")
			w.WriteHeader(http.StatusForbidden)
		})
		_, err := c.Release(context.Background(), "vim/vim-win32-installer", "")
		testutil.RequireError(t, err, "403")
		testutil.AssertTrue(t, errors.IsHTTPStatus(err), "status error kept")
		testutil.AssertContains(t, err.Error(), "rate limit", "explains rate limit")
	})

	t.Run("forbidden with quota left", func(t *testing.T) {
		c := newTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-RateLimit-Remaining", "42")
			w.WriteHeader(http.StatusForbidden)
		})
		_, err := c.Release(context.Background(), "vim/vim-win32-installer", "")
		testutil.RequireError(t, err, "403")
		testutil.AssertTrue(t, errors.IsHTTPStatus(err), "status error kept")
		testutil.AssertFalse(t, strings.Contains(err.Error(), "rate limit"), "not blamed on rate limit")
	})

	t.Run("missing tag", func(t *testing.T) {
		c := newTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
			http.NotFound(w, r)
		})
		_, err := c.Release(context.Background(), "vim/vim-win32-installer", "v0.0.0000")
		testutil.AssertTrue(t, errors.IsNotFound(err), "404")
	})

	t.Run("malformed body", func(t *testing.T) {
		c := newTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("<html>"))
		})
		_, err := c.Release(context.Background(), "vim/vim-win32-installer", "")
		testutil.AssertTrue(t, errors.Is(err, errors.ErrInvalidResponse), "invalid response")
	})
}

func TestFindAsset(t *testing.T) {
	rel := ports.Release{
		Tag: "v9.1.0100",
		Assets: []ports.ReleaseAsset{
			{Name: "gvim_9.1.0100_x64.zip", DownloadURL: "u1"},
			{Name: "gvim_9.1.0100_x64_signed.exe", DownloadURL: "u2"},
		},
	}

	a, err := FindAsset(rel, "_x64.zip")
	testutil.RequireNoError(t, err, "x64")
	testutil.AssertEqual(t, a.DownloadURL, "u1", "url")

	_, err = FindAsset(rel, "_arm64.zip")
	testutil.RequireError(t, err, "arm64 missing")
	testutil.AssertTrue(t, errors.Is(err, errors.ErrNoAsset), "ErrNoAsset")
	testutil.AssertContains(t, err.Error(), "_arm64.zip", "names suffix")
}
