// Package github lists GitHub releases and picks their assets.
package github

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"setupvim/internal/core/ports"
	"setupvim/internal/platform/errors"
	"setupvim/internal/platform/httpclient"
	"setupvim/internal/platform/logx"
)

// DefaultAPIURL es la raíz de la API REST de GitHub.
const DefaultAPIURL = "https://api.github.com"

// release es la respuesta de /repos/{repo}/releases/*.
type release struct {
	TagName string `json:"tag_name"`
	Name    string `json:"name"`
	Assets  []struct {
		Name               string `json:"name"`
		BrowserDownloadURL string `json:"browser_download_url"`
	} `json:"assets"`
}

// Client implementa ports.ReleaseLister.
type Client struct {
	http   *httpclient.Client
	apiURL string
	token  string
	logger logx.Logger
}

// New crea un cliente. Un token vacío hace peticiones anónimas.
func New(hc *httpclient.Client, token string, logger logx.Logger) *Client {
	return &Client{
		http:   hc,
		apiURL: DefaultAPIURL,
		token:  token,
		logger: logger.With("component", "github"),
	}
}

// WithAPIURL cambia la raíz de la API (GitHub Enterprise, tests).
func (c *Client) WithAPIURL(apiURL string) *Client {
	clone := *c
	clone.apiURL = strings.TrimSuffix(apiURL, "/")
	return &clone
}

var _ ports.ReleaseLister = (*Client)(nil)

// Release obtiene la release con tag, o la última si tag está vacío.
func (c *Client) Release(ctx context.Context, repo, tag string) (ports.Release, error) {
	endpoint := fmt.Sprintf("%s/repos/%s/releases/latest", c.apiURL, repo)
	if tag != "" {
		endpoint = fmt.Sprintf("%s/repos/%s/releases/tags/%s", c.apiURL, repo, url.PathEscape(tag))
	}

	headers := map[string]string{
		"Accept":               "application/vnd.github+json",
		"X-GitHub-Api-Version": "2022-11-28",
	}
	if c.token != "" {
		headers["Authorization"] = "token " + c.token
	}

	c.logger.Debug("fetching release", "repo", repo, "tag", tag, "authenticated", c.token != "")

	var rel release
	if err := c.http.GetJSON(ctx, endpoint, headers, &rel); err != nil {
		var statusErr *errors.HTTPStatusError
		if errors.As(err, &statusErr) && statusErr.RateLimited {
			return ports.Release{}, errors.Wrap(err, "GitHub API rate limit exceeded (set the 'token' input)")
		}
		return ports.Release{}, err
	}

	out := ports.Release{Tag: rel.TagName}
	for _, a := range rel.Assets {
		out.Assets = append(out.Assets, ports.ReleaseAsset{Name: a.Name, DownloadURL: a.BrowserDownloadURL})
	}
	c.logger.Debug("release found", "repo", repo, "tag", out.Tag, "assets", len(out.Assets))
	return out, nil
}

// FindAsset retorna el primer asset cuyo nombre termina en suffix.
func FindAsset(rel ports.Release, suffix string) (ports.ReleaseAsset, error) {
	for _, a := range rel.Assets {
		if strings.HasSuffix(a.Name, suffix) {
			return a, nil
		}
	}
	return ports.ReleaseAsset{}, errors.Wrapf(errors.ErrNoAsset, "release %s has no asset ending with %q", rel.Tag, suffix)
}
