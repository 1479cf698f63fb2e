// Package relay forwards client video requests to third-party origins,
// preserving partial-content semantics and streaming bodies through without
// buffering them.
package relay

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"streamhub/internal/middleware"
	"streamhub/pkg/logging"
)

const (
	userAgent          = "streamhub-relay/1.0"
	defaultContentType = "video/mp4"
)

type Relay struct {
	client *http.Client
}

// New returns a Relay with a transport tuned for long-lived media pulls:
// bounded connect/TLS/header waits, no overall deadline, and no internal
// redirect following (redirects are re-pointed at the relay itself).
func New() *Relay {
	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   10 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		TLSHandshakeTimeout:   10 * time.Second,
		ResponseHeaderTimeout: 30 * time.Second,
		MaxIdleConns:          100,
		IdleConnTimeout:       90 * time.Second,
	}
	return NewWithClient(&http.Client{Transport: transport})
}

// NewWithClient wires a custom client (tests use a recording transport).
// CheckRedirect is always overridden so redirects surface to the handler.
func NewWithClient(client *http.Client) *Relay {
	client.CheckRedirect = func(req *http.Request, via []*http.Request) error {
		return http.ErrUseLastResponse
	}
	return &Relay{client: client}
}

// RegisterRoutes mounts the proxy endpoint, wrapped by gate when one is
// given (the rate limiter in production, nothing in most tests).
func (r *Relay) RegisterRoutes(router gin.IRouter, gate gin.HandlerFunc) {
	if gate != nil {
		router.GET("/video-proxy", gate, r.Proxy)
		return
	}
	router.GET("/video-proxy", r.Proxy)
}

// Proxy handles GET /video-proxy?url=<encoded target>.
func (r *Relay) Proxy(c *gin.Context) {
	reqID := middleware.GetRequestID(c)

	target, ok := parseTarget(c.Query("url"))
	if !ok {
		c.Status(http.StatusBadRequest)
		return
	}

	// The upstream request shares the client's context: a client disconnect
	// cancels it and tears down the upstream connection with it.
	req, err := http.NewRequestWithContext(c.Request.Context(), http.MethodGet, target.String(), nil)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "*/*")
	req.Header.Set("Accept-Encoding", "identity")
	if rng := c.GetHeader("Range"); rng != "" {
		req.Header.Set("Range", rng)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		logging.Warnf("[relay] %s upstream %s unreachable: %v", reqID, target.Host, err)
		c.Status(http.StatusBadGateway)
		return
	}
	defer resp.Body.Close()

	if isRedirect(resp.StatusCode) {
		if loc := resp.Header.Get("Location"); loc != "" {
			next, err := target.Parse(loc)
			if err != nil {
				logging.Warnf("[relay] %s bad redirect location from %s: %v", reqID, target.Host, err)
				c.Status(http.StatusBadGateway)
				return
			}
			// Point the client back at us with the new target, so the chain
			// stays visible to the client instead of looping inside the relay.
			c.Redirect(http.StatusFound, "/video-proxy?url="+url.QueryEscape(next.String()))
			return
		}
	}

	ct := resp.Header.Get("Content-Type")
	if ct == "" {
		ct = defaultContentType
	}
	c.Header("Content-Type", ct)
	c.Header("Accept-Ranges", "bytes")
	if resp.ContentLength > 0 {
		c.Header("Content-Length", strconv.FormatInt(resp.ContentLength, 10))
	}
	if cr := resp.Header.Get("Content-Range"); cr != "" {
		c.Header("Content-Range", cr)
	}
	c.Status(resp.StatusCode)

	if _, err := io.Copy(c.Writer, resp.Body); err != nil {
		if !clientGone(err) {
			logging.Warnf("[relay] %s stream from %s aborted: %v", reqID, target.Host, err)
		}
	}
}

// parseTarget validates the relay target: absolute URL, http or https.
func parseTarget(raw string) (*url.URL, bool) {
	if strings.TrimSpace(raw) == "" {
		return nil, false
	}
	u, err := url.Parse(raw)
	if err != nil {
		return nil, false
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, false
	}
	return u, true
}

func isRedirect(status int) bool {
	switch status {
	case http.StatusMovedPermanently, http.StatusFound,
		http.StatusTemporaryRedirect, http.StatusPermanentRedirect:
		return true
	}
	return false
}

func clientGone(err error) bool {
	if errors.Is(err, context.Canceled) {
		return true
	}
	return strings.Contains(err.Error(), "broken pipe") ||
		strings.Contains(err.Error(), "connection reset by peer")
}
