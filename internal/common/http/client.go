// internal/common/http/client.go
package http

import (
	"net"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

var sharedTransport = &http.Transport{
	Proxy: http.ProxyFromEnvironment,
	DialContext: (&net.Dialer{
		Timeout:   10 * time.Second,
		KeepAlive: 30 * time.Second,
	}).DialContext,
	MaxIdleConns:          50,
	MaxIdleConnsPerHost:   10,
	IdleConnTimeout:       90 * time.Second,
	TLSHandshakeTimeout:   10 * time.Second,
	ExpectContinueTimeout: 1 * time.Second,
}

// NewClient returns an *http.Client on the shared transport. Provider SDKs
// and resty clients are built on top of it so outbound calls share one pool.
func NewClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout:   timeout,
		Transport: sharedTransport,
	}
}

// NewResty returns a resty client with JSON defaults and the given timeout.
func NewResty(timeout time.Duration) *resty.Client {
	return resty.NewWithClient(NewClient(timeout)).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")
}
