// pkg/utils/proxy_client.go
package utils

import (
	"bufio"
	"context"
	"crypto/tls"
	"encoding/base64"
	"fmt"
	"math/rand"
	"net"
	"net/http"
	"net/url"
	"strings"
	"sync/atomic"
	"time"

	utls "github.com/refraction-networking/utls"
	proxy "golang.org/x/net/proxy"

	"reddit-explorer/internal/logging"
)

var clientHelloIDs = []utls.ClientHelloID{
	utls.HelloChrome_Auto,
	utls.HelloFirefox_Auto,
	utls.HelloSafari_Auto,
	utls.HelloEdge_Auto,
}

func randomItem[T any](items []T) T {
	return items[rand.Intn(len(items))]
}

type ProxyRotator struct {
	proxyURLs  []string
	parsedURLs []*url.URL
	currentIdx uint32
}

func NewProxyRotator(proxyURLs []string) (*ProxyRotator, error) {
	rotator := &ProxyRotator{proxyURLs: proxyURLs}

	for _, rawURL := range proxyURLs {
		parsedURL, err := url.Parse(rawURL)
		if err != nil {
			return nil, fmt.Errorf("failed to parse proxy URL %s: %w", MaskProxyURL(rawURL), err)
		}
		rotator.parsedURLs = append(rotator.parsedURLs, parsedURL)
	}

	return rotator, nil
}

// Len reports how many proxies are in rotation.
func (r *ProxyRotator) Len() int {
	return len(r.parsedURLs)
}

// NextIndex returns the slot of the next proxy, round robin.
func (r *ProxyRotator) NextIndex() int {
	if len(r.parsedURLs) == 0 {
		return -1
	}
	idx := atomic.AddUint32(&r.currentIdx, 1) - 1
	return int(idx % uint32(len(r.parsedURLs)))
}

func (r *ProxyRotator) NextProxy() *url.URL {
	idx := r.NextIndex()
	if idx < 0 {
		return nil
	}
	return r.parsedURLs[idx]
}

// FingerprintingDialer opens TLS connections with a browser ClientHello,
// tunnelling through proxyURL when it is set.
type FingerprintingDialer struct {
	proxyURL      *url.URL
	clientHelloID utls.ClientHelloID
	dialer        net.Dialer
}

func NewFingerprintingDialer(proxyURL *url.URL) *FingerprintingDialer {
	return &FingerprintingDialer{
		proxyURL:      proxyURL,
		clientHelloID: randomItem(clientHelloIDs),
		dialer: net.Dialer{
			Timeout:   30 * time.Second,
			KeepAlive: 30 * time.Second,
		},
	}
}

func (d *FingerprintingDialer) DialTLSContext(ctx context.Context, network, addr string) (net.Conn, error) {
	var conn net.Conn
	var err error

	if d.proxyURL == nil {
		conn, err = d.dialer.DialContext(ctx, network, addr)
		if err != nil {
			return nil, fmt.Errorf("direct dial: %w", err)
		}
	} else {
		conn, err = d.dialThroughProxy(ctx, network, addr)
		if err != nil {
			return nil, fmt.Errorf("proxy dial: %w", err)
		}
	}

	host := addr
	if h, _, err := net.SplitHostPort(addr); err == nil {
		host = h
	}

	uconn := utls.UClient(conn, &utls.Config{ServerName: host}, utls.HelloCustom)

	// net/http only speaks h2 over *tls.Conn, so the parroted hello must
	// not offer it.
	spec, err := utls.UTLSIdToSpec(d.clientHelloID)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("uTLS spec: %w", err)
	}
	for _, ext := range spec.Extensions {
		if alpn, ok := ext.(*utls.ALPNExtension); ok {
			alpn.AlpnProtocols = []string{"http/1.1"}
		}
	}
	if err := uconn.ApplyPreset(&spec); err != nil {
		conn.Close()
		return nil, fmt.Errorf("uTLS preset: %w", err)
	}

	if err := uconn.Handshake(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("uTLS handshake: %w", err)
	}

	return uconn, nil
}

func (d *FingerprintingDialer) dialThroughProxy(ctx context.Context, network, addr string) (net.Conn, error) {
	switch d.proxyURL.Scheme {
	case "http", "https":
		conn, err := d.dialer.DialContext(ctx, "tcp", proxyHostPort(d.proxyURL))
		if err != nil {
			return nil, fmt.Errorf("dial HTTP proxy: %w", err)
		}

		if d.proxyURL.Scheme == "https" {
			tlsConn := tls.Client(conn, &tls.Config{ServerName: d.proxyURL.Hostname()})
			if err := tlsConn.HandshakeContext(ctx); err != nil {
				conn.Close()
				return nil, fmt.Errorf("TLS to proxy: %w", err)
			}
			conn = tlsConn
		}

		if err := ConnectTunnel(ctx, conn, d.proxyURL, addr); err != nil {
			conn.Close()
			return nil, err
		}
		return conn, nil

	case "socks5":
		auth := &proxy.Auth{}
		if d.proxyURL.User != nil {
			auth.User = d.proxyURL.User.Username()
			if password, ok := d.proxyURL.User.Password(); ok {
				auth.Password = password
			}
		}

		dialer, err := proxy.SOCKS5("tcp", d.proxyURL.Host, auth, &d.dialer)
		if err != nil {
			return nil, fmt.Errorf("create SOCKS5 dialer: %w", err)
		}

		if cd, ok := dialer.(proxy.ContextDialer); ok {
			conn, err := cd.DialContext(ctx, network, addr)
			if err != nil {
				return nil, fmt.Errorf("dial via SOCKS5 proxy: %w", err)
			}
			return conn, nil
		}

		conn, err := dialer.Dial(network, addr)
		if err != nil {
			return nil, fmt.Errorf("dial via SOCKS5 proxy: %w", err)
		}
		return conn, nil

	default:
		return nil, fmt.Errorf("unsupported proxy scheme: %s", d.proxyURL.Scheme)
	}
}

// ConnectTunnel asks an HTTP proxy on conn to open a tunnel to addr.
func ConnectTunnel(ctx context.Context, conn net.Conn, proxyURL *url.URL, addr string) error {
	req := &http.Request{
		Method: http.MethodConnect,
		URL:    &url.URL{Opaque: addr},
		Host:   addr,
		Header: make(http.Header),
	}
	if proxyURL.User != nil {
		password, _ := proxyURL.User.Password()
		creds := base64.StdEncoding.EncodeToString([]byte(proxyURL.User.Username() + ":" + password))
		req.Header.Set("Proxy-Authorization", "Basic "+creds)
	}

	if deadline, ok := ctx.Deadline(); ok {
		conn.SetDeadline(deadline)
		defer conn.SetDeadline(time.Time{})
	}

	if err := req.Write(conn); err != nil {
		return fmt.Errorf("write CONNECT request: %w", err)
	}

	resp, err := http.ReadResponse(bufio.NewReader(conn), req)
	if err != nil {
		return fmt.Errorf("read CONNECT response: %w", err)
	}
	resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("proxy refused CONNECT to %s: %s", addr, resp.Status)
	}
	return nil
}

func proxyHostPort(u *url.URL) string {
	if u.Port() != "" {
		return u.Host
	}
	if u.Scheme == "https" {
		return net.JoinHostPort(u.Hostname(), "443")
	}
	return net.JoinHostPort(u.Hostname(), "80")
}

// RotatingTransport sends each request through the next proxy in rotation.
// HTTPS targets are dialled with a fingerprinting dialer; plain HTTP targets
// use the proxy directly.
type RotatingTransport struct {
	rotator    *ProxyRotator
	transports []*http.Transport
}

func NewRotatingTransport(rotator *ProxyRotator) *RotatingTransport {
	t := &RotatingTransport{rotator: rotator}

	for _, proxyURL := range rotator.parsedURLs {
		proxyURL := proxyURL
		dialer := NewFingerprintingDialer(proxyURL)

		t.transports = append(t.transports, &http.Transport{
			Proxy: func(req *http.Request) (*url.URL, error) {
				if req.URL.Scheme == "https" {
					return nil, nil
				}
				return proxyURL, nil
			},
			DialTLSContext:        dialer.DialTLSContext,
			MaxIdleConns:          100,
			MaxIdleConnsPerHost:   10,
			IdleConnTimeout:       90 * time.Second,
			TLSHandshakeTimeout:   10 * time.Second,
			ExpectContinueTimeout: 1 * time.Second,
			ResponseHeaderTimeout: 30 * time.Second,
			ForceAttemptHTTP2:     false,
		})
	}

	return t
}

func (t *RotatingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	idx := t.rotator.NextIndex()
	if idx < 0 {
		return nil, fmt.Errorf("no proxies configured")
	}
	return t.transports[idx].RoundTrip(req)
}

func MaskProxyURL(proxyURL string) string {
	if !strings.Contains(proxyURL, "@") {
		return proxyURL
	}

	parsedURL, err := url.Parse(proxyURL)
	if err != nil {
		parts := strings.Split(proxyURL, "@")
		if len(parts) > 1 {
			auth := strings.Split(parts[0], "://")
			protocol := ""
			if len(auth) > 1 {
				protocol = auth[0] + "://"
				auth[0] = auth[1]
			}

			userPass := strings.Split(auth[0], ":")
			if len(userPass) > 1 {
				return protocol + userPass[0] + ":****@" + parts[1]
			}
		}
		return "[masked]"
	}

	if parsedURL.User != nil {
		username := parsedURL.User.Username()
		return strings.Replace(proxyURL, parsedURL.User.String(), username+":****", 1)
	}

	return proxyURL
}

// NewProxyHTTPClient builds an http.Client that rotates across proxyURLs.
func NewProxyHTTPClient(proxyURLs []string, timeout time.Duration) (*http.Client, error) {
	var validProxies []string
	for _, p := range proxyURLs {
		if p != "" {
			validProxies = append(validProxies, p)
		}
	}

	if len(validProxies) == 0 {
		return nil, fmt.Errorf("no valid proxy URLs provided")
	}

	rotator, err := NewProxyRotator(validProxies)
	if err != nil {
		return nil, fmt.Errorf("failed to create proxy rotator: %w", err)
	}

	for i, p := range validProxies {
		logging.Debug().Int("index", i+1).Str("proxy", MaskProxyURL(p)).Msg("proxy registered")
	}
	logging.Info().Int("proxies", len(validProxies)).Msg("created HTTP client with TLS fingerprinting")

	return &http.Client{
		Transport: NewRotatingTransport(rotator),
		Timeout:   timeout,
	}, nil
}
