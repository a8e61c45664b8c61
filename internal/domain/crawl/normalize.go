package crawl

import (
	"fmt"
	"net"
	"net/url"
	"regexp"
	"strings"

	"golang.org/x/net/publicsuffix"
)

// Normalize canonicalizes a URL for deduplication: fragments stripped,
// trailing slash collapsed, scheme and host lower-cased. Two URLs differing
// only in these respects are the same crawl node.
func Normalize(raw string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", fmt.Errorf("parsing url %q: %w", raw, err)
	}
	if !u.IsAbs() || u.Host == "" {
		return "", fmt.Errorf("url %q is not absolute", raw)
	}
	u.Fragment = ""
	u.Scheme = strings.ToLower(u.Scheme)
	u.Host = strings.ToLower(u.Host)
	if len(u.Path) > 1 {
		u.Path = strings.TrimRight(u.Path, "/")
	}
	if u.Path == "" {
		u.Path = "/"
	}
	return u.String(), nil
}

// Resolve makes a possibly-relative href absolute against the page it was
// found on, then normalizes it.
func Resolve(base, href string) (string, error) {
	b, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("parsing base %q: %w", base, err)
	}
	ref, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return "", fmt.Errorf("parsing href %q: %w", href, err)
	}
	return Normalize(b.ResolveReference(ref).String())
}

// Scope is the domain boundary a crawl must not cross, plus any user-supplied
// exclusion patterns.
type Scope struct {
	root    string
	exclude []*regexp.Regexp
}

// NewScope derives the crawl boundary from the seed URL's registrable domain.
// Hosts without a registrable domain (IPs, localhost) fall back to exact
// host:port matching.
func NewScope(seedURL string, excludePatterns []string) (*Scope, error) {
	u, err := url.Parse(seedURL)
	if err != nil || u.Host == "" {
		return nil, fmt.Errorf("invalid seed url %q", seedURL)
	}
	var exclude []*regexp.Regexp
	for _, p := range excludePatterns {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("compiling exclude pattern %q: %w", p, err)
		}
		exclude = append(exclude, re)
	}
	return &Scope{root: registrable(u.Host), exclude: exclude}, nil
}

// Allows reports whether the URL is inside the crawl's domain boundary.
func (s *Scope) Allows(rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return false
	}
	return registrable(strings.ToLower(u.Host)) == s.root
}

// Excluded reports whether a user-supplied pattern rules the URL out.
func (s *Scope) Excluded(rawURL string) bool {
	for _, re := range s.exclude {
		if re.MatchString(rawURL) {
			return true
		}
	}
	return false
}

func registrable(host string) string {
	hostname := host
	if h, _, err := net.SplitHostPort(host); err == nil {
		hostname = h
	}
	if net.ParseIP(hostname) != nil {
		// IP literals keep the port: two local test servers on different
		// ports are different sites.
		return host
	}
	if d, err := publicsuffix.EffectiveTLDPlusOne(hostname); err == nil {
		return d
	}
	return host
}
