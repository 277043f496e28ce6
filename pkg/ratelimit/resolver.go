package ratelimit

import (
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"
)

// Policy holds the limit-resolution table: base limits, the window, the
// authenticated multiplier and the set of expensive endpoints. Built
// once at startup and never mutated.
type Policy struct {
	// DefaultLimit is the base request limit per window.
	DefaultLimit int

	// ExpensiveLimit replaces DefaultLimit for endpoints in Expensive.
	ExpensiveLimit int

	// Window is the fixed-window duration.
	Window time.Duration

	// AuthMultiplier scales the base limit for authenticated callers.
	AuthMultiplier int

	// Expensive names the bulk-listing endpoints that get the lower base.
	Expensive map[string]bool
}

// DefaultPolicy returns the production limit table: 20 requests per
// minute, 10 for bulk listings, ×5 for authenticated callers.
func DefaultPolicy() Policy {
	return Policy{
		DefaultLimit:   20,
		ExpensiveLimit: 10,
		Window:         time.Minute,
		AuthMultiplier: 5,
		Expensive: map[string]bool{
			"getMatches":     true,
			"getTeamPlayers": true,
			"getPlayer":      true,
		},
	}
}

// Caller is the identity a request is throttled under.
type Caller struct {
	// Authenticated is true when the request carried a bearer token.
	Authenticated bool

	// UID identifies an authenticated caller; empty otherwise.
	UID string

	// IP identifies an anonymous caller.
	IP string
}

// CallerFromRequest extracts the throttling identity from a request.
// Bearer tokens are treated as opaque caller identifiers; anonymous
// callers are keyed by the first X-Forwarded-For hop, falling back to
// the remote address.
func CallerFromRequest(r *http.Request) Caller {
	auth := r.Header.Get("Authorization")
	if token, ok := strings.CutPrefix(auth, "Bearer "); ok && token != "" {
		return Caller{Authenticated: true, UID: token}
	}

	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		if ip := strings.TrimSpace(strings.Split(xff, ",")[0]); ip != "" {
			return Caller{IP: ip}
		}
	}

	host, _, err := net.SplitHostPort(strings.TrimSpace(r.RemoteAddr))
	if err == nil && host != "" {
		return Caller{IP: host}
	}
	if r.RemoteAddr != "" {
		return Caller{IP: r.RemoteAddr}
	}
	return Caller{IP: "unknown"}
}

// Resolve computes the rate-limit key, limit and window for a request
// against an endpoint.
//
// Keys are "{endpoint}:user:{uid}" for authenticated callers and
// "{endpoint}:ip:{ip}" otherwise, so each endpoint gets its own window
// per caller.
func (p Policy) Resolve(r *http.Request, endpoint string) (key string, limit int, window time.Duration) {
	caller := CallerFromRequest(r)

	limit = p.DefaultLimit
	if p.Expensive[endpoint] {
		limit = p.ExpensiveLimit
	}
	if caller.Authenticated {
		limit *= p.AuthMultiplier
	}

	if caller.Authenticated {
		key = fmt.Sprintf("%s:user:%s", endpoint, caller.UID)
	} else {
		key = fmt.Sprintf("%s:ip:%s", endpoint, caller.IP)
	}

	return key, limit, p.Window
}
