package torrentapi

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// TokenTTL is how long a token is used before it is renewed. The API keeps
// tokens for 15 minutes; renewing after 10 leaves a margin.
const TokenTTL = 600 * time.Second

// Lease is a token together with the time it was issued
type Lease struct {
	value    string
	issuedAt time.Time
}

// Value returns the token string
func (l Lease) Value() string { return l.value }

// IssuedAt returns when the token was acquired
func (l Lease) IssuedAt() time.Time { return l.issuedAt }

// Valid reports whether the lease can still be used at now.
// A lease is invalid from exactly TokenTTL after issue onwards.
func (l Lease) Valid(now time.Time) bool {
	age := now.Sub(l.issuedAt)
	return l.value != "" && age >= 0 && age < TokenTTL
}

// tokenAcquirer performs the handshake exchanging an app id for a token
type tokenAcquirer struct {
	transport Transport
	endpoint  string
	userAgent string
	now       func() time.Time
}

// acquire requests a fresh token. It never retries.
func (a *tokenAcquirer) acquire(ctx context.Context, appID string) (Lease, error) {
	body, err := a.transport.Get(ctx, a.endpoint, tokenQuery(appID), a.userAgent)
	if err != nil {
		return Lease{}, &AuthError{AppID: appID, Reason: "handshake request failed", Err: err}
	}

	var content map[string]any
	if err := json.Unmarshal(body, &content); err != nil {
		return Lease{}, &AuthError{AppID: appID, Reason: "failed to decode handshake response", Err: err}
	}

	token, ok := content["token"].(string)
	if !ok || token == "" {
		return Lease{}, &AuthError{AppID: appID, Reason: fmt.Sprintf("no token in handshake response: %s", truncate(body, 200))}
	}

	return Lease{value: token, issuedAt: a.now()}, nil
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
