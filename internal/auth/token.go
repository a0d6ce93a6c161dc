package auth

import (
	"encoding/base64"
	"fmt"
	"time"
)

// CookieName is the admin session cookie.
const CookieName = "admin_token"

// CookieTTL is the fixed session lifetime.
const CookieTTL = 7 * 24 * time.Hour

// SessionToken encodes the opaque session value set on login: base64 of
// "userId:unixMillis". The token carries no signature; the session check
// only ever tests for cookie presence, so the value exists for debugging
// and log correlation, not verification.
func SessionToken(userID int64, now time.Time) string {
	raw := fmt.Sprintf("%d:%d", userID, now.UnixMilli())
	return base64.StdEncoding.EncodeToString([]byte(raw))
}
