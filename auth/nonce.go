package auth

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"time"
)

// NonceService issues short CSRF tokens tied to a named action and the
// requesting session. A nonce is the truncated HMAC of action, session and
// the current time tick; verification accepts the current and the previous
// tick, so a nonce stays valid for one to two tick lengths.
type NonceService struct {
	secret []byte
	tick   time.Duration

	now func() time.Time
}

// NonceLength is the hex length of an issued nonce.
const NonceLength = 10

// NewNonceService builds a NonceService. An empty secret gets replaced by a
// random one, which invalidates outstanding nonces across restarts.
func NewNonceService(secret string, tick time.Duration) *NonceService {
	if tick <= 0 {
		tick = 12 * time.Hour
	}

	key := []byte(secret)
	if len(key) == 0 {
		key = make([]byte, 32)
		_, _ = rand.Read(key)
	}

	return &NonceService{
		secret: key,
		tick:   tick,
		now:    time.Now,
	}
}

// Create issues a nonce for the named action and session.
func (n *NonceService) Create(action, session string) string {
	return n.at(action, session, n.currentTick())
}

// Verify reports whether nonce is valid for the action/session pair in the
// current or previous tick.
func (n *NonceService) Verify(nonce, action, session string) bool {
	if len(nonce) != NonceLength {
		return false
	}

	tick := n.currentTick()
	for _, t := range []int64{tick, tick - 1} {
		expected := n.at(action, session, t)
		if subtle.ConstantTimeCompare([]byte(nonce), []byte(expected)) == 1 {
			return true
		}
	}
	return false
}

func (n *NonceService) currentTick() int64 {
	return n.now().UnixNano() / int64(n.tick)
}

func (n *NonceService) at(action, session string, tick int64) string {
	mac := hmac.New(sha256.New, n.secret)
	fmt.Fprintf(mac, "%d|%s|%s", tick, action, session)
	return hex.EncodeToString(mac.Sum(nil))[:NonceLength]
}
