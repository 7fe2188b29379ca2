package session

import (
	"encoding/json"
	"log"

	"gourmet-slice-web/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Cookies live for 30 days; the token inside is never inspected for expiry,
// the remote API rejects stale ones.
const cookieMaxAge = 30 * 24 * 60 * 60

// Claims is the subset of the remote API's JWT payload shown in page headers.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Manager binds the durable session store to a browser cookie. All handlers
// receive it by injection so tests can run against an in-memory store.
type Manager struct {
	store      *Store
	cookieName string
}

func NewManager(store *Store, cookieName string) *Manager {
	return &Manager{store: store, cookieName: cookieName}
}

// Login records the bearer token for this browser, minting a session cookie
// if none exists yet. The token is stored as-is; no validation is performed.
func (m *Manager) Login(c *gin.Context, token string) error {
	id := m.ensureSessionID(c)
	return m.store.SaveToken(id, token)
}

// Logout clears the session and its cookie. Safe to call with no session.
func (m *Manager) Logout(c *gin.Context) error {
	id, ok := m.sessionID(c)
	if !ok {
		return nil
	}
	c.SetCookie(m.cookieName, "", -1, "/", "", false, true)
	return m.store.Delete(id)
}

// Token returns the current bearer token, or "" when anonymous.
func (m *Manager) Token(c *gin.Context) string {
	id, ok := m.sessionID(c)
	if !ok {
		return ""
	}
	rec, ok := m.store.Get(id)
	if !ok {
		return ""
	}
	return rec.Token
}

// IsAuthenticated reports whether a non-empty token is present.
func (m *Manager) IsAuthenticated(c *gin.Context) bool {
	return m.Token(c) != ""
}

// UserClaims decodes the stored token without verifying its signature, for
// display only. Verification belongs to the remote API; a malformed token
// simply yields empty claims.
func (m *Manager) UserClaims(c *gin.Context) Claims {
	token := m.Token(c)
	if token == "" {
		return Claims{}
	}
	claims := &Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return Claims{}
	}
	return *claims
}

// Cart loads the session's cart; an anonymous or empty session gets an empty cart.
func (m *Manager) Cart(c *gin.Context) models.Cart {
	id, ok := m.sessionID(c)
	if !ok {
		return nil
	}
	rec, ok := m.store.Get(id)
	if !ok || rec.Cart == "" {
		return nil
	}
	var cart models.Cart
	if err := json.Unmarshal([]byte(rec.Cart), &cart); err != nil {
		log.Printf("Discarding unreadable cart for session %s: %v", id, err)
		return nil
	}
	return cart
}

// SaveCart persists the cart for this browser, minting a session if needed.
func (m *Manager) SaveCart(c *gin.Context, cart models.Cart) error {
	id := m.ensureSessionID(c)
	raw, err := json.Marshal(cart)
	if err != nil {
		return err
	}
	return m.store.SaveCart(id, string(raw))
}

// ClearCart empties the session's cart, keeping the session itself.
func (m *Manager) ClearCart(c *gin.Context) error {
	id, ok := m.sessionID(c)
	if !ok {
		return nil
	}
	return m.store.SaveCart(id, "")
}

func (m *Manager) sessionID(c *gin.Context) (string, bool) {
	id, err := c.Cookie(m.cookieName)
	if err != nil || id == "" {
		return "", false
	}
	return id, true
}

func (m *Manager) ensureSessionID(c *gin.Context) string {
	if id, ok := m.sessionID(c); ok {
		return id
	}
	id := uuid.NewString()
	c.SetCookie(m.cookieName, id, cookieMaxAge, "/", "", false, true)
	return id
}
