package api

import (
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const sessionTTL = 12 * time.Hour

type session struct {
	email     string
	expiresAt time.Time
}

type sessionStore struct {
	mu    sync.Mutex
	items map[string]session
}

func newSessionStore() *sessionStore {
	return &sessionStore{items: make(map[string]session)}
}

func (s *sessionStore) put(email string) (token string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.purgeExpiredLocked(time.Now())

	token = uuid.NewString()
	s.items[token] = session{email: email, expiresAt: time.Now().Add(sessionTTL)}
	return token
}

func (s *sessionStore) get(token string) (session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.purgeExpiredLocked(time.Now())

	v, ok := s.items[token]
	if !ok {
		return session{}, false
	}
	if time.Now().After(v.expiresAt) {
		delete(s.items, token)
		return session{}, false
	}
	return v, true
}

func (s *sessionStore) delete(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, token)
}

func (s *sessionStore) purgeExpiredLocked(now time.Time) {
	for k, v := range s.items {
		if now.After(v.expiresAt) {
			delete(s.items, k)
		}
	}
}

// LoginRequest carries the admin credential pair.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login checks the credentials against configuration and issues a token.
// POST /api/login
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if h.cfg.Auth.AdminEmail == "" || h.cfg.Auth.AdminPassword == "" {
		h.log.Warn("[auth.login] no admin credentials configured")
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "login is not configured"})
		return
	}
	if req.Email != h.cfg.Auth.AdminEmail || req.Password != h.cfg.Auth.AdminPassword {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
		return
	}

	token := h.sessions.put(req.Email)
	c.JSON(http.StatusOK, gin.H{"token": token})
}

// Logout invalidates the caller's token.
// POST /api/logout
func (h *Handler) Logout(c *gin.Context) {
	if token := bearerToken(c); token != "" {
		h.sessions.delete(token)
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// RequireAuth rejects requests without a valid session token.
func (h *Handler) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
			return
		}
		if _, ok := h.sessions.get(token); !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	auth := c.GetHeader("Authorization")
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	return ""
}
