// Package auth issues and verifies the signed credential carried in the auth
// cookie. Validity is purely a function of signature and expiry; there is no
// session store or revocation list.
package auth

import (
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/apptrackr/backend/internal/models"
)

// CookieName is the HTTP-only cookie holding the JWT.
const CookieName = "token"

// Claims is the credential payload attached to every authenticated request.
type Claims struct {
	UserID uint   `json:"userId"`
	Name   string `json:"name"`
	Demo   bool   `json:"demo,omitempty"`
	jwt.RegisteredClaims
}

type Manager struct {
	secret   []byte
	lifetime time.Duration
	secure   bool
}

func NewManager(secret string, lifetime time.Duration, secureCookie bool) *Manager {
	return &Manager{secret: []byte(secret), lifetime: lifetime, secure: secureCookie}
}

// CreateToken signs an HS256 token for u.
func (m *Manager) CreateToken(u *models.User, demo bool) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: u.ID,
		Name:   u.Name,
		Demo:   demo,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.lifetime)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// ValidateToken parses and verifies a token string, enforcing the HMAC
// signing method before handing back the key.
func (m *Manager) ValidateToken(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}

// SetCookie attaches the credential cookie to the response.
func (m *Manager) SetCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Now().Add(m.lifetime),
	})
}

// ClearCookie expires the credential cookie.
func (m *Manager) ClearCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Path:     "/",
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}
