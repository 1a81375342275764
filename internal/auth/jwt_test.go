package auth

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/apptrackr/backend/internal/models"
)

func TestCreateAndValidateToken(t *testing.T) {
	m := NewManager("test-secret", time.Hour, false)
	user := &models.User{ID: 42, Name: "Ada"}

	tok, err := m.CreateToken(user, false)
	if err != nil {
		t.Fatalf("CreateToken: %v", err)
	}

	claims, err := m.ValidateToken(tok)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.UserID != 42 || claims.Name != "Ada" || claims.Demo {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	issuer := NewManager("secret-a", time.Hour, false)
	verifier := NewManager("secret-b", time.Hour, false)

	tok, err := issuer.CreateToken(&models.User{ID: 1}, false)
	if err != nil {
		t.Fatalf("CreateToken: %v", err)
	}
	if _, err := verifier.ValidateToken(tok); err == nil {
		t.Fatal("token signed with a different secret must not validate")
	}
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	m := NewManager("test-secret", -time.Minute, false)
	tok, err := m.CreateToken(&models.User{ID: 1}, false)
	if err != nil {
		t.Fatalf("CreateToken: %v", err)
	}
	if _, err := m.ValidateToken(tok); err == nil {
		t.Fatal("expired token must not validate")
	}
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	m := NewManager("test-secret", time.Hour, false)
	for _, tok := range []string{"", "not.a.jwt", "aaaa.bbbb.cccc"} {
		if _, err := m.ValidateToken(tok); err == nil {
			t.Fatalf("%q must not validate", tok)
		}
	}
}

func TestDemoClaimRoundTrips(t *testing.T) {
	m := NewManager("test-secret", time.Hour, false)
	tok, err := m.CreateToken(&models.User{ID: 7, Name: "Demo"}, true)
	if err != nil {
		t.Fatalf("CreateToken: %v", err)
	}
	claims, err := m.ValidateToken(tok)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if !claims.Demo {
		t.Fatal("demo claim lost")
	}
}

func TestCookieLifecycle(t *testing.T) {
	m := NewManager("test-secret", time.Hour, true)

	w := httptest.NewRecorder()
	m.SetCookie(w, "tok-value")
	set := w.Header().Get("Set-Cookie")
	if !strings.Contains(set, CookieName+"=tok-value") {
		t.Fatalf("cookie not set: %q", set)
	}
	if !strings.Contains(set, "HttpOnly") || !strings.Contains(set, "Secure") {
		t.Fatalf("cookie missing flags: %q", set)
	}

	w = httptest.NewRecorder()
	m.ClearCookie(w)
	cleared := w.Header().Get("Set-Cookie")
	if !strings.Contains(cleared, "Max-Age=0") {
		t.Fatalf("clear did not expire cookie: %q", cleared)
	}
}
