package services

import (
	"net/http"
	"testing"

	"github.com/apptrackr/backend/internal/apierrors"
	"github.com/apptrackr/backend/internal/dtos"
)

func userService(t *testing.T) *UserService {
	return NewUserService(testDB(t))
}

func registerAda(t *testing.T, s *UserService) uint {
	t.Helper()
	u, err := s.Register(&dtos.RegisterRequest{Name: "Ada", Email: "ada@example.com", Password: "secret1"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	return u.ID
}

func TestRegisterHashesPassword(t *testing.T) {
	s := userService(t)
	u, err := s.Register(&dtos.RegisterRequest{Name: "Ada", Email: "ada@example.com", Password: "secret1"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if u.Password == "secret1" || u.Password == "" {
		t.Fatal("password stored in the clear")
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	s := userService(t)
	registerAda(t, s)

	_, err := s.Register(&dtos.RegisterRequest{Name: "Other", Email: "ada@example.com", Password: "secret2"})
	if apierrors.Status(err) != http.StatusBadRequest {
		t.Fatalf("duplicate email: got %v, want 400", err)
	}
}

func TestAuthenticate(t *testing.T) {
	s := userService(t)
	registerAda(t, s)

	if _, err := s.Authenticate("ada@example.com", "secret1"); err != nil {
		t.Fatalf("valid login: %v", err)
	}

	// unknown email and wrong password must be indistinguishable
	_, errUnknown := s.Authenticate("nobody@example.com", "secret1")
	_, errWrong := s.Authenticate("ada@example.com", "wrong")
	for _, err := range []error{errUnknown, errWrong} {
		if apierrors.Status(err) != http.StatusUnauthorized {
			t.Fatalf("invalid login: got %v, want 401", err)
		}
	}
	if apierrors.Message(errUnknown) != apierrors.Message(errWrong) {
		t.Fatalf("login failures leak the reason: %q vs %q",
			apierrors.Message(errUnknown), apierrors.Message(errWrong))
	}
}

func TestUpdateProfile(t *testing.T) {
	s := userService(t)
	id := registerAda(t, s)

	u, err := s.UpdateProfile(id, &dtos.UpdateUserRequest{Name: "Ada L", Email: "ada.l@example.com"})
	if err != nil {
		t.Fatalf("update profile: %v", err)
	}
	if u.Name != "Ada L" || u.Email != "ada.l@example.com" {
		t.Fatalf("profile not updated: %+v", u)
	}
}

func TestUpdatePassword(t *testing.T) {
	s := userService(t)
	id := registerAda(t, s)

	if _, err := s.UpdatePassword(id, "wrong-old", "newsecret"); apierrors.Status(err) != http.StatusBadRequest {
		t.Fatalf("wrong old password: got %v, want 400", err)
	}
	if _, err := s.UpdatePassword(id, "", "newsecret"); apierrors.Status(err) != http.StatusBadRequest {
		t.Fatalf("missing old password: got %v, want 400", err)
	}

	if _, err := s.UpdatePassword(id, "secret1", "newsecret"); err != nil {
		t.Fatalf("update password: %v", err)
	}
	if _, err := s.Authenticate("ada@example.com", "newsecret"); err != nil {
		t.Fatalf("login with new password: %v", err)
	}
	if _, err := s.Authenticate("ada@example.com", "secret1"); err == nil {
		t.Fatal("old password still accepted")
	}
}
