package services

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/apptrackr/backend/internal/apierrors"
	"github.com/apptrackr/backend/internal/dtos"
	"github.com/apptrackr/backend/internal/models"
)

type UserService struct {
	DB *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{DB: db}
}

// Register creates a user with a bcrypt-hashed password. A taken email is a
// client error, not an internal one.
func (s *UserService) Register(req *dtos.RegisterRequest) (*models.User, error) {
	var existing models.User
	err := s.DB.Where("email = ?", req.Email).First(&existing).Error
	if err == nil {
		return nil, apierrors.BadRequest("email already in use")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{Name: req.Name, Email: req.Email, Password: string(hash)}
	if err := s.DB.Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apierrors.BadRequest("email already in use")
		}
		return nil, err
	}
	return user, nil
}

// Authenticate verifies email+password. Unknown email and wrong password
// fail identically so callers cannot enumerate accounts.
func (s *UserService) Authenticate(email, password string) (*models.User, error) {
	var user models.User
	err := s.DB.Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apierrors.Unauthenticated("Invalid Credentials")
	}
	if err != nil {
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, apierrors.Unauthenticated("Invalid Credentials")
	}
	return &user, nil
}

func (s *UserService) Get(id uint) (*models.User, error) {
	var user models.User
	err := s.DB.First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apierrors.NotFound("user not found")
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateProfile replaces name and email.
func (s *UserService) UpdateProfile(id uint, req *dtos.UpdateUserRequest) (*models.User, error) {
	user, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	user.Name = req.Name
	user.Email = req.Email
	if err := s.DB.Save(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apierrors.BadRequest("email already in use")
		}
		return nil, err
	}
	return user, nil
}

// UpdatePassword requires the old password to match before re-hashing.
func (s *UserService) UpdatePassword(id uint, oldPassword, newPassword string) (*models.User, error) {
	if oldPassword == "" || newPassword == "" {
		return nil, apierrors.BadRequest("please provide all values")
	}
	if len(newPassword) < 6 {
		return nil, apierrors.BadRequest("password should be at least 6 characters")
	}

	user, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(oldPassword)) != nil {
		return nil, apierrors.BadRequest("incorrect old password")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user.Password = string(hash)
	if err := s.DB.Save(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}
