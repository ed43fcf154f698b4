package service

import (
	"context"
	"fmt"
	"time"

	"github.com/azzami13/Mapasset/models"
	"github.com/azzami13/Mapasset/repository"
	"github.com/azzami13/Mapasset/utils"

	"golang.org/x/crypto/bcrypt"
)

type UserProfile struct {
	ID          uint       `json:"id"`
	Username    string     `json:"username"`
	Role        string     `json:"role"`
	IsActive    bool       `json:"is_active"`
	LastLoginAt *time.Time `json:"last_login_at"`
	LoginCount  int        `json:"login_count"`
}

type AuthService interface {
	// Login memverifikasi kredensial dan menerbitkan token sesi. Counter
	// login dipersistenkan sebelum token diterbitkan.
	Login(ctx context.Context, username, password string) (string, *models.User, error)
	Me(ctx context.Context, userID uint) (*UserProfile, error)
}

type authService struct {
	users    repository.UserRepository
	tokenTTL time.Duration
}

func NewAuthService(users repository.UserRepository, tokenTTL time.Duration) AuthService {
	return &authService{users: users, tokenTTL: tokenTTL}
}

func (s *authService) Login(ctx context.Context, username, password string) (string, *models.User, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return "", nil, err
	}
	if user == nil {
		return "", nil, fmt.Errorf("%w: username tidak ditemukan", models.ErrUnauthenticated)
	}
	if !user.IsActive {
		return "", nil, fmt.Errorf("%w: user nonaktif", models.ErrForbidden)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, fmt.Errorf("%w: password salah", models.ErrUnauthenticated)
	}

	now := time.Now()
	user.LastLoginAt = &now
	user.LoginCount++
	if err := s.users.RecordLogin(ctx, user); err != nil {
		return "", nil, err
	}

	role := user.Role.Name
	if role == "" {
		role = models.RoleViewer
	}

	token, err := utils.GenerateToken(user.ID, user.Username, role, s.tokenTTL)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (s *authService) Me(ctx context.Context, userID uint) (*UserProfile, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%w: user tidak ditemukan", models.ErrUnauthenticated)
	}

	return &UserProfile{
		ID:          user.ID,
		Username:    user.Username,
		Role:        user.Role.Name,
		IsActive:    user.IsActive,
		LastLoginAt: user.LastLoginAt,
		LoginCount:  user.LoginCount,
	}, nil
}
