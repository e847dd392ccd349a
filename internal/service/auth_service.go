package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"dinedesk-be/internal/config"
	"dinedesk-be/internal/dto"
	"dinedesk-be/internal/entity"
	"dinedesk-be/internal/pkg/apperror"
	"dinedesk-be/internal/repository/specification"
	"dinedesk-be/internal/repository/unitofwork"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type IAuthService interface {
	Signup(ctx context.Context, req *dto.SignupRequest) (*dto.UserResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
}

type authService struct {
	uowFactory unitofwork.RepositoryFactory
	cfg        config.AuthConfig
	now        func() time.Time
}

func NewAuthService(uowFactory unitofwork.RepositoryFactory, cfg config.AuthConfig) IAuthService {
	return &authService{
		uowFactory: uowFactory,
		cfg:        cfg,
		now:        time.Now,
	}
}

func (s *authService) Signup(ctx context.Context, req *dto.SignupRequest) (*dto.UserResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if req.Password != req.ConfirmPassword {
		return nil, apperror.Validation("Passwords do not match")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	existing, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: email})
	if err != nil {
		return nil, fmt.Errorf("lookup user: %w", err)
	}
	if existing != nil {
		return nil, apperror.Validation("Email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	user := &entity.User{
		Id:           uuid.New(),
		Email:        email,
		FullName:     strings.TrimSpace(req.FullName),
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uow.UserRepository().Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	return &dto.UserResponse{Id: user.Id, Email: user.Email, FullName: user.FullName}, nil
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return nil, fmt.Errorf("lookup user: %w", err)
	}
	if user == nil {
		return nil, apperror.Unauthorized("Invalid email or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apperror.Unauthorized("Invalid email or password")
	}

	expiresAt := s.now().Add(s.cfg.TokenTTL)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.Id.String(),
		"name":    user.FullName,
		"exp":     expiresAt.Unix(),
	})
	signed, err := token.SignedString([]byte(s.cfg.JwtSecret))
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}

	return &dto.LoginResponse{
		AccessToken: signed,
		ExpiresAt:   expiresAt,
		User:        dto.UserResponse{Id: user.Id, Email: user.Email, FullName: user.FullName},
	}, nil
}
