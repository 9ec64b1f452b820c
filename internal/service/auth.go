package service

import (
	"context"
	"errors"

	"firedept-backoffice/internal/domain"
	"firedept-backoffice/internal/repository"
	"firedept-backoffice/internal/security"

	"golang.org/x/crypto/bcrypt"
)

type authService struct {
	userRepo     repository.UserRepository
	supplierRepo repository.SupplierRepository
	tokens       security.TokenManager
}

func NewAuthService(userRepo repository.UserRepository, supplierRepo repository.SupplierRepository, tokens security.TokenManager) AuthService {
	return &authService{userRepo: userRepo, supplierRepo: supplierRepo, tokens: tokens}
}

func (s *authService) LoginUser(ctx context.Context, email, password string) (string, *domain.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateUserToken(user.ID, user.Email, user.Roles)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (s *authService) LoginSupplier(ctx context.Context, email, password string) (string, *domain.Supplier, error) {
	supplier, err := s.supplierRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrSupplierNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(supplier.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateSupplierToken(supplier.ID, supplier.Email)
	if err != nil {
		return "", nil, err
	}
	return token, supplier, nil
}
