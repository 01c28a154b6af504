package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/talenthq/payroll-backend-go/internal/domain/auth"
	"github.com/talenthq/payroll-backend-go/internal/domain/company"
	"github.com/talenthq/payroll-backend-go/internal/domain/user"
	"github.com/talenthq/payroll-backend-go/internal/pkg/database"
	"github.com/talenthq/payroll-backend-go/internal/pkg/jwt"
	"github.com/talenthq/payroll-backend-go/internal/pkg/oauth"
	"github.com/talenthq/payroll-backend-go/internal/repository/postgresql"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	db            *database.DB
	userRepo      user.UserRepository
	companyRepo   company.CompanyRepository
	jwtService    jwt.Service
	googleService oauth.GoogleService
}

func NewAuthService(
	db *database.DB,
	userRepo user.UserRepository,
	companyRepo company.CompanyRepository,
	jwtService jwt.Service,
	googleService oauth.GoogleService,
) auth.AuthService {
	return &AuthServiceImpl{
		db:            db,
		userRepo:      userRepo,
		companyRepo:   companyRepo,
		jwtService:    jwtService,
		googleService: googleService,
	}
}

// Register creates a company and its owner account in one transaction.
func (s *AuthServiceImpl) Register(ctx context.Context, req auth.RegisterRequest) (auth.TokenPair, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenPair{}, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return auth.TokenPair{}, fmt.Errorf("failed to hash password: %w", err)
	}
	passwordHash := string(hashedPassword)

	var newUser user.User
	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		newCompany, err := s.companyRepo.Create(txCtx, company.Company{
			Name:     req.CompanyName,
			Username: req.CompanyUsername,
		})
		if err != nil {
			return err
		}

		newUser, err = s.userRepo.Create(txCtx, user.User{
			CompanyID:    &newCompany.ID,
			Email:        req.Email,
			PasswordHash: &passwordHash,
			Role:         user.RoleCompanyOwner,
		})
		return err
	})
	if err != nil {
		return auth.TokenPair{}, err
	}

	return s.generateTokenPair(newUser)
}

func (s *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenPair, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenPair{}, err
	}

	found, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenPair{}, auth.ErrInvalidCredentials
		}
		return auth.TokenPair{}, fmt.Errorf("failed to get user by email: %w", err)
	}
	if found.PasswordHash == nil {
		return auth.TokenPair{}, auth.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*found.PasswordHash), []byte(req.Password)); err != nil {
		return auth.TokenPair{}, auth.ErrInvalidCredentials
	}

	return s.generateTokenPair(found)
}

// LoginWithGoogle exchanges the OAuth2 code and signs in the matching account.
// Accounts are not auto-provisioned; registration must happen first.
func (s *AuthServiceImpl) LoginWithGoogle(ctx context.Context, code string) (auth.TokenPair, error) {
	token, err := s.googleService.VerifyToken(ctx, code)
	if err != nil {
		return auth.TokenPair{}, fmt.Errorf("failed to verify oauth code: %w", err)
	}

	info, err := s.googleService.VerifyUser(ctx, token)
	if err != nil {
		return auth.TokenPair{}, fmt.Errorf("failed to fetch google user info: %w", err)
	}
	if !info.VerifiedEmail {
		return auth.TokenPair{}, auth.ErrInvalidCredentials
	}

	found, err := s.userRepo.GetByEmail(ctx, info.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenPair{}, auth.ErrUserNotFound
		}
		return auth.TokenPair{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	return s.generateTokenPair(found)
}

// Refresh rotates the refresh token: the presented token is revoked and a new
// pair is issued.
func (s *AuthServiceImpl) Refresh(ctx context.Context, refreshToken string) (auth.TokenPair, error) {
	if s.jwtService.IsTokenRevoked(refreshToken) {
		return auth.TokenPair{}, auth.ErrInvalidToken
	}

	token, err := s.jwtService.JWTAuth().Decode(refreshToken)
	if err != nil {
		return auth.TokenPair{}, auth.ErrInvalidToken
	}

	claims, err := token.AsMap(ctx)
	if err != nil {
		return auth.TokenPair{}, auth.ErrInvalidToken
	}
	if tokenType, _ := claims["type"].(string); tokenType != "refresh" {
		return auth.TokenPair{}, auth.ErrInvalidToken
	}
	userID, _ := claims["user_id"].(string)
	if userID == "" {
		return auth.TokenPair{}, auth.ErrInvalidToken
	}

	found, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenPair{}, auth.ErrUserNotFound
		}
		return auth.TokenPair{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	s.jwtService.RevokeToken(refreshToken)

	return s.generateTokenPair(found)
}

// ========== HELPERS ==========

func (s *AuthServiceImpl) generateTokenPair(u user.User) (auth.TokenPair, error) {
	accessToken, expiresAt, err := s.jwtService.GenerateAccessToken(u.ID, u.Email, u.CompanyID, u.Role)
	if err != nil {
		return auth.TokenPair{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, _, err := s.jwtService.GenerateRefreshToken(u.ID)
	if err != nil {
		return auth.TokenPair{}, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	return auth.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresAt:    expiresAt,
	}, nil
}
