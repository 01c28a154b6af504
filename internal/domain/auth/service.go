package auth

import "context"

type AuthService interface {
	Register(ctx context.Context, req RegisterRequest) (TokenPair, error)
	Login(ctx context.Context, req LoginRequest) (TokenPair, error)
	LoginWithGoogle(ctx context.Context, code string) (TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (TokenPair, error)
}
