package identity

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/healthtrack/backend/internal/domain/identity"
	"github.com/healthtrack/backend/internal/domain/shared"
	"github.com/healthtrack/backend/internal/infrastructure/auth"
)

// AuthService handles authentication operations
type AuthService struct {
	userRepo   identity.UserRepository
	jwtService *auth.JWTService
	blacklist  auth.TokenBlacklist
	logger     *zap.Logger
}

// NewAuthService creates a new authentication service
func NewAuthService(
	userRepo identity.UserRepository,
	jwtService *auth.JWTService,
	blacklist auth.TokenBlacklist,
	logger *zap.Logger,
) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtService: jwtService,
		blacklist:  blacklist,
		logger:     logger,
	}
}

// Register creates a new user account
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*RegisterResult, error) {
	s.logger.Info("Registration attempt", zap.String("username", input.Username))

	user, err := identity.NewUser(input.Username, input.Password)
	if err != nil {
		return nil, err
	}

	exists, err := s.userRepo.ExistsByUsername(ctx, user.Username)
	if err != nil {
		s.logger.Error("Failed to check username availability", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to create account")
	}
	if exists {
		return nil, shared.ErrDuplicateUsername
	}

	// Create maps a racing duplicate insert to ErrDuplicateUsername as well
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, shared.ErrDuplicateUsername) {
			return nil, shared.ErrDuplicateUsername
		}
		s.logger.Error("Failed to create user", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to create account")
	}

	s.logger.Info("User registered",
		zap.String("username", user.Username),
		zap.String("user_id", user.ID.String()))

	return &RegisterResult{User: NewUserInfo(user)}, nil
}

// Login authenticates a user and returns tokens.
// A missing user and a wrong password produce the same error.
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	s.logger.Info("Login attempt", zap.String("username", input.Username))

	user, err := s.userRepo.FindByUsername(ctx, input.Username)
	if err != nil {
		s.logger.Warn("User not found during login", zap.String("username", input.Username))
		return nil, shared.ErrInvalidCredentials
	}

	if !user.VerifyPassword(input.Password) {
		s.logger.Warn("Invalid password attempt", zap.String("username", input.Username))
		return nil, shared.ErrInvalidCredentials
	}

	tokenPair, err := s.jwtService.GenerateTokenPair(auth.GenerateTokenInput{
		UserID:   user.ID,
		Username: user.Username,
	})
	if err != nil {
		s.logger.Error("Failed to generate token pair", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to generate authentication tokens")
	}

	user.RecordLogin()
	if err := s.userRepo.Update(ctx, user); err != nil {
		// Don't fail the login - just log the error
		s.logger.Error("Failed to record login time", zap.Error(err))
	}

	s.logger.Info("User logged in",
		zap.String("username", user.Username),
		zap.String("user_id", user.ID.String()))

	return &LoginResult{
		AccessToken:           tokenPair.AccessToken,
		RefreshToken:          tokenPair.RefreshToken,
		AccessTokenExpiresAt:  tokenPair.AccessTokenExpiresAt,
		RefreshTokenExpiresAt: tokenPair.RefreshTokenExpiresAt,
		TokenType:             tokenPair.TokenType,
		User:                  NewUserInfo(user),
	}, nil
}

// RefreshToken issues a new token pair from a valid refresh token
func (s *AuthService) RefreshToken(ctx context.Context, input RefreshTokenInput) (*RefreshTokenResult, error) {
	claims, err := s.jwtService.ValidateRefreshToken(input.RefreshToken)
	if err != nil {
		s.logger.Warn("Refresh token validation failed", zap.Error(err))
		switch {
		case errors.Is(err, auth.ErrExpiredToken):
			return nil, shared.NewDomainError("TOKEN_EXPIRED", "Refresh token has expired")
		default:
			return nil, shared.NewDomainError("TOKEN_INVALID", "Invalid refresh token")
		}
	}

	if claims.ID != "" {
		revoked, err := s.blacklist.IsBlacklisted(ctx, claims.ID)
		if err != nil {
			s.logger.Error("Failed to check token blacklist", zap.Error(err))
			return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to validate refresh token")
		}
		if revoked {
			return nil, shared.NewDomainError("TOKEN_INVALID", "Refresh token has been revoked")
		}
	}

	userID, err := claims.GetUserUUID()
	if err != nil {
		return nil, shared.NewDomainError("TOKEN_INVALID", "Invalid user ID in token")
	}

	// Verify the user still exists
	if _, err := s.userRepo.FindByID(ctx, userID); err != nil {
		s.logger.Warn("User not found during token refresh", zap.String("user_id", userID.String()))
		return nil, shared.NewDomainError("TOKEN_INVALID", "Invalid refresh token")
	}

	tokenPair, err := s.jwtService.RefreshTokenPair(input.RefreshToken)
	if err != nil {
		s.logger.Warn("Token refresh failed", zap.Error(err))
		return nil, shared.NewDomainError("TOKEN_INVALID", "Invalid refresh token")
	}

	s.logger.Info("Token refreshed", zap.String("user_id", userID.String()))

	return &RefreshTokenResult{
		AccessToken:           tokenPair.AccessToken,
		RefreshToken:          tokenPair.RefreshToken,
		AccessTokenExpiresAt:  tokenPair.AccessTokenExpiresAt,
		RefreshTokenExpiresAt: tokenPair.RefreshTokenExpiresAt,
		TokenType:             tokenPair.TokenType,
	}, nil
}

// Logout revokes the current access token, and the refresh token when provided
func (s *AuthService) Logout(ctx context.Context, input LogoutInput) error {
	s.logger.Info("User logout", zap.String("user_id", input.UserID.String()))

	if input.AccessJTI != "" && input.AccessTTL > 0 {
		if err := s.blacklist.AddToBlacklist(ctx, input.AccessJTI, input.AccessTTL); err != nil {
			s.logger.Error("Failed to blacklist access token", zap.Error(err))
			return shared.NewDomainError("INTERNAL_ERROR", "Failed to log out")
		}
	}

	if input.RefreshToken != "" {
		claims, err := s.jwtService.ValidateRefreshToken(input.RefreshToken)
		if err != nil {
			// An already invalid refresh token needs no revocation
			return nil
		}
		if claims.ID != "" {
			if ttl := claims.GetRemainingTTL(); ttl > 0 {
				if err := s.blacklist.AddToBlacklist(ctx, claims.ID, ttl); err != nil {
					s.logger.Error("Failed to blacklist refresh token", zap.Error(err))
					return shared.NewDomainError("INTERNAL_ERROR", "Failed to log out")
				}
			}
		}
	}

	return nil
}

// GetCurrentUser retrieves the current user's information
func (s *AuthService) GetCurrentUser(ctx context.Context, input GetCurrentUserInput) (*CurrentUserResult, error) {
	user, err := s.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, shared.ErrNotFound
	}

	return &CurrentUserResult{User: NewUserInfo(user)}, nil
}
