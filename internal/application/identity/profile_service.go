package identity

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/healthtrack/backend/internal/domain/identity"
	"github.com/healthtrack/backend/internal/domain/shared"
	"github.com/healthtrack/backend/internal/infrastructure/storage"
)

// allowedPictureTypes maps accepted profile picture extensions to content types
var allowedPictureTypes = map[string]string{
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
}

// ProfileService handles profile reads and updates
type ProfileService struct {
	userRepo identity.UserRepository
	avatars  storage.AvatarStorage
	logger   *zap.Logger
}

// NewProfileService creates a new profile service
func NewProfileService(
	userRepo identity.UserRepository,
	avatars storage.AvatarStorage,
	logger *zap.Logger,
) *ProfileService {
	return &ProfileService{
		userRepo: userRepo,
		avatars:  avatars,
		logger:   logger,
	}
}

// GetProfile returns the user's profile
func (s *ProfileService) GetProfile(ctx context.Context, userID uuid.UUID) (*ProfileResult, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, shared.ErrNotFound
	}

	return &ProfileResult{User: NewUserInfo(user)}, nil
}

// UpdateProfile applies the provided profile changes.
// A rejected or absent picture leaves the stored picture untouched.
func (s *ProfileService) UpdateProfile(ctx context.Context, input UpdateProfileInput) (*ProfileResult, error) {
	user, err := s.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, shared.ErrNotFound
	}

	if input.Picture != nil {
		contentType, err := pictureContentType(input.Picture.Filename)
		if err != nil {
			return nil, err
		}

		key := avatarKey(user.ID, input.Picture.Filename)
		if err := s.avatars.Save(ctx, key, input.Picture.Content, contentType); err != nil {
			s.logger.Error("Failed to store profile picture",
				zap.String("user_id", user.ID.String()),
				zap.Error(err))
			return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to store profile picture")
		}

		previous := user.ProfilePicture
		if err := user.SetProfilePicture(key); err != nil {
			return nil, err
		}

		if previous != "" && previous != key {
			if err := s.avatars.Delete(ctx, previous); err != nil {
				// The replaced object is orphaned but the update still holds
				s.logger.Warn("Failed to delete replaced profile picture",
					zap.String("key", previous),
					zap.Error(err))
			}
		}
	}

	if input.Name != nil {
		if err := user.SetName(*input.Name); err != nil {
			return nil, err
		}
	}

	if input.ClearAge {
		if err := user.SetAge(nil); err != nil {
			return nil, err
		}
	} else if input.Age != nil {
		if err := user.SetAge(input.Age); err != nil {
			return nil, err
		}
	}

	if input.HealthGoals != nil {
		if err := user.SetHealthGoals(*input.HealthGoals); err != nil {
			return nil, err
		}
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		s.logger.Error("Failed to update profile",
			zap.String("user_id", user.ID.String()),
			zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to update profile")
	}

	s.logger.Info("Profile updated", zap.String("user_id", user.ID.String()))

	return &ProfileResult{User: NewUserInfo(user)}, nil
}

// pictureContentType resolves the content type for an allowed picture
// extension, rejecting everything outside the allow-list
func pictureContentType(filename string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	contentType, ok := allowedPictureTypes[ext]
	if !ok {
		return "", shared.ErrDisallowedFileType
	}
	return contentType, nil
}

// avatarKey builds a unique storage key so replaced pictures never collide
func avatarKey(userID uuid.UUID, filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	return fmt.Sprintf("avatars/%s/%s%s", userID, uuid.New(), ext)
}
