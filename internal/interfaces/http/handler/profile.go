package handler

import (
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/healthtrack/backend/internal/application/identity"
	"github.com/healthtrack/backend/internal/interfaces/http/dto"
)

// maxPictureSize limits profile picture uploads to 5MB
const maxPictureSize = 5 << 20

// ProfileHandler handles profile-related HTTP requests
type ProfileHandler struct {
	BaseHandler
	profileService *identity.ProfileService
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(profileService *identity.ProfileService) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
	}
}

// ProfileResponse represents the response body for profile reads and updates
type ProfileResponse struct {
	User UserResponse `json:"user"`
}

// GetProfile godoc
// @Summary      Get profile
// @Description  Get the authenticated user's profile
// @Tags         profile
// @Produce      json
// @Success      200 {object} dto.Response{data=ProfileResponse}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /profile [get]
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	result, err := h.profileService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, ProfileResponse{User: newUserResponse(result.User)})
}

// UpdateProfile godoc
// @Summary      Update profile
// @Description  Update profile fields and optionally upload a profile picture.
// @Description  Form fields that are absent are left unchanged; an empty age field clears the age.
// @Tags         profile
// @Accept       multipart/form-data
// @Produce      json
// @Param        name formData string false "Display name"
// @Param        age formData string false "Age (empty string clears)"
// @Param        health_goals formData string false "Health goals"
// @Param        profile_picture formData file false "Profile picture (png, jpg, jpeg)"
// @Success      200 {object} dto.Response{data=ProfileResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /profile [put]
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	input := identity.UpdateProfileInput{UserID: userID}

	if name, ok := c.GetPostForm("name"); ok {
		input.Name = &name
	}
	if goals, ok := c.GetPostForm("health_goals"); ok {
		input.HealthGoals = &goals
	}
	if ageStr, ok := c.GetPostForm("age"); ok {
		if ageStr == "" {
			input.ClearAge = true
		} else {
			age, err := strconv.Atoi(ageStr)
			if err != nil {
				h.ErrorWithCode(c, "INVALID_AGE", "Age must be a whole number")
				return
			}
			input.Age = &age
		}
	}

	file, header, err := c.Request.FormFile("profile_picture")
	if err == nil {
		defer file.Close()

		if header.Size > maxPictureSize {
			h.Error(c, http.StatusRequestEntityTooLarge, dto.ErrCodeInvalidInput, "picture exceeds maximum size of 5MB")
			return
		}

		content, err := io.ReadAll(file)
		if err != nil {
			h.InternalError(c, "failed to read uploaded file")
			return
		}

		input.Picture = &identity.UploadedFile{
			Filename: header.Filename,
			Content:  content,
		}
	}

	result, err := h.profileService.UpdateProfile(c.Request.Context(), input)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, ProfileResponse{User: newUserResponse(result.User)})
}
