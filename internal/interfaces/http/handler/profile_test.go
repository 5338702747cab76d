package handler

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	appidentity "github.com/healthtrack/backend/internal/application/identity"
	"github.com/healthtrack/backend/internal/domain/identity"
	"github.com/healthtrack/backend/internal/infrastructure/storage"
	"github.com/healthtrack/backend/internal/interfaces/http/middleware"
)

type profileFixture struct {
	repo    *MockUserRepository
	avatars *storage.InMemoryAvatarStorage
	router  *gin.Engine
	user    *identity.User
}

func newProfileFixture(t *testing.T) *profileFixture {
	t.Helper()

	repo := new(MockUserRepository)
	avatars := storage.NewInMemoryAvatarStorage()
	svc := appidentity.NewProfileService(repo, avatars, zap.NewNop())
	h := NewProfileHandler(svc)

	user, err := identity.NewUser("alice", "password1")
	require.NoError(t, err)

	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set(middleware.JWTUserIDKey, user.ID.String())
		c.Next()
	})
	router.GET("/profile", h.GetProfile)
	router.PUT("/profile", h.UpdateProfile)

	return &profileFixture{repo: repo, avatars: avatars, router: router, user: user}
}

// multipartBody builds a multipart form with the given fields and optional file
func multipartBody(t *testing.T, fields map[string]string, fileField, filename string, fileContent []byte) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, writer.WriteField(k, v))
	}
	if fileField != "" {
		part, err := writer.CreateFormFile(fileField, filename)
		require.NoError(t, err)
		_, err = part.Write(fileContent)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())
	return &buf, writer.FormDataContentType()
}

func TestProfileHandler_GetProfile(t *testing.T) {
	f := newProfileFixture(t)
	f.repo.On("FindByID", mock.Anything, f.user.ID).Return(f.user, nil)

	req := httptest.NewRequest(http.MethodGet, "/profile", nil)
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"username":"alice"`)
}

func TestProfileHandler_UpdateProfile(t *testing.T) {
	t.Run("updates text fields", func(t *testing.T) {
		f := newProfileFixture(t)
		f.repo.On("FindByID", mock.Anything, f.user.ID).Return(f.user, nil)
		f.repo.On("Update", mock.Anything, mock.Anything).Return(nil)

		body, contentType := multipartBody(t, map[string]string{
			"name":         "Alice Smith",
			"age":          "34",
			"health_goals": "run a marathon",
		}, "", "", nil)

		req := httptest.NewRequest(http.MethodPut, "/profile", body)
		req.Header.Set("Content-Type", contentType)
		rec := httptest.NewRecorder()
		f.router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"name":"Alice Smith"`)
		assert.Contains(t, rec.Body.String(), `"age":34`)
	})

	t.Run("empty age field clears age", func(t *testing.T) {
		f := newProfileFixture(t)
		require.NoError(t, f.user.SetAge(intPointer(30)))
		f.repo.On("FindByID", mock.Anything, f.user.ID).Return(f.user, nil)
		f.repo.On("Update", mock.Anything, mock.Anything).Return(nil)

		body, contentType := multipartBody(t, map[string]string{"age": ""}, "", "", nil)

		req := httptest.NewRequest(http.MethodPut, "/profile", body)
		req.Header.Set("Content-Type", contentType)
		rec := httptest.NewRecorder()
		f.router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.NotContains(t, rec.Body.String(), `"age"`)
	})

	t.Run("non-numeric age rejected", func(t *testing.T) {
		f := newProfileFixture(t)

		body, contentType := multipartBody(t, map[string]string{"age": "abc"}, "", "", nil)

		req := httptest.NewRequest(http.MethodPut, "/profile", body)
		req.Header.Set("Content-Type", contentType)
		rec := httptest.NewRecorder()
		f.router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "INVALID_AGE")
	})

	t.Run("stores uploaded picture", func(t *testing.T) {
		f := newProfileFixture(t)
		f.repo.On("FindByID", mock.Anything, f.user.ID).Return(f.user, nil)
		f.repo.On("Update", mock.Anything, mock.Anything).Return(nil)

		body, contentType := multipartBody(t, nil, "profile_picture", "me.png", []byte("png-bytes"))

		req := httptest.NewRequest(http.MethodPut, "/profile", body)
		req.Header.Set("Content-Type", contentType)
		rec := httptest.NewRecorder()
		f.router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 1, f.avatars.Len())
		assert.Contains(t, rec.Body.String(), "profile_picture")
	})

	t.Run("disallowed file type returns 400", func(t *testing.T) {
		f := newProfileFixture(t)
		f.repo.On("FindByID", mock.Anything, f.user.ID).Return(f.user, nil)

		body, contentType := multipartBody(t, nil, "profile_picture", "shell.php", []byte("<?php"))

		req := httptest.NewRequest(http.MethodPut, "/profile", body)
		req.Header.Set("Content-Type", contentType)
		rec := httptest.NewRecorder()
		f.router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "DISALLOWED_FILE_TYPE")
		assert.Equal(t, 0, f.avatars.Len())
		f.repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func intPointer(v int) *int {
	return &v
}
