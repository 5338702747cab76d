package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/healthtrack/backend/internal/infrastructure/config"
)

func TestNewS3AvatarStorage_Validation(t *testing.T) {
	t.Run("nil config returns error", func(t *testing.T) {
		_, err := NewS3AvatarStorage(nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "configuration is required")
	})

	t.Run("missing bucket returns error", func(t *testing.T) {
		cfg := &config.StorageConfig{
			AccessKey: "test-key",
			SecretKey: "test-secret",
		}
		_, err := NewS3AvatarStorage(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "bucket is required")
	})

	t.Run("valid config creates storage", func(t *testing.T) {
		cfg := &config.StorageConfig{
			Bucket:      "test-bucket",
			AccessKey:   "test-key",
			SecretKey:   "test-secret",
			Region:      "us-east-1",
			Endpoint:    "http://localhost:9000",
			UsePathForm: true,
		}
		store, err := NewS3AvatarStorage(cfg)
		require.NoError(t, err)
		require.NotNil(t, store)
		assert.Equal(t, "test-bucket", store.Bucket())
	})

	t.Run("defaults region when empty", func(t *testing.T) {
		cfg := &config.StorageConfig{
			Bucket:    "test-bucket",
			AccessKey: "test-key",
			SecretKey: "test-secret",
			Endpoint:  "http://localhost:9000",
		}
		store, err := NewS3AvatarStorage(cfg)
		require.NoError(t, err)
		require.NotNil(t, store)
	})

	t.Run("accepts endpoint without scheme", func(t *testing.T) {
		cfg := &config.StorageConfig{
			Bucket:    "test-bucket",
			AccessKey: "test-key",
			SecretKey: "test-secret",
			Endpoint:  "s3.example.com",
		}
		store, err := NewS3AvatarStorage(cfg)
		require.NoError(t, err)
		require.NotNil(t, store)
	})

	t.Run("credentials are optional", func(t *testing.T) {
		cfg := &config.StorageConfig{
			Bucket: "test-bucket",
			Region: "eu-west-1",
		}
		store, err := NewS3AvatarStorage(cfg)
		require.NoError(t, err)
		require.NotNil(t, store)
	})
}

func TestS3AvatarStorage_WithLogger(t *testing.T) {
	cfg := &config.StorageConfig{
		Bucket:    "test-bucket",
		AccessKey: "test-key",
		SecretKey: "test-secret",
		Endpoint:  "http://localhost:9000",
	}

	store, err := NewS3AvatarStorage(cfg, WithLogger(zaptest.NewLogger(t)))
	require.NoError(t, err)
	assert.NotNil(t, store.logger)
}

func TestS3AvatarStorage_KeyValidation(t *testing.T) {
	cfg := &config.StorageConfig{
		Bucket:    "test-bucket",
		AccessKey: "test-key",
		SecretKey: "test-secret",
		Endpoint:  "http://localhost:9000",
	}
	store, err := NewS3AvatarStorage(cfg)
	require.NoError(t, err)
	ctx := context.Background()

	t.Run("save rejects empty key", func(t *testing.T) {
		err := store.Save(ctx, "", []byte("x"), "image/png")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "storage key is required")
	})

	t.Run("delete rejects empty key", func(t *testing.T) {
		err := store.Delete(ctx, "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "storage key is required")
	})

	t.Run("exists rejects empty key", func(t *testing.T) {
		exists, err := store.Exists(ctx, "")
		require.Error(t, err)
		assert.False(t, exists)
		assert.Contains(t, err.Error(), "storage key is required")
	})
}
