package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"cloudbox/internal/config"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("CLOUDBOX_S3_BUCKET", "cloudbox-bucket")
	t.Setenv("CLOUDBOX_DYNAMODB_TABLE", "S3FileMetadata")
	t.Setenv("CLOUDBOX_FIREHOSE_STREAM", "cloudbox-stream")
}

func TestLoad_RequiredResourceNames(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := config.Load()

	assert.NoError(t, err)
	assert.Equal(t, "cloudbox-bucket", cfg.S3.Bucket)
	assert.Equal(t, "S3FileMetadata", cfg.Dynamo.Table)
	assert.Equal(t, "cloudbox-stream", cfg.Firehose.Stream)
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := config.Load()

	assert.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Server.Port)
	assert.Equal(t, "us-east-1", cfg.AWS.Region)
	assert.Equal(t, int64(3600), cfg.S3.PresignExpiry)
	assert.Equal(t, int64(5), cfg.S3.MaxFileSizeMB)
	assert.False(t, cfg.Auth.Verify)
}

func TestLoad_MissingBucket(t *testing.T) {
	t.Setenv("CLOUDBOX_DYNAMODB_TABLE", "S3FileMetadata")
	t.Setenv("CLOUDBOX_FIREHOSE_STREAM", "cloudbox-stream")

	_, err := config.Load()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "CLOUDBOX_S3_BUCKET")
}

func TestLoad_MissingTableAndStream(t *testing.T) {
	t.Setenv("CLOUDBOX_S3_BUCKET", "cloudbox-bucket")

	_, err := config.Load()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "CLOUDBOX_DYNAMODB_TABLE")
	assert.Contains(t, err.Error(), "CLOUDBOX_FIREHOSE_STREAM")
}

func TestLoad_VerifyRequiresSecret(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("CLOUDBOX_AUTH_VERIFY", "true")

	_, err := config.Load()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "CLOUDBOX_AUTH_SECRET")
}

func TestLoad_VerifyWithSecret(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("CLOUDBOX_AUTH_VERIFY", "true")
	t.Setenv("CLOUDBOX_AUTH_SECRET", "external-secret-material")

	cfg, err := config.Load()

	assert.NoError(t, err)
	assert.True(t, cfg.Auth.Verify)
	assert.Equal(t, "external-secret-material", cfg.Auth.Secret)
}

func TestLoad_EnvOverrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("CLOUDBOX_SERVER_PORT", ":9090")
	t.Setenv("CLOUDBOX_AWS_REGION", "eu-west-1")
	t.Setenv("CLOUDBOX_S3_PRESIGN_EXPIRY", "600")

	cfg, err := config.Load()

	assert.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Server.Port)
	assert.Equal(t, "eu-west-1", cfg.AWS.Region)
	assert.Equal(t, int64(600), cfg.S3.PresignExpiry)
}
