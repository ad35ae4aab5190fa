package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	AWS      AWSConfig
	S3       S3Config
	Dynamo   DynamoConfig
	Firehose FirehoseConfig
	Auth     AuthConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// AWSConfig holds connection settings shared by all AWS clients. Endpoint is
// only set for local development against LocalStack-style emulators.
type AWSConfig struct {
	Region    string `mapstructure:"region"`
	Endpoint  string `mapstructure:"endpoint"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
}

// S3Config holds object storage settings.
type S3Config struct {
	Bucket        string `mapstructure:"bucket"`
	MaxFileSizeMB int64  `mapstructure:"max_file_size_mb"`
	PresignExpiry int64  `mapstructure:"presign_expiry"`
}

// DynamoConfig holds metadata table settings.
type DynamoConfig struct {
	Table string `mapstructure:"table"`
}

// FirehoseConfig holds ingestion stream settings.
type FirehoseConfig struct {
	Stream string `mapstructure:"stream"`
}

// AuthConfig holds bearer-token settings. When Verify is false the middleware
// only checks token presence; when true, tokens are verified as HS256 JWTs
// signed with Secret.
type AuthConfig struct {
	Verify bool   `mapstructure:"verify"`
	Secret string `mapstructure:"secret"`
	Issuer string `mapstructure:"issuer"`
}

// Load reads configuration from environment variables with the CLOUDBOX_ prefix.
// The bucket, table, and stream names carry no defaults: a deployment must name
// its own resources explicitly.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("CLOUDBOX")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.environment", "development")

	// AWS defaults
	v.SetDefault("aws.region", "us-east-1")
	v.SetDefault("aws.endpoint", "")
	v.SetDefault("aws.access_key", "")
	v.SetDefault("aws.secret_key", "")

	// S3 defaults
	v.SetDefault("s3.bucket", "")
	v.SetDefault("s3.max_file_size_mb", 5)
	v.SetDefault("s3.presign_expiry", 3600)

	// Dynamo / Firehose defaults
	v.SetDefault("dynamodb.table", "")
	v.SetDefault("firehose.stream", "")

	// Auth defaults
	v.SetDefault("auth.verify", false)
	v.SetDefault("auth.secret", "")
	v.SetDefault("auth.issuer", "cloudbox")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":          "CLOUDBOX_SERVER_PORT",
		"server.read_timeout":  "CLOUDBOX_SERVER_READ_TIMEOUT",
		"server.write_timeout": "CLOUDBOX_SERVER_WRITE_TIMEOUT",
		"server.environment":   "CLOUDBOX_SERVER_ENVIRONMENT",
		"aws.region":           "CLOUDBOX_AWS_REGION",
		"aws.endpoint":         "CLOUDBOX_AWS_ENDPOINT",
		"aws.access_key":       "CLOUDBOX_AWS_ACCESS_KEY",
		"aws.secret_key":       "CLOUDBOX_AWS_SECRET_KEY",
		"s3.bucket":            "CLOUDBOX_S3_BUCKET",
		"s3.max_file_size_mb":  "CLOUDBOX_S3_MAX_FILE_SIZE_MB",
		"s3.presign_expiry":    "CLOUDBOX_S3_PRESIGN_EXPIRY",
		"dynamodb.table":       "CLOUDBOX_DYNAMODB_TABLE",
		"firehose.stream":      "CLOUDBOX_FIREHOSE_STREAM",
		"auth.verify":          "CLOUDBOX_AUTH_VERIFY",
		"auth.secret":          "CLOUDBOX_AUTH_SECRET",
		"auth.issuer":          "CLOUDBOX_AUTH_ISSUER",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if CLOUDBOX_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("CLOUDBOX_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.AWS = AWSConfig{
		Region:    v.GetString("aws.region"),
		Endpoint:  v.GetString("aws.endpoint"),
		AccessKey: v.GetString("aws.access_key"),
		SecretKey: v.GetString("aws.secret_key"),
	}
	cfg.S3 = S3Config{
		Bucket:        v.GetString("s3.bucket"),
		MaxFileSizeMB: v.GetInt64("s3.max_file_size_mb"),
		PresignExpiry: v.GetInt64("s3.presign_expiry"),
	}
	cfg.Dynamo = DynamoConfig{
		Table: v.GetString("dynamodb.table"),
	}
	cfg.Firehose = FirehoseConfig{
		Stream: v.GetString("firehose.stream"),
	}
	cfg.Auth = AuthConfig{
		Verify: v.GetBool("auth.verify"),
		Secret: v.GetString("auth.secret"),
		Issuer: v.GetString("auth.issuer"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	var missing []string
	if c.S3.Bucket == "" {
		missing = append(missing, "CLOUDBOX_S3_BUCKET")
	}
	if c.Dynamo.Table == "" {
		missing = append(missing, "CLOUDBOX_DYNAMODB_TABLE")
	}
	if c.Firehose.Stream == "" {
		missing = append(missing, "CLOUDBOX_FIREHOSE_STREAM")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required configuration: %s", strings.Join(missing, ", "))
	}
	if c.Auth.Verify && c.Auth.Secret == "" {
		return fmt.Errorf("CLOUDBOX_AUTH_SECRET is required when CLOUDBOX_AUTH_VERIFY is enabled")
	}
	return nil
}
