package media

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/DanielHoffweber/VitalTable/internal/pkg/env"
)

// Config holds the S3-compatible media storage configuration
type Config struct {
	AccessKeyID     string
	SecretAccessKey string
	Region          string
	BucketName      string
	EndpointURL     string // Optional for S3-compatible services
	PublicBaseURL   string // CDN or bucket website base for serving objects
	Enabled         bool
}

// LoadConfig loads media storage configuration from environment variables
func LoadConfig() (*Config, error) {
	config := &Config{
		AccessKeyID:     env.GetEnv("S3_ACCESS_KEY_ID", ""),
		SecretAccessKey: env.GetEnv("S3_SECRET_ACCESS_KEY", ""),
		Region:          env.GetEnv("S3_REGION", "eu-central-1"),
		BucketName:      env.GetEnv("S3_BUCKET_NAME", ""),
		EndpointURL:     env.GetEnv("S3_ENDPOINT_URL", ""),
		PublicBaseURL:   strings.TrimRight(env.GetEnv("S3_PUBLIC_BASE_URL", ""), "/"),
		Enabled:         env.GetEnv("MEDIA_UPLOAD_ENABLED", "false") == "true",
	}

	// Validate required fields if media uploads are enabled
	if config.Enabled {
		if config.AccessKeyID == "" {
			return nil, errors.New("S3_ACCESS_KEY_ID is required when media uploads are enabled")
		}
		if config.SecretAccessKey == "" {
			return nil, errors.New("S3_SECRET_ACCESS_KEY is required when media uploads are enabled")
		}
		if config.BucketName == "" {
			return nil, errors.New("S3_BUCKET_NAME is required when media uploads are enabled")
		}
	}

	return config, nil
}

// IsEnabled returns true if media uploads are enabled
func (c *Config) IsEnabled() bool {
	return c.Enabled
}

// CoverObjectKey generates a standardized object key for a post cover image
func (c *Config) CoverObjectKey(id string, t time.Time) string {
	// Format: covers/YYYY/MM/ID.jpg
	return fmt.Sprintf("covers/%04d/%02d/%s.jpg", t.Year(), int(t.Month()), id)
}

// PublicURL resolves the serving URL for an object key
func (c *Config) PublicURL(objectKey string) string {
	if c.PublicBaseURL != "" {
		return c.PublicBaseURL + "/" + objectKey
	}
	if c.EndpointURL != "" {
		return strings.TrimRight(c.EndpointURL, "/") + "/" + c.BucketName + "/" + objectKey
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", c.BucketName, c.Region, objectKey)
}
