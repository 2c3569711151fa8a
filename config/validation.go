package config

import (
	"fmt"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateConfig checks that the loaded configuration is usable.
func ValidateConfig(cfg *Config) error {
	if cfg.JWTSecret == "" {
		return ValidationError{Field: "JWT_SECRET", Message: "must be set"}
	}

	switch cfg.DBDriver {
	case "postgres":
		if cfg.DBHost == "" || cfg.DBPort == "" || cfg.DBName == "" {
			return ValidationError{Field: "DB_HOST/DB_PORT/DB_NAME", Message: "must be set for the postgres driver"}
		}
	case "sqlite":
		if cfg.DBPath == "" {
			return ValidationError{Field: "DB_PATH", Message: "must be set for the sqlite driver"}
		}
	default:
		return ValidationError{Field: "DB_DRIVER", Message: fmt.Sprintf("unknown driver %q", cfg.DBDriver)}
	}

	if cfg.S3Bucket != "" && cfg.AWSRegion == "" {
		return ValidationError{Field: "AWS_REGION", Message: "must be set when S3_BUCKET_NAME is set"}
	}

	return nil
}
