package config

import (
	"fmt"
	"strconv"
)

// ValidateConfig checks that every setting the server cannot run without is present.
func ValidateConfig(cfg *Config) error {
	required := map[string]string{
		"DB_HOST":    cfg.DBHost,
		"DB_USER":    cfg.DBUser,
		"DB_NAME":    cfg.DBName,
		"JWT_SECRET": cfg.JWTSecret,
	}

	for name, value := range required {
		if value == "" {
			return fmt.Errorf("%s is required", name)
		}
	}

	if _, err := strconv.Atoi(cfg.DBPort); err != nil {
		return fmt.Errorf("DB_PORT must be numeric, got %q", cfg.DBPort)
	}
	if _, err := strconv.Atoi(cfg.ServerPort); err != nil {
		return fmt.Errorf("SERVER_PORT must be numeric, got %q", cfg.ServerPort)
	}

	return nil
}
