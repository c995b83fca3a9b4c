package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Config holds the application configuration.
type Config struct {
	Port              string
	APIPrefix         string
	MongoURI          string
	MongoDatabase     string
	MongoCollection   string
	SeedURL           string
	SyntheticDataDir  string
	SyntheticDataRows int
	Timeout           time.Duration
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var problems []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		problems = append(problems, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		problems = append(problems, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	if !strings.HasPrefix(c.APIPrefix, "/") {
		problems = append(problems, fmt.Sprintf("invalid API prefix '%s': must start with '/'", c.APIPrefix))
	}

	if parsed, err := url.Parse(c.MongoURI); err != nil {
		problems = append(problems, fmt.Sprintf("invalid MongoDB URI: %v", err))
	} else if parsed.Scheme != "mongodb" && parsed.Scheme != "mongodb+srv" {
		problems = append(problems, fmt.Sprintf("invalid MongoDB URI scheme '%s'", parsed.Scheme))
	}

	if c.MongoDatabase == "" {
		problems = append(problems, "MongoDB database name cannot be empty")
	}
	if c.MongoCollection == "" {
		problems = append(problems, "MongoDB collection name cannot be empty")
	}

	if parsed, err := url.Parse(c.SeedURL); err != nil || parsed.Scheme == "" {
		problems = append(problems, fmt.Sprintf("invalid seed URL '%s'", c.SeedURL))
	}

	if c.SyntheticDataRows < 0 {
		problems = append(problems, fmt.Sprintf("invalid synthetic data rows %d: must not be negative", c.SyntheticDataRows))
	}

	if c.Timeout <= 0 {
		problems = append(problems, fmt.Sprintf("invalid timeout %v: must be positive", c.Timeout))
	}

	if len(problems) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(problems, "\n- "))
	}

	return nil
}
