package config

import (
	"os"
	"strconv"
	"strings"
)

// Environment represents the current runtime environment
type Environment string

const (
	Development Environment = "development"
	Test        Environment = "test"
	CI          Environment = "ci"
	Production  Environment = "production"
)

// GetEnvironment reads ENV, letting any truthy CI flag take precedence.
// Unknown or empty values fall back to development.
func GetEnvironment() Environment {
	if ci, err := strconv.ParseBool(os.Getenv("CI")); err == nil && ci {
		return CI
	}
	return ParseEnvironment(os.Getenv("ENV"))
}

// ParseEnvironment maps an ENV value onto a known environment
func ParseEnvironment(s string) Environment {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "production", "prod":
		return Production
	case "test":
		return Test
	case "ci":
		return CI
	default:
		return Development
	}
}

// IsProduction reports whether e is the production environment
func (e Environment) IsProduction() bool {
	return e == Production
}

// GinMode maps the environment onto a gin mode string
func (e Environment) GinMode() string {
	switch e {
	case Production:
		return "release"
	case Test, CI:
		return "test"
	default:
		return "debug"
	}
}
