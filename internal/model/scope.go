package model

// Scope carries the authenticated owner identity attached to every request.
// It is produced by the auth middleware; the core never verifies credentials.
type Scope struct {
	UserID string
}

// Environment is the deployment environment name.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)
