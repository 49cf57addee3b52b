package config

import (
	"fmt"
	"os"

	"github.com/herdware/herdctl/internal/ui"
)

// Environment variables carrying the API credentials.
const (
	EnvUser     = "HERD_USER"
	EnvAPIKey   = "HERD_API_KEY"
	EnvTenantID = "HERD_TENANT_ID"
)

// Credentials identifies the operator and the provider account for the
// active session.
type Credentials struct {
	User     string
	APIKey   string
	TenantID string
}

// CredentialsFromEnv reads the API credentials from the environment,
// prompting interactively for anything absent.
func CredentialsFromEnv(user string, prompter ui.Prompter) (Credentials, error) {
	creds := Credentials{User: user}
	if creds.User == "" {
		creds.User = os.Getenv(EnvUser)
	}
	if creds.User == "" {
		return Credentials{}, fmt.Errorf("no operator identity: pass --user or set %s", EnvUser)
	}

	creds.APIKey = os.Getenv(EnvAPIKey)
	if creds.APIKey == "" {
		key, err := prompter.Secret(fmt.Sprintf("API key for %s", creds.User))
		if err != nil {
			return Credentials{}, fmt.Errorf("failed to read api key: %w", err)
		}
		creds.APIKey = key
	}
	if creds.APIKey == "" {
		return Credentials{}, fmt.Errorf("no api key: set %s", EnvAPIKey)
	}

	creds.TenantID = os.Getenv(EnvTenantID)
	if creds.TenantID == "" {
		tenant, err := prompter.Input(fmt.Sprintf("Tenant ID (account #) for %s", creds.User))
		if err != nil {
			return Credentials{}, fmt.Errorf("failed to read tenant id: %w", err)
		}
		creds.TenantID = tenant
	}

	return creds, nil
}

// AccountBinding returns the provider account binding name recorded in
// profiles provisioned under these credentials.
func (c Credentials) AccountBinding() string {
	return fmt.Sprintf("herd-conf-%s", c.User)
}
