package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/herdware/herdctl/internal/ui"
)

func TestCredentialsFromEnv(t *testing.T) {
	t.Setenv(EnvUser, "alice")
	t.Setenv(EnvAPIKey, "key-from-env")
	t.Setenv(EnvTenantID, "tenant-42")

	creds, err := CredentialsFromEnv("", ui.StaticPrompter{})
	require.NoError(t, err)
	assert.Equal(t, Credentials{User: "alice", APIKey: "key-from-env", TenantID: "tenant-42"}, creds)
}

func TestCredentialsFromEnv_FlagOverridesEnvUser(t *testing.T) {
	t.Setenv(EnvUser, "alice")
	t.Setenv(EnvAPIKey, "key")
	t.Setenv(EnvTenantID, "tenant")

	creds, err := CredentialsFromEnv("bob", ui.StaticPrompter{})
	require.NoError(t, err)
	assert.Equal(t, "bob", creds.User)
}

func TestCredentialsFromEnv_PromptsForMissing(t *testing.T) {
	t.Setenv(EnvUser, "alice")
	t.Setenv(EnvAPIKey, "")
	t.Setenv(EnvTenantID, "")

	prompter := ui.StaticPrompter{Values: map[string]string{
		"API key for alice":               "prompted-key",
		"Tenant ID (account #) for alice": "prompted-tenant",
	}}

	creds, err := CredentialsFromEnv("", prompter)
	require.NoError(t, err)
	assert.Equal(t, "prompted-key", creds.APIKey)
	assert.Equal(t, "prompted-tenant", creds.TenantID)
}

func TestCredentialsFromEnv_NoIdentity(t *testing.T) {
	t.Setenv(EnvUser, "")

	_, err := CredentialsFromEnv("", ui.StaticPrompter{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no operator identity")
}

func TestAccountBinding(t *testing.T) {
	t.Parallel()

	creds := Credentials{User: "alice"}
	assert.Equal(t, "herd-conf-alice", creds.AccountBinding())
}
