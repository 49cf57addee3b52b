// Package handlers implements command execution for the herdctl CLI.
//
// Each handler loads the operator settings and credentials, constructs an
// explicit session, and runs one lifecycle operation. The factory variables
// below can be replaced in tests to inject mock clients.
package handlers

import (
	"github.com/herdware/herdctl/internal/config"
	"github.com/herdware/herdctl/internal/dns"
	"github.com/herdware/herdctl/internal/provider"
	"github.com/herdware/herdctl/internal/session"
	"github.com/herdware/herdctl/internal/ui"
)

// Options carries the persistent CLI flags into the handlers.
type Options struct {
	ConfigPath string
	User       string
}

// Factory function variables - can be replaced in tests.
var (
	loadSettings = config.Load

	newPrompter = func() ui.Prompter { return ui.HuhPrompter{} }

	newCompute = func(creds config.Credentials) provider.Compute {
		return provider.NewRealClient(creds.APIKey)
	}

	newDNS = func(creds config.Credentials) dns.Client {
		return dns.NewRealClient(creds.APIKey)
	}

	// sessionOptions is appended to every constructed session; tests use
	// it to stub out confirmation, sleeping, and the SSH factory.
	sessionOptions []session.Option
)

// newSession builds a session from the CLI options.
func newSession(opts Options, extra ...session.Option) (*session.Session, error) {
	settings, err := loadSettings(opts.ConfigPath)
	if err != nil {
		return nil, err
	}
	creds, err := config.CredentialsFromEnv(opts.User, newPrompter())
	if err != nil {
		return nil, err
	}
	return session.New(
		settings,
		creds,
		newCompute(creds),
		newDNS(creds),
		append(append([]session.Option{}, sessionOptions...), extra...)...,
	), nil
}
