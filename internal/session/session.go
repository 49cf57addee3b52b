// Package session carries the state of one operator session: credentials,
// clients, the inventory snapshot, the credential cache, and the currently
// bound node. It replaces ambient globals so every dependency is explicit
// and substitutable in tests.
package session

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/herdware/herdctl/internal/config"
	"github.com/herdware/herdctl/internal/dns"
	"github.com/herdware/herdctl/internal/inventory"
	"github.com/herdware/herdctl/internal/profile"
	"github.com/herdware/herdctl/internal/provider"
	"github.com/herdware/herdctl/internal/remote"
	"github.com/herdware/herdctl/internal/ui"
)

// DefaultSettle is how long to wait after a password change for
// provider-side propagation.
const DefaultSettle = 10 * time.Second

// ErrNoTarget is returned when an operation needs a bound node and none is
// selected.
var ErrNoTarget = errors.New("no server selected")

// NoIPv4Error is returned when a server has no public IPv4 address, which
// administration requires.
type NoIPv4Error struct {
	Name string
}

func (e *NoIPv4Error) Error() string {
	return fmt.Sprintf("server %s has no public IPv4 address", e.Name)
}

// Target is the active administrative target.
type Target struct {
	Server   *provider.Server
	Addr     string // IPv4 address
	Host     string // addr:port
	Password string
}

// SSHHost returns the user@host form for the system ssh client.
func (t *Target) SSHHost() string {
	return "root@" + t.Addr
}

// Session holds everything one operator session needs.
type Session struct {
	ID        string
	Settings  *config.Settings
	Creds     config.Credentials
	Compute   provider.Compute
	DNS       dns.Client
	Inventory *inventory.Cache
	Profiles  *profile.Store
	Confirm   ui.Confirmer
	Log       *logrus.Entry

	// NewCommunicator builds the remote channel for a bound target.
	NewCommunicator remote.Factory

	// Sleep and the intervals below are injectable so tests run without
	// wall-clock delay.
	Sleep        func(time.Duration)
	Settle       time.Duration
	PollInterval time.Duration

	passwords map[string]string // host -> cached admin credential
	target    *Target
}

// Option configures a Session.
type Option func(*Session)

// WithConfirmer replaces the interactive confirmer.
func WithConfirmer(c ui.Confirmer) Option {
	return func(s *Session) {
		s.Confirm = c
	}
}

// WithCommunicatorFactory replaces the SSH communicator factory.
func WithCommunicatorFactory(f remote.Factory) Option {
	return func(s *Session) {
		s.NewCommunicator = f
	}
}

// WithSleep replaces the sleep function.
func WithSleep(sleep func(time.Duration)) Option {
	return func(s *Session) {
		s.Sleep = sleep
	}
}

// WithSettle overrides the password propagation pause.
func WithSettle(d time.Duration) Option {
	return func(s *Session) {
		s.Settle = d
	}
}

// WithPollInterval overrides the fixed polling interval.
func WithPollInterval(d time.Duration) Option {
	return func(s *Session) {
		s.PollInterval = d
	}
}

// New creates a session for the given settings, credentials, and clients.
func New(settings *config.Settings, creds config.Credentials, compute provider.Compute, dnsClient dns.Client, opts ...Option) *Session {
	id := uuid.New().String()
	s := &Session{
		ID:              id,
		Settings:        settings,
		Creds:           creds,
		Compute:         compute,
		DNS:             dnsClient,
		Inventory:       inventory.New(compute),
		Profiles:        profile.NewStore(settings.ProfilePath),
		Confirm:         ui.HuhConfirmer{},
		Log:             logrus.WithFields(logrus.Fields{"session": id, "user": creds.User}),
		NewCommunicator: remote.NewFactory(),
		Sleep:           time.Sleep,
		Settle:          DefaultSettle,
		PollInterval:    time.Second,
		passwords:       make(map[string]string),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Bind sets the server as the active administrative target and resolves a
// usable credential for it.
//
// Credential resolution, in order: the session's cache for this host, the
// record's creation-time credential, and finally a provider-issued reset
// followed by a settle pause. The reset path means a bind always succeeds
// even when provisioning of keys failed, at the cost of invalidating any
// out-of-band credential for the host.
func (s *Session) Bind(ctx context.Context, srv *provider.Server) error {
	ip := srv.IPv4()
	if ip == nil {
		return &NoIPv4Error{Name: srv.Name}
	}
	host := net.JoinHostPort(ip.String(), "22")

	password, ok := s.passwords[host]
	if !ok {
		switch {
		case srv.AdminPassword != "":
			password = srv.AdminPassword
		default:
			fresh, err := s.Compute.ResetAdminPassword(ctx, srv.ID)
			if err != nil {
				return fmt.Errorf("failed to issue credential for %s: %w", srv.Name, err)
			}
			s.Log.WithField("server", srv.Name).Info("changed admin password")
			// Password changes take a while to propagate provider-side.
			s.Sleep(s.Settle)
			password = fresh
		}
		s.passwords[host] = password
	}

	s.target = &Target{
		Server:   srv,
		Addr:     ip.String(),
		Host:     host,
		Password: password,
	}
	s.Log.WithFields(logrus.Fields{"server": srv.Name, "id": srv.ID}).Info("bound server")
	return nil
}

// Herd refreshes the inventory, resolves the name, and binds the result.
func (s *Session) Herd(ctx context.Context, name string) (*provider.Server, error) {
	if err := s.Inventory.Refresh(ctx); err != nil {
		return nil, err
	}
	srv, err := s.Inventory.Lookup(name)
	if err != nil {
		return nil, err
	}
	if err := s.Bind(ctx, srv); err != nil {
		return nil, err
	}
	return srv, nil
}

// Target returns the active administrative target, or ErrNoTarget.
func (s *Session) Target() (*Target, error) {
	if s.target == nil {
		return nil, ErrNoTarget
	}
	return s.target, nil
}

// HasTarget reports whether a node is currently bound.
func (s *Session) HasTarget() bool {
	return s.target != nil
}

// ClearTarget drops the active target, e.g. after destroying it.
func (s *Session) ClearTarget() {
	s.target = nil
}

// Communicator returns a remote channel to the active target.
func (s *Session) Communicator() (remote.Communicator, error) {
	t, err := s.Target()
	if err != nil {
		return nil, err
	}
	return s.NewCommunicator(t.Host, "root", t.Password), nil
}
