// Package supabase holds the clients for the hosted platform: a PostgREST
// client factory scoped per trust level and a GoTrue auth client. Row-level
// security, uniqueness and transactional integrity are all enforced by the
// platform; this package only decides which credential a query runs under.
package supabase

import (
	"fmt"
	"strings"
	"sync"

	"github.com/supabase-community/postgrest-go"

	"campusmarket/pkg/config"
	"campusmarket/pkg/errors"
)

// ClientFactory produces database clients bound to one of three trust
// levels: anonymous, user-scoped (the caller's bearer token, so RLS
// evaluates as that user) and administrative (service role, bypasses RLS).
type ClientFactory struct {
	restURL    string
	anonKey    string
	serviceKey string

	adminOnce sync.Once
	admin     *postgrest.Client
}

func NewClientFactory(cfg *config.Config) (*ClientFactory, error) {
	if cfg.SupabaseURL == "" || cfg.SupabaseAnonKey == "" || cfg.SupabaseServiceKey == "" {
		return nil, fmt.Errorf("supabase: missing URL or keys")
	}

	return &ClientFactory{
		restURL:    strings.TrimRight(cfg.SupabaseURL, "/") + "/rest/v1",
		anonKey:    cfg.SupabaseAnonKey,
		serviceKey: cfg.SupabaseServiceKey,
	}, nil
}

// Anon returns a client restricted to whatever the anonymous role may do.
func (f *ClientFactory) Anon() *postgrest.Client {
	return postgrest.NewClient(f.restURL, "public", map[string]string{
		"apikey":        f.anonKey,
		"Authorization": "Bearer " + f.anonKey,
	})
}

// ForUser returns a client whose every query is evaluated under the caller's
// row-level-security identity. Requesting a user scope without a token is a
// programming error at the call site and fails immediately.
func (f *ClientFactory) ForUser(token string) (*postgrest.Client, error) {
	if token == "" {
		return nil, errors.Unauthorized("Missing access token", nil)
	}
	return postgrest.NewClient(f.restURL, "public", map[string]string{
		"apikey":        f.anonKey,
		"Authorization": "Bearer " + token,
	}), nil
}

// Admin returns the service-role client. It is built at most once and
// reused; the client is stateless so a first-use race would be benign, but
// sync.Once keeps the lifecycle explicit. The handle must never be exposed
// outside the explicitly admin-marked operations.
func (f *ClientFactory) Admin() *postgrest.Client {
	f.adminOnce.Do(func() {
		f.admin = postgrest.NewClient(f.restURL, "public", map[string]string{
			"apikey":        f.serviceKey,
			"Authorization": "Bearer " + f.serviceKey,
		})
	})
	return f.admin
}
