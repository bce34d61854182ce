package config

import (
	postgrest "github.com/supabase-community/postgrest-go"
	supa "github.com/supabase-community/supabase-go"
)

// NewSupabase builds the Supabase client used for all table and view
// access. The service key bypasses row-level security, so this client
// must never be handed to anything outside the API process.
func NewSupabase(cfg *Config) (*supa.Client, error) {
	return supa.NewClient(cfg.SupabaseURL, cfg.SupabaseServiceKey, nil)
}

// NewPostgrest builds a bare PostgREST client for calling database
// functions. The supabase-go wrapper hides the client error state, so
// RPC callers use this one directly.
func NewPostgrest(cfg *Config) *postgrest.Client {
	headers := map[string]string{
		"apikey":        cfg.SupabaseServiceKey,
		"Authorization": "Bearer " + cfg.SupabaseServiceKey,
	}
	return postgrest.NewClient(cfg.SupabaseURL+"/rest/v1", "public", headers)
}
