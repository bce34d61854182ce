package handlers

import (
	"github.com/sirupsen/logrus"
	supa "github.com/supabase-community/supabase-go"

	"devfair/site-api/config"
	"devfair/site-api/internal/auth"
)

// ApplicationHandler holds shared dependencies for handlers.
type ApplicationHandler struct {
	Logger *logrus.Logger
	DB     *supa.Client
	Tokens *auth.TokenService
	Cfg    *config.Config
}

// NewApplicationHandler creates an ApplicationHandler with the given
// dependencies.
func NewApplicationHandler(logger *logrus.Logger, db *supa.Client, tokens *auth.TokenService, cfg *config.Config) *ApplicationHandler {
	return &ApplicationHandler{
		Logger: logger,
		DB:     db,
		Tokens: tokens,
		Cfg:    cfg,
	}
}
