package auth

import (
	"github.com/stitchline/vestra/internal/auth/repository"
	"github.com/stitchline/vestra/internal/auth/service"
	"github.com/stitchline/vestra/internal/auth/session"
	"go.uber.org/fx"
)

var Module = fx.Module("auth.service",
	fx.Provide(repository.Provide),
	fx.Provide(repository.ProvideSessions),
	fx.Provide(service.New),
	fx.Provide(session.NewManager),
)
