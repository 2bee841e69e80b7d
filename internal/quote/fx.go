package quote

import (
	"github.com/stitchline/vestra/internal/quote/repository"
	"github.com/stitchline/vestra/internal/quote/service"
	"go.uber.org/fx"
)

var Module = fx.Module("quote.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
