package promotion

import (
	"github.com/stitchline/vestra/internal/promotion/repository"
	"github.com/stitchline/vestra/internal/promotion/service"
	"go.uber.org/fx"
)

var Module = fx.Module("promotion.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
