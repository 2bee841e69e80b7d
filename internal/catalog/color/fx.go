package color

import (
	"github.com/stitchline/vestra/internal/catalog/color/repository"
	"github.com/stitchline/vestra/internal/catalog/color/service"
	"go.uber.org/fx"
)

var Module = fx.Module("color.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
