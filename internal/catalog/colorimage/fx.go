package colorimage

import (
	"github.com/stitchline/vestra/internal/catalog/colorimage/repository"
	"github.com/stitchline/vestra/internal/catalog/colorimage/service"
	"go.uber.org/fx"
)

var Module = fx.Module("colorimage.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
