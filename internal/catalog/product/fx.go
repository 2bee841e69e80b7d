package product

import (
	"github.com/stitchline/vestra/internal/catalog/product/repository"
	"github.com/stitchline/vestra/internal/catalog/product/service"
	"go.uber.org/fx"
)

var Module = fx.Module("product.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
