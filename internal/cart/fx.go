package cart

import (
	"github.com/stitchline/vestra/internal/cart/repository"
	"github.com/stitchline/vestra/internal/cart/service"
	"go.uber.org/fx"
)

var Module = fx.Module("cart.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
