package order

import (
	"github.com/stitchline/vestra/internal/order/repository"
	"github.com/stitchline/vestra/internal/order/service"
	"go.uber.org/fx"
)

var Module = fx.Module("order.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
