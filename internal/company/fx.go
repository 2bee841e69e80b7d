package company

import (
	"github.com/stitchline/vestra/internal/company/repository"
	"github.com/stitchline/vestra/internal/company/service"
	"go.uber.org/fx"
)

var Module = fx.Module("company.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
