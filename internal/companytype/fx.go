package companytype

import (
	"github.com/stitchline/vestra/internal/companytype/repository"
	"github.com/stitchline/vestra/internal/companytype/service"
	"go.uber.org/fx"
)

var Module = fx.Module("companytype.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
