package main

import (
	"github.com/bwmarrin/snowflake"
	"github.com/stitchline/vestra/internal/logger"
	"github.com/stitchline/vestra/internal/migration"
	"github.com/stitchline/vestra/internal/server"
	"github.com/stitchline/vestra/pkg/db"
	"go.uber.org/fx"
)

// RegisterSnowflake provides the ID generator shared by every service.
func RegisterSnowflake() (*snowflake.Node, error) {
	return snowflake.NewNode(1)
}

func main() {
	app := fx.New(
		logger.Module,
		fx.Provide(RegisterSnowflake),
		db.Module,
		migration.Module,
		server.Module,
	)

	app.Run()
}
