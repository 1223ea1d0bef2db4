package main

import (
	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/easysale/internal/config"
	"github.com/smallbiznis/easysale/internal/migration"
	"github.com/smallbiznis/easysale/internal/observability"
	"github.com/smallbiznis/easysale/internal/server"
	"github.com/smallbiznis/easysale/pkg/db"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		config.Module,
		observability.Module,
		fx.Provide(RegisterSnowflake),
		db.Module,
		migration.Module,
		server.Module,
	)

	app.Run()
}

func RegisterSnowflake() *snowflake.Node {
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
	return node
}
