package main

import (
	"fmt"
	"os"
	"time"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"Moodring/config"
	"Moodring/dao"
	"Moodring/pkg/database"
	"Moodring/pkg/jwt"
	"Moodring/pkg/log"
	"Moodring/pkg/server"
	"Moodring/pkg/snowflake"
)

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	path := fmt.Sprintf("configs/config.%s.yaml", env)
	cfg := config.New(path)
	log.SetDebug(cfg.Debug())
	if err := snowflake.SetNode(cfg.App.Node); err != nil {
		log.L.Fatal("invalid snowflake node", zap.Int64("node", cfg.App.Node), zap.Error(err))
	}

	cliApp := &cli.App{
		Name: "api-server",
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "start http server",
				Action: func(ctx *cli.Context) error {
					appProvider, err := InitServer(cfg)
					if err != nil {
						return err
					}
					return server.Run(ctx, appProvider)
				},
			},
			{
				Name:  "migrate",
				Usage: "sync database schema",
				Action: func(ctx *cli.Context) error {
					db, err := database.NewDB(cfg)
					if err != nil {
						return err
					}
					if err := database.Migrate(db); err != nil {
						return err
					}
					log.L.Info("migrate done", zap.String("driver", cfg.Database.Driver))
					return nil
				},
			},
			{
				Name:  "token",
				Usage: "issue an access token for a local user (created when missing)",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "username", Required: true},
					&cli.DurationFlag{Name: "expire", Value: 24 * time.Hour},
				},
				Action: func(ctx *cli.Context) error {
					db, err := database.NewDB(cfg)
					if err != nil {
						return err
					}
					user, err := dao.NewUsers(db).GetOrCreate(ctx.Context, snowflake.GenID(), ctx.String("username"))
					if err != nil {
						return err
					}
					token, err := jwt.GenerateToken([]byte(cfg.Jwt.Secret), user.ID, jwt.TypeAccess, ctx.Duration("expire"))
					if err != nil {
						return err
					}
					fmt.Fprintf(ctx.App.Writer, "user_id=%d\n%s\n", user.ID, token)
					return nil
				},
			},
		},
	}
	if err := cliApp.Run(os.Args); err != nil {
		log.L.Fatal("failed to start server", zap.Error(err))
	}
}
