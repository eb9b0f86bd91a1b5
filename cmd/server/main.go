package main

import (
	"fmt"
	"log/slog"

	log "github.com/charmbracelet/log"
	"github.com/swiftflow/swiftflow/config"
	"github.com/swiftflow/swiftflow/infra"
	infraprovider "github.com/swiftflow/swiftflow/infra/provider"
	userrepo "github.com/swiftflow/swiftflow/infra/repository/user"
	authsvc "github.com/swiftflow/swiftflow/pkg/service/auth"
	conversionsvc "github.com/swiftflow/swiftflow/pkg/service/conversion"
	usersvc "github.com/swiftflow/swiftflow/pkg/service/user"
	"github.com/swiftflow/swiftflow/webapi"
)

// @title SwiftFlow API
// @version 1.0.0
// @description Authenticated currency conversion API
// @BasePath /
//
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load(slog.Default())
	if err != nil {
		return fmt.Errorf("failed to load application configuration: %w", err)
	}
	logger := infra.SetupLogger(cfg.Log)

	db, err := infra.NewDBConnection(cfg.DB, cfg.Env)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := userrepo.Migrate(db); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	users := userrepo.NewRepository(db)
	rates := infraprovider.NewExchangeRateAPIProvider(cfg.Exchange, logger)

	userSvc := usersvc.New(users, logger)
	authSvc := authsvc.New(users, cfg.Jwt, logger)
	convSvc := conversionsvc.New(rates, logger)

	app := webapi.New(cfg, userSvc, authSvc, convSvc)

	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	logger.Info("starting server", "env", cfg.Env, "address", addr)
	return app.Listen(addr)
}
