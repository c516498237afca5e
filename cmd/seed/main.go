package main

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/BruksfildServices01/barber-admin/internal/config"
	dbpkg "github.com/BruksfildServices01/barber-admin/internal/db"
	"github.com/BruksfildServices01/barber-admin/internal/logging"
)

// Cria o administrador, a barbearia e os sete horários, se ainda não existirem.
func main() {
	cfg := config.Load()
	logging.Init("barber-admin-seed", cfg.Env, cfg.LogLevel)

	db := dbpkg.NewDB(cfg)

	in := dbpkg.DefaultProvisionInput()
	in.AdminEmail = cfg.AdminEmail
	in.AdminPassword = cfg.AdminPassword
	in.AdminName = cfg.AdminName

	if err := dbpkg.Provision(context.Background(), db, in); err != nil {
		log.Fatal().Err(err).Msg("provision failed")
	}

	log.Info().Str("admin", cfg.AdminEmail).Msg("provision done")
}
