package server

import (
	"task-query-service/internal/config"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func postgresDialector(cfg *config.Config) gorm.Dialector {
	return postgres.Open(cfg.GetDatabaseDSN())
}
