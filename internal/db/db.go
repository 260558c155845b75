package db

import (
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/BruksfildServices01/clinic-scheduler/internal/config"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

// ConnConfig lê a URL do banco e injeta a credencial do service role como
// senha da conexão.
func ConnConfig(cfg *config.Config) (*pgx.ConnConfig, error) {
	connCfg, err := pgx.ParseConfig(cfg.StoreURL)
	if err != nil {
		return nil, fmt.Errorf("parse SUPABASE_URL: %w", err)
	}
	connCfg.Password = cfg.StoreCredential
	return connCfg, nil
}

func NewDB(cfg *config.Config, log *zap.Logger) (*gorm.DB, error) {
	connCfg, err := ConnConfig(cfg)
	if err != nil {
		return nil, err
	}

	sqlDB := stdlib.OpenDB(*connCfg)
	sqlDB.SetMaxOpenConns(cfg.DBMaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.DBMaxIdleConns)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		PrepareStmt: true,
		Logger:      gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("connect database: %w", err)
	}

	if cfg.AutoMigrate {
		if err := Migrate(db); err != nil {
			sqlDB.Close()
			return nil, err
		}
		log.Info("schema migrated")
	}

	return db, nil
}

// Migrate cria as quatro tabelas quando o banco não as gerencia.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.Clinic{},
		&models.Client{},
		&models.Availability{},
		&models.Appointment{},
	); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
