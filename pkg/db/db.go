package db

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/storefront-services/storefront-backend/pkg/config"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
	pg "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// GetUrl Get database config and return url
func GetUrl() string {
	dbConfig := config.Get().Database
	connectStr := fmt.Sprintf(
		"user=%s password=%s dbname=%s host=%s port=%d",
		dbConfig.User,
		dbConfig.Password,
		dbConfig.Name,
		dbConfig.Host,
		dbConfig.Port,
	)

	var sslStr string
	if dbConfig.CACertPath == "" {
		sslStr = " sslmode=disable"
	} else {
		sslStr = fmt.Sprintf(" sslmode=verify-full sslrootcert=%s", dbConfig.CACertPath)
	}
	return connectStr + sslStr
}

// Connect initializes global database connection, DB
func Connect() error {
	var err error

	slowThreshold := 2 * time.Second
	if config.Get().Database.SlowQueryDuration != nil {
		slowThreshold = *config.Get().Database.SlowQueryDuration
	}

	dbURL := GetUrl()
	DB, err = gorm.Open(pg.Open(dbURL), &gorm.Config{
		Logger: NewDBLogger(
			DBLogConfig{
				SlowThreshold:             slowThreshold,
				LogLevel:                  zeroLogToGormLevel(config.DBLevel()),
				IgnoreRecordNotFoundError: true,
				zeroLogger:                log.Logger,
			},
		),
	})

	if err != nil {
		return err
	}

	sqlDb, err := DB.DB()
	if err != nil {
		return err
	}
	sqlDb.SetMaxOpenConns(config.Get().Database.PoolLimit)
	return nil
}

// Close closes global database connection, DB
func Close() error {
	var sqlDB *sql.DB
	var err error

	sqlDB, err = DB.DB()
	if err != nil {
		return err
	}

	if err = sqlDB.Close(); err != nil {
		return err
	}
	return err
}

// setupMigration connect to the DB and driver, returns pointer to migration instance.
func setupMigration(dbURL string) (*migrate.Migrate, error) {
	db, err := sql.Open("postgres", dbURL)
	if err != nil {
		return nil, fmt.Errorf("could not connect to database: %w", err)
	}

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return nil, fmt.Errorf("could not get database driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		"file://./db/migrations",
		"postgres", driver)
	if err != nil {
		return nil, fmt.Errorf("could not create migration instance: %w", err)
	}

	return m, err
}

// MigrateDB runs migrations up or down with amount to run. Omit "steps" to run all migrations.
func MigrateDB(dbURL string, direction string, steps ...int) error {
	m, err := setupMigration(dbURL)
	if err != nil {
		return fmt.Errorf("migration setup failed: %w", err)
	}

	var step int
	if steps != nil {
		step = steps[0]
	}

	switch direction {
	case "up":
		if step > 0 {
			err = m.Steps(step)
		} else {
			err = m.Up()
		}
	case "down":
		if step > 0 {
			step *= -1
			err = m.Steps(step)
		} else {
			err = m.Down()
		}
	}

	if err != nil && err == migrate.ErrNoChange {
		log.Debug().Msg("No new migrations.")
		return nil
	} else if err != nil {
		log.Error().Err(err).Msg("Failed to migrate:")
		return err
	}
	return nil
}
