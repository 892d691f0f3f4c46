// SPDX-License-Identifier: AGPL-3.0-only
package config

import (
	"fmt"
	"os"

	"github.com/fluffyriot/globeblog/internal/database"
	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"
	"github.com/rs/zerolog/log"

	_ "github.com/lib/pq"
)

const AppVersion = "1.2.0"

// AppConfig carries the runtime settings read once at startup.
type AppConfig struct {
	Port          string
	SessionSecret string
	ClientOrigins []string
}

func Load() *AppConfig {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		secret = "globeblog-dev-secret"
	}

	origins := []string{"http://localhost:8080", "http://localhost:7777"}
	if extra := os.Getenv("CLIENT_ORIGIN"); extra != "" {
		origins = append(origins, extra)
	}

	return &AppConfig{
		Port:          port,
		SessionSecret: secret,
		ClientOrigins: origins,
	}
}

// LoadDatabase opens the Postgres connection and brings the schema up to
// date before handing out the queries layer.
func LoadDatabase() (*sqlx.DB, *database.Queries, error) {

	dbName := os.Getenv("POSTGRES_DB")
	dbUserName := os.Getenv("POSTGRES_USER")
	dbPassword := os.Getenv("POSTGRES_PASSWORD")
	dbHost := os.Getenv("POSTGRES_HOST")

	if dbName == "" || dbUserName == "" || dbPassword == "" {
		return nil, nil, fmt.Errorf("failed to load the environment configuration")
	}

	if dbHost == "" {
		dbHost = "db:5432"
	}

	connectDbUrl := fmt.Sprintf("postgres://%v:%v@%v/%v?sslmode=disable", dbUserName, dbPassword, dbHost, dbName)

	db, err := sqlx.Open("postgres", connectDbUrl)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to the DB: %w", err)
	}

	migrationsDir := "./sql/schema"
	if err := goose.Up(db.DB, migrationsDir); err != nil {
		return nil, nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	version, err := goose.EnsureDBVersion(db.DB)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get DB version: %w", err)
	}
	log.Info().Int64("db_version", version).Msg("migrations applied")

	return db, database.New(db), nil
}
