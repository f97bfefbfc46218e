package main

import (
	"database/sql"
	"flag"
	"log"
	"os"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/musiclog/musiclog/internal/config"
)

const defaultMigrationsDir = "migrations"

// Applies database migrations using goose.
// Usage: migrate [-dir migrations] <up|down|status|version> [args]
func main() {
	dir := flag.String("dir", defaultMigrationsDir, "directory with migration files")
	flag.Parse()

	args := flag.Args()
	if len(args) < 1 {
		log.Println("usage: migrate [-dir migrations] <command> [args]")
		os.Exit(1)
	}
	command := args[0]

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := sql.Open("pgx", cfg.GetDBConnString())
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		log.Fatalf("Failed to set goose dialect: %v", err)
	}

	if err := goose.Run(command, db, *dir, args[1:]...); err != nil {
		log.Fatalf("goose %s failed: %v", command, err)
	}
}
