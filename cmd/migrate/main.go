// Command migrate applies or rolls back the SQLite schema.
//
// Usage:
//
//	migrate [-db path] up
//	migrate [-db path] down [steps]
//	migrate [-db path] version
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/echuwok12/SplitPayment/internal/config"
	"github.com/echuwok12/SplitPayment/internal/storage/sqlite"
	"github.com/echuwok12/SplitPayment/pkg/logging"
)

func main() {
	_ = godotenv.Load()
	logging.Setup()

	dbPath := flag.String("db", config.Load().DBPath, "path to the SQLite database")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [-db path] up | down [steps] | version\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if err := run(*dbPath, flag.Args()); err != nil {
		slog.Error("Migration failed", "database", *dbPath, "error", err)
		os.Exit(1)
	}
}

func run(dbPath string, args []string) error {
	if len(args) == 0 {
		flag.Usage()
		return fmt.Errorf("missing command")
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return fmt.Errorf("create database directory: %w", err)
	}

	m, err := sqlite.NewMigrator(dbPath)
	if err != nil {
		return err
	}
	defer m.Close()

	switch args[0] {
	case "up":
		if err := m.Up(); err != nil {
			return err
		}
	case "down":
		steps := 1
		if len(args) > 1 {
			steps, err = strconv.Atoi(args[1])
			if err != nil || steps < 1 {
				return fmt.Errorf("invalid step count %q", args[1])
			}
		}
		if err := m.Down(steps); err != nil {
			return err
		}
	case "version":
	default:
		flag.Usage()
		return fmt.Errorf("unknown command %q", args[0])
	}

	version, dirty, err := m.Version()
	if err != nil {
		return err
	}
	slog.Info("Schema version", "database", dbPath, "version", version, "dirty", dirty)
	return nil
}
