// Package main implements the entry point for the taskvault API server,
// a task management service with per-user ownership of tasks.
package main

import (
	"context"
	"flag"
	"log"
)

func main() {
	migrateCmd := flag.String("migrate", "", "run a migration command (up|down|status) and exit")
	flag.Parse()

	app, err := newApplication()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	if *migrateCmd != "" {
		if err := app.runMigrations(*migrateCmd); err != nil {
			app.logger.Error("migration failed", "error", err)
			app.cleanup()
			log.Fatalf("Migration failed: %v", err)
		}
		app.cleanup()
		return
	}

	router := app.setupRouter()
	if err := app.startHTTPServer(context.Background(), router); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
