/*
main.go - Application entry point

PURPOSE:
  Initializes and starts the Alfie leave planner server. Handles
  configuration, dependency injection, and graceful shutdown.

STARTUP SEQUENCE:
  1. Parse command-line flags
  2. Open the SQLite snapshot store
  3. Build the region provider, state store, and leave workflow
  4. Restore the persisted snapshot (absent/malformed falls back to
     the initial state)
  5. Start the HTTP server with graceful shutdown

COMMAND-LINE FLAGS:
  -port     HTTP server port (default: 8080)
  -db       SQLite snapshot database path (default: alfie.db)
            Use ":memory:" for an ephemeral database
  -region   Initial region, UK or US (default: UK)
  -latency  Simulated remote-call latency (default: 1s)
  -dev      Include diagnostic detail in error responses

GRACEFUL SHUTDOWN:
  On SIGINT/SIGTERM:
  1. Stop accepting new connections
  2. Wait for active requests to complete (30s timeout)
  3. Save a final snapshot and close the database
  4. Exit

SEE ALSO:
  - api/server.go: Router configuration
  - state/snapshot.go: Snapshot persistence
*/
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alfie/leave-planner/api"
	"github.com/alfie/leave-planner/leave"
	"github.com/alfie/leave-planner/region"
	"github.com/alfie/leave-planner/state"
	"github.com/alfie/leave-planner/store/sqlite"
)

func main() {
	port := flag.Int("port", 8080, "HTTP server port")
	dbPath := flag.String("db", "alfie.db", "SQLite snapshot database path")
	startRegion := flag.String("region", "UK", "Initial region (UK or US)")
	latency := flag.Duration("latency", leave.DefaultLatency, "Simulated remote-call latency")
	dev := flag.Bool("dev", false, "Include diagnostic detail in error responses")
	flag.Parse()

	reg, err := region.Parse(*startRegion)
	if err != nil {
		log.Fatalf("Invalid -region: %v", err)
	}

	kv, err := sqlite.New(*dbPath)
	if err != nil {
		log.Fatalf("Failed to open snapshot database: %v", err)
	}
	defer kv.Close()

	provider := region.New(reg)
	store := state.New()
	if err := store.RestoreFrom(context.Background(), kv); err != nil {
		log.Printf("Warning: snapshot restore failed, starting fresh: %v", err)
	}

	svc := leave.New(store, provider)
	svc.Latency = *latency

	handler := api.NewHandler(store, provider, svc)
	handler.Snapshots = kv
	handler.Dev = *dev

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", *port),
		Handler:      api.NewRouter(handler),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Alfie listening on http://localhost:%d", *port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	if err := store.SaveTo(ctx, kv); err != nil {
		log.Printf("Warning: final snapshot save failed: %v", err)
	}

	log.Println("Server stopped")
}
