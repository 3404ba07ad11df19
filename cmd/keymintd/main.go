package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"keymint/internal/app"
)

func main() {
	var (
		configPath = flag.String("config", "", "path to keymintd.yaml")
		listen     = flag.String("listen", "", "listen address (overrides config)")
	)
	flag.Parse()

	wire, err := app.NewWire(app.Config{ConfigPath: *configPath})
	if err != nil {
		log.Fatalf("wire: %v", err)
	}
	addr := wire.Config.Listen
	if *listen != "" {
		addr = *listen
	}

	srv := &http.Server{
		Addr:              addr,
		Handler:           wire.Server.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Printf("keymintd listening on %s (data dir %s)", addr, wire.Config.DataDir)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("serve: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("shutting down")
	wire.Hub.Close()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}
