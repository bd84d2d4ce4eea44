package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	httpapi "santorini/internal/api/http"
	"santorini/internal/api/ws"
	"santorini/internal/config"
	"santorini/internal/room"
	"santorini/internal/store"
	"santorini/internal/telemetry"
)

func main() {
	log.SetPrefix("[SANTORINI] ")
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := telemetry.Setup(ctx, "santorini", cfg.OTelEndpoint)
	if err != nil {
		log.Fatalf("setup tracing: %v", err)
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			log.Printf("shutdown tracing: %v", err)
		}
	}()

	mem := store.NewMemoryStore()
	rm := room.NewManager(mem, cfg, nil)
	hub := ws.NewHub(rm)
	rm.SetHub(hub)
	go rm.Run(ctx, time.Minute)

	r := httpapi.NewRouter(rm, hub, cfg)
	r.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusTemporaryRedirect, "/config")
	})

	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: r}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("shutdown: %v", err)
		}
		for _, rx := range mem.Rooms() {
			rx.Close()
		}
	}()

	log.Printf("listening on %s", cfg.HTTPAddr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("serve: %v", err)
	}
}
