// Command server runs the ludus arena HTTP server.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/louisbranch/ludus/internal/arena/service"
	httpapi "github.com/louisbranch/ludus/internal/api/http"
	"github.com/louisbranch/ludus/internal/platform/config"
	"github.com/louisbranch/ludus/internal/platform/otel"
	"github.com/louisbranch/ludus/internal/storage/memory"
	"github.com/louisbranch/ludus/internal/telemetry"
)

type serverConfig struct {
	Port         int    `env:"LUDUS_PORT" envDefault:"3000"`
	AllowOrigins string `env:"LUDUS_CORS_ORIGINS" envDefault:"http://localhost:3000"`
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, reading environment variables directly")
	}

	var cfg serverConfig
	if err := config.ParseEnv(&cfg); err != nil {
		config.Exitf("load config: %v", err)
	}

	ctx := context.Background()
	shutdownTracing, err := otel.Setup(ctx, "ludus-server")
	if err != nil {
		config.Exitf("setup tracing: %v", err)
	}

	store := memory.New()
	serviceCfg := service.Config{
		Stores: service.Stores{
			Runs:       store,
			Candidates: store,
			Challenges: store,
		},
		Locks:   service.NewEntityLocks(),
		Emitter: telemetry.NewEmitter(store),
	}
	runs := service.NewRunService(serviceCfg)
	challenges := service.NewChallengeService(serviceCfg)

	app := httpapi.NewServer(httpapi.Config{
		Runs:         runs,
		Challenges:   challenges,
		AllowOrigins: cfg.AllowOrigins,
	})

	errc := make(chan error, 1)
	go func() {
		log.Printf("server listening on http://localhost:%d", cfg.Port)
		errc <- app.Listen(fmt.Sprintf(":%d", cfg.Port))
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errc:
		if err != nil {
			config.Exitf("serve: %v", err)
		}
	case sig := <-stop:
		log.Printf("received %s, shutting down", sig)
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		log.Printf("flush traces: %v", err)
	}
}
