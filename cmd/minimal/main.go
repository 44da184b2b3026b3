package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpRouter "github.com/jhoicas/demo-api/internal/interfaces/http"
	"github.com/jhoicas/demo-api/pkg/config"
	"github.com/jhoicas/demo-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name + "-minimal",
	})

	app := httpRouter.NewApp(httpRouter.AppOptions{
		Name:         cfg.App.Name + "-minimal",
		AllowOrigins: cfg.CORS.AllowOrigins,
		Log:          log,
	})
	httpRouter.MinimalRouter(app, cfg.App.Name)

	go func() {
		log.Info().Str("addr", cfg.Minimal.Addr()).Msg("servicio mínimo escuchando")
		if err := app.Listen(cfg.Minimal.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}
	log.Info().Msg("servicio mínimo detenido")
}
