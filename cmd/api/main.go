package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/jhoicas/demo-api/docs"
	"github.com/jhoicas/demo-api/internal/application/chaos"
	"github.com/jhoicas/demo-api/internal/application/ports"
	"github.com/jhoicas/demo-api/internal/application/usecase"
	"github.com/jhoicas/demo-api/internal/domain/repository"
	"github.com/jhoicas/demo-api/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/demo-api/internal/infrastructure/pdf"
	"github.com/jhoicas/demo-api/internal/infrastructure/postgres"
	infraredis "github.com/jhoicas/demo-api/internal/infrastructure/redis"
	httpRouter "github.com/jhoicas/demo-api/internal/interfaces/http"
	"github.com/jhoicas/demo-api/pkg/config"
	"github.com/jhoicas/demo-api/pkg/logger"
)

// stores repositorios según STORE_DRIVER.
type stores struct {
	pinger    repository.Pinger
	users     repository.UserRepository
	products  repository.ProductRepository
	analytics repository.AnalyticsRepository
	orders    usecase.OrderTxRunner
	close     func()
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("store", cfg.DB.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()
	st, err := openStores(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("inicializar almacenamiento")
	}
	defer st.close()

	// Caché auxiliar (opcional). Sin REDIS_HOST el puerto queda nil.
	var cache ports.CacheWriter
	cacheClient, cacheConnected := infraredis.New(cfg.Redis)
	if cacheConnected {
		cache = cacheClient
		defer cacheClient.Close()
		pingCtx, cancel := context.WithTimeout(ctx, time.Second)
		if err := cacheClient.Ping(pingCtx); err != nil {
			// El health sigue reportando "connected": refleja la configuración, no la conectividad.
			log.Warn().Err(err).Str("addr", cfg.Redis.Addr()).Msg("redis no responde, las escrituras se ignorarán")
		} else {
			log.Info().Str("addr", cfg.Redis.Addr()).Msg("caché redis configurada")
		}
		cancel()
	}

	policy := chaos.NewRandom(chaos.Config{
		LatencyEnabled: cfg.Chaos.LatencyEnabled,
		ErrorsEnabled:  cfg.Chaos.ErrorsEnabled,
		ErrorRate:      cfg.Chaos.ErrorRate,
	})

	statusUC := usecase.NewStatusUseCase(st.pinger, cacheConnected, policy, cfg.App.Name, cfg.App.Version)
	userUC := usecase.NewUserUseCase(st.users, cache, policy, log)
	productUC := usecase.NewProductUseCase(st.products, policy)
	orderUC := usecase.NewOrderUseCase(st.orders, policy)
	analyticsUC := usecase.NewAnalyticsUseCase(
		st.analytics, policy, infrapdf.NewMarotoPDFGenerator(), cfg.App.Name, cfg.App.Version,
	)

	app := httpRouter.NewApp(httpRouter.AppOptions{
		Name:         cfg.App.Name,
		AllowOrigins: cfg.CORS.AllowOrigins,
		Log:          log,
	})

	// Swagger UI en local: http://localhost:<port>/docs
	docs.SwaggerInfo.Version = cfg.App.Version
	if _, err := os.Stat(cfg.Docs.FilePath); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: cfg.Docs.FilePath,
			Path:     "docs",
			Title:    "Demo API",
		}))
	} else {
		log.Warn().Str("path", cfg.Docs.FilePath).Msg("swagger.json no encontrado, /docs desactivado")
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		StatusUC:    statusUC,
		UserUC:      userUC,
		ProductUC:   productUC,
		OrderUC:     orderUC,
		AnalyticsUC: analyticsUC,
		Log:         log,
	})

	go func() {
		log.Info().Str("addr", cfg.HTTP.Addr()).Msg("servidor HTTP escuchando")
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

// openStores construye los repositorios del driver configurado. Con postgres aplica
// las migraciones embebidas si MIGRATE_ON_START está activo.
func openStores(ctx context.Context, cfg *config.Config, log *logger.Logger) (*stores, error) {
	if cfg.DB.Driver == config.StoreDriverMemory {
		s := memory.NewSeeded()
		return &stores{
			pinger:    s,
			users:     s,
			products:  s.ProductRepository(),
			analytics: s,
			orders:    s,
			close:     func() {},
		}, nil
	}

	if cfg.DB.MigrateOnStart {
		if err := postgres.Migrate(cfg.DB.ConnectionString(), log); err != nil {
			return nil, err
		}
		log.Info().Msg("migraciones aplicadas")
	}

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		return nil, err
	}
	return &stores{
		pinger:    pool,
		users:     postgres.NewUserRepository(pool),
		products:  postgres.NewProductRepository(pool),
		analytics: postgres.NewAnalyticsRepository(pool),
		orders:    postgres.NewTxRunner(pool),
		close:     pool.Close,
	}, nil
}
