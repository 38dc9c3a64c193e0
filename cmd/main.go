package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/Ksaiko-Vlad/sofa-order-service/internal/app"
	"github.com/Ksaiko-Vlad/sofa-order-service/internal/config"
	"github.com/Ksaiko-Vlad/sofa-order-service/internal/events"
	"github.com/Ksaiko-Vlad/sofa-order-service/internal/handler"
	"github.com/Ksaiko-Vlad/sofa-order-service/internal/postgres"
	"github.com/Ksaiko-Vlad/sofa-order-service/internal/repo"
	"github.com/Ksaiko-Vlad/sofa-order-service/internal/service"
	"github.com/Ksaiko-Vlad/sofa-order-service/pkg/cache"
	"github.com/Ksaiko-Vlad/sofa-order-service/pkg/token"
	"github.com/Ksaiko-Vlad/sofa-order-service/pkg/trm"

	_ "github.com/Ksaiko-Vlad/sofa-order-service/docs"
)

// @title           Sofa Order Service API
// @version         1.0
// @description     Workflow заказов и доставки: фабрика, водители, менеджеры
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	db, err := postgres.New(conf.Postgres)
	panicIfErr("failed to connect to db", err)
	defer db.Close()
	logger.Info("postgres connected")

	store := repo.NewPostgresRepo(db)
	txManager := trm.NewManager(db)
	catalogCache := cache.NewLRUCache(conf.Cache.Capacity, conf.Cache.TTL)
	tokens := token.NewManager(conf.JWT.Secret, conf.JWT.TTL)
	publisher := events.NewPublisher(logger, conf.Kafka)
	defer publisher.Close()

	orderService := service.NewOrderService(logger, txManager, store, store, publisher)
	shipmentService := service.NewShipmentService(logger, txManager, store, publisher, conf.Shipment.MergeOpen)
	authService := service.NewAuthService(logger, store, tokens)
	catalogService := service.NewCatalogService(logger, store, catalogCache)

	kafkaHandler := handler.NewKafkaHandler(logger, conf.Kafka, orderService)
	httpHandler := handler.NewHTTPHandler(logger, tokens, authService, orderService, shipmentService, catalogService)

	app := app.New(logger, conf)

	app.SetHTTPHandlers(httpHandler)
	app.SetConsumers(kafkaHandler)
	app.SetStarters(
		starterFunc(func(ctx context.Context) error {
			catalogCache.StartJanitor(ctx)
			return nil
		}),
		starterFunc(catalogService.WarmUp),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	panicIfErr("failed to start app", app.Start(ctx))
	<-ctx.Done()
	panicIfErr("failed to stop app", app.Stop())
}

func init() {
	godotenv.Load()
}

func newLogger(env string) *slog.Logger {
	switch env {
	case "production":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

func panicIfErr(prefix string, err error) {
	if err != nil {
		panic(prefix + ": " + err.Error())
	}
}

type starterFunc func(ctx context.Context) error

func (f starterFunc) Start(ctx context.Context) error {
	return f(ctx)
}
