package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "time/tzdata"

	_ "github.com/rawandfun/barfer-service/docs"
	"github.com/rawandfun/barfer-service/internal/app"
	"github.com/rawandfun/barfer-service/internal/balance"
	"github.com/rawandfun/barfer-service/internal/config"
	"github.com/rawandfun/barfer-service/internal/entities"
	"github.com/rawandfun/barfer-service/internal/handler"
	"github.com/rawandfun/barfer-service/internal/postgres"
	"github.com/rawandfun/barfer-service/internal/repo"
	"github.com/rawandfun/barfer-service/internal/service"
	"github.com/rawandfun/barfer-service/internal/shipping"
	"github.com/rawandfun/barfer-service/migrations"
	"github.com/rawandfun/barfer-service/pkg/cache"
	"github.com/rawandfun/barfer-service/pkg/trm"

	"github.com/joho/godotenv"
)

// @title           Barfer Service API
// @version         1.0
// @description     Документация HTTP API
// @BasePath        /
func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	if conf.Shipping.APIKey == "" {
		logger.Warn("ENVIA_API_KEY is not set, checkout will serve fallback rates")
	}

	db, err := postgres.New(conf.Postgres)
	panicIfErr("failed to connect to db", err)
	defer db.Close()
	logger.Info("postgres connected")
	panicIfErr("failed to migrate db", postgres.Migrate(context.Background(), db, migrations.FS))

	balanceLoc, err := time.LoadLocation(conf.Balance.TimeZone)
	panicIfErr("failed to load balance time zone", err)

	store := repo.NewPostgresRepo(db, balanceLoc)
	txManager := trm.NewManager(db)
	orderCache := cache.NewLRUCache(conf.Cache.Capacity, conf.Cache.TTL)
	rateCache := cache.NewLRUCache(conf.Shipping.RateCacheCapacity, conf.Shipping.RateCacheTTL)

	carrierClient := shipping.NewClient(shipping.ClientConfig{
		BaseURL: conf.Shipping.BaseURL,
		APIKey:  conf.Shipping.APIKey,
		Timeout: conf.Shipping.Timeout,
	})
	aggregator := shipping.NewAggregator(logger, shipping.Config{
		APIKey:   conf.Shipping.APIKey,
		Carriers: conf.Shipping.Carriers,
		Timeout:  conf.Shipping.Timeout,
	}, carrierClient)
	checkout := shipping.NewCheckout(logger, aggregator, originAddress(conf.Origin), rateCache)

	orderService := service.NewOrderService(logger, txManager, store, orderCache, checkout)
	salidaService := service.NewSalidaService(logger, store, store)
	balanceService := balance.NewService(logger, store, conf.Balance.DefaultWindow)

	handler.RegisterMetrics()
	kafkaHandler := handler.NewKafkaHandler(logger, conf.Kafka, orderService)

	app := app.New(logger, conf)

	app.SetHTTPHandlers(
		handler.NewOrderHandler(logger, orderService),
		handler.NewShippingHandler(logger, checkout, aggregator),
		handler.NewBalanceHandler(logger, balanceService, balanceLoc),
		handler.NewSalidaHandler(logger, salidaService),
	)
	app.SetConsumers(kafkaHandler)
	app.SetStarters(orderCache, rateCache, cacheWarmUpAdapter{svc: orderService, count: conf.Cache.Capacity})

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

func originAddress(o config.Origin) entities.Address {
	return entities.Address{
		Name:       o.Name,
		Company:    o.Company,
		Email:      o.Email,
		Phone:      o.Phone,
		Street:     o.Street,
		Number:     o.Number,
		District:   o.District,
		City:       o.City,
		State:      o.State,
		Country:    o.Country,
		PostalCode: o.PostalCode,
	}
}

type warmUpper interface {
	WarmUpCache(ctx context.Context, count int) error
}

type cacheWarmUpAdapter struct {
	svc   warmUpper
	count int
}

func (a cacheWarmUpAdapter) Start(ctx context.Context) error {
	return a.svc.WarmUpCache(ctx, a.count)
}
