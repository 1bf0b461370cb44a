package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/lmittmann/tint"
	"github.com/segmentio/kafka-go"
	"github.com/spf13/pflag"

	authDelivery "github.com/SlavaShagalov/blog-platform/internal/auth/delivery"
	authRepository "github.com/SlavaShagalov/blog-platform/internal/auth/repository"
	authUsecase "github.com/SlavaShagalov/blog-platform/internal/auth/usecase"
	commentsDelivery "github.com/SlavaShagalov/blog-platform/internal/comments/delivery"
	commentsRepository "github.com/SlavaShagalov/blog-platform/internal/comments/repository"
	commentsUsecase "github.com/SlavaShagalov/blog-platform/internal/comments/usecase"
	"github.com/SlavaShagalov/blog-platform/internal/pkg/app"
	"github.com/SlavaShagalov/blog-platform/internal/pkg/hasher"
	"github.com/SlavaShagalov/blog-platform/internal/pkg/token"
	postsDelivery "github.com/SlavaShagalov/blog-platform/internal/posts/delivery"
	postsRepository "github.com/SlavaShagalov/blog-platform/internal/posts/repository"
	postsUsecase "github.com/SlavaShagalov/blog-platform/internal/posts/usecase"
	statDelivery "github.com/SlavaShagalov/blog-platform/internal/statistics/delivery"
	statRepository "github.com/SlavaShagalov/blog-platform/internal/statistics/repository"
	"github.com/SlavaShagalov/blog-platform/pkg/migrations"
	"github.com/SlavaShagalov/blog-platform/pkg/statistics"
)

type WebApp interface {
	Start() error
	Shutdown(ctx context.Context) error
}

func startApp(webApp WebApp, config app.Config, logger *slog.Logger) {
	logger.Debug(fmt.Sprintf("web app starts at %s with configuration: %+v", config.Web.Host+":"+config.Web.Port, config))

	go func() {
		err := webApp.Start()
		if err != nil {
			panic(err)
		}
	}()
}

func shutdownApp(webApp WebApp, logger *slog.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Debug("shutdown web app ...")

	const shutdownTimeout = time.Minute
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)

	err := webApp.Shutdown(ctx)
	if err != nil {
		panic(err)
	}

	cancel()
	logger.Debug("web app exited")
}

func main() {
	var configPath, migrationsPath string
	pflag.StringVarP(&configPath, "config", "c", "configs/blog.yaml", "Config file path")
	pflag.StringVarP(&migrationsPath, "migrations", "", "migrations", "Migrations directory path")
	pflag.Parse()

	config, err := app.ReadLocalConfig(configPath)
	if err != nil {
		panic(err)
	}

	logger := slog.New(tint.NewHandler(os.Stdout, &tint.Options{Level: slog.Level(config.Logging.Level)}))

	db, err := sqlx.Connect(config.DB.DriverName, config.DB.ConnectionString)
	if err != nil {
		panic(err)
	}

	defer func(db *sqlx.DB) {
		err = db.Close()
		if err != nil {
			panic(err)
		}
	}(db)

	err = migrations.Do(config.DB.ConnectionString, migrationsPath, logger)
	if err != nil {
		panic(err)
	}

	kafkaWriter := &kafka.Writer{
		Addr:                   kafka.TCP(config.Kafka.Addresses...),
		Topic:                  config.Kafka.Topic,
		Balancer:               &kafka.LeastBytes{},
		AllowAutoTopicCreation: true,
	}
	defer kafkaWriter.Close()

	statRepo := statRepository.NewSqlxRepository(db, logger)
	stat := statistics.NewKafkaStatistics(nil, kafkaWriter, logger, nil)

	tokens := token.NewManager(config.JWT.Secret, time.Duration(config.JWT.TTLHours)*time.Hour)
	passwordHasher := hasher.NewBcryptHasher()

	authRepo := authRepository.NewSqlxRepository(db, logger)
	authUC := authUsecase.New(authRepo, tokens, passwordHasher, logger)
	authDel := authDelivery.New(authUC, logger)

	postsRepo := postsRepository.NewSqlxRepository(db, logger)
	postsUC := postsUsecase.New(postsRepo, logger)
	postsDel := postsDelivery.New(postsUC, logger)

	commentsRepo := commentsRepository.NewSqlxRepository(db, logger)
	commentsUC := commentsUsecase.New(commentsRepo, postsRepo, logger)
	commentsDel := commentsDelivery.New(commentsUC, logger)

	statDel := statDelivery.New(statRepo, logger)

	mw := &app.Middleware{
		RequireAuth:   app.NewAuthMiddleware(tokens, authRepo, logger),
		RequireAuthor: app.NewRequireAuthorMiddleware(),
		RequireAdmin:  app.NewRequireAdminMiddleware(),
		Statistics:    app.NewStatisticsMW(stat, logger),
	}

	webApp := app.NewFiberApp(config.Web, mw, logger, authDel, postsDel, commentsDel, statDel)

	startApp(webApp, config, logger)
	shutdownApp(webApp, logger)
}
