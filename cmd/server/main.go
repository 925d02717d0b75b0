package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	"github.com/sheikh-saqib/accounts-transfer-service/internal/api"
	"github.com/sheikh-saqib/accounts-transfer-service/internal/config"
	"github.com/sheikh-saqib/accounts-transfer-service/internal/events/email"
	"github.com/sheikh-saqib/accounts-transfer-service/internal/events/kafka"
	"github.com/sheikh-saqib/accounts-transfer-service/internal/events/redisstream"
	interfaces "github.com/sheikh-saqib/accounts-transfer-service/internal/interfaces"
	"github.com/sheikh-saqib/accounts-transfer-service/internal/ledger"
	"github.com/sheikh-saqib/accounts-transfer-service/internal/service"
	"github.com/sheikh-saqib/accounts-transfer-service/internal/storage/memory"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	cfg := config.Load()

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer logger.Sync()

	var notifier interfaces.Notifier
	switch cfg.Notifier {
	case config.NotifierKafka:
		kafkaNotifier := kafka.NewNotifier(cfg.KafkaBrokers, cfg.KafkaTopic)
		defer kafkaNotifier.Close()
		notifier = kafkaNotifier
	case config.NotifierRedis:
		client := goredis.NewClient(&goredis.Options{Addr: cfg.RedisAddr})
		defer client.Close()
		notifier = redisstream.NewNotifier(client, cfg.RedisStream)
	default:
		notifier = email.NewNotifier(logger)
	}

	store := memory.NewMemoryAccountStore()
	accountsService := service.NewAccountsService(ledger.NewLedger(store), notifier, logger)
	handler := api.NewAccountsHandler(accountsService)

	router := gin.Default()
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	handler.Routes(router)

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan
		logger.Info("shutting down")
		logger.Sync()
		os.Exit(0)
	}()

	logger.Info("starting server", zap.String("addr", cfg.HTTPAddr), zap.String("notifier", cfg.Notifier))
	if err := router.Run(cfg.HTTPAddr); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}

	zapConfig := zap.NewProductionConfig()
	zapConfig.Level = zap.NewAtomicLevelAt(lvl)
	return zapConfig.Build()
}
