package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"vidcall_server/internal/config"
	dao "vidcall_server/internal/dao/mysql"
	"vidcall_server/internal/dao/mysql/repository"
	myredis "vidcall_server/internal/dao/redis"
	"vidcall_server/internal/handler"
	"vidcall_server/internal/https_server"
	"vidcall_server/internal/infrastructure/logger"
	"vidcall_server/internal/infrastructure/mq"
	"vidcall_server/internal/service"
	"vidcall_server/internal/service/calling"
	"vidcall_server/internal/service/session"
	"vidcall_server/pkg/constants"
	"vidcall_server/pkg/util/jwt"
	"vidcall_server/pkg/util/random"

	"go.uber.org/zap"
)

func main() {
	// 1. config
	conf := config.GetConfig()

	// 2. logger
	if err := logger.Init(&conf.LogConfig, conf.MainConfig.Mode); err != nil {
		log.Fatalf("init logger failed: %v", err)
	}
	defer func() { _ = zap.L().Sync() }()
	zap.L().Info("logger ready", zap.String("app", conf.AppName))

	if err := handler.InitTrans(conf.Locale); err != nil {
		zap.L().Fatal("init validator translator failed", zap.Error(err))
	}

	// 3. mysql
	db, err := dao.Init(&conf.MysqlConfig)
	if err != nil {
		zap.L().Fatal("init mysql failed", zap.Error(err))
	}
	repos := repository.NewRepositories(db)

	// 4. redis
	cache, err := myredis.Init(context.Background(), &conf.RedisConfig)
	if err != nil {
		zap.L().Fatal("init redis failed", zap.Error(err))
	}
	zap.L().Info("redis ready")

	// 5. jwt
	jwt.Init(conf.JWTConfig.Secret, conf.JWTConfig.AccessTokenExpiry, conf.JWTConfig.RefreshTokenExpiry)

	// 6. session hub and, in kafka mode, the broker client
	hub := session.NewHub(constants.CHANNEL_SIZE)
	var (
		kafkaClient *mq.KafkaClient
		publisher   session.EventPublisher
	)
	if conf.KafkaConfig.MessageMode == "kafka" {
		kafkaClient = mq.NewKafkaClient(conf.KafkaConfig)
		if err := kafkaClient.CreateTopics(); err != nil {
			zap.L().Warn("create kafka topics failed", zap.Error(err))
		}
		publisher = kafkaClient
	}

	// 7. services (dependency injection)
	svcs := service.NewServices(service.Deps{
		Repos:             repos,
		Cache:             cache,
		Hub:               hub,
		Publisher:         publisher,
		Caller:            calling.ComingSoon(),
		InviteCodes:       random.InviteCodeGenerator(conf.InviteCodeLength),
		InviteCodeRetries: conf.InviteCodeRetries,
		Location:          conf.MainConfig.Location(),
	})

	ctx, stop := context.WithCancel(context.Background())
	defer stop()
	if kafkaClient != nil {
		go mq.NewCallRecordConsumer(kafkaClient, svcs.CallHistory).Run(ctx)
	}

	// 8. http
	engine := https_server.Init(&conf.MainConfig, handler.NewHandlers(svcs), svcs.Session)
	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", conf.MainConfig.Host, conf.MainConfig.Port),
		Handler: engine,
	}
	go func() {
		zap.L().Info("server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zap.L().Fatal("server running fault", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zap.L().Info("shutting down")

	// streams end first so hijacked websocket connections let go
	hub.Close()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zap.L().Error("server shutdown", zap.Error(err))
	}

	stop()
	if kafkaClient != nil {
		kafkaClient.Close()
	}
	if err := cache.Client().Close(); err != nil {
		zap.L().Error("close redis", zap.Error(err))
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	zap.L().Info("server stopped")
}
