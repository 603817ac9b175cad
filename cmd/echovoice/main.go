package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	handlers "EchoVoice/internal/handler"
	"EchoVoice/internal/models"
	"EchoVoice/pkg/config"
	"EchoVoice/pkg/logger"
	"EchoVoice/pkg/metrics"
	"EchoVoice/pkg/scheduler"
	stores "EchoVoice/pkg/storage"
	"EchoVoice/pkg/util"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func main() {
	if err := config.Load(); err != nil {
		panic(err)
	}
	log := logger.New(config.GlobalConfig.Log)
	defer log.Sync()

	db, err := util.NewDatabase(&gorm.Config{}, config.GlobalConfig.DBDriver, config.GlobalConfig.DSN)
	if err != nil {
		log.Fatal("open database", zap.Error(err))
	}
	if err := db.AutoMigrate(&models.ClonedVoice{}); err != nil {
		log.Fatal("migrate database", zap.Error(err))
	}

	store := stores.New(config.GlobalConfig.StorageDriver)

	if config.GlobalConfig.Mode != "" {
		gin.SetMode(config.GlobalConfig.Mode)
	}
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(metrics.New(nil).Middleware())

	handlers.NewHandlers(db, store, config.GlobalConfig.APIPassword, log).Register(engine)

	var cr *scheduler.Cron
	if config.GlobalConfig.SweepSchedule != "" {
		cr = scheduler.NewCron(nil)
		grace := time.Duration(config.GlobalConfig.SweepGraceMinutes) * time.Minute
		sweeper := scheduler.NewSweeper(db, store, grace, log)
		if _, err := cr.Add(config.GlobalConfig.SweepSchedule, sweeper); err != nil {
			log.Fatal("schedule orphan sweep", zap.Error(err))
		}
		cr.Start()
		log.Info("orphan sweep scheduled",
			zap.String("schedule", config.GlobalConfig.SweepSchedule),
			zap.Int64("grace_minutes", config.GlobalConfig.SweepGraceMinutes))
	}

	srv := &http.Server{Addr: config.GlobalConfig.Addr, Handler: engine}

	go func() {
		log.Info("listening", zap.String("addr", config.GlobalConfig.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")
	if cr != nil {
		cr.Stop()
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("shutdown", zap.Error(err))
	}
}
