package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/SamandarAsiydinov/FirestoreFull/internal/api/grpc/router"
	grpcServer "github.com/SamandarAsiydinov/FirestoreFull/internal/api/grpc/server"
	"github.com/SamandarAsiydinov/FirestoreFull/internal/config"
	"github.com/SamandarAsiydinov/FirestoreFull/internal/logger"
	"github.com/SamandarAsiydinov/FirestoreFull/internal/model"
	"github.com/SamandarAsiydinov/FirestoreFull/internal/server"
	"github.com/SamandarAsiydinov/FirestoreFull/internal/service"
	storage "github.com/SamandarAsiydinov/FirestoreFull/internal/storage/minio"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)

	collection, closeStore, err := openCollection(ctx, cfg)
	if err != nil {
		logger.Fatal("failed to initialize collection", "backend", cfg.Store.Backend, "error", err)
	}
	defer func() {
		if err := closeStore(); err != nil {
			logger.Error("failed to close collection", "backend", cfg.Store.Backend, "error", err)
		}
	}()
	logger.Info("collection ready", "backend", cfg.Store.Backend, "collection", cfg.Store.Collection)

	var archive model.Storage
	if cfg.Storage.Enabled {
		archive, err = storage.Dial(ctx, storage.Options{
			Endpoint:  cfg.Storage.Endpoint,
			AccessKey: cfg.Storage.AccessKey,
			SecretKey: cfg.Storage.SecretKey,
			UseSSL:    cfg.Storage.UseSSL,
			Bucket:    cfg.Storage.Bucket,
		})
		if err != nil {
			logger.Fatal("failed to initialize storage client", "error", err)
		}
	}

	personService := service.NewPersonRepository(
		collection,
		archive,
		cfg.Store.MutationConcurrency,
		logger.Component("person"),
	)

	r := router.New(personService, logger)
	grpcServer := grpcServer.NewGRPCServer(r.Register(), fmt.Sprintf(":%s", cfg.GRPC.Port))
	sl := server.NewSecurityLayer(cfg.GRPC.EnableHTTPS, cfg.GRPC.CertFileName, cfg.GRPC.PrivateKeyFileName)

	var wg sync.WaitGroup
	wg.Add(1)
	go func(s model.Server) {
		defer wg.Done()
		logger.Info("Starting server on", "address", s.Address(), "tls", cfg.GRPC.EnableHTTPS)
		if err := s.Start(sl); err != nil {
			logger.Error("failed to start server", "error", err)
			stop()
		}
	}(grpcServer)

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")
	r.Shutdown()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := grpcServer.Stop(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", grpcServer.Address())
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}
