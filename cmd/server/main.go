package main

import (
	"fmt"
	"log"
	"net/http"

	"cloudbox/internal/config"
	"cloudbox/internal/handler"
	"cloudbox/internal/ingest/firehose"
	"cloudbox/internal/repository/dynamo"
	"cloudbox/internal/router"
	"cloudbox/internal/service"
	s3storage "cloudbox/internal/storage/s3"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize gateways
	storage, err := s3storage.NewS3Client(&cfg.AWS)
	if err != nil {
		return fmt.Errorf("failed to initialize S3 client: %w", err)
	}
	repo, err := dynamo.NewFileMetadataRepo(&cfg.AWS, &cfg.Dynamo)
	if err != nil {
		return fmt.Errorf("failed to initialize DynamoDB client: %w", err)
	}
	ingest, err := firehose.NewFirehoseClient(&cfg.AWS, &cfg.Firehose)
	if err != nil {
		return fmt.Errorf("failed to initialize Firehose client: %w", err)
	}

	// Initialize services
	verifier := service.NewTokenVerifier(cfg.Auth)
	fileSvc := service.NewFileService(repo, storage, ingest, &cfg.S3)

	// Initialize handlers
	fileH := handler.NewFileHandler(fileSvc, &cfg.S3)
	healthH := handler.NewHealthHandler(repo)

	// Setup router
	r := router.Setup(verifier, cfg.Auth, fileH, healthH)

	srv := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := srv.ListenAndServe(); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
