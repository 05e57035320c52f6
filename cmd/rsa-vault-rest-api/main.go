// Package main is the entry point for the rsa-vault-rest-api application.
// It loads configuration, wires the cryptographic core, repositories and
// application services together and serves the versioned REST API with
// graceful shutdown.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	v1 "rsa_vault_service/internal/api/rest/v1"
	"rsa_vault_service/internal/app"
	"rsa_vault_service/internal/domain/keys"
	"rsa_vault_service/internal/infrastructure/cryptography"
	"rsa_vault_service/internal/infrastructure/keycodec"
	"rsa_vault_service/internal/infrastructure/persistence"
	"rsa_vault_service/internal/infrastructure/persistence/models"
	"rsa_vault_service/internal/pkg/config"
	"rsa_vault_service/internal/pkg/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "./configs/rest-app.yaml"
	}

	restConfig, err := config.InitializeRestConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	if err := logger.InitLogger(&restConfig.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log, err := logger.GetLogger()
	if err != nil {
		return fmt.Errorf("failed to get logger: %w", err)
	}

	services, err := initializeServices(restConfig, log)
	if err != nil {
		return fmt.Errorf("failed to initialize services: %w", err)
	}

	return startServerWithGracefulShutdown(restConfig, services, log)
}

// appServices holds all initialized application services
type appServices struct {
	generation keys.KeyPairGenerationService
	metadata   keys.KeyPairMetadataService
	material   keys.KeyPairMaterialService
	crypto     keys.PayloadCryptoService
}

// initializeServices sets up the database, the cryptographic core and the
// application services on top of them
func initializeServices(cfg *config.RestConfig, log logger.Logger) (*appServices, error) {
	db, err := persistence.NewDBConnection(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}

	if err := db.AutoMigrate(&models.KeyPairModel{}); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}
	log.Info("Database migrations completed successfully")

	keyPairRepo, err := persistence.NewGormKeyPairRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create key pair repository: %w", err)
	}

	// nil reader selects crypto/rand
	builder, err := cryptography.NewKeyPairBuilder(nil, &cfg.RSA, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create key pair builder: %w", err)
	}

	engine, err := cryptography.NewCryptoEngine(nil, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create crypto engine: %w", err)
	}

	codec, err := keycodec.NewJSONKeyCodec(log)
	if err != nil {
		return nil, fmt.Errorf("failed to create key codec: %w", err)
	}

	generationService, err := app.NewKeyPairGenerationService(builder, codec, keyPairRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create generation service: %w", err)
	}

	metadataService, err := app.NewKeyPairMetadataService(keyPairRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create metadata service: %w", err)
	}

	materialService, err := app.NewKeyPairMaterialService(keyPairRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create material service: %w", err)
	}

	cryptoService, err := app.NewPayloadCryptoService(engine, codec, keyPairRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create crypto service: %w", err)
	}

	log.Info("Application services initialized successfully")
	return &appServices{
		generation: generationService,
		metadata:   metadataService,
		material:   materialService,
		crypto:     cryptoService,
	}, nil
}

// startServerWithGracefulShutdown starts the HTTP server and handles
// graceful shutdown
func startServerWithGracefulShutdown(cfg *config.RestConfig, services *appServices, log logger.Logger) error {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	v1.SetupRoutes(r,
		services.generation,
		services.metadata,
		services.material,
		services.crypto,
		cfg.RSA.DefaultKeySize,
	)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attack
	}

	serverErrors := make(chan error, 1)

	go func() {
		log.Info("Starting server on port ", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- fmt.Errorf("server failed to start: %w", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return err
	case sig := <-quit:
		log.Info("Received signal ", sig, ", initiating graceful shutdown")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	log.Info("Shutting down server...")
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("Server stopped gracefully")
	return nil
}
