package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"

	"github.com/AbdullahAbukalaf/real-estate-reign/booking"
	"github.com/AbdullahAbukalaf/real-estate-reign/catalog"
	"github.com/AbdullahAbukalaf/real-estate-reign/config"
	"github.com/AbdullahAbukalaf/real-estate-reign/notify"
	"github.com/AbdullahAbukalaf/real-estate-reign/routes"
	"github.com/AbdullahAbukalaf/real-estate-reign/storage"
	"github.com/AbdullahAbukalaf/real-estate-reign/store"
)

func loadEnv(log *logrus.Logger) {
	if err := godotenv.Load(); err != nil {
		log.Infof("No .env file loaded: %v", err)
	}
}

func loadCatalog(ctx context.Context, cfg config.Settings, log *logrus.Logger) (*catalog.Catalog, error) {
	if cfg.MongoURI == "" {
		log.Info("Using bundled seed catalog")
		return catalog.Seed(), nil
	}

	client, err := catalog.ConnectMongo(ctx, cfg.MongoURI)
	if err != nil {
		return nil, err
	}
	// The dataset is immutable after load, so the connection is only needed
	// during startup.
	defer func() {
		if err := client.Disconnect(ctx); err != nil {
			log.Warnf("Error closing MongoDB connection: %v", err)
		}
	}()

	cat, err := catalog.LoadMongo(ctx, client, cfg.DBName)
	if err != nil {
		return nil, err
	}
	log.Infof("Loaded %d properties from MongoDB", cat.Len())
	return cat, nil
}

func openKV(cfg config.Settings, log *logrus.Logger) storage.KV {
	if cfg.RedisAddr == "" {
		log.Warn("REDIS_ADDR not set; favorites and session will not survive a restart")
		return storage.NewMemoryKV()
	}

	client, err := config.InitRedis(cfg.RedisAddr, cfg.RedisPass)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	log.Info("Connected to Redis")
	return storage.NewRedisKV(client)
}

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	loadEnv(log)
	cfg := config.Load()

	startupCtx, cancelStartup := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancelStartup()

	cat, err := loadCatalog(startupCtx, cfg, log)
	if err != nil {
		log.Fatalf("Failed to load listing catalog: %v", err)
	}

	kv := openKV(cfg, log)
	notifier := notify.NewLog(log)

	favorites := store.NewFavorites(startupCtx, kv, notifier, log)
	sessions := store.NewSessions(startupCtx, kv, log)
	submitter := booking.NewSimulatedSubmitter(cfg.SubmitDelay, notifier, log)

	router := mux.NewRouter()
	routes.Routes(router, routes.Deps{
		Catalog:   cat,
		Favorites: favorites,
		Sessions:  sessions,
		Submitter: submitter,
		Log:       log,
	})

	corsOptions := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	})
	handler := corsOptions.Handler(router)

	server := &http.Server{
		Addr:           ":" + cfg.Port,
		Handler:        handler,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	go func() {
		log.Infof("Server running on port %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Error starting server: %v", err)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt)
	<-sigCh

	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Error during server shutdown: %v", err)
	}
	log.Info("Server gracefully stopped")
}
