package main

import (
	"context"
	"encoding/base64"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/liftcal/liftcal/internal/config"
	"github.com/liftcal/liftcal/internal/domain"
	"github.com/liftcal/liftcal/internal/middleware"
	"github.com/liftcal/liftcal/internal/repository"
	"github.com/liftcal/liftcal/internal/server"
	"github.com/liftcal/liftcal/internal/service"
	"github.com/liftcal/liftcal/internal/telemetry"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.opentelemetry.io/contrib/instrumentation/go.mongodb.org/mongo-driver/mongo/otelmongo"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	log.Println("Starting LiftCal API...")

	ctx := context.Background()

	// Grafana Cloud requires Basic auth with instanceId:apiToken base64 encoded
	authString := cfg.OTEL.InstanceID + ":" + cfg.OTEL.Token
	authEncoded := base64.StdEncoding.EncodeToString([]byte(authString))

	otelProvider, err := telemetry.Initialize(ctx, telemetry.Config{
		ServiceName:    cfg.OTEL.ServiceName,
		ServiceVersion: cfg.OTEL.ServiceVersion,
		Environment:    cfg.OTEL.Environment,
		OTLPEndpoint:   cfg.OTEL.Endpoint,
		OTLPHeaders: map[string]string{
			"Authorization": "Basic " + authEncoded,
		},
		Enabled: cfg.OTEL.Enabled,
	})
	if err != nil {
		log.Printf("Warning: Failed to initialize OpenTelemetry: %v", err)
	}
	if otelProvider != nil {
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			otelProvider.Shutdown(shutdownCtx)
		}()
	}

	// Initialize Firebase; the same credentials back token verification and
	// the firestore store backend.
	firebaseApp, err := middleware.InitFirebase(
		cfg.Firebase.ProjectID,
		cfg.Firebase.PrivateKey,
		cfg.Firebase.ClientEmail,
	)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase: %v", err)
	}

	authClient, err := firebaseApp.Auth(ctx)
	if err != nil {
		log.Fatalf("Failed to get Firebase Auth client: %v", err)
	}
	log.Println("✓ Firebase initialized")

	// Select the store backend
	var workoutRepo domain.WorkoutRepository
	var planRepo domain.PlanRepository

	switch cfg.Store.Backend {
	case config.BackendFirestore:
		firestoreClient, err := firebaseApp.Firestore(ctx)
		if err != nil {
			log.Fatalf("Failed to create Firestore client: %v", err)
		}
		defer firestoreClient.Close()

		workoutRepo = repository.NewFirestoreWorkoutRepository(firestoreClient)
		planRepo = repository.NewFirestorePlanRepository(firestoreClient)
		log.Println("✓ Firestore backend selected")

	case config.BackendMongo:
		ctxMongo, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		mongoOpts := options.Client().ApplyURI(cfg.MongoDB.URI)
		if cfg.OTEL.Enabled {
			mongoOpts.SetMonitor(otelmongo.NewMonitor())
		}

		mongoClient, err := mongo.Connect(ctxMongo, mongoOpts)
		if err != nil {
			log.Fatalf("Failed to connect to MongoDB: %v", err)
		}
		defer func() {
			if err := mongoClient.Disconnect(context.Background()); err != nil {
				log.Printf("Error disconnecting from MongoDB: %v", err)
			}
		}()

		if err := mongoClient.Ping(ctxMongo, nil); err != nil {
			log.Fatalf("Failed to ping MongoDB: %v", err)
		}

		mongoDB := mongoClient.Database(cfg.MongoDB.Database)
		workoutRepo = repository.NewMongoWorkoutRepository(mongoDB)
		planRepo = repository.NewMongoPlanRepository(mongoDB)
		log.Println("✓ MongoDB backend connected")

	case config.BackendMemory:
		workoutRepo = repository.NewInMemoryWorkoutRepository()
		planRepo = repository.NewInMemoryPlanRepository()
		log.Println("✓ In-memory backend selected (data is not persisted)")
	}

	// Connect to Redis
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       0,
	})
	defer redisClient.Close()

	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	log.Println("✓ Redis connected")

	// Optional S3 export storage
	var exportStore service.ExportStore
	if cfg.S3.Enabled {
		s3Repo, err := repository.NewS3ExportRepository(ctx, cfg.S3)
		if err != nil {
			log.Printf("Warning: Failed to initialize S3 export storage: %v", err)
		} else {
			exportStore = s3Repo
			log.Println("✓ S3 export storage ready")
		}
	}

	app := server.NewApp(server.AppDependencies{
		Config:      cfg,
		WorkoutRepo: workoutRepo,
		PlanRepo:    planRepo,
		RedisClient: redisClient,
		ExportStore: exportStore,
		AuthClient:  authClient,
	})

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan
		log.Println("Shutting down gracefully...")
		app.Shutdown()
	}()

	// Start server
	log.Printf("🚀 Server starting on port %s", cfg.Server.Port)
	if err := app.Listen(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
