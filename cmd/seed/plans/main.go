package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/liftcal/liftcal/internal/config"
	"github.com/liftcal/liftcal/internal/domain"
	"github.com/liftcal/liftcal/internal/middleware"
	"github.com/liftcal/liftcal/internal/repository"
	"github.com/liftcal/liftcal/internal/service"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Seeds the built-in default week of plans for one user. Does nothing if
// the user already has any plan stored.
func main() {
	userID := flag.String("user", "", "user ID to seed plans for")
	flag.Parse()
	if *userID == "" {
		log.Fatal("usage: seed-plans -user <user-id>")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	var planRepo domain.PlanRepository

	switch cfg.Store.Backend {
	case config.BackendFirestore:
		firebaseApp, err := middleware.InitFirebase(
			cfg.Firebase.ProjectID,
			cfg.Firebase.PrivateKey,
			cfg.Firebase.ClientEmail,
		)
		if err != nil {
			log.Fatalf("Failed to initialize Firebase: %v", err)
		}
		firestoreClient, err := firebaseApp.Firestore(ctx)
		if err != nil {
			log.Fatalf("Failed to create Firestore client: %v", err)
		}
		defer firestoreClient.Close()
		planRepo = repository.NewFirestorePlanRepository(firestoreClient)

	case config.BackendMongo:
		client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoDB.URI))
		if err != nil {
			log.Fatalf("Failed to connect to Mongo: %v", err)
		}
		defer client.Disconnect(ctx)
		planRepo = repository.NewMongoPlanRepository(client.Database(cfg.MongoDB.Database))

	default:
		log.Fatalf("seeding requires a persistent backend, got %q", cfg.Store.Backend)
	}

	seeded, err := service.NewPlanService(planRepo).Bootstrap(ctx, *userID)
	if err != nil {
		log.Fatalf("Failed to seed plans: %v", err)
	}
	if !seeded {
		log.Printf("User %s already has plans, nothing to do", *userID)
		return
	}
	log.Printf("✓ Seeded %d default plans for user %s", len(domain.DefaultPlans()), *userID)
}
