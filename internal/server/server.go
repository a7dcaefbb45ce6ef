package server

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/liftcal/liftcal/internal/config"
	"github.com/liftcal/liftcal/internal/domain"
	"github.com/liftcal/liftcal/internal/handler"
	"github.com/liftcal/liftcal/internal/middleware"
	"github.com/liftcal/liftcal/internal/repository"
	"github.com/liftcal/liftcal/internal/service"
	"github.com/liftcal/liftcal/internal/telemetry"
	"github.com/redis/go-redis/v9"
)

// idempotencyTTL bounds how long a replayed mutation response stays valid.
const idempotencyTTL = 10 * time.Minute

// AppDependencies holds the dependencies required to start the application.
// Repositories come in as interfaces so tests can run on the in-memory
// backend; RedisClient and ExportStore are optional.
type AppDependencies struct {
	Config      *config.Config
	WorkoutRepo domain.WorkoutRepository
	PlanRepo    domain.PlanRepository
	RedisClient *redis.Client
	ExportStore service.ExportStore
	AuthClient  service.FirebaseAuthClient
}

// NewApp creates and configures the Fiber application with the given dependencies
func NewApp(deps AppDependencies) *fiber.App {
	var cache domain.CacheRepository
	if deps.RedisClient != nil {
		cache = repository.NewRedisCacheRepository(deps.RedisClient)
	}

	// Initialize services
	workoutService := service.NewWorkoutService(deps.WorkoutRepo, deps.PlanRepo, cache)
	planService := service.NewPlanService(deps.PlanRepo)
	progressService := service.NewProgressService(deps.WorkoutRepo, cache)
	authService := service.NewAuthService(deps.AuthClient, deps.Config.JWT.Secret)

	var backupService *service.BackupService
	if deps.ExportStore != nil {
		backupService = service.NewBackupService(deps.WorkoutRepo, deps.PlanRepo, deps.ExportStore)
	}

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	workoutHandler := handler.NewWorkoutHandler(workoutService)
	planHandler := handler.NewPlanHandler(planService)
	progressHandler := handler.NewProgressHandler(progressService)
	backupHandler := handler.NewBackupHandler(backupService)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "LiftCal API",
		ErrorHandler: customErrorHandler,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, X-Correlation-ID",
		AllowMethods: "GET, POST, PUT, PATCH, DELETE, OPTIONS",
	}))
	if deps.Config.OTEL.Enabled {
		app.Use(telemetry.FiberMiddleware())
	}
	if deps.RedisClient != nil {
		app.Use(middleware.IdempotencyMiddleware(deps.RedisClient, idempotencyTTL))
	}

	// Health check endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "healthy",
			"service": "liftcal",
		})
	})

	// API v1 routes
	v1 := app.Group("/v1")

	// Auth endpoints (public)
	auth := v1.Group("/auth")
	auth.Post("/login", authHandler.Login)

	// Everything below carries a session token
	authed := v1.Group("", middleware.VerifySessionToken(deps.Config.JWT.Secret))

	workouts := authed.Group("/workouts")
	workouts.Get("/", workoutHandler.GetHistory)
	workouts.Get("/:date", workoutHandler.GetWorkout)
	workouts.Put("/:date", workoutHandler.SaveWorkout)
	workouts.Delete("/:date", workoutHandler.DeleteWorkout)
	workouts.Post("/:date/apply-template", workoutHandler.ApplyTemplate)
	workouts.Post("/:date/sync-plan", workoutHandler.SyncPlan)
	workouts.Post("/:date/reorder", workoutHandler.ReorderExercises)
	workouts.Patch("/:date/exercises/:idx/reps", workoutHandler.UpdateReps)
	workouts.Patch("/:date/exercises/:idx/weight", workoutHandler.UpdateWeight)
	workouts.Patch("/:date/exercises/:idx/name", workoutHandler.RenameExercise)
	workouts.Delete("/:date/exercises/:idx", workoutHandler.RemoveExercise)

	plans := authed.Group("/plans")
	plans.Get("/", planHandler.GetAllPlans)
	plans.Post("/bootstrap", planHandler.Bootstrap)
	plans.Get("/:day", planHandler.GetPlan)
	plans.Put("/:day", planHandler.SavePlan)
	plans.Delete("/:day", planHandler.DeletePlan)
	plans.Patch("/:day/exercises/:idx/reps", planHandler.UpdateReps)
	plans.Patch("/:day/exercises/:idx/weight", planHandler.UpdateWeight)

	progress := authed.Group("/progress")
	progress.Get("/", progressHandler.GetProgress)
	progress.Get("/exercises", progressHandler.GetExerciseNames)
	progress.Get("/reps", progressHandler.GetRepSeries)

	authed.Post("/export", backupHandler.Export)

	return app
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}
	log.Printf("Error: %v", err)
	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
	})
}
