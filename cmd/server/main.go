package main

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/eiderao/novva-recruit/internal/config"
	"github.com/eiderao/novva-recruit/internal/domain/fiber/handler"
	"github.com/eiderao/novva-recruit/internal/middleware"
	"github.com/eiderao/novva-recruit/internal/model"
	"github.com/eiderao/novva-recruit/internal/repository"
	"github.com/eiderao/novva-recruit/internal/service"
	"github.com/eiderao/novva-recruit/internal/usecase"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/healthcheck"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/pprof"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	// Load .env file
	err := godotenv.Load()
	if err != nil {
		log.Println("Could not load .env file")
	}

	appConfig := config.LoadAppConfig()

	app := fiber.New(fiber.Config{
		AppName: appConfig.Name,
		ErrorHandler: func(ctx *fiber.Ctx, err error) error {
			// Status code defaults to 500
			code := fiber.StatusInternalServerError

			// Retrieve the custom status code if it's a *fiber.Error
			var e *fiber.Error
			if errors.As(err, &e) {
				code = e.Code
			}

			message := err.Error()
			if message == "" {
				message = "Internal Server Error"
			}

			return ctx.Status(code).JSON(fiber.Map{"error": message})
		},
	})
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))
	app.Use(recover.New(recover.Config{
		EnableStackTrace: appConfig.Env != "production",
	}))

	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed, // 1
	}))
	app.Use(pprof.New(pprof.Config{
		Next: func(c *fiber.Ctx) bool {
			return config.LoadAppConfig().Env != "production"
		},
	}))
	app.Use(healthcheck.New())

	app.Use(helmet.New(helmet.Config{
		CrossOriginResourcePolicy: "cross-origin",
	}))

	app.Use(middleware.RateLimiter(50, 1*time.Minute))

	db := ConnectDB()

	jobRepo := repository.NewJobRepository(db)
	applicationRepo := repository.NewApplicationRepository(db)
	candidateRepo := repository.NewCandidateRepository(db)
	evaluationRepo := repository.NewEvaluationRepository(db)
	tenantRepo := repository.NewTenantRepository(db)
	profileRepo := repository.NewUserProfileRepository(db)

	authService := service.NewAuthService()
	storageService := service.NewStorageService()
	requireAuth := middleware.RequireAuth(authService, profileRepo)

	jobUC := usecase.NewJobUsecase(jobRepo, applicationRepo, candidateRepo, evaluationRepo, tenantRepo)
	applicationUC := usecase.NewApplicationUsecase(applicationRepo, candidateRepo, evaluationRepo, jobRepo, tenantRepo)
	evaluationUC := usecase.NewEvaluationUsecase(applicationRepo, evaluationRepo)
	adminUC := usecase.NewAdminUsecase(tenantRepo)

	handler.NewJobHandler(jobUC, requireAuth).RegisterRoutes(app)
	handler.NewApplicationHandler(applicationUC, evaluationUC, storageService, requireAuth).RegisterRoutes(app)
	handler.NewPublicHandler(applicationUC).RegisterRoutes(app)
	handler.NewAdminHandler(adminUC, requireAuth).RegisterRoutes(app)

	log.Println("Server running on ", appConfig.Port)
	if err := app.Listen(appConfig.Port); err != nil {
		log.Fatal(err)
	}
}

func ConnectDB() *gorm.DB {
	dbConfig := config.LoadDBConfig()
	appConfig := config.LoadAppConfig()

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=America/Sao_Paulo",
		dbConfig.Host,
		dbConfig.User,
		dbConfig.Password,
		dbConfig.Name,
		dbConfig.Port,
		dbConfig.SSLMode,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Could not connect to database: %v", err)
	}
	pgDB, err := db.DB()
	if err != nil {
		log.Fatalf("Could not get database instance: %v", err)
	}
	if appConfig.Env != "production" {
		pgDB.SetMaxIdleConns(5)
		pgDB.SetMaxOpenConns(10)
		pgDB.SetConnMaxLifetime(30 * time.Minute)
	} else {
		pgDB.SetMaxIdleConns(20)
		pgDB.SetMaxOpenConns(200)
		pgDB.SetConnMaxLifetime(time.Hour)
	}

	err = db.AutoMigrate(
		&model.Plan{},
		&model.Tenant{},
		&model.UserProfile{},
		&model.Job{},
		&model.Candidate{},
		&model.Application{},
		&model.Evaluation{},
	)
	if err != nil {
		log.Fatal("migration failed: ", err)
	}

	seedPlans(db)
	return db
}

// seedPlans guarantees the two commercial plans exist; limits are edited
// directly in the database when pricing changes.
func seedPlans(db *gorm.DB) {
	plans := []model.Plan{
		{ID: "free", Name: "Free", JobLimit: 3, CandidateLimit: 50},
		{ID: "pro", Name: "Pro", JobLimit: model.Unlimited, CandidateLimit: model.Unlimited},
	}
	for _, plan := range plans {
		if err := db.Where(model.Plan{ID: plan.ID}).FirstOrCreate(&plan).Error; err != nil {
			log.Fatal("plan seed failed: ", err)
		}
	}
}
