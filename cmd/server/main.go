package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/brandlab/positioning-api/internal/config"
	"github.com/brandlab/positioning-api/internal/domain/fiber/handler"
	"github.com/brandlab/positioning-api/internal/middleware"
	"github.com/brandlab/positioning-api/internal/model"
	"github.com/brandlab/positioning-api/internal/repository"
	"github.com/brandlab/positioning-api/internal/service"
	"github.com/brandlab/positioning-api/internal/usecase"
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
	ctx := context.Background()
	if err := godotenv.Load(); err != nil {
		log.Println("Could not load .env file")
	}

	appConfig := config.LoadAppConfig()

	app := fiber.New(fiber.Config{
		AppName: appConfig.Name,
		ErrorHandler: func(ctx *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
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
		Level: compress.LevelBestSpeed,
	}))
	app.Use(pprof.New(pprof.Config{
		Next: func(c *fiber.Ctx) bool {
			return appConfig.Env == "production"
		},
	}))
	app.Use(healthcheck.New())
	app.Use(helmet.New(helmet.Config{
		CrossOriginResourcePolicy: "cross-origin",
	}))
	app.Use(middleware.RateLimiter(100, 1*time.Minute))

	db := ConnectDB()

	profileRepo := repository.NewProfileRepository(db)
	interviewRepo := repository.NewInterviewRepository(db)
	batchRepo := repository.NewBatchRepository(db)

	textModel, chatModel := buildModels(ctx, appConfig.AIProvider)

	interviewUC := usecase.NewInterviewUsecase(interviewRepo, chatModel)
	processorUC := usecase.NewProcessorUsecase(batchRepo, textModel)

	api := app.Group("/api", middleware.Auth(profileRepo))
	handler.NewInterviewHandler(interviewUC).RegisterRoutes(api)
	handler.NewChatHandler(interviewUC).RegisterRoutes(api)
	handler.NewProcessorHandler(processorUC).RegisterRoutes(api)
	handler.NewExportHandler(interviewUC).RegisterRoutes(api)
	handler.NewAdminHandler(interviewUC, profileRepo).RegisterRoutes(api)

	log.Println("Server running on ", appConfig.Port)
	if err := app.Listen(appConfig.Port); err != nil {
		log.Fatal(err)
	}
}

// buildModels selects the model gateway. Both providers satisfy the same
// interfaces so the rest of the app never knows which one is live.
func buildModels(ctx context.Context, provider string) (service.TextModel, service.ChatModel) {
	switch provider {
	case "openrouter":
		or := service.NewOpenRouterService()
		return or, or
	default:
		gemini, err := service.NewGeminiService(ctx)
		if err != nil {
			log.Fatal(err)
		}
		return gemini, gemini
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
		&model.Profile{},
		&model.Interview{},
		&model.InterviewMessage{},
		&model.BatchJob{},
		&model.BatchItem{},
	)
	if err != nil {
		log.Fatal("migration failed: ", err)
	}
	return db
}
