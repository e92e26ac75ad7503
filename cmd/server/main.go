package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/hibiken/asynq"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	config "github.com/maheshrc27/contentflow/configs"
	"github.com/maheshrc27/contentflow/internal/api/handlers"
	"github.com/maheshrc27/contentflow/internal/api/middleware"
	job "github.com/maheshrc27/contentflow/internal/jobs"
	"github.com/maheshrc27/contentflow/internal/late"
	applog "github.com/maheshrc27/contentflow/internal/logger"
	"github.com/maheshrc27/contentflow/internal/queue"
	"github.com/maheshrc27/contentflow/internal/ratelimit"
	"github.com/maheshrc27/contentflow/internal/repository"
	"github.com/maheshrc27/contentflow/internal/service"
	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Failed to load environment variables", err)
	}

	cfg := config.LoadConfig()

	applog.Init(applog.Opts{Env: cfg.Env, SentryDSN: cfg.SentryDSN})
	defer applog.Flush()

	db, err := sql.Open("postgres", cfg.PostgresURI)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer closeDB(db)

	if err := db.Ping(); err != nil {
		log.Fatalf("Database is unreachable: %v", err)
	}

	ctx := context.Background()

	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisURI})
	if err := rdb.Ping(ctx).Err(); err != nil {
		slog.Warn("redis unreachable, account cache disabled", "error", err.Error())
		rdb = nil
	}

	redisConn := asynq.RedisClientOpt{Addr: cfg.RedisURI}
	client := asynq.NewClient(redisConn)
	defer client.Close()

	r2Service, err := service.NewR2Service(ctx, *cfg)
	if err != nil {
		log.Fatalf("Failed to configure object storage: %v", err)
	}

	captionModel, err := service.NewGeminiCaptionModel(ctx, cfg.Gemini)
	if err != nil {
		log.Fatalf("Failed to configure caption model: %v", err)
	}
	defer captionModel.Close()

	lateClient := late.NewClient(cfg.Late.BaseURL, cfg.Late.APIKey, cfg.Late.Timeout)

	app := fiber.New(fiber.Config{
		ReadTimeout:  2 * time.Minute,
		WriteTimeout: 2 * time.Minute,
		BodyLimit:    50 * 1024 * 1024, // 50 MB
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{"success": false, "error": e.Message})
			}
			slog.Error("unhandled error", "path", c.Path(), "error", err.Error())
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"success": false,
				"error":   "Internal server error",
				"details": err.Error(),
			})
		},
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.FrontendURL,
		AllowMethods:     "GET,POST,PATCH,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
		MaxAge:           3600,
	}))

	userRepo := repository.NewUserRepository(db)
	apiKeyRepo := repository.NewApiKeyRepository(db)
	clientRepo := repository.NewClientRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	postRepo := repository.NewPostRepository(db)
	calendarRepo := repository.NewCalendarPostRepository(db)
	resolver := repository.NewPostResolver(db)
	tagRepo := repository.NewTagRepository(db)
	postTagRepo := repository.NewPostTagRepository(db)
	accountRepo := repository.NewAccountRepository(db)
	mediaAssetRepo := repository.NewMediaAssetRepository(db)
	historyRepo := repository.NewPostingHistoryRepository(db)
	portalUploadRepo := repository.NewPortalUploadRepository(db)

	authService := service.NewAuthService(*cfg, userRepo)
	userService := service.NewUserService(userRepo)
	apiKeyService := service.NewApiKeyService(apiKeyRepo)
	clientService := service.NewClientService(clientRepo, projectRepo, tagRepo)
	accountService := service.NewAccountService(clientRepo, accountRepo, lateClient, rdb)
	calendarService := service.NewCalendarService(calendarRepo, postRepo, clientRepo, historyRepo, postTagRepo,
		accountService, lateClient, queue.NewScheduler(client), cfg.Location())
	exportService := service.NewExportService(calendarService, accountRepo, postTagRepo)
	postService := service.NewPostService(db, postRepo, postTagRepo, projectRepo, clientRepo, mediaAssetRepo, r2Service)
	tagService := service.NewTagService(resolver, clientRepo, tagRepo, postTagRepo)
	captionService := service.NewCaptionService(captionModel, resolver, postRepo, calendarRepo, clientRepo)
	portalService := service.NewPortalService(projectRepo, portalUploadRepo, calendarRepo, r2Service)

	authMiddleware := middleware.NewAuthMiddleware(*cfg, apiKeyService)
	portalLimiter := ratelimit.NewInMemoryLimiter(cfg.Portal.RequestsPerMinute, time.Minute, cfg.Portal.Burst)

	auth := handlers.NewAuthHandler(*cfg, authService)
	app.Get("/login", auth.Login)
	app.Get("/login/callback", auth.LoginCallbackHandler)
	app.Post("/logout", auth.Logout)

	portal := handlers.NewPortalHandler(portalService)
	portalAPI := app.Group("/api/portal")
	portalAPI.Post("/upload/:token", middleware.PortalRateLimit(portalLimiter), portal.Upload)
	portalAPI.Get("/upload/:token", middleware.PortalRateLimit(portalLimiter), portal.ListUploads)
	portalAPI.Patch("/upload/:token", middleware.PortalRateLimit(portalLimiter), portal.UpdateNotes)
	portalAPI.Delete("/upload/:token", middleware.PortalRateLimit(portalLimiter), portal.DeleteUpload)
	portalAPI.Get("/:token/posts", middleware.PortalRateLimit(portalLimiter), portal.ListPosts)
	portalAPI.Post("/:token/approvals", middleware.PortalRateLimit(portalLimiter), portal.Approvals)

	api := app.Group("/api")
	api.Use(authMiddleware.AuthMiddleware())

	user := handlers.NewUserHandler(userService)
	api.Get("/user/info", user.GetUserInfo)

	apiKeys := handlers.NewApiKeyHandler(apiKeyService)
	api.Post("/api_key/new", apiKeys.CreateApiKey)
	api.Get("/api_key/list", apiKeys.ListKeys)
	api.Post("/api_key/remove", apiKeys.RemoveAPIKey)

	clients := handlers.NewClientHandler(clientService, accountService)
	api.Get("/clients", clients.ListClients)
	api.Post("/clients", clients.CreateClient)
	api.Get("/clients/:id/projects", clients.ListProjects)
	api.Post("/clients/:id/projects", clients.CreateProject)
	api.Get("/clients/:id/tags", clients.ListTags)
	api.Post("/clients/:id/tags", clients.CreateTag)
	api.Get("/clients/:id/accounts", clients.ListAccounts)
	api.Post("/clients/:id/accounts/sync", clients.SyncAccounts)

	post := handlers.NewPostHandler(postService)
	api.Post("/posts", post.CreatePost)
	api.Get("/posts", post.ListPosts)

	tags := handlers.NewTagHandler(tagService)
	api.Get("/posts/:postId/tags", tags.ListPostTags)
	api.Post("/posts/:postId/tags", tags.AddPostTag)
	api.Delete("/posts/:postId/tags/:tagId", tags.RemovePostTag)

	api.Patch("/posts/:id", post.UpdatePost)
	api.Delete("/posts/:id", post.RemovePost)

	calendar := handlers.NewCalendarHandler(calendarService, exportService)
	api.Get("/calendar/scheduled", calendar.ListScheduled)
	api.Post("/calendar/scheduled", calendar.CreateScheduled)
	api.Patch("/calendar/scheduled", calendar.UpdateScheduled)
	api.Delete("/calendar/scheduled", calendar.DeleteScheduled)
	api.Post("/calendar/scheduled/:id/submit", calendar.Submit)
	api.Post("/calendar/scheduled/:id/publish", calendar.PublishNow)
	api.Get("/calendar/export", calendar.Export)

	captions := handlers.NewCaptionHandler(captionService)
	api.Post("/captions/generate", captions.Generate)

	// cron jobs
	accountSyncJob := job.NewAccountSyncJob(clientRepo, accountService)

	c := cron.New()
	c.AddFunc("@every 00h30m00s", accountSyncJob.SyncAccounts)
	c.Start()
	defer c.Stop()

	//queue
	queueW := queue.NewQueue(calendarService)

	server := asynq.NewServer(redisConn, asynq.Config{
		Concurrency: 10,
		Queues:      queue.Queues(),
	})

	go func() {
		mux := asynq.NewServeMux()
		queueW.Register(mux)

		slog.Info("Starting the Asynq server...")
		if err := server.Run(mux); err != nil {
			log.Fatalf("Could not start Asynq server: %v", err)
		}
	}()

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()
	slog.Info("Server is running", "port", cfg.Port)

	gracefulShutdown(app, server)
}

func closeDB(db *sql.DB) {
	fmt.Fprint(os.Stdout, "Closing database connection... ")
	if err := db.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to close database: %v", err)
		return
	}
	fmt.Fprintln(os.Stdout, "Done")
}

func gracefulShutdown(app *fiber.App, server *asynq.Server) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	slog.Info("Shutting down server...")

	if err := app.ShutdownWithTimeout(30 * time.Second); err != nil {
		log.Fatalf("Failed to shut down server: %v", err)
	}
	server.Shutdown()

	slog.Info("Server shutdown complete.")
}
