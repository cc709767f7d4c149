package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/SidorenkoTatiana/foodgram-st/docs"
	"github.com/SidorenkoTatiana/foodgram-st/internal/config"
	"github.com/SidorenkoTatiana/foodgram-st/internal/facades"
	"github.com/SidorenkoTatiana/foodgram-st/internal/handlers"
	"github.com/SidorenkoTatiana/foodgram-st/internal/jwt"
	"github.com/SidorenkoTatiana/foodgram-st/internal/logger"
	"github.com/SidorenkoTatiana/foodgram-st/internal/media"
	"github.com/SidorenkoTatiana/foodgram-st/internal/middlewares"
	"github.com/SidorenkoTatiana/foodgram-st/internal/models"
	"github.com/SidorenkoTatiana/foodgram-st/internal/repositories"
	"github.com/SidorenkoTatiana/foodgram-st/internal/services"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title Foodgram API
// @version 1.0.0
// @description Recipe sharing service: recipes, favorites, shopping lists and subscriptions
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Version: %s\nCommit: %s\nDate: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// run connects PostgreSQL, Redis and Kafka, serves HTTP and shuts down
// gracefully on SIGINT, SIGTERM or SIGQUIT.
func run(ctx context.Context, cfg *config.Config) error {
	if err := logger.Initialize(cfg.App.LogLevel, cfg.App.Debug); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.App.LogLevel)

	// Connect to PostgreSQL
	logger.Log.Infof("Connecting to PostgreSQL at %s:%d/%s", cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.DB)
	db, err := sqlx.ConnectContext(ctx, "pgx", cfg.Postgres.DSN())
	if err != nil {
		return fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.Postgres.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Postgres.MaxIdleConns)

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.Redis.Addr(),
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		PoolSize:     cfg.Redis.PoolSize,
		MinIdleConns: cfg.Redis.MinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis connection error: %w", err)
	}
	defer rdb.Close()

	// Kafka is optional
	var writer facades.KafkaWriter
	if w := facades.NewKafkaWriter(cfg.Kafka.Brokers, cfg.Kafka.Topic); w != nil {
		logger.Log.Infof("Publishing events to topic %s", cfg.Kafka.Topic)
		writer = w
	}
	events := facades.NewEventsKafkaFacade(writer)
	defer events.Close()

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%s", cfg.App.Host, cfg.App.Port),
		Handler:           newRouter(cfg, db, rdb, events),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}

// newRouter wires repositories, services and handlers into the HTTP routes.
func newRouter(cfg *config.Config, db *sqlx.DB, rdb *redis.Client, events services.EventPublisher) http.Handler {
	// Initialize infrastructure
	tokens := jwt.New(jwt.WithSecretKey(cfg.JWT.SecretKey), jwt.WithExpiration(cfg.JWT.Expiration))
	images := media.NewLocalStorage(cfg.Media.Root, cfg.Media.BaseURL)

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db, middlewares.GetTxFromContext)
	ingredientRepo := repositories.NewIngredientRepository(db, middlewares.GetTxFromContext)
	recipeRepo := repositories.NewRecipeRepository(db, middlewares.GetTxFromContext)
	relationRepo := repositories.NewRelationRepository(db, middlewares.GetTxFromContext)
	shoppingListRepo := repositories.NewShoppingListRepository(db, middlewares.GetTxFromContext)
	shortLinkRepo := repositories.NewShortLinkRepository(rdb, cfg.ShortLink.Expiration)

	// Initialize services
	authService := services.NewAuthService(userRepo, tokens)
	userService := services.NewUserService(userRepo, images)
	subscriptionService := services.NewSubscriptionService(relationRepo, userRepo, recipeRepo, images, events)
	ingredientService := services.NewIngredientService(ingredientRepo)
	recipeService := services.NewRecipeService(recipeRepo, ingredientRepo, images, events)
	relationService := services.NewRecipeRelationService(relationRepo, recipeRepo, images, events)
	shoppingListService := services.NewShoppingListService(shoppingListRepo, time.Now)
	shortLinkService := services.NewShortLinkService(shortLinkRepo, recipeRepo, cfg.App.BaseURL)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware)
	r.Use(chimiddleware.StripSlashes)

	authRequired := middlewares.AuthMiddleware(tokens)
	authOptional := middlewares.OptionalAuthMiddleware(tokens)
	tx := middlewares.TxMiddleware(db)

	r.Route("/api", func(r chi.Router) {
		// Public routes
		r.Group(func(r chi.Router) {
			r.With(tx).Post("/users", handlers.NewRegisterHandler(authService))
			r.Post("/auth/token/login", handlers.NewLoginHandler(authService))
			r.Get("/ingredients", handlers.NewListIngredientsHandler(ingredientService))
			r.Get("/ingredients/{id:[0-9]+}", handlers.NewGetIngredientHandler(ingredientService))
		})

		// Anonymous or authenticated readers
		r.Group(func(r chi.Router) {
			r.Use(authOptional)
			r.Get("/users", handlers.NewListUsersHandler(userService))
			r.Get("/users/{id:[0-9]+}", handlers.NewGetUserHandler(userService))
			r.Get("/recipes", handlers.NewListRecipesHandler(recipeService))
			r.Get("/recipes/{id:[0-9]+}", handlers.NewGetRecipeHandler(recipeService))
			r.Get("/recipes/{id:[0-9]+}/get-link", handlers.NewGetLinkHandler(shortLinkService))
		})

		// Authenticated reads
		r.Group(func(r chi.Router) {
			r.Use(authRequired)
			r.Get("/users/me", handlers.NewMeHandler(userService))
			r.Get("/users/subscriptions", handlers.NewListSubscriptionsHandler(subscriptionService))
			r.Get("/recipes/download_shopping_cart", handlers.NewDownloadShoppingCartHandler(shoppingListService))
			r.Post("/auth/token/logout", handlers.NewLogoutHandler())
		})

		// Authenticated writes, one transaction per request
		r.Group(func(r chi.Router) {
			r.Use(authRequired)
			r.Use(tx)
			r.Post("/users/set_password", handlers.NewSetPasswordHandler(authService))
			r.Put("/users/me/avatar", handlers.NewSetAvatarHandler(userService))
			r.Delete("/users/me/avatar", handlers.NewDeleteAvatarHandler(userService))
			r.Post("/users/{id:[0-9]+}/subscribe", handlers.NewSubscribeHandler(subscriptionService))
			r.Delete("/users/{id:[0-9]+}/subscribe", handlers.NewUnsubscribeHandler(subscriptionService))

			r.Post("/recipes", handlers.NewCreateRecipeHandler(recipeService))
			r.Patch("/recipes/{id:[0-9]+}", handlers.NewUpdateRecipeHandler(recipeService))
			r.Delete("/recipes/{id:[0-9]+}", handlers.NewDeleteRecipeHandler(recipeService))
			r.Post("/recipes/{id:[0-9]+}/favorite", handlers.NewAddRecipeRelationHandler(relationService, models.RelationFavorite))
			r.Delete("/recipes/{id:[0-9]+}/favorite", handlers.NewRemoveRecipeRelationHandler(relationService, models.RelationFavorite))
			r.Post("/recipes/{id:[0-9]+}/shopping_cart", handlers.NewAddRecipeRelationHandler(relationService, models.RelationShoppingCart))
			r.Delete("/recipes/{id:[0-9]+}/shopping_cart", handlers.NewRemoveRecipeRelationHandler(relationService, models.RelationShoppingCart))
		})
	})

	r.Get("/s/{code}", handlers.NewShortLinkRedirectHandler(shortLinkService))
	r.Handle("/media/*", http.StripPrefix("/media/", http.FileServer(http.Dir(images.Root()))))

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(cfg.App.BaseURL+"/swagger/doc.json"),
	))

	return r
}
