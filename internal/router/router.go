package router

import (
	"log"
	"net/http"

	"github.com/VictoriaMetrics/metrics"
	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/web-project/backend/internal/handlers"
	"github.com/web-project/backend/internal/middleware"
	"github.com/web-project/backend/internal/repositories"
	"github.com/web-project/backend/internal/store"
	"github.com/web-project/backend/internal/views"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
	log.Println("Global middleware configured.")
}

// SetupRoutes configures all application routes and injects dependencies
func SetupRoutes(e *echo.Echo, st *store.Store) {
	e.Renderer = views.NewRenderer()

	// One request at a time against the shared store.
	e.Use(middleware.Serialize(st))
	e.Use(middleware.RequestMetrics())

	e.GET("/health", handlers.HealthCheck)
	e.GET("/metrics", func(c echo.Context) error {
		c.Response().Header().Set(echo.HeaderContentType, "text/plain; charset=utf-8")
		c.Response().WriteHeader(http.StatusOK)
		metrics.WritePrometheus(c.Response(), true)
		return nil
	})

	// --- Initialize Repositories ---
	userRepo := repositories.NewJSONUserRepository(st)
	postRepo := repositories.NewJSONPostRepository(st)
	categoryRepo := repositories.NewJSONCategoryRepository(st)
	commentRepo := repositories.NewJSONCommentRepository(st)
	favoriteRepo := repositories.NewJSONFavoriteRepository(st)
	subscriptionRepo := repositories.NewJSONSubscriptionRepository(st)

	// --- JSON API ---
	api := e.Group("/api")
	api.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"message": "Blog API is working!"})
	})

	userHandler := handlers.NewUserHandler(userRepo)
	userHandler.RegisterUserRoutes(api)
	log.Println("User routes configured.")

	postHandler := handlers.NewPostHandler(postRepo, userRepo)
	postHandler.RegisterPostRoutes(api)
	log.Println("Post routes configured.")

	categoryHandler := handlers.NewCategoryHandler(categoryRepo)
	categoryHandler.RegisterCategoryRoutes(api)
	log.Println("Category routes configured.")

	commentHandler := handlers.NewCommentHandler(commentRepo, postRepo, userRepo)
	commentHandler.RegisterCommentRoutes(api)
	log.Println("Comment routes configured.")

	favoriteHandler := handlers.NewFavoriteHandler(favoriteRepo, userRepo, postRepo)
	favoriteHandler.RegisterFavoriteRoutes(api)
	log.Println("Favorite routes configured.")

	subscriptionHandler := handlers.NewSubscriptionHandler(subscriptionRepo, userRepo)
	subscriptionHandler.RegisterSubscriptionRoutes(api)
	log.Println("Subscription routes configured.")

	postCategoryHandler := handlers.NewPostCategoryHandler(postRepo, categoryRepo)
	postCategoryHandler.RegisterPostCategoryRoutes(api)
	log.Println("Post category routes configured.")

	// --- HTML views ---
	viewHandler := handlers.NewViewHandler(postRepo, userRepo, commentRepo, categoryRepo)
	viewHandler.RegisterViewRoutes(e)
	log.Println("View routes configured.")

	log.Println("All routes configured.")
}
