package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"trendlens/cmd/fx/blog_fx"
	"trendlens/cmd/fx/db_fx"
	"trendlens/cmd/fx/plans_fx"
	"trendlens/cmd/fx/search_fx"
	"trendlens/internal/api/controllers"
	"trendlens/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on process environment")
	}

	app := fx.New(
		db_fx.Module,
		plans_fx.Module,
		search_fx.Module,
		blog_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, limiter *middleware.RateLimiter) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Println("Starting HTTP server at ${PORT}")
				if err := engine.Run(":" + os.Getenv("PORT")); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			limiter.Stop()
			return nil
		},
	})
}

func ProvideRouter(
	plansController *controllers.PlansController,
	searchController *controllers.SearchController,
	blogController *controllers.BlogController,
	categoriesController *controllers.CategoriesController,
	limiter *middleware.RateLimiter) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, plansController, searchController, blogController, categoriesController, limiter)

	return r
}

func RegisterRoutes(r *gin.Engine,
	plansController *controllers.PlansController,
	searchController *controllers.SearchController,
	blogController *controllers.BlogController,
	categoriesController *controllers.CategoriesController,
	limiter *middleware.RateLimiter) {

	adminOnly := []gin.HandlerFunc{
		middleware.JWTAuthMiddleware(),
		middleware.RoleMiddleware("admin"),
	}

	searchGroup := r.Group("/search")
	searchGroup.GET("/autocomplete", limiter.Middleware(), searchController.Autocomplete)

	plansGroup := r.Group("/plans")
	plansGroup.GET("", plansController.ListPlans)
	adminPlans := plansGroup.Group("", adminOnly...)
	adminPlans.GET("/all", plansController.ListAllPlans)
	adminPlans.GET("/:id", plansController.GetPlan)
	adminPlans.POST("", plansController.CreatePlan)
	adminPlans.PUT("/:id", plansController.UpdatePlan)
	adminPlans.DELETE("/:id", plansController.DeactivatePlan)
	adminPlans.POST("/:id/duplicate", plansController.DuplicatePlan)

	blogGroup := r.Group("/blog")
	blogGroup.GET("", blogController.ListPublished)
	blogGroup.GET("/:slug", blogController.GetBySlug)
	adminBlog := r.Group("/admin/blog", adminOnly...)
	adminBlog.GET("", blogController.ListAll)
	adminBlog.POST("", blogController.CreatePost)
	adminBlog.PUT("/:id", blogController.UpdatePost)
	adminBlog.DELETE("/:id", blogController.DeletePost)

	categoriesGroup := r.Group("/categories")
	categoriesGroup.GET("", categoriesController.ListCategories)
	adminCategories := categoriesGroup.Group("", adminOnly...)
	adminCategories.POST("", categoriesController.CreateCategory)
	adminCategories.PUT("/:id", categoriesController.RenameCategory)
	adminCategories.DELETE("/:id", categoriesController.DeleteCategory)
}
