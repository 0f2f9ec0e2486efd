package search_fx

import (
	"os"
	"time"

	"go.uber.org/fx"
	"trendlens/internal/api/controllers"
	"trendlens/internal/search"
	"trendlens/pkg/middleware"
)

var Module = fx.Provide(
	provideExecutor, provideSearchController, provideRateLimiter,
)

func provideExecutor() search.QueryExecutor {
	return search.NewExecutor(os.Getenv("LOOKUP_API_URL"), 5*time.Second)
}

func provideSearchController(executor search.QueryExecutor) *controllers.SearchController {
	return controllers.NewSearchController(executor)
}

func provideRateLimiter() *middleware.RateLimiter {
	return middleware.NewRateLimiter(middleware.DefaultRateLimiterConfig())
}
