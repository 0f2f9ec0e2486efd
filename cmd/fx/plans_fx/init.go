package plans_fx

import (
	"os"
	"time"

	"go.uber.org/fx"
	"gorm.io/gorm"
	"trendlens/internal/api/controllers"
	"trendlens/internal/repositories"
	"trendlens/internal/services"
	"trendlens/pkg/billing"
	mem "trendlens/pkg/memcache"
)

var Module = fx.Provide(
	providePlanRepo, provideBillingClient, provideCustomerCache,
	providePlanSyncService, providePlansController,
)

func providePlanRepo(db *gorm.DB) repositories.IPlanRepository {
	return repositories.NewPlanRepository(db)
}

func provideBillingClient() services.BillingClient {
	return billing.NewClient(billing.Config{
		BaseURL: os.Getenv("BILLING_API_URL"),
		APIKey:  os.Getenv("BILLING_API_KEY"),
		Timeout: 15 * time.Second,
	})
}

func provideCustomerCache() mem.CustomerCache {
	return mem.NewCustomerIDs()
}

func providePlanSyncService(
	planRepo repositories.IPlanRepository,
	billingClient services.BillingClient,
	customers mem.CustomerCache) services.PlanSyncServiceInterface {
	return services.NewPlanSyncService(planRepo, billingClient, customers)
}

func providePlansController(planSync services.PlanSyncServiceInterface) *controllers.PlansController {
	return controllers.NewPlansController(planSync)
}
