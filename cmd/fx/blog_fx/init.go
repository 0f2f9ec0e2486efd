package blog_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"trendlens/internal/api/controllers"
	"trendlens/internal/repositories"
	"trendlens/internal/services"
)

var Module = fx.Provide(
	provideCategoryRepo, provideBlogRepo,
	provideCategoryService, provideBlogService,
	provideCategoriesController, provideBlogController,
)

func provideCategoryRepo(db *gorm.DB) repositories.CategoryRepositoryInterface {
	return repositories.NewCategoryRepository(db)
}

func provideBlogRepo(db *gorm.DB) repositories.BlogRepositoryInterface {
	return repositories.NewBlogRepository(db)
}

func provideCategoryService(categoryRepo repositories.CategoryRepositoryInterface) services.CategoryServiceInterface {
	return services.NewCategoryService(categoryRepo)
}

func provideBlogService(
	blogRepo repositories.BlogRepositoryInterface,
	categoryRepo repositories.CategoryRepositoryInterface) services.BlogServiceInterface {
	return services.NewBlogService(blogRepo, categoryRepo)
}

func provideCategoriesController(categoryService services.CategoryServiceInterface) *controllers.CategoriesController {
	return controllers.NewCategoriesController(categoryService)
}

func provideBlogController(blogService services.BlogServiceInterface) *controllers.BlogController {
	return controllers.NewBlogController(blogService)
}
