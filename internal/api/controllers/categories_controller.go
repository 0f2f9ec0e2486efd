package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"trendlens/internal/models/request_models"
	"trendlens/internal/services"
	"trendlens/pkg/utils"
)

type CategoriesController struct {
	categoryService services.CategoryServiceInterface
}

func NewCategoriesController(categoryService services.CategoryServiceInterface) *CategoriesController {
	return &CategoriesController{
		categoryService: categoryService,
	}
}

func (cc *CategoriesController) ListCategories(c *gin.Context) {
	categories, err := cc.categoryService.GetAll(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, categories, "Fetched categories successfully")
}

func (cc *CategoriesController) CreateCategory(c *gin.Context) {

	var request request_models.CreateCategoryRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	category, err := cc.categoryService.Create(c.Request.Context(), request.Name)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, category, "Category created successfully")
}

func (cc *CategoriesController) RenameCategory(c *gin.Context) {

	var request request_models.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	category, err := cc.categoryService.Rename(c.Request.Context(), c.Param("id"), request.Name)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, category, "Category renamed successfully")
}

func (cc *CategoriesController) DeleteCategory(c *gin.Context) {
	if err := cc.categoryService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Category deleted successfully")
}
