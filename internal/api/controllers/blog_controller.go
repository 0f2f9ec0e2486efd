package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"trendlens/internal/models/request_models"
	"trendlens/internal/services"
	"trendlens/pkg/utils"
)

type BlogController struct {
	blogService services.BlogServiceInterface
}

func NewBlogController(blogService services.BlogServiceInterface) *BlogController {
	return &BlogController{
		blogService: blogService,
	}
}

func parsePaging(c *gin.Context) (int, int, bool) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page number")
		return 0, 0, false
	}

	pageSize, err := strconv.Atoi(c.DefaultQuery("pageSize", "20"))
	if err != nil || pageSize < 1 || pageSize > 100 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page size (must be 1-100)")
		return 0, 0, false
	}

	return page, pageSize, true
}

// ListPublished serves the public blog index.
func (bc *BlogController) ListPublished(c *gin.Context) {
	page, pageSize, ok := parsePaging(c)
	if !ok {
		return
	}

	posts, err := bc.blogService.ListPublished(c.Request.Context(), page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, posts, "Fetched posts successfully")
}

// ListAll is the admin index, drafts included.
func (bc *BlogController) ListAll(c *gin.Context) {
	page, pageSize, ok := parsePaging(c)
	if !ok {
		return
	}

	posts, err := bc.blogService.ListAll(c.Request.Context(), page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, posts, "Fetched posts successfully")
}

func (bc *BlogController) GetBySlug(c *gin.Context) {
	post, err := bc.blogService.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, post, "Fetched post successfully")
}

func (bc *BlogController) CreatePost(c *gin.Context) {

	var request request_models.CreateBlogPostRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	post, err := bc.blogService.Create(c.Request.Context(), request)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, post, "Post created successfully")
}

func (bc *BlogController) UpdatePost(c *gin.Context) {

	var request request_models.UpdateBlogPostRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	post, err := bc.blogService.Update(c.Request.Context(), c.Param("id"), request)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, post, "Post updated successfully")
}

func (bc *BlogController) DeletePost(c *gin.Context) {
	if err := bc.blogService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Post deleted successfully")
}
