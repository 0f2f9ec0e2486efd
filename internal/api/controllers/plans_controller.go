package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"trendlens/internal/models/request_models"
	"trendlens/internal/services"
	"trendlens/pkg/utils"
)

type PlansController struct {
	planSync services.PlanSyncServiceInterface
}

func NewPlansController(planSync services.PlanSyncServiceInterface) *PlansController {
	return &PlansController{
		planSync: planSync,
	}
}

// ListPlans serves the public pricing page: active plans only.
func (pc *PlansController) ListPlans(c *gin.Context) {
	plans, err := pc.planSync.ListPlans(c.Request.Context(), false)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, plans, "Fetched plans successfully")
}

// ListAllPlans is the admin view, deactivated plans included.
func (pc *PlansController) ListAllPlans(c *gin.Context) {
	plans, err := pc.planSync.ListPlans(c.Request.Context(), true)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, plans, "Fetched plans successfully")
}

func (pc *PlansController) GetPlan(c *gin.Context) {
	plan, err := pc.planSync.GetPlanById(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, plan, "Fetched plan successfully")
}

func (pc *PlansController) CreatePlan(c *gin.Context) {

	var request request_models.CreatePlanRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	plan, err := pc.planSync.Create(c.Request.Context(), request)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, plan, "Plan created successfully")
}

func (pc *PlansController) UpdatePlan(c *gin.Context) {

	var request request_models.UpdatePlanRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	plan, err := pc.planSync.Update(c.Request.Context(), c.Param("id"), request)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, plan, "Plan updated successfully")
}

// DeactivatePlan is a soft delete; the row stays for existing subscribers.
func (pc *PlansController) DeactivatePlan(c *gin.Context) {

	if err := pc.planSync.Deactivate(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Plan deactivated successfully")
}

func (pc *PlansController) DuplicatePlan(c *gin.Context) {

	var request request_models.DuplicatePlanRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	plan, err := pc.planSync.Duplicate(c.Request.Context(), c.Param("id"), request.NewName)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, plan, "Plan duplicated successfully")
}
