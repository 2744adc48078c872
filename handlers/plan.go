package handlers

import (
	"net/http"
	"strconv"

	"github.com/nickksoares/drivetube/services"
	"github.com/nickksoares/drivetube/utils"

	"github.com/gin-gonic/gin"
)

type CreatePlanRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Description string `json:"description"`
	Price       int64  `json:"price" binding:"required,min=0"`
	Interval    string `json:"interval" binding:"required"`
	Features    string `json:"features"`
}

type UpdatePlanRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int64  `json:"price"`
	Interval    string `json:"interval"`
	Features    string `json:"features"`
	IsActive    *bool  `json:"is_active"`
}

func planIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "ID do plano inválido")
		return 0, false
	}
	return uint(id), true
}

func ListPlans(c *gin.Context) {
	plans, err := getServices().Plans.List(c.Request.Context())
	if respondServiceError(c, err) {
		return
	}
	utils.Success(c, plans)
}

func GetPlan(c *gin.Context) {
	planID, ok := planIDParam(c)
	if !ok {
		return
	}
	plan, err := getServices().Plans.Get(c.Request.Context(), planID)
	if respondServiceError(c, err) {
		return
	}
	utils.Success(c, plan)
}

func CreatePlan(c *gin.Context) {
	var req CreatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "Dados inválidos: "+err.Error())
		return
	}

	plan, err := getServices().Plans.Create(c.Request.Context(), services.PlanInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Interval:    req.Interval,
		Features:    req.Features,
	})
	if respondServiceError(c, err) {
		return
	}
	utils.Created(c, plan)
}

func UpdatePlan(c *gin.Context) {
	planID, ok := planIDParam(c)
	if !ok {
		return
	}

	var req UpdatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "Dados inválidos: "+err.Error())
		return
	}

	plan, err := getServices().Plans.Update(c.Request.Context(), planID, services.PlanInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Interval:    req.Interval,
		Features:    req.Features,
		IsActive:    req.IsActive,
	})
	if respondServiceError(c, err) {
		return
	}
	utils.Success(c, plan)
}

func DeletePlan(c *gin.Context) {
	planID, ok := planIDParam(c)
	if !ok {
		return
	}
	if respondServiceError(c, getServices().Plans.Deactivate(c.Request.Context(), planID)) {
		return
	}
	utils.SuccessWithMessage(c, "Plano desativado", nil)
}
