package handlers

import (
	"net/http"
	"strconv"

	"github.com/nickksoares/drivetube/services"
	"github.com/nickksoares/drivetube/utils"

	"github.com/gin-gonic/gin"
)

type CreateSubscriptionRequest struct {
	PlanID uint `json:"plan_id" binding:"required"`
}

type ChangePlanRequest struct {
	PlanID uint `json:"plan_id" binding:"required"`
}

func CreateSubscription(c *gin.Context) {
	var req CreateSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "Dados inválidos: "+err.Error())
		return
	}

	out, err := getServices().Subscriptions.Create(c.Request.Context(), c.GetUint("user_id"), services.CreateSubscriptionInput{
		PlanID: req.PlanID,
	})
	if respondServiceError(c, err) {
		return
	}
	utils.Created(c, out)
}

func GetMySubscription(c *gin.Context) {
	sub, err := getServices().Subscriptions.Mine(c.Request.Context(), c.GetUint("user_id"))
	if respondServiceError(c, err) {
		return
	}
	utils.Success(c, sub)
}

func UpdateMySubscription(c *gin.Context) {
	var req ChangePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "Dados inválidos: "+err.Error())
		return
	}

	sub, err := getServices().Subscriptions.ChangePlan(c.Request.Context(), c.GetUint("user_id"), req.PlanID)
	if respondServiceError(c, err) {
		return
	}
	utils.Success(c, sub)
}

func CancelMySubscription(c *gin.Context) {
	if respondServiceError(c, getServices().Subscriptions.Cancel(c.Request.Context(), c.GetUint("user_id"))) {
		return
	}
	utils.SuccessWithMessage(c, "Assinatura cancelada", nil)
}

func ProcessPayment(c *gin.Context) {
	paymentID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "ID do pagamento inválido")
		return
	}

	if respondServiceError(c, getServices().Subscriptions.ProcessPayment(c.Request.Context(), c.GetUint("user_id"), uint(paymentID))) {
		return
	}
	utils.SuccessWithMessage(c, "Pagamento confirmado", nil)
}

func CheckAccess(c *gin.Context) {
	hasAccess, err := getServices().Access.HasAccess(c.Request.Context(), c.GetUint("user_id"))
	if respondServiceError(c, err) {
		return
	}
	utils.Success(c, gin.H{"has_access": hasAccess})
}
