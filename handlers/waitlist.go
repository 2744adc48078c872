package handlers

import (
	"net/http"
	"strconv"

	"github.com/nickksoares/drivetube/services"
	"github.com/nickksoares/drivetube/utils"

	"github.com/gin-gonic/gin"
)

type JoinWaitlistRequest struct {
	Name  string `json:"name" binding:"required,min=2,max=100"`
	Email string `json:"email" binding:"required,email"`
}

type UpdateWaitlistRequest struct {
	Status string `json:"status" binding:"required"`
}

func waitlistIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "ID inválido")
		return 0, false
	}
	return uint(id), true
}

func JoinWaitlist(c *gin.Context) {
	var req JoinWaitlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "Dados inválidos: "+err.Error())
		return
	}

	status, err := getServices().Waitlist.Join(c.Request.Context(), services.JoinWaitlistInput{
		Name:  req.Name,
		Email: req.Email,
	})
	if respondServiceError(c, err) {
		return
	}
	utils.Created(c, status)
}

func WaitlistStatus(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		utils.Error(c, http.StatusBadRequest, "E-mail é obrigatório")
		return
	}

	status, err := getServices().Waitlist.StatusByEmail(c.Request.Context(), email)
	if respondServiceError(c, err) {
		return
	}
	utils.Success(c, status)
}

func ListWaitlist(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	out, err := getServices().Waitlist.List(c.Request.Context(), page, pageSize)
	if respondServiceError(c, err) {
		return
	}
	utils.Success(c, out)
}

func UpdateWaitlistEntry(c *gin.Context) {
	entryID, ok := waitlistIDParam(c)
	if !ok {
		return
	}

	var req UpdateWaitlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "Dados inválidos: "+err.Error())
		return
	}

	entry, err := getServices().Waitlist.Update(c.Request.Context(), entryID, req.Status)
	if respondServiceError(c, err) {
		return
	}
	utils.Success(c, entry)
}

func ApproveWaitlistEntry(c *gin.Context) {
	entryID, ok := waitlistIDParam(c)
	if !ok {
		return
	}
	entry, err := getServices().Waitlist.Approve(c.Request.Context(), entryID)
	if respondServiceError(c, err) {
		return
	}
	utils.Success(c, entry)
}

func RejectWaitlistEntry(c *gin.Context) {
	entryID, ok := waitlistIDParam(c)
	if !ok {
		return
	}
	entry, err := getServices().Waitlist.Reject(c.Request.Context(), entryID)
	if respondServiceError(c, err) {
		return
	}
	utils.Success(c, entry)
}
