package handlers

import (
	"net/http"

	"github.com/nickksoares/drivetube/services"
	"github.com/nickksoares/drivetube/utils"

	"github.com/gin-gonic/gin"
)

type UpdateProfileRequest struct {
	Name      string `json:"name" binding:"omitempty,min=2,max=100"`
	Email     string `json:"email" binding:"omitempty,email"`
	Password  string `json:"password" binding:"omitempty,min=6"`
	AvatarURL string `json:"avatar_url"`
}

func UpdateMe(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "Dados inválidos: "+err.Error())
		return
	}

	user, err := getServices().Auth.UpdateProfile(c.Request.Context(), c.GetUint("user_id"), services.UpdateProfileInput{
		Name:      req.Name,
		Email:     req.Email,
		Password:  req.Password,
		AvatarURL: req.AvatarURL,
	})
	if respondServiceError(c, err) {
		return
	}
	utils.Success(c, user)
}

func DeleteMe(c *gin.Context) {
	err := getServices().Auth.DeleteAccount(c.Request.Context(), c.GetUint("user_id"))
	if respondServiceError(c, err) {
		return
	}
	utils.SuccessWithMessage(c, "Conta removida", nil)
}
