package handlers

import (
	"net/http"

	"github.com/nickksoares/drivetube/services"
	"github.com/nickksoares/drivetube/utils"

	"github.com/gin-gonic/gin"
)

type RegisterRequest struct {
	Name     string `json:"name" binding:"required,min=2,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type GoogleLoginRequest struct {
	AccessToken string `json:"access_token" binding:"required"`
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Picture     string `json:"picture"`
	ExpiresIn   int    `json:"expires_in"`
}

func Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "Dados inválidos: "+err.Error())
		return
	}

	out, err := getServices().Auth.Register(c.Request.Context(), services.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if respondServiceError(c, err) {
		return
	}
	utils.Created(c, out)
}

func Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "Dados inválidos: "+err.Error())
		return
	}

	out, err := getServices().Auth.Login(c.Request.Context(), services.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if respondServiceError(c, err) {
		return
	}
	utils.Success(c, out)
}

func GoogleLogin(c *gin.Context) {
	var req GoogleLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "Dados inválidos: "+err.Error())
		return
	}

	out, err := getServices().Auth.GoogleLogin(c.Request.Context(), services.GoogleLoginInput{
		AccessToken: req.AccessToken,
		Name:        req.Name,
		Email:       req.Email,
		Picture:     req.Picture,
		ExpiresIn:   req.ExpiresIn,
	})
	if respondServiceError(c, err) {
		return
	}
	utils.Success(c, out)
}

func Me(c *gin.Context) {
	user, err := getServices().Auth.Me(c.Request.Context(), c.GetUint("user_id"))
	if respondServiceError(c, err) {
		return
	}
	utils.Success(c, user)
}
