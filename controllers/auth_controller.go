package controllers

import (
	"net/http"

	"github.com/azzami13/Mapasset/service"
	"github.com/azzami13/Mapasset/utils"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	auth service.AuthService
}

func NewAuthController(auth service.AuthService) *AuthController {
	return &AuthController{auth: auth}
}

type LoginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
}

func (ctl *AuthController) Login(c *gin.Context) {
	var in LoginInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, user, err := ctl.auth.Login(c.Request.Context(), in.Username, in.Password)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":      "Login sukses",
		"access_token": token,
		"role":         user.Role.Name,
	})
}

func (ctl *AuthController) Me(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	profile, err := ctl.auth.Me(c.Request.Context(), userID)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.Success(c, "Berhasil mengambil profil pengguna", profile)
}
