package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tasktrackr/models"
	"tasktrackr/repository"
	"tasktrackr/utils"
)

type AuthController struct {
	Users *repository.UserRepository
}

type registerInput struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type loginInput struct {
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (ac *AuthController) Register(c *gin.Context) {
	var input registerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	hashed, err := utils.HashPassword(input.Password)
	if err != nil {
		internalError(c, "hash password", err)
		return
	}

	user := models.User{
		Name:     input.Name,
		Email:    input.Email,
		Password: hashed,
	}

	// The unique index on name surfaces duplicates here.
	if err := ac.Users.Create(c.Request.Context(), &user); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user name already taken"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "User registered"})
}

func (ac *AuthController) Login(c *gin.Context) {
	var input loginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := ac.Users.FindByName(c.Request.Context(), input.Name)
	if err != nil || !utils.CheckPassword(input.Password, user.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":            "error",
			"error description": "user name or password invalid",
		})
		return
	}

	token, err := utils.GenerateJWT(*user)
	if err != nil {
		internalError(c, "generate token", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}
