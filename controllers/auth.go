package controllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"dentalpro-backend/models"
	"dentalpro-backend/reqctx"
	"dentalpro-backend/utils"
)

type RegisterInput struct {
	Email    string          `json:"email" binding:"required,email"`
	Name     string          `json:"name" binding:"required"`
	Phone    string          `json:"phone"`
	Password string          `json:"password" binding:"required,min=8"`
	Role     models.UserRole `json:"role" binding:"omitempty,oneof=manager secretary"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Register creates a staff account. The very first account always becomes
// the manager; after that only a logged-in manager can add accounts.
func Register(c *gin.Context) {
	var input RegisterInput

	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))
	if _, err := core.Repos.Users.FindByEmail(email); err == nil {
		utils.RespondWithError(c, http.StatusConflict, "Email already registered")
		return
	}

	role := input.Role
	if core.Repos.Users.Count() == 0 {
		role = models.RoleManager
	} else {
		if reqctx.Role(c.Request.Context()) != models.RoleManager {
			utils.RespondWithError(c, http.StatusForbidden, "Only the manager can add staff accounts")
			return
		}
		if role == "" {
			role = models.RoleSecretary
		}
	}

	hash, err := utils.HashPassword(input.Password)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to hash password")
		return
	}

	user, err := core.Repos.Users.Create(models.User{
		Email:    email,
		Password: hash,
		Name:     input.Name,
		Phone:    input.Phone,
		Role:     role,
		Active:   true,
	})
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create user")
		return
	}

	token, err := utils.GenerateToken(user.ID, user.Name, user.Role)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Registration successful",
		"token":   token,
		"user": gin.H{
			"id":    user.ID,
			"email": user.Email,
			"name":  user.Name,
			"role":  user.Role,
		},
	})
}

func Login(c *gin.Context) {
	var input LoginInput

	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))
	user, err := core.Repos.Users.FindByEmail(email)
	if err != nil {
		utils.RespondWithError(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	if !user.Active || !utils.CheckPasswordHash(input.Password, user.Password) {
		utils.RespondWithError(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := utils.GenerateToken(user.ID, user.Name, user.Role)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	now := time.Now()
	core.Repos.Users.Update(user.ID, func(u *models.User) {
		u.LastLogin = &now
	})

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user": gin.H{
			"id":    user.ID,
			"email": user.Email,
			"name":  user.Name,
			"role":  user.Role,
		},
	})
}

func Me(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		utils.RespondWithError(c, http.StatusInternalServerError, "User ID not found in context")
		return
	}

	user, err := core.Repos.Users.FindByID(userID.(string))
	if err != nil {
		utils.RespondWithError(c, http.StatusUnauthorized, "User not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":    user.ID,
			"email": user.Email,
			"name":  user.Name,
			"role":  user.Role,
		},
	})
}
