package controllers

import (
	"log"
	"net/http"

	"shophub/models"
	"shophub/services"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	authService *services.AuthService
	cloudinary  *models.CloudinaryService
}

func NewAuthController(authService *services.AuthService, cloudinary *models.CloudinaryService) *AuthController {
	return &AuthController{authService: authService, cloudinary: cloudinary}
}

// Register godoc
// @Summary Register new user
// @Description Register a new customer account
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.RegisterRequest true "Register Request"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /auth/register [post]
func (ctrl *AuthController) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	result, err := ctrl.authService.Register(req)
	if err != nil {
		c.JSON(400, gin.H{"success": false, "message": err.Error()})
		return
	}

	c.JSON(201, gin.H{
		"success": true,
		"message": "Registration successful",
		"data":    result,
	})
}

// Login godoc
// @Summary User login
// @Description Login with email and password
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Login Request"
// @Success 200 {object} models.Response
// @Failure 401 {object} models.ErrorResponse
// @Router /auth/login [post]
func (ctrl *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	result, err := ctrl.authService.Login(req)
	if err != nil {
		c.JSON(401, gin.H{"success": false, "message": "Invalid credentials"})
		return
	}

	c.JSON(200, gin.H{
		"success": true,
		"message": "Login successful",
		"data":    result,
	})
}

// GetProfile godoc
// @Summary Get user profile
// @Description Get current user profile
// @Tags Authentication
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /auth/profile [get]
func (ctrl *AuthController) GetProfile(c *gin.Context) {
	userID := c.GetInt("user_id")

	user, err := ctrl.authService.GetProfile(userID)
	if err != nil {
		c.JSON(404, gin.H{"success": false, "message": "Profile not found"})
		return
	}

	c.JSON(200, gin.H{
		"success": true,
		"message": "Profile retrieved",
		"data":    user,
	})
}

// UpdateProfile godoc
// @Summary Update profile
// @Description Update user profile information
// @Tags Authentication
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.UpdateProfileRequest true "Update Request"
// @Success 200 {object} models.Response
// @Router /auth/profile [patch]
func (ctrl *AuthController) UpdateProfile(c *gin.Context) {
	userID := c.GetInt("user_id")

	var req models.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	if err := ctrl.authService.UpdateProfile(userID, req); err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to update profile"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Profile updated"})
}

// UpdateAvatar godoc
// @Summary Update avatar
// @Description Upload a new profile avatar
// @Tags Authentication
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param avatar formData file true "Avatar file"
// @Success 200 {object} models.Response
// @Router /auth/profile/avatar [post]
func (ctrl *AuthController) UpdateAvatar(c *gin.Context) {
	userID := c.GetInt("user_id")

	if ctrl.cloudinary == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"success": false, "message": "Image uploads not configured"})
		return
	}

	fileHeader, err := c.FormFile("avatar")
	if err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Avatar file required"})
		return
	}

	if err := ctrl.cloudinary.ValidateImageFile(fileHeader); err != nil {
		c.JSON(400, gin.H{"success": false, "message": err.Error()})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to read file"})
		return
	}
	defer file.Close()

	avatarURL, publicID, err := ctrl.cloudinary.UploadImage(c.Request.Context(), file, fileHeader.Filename, "avatars")
	if err != nil {
		log.Println("Avatar upload error:", err)
		c.JSON(500, gin.H{"success": false, "message": "Failed to upload avatar"})
		return
	}

	if err := ctrl.authService.UpdateAvatar(userID, avatarURL); err != nil {
		ctrl.cloudinary.DeleteImage(c.Request.Context(), publicID)
		c.JSON(500, gin.H{"success": false, "message": "Failed to update avatar"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Avatar updated", "data": gin.H{"avatar_url": avatarURL}})
}

// ChangePassword godoc
// @Summary Change password
// @Description Change user password
// @Tags Authentication
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.ChangePasswordRequest true "Password Request"
// @Success 200 {object} models.Response
// @Router /auth/change-password [post]
func (ctrl *AuthController) ChangePassword(c *gin.Context) {
	userID := c.GetInt("user_id")

	var req models.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	if err := ctrl.authService.ChangePassword(userID, req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": err.Error()})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Password changed"})
}
