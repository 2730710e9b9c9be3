package controllers

import (
	"shophub/models"
	"shophub/repositories"

	"github.com/gin-gonic/gin"
)

type PreferenceController struct {
	prefs *repositories.PreferenceRepository
}

func NewPreferenceController(prefs *repositories.PreferenceRepository) *PreferenceController {
	return &PreferenceController{prefs: prefs}
}

// GetLanguage godoc
// @Summary Get language preference
// @Description Get the user's saved UI language (defaults to "en")
// @Tags Preferences
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /preferences/language [get]
func (ctrl *PreferenceController) GetLanguage(c *gin.Context) {
	userID := c.GetInt("user_id")

	lang, err := ctrl.prefs.GetLanguage(c.Request.Context(), userID)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to load preference"})
		return
	}

	c.JSON(200, gin.H{
		"success": true,
		"message": "Preference retrieved",
		"data":    gin.H{"language": lang},
	})
}

// SetLanguage godoc
// @Summary Set language preference
// @Description Save the user's UI language
// @Tags Preferences
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.LanguagePreferenceRequest true "Language"
// @Success 200 {object} models.Response
// @Router /preferences/language [put]
func (ctrl *PreferenceController) SetLanguage(c *gin.Context) {
	userID := c.GetInt("user_id")

	var req models.LanguagePreferenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid language"})
		return
	}

	if err := ctrl.prefs.SetLanguage(c.Request.Context(), userID, req.Language); err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to save preference"})
		return
	}

	c.JSON(200, gin.H{
		"success": true,
		"message": "Preference saved",
		"data":    gin.H{"language": req.Language},
	})
}
