package handlers

import (
	"net/http"

	"github.com/JijoBose/web5-wallet/internal/auth"

	"github.com/gin-gonic/gin"
)

// LoginRequest represents the login request payload
type LoginRequest struct {
	ClientID     string `json:"client_id" binding:"required"`
	ClientSecret string `json:"client_secret" binding:"required"`
}

// LoginResponse represents the login response
type LoginResponse struct {
	Token    string `json:"token"`
	ClientID string `json:"client_id"`
	Message  string `json:"message"`
}

// Login handles the login endpoint for API clients
// POST /api/login
func Login(c *gin.Context) {
	var req LoginRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request. client_id and client_secret are required.",
		})
		return
	}

	if req.ClientSecret != ClientSecret {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Invalid client credentials",
		})
		return
	}

	// Generate JWT token
	token, err := auth.GenerateToken(req.ClientID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to generate token",
		})
		return
	}

	c.JSON(http.StatusOK, LoginResponse{
		Token:    token,
		ClientID: req.ClientID,
		Message:  "Login successful",
	})
}
