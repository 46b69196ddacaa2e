package handlers

import (
	"net/http"
	"strings"
	"time"

	"classtrack/config"
	"classtrack/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const adminTokenTTL = 12 * time.Hour

// AdminLoginRequest defines the admin login payload.
type AdminLoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AdminLoginHandler verifies the configured admin credentials and issues a
// JWT. The token's hash is stored in the auth cache so it can be revoked
// before expiry.
func AdminLoginHandler(c *gin.Context) {
	logger := getLogger(c)

	var req AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	if req.Email != config.AppConfig.AdminEmail {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(config.AppConfig.AdminPasswordHash), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := utils.GenerateToken("admin", req.Email, adminTokenTTL)
	if err != nil {
		logger.Error("Failed to issue admin token", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue token"})
		return
	}

	cacheKey := "admin:token:" + utils.HashToken(token)
	if err := utils.GetAuthCacheClient().Set(c.Request.Context(), cacheKey, req.Email, adminTokenTTL).Err(); err != nil {
		logger.Error("Failed to store admin session", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

// AdminLogoutHandler revokes the presented token by dropping its cached hash.
func AdminLogoutHandler(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing token"})
		return
	}

	cacheKey := "admin:token:" + utils.HashToken(tokenString)
	if err := utils.GetAuthCacheClient().Del(c.Request.Context(), cacheKey).Err(); err != nil {
		getLogger(c).Error("Failed to revoke admin session", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to revoke token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}

// HealthHandler reports the latest stored health snapshot.
func HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "health": utils.GetHealthStatus()})
}
