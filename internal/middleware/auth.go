package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/studytrack/studytrack/internal/utils"
)

const (
	ContextStudentID   = "student_id"
	ContextStudentName = "student_name"
	ContextEmail       = "email"
	ContextRole        = "role"
)

// AuthRequired is a middleware that checks for a valid JWT token
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "authorization header required"})
			c.Abort()
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "invalid authorization header format"})
			c.Abort()
			return
		}

		tokenString := parts[1]
		claims, err := utils.ParseToken(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "invalid or expired token"})
			c.Abort()
			return
		}

		// Set student info in context
		c.Set(ContextStudentID, claims.StudentID)
		c.Set(ContextStudentName, claims.Name)
		c.Set(ContextEmail, claims.Email)
		c.Set(ContextRole, claims.Role)

		c.Next()
	}
}

// GetStudentID gets the current student ID from context
func GetStudentID(c *gin.Context) uint {
	if id, exists := c.Get(ContextStudentID); exists {
		return id.(uint)
	}
	return 0
}

// GetStudentName gets the current student name from context
func GetStudentName(c *gin.Context) string {
	if name, exists := c.Get(ContextStudentName); exists {
		return name.(string)
	}
	return ""
}

// GetRole gets the current student role from context
func GetRole(c *gin.Context) string {
	if role, exists := c.Get(ContextRole); exists {
		return role.(string)
	}
	return ""
}
