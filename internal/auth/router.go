package auth

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the auth endpoints
func RegisterRoutes(rg *gin.RouterGroup, ctrl *Controller) {
	authGroup := rg.Group("/auth")
	{
		authGroup.POST("/login", ctrl.Login)
	}
}
