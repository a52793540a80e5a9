package i

import "github.com/gin-gonic/gin"

// Controller registers its routes on the router's public route group.
type Controller interface {
	RegisterPublic(*gin.RouterGroup)
}
