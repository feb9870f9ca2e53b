package images

import (
	"github.com/gin-gonic/gin"

	"github.com/annolab/annotator-api/api/types"
)

// RegisterRoutes registers image upload and retrieval routes
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	router.POST("", Upload(deps))
	router.GET("", List(deps))
	router.GET("/:name", Get(deps))
	router.GET("/:name/file", File(deps))
	router.DELETE("/:name", Delete(deps))
}
