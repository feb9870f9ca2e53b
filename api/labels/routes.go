package labels

import (
	"github.com/gin-gonic/gin"

	"github.com/annolab/annotator-api/api/types"
)

// RegisterRoutes registers label management routes
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	router.GET("", GetLabels(deps))
	router.PUT("", ReplaceLabels(deps))
	router.POST("", AddLabel(deps))
}
