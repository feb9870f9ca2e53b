package annotations

import (
	"github.com/gin-gonic/gin"

	"github.com/annolab/annotator-api/api/types"
)

// RegisterRoutes registers the annotation routes nested under the image
// resource. exportLimit is an optional extra middleware for the export
// route; pass nil to register it without one.
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies, exportLimit gin.HandlerFunc) {
	router.POST("/:name/annotations", SaveAnnotations(deps))
	router.GET("/:name/annotations", GetAnnotations(deps))
	router.DELETE("/:name/annotations", DeleteAnnotations(deps))

	if exportLimit != nil {
		router.GET("/:name/annotations/export", exportLimit, ExportAnnotations(deps))
	} else {
		router.GET("/:name/annotations/export", ExportAnnotations(deps))
	}
}

// RegisterCatalogRoutes registers the flat catalog listing
func RegisterCatalogRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	router.GET("", ListRecords(deps))
}
