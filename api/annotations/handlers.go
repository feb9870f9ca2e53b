package annotations

import (
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/annolab/annotator-api/api/types"
	imagesService "github.com/annolab/annotator-api/internal/services/images"
	recordsService "github.com/annolab/annotator-api/internal/services/records"
	"github.com/annolab/annotator-api/pkg/annotation"
)

// SaveAnnotations saves the annotation set for an image
// @Summary      Save annotations for image
// @Description  Validate, encode and persist the bounding boxes drawn on an image: the JSON document, a normalized image copy and the format-specific text export. Re-saving replaces all artifacts for the image.
// @Tags         annotations
// @Accept       json
// @Produce      json
// @Param        name path string true "Image file name"
// @Param        annotations body types.SaveAnnotationsRequest true "Annotation format, label set and boxes"
// @Success      201 {object} types.SaveAnnotationsResponse "Saved record"
// @Failure      400 {object} types.ErrorResponse "Invalid request, unknown format or invalid dimensions"
// @Failure      404 {object} types.ErrorResponse "Image not found"
// @Failure      500 {object} types.ErrorResponse "Internal server error"
// @Router       /api/v1/images/{name}/annotations [post]
func SaveAnnotations(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		name, ok := types.ImageNameParam(c, "name")
		if !ok {
			return // Error response already sent by utility
		}

		// Parse request body using utility function
		var req types.SaveAnnotationsRequest
		if !types.BindJSONOrError(c, &req) {
			return // Error response already sent by utility
		}

		boxes := make([]recordsService.BoxInput, len(req.Annotations))
		for i, box := range req.Annotations {
			boxes[i] = recordsService.BoxInput{
				Label:  box.Label,
				X:      box.X,
				Y:      box.Y,
				Width:  box.Width,
				Height: box.Height,
			}
		}

		record, err := deps.RecordService.Save(c.Request.Context(), recordsService.SaveRequest{
			ImageName: name,
			Format:    req.AnnotationFormat,
			Labels:    req.CustomLabels,
			Boxes:     boxes,
		})
		if err != nil {
			switch {
			case errors.Is(err, imagesService.ErrImageNotFound):
				types.SendNotFound(c, "Image not found")
			case errors.Is(err, annotation.ErrUnknownFormat):
				types.SendBadRequest(c, "Unknown annotation format")
			case errors.Is(err, annotation.ErrInvalidDimensions):
				types.SendBadRequest(c, "Image has invalid dimensions")
			default:
				types.SendError(c, err, "Failed to save annotations")
			}
			return
		}

		types.SendCreated(c, types.SaveAnnotationsResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK, Message: "Annotations saved"},
			Record:       record,
		})
	}
}

// GetAnnotations retrieves the saved annotation document for an image
// @Summary      Get annotations for image
// @Description  Retrieve the persisted JSON annotation document for an image
// @Tags         annotations
// @Produce      json
// @Param        name path string true "Image file name"
// @Success      200 {object} types.AnnotationDocumentResponse "Annotation document"
// @Failure      404 {object} types.ErrorResponse "No annotations saved for this image"
// @Failure      500 {object} types.ErrorResponse "Internal server error"
// @Router       /api/v1/images/{name}/annotations [get]
func GetAnnotations(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		name, ok := types.ImageNameParam(c, "name")
		if !ok {
			return // Error response already sent by utility
		}

		doc, err := deps.RecordService.GetDocument(c.Request.Context(), name)
		if err != nil {
			if errors.Is(err, recordsService.ErrRecordNotFound) {
				types.SendNotFound(c, "No annotations saved for this image")
			} else {
				types.SendError(c, err, "Failed to read annotations")
			}
			return
		}

		types.SendSuccess(c, types.AnnotationDocumentResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK, Message: "Annotations retrieved"},
			Document:     doc,
		})
	}
}

// ExportAnnotations returns the text export for an image
// @Summary      Export annotations as text
// @Description  Download the format-specific text export for an image: YOLO lines or a Pascal VOC summary, depending on the format the annotations were saved with
// @Tags         annotations
// @Produce      plain
// @Param        name path string true "Image file name"
// @Success      200 {string} string "Export content"
// @Failure      404 {object} types.ErrorResponse "No annotations saved for this image"
// @Failure      500 {object} types.ErrorResponse "Internal server error"
// @Router       /api/v1/images/{name}/annotations/export [get]
func ExportAnnotations(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		name, ok := types.ImageNameParam(c, "name")
		if !ok {
			return // Error response already sent by utility
		}

		text, err := deps.RecordService.ExportText(c.Request.Context(), name)
		if err != nil {
			switch {
			case errors.Is(err, recordsService.ErrRecordNotFound):
				types.SendNotFound(c, "No annotations saved for this image")
			case errors.Is(err, imagesService.ErrImageNotFound):
				// Rebuilding a lost export needs the image dimensions
				types.SendNotFound(c, "Source image not found")
			default:
				types.SendError(c, err, "Failed to export annotations")
			}
			return
		}

		base := strings.TrimSuffix(name, filepath.Ext(name))
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", base+".txt"))
		c.String(http.StatusOK, text)
	}
}

// DeleteAnnotations removes all annotation artifacts for an image
// @Summary      Delete annotations for image
// @Description  Remove the JSON document, the text export, the normalized image copy and the catalog row for an image. The original upload stays.
// @Tags         annotations
// @Produce      json
// @Param        name path string true "Image file name"
// @Success      200 {object} types.BaseResponse "Annotations deleted"
// @Failure      404 {object} types.ErrorResponse "No annotations saved for this image"
// @Failure      500 {object} types.ErrorResponse "Internal server error"
// @Router       /api/v1/images/{name}/annotations [delete]
func DeleteAnnotations(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		name, ok := types.ImageNameParam(c, "name")
		if !ok {
			return // Error response already sent by utility
		}

		if err := deps.RecordService.Delete(c.Request.Context(), name); err != nil {
			if errors.Is(err, recordsService.ErrRecordNotFound) {
				types.SendNotFound(c, "No annotations saved for this image")
			} else {
				types.SendError(c, err, "Failed to delete annotations")
			}
			return
		}

		c.JSON(http.StatusOK, types.BaseResponse{Status: types.StatusOK, Message: "Annotations deleted"})
	}
}

// ListRecords lists the annotation catalog
// @Summary      List annotation records
// @Description  Retrieve one catalog row per annotated image: format, dimensions, counts and artifact paths
// @Tags         annotations
// @Produce      json
// @Success      200 {object} types.RecordsResponse "Annotation records"
// @Failure      500 {object} types.ErrorResponse "Internal server error"
// @Router       /api/v1/annotations [get]
func ListRecords(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		records, err := deps.RecordService.List(c.Request.Context())
		if err != nil {
			types.SendError(c, err, "Failed to list annotation records")
			return
		}

		types.SendSuccess(c, types.RecordsResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK, Message: "Records retrieved"},
			Records:      records,
			Count:        len(records),
		})
	}
}
