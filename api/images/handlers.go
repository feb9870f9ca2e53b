package images

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/annolab/annotator-api/api/types"
	imagesService "github.com/annolab/annotator-api/internal/services/images"
)

// Upload stores a new image to annotate
// @Summary      Upload an image
// @Description  Store an image for annotating. Only png, jpg and jpeg files are accepted and the content must decode as an image.
// @Tags         images
// @Accept       multipart/form-data
// @Produce      json
// @Param        file formData file true "Image file (png, jpg or jpeg)"
// @Success      201 {object} types.SingleImageResponse "Stored image metadata"
// @Failure      400 {object} types.ErrorResponse "Missing file or undecodable content"
// @Failure      415 {object} types.ErrorResponse "Unsupported file type"
// @Failure      500 {object} types.ErrorResponse "Internal server error"
// @Router       /api/v1/images [post]
func Upload(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		fileHeader, err := c.FormFile("file")
		if err != nil {
			types.SendBadRequest(c, "No image file provided")
			return
		}

		src, err := fileHeader.Open()
		if err != nil {
			types.SendInternalError(c, "Failed to read upload")
			return
		}
		defer src.Close()

		stored, err := deps.ImageService.SaveUpload(c.Request.Context(), fileHeader.Filename, src)
		if err != nil {
			switch {
			case errors.Is(err, imagesService.ErrUnsupportedImageType):
				types.SendUnsupportedMediaType(c, "Only png, jpg and jpeg uploads are accepted")
			case errors.Is(err, imagesService.ErrInvalidImageData):
				types.SendBadRequest(c, "Upload does not decode as an image")
			default:
				types.SendError(c, err, "Failed to store upload")
			}
			return
		}

		types.SendCreated(c, types.SingleImageResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK, Message: "Image uploaded"},
			Image:        stored,
		})
	}
}

// List returns all stored images
// @Summary      List images
// @Description  Retrieve name, dimensions and size of every uploaded image
// @Tags         images
// @Produce      json
// @Success      200 {object} types.ImagesResponse "Stored images"
// @Failure      500 {object} types.ErrorResponse "Internal server error"
// @Router       /api/v1/images [get]
func List(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		stored, err := deps.ImageService.List(c.Request.Context())
		if err != nil {
			types.SendError(c, err, "Failed to list images")
			return
		}

		types.SendSuccess(c, types.ImagesResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK, Message: "Images retrieved"},
			Images:       stored,
			Count:        len(stored),
		})
	}
}

// Get returns the metadata of one stored image
// @Summary      Get image metadata
// @Description  Retrieve name, dimensions and size of a stored image
// @Tags         images
// @Produce      json
// @Param        name path string true "Image file name"
// @Success      200 {object} types.SingleImageResponse "Stored image metadata"
// @Failure      404 {object} types.ErrorResponse "Image not found"
// @Failure      500 {object} types.ErrorResponse "Internal server error"
// @Router       /api/v1/images/{name} [get]
func Get(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		name, ok := types.ImageNameParam(c, "name")
		if !ok {
			return // Error response already sent by utility
		}

		stored, err := deps.ImageService.Get(c.Request.Context(), name)
		if err != nil {
			if errors.Is(err, imagesService.ErrImageNotFound) {
				types.SendNotFound(c, "Image not found")
			} else {
				types.SendError(c, err, "Failed to read image")
			}
			return
		}

		types.SendSuccess(c, types.SingleImageResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK, Message: "Image retrieved"},
			Image:        stored,
		})
	}
}

// File streams the stored image bytes
// @Summary      Download an image
// @Description  Stream the original bytes of a stored image
// @Tags         images
// @Produce      image/png
// @Produce      image/jpeg
// @Param        name path string true "Image file name"
// @Success      200 {file} binary "Image content"
// @Failure      404 {object} types.ErrorResponse "Image not found"
// @Router       /api/v1/images/{name}/file [get]
func File(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		name, ok := types.ImageNameParam(c, "name")
		if !ok {
			return // Error response already sent by utility
		}

		stored, err := deps.ImageService.Get(c.Request.Context(), name)
		if err != nil {
			if errors.Is(err, imagesService.ErrImageNotFound) {
				types.SendNotFound(c, "Image not found")
			} else {
				types.SendError(c, err, "Failed to read image")
			}
			return
		}

		c.File(stored.Path)
	}
}

// Delete removes a stored image
// @Summary      Delete an image
// @Description  Remove a stored image. Annotation artifacts for the image are untouched.
// @Tags         images
// @Produce      json
// @Param        name path string true "Image file name"
// @Success      200 {object} types.BaseResponse "Image deleted"
// @Failure      404 {object} types.ErrorResponse "Image not found"
// @Failure      500 {object} types.ErrorResponse "Internal server error"
// @Router       /api/v1/images/{name} [delete]
func Delete(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		name, ok := types.ImageNameParam(c, "name")
		if !ok {
			return // Error response already sent by utility
		}

		// Deletion in the service is idempotent, so check existence first
		// to report missing images properly
		if _, err := deps.ImageService.Get(c.Request.Context(), name); err != nil {
			if errors.Is(err, imagesService.ErrImageNotFound) {
				types.SendNotFound(c, "Image not found")
			} else {
				types.SendError(c, err, "Failed to read image")
			}
			return
		}

		if err := deps.ImageService.Delete(c.Request.Context(), name); err != nil {
			types.SendError(c, err, "Failed to delete image")
			return
		}

		c.JSON(http.StatusOK, types.BaseResponse{Status: types.StatusOK, Message: "Image deleted"})
	}
}
