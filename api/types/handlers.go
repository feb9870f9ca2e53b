package types

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/annolab/annotator-api/pkg/errors"
)

// Handler utility functions to reduce duplication across handlers

// ImageNameParam extracts a URL parameter holding an image file name
// Returns the value and sends error response if the parameter is empty
func ImageNameParam(c *gin.Context, paramName string) (string, bool) {
	name := c.Param(paramName)
	if name == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "Missing " + paramName,
		})
		return "", false
	}
	return name, true
}

// BindJSONOrError attempts to bind JSON request body to target struct
// Returns false and sends error response if binding fails
func BindJSONOrError(c *gin.Context, target interface{}) bool {
	if err := c.ShouldBindJSON(target); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid request body",
			Details: err.Error(),
		})
		return false
	}
	return true
}

// SendBadRequest sends a standardized bad request response
func SendBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: message})
}

// SendNotFound sends a standardized not found response
func SendNotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, ErrorResponse{Error: message})
}

// SendUnsupportedMediaType sends a standardized unsupported media type response
func SendUnsupportedMediaType(c *gin.Context, message string) {
	c.JSON(http.StatusUnsupportedMediaType, ErrorResponse{Error: message})
}

// SendInternalError sends a standardized internal server error response
func SendInternalError(c *gin.Context, message string) {
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: message})
}

// SendError maps an error to a response, surfacing the code and details of
// application errors anywhere in the chain
// Errors without an application code become plain internal server errors
func SendError(c *gin.Context, err error, message string) {
	appErr, ok := apperrors.AsAppError(err)
	if !ok {
		SendInternalError(c, message)
		return
	}
	c.JSON(appErr.GetHTTPCode(), ErrorResponse{
		Status:  StatusError,
		Message: message,
		Error:   string(appErr.Code),
		Details: appErr.Details,
	})
}

// SendSuccess sends a standardized success response with data
func SendSuccess(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// SendCreated sends a standardized created response with data
func SendCreated(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}
