package labels

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/annolab/annotator-api/api/types"
	labelsService "github.com/annolab/annotator-api/internal/services/labels"
)

// GetLabels returns the saved label set
// @Summary      Get label set
// @Description  Retrieve the shared label set that bounding boxes are annotated with
// @Tags         labels
// @Produce      json
// @Success      200 {object} types.LabelsResponse "Current label set"
// @Failure      500 {object} types.ErrorResponse "Internal server error"
// @Router       /api/v1/labels [get]
func GetLabels(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		labelSet, err := deps.LabelService.GetLabels(c.Request.Context())
		if err != nil {
			types.SendError(c, err, "Failed to read labels")
			return
		}

		types.SendSuccess(c, types.LabelsResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK, Message: "Labels retrieved"},
			Labels:       labelSet,
			Count:        len(labelSet),
		})
	}
}

// ReplaceLabels overwrites the saved label set
// @Summary      Replace label set
// @Description  Overwrite the label file with the given labels. Blank entries are dropped, the rest are trimmed. An empty list clears the file.
// @Tags         labels
// @Accept       json
// @Produce      json
// @Param        labels body types.SaveLabelsRequest true "Labels, one entry per label"
// @Success      200 {object} types.LabelsResponse "Saved label set"
// @Failure      400 {object} types.ErrorResponse "Invalid request"
// @Failure      500 {object} types.ErrorResponse "Internal server error"
// @Router       /api/v1/labels [put]
func ReplaceLabels(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Parse request body using utility function
		var req types.SaveLabelsRequest
		if !types.BindJSONOrError(c, &req) {
			return // Error response already sent by utility
		}

		labelSet, err := deps.LabelService.ReplaceLabels(c.Request.Context(), req.Labels)
		if err != nil {
			types.SendError(c, err, "Failed to save labels")
			return
		}

		types.SendSuccess(c, types.LabelsResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK, Message: "Labels saved"},
			Labels:       labelSet,
			Count:        len(labelSet),
		})
	}
}

// AddLabel appends a single label to the saved set
// @Summary      Add a label
// @Description  Append one label to the label file without touching the existing entries
// @Tags         labels
// @Accept       json
// @Produce      json
// @Param        label body types.AddLabelRequest true "Label to append"
// @Success      201 {object} types.LabelsResponse "Label set including the new label"
// @Failure      400 {object} types.ErrorResponse "Invalid request"
// @Failure      500 {object} types.ErrorResponse "Internal server error"
// @Router       /api/v1/labels [post]
func AddLabel(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Parse request body using utility function
		var req types.AddLabelRequest
		if !types.BindJSONOrError(c, &req) {
			return // Error response already sent by utility
		}

		labelSet, err := deps.LabelService.AddLabel(c.Request.Context(), req.Label)
		if err != nil {
			if errors.Is(err, labelsService.ErrEmptyLabel) {
				types.SendBadRequest(c, labelsService.ErrEmptyLabel.Error())
			} else {
				types.SendError(c, err, "Failed to add label")
			}
			return
		}

		types.SendCreated(c, types.LabelsResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK, Message: "Label added"},
			Labels:       labelSet,
			Count:        len(labelSet),
		})
	}
}
