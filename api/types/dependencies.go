package types

import (
	"github.com/annolab/annotator-api/internal/database"
	"github.com/annolab/annotator-api/internal/services/images"
	"github.com/annolab/annotator-api/internal/services/labels"
	"github.com/annolab/annotator-api/internal/services/records"
)

// Dependencies holds all the dependencies needed by handlers
type Dependencies struct {
	DB            *database.DB
	LabelService  labels.Service
	ImageService  images.Service
	RecordService records.Service
}
