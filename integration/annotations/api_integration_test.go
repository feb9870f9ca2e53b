package annotations_test

import (
	"bytes"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/annolab/annotator-api/api"
	"github.com/annolab/annotator-api/api/types"
	"github.com/annolab/annotator-api/internal/database"
	"github.com/annolab/annotator-api/internal/models"
	imagesService "github.com/annolab/annotator-api/internal/services/images"
	labelsService "github.com/annolab/annotator-api/internal/services/labels"
	recordsService "github.com/annolab/annotator-api/internal/services/records"
	"github.com/annolab/annotator-api/internal/services/storage"
)

type IntegrationTestSuite struct {
	t      *testing.T
	deps   *types.Dependencies
	router *gin.Engine
}

// setupIntegrationTestSuite wires the full route table against tempdir
// artifact stores. withCatalog controls whether an in-memory catalog
// database is attached.
func setupIntegrationTestSuite(t *testing.T, withCatalog bool) *IntegrationTestSuite {
	gin.SetMode(gin.TestMode)

	annotationStore, err := storage.NewLocalArtifactStore(t.TempDir())
	require.NoError(t, err, "Failed to open annotations dir")
	uploadStore, err := storage.NewLocalArtifactStore(t.TempDir())
	require.NoError(t, err, "Failed to open uploads dir")
	annotatedStore, err := storage.NewLocalArtifactStore(t.TempDir())
	require.NoError(t, err, "Failed to open annotated images dir")

	deps := &types.Dependencies{
		LabelService: labelsService.NewService(annotationStore),
		ImageService: imagesService.NewService(uploadStore, annotatedStore),
	}

	var repo recordsService.Repository
	if withCatalog {
		db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		require.NoError(t, err, "Failed to connect to test database")
		require.NoError(t, db.AutoMigrate(&models.AnnotationRecord{}), "Failed to migrate test database")

		deps.DB = &database.DB{DB: db}
		repo = recordsService.NewRepository(db)
	}
	deps.RecordService = recordsService.NewService(annotationStore, deps.ImageService, repo)

	// Setup router with all routes
	router := gin.New()
	router.Use(gin.Recovery())

	rateLimiters := &sync.Map{}
	cleanupStop := make(chan struct{})
	cleanupInitialized := &sync.Once{}

	// Register routes like the real application
	err = api.RegisterRoutes(router, deps, rateLimiters, cleanupStop, cleanupInitialized)
	require.NoError(t, err, "Failed to register routes")

	return &IntegrationTestSuite{
		t:      t,
		deps:   deps,
		router: router,
	}
}

func (suite *IntegrationTestSuite) do(method, path string, payload interface{}) *httptest.ResponseRecorder {
	var body *bytes.Buffer
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(suite.t, err, "Failed to marshal payload")
		body = bytes.NewBuffer(raw)
	} else {
		body = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, body)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// uploadImage uploads a solid PNG with the given dimensions through the
// multipart endpoint.
func (suite *IntegrationTestSuite) uploadImage(name string, width, height int) {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{R: 180, G: 90, B: 30, A: 255})
		}
	}

	var encoded bytes.Buffer
	require.NoError(suite.t, png.Encode(&encoded, img), "Failed to encode test image")

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", name)
	require.NoError(suite.t, err, "Failed to create form file")
	_, err = part.Write(encoded.Bytes())
	require.NoError(suite.t, err, "Failed to write form file")
	require.NoError(suite.t, writer.Close(), "Failed to close multipart writer")

	req := httptest.NewRequest(http.MethodPost, "/api/v1/images", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	require.Equal(suite.t, http.StatusCreated, w.Code, "Failed to upload image: %s", w.Body.String())
}

func TestFullAnnotationWorkflow(t *testing.T) {
	suite := setupIntegrationTestSuite(t, true)

	// Step 1: Replace the label set
	w := suite.do(http.MethodPut, "/api/v1/labels", map[string]interface{}{
		"labels": []string{"cat", "dog"},
	})
	require.Equal(t, http.StatusOK, w.Code, "Failed to save labels")

	var labelsResponse types.LabelsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &labelsResponse))
	assert.Equal(t, []string{"cat", "dog"}, labelsResponse.Labels)
	assert.Equal(t, 2, labelsResponse.Count)

	// Step 2: Upload an image
	suite.uploadImage("photo.png", 200, 100)

	// Step 3: Save YOLO annotations for the image
	w = suite.do(http.MethodPost, "/api/v1/images/photo.png/annotations", map[string]interface{}{
		"annotation_format": "YOLO",
		"custom_labels":     []string{"cat", "dog"},
		"annotations": []map[string]interface{}{
			{"label": "cat", "x": 10.0, "y": 20.0, "width": 100.0, "height": 50.0},
		},
	})
	require.Equal(t, http.StatusCreated, w.Code, "Failed to save annotations: %s", w.Body.String())

	var saveResponse types.SaveAnnotationsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &saveResponse))
	require.NotNil(t, saveResponse.Record, "Save response should carry the record")
	assert.NotEmpty(t, saveResponse.Record.UUID)
	assert.Equal(t, "photo.png", saveResponse.Record.ImageName)
	assert.Equal(t, "YOLO", saveResponse.Record.Format)
	assert.Equal(t, 200, saveResponse.Record.ImageWidth)
	assert.Equal(t, 100, saveResponse.Record.ImageHeight)
	assert.Equal(t, 1, saveResponse.Record.BoxCount)

	// Step 4: Read the annotation document back
	w = suite.do(http.MethodGet, "/api/v1/images/photo.png/annotations", nil)
	require.Equal(t, http.StatusOK, w.Code, "Failed to get annotations")

	var documentResponse types.AnnotationDocumentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &documentResponse))
	require.NotNil(t, documentResponse.Document)
	assert.Equal(t, "YOLO", documentResponse.Document.AnnotationFormat)
	require.Len(t, documentResponse.Document.Annotations, 1)
	assert.Equal(t, "cat", documentResponse.Document.Annotations[0].Label)
	assert.Equal(t, 10.0, documentResponse.Document.Annotations[0].X)

	// Step 5: Export as YOLO text
	w = suite.do(http.MethodGet, "/api/v1/images/photo.png/annotations/export", nil)
	require.Equal(t, http.StatusOK, w.Code, "Failed to export annotations")
	assert.Contains(t, w.Header().Get("Content-Type"), "text/plain")
	assert.Contains(t, w.Header().Get("Content-Disposition"), "photo.txt")
	assert.Equal(t, "0 0.300000 0.450000 0.500000 0.500000\n", w.Body.String())

	// Step 6: The catalog lists the saved record
	w = suite.do(http.MethodGet, "/api/v1/annotations", nil)
	require.Equal(t, http.StatusOK, w.Code, "Failed to list records")

	var recordsResponse types.RecordsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &recordsResponse))
	require.Equal(t, 1, recordsResponse.Count)
	assert.Equal(t, "photo.png", recordsResponse.Records[0].ImageName)

	// Step 7: Delete the annotations
	w = suite.do(http.MethodDelete, "/api/v1/images/photo.png/annotations", nil)
	require.Equal(t, http.StatusOK, w.Code, "Failed to delete annotations")

	// Step 8: Export and document are gone, the upload stays
	w = suite.do(http.MethodGet, "/api/v1/images/photo.png/annotations/export", nil)
	assert.Equal(t, http.StatusNotFound, w.Code, "Export should be gone after deletion")

	w = suite.do(http.MethodGet, "/api/v1/images/photo.png", nil)
	assert.Equal(t, http.StatusOK, w.Code, "Upload should survive annotation deletion")
}

func TestResavingSwitchesExportFormat(t *testing.T) {
	suite := setupIntegrationTestSuite(t, true)
	suite.uploadImage("scene.jpg", 400, 300)

	box := []map[string]interface{}{
		{"label": "dog", "x": 40.0, "y": 60.0, "width": 200.0, "height": 150.0},
	}

	w := suite.do(http.MethodPost, "/api/v1/images/scene.jpg/annotations", map[string]interface{}{
		"annotation_format": "YOLO",
		"custom_labels":     []string{"cat", "dog"},
		"annotations":       box,
	})
	require.Equal(t, http.StatusCreated, w.Code, "Failed to save YOLO annotations: %s", w.Body.String())

	// Re-save the same image in Pascal VOC format
	w = suite.do(http.MethodPost, "/api/v1/images/scene.jpg/annotations", map[string]interface{}{
		"annotation_format": "Pascal VOC",
		"custom_labels":     []string{"cat", "dog"},
		"annotations":       box,
	})
	require.Equal(t, http.StatusCreated, w.Code, "Failed to re-save annotations: %s", w.Body.String())

	// The export follows the latest save
	w = suite.do(http.MethodGet, "/api/v1/images/scene.jpg/annotations/export", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t,
		"Pascal VOC annotation summary:\nLabel: dog, Coordinates: (x: 40, y: 60, width: 200, height: 150)\n",
		w.Body.String())

	// Still a single catalog row for the image
	w = suite.do(http.MethodGet, "/api/v1/annotations", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var recordsResponse types.RecordsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &recordsResponse))
	require.Equal(t, 1, recordsResponse.Count)
	assert.Equal(t, "Pascal VOC", recordsResponse.Records[0].Format)
}

func TestWorkflowWithoutCatalogDatabase(t *testing.T) {
	suite := setupIntegrationTestSuite(t, false)
	suite.uploadImage("standalone.png", 64, 64)

	w := suite.do(http.MethodPost, "/api/v1/images/standalone.png/annotations", map[string]interface{}{
		"annotation_format": "YOLO",
		"annotations": []map[string]interface{}{
			{"label": "object", "x": 0.0, "y": 0.0, "width": 32.0, "height": 32.0},
		},
	})
	require.Equal(t, http.StatusCreated, w.Code, "Failed to save annotations: %s", w.Body.String())

	// The record listing falls back to scanning the artifact store
	w = suite.do(http.MethodGet, "/api/v1/annotations", nil)
	require.Equal(t, http.StatusOK, w.Code, "Failed to list records without a database")

	var recordsResponse types.RecordsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &recordsResponse))
	require.Equal(t, 1, recordsResponse.Count)
	assert.Equal(t, "standalone.png", recordsResponse.Records[0].ImageName)
	assert.Equal(t, 64, recordsResponse.Records[0].ImageWidth)
}

func TestValidationAcrossTheStack(t *testing.T) {
	suite := setupIntegrationTestSuite(t, true)
	suite.uploadImage("valid.png", 100, 100)

	tests := []struct {
		name           string
		path           string
		payload        map[string]interface{}
		expectedStatus int
	}{
		{
			name: "unknown annotation format",
			path: "/api/v1/images/valid.png/annotations",
			payload: map[string]interface{}{
				"annotation_format": "COCO",
				"annotations":       []map[string]interface{}{},
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "annotations for missing image",
			path: "/api/v1/images/nope.png/annotations",
			payload: map[string]interface{}{
				"annotation_format": "YOLO",
				"annotations":       []map[string]interface{}{},
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name: "missing format field",
			path: "/api/v1/images/valid.png/annotations",
			payload: map[string]interface{}{
				"annotations": []map[string]interface{}{},
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := suite.do(http.MethodPost, tt.path, tt.payload)
			assert.Equal(t, tt.expectedStatus, w.Code, "Unexpected status: %s", w.Body.String())
		})
	}

	// Route level validation: an unknown endpoint yields the JSON 404
	w := suite.do(http.MethodGet, "/api/v1/nonexistent", nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	var notFound map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &notFound))
	assert.Equal(t, "error", notFound["status"])
}
