package handlers_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"project-tracker-backend/internal/api/handlers"
	apperrors "project-tracker-backend/internal/errors"
	"project-tracker-backend/internal/mocks"
	"project-tracker-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// UploadHandlerTestSuite defines the test suite for UploadHandler
type UploadHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockUploadServiceInterface
	handler     *handlers.UploadHandler
	router      *gin.Engine
}

// SetupTest sets up the test suite
func (suite *UploadHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockUploadServiceInterface(suite.ctrl)
	suite.handler = handlers.NewUploadHandler(suite.mockService)
	suite.router = gin.New()
	suite.router.POST("/upload", suite.handler.Upload)
}

// TearDownTest cleans up after each test
func (suite *UploadHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// multipartBody builds a multipart payload with the given files under the "files" field
func multipartBody(t *testing.T, names ...string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for _, name := range names {
		part, err := writer.CreateFormFile("files", name)
		require.NoError(t, err)
		_, err = part.Write([]byte("content of " + name))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())
	return &buf, writer.FormDataContentType()
}

// TestUpload tests the Upload handler
func (suite *UploadHandlerTestSuite) TestUpload() {
	suite.T().Run("Success", func(t *testing.T) {
		suite.mockService.EXPECT().
			SaveFiles(gomock.Any()).
			DoAndReturn(func(files []*multipart.FileHeader) ([]service.FileDescriptor, error) {
				assert.Len(t, files, 2)
				return []service.FileDescriptor{
					{FileName: "a.pdf", FileURL: "/uploads/1700000000000-a.pdf", FileType: "application/octet-stream", FileSize: 12},
					{FileName: "b.txt", FileURL: "/uploads/1700000000001-b.txt", FileType: "application/octet-stream", FileSize: 12},
				}, nil
			}).
			Times(1)

		body, contentType := multipartBody(t, "a.pdf", "b.txt")
		req := httptest.NewRequest(http.MethodPost, "/upload", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()

		suite.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var response struct {
			Files []service.FileDescriptor `json:"files"`
		}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Len(t, response.Files, 2)
		assert.Equal(t, "a.pdf", response.Files[0].FileName)
	})

	suite.T().Run("No files", func(t *testing.T) {
		suite.mockService.EXPECT().
			SaveFiles(gomock.Any()).
			Return(nil, apperrors.ErrNoFilesProvided).
			Times(1)

		// A multipart form that carries no "files" parts
		var buf bytes.Buffer
		writer := multipart.NewWriter(&buf)
		require.NoError(t, writer.WriteField("unused", "x"))
		require.NoError(t, writer.Close())

		req := httptest.NewRequest(http.MethodPost, "/upload", &buf)
		req.Header.Set("Content-Type", writer.FormDataContentType())
		w := httptest.NewRecorder()

		suite.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error": "No files provided"}`, w.Body.String())
	})

	suite.T().Run("Not multipart", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/upload", bytes.NewBufferString("{}"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		suite.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"error": "Error uploading files"}`, w.Body.String())
	})

	suite.T().Run("Store failure", func(t *testing.T) {
		suite.mockService.EXPECT().
			SaveFiles(gomock.Any()).
			Return(nil, apperrors.NewUploadError("a.pdf", assert.AnError)).
			Times(1)

		body, contentType := multipartBody(t, "a.pdf")
		req := httptest.NewRequest(http.MethodPost, "/upload", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()

		suite.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"error": "Error uploading files"}`, w.Body.String())
	})
}

// TestUploadHandlerTestSuite runs the test suite
func TestUploadHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(UploadHandlerTestSuite))
}
