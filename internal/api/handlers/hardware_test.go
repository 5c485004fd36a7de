package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"project-tracker-backend/internal/api/handlers"
	"project-tracker-backend/internal/database/models"
	apperrors "project-tracker-backend/internal/errors"
	"project-tracker-backend/internal/mocks"
	"project-tracker-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// HardwareHandlerTestSuite defines the test suite for HardwareHandler
type HardwareHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockHardwareServiceInterface
	handler     *handlers.HardwareHandler
	router      *gin.Engine
}

// SetupTest sets up the test suite
func (suite *HardwareHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockHardwareServiceInterface(suite.ctrl)
	suite.handler = handlers.NewHardwareHandler(suite.mockService)
	suite.router = gin.New()
	suite.setupRoutes()
}

// TearDownTest cleans up after each test
func (suite *HardwareHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// setupRoutes sets up the routes for testing
func (suite *HardwareHandlerTestSuite) setupRoutes() {
	suite.router.GET("/hardware", suite.handler.GetAllHardware)
	suite.router.POST("/hardware", suite.handler.CreateHardware)
	suite.router.GET("/hardware/:id", suite.handler.GetHardware)
	suite.router.PUT("/hardware/:id", suite.handler.UpdateHardware)
	suite.router.DELETE("/hardware/:id", suite.handler.DeleteHardware)
}

// TestCreateHardware tests the CreateHardware handler
func (suite *HardwareHandlerTestSuite) TestCreateHardware() {
	suite.T().Run("Success", func(t *testing.T) {
		created := &models.Hardware{
			BaseModel:      models.BaseModel{ID: uuid.New()},
			Name:           "ThinkPad X1",
			DateOfPurchase: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		}
		suite.mockService.EXPECT().Create(gomock.Any()).Return(created, nil).Times(1)

		body, _ := json.Marshal(service.CreateHardwareRequest{
			Name:           "ThinkPad X1",
			DateOfPurchase: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		})
		req := httptest.NewRequest(http.MethodPost, "/hardware", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		suite.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "ThinkPad X1")
	})

	suite.T().Run("Issued to missing person", func(t *testing.T) {
		suite.mockService.EXPECT().
			Create(gomock.Any()).
			Return(nil, apperrors.ErrPersonNotFound).
			Times(1)

		issuedTo := uuid.New()
		body, _ := json.Marshal(service.CreateHardwareRequest{
			Name:           "ThinkPad X1",
			DateOfPurchase: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			IssuedToID:     &issuedTo,
		})
		req := httptest.NewRequest(http.MethodPost, "/hardware", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		suite.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"error": "person not found"}`, w.Body.String())
	})

	suite.T().Run("Invalid JSON", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/hardware", bytes.NewBuffer([]byte("invalid json")))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		suite.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

// TestGetHardware tests the GetHardware handler
func (suite *HardwareHandlerTestSuite) TestGetHardware() {
	suite.T().Run("Success", func(t *testing.T) {
		id := uuid.New()
		suite.mockService.EXPECT().
			GetByID(id).
			Return(&models.Hardware{
				BaseModel: models.BaseModel{ID: id},
				Name:      "ThinkPad X1",
			}, nil).
			Times(1)

		req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/hardware/%s", id), nil)
		w := httptest.NewRecorder()

		suite.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "ThinkPad X1")
	})

	suite.T().Run("Not found", func(t *testing.T) {
		id := uuid.New()
		suite.mockService.EXPECT().
			GetByID(id).
			Return(nil, apperrors.ErrHardwareNotFound).
			Times(1)

		req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/hardware/%s", id), nil)
		w := httptest.NewRecorder()

		suite.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	suite.T().Run("Invalid UUID", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/hardware/invalid-uuid", nil)
		w := httptest.NewRecorder()

		suite.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "invalid hardware ID")
	})
}

// TestUpdateHardware tests the UpdateHardware handler
func (suite *HardwareHandlerTestSuite) TestUpdateHardware() {
	suite.T().Run("Success", func(t *testing.T) {
		id := uuid.New()
		name := "ThinkPad X1 Carbon"
		updated := &models.Hardware{
			BaseModel: models.BaseModel{ID: id},
			Name:      name,
		}
		suite.mockService.EXPECT().Update(id, gomock.Any()).Return(updated, nil).Times(1)

		body, _ := json.Marshal(service.UpdateHardwareRequest{Name: &name})
		req := httptest.NewRequest(http.MethodPut, fmt.Sprintf("/hardware/%s", id), bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		suite.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "ThinkPad X1 Carbon")
	})

	suite.T().Run("Not found", func(t *testing.T) {
		id := uuid.New()
		suite.mockService.EXPECT().
			Update(id, gomock.Any()).
			Return(nil, apperrors.ErrHardwareNotFound).
			Times(1)

		req := httptest.NewRequest(http.MethodPut, fmt.Sprintf("/hardware/%s", id), bytes.NewBuffer([]byte(`{}`)))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		suite.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

// TestDeleteHardware tests the DeleteHardware handler
func (suite *HardwareHandlerTestSuite) TestDeleteHardware() {
	suite.T().Run("Success", func(t *testing.T) {
		id := uuid.New()
		suite.mockService.EXPECT().Delete(id).Return(nil).Times(1)

		req := httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/hardware/%s", id), nil)
		w := httptest.NewRecorder()

		suite.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"message": "Hardware deleted successfully"}`, w.Body.String())
	})

	suite.T().Run("Not found", func(t *testing.T) {
		id := uuid.New()
		suite.mockService.EXPECT().Delete(id).Return(apperrors.ErrHardwareNotFound).Times(1)

		req := httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/hardware/%s", id), nil)
		w := httptest.NewRecorder()

		suite.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

// TestGetAllHardware tests the GetAllHardware handler
func (suite *HardwareHandlerTestSuite) TestGetAllHardware() {
	suite.T().Run("Success", func(t *testing.T) {
		suite.mockService.EXPECT().
			GetAll().
			Return([]models.Hardware{
				{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "ThinkPad X1"},
				{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "Dell U2720Q"},
			}, nil).
			Times(1)

		req := httptest.NewRequest(http.MethodGet, "/hardware", nil)
		w := httptest.NewRecorder()

		suite.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var response []map[string]interface{}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Len(t, response, 2)
	})

	suite.T().Run("Service error", func(t *testing.T) {
		suite.mockService.EXPECT().
			GetAll().
			Return(nil, assert.AnError).
			Times(1)

		req := httptest.NewRequest(http.MethodGet, "/hardware", nil)
		w := httptest.NewRecorder()

		suite.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"error": "Error fetching hardware"}`, w.Body.String())
	})
}

// TestHardwareHandlerTestSuite runs the test suite
func TestHardwareHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HardwareHandlerTestSuite))
}
