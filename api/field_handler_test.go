package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"net/http/httptest"
	"testing"

	"github.com/catalinarubies/field-booking/api"
	mock_api "github.com/catalinarubies/field-booking/api/mocks"
	bk "github.com/catalinarubies/field-booking/booking"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func setupFieldRouter(t *testing.T, write ...gin.HandlerFunc) (*gin.Engine, *gomock.Controller, *mock_api.MockFieldService) {
	t.Helper()
	ctrl := gomock.NewController(t)

	gin.SetMode(gin.TestMode)
	router := gin.Default()
	mockService := mock_api.NewMockFieldService(ctrl)
	api.NewFieldHandler(mockService).Register(router.Group("/fields"), write...)

	return router, ctrl, mockService
}

func TestGetField(t *testing.T) {
	setup := func(t *testing.T) (*gin.Engine, *gomock.Controller, *mock_api.MockFieldService) {
		return setupFieldRouter(t)
	}

	t.Run("success", func(t *testing.T) {
		router, ctrl, mockService := setup(t)
		defer ctrl.Finish()

		field := bk.Field{ID: "f-42", Name: "Cancha 5", Sport: "football", PricePerHour: 4000, Available: true}
		fieldJson, _ := json.Marshal(field)
		mockService.EXPECT().FindFieldByID(gomock.Any(), "f-42").Return(field, nil).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/fields/f-42", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 200, w.Code)
		assert.JSONEq(t, string(fieldJson), w.Body.String())
	})

	t.Run("not found", func(t *testing.T) {
		router, ctrl, mockService := setup(t)
		defer ctrl.Finish()

		mockService.EXPECT().FindFieldByID(gomock.Any(), "f-0").Return(bk.Field{}, bk.ErrFieldNotFound).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/fields/f-0", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 404, w.Code)
		assert.JSONEq(t, `{"message":"field not found"}`, w.Body.String())
	})

	t.Run("repo error", func(t *testing.T) {
		router, ctrl, mockService := setup(t)
		defer ctrl.Finish()

		mockService.EXPECT().FindFieldByID(gomock.Any(), "f-42").Return(bk.Field{}, assert.AnError).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/fields/f-42", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 500, w.Code)
	})
}

func TestCreateField(t *testing.T) {

	t.Run("success", func(t *testing.T) {
		router, ctrl, mockService := setupFieldRouter(t)
		defer ctrl.Finish()

		in := bk.NewField{Name: "Cancha 5", Sport: "football", Location: "Palermo", PricePerHour: 4000}
		created := bk.Field{ID: "f-42", Name: "Cancha 5", Sport: "football", Location: "Palermo", PricePerHour: 4000, Available: true}
		mockService.EXPECT().CreateField(gomock.Any(), in).Return(created, nil).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/fields", strings.NewReader(
			`{"name":"Cancha 5","sport":"football","location":"Palermo","price_per_hour":4000}`))
		router.ServeHTTP(w, req)

		assert.Equal(t, 201, w.Code)
		createdJson, _ := json.Marshal(created)
		assert.JSONEq(t, string(createdJson), w.Body.String())
	})

	t.Run("missing price is a bad request", func(t *testing.T) {
		router, ctrl, mockService := setupFieldRouter(t)
		defer ctrl.Finish()

		mockService.EXPECT().CreateField(gomock.Any(), gomock.Any()).Times(0)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/fields", strings.NewReader(`{"name":"Cancha 5","sport":"football","location":"Palermo"}`))
		router.ServeHTTP(w, req)

		assert.Equal(t, 400, w.Code)
		assert.JSONEq(t, `{"message":"failed to parse JSON body"}`, w.Body.String())
	})

	t.Run("write middleware runs first", func(t *testing.T) {
		deny := func(c *gin.Context) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "invalid authentication"})
		}
		router, ctrl, mockService := setupFieldRouter(t, deny)
		defer ctrl.Finish()

		mockService.EXPECT().CreateField(gomock.Any(), gomock.Any()).Times(0)
		mockService.EXPECT().DeleteField(gomock.Any(), gomock.Any()).Times(0)
		mockService.EXPECT().FindFieldByID(gomock.Any(), "f-42").Return(bk.Field{ID: "f-42"}, nil).Times(1)

		for _, tc := range []struct{ method, path string }{{"POST", "/fields"}, {"DELETE", "/fields/f-42"}} {
			w := httptest.NewRecorder()
			req, _ := http.NewRequest(tc.method, tc.path, strings.NewReader(`{}`))
			router.ServeHTTP(w, req)
			assert.Equal(t, 401, w.Code)
		}

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/fields/f-42", nil)
		router.ServeHTTP(w, req)
		assert.Equal(t, 200, w.Code)
	})
}

func TestUpdateField(t *testing.T) {

	t.Run("success", func(t *testing.T) {
		router, ctrl, mockService := setupFieldRouter(t)
		defer ctrl.Finish()

		updated := bk.Field{ID: "f-42", Name: "Cancha 5", PricePerHour: 4000, Available: false}
		mockService.EXPECT().UpdateField(gomock.Any(), "f-42", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, update bk.FieldUpdate) (bk.Field, error) {
				assert.Nil(t, update.Name)
				if assert.NotNil(t, update.Available) {
					assert.False(t, *update.Available)
				}
				return updated, nil
			}).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("PUT", "/fields/f-42", strings.NewReader(`{"available":false}`))
		router.ServeHTTP(w, req)

		assert.Equal(t, 200, w.Code)
		assert.Contains(t, w.Body.String(), `"available": false`)
	})

	t.Run("not found", func(t *testing.T) {
		router, ctrl, mockService := setupFieldRouter(t)
		defer ctrl.Finish()

		mockService.EXPECT().UpdateField(gomock.Any(), "f-0", gomock.Any()).Return(bk.Field{}, bk.ErrFieldNotFound).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("PUT", "/fields/f-0", strings.NewReader(`{"name":"x"}`))
		router.ServeHTTP(w, req)

		assert.Equal(t, 404, w.Code)
	})

	t.Run("invalid field", func(t *testing.T) {
		router, ctrl, mockService := setupFieldRouter(t)
		defer ctrl.Finish()

		mockService.EXPECT().UpdateField(gomock.Any(), "f-42", gomock.Any()).Return(bk.Field{}, bk.ErrInvalidField).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("PUT", "/fields/f-42", strings.NewReader(`{"name":""}`))
		router.ServeHTTP(w, req)

		assert.Equal(t, 400, w.Code)
		assert.JSONEq(t, `{"message":"`+bk.ErrInvalidField.Error()+`"}`, w.Body.String())
	})
}

func TestDeleteField(t *testing.T) {

	t.Run("success", func(t *testing.T) {
		router, ctrl, mockService := setupFieldRouter(t)
		defer ctrl.Finish()

		mockService.EXPECT().DeleteField(gomock.Any(), "f-42").Return(nil).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("DELETE", "/fields/f-42", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 200, w.Code)
		assert.JSONEq(t, `{"message":"field deleted"}`, w.Body.String())
	})

	t.Run("field with bookings", func(t *testing.T) {
		router, ctrl, mockService := setupFieldRouter(t)
		defer ctrl.Finish()

		mockService.EXPECT().DeleteField(gomock.Any(), "f-42").Return(bk.ErrFieldHasBookings).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("DELETE", "/fields/f-42", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 409, w.Code)
	})

	t.Run("repo error", func(t *testing.T) {
		router, ctrl, mockService := setupFieldRouter(t)
		defer ctrl.Finish()

		mockService.EXPECT().DeleteField(gomock.Any(), "f-42").Return(assert.AnError).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("DELETE", "/fields/f-42", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 500, w.Code)
		assert.JSONEq(t, `{"message":"failed to delete field"}`, w.Body.String())
	})
}
