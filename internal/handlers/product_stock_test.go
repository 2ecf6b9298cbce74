package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/inventory-api/internal/models"
	"github.com/sbilibin2017/inventory-api/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestUpdateProductStockHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockStockUpdater(ctrl)

	r := chi.NewRouter()
	r.Put("/api/products/{id}/stock", NewUpdateProductStockHandler(mockSvc))

	tests := []struct {
		name         string
		url          string
		mockSetup    func()
		expectedCode int
		expectedBody string
	}{
		{
			name: "success",
			url:  "/api/products/10/stock?stock=7",
			mockSetup: func() {
				mockSvc.EXPECT().
					UpdateStock(gomock.Any(), int64(10), int64(7)).
					Return(&models.ProductDB{ID: 10, Name: "Widget", Stock: 7}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "invalid product ID",
			url:          "/api/products/abc/stock?stock=7",
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"message":"Invalid product ID"}` + "\n",
		},
		{
			name:         "missing stock param",
			url:          "/api/products/10/stock",
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"message":"Stock must be a non-negative integer"}` + "\n",
		},
		{
			name:         "negative stock",
			url:          "/api/products/10/stock?stock=-1",
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"message":"Stock must be a non-negative integer"}` + "\n",
		},
		{
			name: "product not found",
			url:  "/api/products/99/stock?stock=7",
			mockSetup: func() {
				mockSvc.EXPECT().
					UpdateStock(gomock.Any(), int64(99), int64(7)).
					Return(nil, services.ErrProductNotFound)
			},
			expectedCode: http.StatusNotFound,
			expectedBody: `{"message":"Product not found"}` + "\n",
		},
		{
			name: "internal error",
			url:  "/api/products/10/stock?stock=7",
			mockSetup: func() {
				mockSvc.EXPECT().
					UpdateStock(gomock.Any(), int64(10), int64(7)).
					Return(nil, errors.New("db error"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"message":"Internal server error"}` + "\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			req := httptest.NewRequest(http.MethodPut, tt.url, nil)
			w := httptest.NewRecorder()

			r.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedBody != "" {
				assert.Equal(t, tt.expectedBody, w.Body.String())
			}
		})
	}
}
