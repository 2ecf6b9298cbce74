package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/inventory-api/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestDeleteProductHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockProductDeleter(ctrl)

	r := chi.NewRouter()
	r.Delete("/api/products/{id}", NewDeleteProductHandler(mockSvc))

	tests := []struct {
		name         string
		url          string
		mockSetup    func()
		expectedCode int
		expectedBody string
	}{
		{
			name: "success",
			url:  "/api/products/10",
			mockSetup: func() {
				mockSvc.EXPECT().Delete(gomock.Any(), int64(10)).Return(nil)
			},
			expectedCode: http.StatusNoContent,
			expectedBody: "",
		},
		{
			name:         "invalid product ID",
			url:          "/api/products/abc",
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"message":"Invalid product ID"}` + "\n",
		},
		{
			name: "product not found",
			url:  "/api/products/99",
			mockSetup: func() {
				mockSvc.EXPECT().Delete(gomock.Any(), int64(99)).Return(services.ErrProductNotFound)
			},
			expectedCode: http.StatusNotFound,
			expectedBody: `{"message":"Product not found"}` + "\n",
		},
		{
			name: "internal error",
			url:  "/api/products/10",
			mockSetup: func() {
				mockSvc.EXPECT().Delete(gomock.Any(), int64(10)).Return(errors.New("db error"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"message":"Internal server error"}` + "\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			req := httptest.NewRequest(http.MethodDelete, tt.url, nil)
			w := httptest.NewRecorder()

			r.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
			assert.Equal(t, tt.expectedBody, w.Body.String())
		})
	}
}
