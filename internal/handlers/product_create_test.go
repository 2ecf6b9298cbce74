package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/inventory-api/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestCreateProductHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockProductCreator(ctrl)

	tests := []struct {
		name         string
		inputBody    interface{}
		mockSetup    func()
		expectedCode int
	}{
		{
			name: "success",
			inputBody: CreateProductRequest{
				Name:  "Widget",
				Price: 9.99,
				Stock: 5,
			},
			mockSetup: func() {
				mockSvc.EXPECT().
					Create(gomock.Any(), "Widget", 9.99, int64(5)).
					Return(&models.ProductDB{ID: 1, Name: "Widget", Price: 9.99, Stock: 5}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "zero stock is valid",
			inputBody: CreateProductRequest{
				Name:  "Widget",
				Price: 9.99,
			},
			mockSetup: func() {
				mockSvc.EXPECT().
					Create(gomock.Any(), "Widget", 9.99, int64(0)).
					Return(&models.ProductDB{ID: 1, Name: "Widget", Price: 9.99}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:         "invalid JSON",
			inputBody:    "{invalid json}",
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "missing name",
			inputBody: CreateProductRequest{
				Price: 9.99,
			},
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "missing price",
			inputBody: CreateProductRequest{
				Name: "Widget",
			},
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "internal error",
			inputBody: CreateProductRequest{
				Name:  "Widget",
				Price: 9.99,
				Stock: 5,
			},
			mockSetup: func() {
				mockSvc.EXPECT().
					Create(gomock.Any(), "Widget", 9.99, int64(5)).
					Return(nil, errors.New("db error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			var bodyBytes []byte
			switch v := tt.inputBody.(type) {
			case string:
				bodyBytes = []byte(v)
			default:
				bodyBytes, _ = json.Marshal(v)
			}

			req := httptest.NewRequest(http.MethodPost, "/api/products", bytes.NewReader(bodyBytes))
			w := httptest.NewRecorder()

			NewCreateProductHandler(mockSvc).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}
