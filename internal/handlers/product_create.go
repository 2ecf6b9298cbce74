package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/sbilibin2017/inventory-api/internal/logger"
	"github.com/sbilibin2017/inventory-api/internal/models"
)

// ProductCreator defines the interface that the creation service must implement.
type ProductCreator interface {
	Create(ctx context.Context, name string, price float64, stock int64) (*models.ProductDB, error)
}

// CreateProductRequest represents the JSON body for product creation
// swagger:model CreateProductRequest
type CreateProductRequest struct {
	// Product name
	// required: true
	// default: Widget
	Name string `json:"name"`

	// Unit price, must be positive
	// required: true
	// default: 9.99
	Price float64 `json:"price"`

	// Units in stock, must be non-negative
	// default: 10
	Stock int64 `json:"stock"`
}

// Validate runs validation rules on the product creation request.
func (r CreateProductRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&r.Price, validation.Required, validation.Min(0.01)),
		validation.Field(&r.Stock, validation.Min(int64(0))),
	)
}

// NewCreateProductHandler returns an HTTP handler creating a product.
// @Summary Create a product
// @Description Creates a new product with name, price and stock
// @Tags products
// @Accept json
// @Produce json
// @Param createProductRequest body handlers.CreateProductRequest true "Product creation request"
// @Success 201 {object} models.ProductDB "Created product"
// @Failure 400 {object} handlers.ProductErrorResponse "Invalid request"
// @Failure 401 {object} handlers.ProductErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.ProductErrorResponse "Internal server error"
// @Router /api/products [post]
// @Security BearerAuth
func NewCreateProductHandler(svc ProductCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		var req CreateProductRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ProductErrorResponse{
				Message: "Invalid request body",
			})
			return
		}

		if err := req.Validate(); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ProductErrorResponse{
				Message: err.Error(),
			})
			return
		}

		product, err := svc.Create(r.Context(), req.Name, req.Price, req.Stock)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ProductErrorResponse{
				Message: "Internal server error",
			})
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(product)
	}
}
