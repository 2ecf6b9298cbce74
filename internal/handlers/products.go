package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/inventory-api/internal/logger"
	"github.com/sbilibin2017/inventory-api/internal/models"
)

// ProductLister defines the interface that the listing service must implement.
type ProductLister interface {
	List(ctx context.Context) ([]models.ProductDB, error)
}

// ProductErrorResponse represents an error response for product operations
// swagger:model ProductErrorResponse
type ProductErrorResponse struct {
	// Error message
	// default: Product not found
	Message string `json:"message"`
}

// NewListProductsHandler returns an HTTP handler listing all products.
// @Summary List products
// @Description Returns all products ordered by id
// @Tags products
// @Produce json
// @Success 200 {array} models.ProductDB "Product list"
// @Failure 401 {object} handlers.ProductErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.ProductErrorResponse "Internal server error"
// @Router /api/products [get]
// @Security BearerAuth
func NewListProductsHandler(svc ProductLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		products, err := svc.List(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ProductErrorResponse{
				Message: "Internal server error",
			})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(products)
	}
}
