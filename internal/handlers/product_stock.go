package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/inventory-api/internal/logger"
	"github.com/sbilibin2017/inventory-api/internal/models"
	"github.com/sbilibin2017/inventory-api/internal/services"
)

// StockUpdater defines the interface that the stock update service must implement.
type StockUpdater interface {
	UpdateStock(ctx context.Context, id, stock int64) (*models.ProductDB, error)
}

// NewUpdateProductStockHandler returns an HTTP handler updating product stock.
// The new stock level is passed as a query parameter.
// @Summary Update product stock
// @Description Sets the stock level of an existing product
// @Tags products
// @Produce json
// @Param id path int true "Product ID"
// @Param stock query int true "New stock level"
// @Success 200 {object} models.ProductDB "Updated product"
// @Failure 400 {object} handlers.ProductErrorResponse "Invalid product ID or stock"
// @Failure 401 {object} handlers.ProductErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ProductErrorResponse "Product not found"
// @Failure 500 {object} handlers.ProductErrorResponse "Internal server error"
// @Router /api/products/{id}/stock [put]
// @Security BearerAuth
func NewUpdateProductStockHandler(svc StockUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ProductErrorResponse{
				Message: "Invalid product ID",
			})
			return
		}

		stock, err := strconv.ParseInt(r.URL.Query().Get("stock"), 10, 64)
		if err != nil || stock < 0 {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ProductErrorResponse{
				Message: "Stock must be a non-negative integer",
			})
			return
		}

		product, err := svc.UpdateStock(r.Context(), id, stock)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrProductNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ProductErrorResponse{
					Message: "Product not found",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ProductErrorResponse{
					Message: "Internal server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(product)
	}
}
