package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/inventory-api/internal/logger"
	"github.com/sbilibin2017/inventory-api/internal/services"
)

// ProductDeleter defines the interface that the deletion service must implement.
type ProductDeleter interface {
	Delete(ctx context.Context, id int64) error
}

// NewDeleteProductHandler returns an HTTP handler deleting a product.
// @Summary Delete a product
// @Description Removes an existing product
// @Tags products
// @Produce json
// @Param id path int true "Product ID"
// @Success 204 "Product deleted"
// @Failure 400 {object} handlers.ProductErrorResponse "Invalid product ID"
// @Failure 401 {object} handlers.ProductErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ProductErrorResponse "Product not found"
// @Failure 500 {object} handlers.ProductErrorResponse "Internal server error"
// @Router /api/products/{id} [delete]
// @Security BearerAuth
func NewDeleteProductHandler(svc ProductDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ProductErrorResponse{
				Message: "Invalid product ID",
			})
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			w.Header().Set("Content-Type", "application/json")
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

		w.WriteHeader(http.StatusNoContent)
	}
}
