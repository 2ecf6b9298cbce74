package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/inventory-api/internal/logger"
	"github.com/sbilibin2017/inventory-api/internal/middlewares"
	"github.com/sbilibin2017/inventory-api/internal/models"
)

type ProductReadRepository struct {
	db *sqlx.DB
}

func NewProductReadRepository(db *sqlx.DB) *ProductReadRepository {
	return &ProductReadRepository{db: db}
}

// GetAll returns all products ordered by id.
func (r *ProductReadRepository) GetAll(ctx context.Context) ([]models.ProductDB, error) {
	const query = `
		SELECT id, name, price, stock, created_at, updated_at
		FROM products
		ORDER BY id ASC
	`

	products := make([]models.ProductDB, 0)
	err := r.db.SelectContext(ctx, &products, query)

	logger.Log.Infow("product read",
		"query", strings.Join(strings.Fields(query), " "),
		"count", len(products),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return products, nil
}

type ProductWriteRepository struct {
	db *sqlx.DB
}

func NewProductWriteRepository(db *sqlx.DB) *ProductWriteRepository {
	return &ProductWriteRepository{db: db}
}

// ext returns the request transaction when one is present in the context,
// falling back to the pooled connection.
func (r *ProductWriteRepository) ext(ctx context.Context) sqlx.ExtContext {
	if tx := middlewares.GetTxFromContext(ctx); tx != nil {
		return tx
	}
	return r.db
}

// Save inserts a new product and returns the created record.
func (r *ProductWriteRepository) Save(ctx context.Context, name string, price float64, stock int64) (*models.ProductDB, error) {
	const query = `
		INSERT INTO products (name, price, stock)
		VALUES ($1, $2, $3)
		RETURNING id, name, price, stock, created_at, updated_at
	`

	var product models.ProductDB
	err := sqlx.GetContext(ctx, r.ext(ctx), &product, query, name, price, stock)

	logger.Log.Infow("product write",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{name, price, stock},
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return &product, nil
}

// UpdateStock sets the stock of a product and returns the updated record,
// or nil if the product does not exist.
func (r *ProductWriteRepository) UpdateStock(ctx context.Context, id, stock int64) (*models.ProductDB, error) {
	const query = `
		UPDATE products
		SET stock = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING id, name, price, stock, created_at, updated_at
	`

	var product models.ProductDB
	err := sqlx.GetContext(ctx, r.ext(ctx), &product, query, stock, id)

	logger.Log.Infow("product write",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{stock, id},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &product, nil
}

// Delete removes a product, reporting whether a row was actually deleted.
func (r *ProductWriteRepository) Delete(ctx context.Context, id int64) (bool, error) {
	const query = `DELETE FROM products WHERE id = $1`

	res, err := r.ext(ctx).ExecContext(ctx, query, id)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("product write",
		"query", query,
		"args", []any{id},
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return false, err
	}

	return rowsAffected > 0, nil
}
