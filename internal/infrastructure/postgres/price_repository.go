package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
)

var _ repository.PriceRepository = (*PriceRepo)(nil)

// PriceRepo implementación del puerto PriceRepository sobre PostgreSQL (usable con pool o tx).
// amount es NUMERIC(19,4) y se escanea a decimal.Decimal vía pgx-shopspring-decimal.
type PriceRepo struct {
	q Querier
}

// NewPriceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPriceRepository(q Querier) *PriceRepo {
	return &PriceRepo{q: q}
}

// Create persiste un nuevo precio.
func (r *PriceRepo) Create(price *entity.ProductPrice) error {
	query := `
		INSERT INTO product_prices (id, product_id, currency, amount, valid_from, valid_to)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		price.ID, price.ProductID, price.Currency, price.Amount, price.ValidFrom, price.ValidTo,
	)
	if err != nil {
		return fmt.Errorf("insert price: %w", err)
	}
	return nil
}

// GetByID obtiene un precio por ID. (nil, nil) si no existe.
func (r *PriceRepo) GetByID(id string) (*entity.ProductPrice, error) {
	var p entity.ProductPrice
	err := r.q.QueryRow(context.Background(),
		`SELECT id, product_id, currency, amount, valid_from, valid_to
		 FROM product_prices WHERE id = $1`, id,
	).Scan(&p.ID, &p.ProductID, &p.Currency, &p.Amount, &p.ValidFrom, &p.ValidTo)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get price: %w", err)
	}
	return &p, nil
}

// Update persiste cambios de monto o expiración.
func (r *PriceRepo) Update(price *entity.ProductPrice) error {
	query := `
		UPDATE product_prices SET currency = $2, amount = $3, valid_from = $4, valid_to = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		price.ID, price.Currency, price.Amount, price.ValidFrom, price.ValidTo,
	)
	if err != nil {
		return fmt.Errorf("update price: %w", err)
	}
	return nil
}

// ListActiveByProduct lista los precios vigentes (valid_to IS NULL) de un producto.
func (r *PriceRepo) ListActiveByProduct(productID string) ([]*entity.ProductPrice, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, product_id, currency, amount, valid_from, valid_to
		 FROM product_prices WHERE product_id = $1 AND valid_to IS NULL
		 ORDER BY valid_from DESC`, productID)
	if err != nil {
		return nil, fmt.Errorf("list active prices: %w", err)
	}
	defer rows.Close()
	var list []*entity.ProductPrice
	for rows.Next() {
		var p entity.ProductPrice
		if err := rows.Scan(&p.ID, &p.ProductID, &p.Currency, &p.Amount, &p.ValidFrom, &p.ValidTo); err != nil {
			return nil, fmt.Errorf("scan price: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
