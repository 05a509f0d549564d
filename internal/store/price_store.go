package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/krishimitra/krishimitra/internal/domain"
)

// PriceStore reads mandi price records. Rows are written by an external feed;
// this system only selects them, newest first.
type PriceStore struct {
	db *sql.DB
}

func NewPriceStore(db *sql.DB) *PriceStore {
	return &PriceStore{db: db}
}

func (s *PriceStore) List(ctx context.Context) ([]domain.MarketPrice, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, crop_name, mandi_name, district, price_per_quintal, price_change_percentage, created_at
		FROM market_prices
		ORDER BY created_at DESC, id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list market prices: %w", err)
	}
	defer rows.Close()

	var prices []domain.MarketPrice
	for rows.Next() {
		var p domain.MarketPrice
		if err := rows.Scan(&p.ID, &p.CropName, &p.MandiName, &p.District,
			&p.PricePerQuintal, &p.PriceChangePercentage, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan market price: %w", err)
		}
		prices = append(prices, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating market prices: %w", err)
	}
	return prices, nil
}
