package store

import (
	"github.com/shopspring/decimal"

	"github.com/revel-xyz/revel-gate/internal/domain"
	"github.com/revel-xyz/revel-gate/internal/store/schema"
)

// ToDomainDrop converts a drops row into the domain representation
func ToDomainDrop(row *schema.Drop) *domain.Drop {
	if row == nil {
		return nil
	}

	price := decimal.Zero
	if row.CoinPriceUSD.Valid {
		price = row.CoinPriceUSD.Decimal
	}

	drop := &domain.Drop{
		ID:             row.ID,
		CreatorAddress: row.CreatorAddress,
		CreatorName:    row.CreatorName,
		Title:          row.Title,
		Description:    row.Description,
		ContentType:    domain.ContentType(row.ContentType),
		ContentURL:     row.ContentURL,
		Coin: domain.CreatorCoin{
			Address:  row.CoinAddress,
			Name:     row.CoinName,
			Symbol:   row.CoinSymbol,
			Decimals: row.CoinDecimals,
			PriceUSD: price,
		},
		Requirement: domain.GatingRequirement{
			Mode:   domain.GatingMode(row.GatingMode),
			Amount: row.GatingAmount,
		},
		Status:      domain.DropStatus(row.Status),
		ViewCount:   row.ViewCount,
		UnlockCount: row.UnlockCount,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}

	if row.CreatorImage != nil {
		drop.CreatorImage = *row.CreatorImage
	}
	if row.ThumbnailURL != nil {
		drop.ThumbnailURL = *row.ThumbnailURL
	}

	return drop
}
