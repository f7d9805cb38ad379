package interfaces

import (
	"context"

	"sumee_intake/internal/domain/entities"
)

// IHistoricalPriceRepository is the read-only lookup of aggregate price
// statistics. Zone-scoped rows use the zone label; the discipline-wide
// global row is addressed with an empty zone. A nil stat (with nil error)
// means no row exists for that key.
type IHistoricalPriceRepository interface {
	Lookup(ctx context.Context, discipline, zone string) (*entities.HistoricalPriceStat, error)
}
