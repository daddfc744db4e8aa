package queries

import (
	"context"

	"cargotracker/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// ListShippingLocationsQueryHandler reads the locations table directly.
type ListShippingLocationsQueryHandler struct {
	db *gorm.DB
}

func NewListShippingLocationsQueryHandler(db *gorm.DB) ListShippingLocationsQueryHandler {
	return ListShippingLocationsQueryHandler{db: db}
}

// Handle returns every location ordered by UN/LOCODE.
func (h ListShippingLocationsQueryHandler) Handle(
	ctx context.Context,
	query ListShippingLocationsQuery,
) ([]ListShippingLocationsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	locations := make([]ListShippingLocationsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			un_locode,
			name
		FROM locations
		ORDER BY un_locode
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var code, name string
		if err = rows.Scan(&code, &name); err != nil {
			return nil, err
		}

		unLocode, codeErr := kernel.NewUnLocode(code)
		if codeErr != nil {
			return nil, codeErr
		}
		locations = append(locations, ListShippingLocationsQueryResponse{UnLocode: unLocode, Name: name})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return locations, nil
}
