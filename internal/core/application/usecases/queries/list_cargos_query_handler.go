package queries

import (
	"context"

	"cargotracker/internal/core/domain/model/cargo"
	"cargotracker/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

const unknownLocationText = "Unknown"

type ListCargosQueryHandler struct {
	db *gorm.DB
}

func NewListCargosQueryHandler(db *gorm.DB) ListCargosQueryHandler {
	return ListCargosQueryHandler{db: db}
}

// Handle reads the denormalised delivery columns of every cargo, ordered by tracking id.
func (h ListCargosQueryHandler) Handle(
	ctx context.Context,
	query ListCargosQuery,
) ([]ListCargosQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	cargos := make([]ListCargosQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			tracking_id,
			origin,
			destination,
			delivery_routing_status,
			delivery_transport_status,
			delivery_misdirected,
			delivery_unloaded_at_destination,
			delivery_last_known_location
		FROM cargos
		ORDER BY tracking_id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var summary ListCargosQueryResponse
		var id, origin, destination, routing, transport, lastKnown string

		err = rows.Scan(
			&id,
			&origin,
			&destination,
			&routing,
			&transport,
			&summary.Misdirected,
			&summary.AtDestination,
			&lastKnown,
		)
		if err != nil {
			return nil, err
		}

		if summary.TrackingID, err = kernel.NewTrackingID(id); err != nil {
			return nil, err
		}
		if summary.Origin, err = kernel.NewUnLocode(origin); err != nil {
			return nil, err
		}
		if summary.Destination, err = kernel.NewUnLocode(destination); err != nil {
			return nil, err
		}
		if summary.RoutingStatus, err = cargo.ParseRoutingStatus(routing); err != nil {
			return nil, err
		}
		if summary.TransportStatus, err = cargo.ParseTransportStatus(transport); err != nil {
			return nil, err
		}
		summary.LastKnownLocation = lastKnownLocationText(lastKnown)

		cargos = append(cargos, summary)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return cargos, nil
}

func lastKnownLocationText(code string) string {
	if code == "" || code == kernel.UnknownUnLocode.String() {
		return unknownLocationText
	}
	return code
}
