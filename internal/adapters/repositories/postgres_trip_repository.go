package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"trip-route-service/internal/domain"
	"trip-route-service/internal/ports"
)

// Postgres-backed read-only view of the Place/Member store. The engine
// never owns persistence; writes happen in the surrounding application.
type PostgresTripRepository struct {
	DB *sql.DB
}

var _ ports.TripRepository = (*PostgresTripRepository)(nil)

func NewPostgresTripRepository(db *sql.DB) *PostgresTripRepository {
	return &PostgresTripRepository{DB: db}
}

// Retrieve all candidate places submitted for a trip.
func (r *PostgresTripRepository) ListPlaces(ctx context.Context, tripID string) ([]*domain.Place, error) {
	if r.DB == nil {
		return nil, errors.New("trip repository: db is nil")
	}
	if strings.TrimSpace(tripID) == "" {
		return nil, errors.New("list places: trip_id must not be empty")
	}

	q := `
	SELECT place_id, name, latitude, longitude, category, member_id,
	       wish_level, stay_minutes, preferred_date
	FROM places
	WHERE trip_id = $1
	ORDER BY created_at, place_id;
	`

	rows, err := r.DB.QueryContext(ctx, q, tripID)
	if err != nil {
		return nil, fmt.Errorf("list places: query places table: %w", err)
	}
	defer rows.Close()

	var out []*domain.Place
	for rows.Next() {
		var (
			placeID, name, category, memberID string
			lat, lng                          float64
			wishLevel, stayMinutes            int
			preferredDate                     sql.NullTime
		)
		if err := rows.Scan(&placeID, &name, &lat, &lng, &category, &memberID,
			&wishLevel, &stayMinutes, &preferredDate); err != nil {
			return nil, fmt.Errorf("list places: scan rows: %w", err)
		}

		var date *time.Time
		if preferredDate.Valid {
			d := preferredDate.Time
			date = &d
		}

		place, err := domain.NewPlace(placeID, name,
			domain.Coordinates{Lat: lat, Lng: lng},
			category, memberID, wishLevel, stayMinutes, date)
		if err != nil {
			return nil, fmt.Errorf("list places: trip %q: %w", tripID, err)
		}
		out = append(out, place)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list places: row iteration: %w", err)
	}

	return out, nil
}

// Retrieve all participants of a trip.
func (r *PostgresTripRepository) ListMembers(ctx context.Context, tripID string) ([]*domain.Member, error) {
	if r.DB == nil {
		return nil, errors.New("trip repository: db is nil")
	}
	if strings.TrimSpace(tripID) == "" {
		return nil, errors.New("list members: trip_id must not be empty")
	}

	q := `
	SELECT member_id, display_name, can_add_places
	FROM trip_members
	WHERE trip_id = $1
	ORDER BY member_id;
	`

	rows, err := r.DB.QueryContext(ctx, q, tripID)
	if err != nil {
		return nil, fmt.Errorf("list members: query trip_members table: %w", err)
	}
	defer rows.Close()

	var out []*domain.Member
	for rows.Next() {
		var m domain.Member
		if err := rows.Scan(&m.MemberID, &m.DisplayName, &m.CanAddPlaces); err != nil {
			return nil, fmt.Errorf("list members: scan rows: %w", err)
		}
		out = append(out, &m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list members: row iteration: %w", err)
	}

	return out, nil
}
