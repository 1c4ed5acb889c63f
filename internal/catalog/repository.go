package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// Repository reads the venue table from a persistent source.
type Repository interface {
	LoadVenues(ctx context.Context) ([]Venue, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

// LoadVenues reads public.venues in display order.
func (r *pgxRepository) LoadVenues(ctx context.Context) ([]Venue, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select("id", "name", "sport", "facilities", "price_from", "image").
		From("public.venues").
		Where(squirrel.Eq{"is_active": true}).
		OrderBy("position ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list venues query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list venues failed: %w", err)
	}
	defer rows.Close()

	var venues []Venue
	for rows.Next() {
		var v Venue
		var sport string
		if err := rows.Scan(&v.ID, &v.Name, &sport, &v.Facilities, &v.PriceFrom, &v.Image); err != nil {
			return nil, fmt.Errorf("scan venue failed: %w", err)
		}
		v.Sport, err = ParseSport(sport)
		if err != nil || v.Sport == "" {
			return nil, fmt.Errorf("venue %q has invalid sport %q", v.ID, sport)
		}
		venues = append(venues, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate venues failed: %w", err)
	}

	return venues, nil
}

// Load returns the venue table from repo, falling back to DefaultVenues when
// repo is nil, the table does not exist yet, or it holds no active venues.
// Any other database error is returned.
func Load(ctx context.Context, repo Repository, log zerolog.Logger) ([]Venue, error) {
	if repo == nil {
		log.Info().Msg("using built-in venue catalog")
		return DefaultVenues(), nil
	}

	venues, err := repo.LoadVenues(ctx)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UndefinedTable {
			log.Warn().Err(err).Msg("venues table missing, using built-in venue catalog")
			return DefaultVenues(), nil
		}
		return nil, err
	}

	if len(venues) == 0 {
		log.Warn().Msg("venues table is empty, using built-in venue catalog")
		return DefaultVenues(), nil
	}

	log.Info().Int("venues", len(venues)).Msg("loaded venue catalog from database")
	return venues, nil
}
