package pgsql

import (
	portsrepo "github.com/SscSPs/ratechart_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		RateSlabRepo:  newPgxRateSlabRepository(dbPool),
		CodeValueRepo: newPgxCodeValueRepository(dbPool),
		Health:        &BaseRepository{Pool: dbPool},
	}
}
