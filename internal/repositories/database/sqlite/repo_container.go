package sqlite

import (
	"database/sql"

	portsrepo "github.com/SscSPs/ratechart_app/internal/core/ports/repositories"
)

func NewRepositoryProvider(db *sql.DB) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		RateSlabRepo:  newSQLiteRateSlabRepository(db),
		CodeValueRepo: newSQLiteCodeValueRepository(db),
		Health:        &BaseRepository{DB: db},
	}
}
