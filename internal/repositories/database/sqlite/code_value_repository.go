package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	portsrepo "github.com/SscSPs/ratechart_app/internal/core/ports/repositories"
	"github.com/SscSPs/ratechart_app/internal/models"
	"github.com/SscSPs/ratechart_app/internal/repositories/database/query"
)

var codeValueQueries = query.NewCodeValueQueries(query.Question)

type SQLiteCodeValueRepository struct {
	BaseRepository
}

func newSQLiteCodeValueRepository(db *sql.DB) portsrepo.CodeValueReader {
	return &SQLiteCodeValueRepository{BaseRepository: BaseRepository{DB: db}}
}

var _ portsrepo.CodeValueReader = (*SQLiteCodeValueRepository)(nil)

func (r *SQLiteCodeValueRepository) FindActiveCodeValuesByCodeName(ctx context.Context, codeName string) ([]models.CodeValue, error) {
	rows, err := r.DB.QueryContext(ctx, codeValueQueries.ActiveByCodeName, codeName)
	if err != nil {
		return nil, fmt.Errorf("failed to query code values of %s: %w", codeName, err)
	}
	defer rows.Close()

	values := []models.CodeValue{}
	for rows.Next() {
		var v models.CodeValue
		if err := rows.Scan(&v.ID, &v.CodeID, &v.Value, &v.Description, &v.Position, &v.IsActive); err != nil {
			return nil, fmt.Errorf("failed to scan code value row: %w", err)
		}
		values = append(values, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating code value rows: %w", err)
	}
	return values, nil
}
