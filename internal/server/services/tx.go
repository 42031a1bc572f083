package services

import (
	"context"
	"database/sql"

	"github.com/rmsplatform/rms/internal/dbx"
)

// runInTx executes fn inside a database transaction. With a nil handle
// (in-memory repositories) there is nothing to begin, so fn runs directly.
func runInTx(ctx context.Context, db *sql.DB, fn func(ctx context.Context, h dbx.DBTX) error) error {
	if db == nil {
		return fn(ctx, db)
	}
	return dbx.WithTx(ctx, db, nil, fn)
}
