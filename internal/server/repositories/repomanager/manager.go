// Package repomanager hands out repositories bound to a database handle,
// so services can run them either on the shared *sql.DB or inside a
// transaction.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/rmsplatform/rms/internal/dbx"
	"github.com/rmsplatform/rms/internal/server/repositories/branding"
	"github.com/rmsplatform/rms/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Branding(db dbx.DBTX) branding.Repository
}
