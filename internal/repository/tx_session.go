package repository

import (
	"context"
	"database/sql"

	"github.com/fleetops/driverlog/internal/db"
	"github.com/fleetops/driverlog/internal/domain"
)

// TxSessionRepo is a SessionRepo whose Save runs inside a transaction, so the
// session row and its break rows never partially persist. Reads go straight
// to the base connection.
type TxSessionRepo struct {
	base *SQLiteSessionRepo
	uow  db.UnitOfWork
}

// NewTxSessionRepo creates a transactional SessionRepo over conn.
func NewTxSessionRepo(conn *sql.DB) *TxSessionRepo {
	return &TxSessionRepo{
		base: NewSQLiteSessionRepo(conn),
		uow:  db.NewSQLiteUnitOfWork(conn),
	}
}

func (r *TxSessionRepo) Save(ctx context.Context, s *domain.DutySession) error {
	return r.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return NewSQLiteSessionRepo(tx).Save(ctx, s)
	})
}

func (r *TxSessionRepo) GetByID(ctx context.Context, id string) (*domain.DutySession, error) {
	return r.base.GetByID(ctx, id)
}

func (r *TxSessionRepo) GetOpen(ctx context.Context, userID string) (*domain.DutySession, error) {
	return r.base.GetOpen(ctx, userID)
}

func (r *TxSessionRepo) Delete(ctx context.Context, id string) error {
	return r.base.Delete(ctx, id)
}
