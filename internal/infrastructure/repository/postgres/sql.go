package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/riskibarqy/matchday/internal/domain/football"
	qb "github.com/riskibarqy/matchday/internal/platform/querybuilder"
)

const returningAudit = "RETURNING id, created_at, updated_at"

type auditRow struct {
	ID        int64     `db:"id"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func isNotFound(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

// classify marks constraint failures with the matching football sentinel so
// callers can test them with crerr.Is while the pq detail stays attached.
func classify(err error) error {
	var pqErr *pq.Error
	if !crerr.As(err, &pqErr) {
		return err
	}
	switch pqErr.Code.Name() {
	case "foreign_key_violation":
		return crerr.Mark(err, football.ErrForeignKeyViolation)
	case "unique_violation":
		return crerr.Mark(err, football.ErrUniqueViolation)
	default:
		return err
	}
}

func insertReturningAudit(ctx context.Context, db *sqlx.DB, table string, model any) (auditRow, error) {
	query, args, err := qb.InsertModel(table, model, returningAudit)
	if err != nil {
		return auditRow{}, fmt.Errorf("build insert %s query: %w", table, err)
	}

	var out auditRow
	if err := db.GetContext(ctx, &out, query, args...); err != nil {
		return auditRow{}, fmt.Errorf("insert %s: %w", table, classify(err))
	}
	return out, nil
}

// updateReturningAudit writes every writable column of model and refreshes
// updated_at. A missing row is reported as football.ErrRowNotFound.
func updateReturningAudit(ctx context.Context, db *sqlx.DB, table string, id int64, model any) (auditRow, error) {
	b, err := qb.UpdateModel(table, model)
	if err != nil {
		return auditRow{}, fmt.Errorf("build update %s query: %w", table, err)
	}
	query, args, err := b.
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("id", id)).
		Suffix(returningAudit).
		ToSQL()
	if err != nil {
		return auditRow{}, fmt.Errorf("build update %s query: %w", table, err)
	}

	var out auditRow
	if err := db.GetContext(ctx, &out, query, args...); err != nil {
		if isNotFound(err) {
			return auditRow{}, crerr.Wrapf(football.ErrRowNotFound, "update %s=%d", table, id)
		}
		return auditRow{}, fmt.Errorf("update %s: %w", table, classify(err))
	}
	return out, nil
}

func deleteByID(ctx context.Context, db *sqlx.DB, table string, id int64) error {
	query, args, err := qb.DeleteFrom(table).Where(qb.Eq("id", id)).ToSQL()
	if err != nil {
		return fmt.Errorf("build delete %s query: %w", table, err)
	}

	res, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete %s: %w", table, classify(err))
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete %s rows affected: %w", table, err)
	}
	if affected == 0 {
		return crerr.Wrapf(football.ErrRowNotFound, "delete %s=%d", table, id)
	}
	return nil
}

// selectPage runs the count and the windowed select for b. dest must be a
// pointer to a slice of row models.
func selectPage(ctx context.Context, db *sqlx.DB, b *qb.SelectBuilder, page, pageSize int, dest any) (int, error) {
	if err := football.CheckWindow(page, pageSize); err != nil {
		return 0, err
	}

	countQuery, countArgs, err := b.CountSQL()
	if err != nil {
		return 0, fmt.Errorf("build count query: %w", err)
	}
	var total int
	if err := db.GetContext(ctx, &total, countQuery, countArgs...); err != nil {
		return 0, fmt.Errorf("count rows: %w", err)
	}

	offset, ok := windowOffset(page, pageSize, total)
	if !ok {
		return total, nil
	}

	query, args, err := b.
		Limit(pageSize).
		Offset(offset).
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build page query: %w", err)
	}
	if err := db.SelectContext(ctx, dest, query, args...); err != nil {
		return 0, fmt.Errorf("select page: %w", err)
	}
	return total, nil
}

// windowOffset reports the OFFSET for the page, or false when the window starts
// past the last of total rows and no row query is needed.
func windowOffset(page, pageSize, total int) (int, bool) {
	offset, ok := football.Offset(page, pageSize)
	if !ok || offset >= total {
		return 0, false
	}
	return offset, true
}

func uniqueIDs(ids ...int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
