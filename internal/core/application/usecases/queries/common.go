// Package queries contains the read side. Handlers select straight from the tables with
// raw SQL and return flat read models; nothing here loads an aggregate for writing.
package queries

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"

	"gorm.io/gorm"
)

var ErrQueryIsNotConstructed = errors.New("query must be created via its New... constructor")

// byIDQuery is embedded by queries that address one record.
type byIDQuery struct {
	id    kernel.UUID
	guard guard.ConstructorGuard
}

func newByIDQuery(id kernel.UUID) (byIDQuery, error) {
	if err := id.Validate(); err != nil {
		return byIDQuery{}, err
	}
	return byIDQuery{id: id, guard: guard.NewConstructorGuard()}, nil
}

func (q byIDQuery) Validate() error {
	return q.guard.Validate(ErrQueryIsNotConstructed)
}

func (q byIDQuery) ID() kernel.UUID {
	return q.id
}

// selectOne scans the single row of sql into dest and reports whether one was found.
func selectOne(ctx context.Context, db *gorm.DB, dest any, sql string, args ...any) (bool, error) {
	result := db.WithContext(ctx).Raw(sql, args...).Scan(dest)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// selectMany always returns a non-nil slice so empty lists encode as [].
func selectMany[T any](ctx context.Context, db *gorm.DB, sql string, args ...any) ([]T, error) {
	rows := make([]T, 0)
	if err := db.WithContext(ctx).Raw(sql, args...).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

type status interface {
	Validate() error
	String() string
}

// statusFilter is embedded by list queries that can be narrowed to one status.
type statusFilter struct {
	status string
	guard  guard.ConstructorGuard
}

func newStatusFilter[S status](s *S) (statusFilter, error) {
	f := statusFilter{guard: guard.NewConstructorGuard()}
	if s != nil {
		if err := (*s).Validate(); err != nil {
			return statusFilter{}, err
		}
		f.status = (*s).String()
	}
	return f, nil
}

func (f statusFilter) Validate() error {
	return f.guard.Validate(ErrQueryIsNotConstructed)
}

// where appends the status condition when the filter is set.
func (f statusFilter) where(sql, orderBy string) (string, []any) {
	if f.status == "" {
		return sql + " ORDER BY " + orderBy, nil
	}
	return sql + " WHERE status = ? ORDER BY " + orderBy, []any{f.status}
}
