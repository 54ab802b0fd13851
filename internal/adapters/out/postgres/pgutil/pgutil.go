// Package pgutil holds the helpers shared by the gorm repositories: identifier
// conversion, optimistic version checks and postgres error translation.
package pgutil

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/ddd"
	"logistics/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const uniqueViolation = "23505"

// Tracker receives every aggregate a repository has written.
type Tracker interface {
	Track(aggregate ddd.AggregateRoot)
}

// NopTracker is used where no unit of work collects events, e.g. in repository tests.
type NopTracker struct{}

func (NopTracker) Track(ddd.AggregateRoot) {}

func UUIDPtr(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}

func KernelUUIDPtr(id *uuid.UUID) (*kernel.UUID, error) {
	if id == nil {
		return nil, nil
	}
	out, err := kernel.UUIDFromGoogle(*id)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// IsUniqueViolation reports whether err comes from a unique index.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

// TranslateInsertError turns a unique violation into errs.ObjectAlreadyExistsError.
func TranslateInsertError(err error, paramName string, value any) error {
	if err == nil {
		return nil
	}
	if IsUniqueViolation(err) {
		return errs.NewObjectAlreadyExistsErrorWithCause(paramName, value, err)
	}
	return err
}

// UpdateVersioned overwrites the row of dto when its version is still expected. dto must
// already carry expected+1. Zero affected rows is reported as not found when the row is
// gone and as a version conflict otherwise.
func UpdateVersioned(ctx context.Context, db *gorm.DB, dto any, id uuid.UUID, expected int64, name string) error {
	result := db.WithContext(ctx).
		Model(dto).
		Where("id = ? AND version = ?", id, expected).
		Select("*").
		Omit("id", "created_at", clause.Associations).
		Updates(dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected > 0 {
		return nil
	}

	var count int64
	if err := db.WithContext(ctx).Model(dto).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return errs.NewObjectNotFoundError(name, id.String())
	}
	return errs.NewVersionIsInvalidError(name)
}

// DeleteVersioned removes the row when its version is still expected.
func DeleteVersioned(ctx context.Context, db *gorm.DB, model any, id uuid.UUID, expected int64, name string) error {
	result := db.WithContext(ctx).
		Where("id = ? AND version = ?", id, expected).
		Delete(model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected > 0 {
		return nil
	}

	var count int64
	if err := db.WithContext(ctx).Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return errs.NewObjectNotFoundError(name, id.String())
	}
	return errs.NewVersionIsInvalidError(name)
}

// Exists reports whether a row of model matches column = value.
func Exists(ctx context.Context, db *gorm.DB, model any, column string, value any) (bool, error) {
	var count int64
	if err := db.WithContext(ctx).Model(model).Where(clause.Eq{Column: clause.Column{Name: column}, Value: value}).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// NotFound maps gorm.ErrRecordNotFound to errs.ObjectNotFoundError.
func NotFound(err error, name string, id kernel.UUID) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.NewObjectNotFoundErrorWithCause(name, id.String(), err)
	}
	return err
}
