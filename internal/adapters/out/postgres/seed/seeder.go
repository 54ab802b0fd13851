package seed

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Summary counts the reference rows written and the rows that failed.
type Summary struct {
	VehicleTypes       int
	TransportCompanies int
	Failed             int
}

type Seeder struct {
	db     *gorm.DB
	logger *zap.Logger

	vehicleTypes       []VehicleTypeDTO
	transportCompanies []TransportCompanyDTO
}

func NewSeeder(db *gorm.DB, logger *zap.Logger) *Seeder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Seeder{
		db:                 db,
		logger:             logger.With(zap.String("component", "seeder")),
		vehicleTypes:       defaultVehicleTypes(),
		transportCompanies: defaultTransportCompanies(),
	}
}

// Seed upserts every reference row by code. A failed row is logged and skipped so that
// the remaining rows still load. Running Seed twice leaves the tables unchanged.
func (s *Seeder) Seed(ctx context.Context) (Summary, error) {
	var summary Summary

	for i := range s.vehicleTypes {
		row := s.vehicleTypes[i]
		if err := s.upsert(ctx, &row, "name", "category", "max_load_kg", "max_volume_cbm", "is_refrigerated", "is_active", "updated_at"); err != nil {
			s.logger.Warn("vehicle type not seeded", zap.String("code", row.Code), zap.Error(err))
			summary.Failed++
			continue
		}
		summary.VehicleTypes++
	}

	for i := range s.transportCompanies {
		row := s.transportCompanies[i]
		if err := s.upsert(ctx, &row, "name", "contact_email", "contact_phone", "modes", "is_active", "updated_at"); err != nil {
			s.logger.Warn("transport company not seeded", zap.String("code", row.Code), zap.Error(err))
			summary.Failed++
			continue
		}
		summary.TransportCompanies++
	}

	s.logger.Info("reference data seeded",
		zap.Int("vehicleTypes", summary.VehicleTypes),
		zap.Int("transportCompanies", summary.TransportCompanies),
		zap.Int("failed", summary.Failed),
	)
	return summary, ctx.Err()
}

func (s *Seeder) upsert(ctx context.Context, row any, columns ...string) error {
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "code"}},
			DoUpdates: clause.AssignmentColumns(columns),
		}).
		Create(row).Error
}
