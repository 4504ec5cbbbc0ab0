// Copyright 2025 reportguard authors.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/reportguard/reportguard/database"
	"github.com/reportguard/reportguard/database/models"
	"github.com/reportguard/reportguard/shared"
	"gorm.io/gorm"
)

type reportRepository struct {
	*database.GormRepository[uuid.UUID, models.Report]
	db shared.DB
}

func NewReportRepository(db shared.DB) *reportRepository {
	return &reportRepository{
		db:             db,
		GormRepository: database.NewGormRepository[uuid.UUID, models.Report](db),
	}
}

func (r *reportRepository) FindByExecutionID(executionID string) (models.Report, error) {
	var report models.Report
	err := r.db.First(&report, "execution_id = ?", executionID).Error
	return report, err
}

func (r *reportRepository) FindAllPaged(pageInfo shared.PageInfo, status *models.ReportStatus, sort shared.SortQuery) (shared.Paged[models.Report], error) {
	query := r.db.Model(&models.Report{})
	if status != nil {
		query = query.Where("status = ?", *status)
	}

	var count int64
	if err := query.Session(&gorm.Session{}).Count(&count).Error; err != nil {
		return shared.Paged[models.Report]{}, err
	}

	var reports []models.Report
	if err := pageInfo.ApplyOnDB(query.Order(sort.SQL())).Find(&reports).Error; err != nil {
		return shared.Paged[models.Report]{}, err
	}

	return shared.NewPaged(pageInfo, count, reports), nil
}

func (r *reportRepository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
