// Package history records daily net worth snapshots so the dashboard can
// chart wealth evolution over time.
package history

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "balanco/internal/errors"
	"balanco/internal/metrics"
	"balanco/internal/uuid"
)

// WealthSnapshot is a point-in-time capture of the headline metrics.
// Immutable time-series data: at most one row per calendar day, updated in
// place when recorded again on the same day.
type WealthSnapshot struct {
	ID               string    `gorm:"type:uuid;primaryKey" json:"id"`
	Day              string    `gorm:"uniqueIndex;not null" json:"day"`
	RecordedAt       time.Time `gorm:"not null" json:"recorded_at"`
	NetWorth         float64   `gorm:"not null" json:"netWorth"`
	TotalAssets      float64   `gorm:"not null" json:"totalAssets"`
	TotalDebt        float64   `gorm:"not null" json:"totalDebt"`
	NetMonthlyIncome float64   `gorm:"not null" json:"netMonthlyIncome"`
}

// TableName overrides the GORM table name.
func (WealthSnapshot) TableName() string { return "wealth_snapshots" }

// Servicer defines the contract for wealth history.
type Servicer interface {
	Record(m metrics.Metrics, at time.Time) (*WealthSnapshot, error)
	History(from, to time.Time) ([]WealthSnapshot, error)
}

type service struct {
	db *gorm.DB
}

// NewService creates a new history Servicer.
func NewService(db *gorm.DB) Servicer {
	return &service{db: db}
}

const dayLayout = "2006-01-02"

// Record upserts the snapshot for at's calendar day.
func (s *service) Record(m metrics.Metrics, at time.Time) (*WealthSnapshot, error) {
	snapshot := &WealthSnapshot{
		ID:               uuid.New(),
		Day:              at.Format(dayLayout),
		RecordedAt:       at,
		NetWorth:         m.NetWorth,
		TotalAssets:      m.TotalAssets,
		TotalDebt:        m.TotalDebt,
		NetMonthlyIncome: m.NetMonthlyIncome,
	}

	err := s.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "day"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"recorded_at", "net_worth", "total_assets", "total_debt", "net_monthly_income",
		}),
	}).Create(snapshot).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var saved WealthSnapshot
	if err := s.db.First(&saved, "day = ?", snapshot.Day).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &saved, nil
}

// History returns snapshots within [from, to], oldest first.
func (s *service) History(from, to time.Time) ([]WealthSnapshot, error) {
	var snapshots []WealthSnapshot
	err := s.db.
		Where("day BETWEEN ? AND ?", from.Format(dayLayout), to.Format(dayLayout)).
		Order("day ASC").
		Find(&snapshots).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return snapshots, nil
}
