package services

import (
	"errors"
	"time"

	"github.com/proplens/proplens/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Metric names the dashboard reads. Anything else stored in analytics is
// kept but not surfaced on the dashboard.
const (
	MetricMonthlyRevenue  = "monthly_revenue"
	MetricOccupancyRate   = "occupancy_rate"
	MetricAvgResponseTime = "avg_response_time"
)

// DashboardStats is the aggregated snapshot for one user's dashboard.
type DashboardStats struct {
	TotalProperties int64   `json:"totalProperties"`
	TotalRevenue    float64 `json:"totalRevenue"`
	OccupancyRate   float64 `json:"occupancyRate"`
	AvgResponseTime float64 `json:"avgResponseTime"`
}

// AnalyticsFilter narrows a user's analytics history. Nil fields are
// omitted predicates.
type AnalyticsFilter struct {
	MetricName *string
	PropertyID *uint
	StartDate  *time.Time
	EndDate    *time.Time
	Limit      int
}

// CreateAnalytics records a metric observation. A zero MetricDate defaults
// to the time of recording.
func CreateAnalytics(db *gorm.DB, record *models.AnalyticsRecord) error {
	if record.MetricDate.IsZero() {
		record.MetricDate = time.Now()
	}
	return db.Create(record).Error
}

// AnalyticsByUser returns a user's analytics records, most recent metric
// date first.
func AnalyticsByUser(db *gorm.DB, userID string, filter AnalyticsFilter) ([]models.AnalyticsRecord, error) {
	conds := []clause.Expression{
		clause.Eq{Column: clause.Column{Name: "user_id"}, Value: userID},
	}
	if filter.MetricName != nil {
		conds = append(conds, clause.Eq{Column: clause.Column{Name: "metric_name"}, Value: *filter.MetricName})
	}
	if filter.PropertyID != nil {
		conds = append(conds, clause.Eq{Column: clause.Column{Name: "property_id"}, Value: *filter.PropertyID})
	}
	if filter.StartDate != nil {
		conds = append(conds, clause.Gte{Column: clause.Column{Name: "metric_date"}, Value: *filter.StartDate})
	}
	if filter.EndDate != nil {
		conds = append(conds, clause.Lte{Column: clause.Column{Name: "metric_date"}, Value: *filter.EndDate})
	}

	query := db.Model(&models.AnalyticsRecord{}).
		Clauses(clause.Where{Exprs: conds}).
		Order("metric_date DESC")
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	records := make([]models.AnalyticsRecord, 0)
	if err := query.Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// latestMetricValue returns the most recent observation of a named metric
// for a user, or 0 when the user has never recorded it.
func latestMetricValue(db *gorm.DB, userID, metricName string) (float64, error) {
	var record models.AnalyticsRecord
	err := db.Where("user_id = ? AND metric_name = ?", userID, metricName).
		Order("metric_date DESC").
		First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return record.MetricValue, nil
}

// GetDashboardStats assembles the dashboard snapshot for a user: their
// property count plus the latest observation of each dashboard metric.
// Missing metrics read as zero rather than failing the whole snapshot.
func GetDashboardStats(db *gorm.DB, userID string) (*DashboardStats, error) {
	stats := &DashboardStats{}

	err := db.Model(&models.Property{}).
		Where("agent_id = ?", userID).
		Count(&stats.TotalProperties).Error
	if err != nil {
		return nil, err
	}

	if stats.TotalRevenue, err = latestMetricValue(db, userID, MetricMonthlyRevenue); err != nil {
		return nil, err
	}
	if stats.OccupancyRate, err = latestMetricValue(db, userID, MetricOccupancyRate); err != nil {
		return nil, err
	}
	if stats.AvgResponseTime, err = latestMetricValue(db, userID, MetricAvgResponseTime); err != nil {
		return nil, err
	}

	return stats, nil
}
