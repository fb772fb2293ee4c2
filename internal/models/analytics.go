package models

import (
	"time"

	"gorm.io/datatypes"
)

// AnalyticsRecord is one point of a per-user metric time series,
// discriminated by MetricName. Records are append-only; the "current" value
// of a metric is the most recent row by MetricDate.
type AnalyticsRecord struct {
	ID          uint              `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID      string            `gorm:"size:64;not null;index:idx_analytics_user_metric,priority:1" json:"userId"`
	User        *User             `gorm:"foreignKey:UserID" json:"-"`
	PropertyID  *uint             `gorm:"index" json:"propertyId"`
	Property    *Property         `gorm:"foreignKey:PropertyID" json:"-"`
	MetricName  string            `gorm:"size:100;not null;index:idx_analytics_user_metric,priority:2" json:"metricName"`
	MetricValue float64           `gorm:"type:decimal(15,2);not null" json:"metricValue"`
	MetricDate  time.Time         `gorm:"index" json:"metricDate"`
	Metadata    datatypes.JSONMap `json:"metadata"`
	CreatedAt   time.Time         `json:"createdAt"`
}

// TableName overrides the table name for AnalyticsRecord
func (AnalyticsRecord) TableName() string {
	return "analytics"
}
