package services

import (
	"testing"
	"time"

	"github.com/proplens/proplens/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func recordMetric(t *testing.T, db *gorm.DB, userID, name string, value float64, date time.Time) {
	t.Helper()
	require.NoError(t, db.Create(&models.AnalyticsRecord{
		UserID:      userID,
		MetricName:  name,
		MetricValue: value,
		MetricDate:  date,
	}).Error)
}

func TestGetDashboardStatsEmptyUser(t *testing.T) {
	db := newTestDB(t)
	createUser(t, db, "u1", models.RoleUser)

	stats, err := GetDashboardStats(db, "u1")
	require.NoError(t, err)
	assert.Equal(t, int64(0), stats.TotalProperties)
	assert.Zero(t, stats.TotalRevenue)
	assert.Zero(t, stats.OccupancyRate)
	assert.Zero(t, stats.AvgResponseTime)
}

func TestGetDashboardStatsLatestObservationWins(t *testing.T) {
	db := newTestDB(t)
	createUser(t, db, "u1", models.RoleAgent)
	createUser(t, db, "u2", models.RoleAgent)

	now := time.Now()
	// Out-of-order insertion: latest metric_date must win, not latest row
	recordMetric(t, db, "u1", MetricMonthlyRevenue, 12000, now)
	recordMetric(t, db, "u1", MetricMonthlyRevenue, 9000, now.Add(-30*24*time.Hour))
	recordMetric(t, db, "u1", MetricOccupancyRate, 92.5, now)

	// Another user's metrics must not leak in
	recordMetric(t, db, "u2", MetricAvgResponseTime, 48, now)

	agent := "u1"
	require.NoError(t, db.Create(&models.Property{
		Title: "Owned", Price: 100000, Address: "St", City: "Austin", State: "TX",
		ZipCode: "78701", PropertyType: models.TypeCondo, Status: models.StatusForRent, AgentID: &agent,
	}).Error)

	stats, err := GetDashboardStats(db, "u1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.TotalProperties)
	assert.Equal(t, 12000.0, stats.TotalRevenue)
	assert.Equal(t, 92.5, stats.OccupancyRate)
	// u1 never recorded a response time
	assert.Zero(t, stats.AvgResponseTime)
}

func TestAnalyticsByUserFiltersAndOrdering(t *testing.T) {
	db := newTestDB(t)
	createUser(t, db, "u1", models.RoleUser)

	base := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)
	recordMetric(t, db, "u1", MetricOccupancyRate, 90, base)
	recordMetric(t, db, "u1", MetricOccupancyRate, 91, base.AddDate(0, 1, 0))
	recordMetric(t, db, "u1", MetricMonthlyRevenue, 8000, base.AddDate(0, 2, 0))

	records, err := AnalyticsByUser(db, "u1", AnalyticsFilter{})
	require.NoError(t, err)
	require.Len(t, records, 3)
	// Most recent metric date first
	assert.Equal(t, MetricMonthlyRevenue, records[0].MetricName)

	records, err = AnalyticsByUser(db, "u1", AnalyticsFilter{MetricName: strPtr(MetricOccupancyRate)})
	require.NoError(t, err)
	assert.Len(t, records, 2)

	start := base.AddDate(0, 0, 20)
	end := base.AddDate(0, 1, 20)
	records, err = AnalyticsByUser(db, "u1", AnalyticsFilter{StartDate: &start, EndDate: &end})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, 91.0, records[0].MetricValue)
}

func TestCreateAnalyticsDefaultsMetricDate(t *testing.T) {
	db := newTestDB(t)
	createUser(t, db, "u1", models.RoleUser)

	record := models.AnalyticsRecord{
		UserID:      "u1",
		MetricName:  MetricOccupancyRate,
		MetricValue: 88,
	}
	require.NoError(t, CreateAnalytics(db, &record))
	assert.WithinDuration(t, time.Now(), record.MetricDate, time.Minute)
}
