package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/proplens/proplens/internal/models"
	"github.com/proplens/proplens/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedMetric(t *testing.T, db *gorm.DB, userID, name string, value float64, date time.Time) {
	t.Helper()
	require.NoError(t, db.Create(&models.AnalyticsRecord{
		UserID: userID, MetricName: name, MetricValue: value, MetricDate: date,
	}).Error)
}

func TestGetDashboardStats(t *testing.T) {
	app, db := newTestApp(t)
	seedUser(t, db, "u1", models.RoleAgent)

	agent := "u1"
	require.NoError(t, db.Create(&models.Property{
		Title: "Owned", Price: 100000, Address: "St", City: "Austin", State: "TX",
		ZipCode: "78701", PropertyType: models.TypeCondo, Status: models.StatusForRent, AgentID: &agent,
	}).Error)
	seedMetric(t, db, "u1", services.MetricMonthlyRevenue, 7500, time.Now())
	seedMetric(t, db, "u1", services.MetricOccupancyRate, 94, time.Now())

	resp := doJSON(t, app, http.MethodGet, "/api/dashboard/stats", "u1", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var stats services.DashboardStats
	decodeBody(t, resp, &stats)
	assert.Equal(t, int64(1), stats.TotalProperties)
	assert.Equal(t, 7500.0, stats.TotalRevenue)
	assert.Equal(t, 94.0, stats.OccupancyRate)
	assert.Zero(t, stats.AvgResponseTime)
}

func TestCreateAndListAnalytics(t *testing.T) {
	app, db := newTestApp(t)
	seedUser(t, db, "u1", models.RoleAgent)

	resp := doJSON(t, app, http.MethodPost, "/api/analytics", "u1", map[string]interface{}{
		"metricName":  "occupancy_rate",
		"metricValue": 88.5,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created models.AnalyticsRecord
	decodeBody(t, resp, &created)
	assert.Equal(t, "u1", created.UserID)
	assert.False(t, created.MetricDate.IsZero())

	resp = doJSON(t, app, http.MethodGet, "/api/analytics?metricName=occupancy_rate", "u1", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var records []models.AnalyticsRecord
	decodeBody(t, resp, &records)
	require.Len(t, records, 1)
	assert.Equal(t, 88.5, records[0].MetricValue)

	// Missing metric name fails validation
	resp = doJSON(t, app, http.MethodPost, "/api/analytics", "u1", map[string]interface{}{
		"metricValue": 1.0,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// Missing metric value fails validation rather than recording a zero
	resp = doJSON(t, app, http.MethodPost, "/api/analytics", "u1", map[string]interface{}{
		"metricName": "occupancy_rate",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// An explicit zero is a real observation
	resp = doJSON(t, app, http.MethodPost, "/api/analytics", "u1", map[string]interface{}{
		"metricName":  "vacancy_days",
		"metricValue": 0,
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
}
