package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/proplens/proplens/internal/models"
	"github.com/proplens/proplens/internal/services"
	"github.com/proplens/proplens/internal/types"
	"github.com/proplens/proplens/internal/utils"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// AnalyticsHandler handles dashboard and analytics routes
type AnalyticsHandler struct {
	DB *gorm.DB
}

// analyticsRequest is the payload for recording a metric observation. The
// value accepts a JSON number or a numeric string.
type analyticsRequest struct {
	PropertyID  *uint                  `json:"propertyId"`
	MetricName  string                 `json:"metricName" validate:"required,min=1,max=100"`
	MetricValue *types.FlexFloat64     `json:"metricValue" validate:"required"`
	MetricDate  *time.Time             `json:"metricDate"`
	Metadata    map[string]interface{} `json:"metadata"`
}

// GetDashboardStats handles GET /api/dashboard/stats
// @Summary Get dashboard statistics
// @Description Property count plus the latest revenue, occupancy, and response time metrics for the caller
// @Tags Analytics
// @Produce json
// @Success 200 {object} services.DashboardStats
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /dashboard/stats [get]
func (h *AnalyticsHandler) GetDashboardStats(c *fiber.Ctx) error {
	account := currentAccount(c)

	stats, err := services.GetDashboardStats(h.DB, account.ID)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "dashboardStats")
	}

	return c.Status(fiber.StatusOK).JSON(stats)
}

// ListAnalytics handles GET /api/analytics
// @Summary List the caller's analytics records
// @Tags Analytics
// @Produce json
// @Param metricName query string false "Metric name"
// @Param propertyId query integer false "Property ID"
// @Param startDate query string false "Earliest metric date (RFC 3339)"
// @Param endDate query string false "Latest metric date (RFC 3339)"
// @Param limit query integer false "Maximum records"
// @Success 200 {array} models.AnalyticsRecord
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /analytics [get]
func (h *AnalyticsHandler) ListAnalytics(c *fiber.Ctx) error {
	account := currentAccount(c)

	filter := services.AnalyticsFilter{
		MetricName: queryString(c, "metricName"),
	}
	filter.Limit, _ = queryPage(c)

	if propertyID, err := queryInt(c, "propertyId"); err != nil {
		return err
	} else if propertyID != nil && *propertyID > 0 {
		id := uint(*propertyID)
		filter.PropertyID = &id
	}

	for name, target := range map[string]**time.Time{
		"startDate": &filter.StartDate,
		"endDate":   &filter.EndDate,
	} {
		if raw := queryString(c, name); raw != nil {
			parsed, err := time.Parse(time.RFC3339, *raw)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "invalid "+name+": "+*raw)
			}
			*target = &parsed
		}
	}

	records, err := services.AnalyticsByUser(h.DB, account.ID, filter)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "listAnalytics")
	}

	return c.Status(fiber.StatusOK).JSON(records)
}

// CreateAnalytics handles POST /api/analytics
// @Summary Record an analytics metric for the caller
// @Tags Analytics
// @Accept json
// @Produce json
// @Param record body analyticsRequest true "Metric observation"
// @Success 201 {object} models.AnalyticsRecord
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /analytics [post]
func (h *AnalyticsHandler) CreateAnalytics(c *fiber.Ctx) error {
	account := currentAccount(c)

	var req analyticsRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, "Invalid request body", fiber.StatusBadRequest, "createAnalytics")
	}
	if err := validate.Struct(req); err != nil {
		return utils.ValidationErrorResponse(c, "Invalid analytics record", validationErrors(err))
	}

	record := models.AnalyticsRecord{
		UserID:      account.ID,
		PropertyID:  req.PropertyID,
		MetricName:  req.MetricName,
		MetricValue: req.MetricValue.Float64(),
	}
	if req.MetricDate != nil {
		record.MetricDate = *req.MetricDate
	}
	if req.Metadata != nil {
		record.Metadata = datatypes.JSONMap(req.Metadata)
	}

	if err := services.CreateAnalytics(h.DB, &record); err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "createAnalytics")
	}

	return c.Status(fiber.StatusCreated).JSON(record)
}
