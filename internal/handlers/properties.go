package handlers

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/proplens/proplens/internal/models"
	"github.com/proplens/proplens/internal/services"
	"github.com/proplens/proplens/internal/types"
	"github.com/proplens/proplens/internal/utils"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// PropertyHandler handles property listing routes
type PropertyHandler struct {
	DB *gorm.DB
}

// propertyRequest is the mutation payload for listings. Pointer fields let
// updates distinguish "leave unchanged" from an explicit zero. Decimal
// fields accept JSON numbers or strings; list fields accept a bare value or
// an array.
type propertyRequest struct {
	Title         *string                `json:"title" validate:"omitempty,min=1,max=255"`
	Description   *string                `json:"description"`
	Price         *types.FlexFloat64     `json:"price" validate:"omitempty,gte=0"`
	Address       *string                `json:"address" validate:"omitempty,min=1,max=500"`
	City          *string                `json:"city" validate:"omitempty,min=1,max=100"`
	State         *string                `json:"state" validate:"omitempty,min=1,max=50"`
	ZipCode       *string                `json:"zipCode" validate:"omitempty,max=20"`
	Bedrooms      *int                   `json:"bedrooms" validate:"omitempty,gte=0"`
	Bathrooms     *types.FlexFloat64     `json:"bathrooms" validate:"omitempty,gte=0"`
	SquareFootage *int                   `json:"squareFootage" validate:"omitempty,gte=0"`
	PropertyType  *string                `json:"propertyType" validate:"omitempty,oneof=single_family condo townhouse multi_family commercial land"`
	Status        *string                `json:"status" validate:"omitempty,oneof=for_sale for_rent sold rented off_market"`
	ImageURLs     types.FlexList[string] `json:"imageUrls"`
	Amenities     types.FlexList[string] `json:"amenities"`
}

// ListProperties handles GET /api/properties
// @Summary Search property listings
// @Description List properties matching the given filters, newest first
// @Tags Properties
// @Accept json
// @Produce json
// @Param search query string false "Match title, description, or address"
// @Param propertyType query string false "Property type"
// @Param status query string false "Listing status"
// @Param minPrice query number false "Minimum price"
// @Param maxPrice query number false "Maximum price"
// @Param bedrooms query integer false "Minimum bedrooms"
// @Param bathrooms query number false "Minimum bathrooms"
// @Param city query string false "City substring"
// @Param state query string false "State"
// @Param limit query integer false "Page size (default 12)"
// @Param offset query integer false "Page offset"
// @Success 200 {array} models.Property
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /properties [get]
func (h *PropertyHandler) ListProperties(c *fiber.Ctx) error {
	filter := services.PropertyFilter{
		Search:       queryString(c, "search"),
		PropertyType: queryString(c, "propertyType"),
		Status:       queryString(c, "status"),
		City:         queryString(c, "city"),
		State:        queryString(c, "state"),
		AgentID:      queryString(c, "agentId"),
	}

	var err error
	if filter.MinPrice, err = queryFloat(c, "minPrice"); err != nil {
		return err
	}
	if filter.MaxPrice, err = queryFloat(c, "maxPrice"); err != nil {
		return err
	}
	if filter.Bedrooms, err = queryInt(c, "bedrooms"); err != nil {
		return err
	}
	if filter.Bathrooms, err = queryFloat(c, "bathrooms"); err != nil {
		return err
	}
	filter.Limit, filter.Offset = queryPage(c)

	properties, err := services.ListProperties(h.DB, filter)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "listProperties")
	}

	return c.Status(fiber.StatusOK).JSON(properties)
}

// GetProperty handles GET /api/properties/:id
// @Summary Get one property
// @Tags Properties
// @Produce json
// @Param id path integer true "Property ID"
// @Success 200 {object} models.Property
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /properties/{id} [get]
func (h *PropertyHandler) GetProperty(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	property, err := services.GetProperty(h.DB, id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return utils.NotFoundResponse(c, fmt.Sprintf("Property %d not found", id))
		}
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "getProperty")
	}

	return c.Status(fiber.StatusOK).JSON(property)
}

// CreateProperty handles POST /api/properties
// @Summary Create a property listing
// @Description Create a listing owned by the authenticated agent
// @Tags Properties
// @Accept json
// @Produce json
// @Param property body propertyRequest true "Listing"
// @Success 201 {object} models.Property
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /properties [post]
func (h *PropertyHandler) CreateProperty(c *fiber.Ctx) error {
	account := currentAccount(c)

	var req propertyRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, "Invalid request body", fiber.StatusBadRequest, "createProperty")
	}
	if err := validate.Struct(req); err != nil {
		return utils.ValidationErrorResponse(c, "Invalid property", validationErrors(err))
	}
	if req.Title == nil || req.Price == nil || req.Address == nil || req.City == nil ||
		req.State == nil || req.ZipCode == nil || req.PropertyType == nil {
		return utils.ValidationErrorResponse(c, "Missing required property fields", nil)
	}

	property := models.Property{
		Title:        *req.Title,
		Price:        req.Price.Float64(),
		Address:      *req.Address,
		City:         *req.City,
		State:        *req.State,
		ZipCode:      *req.ZipCode,
		PropertyType: models.PropertyType(*req.PropertyType),
		Status:       models.StatusForSale,
		AgentID:      &account.ID,
	}
	if req.Description != nil {
		property.Description = *req.Description
	}
	if req.Bedrooms != nil {
		property.Bedrooms = *req.Bedrooms
	}
	if req.Bathrooms != nil {
		property.Bathrooms = req.Bathrooms.Float64()
	}
	property.SquareFootage = req.SquareFootage
	if req.Status != nil {
		property.Status = models.PropertyStatus(*req.Status)
	}
	if req.ImageURLs != nil {
		property.ImageURLs = datatypes.JSONSlice[string](req.ImageURLs.Slice())
	}
	if req.Amenities != nil {
		property.Amenities = datatypes.JSONSlice[string](req.Amenities.Slice())
	}

	if err := services.CreateProperty(h.DB, &property); err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "createProperty")
	}

	return c.Status(fiber.StatusCreated).JSON(property)
}

// UpdateProperty handles PUT /api/properties/:id
// @Summary Update a property listing
// @Description Partial update; only the owning agent or an admin may modify
// @Tags Properties
// @Accept json
// @Produce json
// @Param id path integer true "Property ID"
// @Param property body propertyRequest true "Fields to change"
// @Success 200 {object} models.Property
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /properties/{id} [put]
func (h *PropertyHandler) UpdateProperty(c *fiber.Ctx) error {
	account := currentAccount(c)

	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	// Existence is checked before ownership so a missing listing is a 404
	// for everyone, not a 403.
	property, err := services.GetProperty(h.DB, id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return utils.NotFoundResponse(c, fmt.Sprintf("Property %d not found", id))
		}
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "updateProperty")
	}

	allowed, err := services.CanModifyProperty(h.DB, account.ID, property)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "updateProperty")
	}
	if !allowed {
		return utils.ForbiddenResponse(c, "You don't have permission to update this property")
	}

	var req propertyRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, "Invalid request body", fiber.StatusBadRequest, "updateProperty")
	}
	if err := validate.Struct(req); err != nil {
		return utils.ValidationErrorResponse(c, "Invalid property", validationErrors(err))
	}

	updates := req.changes()
	if len(updates) == 0 {
		return c.Status(fiber.StatusOK).JSON(property)
	}

	updated, err := services.UpdateProperty(h.DB, id, updates)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return utils.NotFoundResponse(c, fmt.Sprintf("Property %d not found", id))
		}
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "updateProperty")
	}

	return c.Status(fiber.StatusOK).JSON(updated)
}

// DeleteProperty handles DELETE /api/properties/:id
// @Summary Delete a property listing
// @Description Only the owning agent or an admin may delete
// @Tags Properties
// @Produce json
// @Param id path integer true "Property ID"
// @Success 200 {object} map[string]interface{}
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /properties/{id} [delete]
func (h *PropertyHandler) DeleteProperty(c *fiber.Ctx) error {
	account := currentAccount(c)

	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	property, err := services.GetProperty(h.DB, id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return utils.NotFoundResponse(c, fmt.Sprintf("Property %d not found", id))
		}
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "deleteProperty")
	}

	allowed, err := services.CanModifyProperty(h.DB, account.ID, property)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "deleteProperty")
	}
	if !allowed {
		return utils.ForbiddenResponse(c, "You don't have permission to delete this property")
	}

	if err := services.DeleteProperty(h.DB, id); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return utils.NotFoundResponse(c, fmt.Sprintf("Property %d not found", id))
		}
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "deleteProperty")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Property deleted successfully", "ok": true})
}

// changes maps the present request fields to their database columns.
func (r propertyRequest) changes() map[string]interface{} {
	updates := make(map[string]interface{})
	if r.Title != nil {
		updates["title"] = *r.Title
	}
	if r.Description != nil {
		updates["description"] = *r.Description
	}
	if r.Price != nil {
		updates["price"] = r.Price.Float64()
	}
	if r.Address != nil {
		updates["address"] = *r.Address
	}
	if r.City != nil {
		updates["city"] = *r.City
	}
	if r.State != nil {
		updates["state"] = *r.State
	}
	if r.ZipCode != nil {
		updates["zip_code"] = *r.ZipCode
	}
	if r.Bedrooms != nil {
		updates["bedrooms"] = *r.Bedrooms
	}
	if r.Bathrooms != nil {
		updates["bathrooms"] = r.Bathrooms.Float64()
	}
	if r.SquareFootage != nil {
		updates["square_footage"] = *r.SquareFootage
	}
	if r.PropertyType != nil {
		updates["property_type"] = *r.PropertyType
	}
	if r.Status != nil {
		updates["status"] = *r.Status
	}
	if r.ImageURLs != nil {
		updates["image_urls"] = datatypes.JSONSlice[string](r.ImageURLs.Slice())
	}
	if r.Amenities != nil {
		updates["amenities"] = datatypes.JSONSlice[string](r.Amenities.Slice())
	}
	return updates
}
