package services

import (
	"errors"
	"strings"

	"github.com/proplens/proplens/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/hints"
)

// DefaultPropertyPageSize caps property listings when the caller omits a limit.
const DefaultPropertyPageSize = 12

// PropertyFilter describes the optional predicates of a property search.
// Nil fields contribute no predicate; a pointer to a zero value is a real
// predicate (bedrooms=0 means "at least zero", not "unfiltered").
type PropertyFilter struct {
	Search       *string
	PropertyType *string
	Status       *string
	MinPrice     *float64
	MaxPrice     *float64
	Bedrooms     *int
	Bathrooms    *float64
	City         *string
	State        *string
	AgentID      *string
	Limit        int
	Offset       int
}

// conditions translates the filter into a flat list of predicate
// expressions. The list is composed into a single conjunction afterwards,
// so no partially-built query state is ever shared between branches.
func (f PropertyFilter) conditions() []clause.Expression {
	var conds []clause.Expression

	if f.Search != nil {
		pattern := "%" + strings.ToLower(*f.Search) + "%"
		conds = append(conds, clause.Or(
			clause.Expr{SQL: "LOWER(title) LIKE ?", Vars: []interface{}{pattern}},
			clause.Expr{SQL: "LOWER(description) LIKE ?", Vars: []interface{}{pattern}},
			clause.Expr{SQL: "LOWER(address) LIKE ?", Vars: []interface{}{pattern}},
		))
	}
	if f.PropertyType != nil {
		conds = append(conds, clause.Eq{Column: clause.Column{Name: "property_type"}, Value: *f.PropertyType})
	}
	if f.Status != nil {
		conds = append(conds, clause.Eq{Column: clause.Column{Name: "status"}, Value: *f.Status})
	}
	if f.MinPrice != nil {
		conds = append(conds, clause.Gte{Column: clause.Column{Name: "price"}, Value: *f.MinPrice})
	}
	if f.MaxPrice != nil {
		conds = append(conds, clause.Lte{Column: clause.Column{Name: "price"}, Value: *f.MaxPrice})
	}
	if f.Bedrooms != nil {
		conds = append(conds, clause.Gte{Column: clause.Column{Name: "bedrooms"}, Value: *f.Bedrooms})
	}
	if f.Bathrooms != nil {
		conds = append(conds, clause.Gte{Column: clause.Column{Name: "bathrooms"}, Value: *f.Bathrooms})
	}
	if f.City != nil {
		conds = append(conds, clause.Expr{SQL: "LOWER(city) LIKE ?", Vars: []interface{}{"%" + strings.ToLower(*f.City) + "%"}})
	}
	if f.State != nil {
		conds = append(conds, clause.Eq{Column: clause.Column{Name: "state"}, Value: *f.State})
	}
	if f.AgentID != nil {
		conds = append(conds, clause.Eq{Column: clause.Column{Name: "agent_id"}, Value: *f.AgentID})
	}

	return conds
}

// ListProperties returns the properties matching every present filter field,
// newest first, paginated after filtering and sorting. An unmatched filter
// yields an empty slice, never an error.
func ListProperties(db *gorm.DB, filter PropertyFilter) ([]models.Property, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = DefaultPropertyPageSize
	}

	query := db.Model(&models.Property{}).
		Clauses(hints.CommentBefore("select", "property_search"))

	if conds := filter.conditions(); len(conds) > 0 {
		query = query.Clauses(clause.Where{Exprs: conds})
	}

	properties := make([]models.Property, 0, limit)
	err := query.
		Order("created_at DESC").
		Limit(limit).
		Offset(filter.Offset).
		Find(&properties).Error
	if err != nil {
		return nil, err
	}

	return properties, nil
}

// GetProperty fetches one property by id.
func GetProperty(db *gorm.DB, id uint) (*models.Property, error) {
	var property models.Property
	if err := db.First(&property, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &property, nil
}

// CreateProperty inserts a new listing. The caller is responsible for
// setting AgentID to the authenticated identity.
func CreateProperty(db *gorm.DB, property *models.Property) error {
	return db.Create(property).Error
}

// UpdateProperty applies a partial update and returns the updated row.
// Only the columns present in updates are touched.
func UpdateProperty(db *gorm.DB, id uint, updates map[string]interface{}) (*models.Property, error) {
	result := db.Model(&models.Property{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		// Updates with no changed columns report zero rows on some drivers,
		// so confirm existence before reporting not found.
		var count int64
		if err := db.Model(&models.Property{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return nil, err
		}
		if count == 0 {
			return nil, ErrNotFound
		}
	}
	return GetProperty(db, id)
}

// DeleteProperty removes a listing by id.
func DeleteProperty(db *gorm.DB, id uint) error {
	result := db.Delete(&models.Property{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
