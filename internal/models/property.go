package models

import (
	"time"

	"gorm.io/datatypes"
)

// Property is a real-estate listing. The owning agent is fixed at creation
// and gates updates and deletes for the life of the row.
type Property struct {
	ID            uint                        `gorm:"primaryKey;autoIncrement" json:"id"`
	Title         string                      `gorm:"size:255;not null" json:"title"`
	Description   string                      `gorm:"type:text" json:"description"`
	Price         float64                     `gorm:"type:decimal(12,2);not null" json:"price"`
	Address       string                      `gorm:"size:500;not null" json:"address"`
	City          string                      `gorm:"size:100;not null" json:"city"`
	State         string                      `gorm:"size:50;not null" json:"state"`
	ZipCode       string                      `gorm:"size:20;not null" json:"zipCode"`
	Bedrooms      int                         `gorm:"default:0" json:"bedrooms"`
	Bathrooms     float64                     `gorm:"type:decimal(3,1);default:0" json:"bathrooms"`
	SquareFootage *int                        `json:"squareFootage"`
	PropertyType  PropertyType                `gorm:"type:varchar(20);not null;index" json:"propertyType"`
	Status        PropertyStatus              `gorm:"type:varchar(20);not null;default:for_sale;index" json:"status"`
	ImageURLs     datatypes.JSONSlice[string] `json:"imageUrls"`
	Amenities     datatypes.JSONSlice[string] `json:"amenities"`
	AgentID       *string                     `gorm:"size:64;index" json:"agentId"`
	Agent         *User                       `gorm:"foreignKey:AgentID" json:"agent,omitempty"`
	CreatedAt     time.Time                   `gorm:"index" json:"createdAt"`
	UpdatedAt     time.Time                   `json:"updatedAt"`
}

// TableName overrides the table name for Property
func (Property) TableName() string {
	return "properties"
}
