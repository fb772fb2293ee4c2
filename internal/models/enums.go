package models

// UserRole is the role assigned to a user account.
type UserRole string

const (
	RoleUser     UserRole = "user"
	RoleAgent    UserRole = "agent"
	RoleManager  UserRole = "manager"
	RoleAdmin    UserRole = "admin"
	RoleVendor   UserRole = "vendor"
	RoleInvestor UserRole = "investor"
)

// SubscriptionPlan is the billing tier of a user account.
type SubscriptionPlan string

const (
	PlanStarter      SubscriptionPlan = "starter"
	PlanProfessional SubscriptionPlan = "professional"
	PlanEnterprise   SubscriptionPlan = "enterprise"
)

// PropertyStatus is the listing state of a property.
type PropertyStatus string

const (
	StatusForSale   PropertyStatus = "for_sale"
	StatusForRent   PropertyStatus = "for_rent"
	StatusSold      PropertyStatus = "sold"
	StatusRented    PropertyStatus = "rented"
	StatusOffMarket PropertyStatus = "off_market"
)

// PropertyType is the structural category of a property.
type PropertyType string

const (
	TypeSingleFamily PropertyType = "single_family"
	TypeCondo        PropertyType = "condo"
	TypeTownhouse    PropertyType = "townhouse"
	TypeMultiFamily  PropertyType = "multi_family"
	TypeCommercial   PropertyType = "commercial"
	TypeLand         PropertyType = "land"
)

// TutorialDifficulty is the skill level of a tutorial.
type TutorialDifficulty string

const (
	DifficultyBeginner     TutorialDifficulty = "beginner"
	DifficultyIntermediate TutorialDifficulty = "intermediate"
	DifficultyAdvanced     TutorialDifficulty = "advanced"
)
