package postgres

import "time"

// Row types mirror the domain entities column for column. Enumerations are
// stored as their upper-snake codes and prices as integer cents.
//
// The pointer-to-row fields exist only so AutoMigrate emits foreign keys.
// They are never preloaded and stay nil on every write.

type propertyRow struct {
	ID             int64      `gorm:"primaryKey"`
	Address        string     `gorm:"size:255;not null"`
	PriceCents     int64      `gorm:"not null;check:chk_properties_price,price_cents >= 0"`
	Type           string     `gorm:"size:20;not null;index"`
	Status         string     `gorm:"size:20;not null;index"`
	Description    string     `gorm:"type:text"`
	ListingDate    *time.Time `gorm:"type:date"`
	Bedrooms       *int
	Bathrooms      *float64
	SquareFeet     *int
	CollaboratorID *int64 `gorm:"index"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Collaborator *collaboratorRow `gorm:"foreignKey:CollaboratorID;constraint:OnDelete:RESTRICT"`
}

func (propertyRow) TableName() string { return "properties" }

type clientRow struct {
	ID        int64  `gorm:"primaryKey"`
	Name      string `gorm:"size:100;not null"`
	Email     string `gorm:"size:254;not null;uniqueIndex:idx_clients_email_lower,expression:lower(email)"`
	Phone     string `gorm:"size:32"`
	Type      string `gorm:"size:20;not null;index"`
	Notes     string `gorm:"type:text"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (clientRow) TableName() string { return "clients" }

// interestRow is one edge of the client/property many-to-many relation.
type interestRow struct {
	ClientID   int64 `gorm:"primaryKey;autoIncrement:false"`
	PropertyID int64 `gorm:"primaryKey;autoIncrement:false;index"`

	Client   *clientRow   `gorm:"foreignKey:ClientID;constraint:OnDelete:CASCADE"`
	Property *propertyRow `gorm:"foreignKey:PropertyID;constraint:OnDelete:RESTRICT"`
}

func (interestRow) TableName() string { return "client_interests" }

type taskRow struct {
	ID                int64     `gorm:"primaryKey"`
	Title             string    `gorm:"size:200;not null"`
	Description       string    `gorm:"type:text"`
	DueDate           time.Time `gorm:"not null;index"`
	Priority          string    `gorm:"size:10;not null"`
	Status            string    `gorm:"size:20;not null;index"`
	AssignedTo        *int64    `gorm:"index"`
	RelatedPropertyID *int64    `gorm:"index"`
	ClientID          *int64    `gorm:"index;check:chk_tasks_single_link,related_property_id IS NULL OR client_id IS NULL"`
	CreatedAt         time.Time
	UpdatedAt         time.Time

	Assignee        *collaboratorRow `gorm:"foreignKey:AssignedTo;constraint:OnDelete:RESTRICT"`
	RelatedProperty *propertyRow     `gorm:"foreignKey:RelatedPropertyID;constraint:OnDelete:RESTRICT"`
	Client          *clientRow       `gorm:"foreignKey:ClientID;constraint:OnDelete:RESTRICT"`
}

func (taskRow) TableName() string { return "tasks" }

type collaboratorRow struct {
	ID        int64  `gorm:"primaryKey"`
	Name      string `gorm:"size:100;not null"`
	Email     string `gorm:"size:254;not null;uniqueIndex:idx_collaborators_email_lower,expression:lower(email)"`
	Phone     string `gorm:"size:32"`
	Role      string `gorm:"size:20;not null;index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (collaboratorRow) TableName() string { return "collaborators" }

// allModels lists every table in migration order.
func allModels() []any {
	return []any{&collaboratorRow{}, &propertyRow{}, &clientRow{}, &interestRow{}, &taskRow{}}
}

// zeroTime clears a timestamp so gorm stamps it from its NowFunc.
var zeroTime time.Time
