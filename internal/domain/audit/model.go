package audit

import (
	"time"

	"gorm.io/datatypes"
)

const (
	ActionCreate       = "create"
	ActionUpdate       = "update"
	ActionDelete       = "delete"
	ActionStatusChange = "status_change"
	ActionGenerate     = "generate"
)

const (
	ResourceAnimal = "animal"
	ResourceForm   = "form"
	ResourceUser   = "user"
)

type AuditLog struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	UserID       uint           `gorm:"index" json:"user_id"`
	Action       string         `gorm:"size:32;not null;index" json:"action"`
	ResourceType string         `gorm:"size:32;not null;index" json:"resource_type"`
	ResourceID   string         `gorm:"size:64" json:"resource_id"`
	OldData      datatypes.JSON `json:"old_data" swaggertype:"object"`
	NewData      datatypes.JSON `json:"new_data" swaggertype:"object"`
	IPAddress    string         `gorm:"size:64" json:"ip_address"`
	UserAgent    string         `gorm:"size:255" json:"user_agent"`
	Description  string         `gorm:"type:text" json:"description"`
	CreatedAt    time.Time      `gorm:"index" json:"created_at"`
}

// Actor identifies who caused an audited change.
type Actor struct {
	UserID    uint
	IPAddress string
	UserAgent string
}

// SystemActor is recorded for changes made by background jobs.
var SystemActor = Actor{IPAddress: "system", UserAgent: "form-generator"}
