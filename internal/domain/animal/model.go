package animal

import (
	"time"

	"github.com/linskybing/adoption-tracker/internal/domain/form"
	"github.com/linskybing/adoption-tracker/internal/domain/user"
)

// Animal is an adopted animal under welfare follow-up.
//
// FormStatus and LastFormSentDate mirror the newest form and are written only
// by reconciliation. FormIDs is loaded from the forms table, never stored.
type Animal struct {
	ID                   uint            `gorm:"primaryKey" json:"id"`
	Name                 string          `gorm:"size:100;not null;index" json:"name"`
	ResponsibleUserID    uint            `gorm:"not null;index" json:"responsible_user_id"`
	ResponsibleUser      *user.User      `gorm:"foreignKey:ResponsibleUserID;constraint:OnDelete:RESTRICT" json:"-"`
	OwnerName            string          `gorm:"size:100;not null" json:"owner_name"`
	OwnerContactNumber   string          `gorm:"size:50;not null" json:"owner_contact_number"`
	OwnerContactEmail    string          `gorm:"size:255;not null" json:"owner_contact_email"`
	FormGenerationPeriod int             `gorm:"not null;default:0" json:"form_generation_period"`
	FormStatus           form.FormStatus `gorm:"size:16;not null;default:'created'" json:"form_status"`
	LastFormSentDate     *time.Time      `json:"last_form_sent_date"`
	LastFormCreatedDate  *time.Time      `json:"last_form_created_date"`
	Forms                []form.Form     `gorm:"foreignKey:AnimalID;constraint:OnDelete:CASCADE" json:"-"`
	FormIDs              []uint          `gorm:"-" json:"form_ids"`
	CreatedAt            time.Time       `json:"created_at"`
	UpdatedAt            time.Time       `json:"updated_at"`
}

func (Animal) TableName() string {
	return "animals"
}
