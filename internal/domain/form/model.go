package form

import (
	"errors"
	"fmt"
	"time"
)

type FormStatus string

const (
	StatusCreated    FormStatus = "created"
	StatusSent       FormStatus = "sent"
	StatusFilled     FormStatus = "filled"
	StatusControlled FormStatus = "controlled"
)

var ErrInvalidStatus = errors.New("invalid form status")

// Statuses lists every lifecycle state in forward order.
var Statuses = []FormStatus{StatusCreated, StatusSent, StatusFilled, StatusControlled}

func (s FormStatus) Valid() bool {
	switch s {
	case StatusCreated, StatusSent, StatusFilled, StatusControlled:
		return true
	}
	return false
}

// ParseStatus accepts exact lifecycle names only.
func ParseStatus(raw string) (FormStatus, error) {
	s := FormStatus(raw)
	if !s.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, raw)
	}
	return s, nil
}

// Form is one welfare-check form issued for an adopted animal.
type Form struct {
	ID             uint       `gorm:"primaryKey" json:"id"`
	AnimalID       uint       `gorm:"not null;index" json:"animal_id"`
	FormStatus     FormStatus `gorm:"size:16;not null;default:'created';index" json:"form_status"`
	CreatedDate    time.Time  `gorm:"not null" json:"created_date"`
	AssignedDate   *time.Time `json:"assigned_date"`
	FilledDate     *time.Time `json:"filled_date"`
	ControlledDate *time.Time `json:"controlled_date"`
	ControlDueDate *time.Time `gorm:"index" json:"control_due_date"`
}

func (Form) TableName() string {
	return "forms"
}
