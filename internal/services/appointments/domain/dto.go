// Package domain holds DTOs for appointment service contracts
package domain

import "time"

// CreateInput asks the service to persist a new appointment
type CreateInput struct {
	ChatID   string    `json:"chat_id"  validate:"required,min=1,max=100"`
	Title    string    `json:"title"    validate:"required,min=1,max=300"`
	At       time.Time `json:"at"       validate:"required"`
	Location string    `json:"location" validate:"max=300"`
	Building string    `json:"building" validate:"max=300"`
	Contact  string    `json:"contact"  validate:"max=200"`
	Phone    string    `json:"phone"    validate:"max=40"`

	Confidence float64 `json:"confidence" validate:"gte=0,lte=1"`

	// LeadDays defaults to DefaultLeadDays when empty
	LeadDays []int `json:"lead_days" validate:"omitempty,max=10,dive,gte=0,lte=365"`
}

// UpdateInput patches an existing appointment; nil fields are left alone
type UpdateInput struct {
	ID     string `json:"id"      validate:"required,uuid4"`
	ChatID string `json:"chat_id" validate:"required,min=1,max=100"`

	Title    *string    `json:"title,omitempty"    validate:"omitempty,min=1,max=300"`
	At       *time.Time `json:"at,omitempty"`
	Location *string    `json:"location,omitempty" validate:"omitempty,max=300"`
	Building *string    `json:"building,omitempty" validate:"omitempty,max=300"`
	Contact  *string    `json:"contact,omitempty"  validate:"omitempty,max=200"`
	Phone    *string    `json:"phone,omitempty"    validate:"omitempty,max=40"`
}

// ListQuery selects a chat's appointments, optionally only upcoming ones
type ListQuery struct {
	ChatID       string `json:"chat_id" validate:"required,min=1,max=100"`
	UpcomingOnly bool   `json:"upcoming_only"`
	Limit        int    `json:"limit" validate:"gte=0,lte=500"`
}
