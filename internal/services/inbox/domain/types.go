// Package domain holds inbox transport types
package domain

import "time"

// IncomingMessage is one chat message pushed at the webhook
type IncomingMessage struct {
	ChatID string `json:"chat_id" validate:"required,min=1,max=128"`
	Text   string `json:"text" validate:"required,min=1,max=4000"`
}

// Reply is what the bot answers with
type Reply struct {
	Text          string  `json:"text"`
	Saved         bool    `json:"saved"`
	AppointmentID string  `json:"appointment_id,omitempty"`
	Mode          string  `json:"mode,omitempty"`
	Confidence    float64 `json:"confidence"`
}

// EditInput patches one of the chat's appointments; absent fields stay
type EditInput struct {
	ChatID string `json:"chat_id" validate:"required,min=1,max=128"`
	ID     string `json:"id" validate:"required,uuid4"`

	Title    *string    `json:"title,omitempty"    validate:"omitempty,min=1,max=300"`
	At       *time.Time `json:"at,omitempty"`
	Location *string    `json:"location,omitempty" validate:"omitempty,max=300"`
	Building *string    `json:"building,omitempty" validate:"omitempty,max=300"`
	Contact  *string    `json:"contact,omitempty"  validate:"omitempty,max=200"`
	Phone    *string    `json:"phone,omitempty"    validate:"omitempty,max=40"`
}

// DeleteInput removes one of the chat's appointments
type DeleteInput struct {
	ChatID string `json:"chat_id" validate:"required,min=1,max=128"`
	ID     string `json:"id" validate:"required,uuid4"`
}

// ListInput selects a chat's appointments
type ListInput struct {
	ChatID       string `json:"chat_id" validate:"required,min=1,max=128"`
	UpcomingOnly bool   `json:"upcoming_only"`
	Limit        int    `json:"limit" validate:"gte=0,lte=500"`
}
