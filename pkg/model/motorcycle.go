package model

import "time"

// Motorcycle is a training bike in the fleet. Read-only from the booking
// flow's perspective; only admins create, edit, or delete fleet entries.
type Motorcycle struct {
	ID          string    `json:"id,omitempty" bson:"_id,omitempty" validate:"omitempty"`
	Name        string    `json:"name" bson:"name" validate:"required,min=2,max=100"`
	Image       string    `json:"image" bson:"image" validate:"required,url,max=500"`
	Description string    `json:"description" bson:"description" validate:"required,max=1000"`
	Active      bool      `json:"active" bson:"active"`
	CreatedAt   time.Time `json:"created_at,omitempty" bson:"created_at" validate:"omitempty"`
}

// MotorcycleUpdate is a partial update: present fields overwrite, absent
// fields leave stored state untouched.
type MotorcycleUpdate struct {
	Name        string `json:"name,omitempty" validate:"omitempty,min=2,max=100"`
	Image       string `json:"image,omitempty" validate:"omitempty,url,max=500"`
	Description string `json:"description,omitempty" validate:"omitempty,max=1000"`
	Active      *bool  `json:"active,omitempty" validate:"omitempty"`
}
