package model

import "time"

// Instructor is a training instructor. Email is the login key and must be
// unique. IsAdmin additionally grants fleet and instructor management access.
//
// Wire note: the JSON field is "is_admin"; the Go field stays IsAdmin.
type Instructor struct {
	ID        string    `json:"id,omitempty" bson:"_id,omitempty" validate:"omitempty"`
	Name      string    `json:"name" bson:"name" validate:"required,min=2,max=100"`
	Surname   string    `json:"surname" bson:"surname" validate:"required,min=2,max=100"`
	Email     string    `json:"email" bson:"email" validate:"required,email,max=254"`
	Bio       string    `json:"bio" bson:"bio" validate:"required,max=1000"`
	Photo     string    `json:"photo" bson:"photo" validate:"required,url,max=500"`
	Active    bool      `json:"active" bson:"active"`
	IsAdmin   bool      `json:"is_admin" bson:"is_admin"`
	CreatedAt time.Time `json:"created_at,omitempty" bson:"created_at" validate:"omitempty"`
}

// InstructorUpdate is a partial update: present fields overwrite, absent
// fields leave stored state untouched.
type InstructorUpdate struct {
	Name    string `json:"name,omitempty" validate:"omitempty,min=2,max=100"`
	Surname string `json:"surname,omitempty" validate:"omitempty,min=2,max=100"`
	Email   string `json:"email,omitempty" validate:"omitempty,email,max=254"`
	Bio     string `json:"bio,omitempty" validate:"omitempty,max=1000"`
	Photo   string `json:"photo,omitempty" validate:"omitempty,url,max=500"`
	Active  *bool  `json:"active,omitempty" validate:"omitempty"`
	IsAdmin *bool  `json:"is_admin,omitempty" validate:"omitempty"`
}
