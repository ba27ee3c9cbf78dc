package models

import (
	"time"

	"gorm.io/gorm"
)

// User represents users table
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"uniqueIndex;size:50;not null" json:"username"`
	Email     string    `gorm:"uniqueIndex;size:100;not null" json:"email"`
	Password  string    `gorm:"size:255;not null" json:"-"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

// UserResponse DTO — never carries the password hash
type UserResponse struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

func (u *User) ToResponse() *UserResponse {
	return &UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}

// Catway represents a mooring berth. CatwayNumber is the human-assigned
// business key; it and CatwayType are immutable after creation, only
// CatwayState may change.
type Catway struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	CatwayNumber string    `gorm:"uniqueIndex;size:20;not null" json:"catway_number"`
	CatwayType   string    `gorm:"size:10;not null" json:"catway_type"` // long | short
	CatwayState  string    `gorm:"size:200;not null" json:"catway_state"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Catway) TableName() string {
	return "catways"
}

// Catway types
const (
	CatwayTypeLong  = "long"
	CatwayTypeShort = "short"
)

// Reservation books a catway for a half-open window [StartDate, EndDate).
// CatwayNumber references the catway by business key; UserID keeps the
// owning account and deliberately has no FK constraint so a deleted user
// leaves historical reservations in place.
type Reservation struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	CatwayNumber string    `gorm:"index;size:20;not null" json:"catway_number"`
	ClientName   string    `gorm:"size:100;not null" json:"client_name"`
	BoatName     string    `gorm:"size:100;not null" json:"boat_name"`
	StartDate    time.Time `gorm:"not null" json:"start_date"`
	EndDate      time.Time `gorm:"not null" json:"end_date"`
	UserID       uint      `gorm:"index" json:"user_id"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Reservation) TableName() string {
	return "reservations"
}

// Active reports whether the reservation covers the given instant.
func (r *Reservation) Active(now time.Time) bool {
	return !now.Before(r.StartDate) && now.Before(r.EndDate)
}

// AutoMigrate runs auto migration for all tables
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&Catway{},
		&Reservation{},
	)
}
