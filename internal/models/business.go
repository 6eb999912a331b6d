package models

import "time"

// İşletme hesapları; admin onayından sonra kendi fiyatlarını girebilirler.
type Business struct {
	ID             uint    `gorm:"primaryKey" json:"id"`
	Email          string  `gorm:"size:100;uniqueIndex;not null" json:"email"`
	HashedPassword string  `gorm:"size:255;not null" json:"-"`
	BusinessName   string  `gorm:"size:150;not null" json:"business_name"`
	ContactPerson  *string `gorm:"size:100" json:"contact_person"`
	Phone          *string `gorm:"size:50" json:"phone"`
	Address        *string `gorm:"size:255" json:"address"`
	City           string  `gorm:"size:50;not null" json:"city"`
	District       string  `gorm:"size:50;not null;index" json:"district"`

	IsApproved bool `gorm:"not null;default:false" json:"is_approved"`
	IsActive   bool `gorm:"not null;default:true" json:"is_active"`

	AdminNotes *string `gorm:"size:500" json:"admin_notes"`

	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}
