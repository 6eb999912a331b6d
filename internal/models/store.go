package models

import "time"

// Kanonik mağaza: manuel/toplu fiyat girişi için ilçe başına tek kayıt
// (neighborhood = NULL). İşletmeye bağlı mağazalarda business_id dolu olur.
type Store struct {
	ID           uint    `gorm:"primaryKey" json:"id"`
	Name         string  `gorm:"size:100;not null;index" json:"name"`
	Address      *string `gorm:"size:255" json:"address"`
	City         string  `gorm:"size:50;not null;index" json:"city"`
	District     string  `gorm:"size:50;not null;index" json:"district"`
	Neighborhood *string `gorm:"size:50" json:"neighborhood"`
	BusinessID   *uint   `gorm:"index" json:"business_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Şubeler (fiyat bağlamaz) – liste/harita görünümleri için
type Branch struct {
	ID         uint     `gorm:"primaryKey" json:"id"`
	Brand      string   `gorm:"size:100;not null;index" json:"brand"`
	City       string   `gorm:"size:50;not null" json:"city"`
	District   string   `gorm:"size:50;not null;index" json:"district"`
	Name       string   `gorm:"size:150;not null" json:"name"`
	Address    *string  `gorm:"size:255" json:"address"`
	Lat        *float64 `json:"lat"`
	Lng        *float64 `json:"lng"`
	BusinessID *uint    `json:"business_id"`
	CreatedAt  time.Time `json:"created_at"`
}
