package models

import "time"

// Ana ürün listesi. İsim benzersizliği Türkçe harf duyarlı karşılaştırmayla
// handler katmanında sağlanır; veritabanı collation'ına güvenilmez.
type Product struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Name        string  `gorm:"size:150;not null;index" json:"name"`
	Unit        string  `gorm:"size:20;not null;default:kg" json:"unit"` // kg, adet, litre vs.
	Category    *string `gorm:"size:50;index" json:"category"`
	Description *string `gorm:"size:500" json:"description"`
	Featured    bool    `gorm:"not null;default:false;index" json:"featured"`
	IsActive    bool    `gorm:"not null;default:true" json:"is_active"`
	CreatedBy   string  `gorm:"size:50;not null;default:admin" json:"created_by"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at"`
}

type SuggestionStatus string

const (
	SuggestionPending  SuggestionStatus = "pending"
	SuggestionApproved SuggestionStatus = "approved"
	SuggestionRejected SuggestionStatus = "rejected"
)

// İşletmelerin yeni ürün önerileri
type ProductSuggestion struct {
	ID          uint             `gorm:"primaryKey" json:"id"`
	BusinessID  uint             `gorm:"not null;index" json:"business_id"`
	Business    *Business        `json:"-"`
	ProductName string           `gorm:"size:150;not null" json:"product_name"`
	Category    *string          `gorm:"size:50" json:"category"`
	Unit        *string          `gorm:"size:20" json:"unit"`
	Description *string          `gorm:"size:500" json:"description"`
	Status      SuggestionStatus `gorm:"size:20;not null;default:pending;index" json:"status"`
	AdminNotes  *string          `gorm:"size:500" json:"admin_notes"`
	CreatedAt   time.Time        `json:"created_at"`
	ReviewedAt  *time.Time       `json:"reviewed_at"`
}
