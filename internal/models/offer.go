package models

import "time"

// Tek bir fiyat gözlemi: (ürün, mağaza, fiyat, zaman). Oluşturulduktan sonra
// yalnızca admin fiyat/URL düzenlemesiyle değişir.
type Offer struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	ProductID uint    `gorm:"not null;index" json:"product_id"`
	Product   *Product `json:"-"`
	StoreID   uint    `gorm:"not null;index" json:"store_id"`
	Store     *Store  `json:"-"`
	Price     float64 `gorm:"not null" json:"price"`
	Currency  string  `gorm:"size:10;not null;default:TRY" json:"currency"`
	Quantity  float64 `gorm:"not null;default:1" json:"quantity"`
	Approved  bool    `gorm:"not null;default:true;index" json:"approved"`

	// İşletme tarafından girilmişse
	BusinessID *uint `gorm:"index" json:"business_id"`

	SourceURL     *string  `gorm:"size:500" json:"source_url"`
	SourceWeightG *float64 `json:"source_weight_g"`
	SourceUnit    *string  `gorm:"size:20" json:"source_unit"`

	// Satır bazlı opsiyonel market/şube adresi
	BranchAddress *string `gorm:"size:255" json:"branch_address"`

	// Fiyat izleyicinin doldurduğu alanlar; izleyici bu serviste çalışmaz,
	// admin uyarı listesi yalnızca okur.
	SourcePrice     *float64   `json:"source_price"`
	SourceCheckedAt *time.Time `json:"source_checked_at"`
	SourceMismatch  bool       `gorm:"not null;default:false;index" json:"source_mismatch"`

	CreatedAt time.Time  `gorm:"index" json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

// Admin fiyat düzenlemelerinde tutulan değişiklik kaydı
type PriceChange struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	ProductID  uint      `gorm:"not null;index" json:"product_id"`
	StoreID    uint      `gorm:"not null;index" json:"store_id"`
	OldPrice   float64   `gorm:"not null" json:"old_price"`
	NewPrice   float64   `gorm:"not null" json:"new_price"`
	DetectedAt time.Time `gorm:"not null" json:"detected_at"`
	SourceURL  *string   `gorm:"size:500" json:"source_url"`
}
