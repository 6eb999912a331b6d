package database

import (
	"log"

	"pazarmetre-backend/internal/config"
	"pazarmetre-backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init(cfg *config.Config) {
	var err error

	DB, err = gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
	if err != nil {
		log.Fatalf("Veritabanına bağlanılamadı: %v", err)
	}

	// Eski kurulumlardan kalan şema açıkları AutoMigrate'ten ÖNCE kapatılır.
	// Her adım hata durumunda loglayıp devam eder; migration hatası uygulamayı
	// düşürmez, eksik kolonlu kurulum eski davranışıyla çalışmaya devam eder.
	ensureVisitSchema()
	ensureOfferSourceColumns()

	err = DB.AutoMigrate(
		&models.Product{},
		&models.ProductSuggestion{},
		&models.Business{},
		&models.Store{},
		&models.Branch{},
		&models.Offer{},
		&models.PriceChange{},
		&models.Visit{},
	)
	if err != nil {
		log.Fatalf("AutoMigrate hatası: %v", err)
	}

	log.Println("Veritabanı bağlantısı başarılı. Migration tamamlandı.")
}

// Visit tablosu ilk sürümlerde visitor_hash olmadan açılmıştı
func ensureVisitSchema() {
	if !DB.Migrator().HasTable(&models.Visit{}) {
		return
	}
	if !DB.Migrator().HasColumn(&models.Visit{}, "visitor_hash") {
		log.Println("Visit.visitor_hash kolonu ekleniyor...")
		if err := DB.Exec("ALTER TABLE visits ADD COLUMN visitor_hash VARCHAR(64)").Error; err != nil {
			log.Printf("visitor_hash eklenirken hata (zaten var olabilir): %v", err)
		}
	}
}

// Fiyat izleyici alanları sonradan eklendi; eski offers tablolarında yoklar
func ensureOfferSourceColumns() {
	if !DB.Migrator().HasTable(&models.Offer{}) {
		return
	}
	cols := map[string]string{
		"source_price":      "ALTER TABLE offers ADD COLUMN source_price NUMERIC",
		"source_checked_at": "ALTER TABLE offers ADD COLUMN source_checked_at TIMESTAMPTZ",
		"source_mismatch":   "ALTER TABLE offers ADD COLUMN source_mismatch BOOLEAN NOT NULL DEFAULT FALSE",
	}
	for col, stmt := range cols {
		if DB.Migrator().HasColumn(&models.Offer{}, col) {
			continue
		}
		log.Printf("Offer.%s kolonu ekleniyor...", col)
		if err := DB.Exec(stmt).Error; err != nil {
			log.Printf("%s eklenirken hata (devam ediliyor): %v", col, err)
		}
	}
}
