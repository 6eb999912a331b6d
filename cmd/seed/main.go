// Demo verisi üretir: ürünler, zincir mağazalar, işletmeler ve son günlere
// yayılmış rastgele fiyatlar. Yerel geliştirme içindir, production'da
// çalıştırılmaz.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"strings"
	"time"

	"pazarmetre-backend/internal/database"
	"pazarmetre-backend/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var demoProducts = []struct {
	name     string
	category string
	min, max float64
}{
	{"Dana Kıyma", "et", 380, 520},
	{"Dana Kuşbaşı", "et", 420, 580},
	{"Kuzu Pirzola", "et", 550, 750},
	{"Tavuk But", "tavuk", 90, 140},
	{"Tavuk Göğüs", "tavuk", 120, 180},
	{"Piliç Bonfile", "tavuk", 140, 200},
	{"Süt (Tam Yağlı)", "diger", 28, 42},
	{"Yumurta", "diger", 55, 85},
	{"Beyaz Peynir", "diger", 180, 280},
}

var chainStores = []string{"Migros", "A101", "BİM"}

func main() {
	_ = godotenv.Load()

	var (
		city       = flag.String("city", "Sakarya", "il")
		districts  = flag.String("districts", "Adapazarı,Hendek,Serdivan", "virgülle ayrılmış ilçeler")
		businesses = flag.Int("businesses", 5, "demo işletme sayısı")
		days       = flag.Int("days", 10, "fiyatların yayılacağı gün aralığı")
		seed       = flag.Int64("seed", 0, "rastgelelik tohumu (0: zaman)")
	)
	flag.Parse()

	if *seed != 0 {
		gofakeit.Seed(*seed)
		rng = rand.New(rand.NewSource(*seed))
	}

	dsn := os.Getenv("DATABASE_DSN")
	if dsn == "" {
		dsn = "host=localhost user=postgres password=postgres dbname=pazarmetre port=5432 sslmode=disable"
	}
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Veritabanına bağlanılamadı: %v", err)
	}
	database.DB = db

	if err := db.AutoMigrate(
		&models.Product{}, &models.Store{}, &models.Offer{}, &models.Business{},
	); err != nil {
		log.Fatalf("AutoMigrate hatası: %v", err)
	}

	distList := splitDistricts(*districts)

	products := seedProducts()
	stores := seedStores(*city, distList)
	offerCount := seedOffers(products, stores, *days)
	bizCount := seedBusinesses(*city, distList, *businesses)

	log.Printf("Tamamlandı: %d ürün, %d mağaza, %d teklif, %d işletme",
		len(products), len(stores), offerCount, bizCount)
}

var rng = rand.New(rand.NewSource(time.Now().UnixNano()))

func splitDistricts(s string) []string {
	var out []string
	for _, d := range strings.Split(s, ",") {
		if d = strings.TrimSpace(d); d != "" {
			out = append(out, d)
		}
	}
	if len(out) == 0 {
		out = []string{"Hendek"}
	}
	return out
}

func seedProducts() []models.Product {
	out := make([]models.Product, 0, len(demoProducts))
	for _, dp := range demoProducts {
		var p models.Product
		if err := database.DB.Where("name = ?", dp.name).First(&p).Error; err == nil {
			out = append(out, p)
			continue
		}
		cat := dp.category
		p = models.Product{
			Name:      dp.name,
			Unit:      "kg",
			Category:  &cat,
			Featured:  true,
			IsActive:  true,
			CreatedBy: "seed",
		}
		if err := database.DB.Create(&p).Error; err != nil {
			log.Fatalf("Ürün oluşturulamadı: %v", err)
		}
		out = append(out, p)
	}
	return out
}

func seedStores(city string, districts []string) []models.Store {
	var out []models.Store
	for _, dist := range districts {
		for _, name := range chainStores {
			var st models.Store
			err := database.DB.
				Where("name = ? AND city = ? AND district = ? AND neighborhood IS NULL", name, city, dist).
				First(&st).Error
			if err != nil {
				st = models.Store{Name: name, City: city, District: dist}
				if err := database.DB.Create(&st).Error; err != nil {
					log.Fatalf("Mağaza oluşturulamadı: %v", err)
				}
			}
			out = append(out, st)
		}
	}
	return out
}

func seedOffers(products []models.Product, stores []models.Store, days int) int {
	count := 0
	now := time.Now()
	for _, st := range stores {
		for i, p := range products {
			dp := demoProducts[i]
			// her mağaza/ürün için aralığa yayılmış 1-3 gözlem
			n := 1 + rng.Intn(3)
			for j := 0; j < n; j++ {
				price := dp.min + rng.Float64()*(dp.max-dp.min)
				created := now.AddDate(0, 0, -rng.Intn(days+1))
				offer := models.Offer{
					ProductID: p.ID,
					StoreID:   st.ID,
					Price:     float64(int(price*100)) / 100,
					Currency:  "TRY",
					Quantity:  1,
					Approved:  true,
					CreatedAt: created,
				}
				if err := database.DB.Create(&offer).Error; err != nil {
					log.Fatalf("Teklif oluşturulamadı: %v", err)
				}
				count++
			}
		}
	}
	return count
}

func seedBusinesses(city string, districts []string, n int) int {
	hash, err := bcrypt.GenerateFromPassword([]byte("demo123"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Şifre hashlenemedi: %v", err)
	}

	created := 0
	for i := 0; i < n; i++ {
		email := fmt.Sprintf("demo%d@%s", i+1, gofakeit.DomainName())
		var existing int64
		database.DB.Model(&models.Business{}).Where("email = ?", email).Count(&existing)
		if existing > 0 {
			continue
		}

		contact := gofakeit.Name()
		phone := gofakeit.Phone()
		addr := gofakeit.Street()
		biz := models.Business{
			Email:          email,
			HashedPassword: string(hash),
			BusinessName:   gofakeit.Company() + " Kasap",
			ContactPerson:  &contact,
			Phone:          &phone,
			Address:        &addr,
			City:           city,
			District:       districts[i%len(districts)],
			IsApproved:     i%2 == 0, // yarısı onay bekliyor kalsın
			IsActive:       true,
		}
		if err := database.DB.Create(&biz).Error; err != nil {
			log.Fatalf("İşletme oluşturulamadı: %v", err)
		}
		created++
	}
	return created
}
