package admin

import (
	"strconv"
	"strings"

	"pazarmetre-backend/internal/database"
	"pazarmetre-backend/internal/location"
	"pazarmetre-backend/internal/logger"
	"pazarmetre-backend/internal/metrics"
	"pazarmetre-backend/internal/models"
	"pazarmetre-backend/internal/turkish"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Zincir mağaza adları tek yazıma indirgenir; tanınmayan adlar (kasaplar vb.)
// girildiği gibi kalır.
var brandCanon = map[string]string{
	"migros": "Migros",
	"a101":   "A101",
	"bim":    "BİM",
}

func CanonicalStoreName(label string) string {
	label = strings.TrimSpace(label)
	if canon, ok := brandCanon[turkish.Fold(label)]; ok {
		return canon
	}
	return label
}

// Toplu girişten ayrıştırılmış tek satır
type BulkEntry struct {
	ProductName   string
	Price         float64
	Unit          string
	Address       string
	SourceURL     string
	SourceWeightG *float64
	SourceUnit    string
	Category      string // boş: belirtilmedi
}

var (
	validUnits      = map[string]bool{"kg": true, "adet": true, "litre": true}
	validCategories = map[string]bool{"et": true, "tavuk": true, "diger": true}
)

func at(list []string, i int) string {
	if i < len(list) {
		return strings.TrimSpace(list[i])
	}
	return ""
}

// ParseBulkEntries form sütunlarını satırlara çevirir. Ayrıştırma hoşgörülüdür:
// fiyatta virgül ondalık kabul edilir, geçersiz birim kg'a, geçersiz kategori
// boşa düşer. Ürün adı + geçerli fiyat olmayan satır atlanır; tamamen boş
// şablon satırları atlanmış sayılmaz.
func ParseBulkEntries(names, prices, units, addrs, urls, weights, sourceUnits, cats []string) (entries []BulkEntry, skipped int) {
	n := len(names)
	for _, l := range [][]string{prices, units, addrs, urls, weights, sourceUnits, cats} {
		if len(l) > n {
			n = len(l)
		}
	}

	for i := 0; i < n; i++ {
		name := at(names, i)
		priceRaw := at(prices, i)

		if name == "" && priceRaw == "" {
			continue
		}
		if name == "" || priceRaw == "" {
			skipped++
			continue
		}

		price, err := strconv.ParseFloat(strings.ReplaceAll(priceRaw, ",", "."), 64)
		if err != nil {
			skipped++
			continue
		}

		unit := strings.ToLower(at(units, i))
		if !validUnits[unit] {
			unit = "kg"
		}

		cat := strings.ToLower(at(cats, i))
		if !validCategories[cat] {
			cat = ""
		}

		var weightG *float64
		if raw := at(weights, i); raw != "" {
			if w, err := strconv.ParseFloat(strings.ReplaceAll(raw, ",", "."), 64); err == nil {
				weightG = &w
			}
		}

		entries = append(entries, BulkEntry{
			ProductName:   name,
			Price:         price,
			Unit:          unit,
			Address:       at(addrs, i),
			SourceURL:     at(urls, i),
			SourceWeightG: weightG,
			SourceUnit:    at(sourceUnits, i),
			Category:      cat,
		})
	}
	return entries, skipped
}

type bulkRequest struct {
	StoreName     string   `json:"store_name" form:"store_name_single"`
	Featured      bool     `json:"featured" form:"featured"`
	Districts     []string `json:"districts" form:"districts"`
	ProductNames  []string `json:"product_names" form:"product_name"`
	Prices        []string `json:"prices" form:"price"`
	Units         []string `json:"units" form:"unit"`
	Addresses     []string `json:"addresses" form:"store_address"`
	SourceURLs    []string `json:"source_urls" form:"source_url"`
	SourceWeights []string `json:"source_weights" form:"source_weight_g"`
	SourceUnits   []string `json:"source_units" form:"source_unit"`
	Categories    []string `json:"categories" form:"category"`
}

// POST /api/admin/bulk – tek mağaza etiketi altında çok satırlı fiyat girişi.
// Seçilen her ilçe için ilçe başına TEK kanonik mağaza (neighborhood NULL)
// bulunur/oluşturulur ve tüm satırlar o mağazaya teklif olarak yazılır.
func BulkHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		city, dist, _ := location.Get(c)
		if city == "" || dist == "" {
			return c.Redirect("/lokasyon", fiber.StatusFound)
		}

		var body bulkRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		storeName := CanonicalStoreName(body.StoreName)
		if storeName == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Mağaza adı zorunlu")
		}

		entries, skipped := ParseBulkEntries(
			body.ProductNames, body.Prices, body.Units, body.Addresses,
			body.SourceURLs, body.SourceWeights, body.SourceUnits, body.Categories,
		)
		metrics.BulkRowsAccepted.Add(float64(len(entries)))
		metrics.BulkRowsSkipped.Add(float64(skipped))
		if len(entries) == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Geçerli satır yok (ürün adı + fiyat zorunlu)")
		}

		targets := make([]string, 0, len(body.Districts))
		for _, d := range body.Districts {
			if d = strings.TrimSpace(d); d != "" {
				targets = append(targets, d)
			}
		}
		if len(targets) == 0 {
			targets = []string{dist}
		}

		// Ürün eşleme Türkçe harf duyarsız; parti içinde oluşturulan ürünler
		// de haritaya girer ki aynı isim iki kez açılmasın.
		var products []models.Product
		database.DB.Find(&products)
		byName := make(map[string]*models.Product, len(products))
		for i := range products {
			byName[turkish.Fold(products[i].Name)] = &products[i]
		}

		for _, target := range targets {
			store, err := findOrCreateCanonicalStore(storeName, city, target, entries)
			if err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Mağaza kaydı oluşturulamadı")
			}

			for _, e := range entries {
				product := byName[turkish.Fold(e.ProductName)]
				if product == nil {
					p := models.Product{
						Name:      e.ProductName,
						Unit:      e.Unit,
						Featured:  body.Featured,
						IsActive:  true,
						CreatedBy: "admin",
					}
					if e.Category != "" {
						p.Category = &e.Category
					}
					if err := database.DB.Create(&p).Error; err != nil {
						return fiber.NewError(fiber.StatusInternalServerError, "Ürün oluşturulamadı")
					}
					byName[turkish.Fold(p.Name)] = &p
					product = &p
				} else {
					updates := map[string]interface{}{}
					if body.Featured && !product.Featured {
						product.Featured = true
						updates["featured"] = true
					}
					if e.Category != "" && (product.Category == nil || *product.Category == "") {
						cat := e.Category
						product.Category = &cat
						updates["category"] = cat
					}
					if e.Unit != "" && product.Unit != e.Unit {
						product.Unit = e.Unit
						updates["unit"] = e.Unit
					}
					if len(updates) > 0 {
						database.DB.Model(&models.Product{}).Where("id = ?", product.ID).Updates(updates)
					}
				}

				offer := models.Offer{
					ProductID: product.ID,
					StoreID:   store.ID,
					Price:     e.Price,
					Currency:  "TRY",
					Quantity:  1,
					Approved:  true,
				}
				if e.SourceURL != "" {
					offer.SourceURL = &e.SourceURL
				}
				if e.SourceWeightG != nil {
					offer.SourceWeightG = e.SourceWeightG
				}
				if e.SourceUnit != "" {
					offer.SourceUnit = &e.SourceUnit
				}
				if e.Address != "" {
					offer.BranchAddress = &e.Address
				}
				if err := database.DB.Create(&offer).Error; err != nil {
					return fiber.NewError(fiber.StatusInternalServerError, "Fiyat kaydedilemedi")
				}
			}
		}

		logger.Get().Info("toplu fiyat girişi tamamlandı",
			zap.String("store", storeName),
			zap.Int("rows", len(entries)),
			zap.Int("skipped", skipped),
			zap.Int("districts", len(targets)))

		return c.Redirect("/", fiber.StatusFound)
	}
}

// findOrCreateCanonicalStore, ilçedeki kanonik mağaza kaydını döndürür; yoksa
// satırlardaki ilk dolu adresle oluşturur. Eşleme Türkçe harf duyarsız olduğu
// için SQL lower() yerine bellekte karşılaştırılır.
func findOrCreateCanonicalStore(name, city, district string, entries []BulkEntry) (*models.Store, error) {
	var candidates []models.Store
	database.DB.
		Where("city = ? AND district = ? AND neighborhood IS NULL", city, district).
		Find(&candidates)
	for i := range candidates {
		if turkish.Equal(candidates[i].Name, name) {
			return &candidates[i], nil
		}
	}

	store := models.Store{
		Name:     name,
		City:     city,
		District: district,
	}
	for _, e := range entries {
		if e.Address != "" {
			addr := e.Address
			store.Address = &addr
			break
		}
	}
	if err := database.DB.Create(&store).Error; err != nil {
		return nil, err
	}
	return &store, nil
}
