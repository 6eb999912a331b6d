// Package pricing, görünüm katmanlarının kullandığı teklif seçme mantığını
// içerir: mahalle daraltma, tazelik penceresi, marka başına en yeni kaydı
// bırakma ve fiyat sıralaması. Tüm fonksiyonlar bellekteki satırlar üzerinde
// çalışır; veritabanı erişimi çağıranın işidir.
package pricing

import (
	"sort"
	"time"

	"pazarmetre-backend/internal/models"
	"pazarmetre-backend/internal/turkish"
)

// Row, ürün+lokasyon filtresinden geçmiş tek (teklif, mağaza) çifti.
type Row struct {
	Offer models.Offer
	Store models.Store
}

type Options struct {
	// Seçili mahalle; eşleşme yoksa ilçe geneline düşülür.
	Neighborhood string

	// Tazelik penceresi referans anı ve gün cinsinden eşik. StaleDays <= 0
	// pencereyi kapatır.
	Now       time.Time
	StaleDays int

	// false: marka yerine mağaza kaydı bazında tekilleştir
	PerBrand bool

	// Vitrin yolu: 0 veya negatif fiyatlı satırları ele
	DropNonPositive bool
}

// Aggregate tek kanonik boru hattıdır: mahalle daraltma → tazelik penceresi →
// grup başına en yeni → marka bazında tekilleştirme → pozitif olmayan fiyat
// eleme → fiyata göre artan sıralama. Boş sonuç geçerli bir "güncel fiyat yok"
// durumudur, hata değildir.
func Aggregate(rows []Row, opts Options) []Row {
	rows = FilterNeighborhood(rows, opts.Neighborhood)
	if opts.StaleDays > 0 {
		rows = OnlyFreshAndLatest(rows, opts.Now, opts.StaleDays, opts.PerBrand)
	} else {
		rows = sortByPrice(latestPerGroup(rows, opts.PerBrand))
	}
	if opts.PerBrand {
		// Aynı ürünün isim varyantı kayıtları (ayrı product_id, aynı katlanmış
		// ad) aynı mağazaya birden çok satır bırakabilir; mağaza kimliği başına
		// yalnız en yeni kayıt kalır.
		rows = DedupeByBrandLatest(rows)
	}
	if opts.DropNonPositive {
		// İndirgeme SONRASI uygulanır: mağazanın en güncel fiyatı sıfırsa
		// eski pozitif fiyat geri gelmez, mağaza hiç gösterilmez.
		rows = DropNonPositive(rows)
	}
	return rows
}

// FilterNeighborhood seçili mahalleyle eşleşen satırlara daraltır. Hiç
// eşleşme yoksa daraltma terk edilir ve ilçe geneli aynen döner; boş sonuç
// yerine geniş kapsam tercih edilir.
func FilterNeighborhood(rows []Row, nb string) []Row {
	if nb == "" {
		return rows
	}
	key := turkish.Fold(nb)
	matched := make([]Row, 0, len(rows))
	for _, r := range rows {
		if r.Store.Neighborhood != nil && turkish.Fold(*r.Store.Neighborhood) == key {
			matched = append(matched, r)
		}
	}
	if len(matched) == 0 {
		return rows
	}
	return matched
}

// DedupeByBrandLatest, aynı şehir/ilçedeki aynı mağaza adını tekilleştirir:
// her marka kimliği için EN YENİ kayıt kalır (eskisi daha ucuz olsa bile),
// sonra fiyat küçükten büyüğe sıralanır.
func DedupeByBrandLatest(rows []Row) []Row {
	type key struct{ name, city, district string }

	latest := make(map[key]Row, len(rows))
	for _, r := range sortByCreatedDesc(rows) {
		k := key{
			name:     turkish.Fold(r.Store.Name),
			city:     turkish.Fold(r.Store.City),
			district: turkish.Fold(r.Store.District),
		}
		if _, ok := latest[k]; !ok {
			latest[k] = r
		}
	}

	out := make([]Row, 0, len(latest))
	for _, r := range latest {
		out = append(out, r)
	}
	return sortByPrice(out)
}

// OnlyFreshAndLatest önce tazelik penceresini uygular: oluşturulma TARİHİ
// (gün hassasiyeti) bugün−daysStale'den eski satırlar atılır; tam daysStale
// gün önce girilmiş satır pencerede kalır. Kalanlar marka (veya perBrand=false
// ile mağaza kaydı) bazında en yeniye indirgenir ve fiyata göre sıralanır.
// Hepsi eskiyse boş döner; çağıran "güncel fiyat yok" durumunu basar.
func OnlyFreshAndLatest(rows []Row, now time.Time, daysStale int, perBrand bool) []Row {
	if len(rows) == 0 {
		return nil
	}

	keepFrom := startOfDay(now).AddDate(0, 0, -daysStale)
	fresh := make([]Row, 0, len(rows))
	for _, r := range rows {
		if !startOfDay(r.Offer.CreatedAt).Before(keepFrom) {
			fresh = append(fresh, r)
		}
	}
	if len(fresh) == 0 {
		return nil
	}

	return sortByPrice(latestPerGroup(fresh, perBrand))
}

// DropNonPositive, sıfır/negatif fiyatlı satırları eler; veri giriş hataları
// vitrini bozmasın diye yalnızca vitrin yolunda uygulanır.
func DropNonPositive(rows []Row) []Row {
	out := make([]Row, 0, len(rows))
	for _, r := range rows {
		if r.Offer.Price > 0 {
			out = append(out, r)
		}
	}
	return out
}

// BestPrice, indirgeme sonrası satırların en düşük fiyatını döndürür.
// ok=false: satır yok.
func BestPrice(rows []Row) (float64, bool) {
	if len(rows) == 0 {
		return 0, false
	}
	best := rows[0].Offer.Price
	for _, r := range rows[1:] {
		if r.Offer.Price < best {
			best = r.Offer.Price
		}
	}
	return best, true
}

// IsCheapest, kayıtlı fiyat üzerinden TAM eşitlikle karşılaştırır; tolerans
// uygulanmaz. İndirgeme her mağazayı tek fiyata düşürdüğünden eşitlik ancak
// farklı mağazalar arasında görülür.
func IsCheapest(r Row, best float64) bool {
	return r.Offer.Price == best
}

// IsNew: teklif son 24 saat içinde girildiyse arayüzde "yeni" işaretlenir.
// Tamamen sunumsal, seçim mantığına girmez.
func IsNew(o models.Offer, now time.Time) bool {
	return now.Sub(o.CreatedAt) < 24*time.Hour
}

// DisplayDate: varsa updated_at, yoksa created_at.
func DisplayDate(o models.Offer) time.Time {
	if o.UpdatedAt != nil {
		return *o.UpdatedAt
	}
	return o.CreatedAt
}

// latestPerGroup, (ürün, marka) ya da (ürün, mağaza) grubu başına en yeni
// satırı bırakır. Aynı ana denk gelen kayıtlarda seçim keyfidir.
func latestPerGroup(rows []Row, perBrand bool) []Row {
	type key struct {
		productID uint
		brand     string
		storeID   uint
	}

	latest := make(map[key]Row, len(rows))
	order := make([]key, 0, len(rows))
	for _, r := range sortByCreatedDesc(rows) {
		var k key
		if perBrand {
			k = key{productID: r.Offer.ProductID, brand: turkish.Fold(r.Store.Name)}
		} else {
			k = key{productID: r.Offer.ProductID, storeID: r.Store.ID}
		}
		if _, ok := latest[k]; !ok {
			latest[k] = r
			order = append(order, k)
		}
	}

	out := make([]Row, 0, len(latest))
	for _, k := range order {
		out = append(out, latest[k])
	}
	return out
}

func sortByCreatedDesc(rows []Row) []Row {
	cp := make([]Row, len(rows))
	copy(cp, rows)
	sort.SliceStable(cp, func(i, j int) bool {
		return cp[i].Offer.CreatedAt.After(cp[j].Offer.CreatedAt)
	})
	return cp
}

func sortByPrice(rows []Row) []Row {
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Offer.Price < rows[j].Offer.Price
	})
	return rows
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
