package pricing

import (
	"testing"
	"time"

	"pazarmetre-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func row(storeID uint, name, nb string, price float64, createdAt time.Time) Row {
	var nbPtr *string
	if nb != "" {
		nbPtr = strPtr(nb)
	}
	return Row{
		Offer: models.Offer{ProductID: 1, StoreID: storeID, Price: price, Currency: "TRY", CreatedAt: createdAt},
		Store: models.Store{ID: storeID, Name: name, City: "Sakarya", District: "Hendek", Neighborhood: nbPtr},
	}
}

func TestDedupeByBrandLatest_NewestWinsOverCheaper(t *testing.T) {
	now := time.Now()
	older := row(1, "Migros", "", 100, now.Add(-48*time.Hour))
	newer := row(1, "Migros", "", 150, now.Add(-1*time.Hour))

	out := DedupeByBrandLatest([]Row{older, newer})

	require.Len(t, out, 1)
	// Daha ucuz ama eski kayıt değil, en yeni kayıt kalır
	assert.Equal(t, 150.0, out[0].Offer.Price)
}

func TestDedupeByBrandLatest_BrandKeyIsCaseInsensitiveAndTrimmed(t *testing.T) {
	now := time.Now()
	a := row(1, "MİGROS", "", 120, now.Add(-2*time.Hour))
	b := row(2, "  migros ", "", 110, now.Add(-1*time.Hour))

	out := DedupeByBrandLatest([]Row{a, b})

	require.Len(t, out, 1)
	assert.Equal(t, 110.0, out[0].Offer.Price)
}

func TestDedupeByBrandLatest_SortsCheapestFirst(t *testing.T) {
	now := time.Now()
	a := row(1, "Migros", "", 100, now)
	b := row(2, "A101", "", 80, now)
	c := row(3, "BİM", "", 95, now)

	out := DedupeByBrandLatest([]Row{a, b, c})

	require.Len(t, out, 3)
	assert.Equal(t, "A101", out[0].Store.Name)
	assert.Equal(t, "BİM", out[1].Store.Name)
	assert.Equal(t, "Migros", out[2].Store.Name)
}

func TestOnlyFreshAndLatest_StalenessBoundaryInclusive(t *testing.T) {
	now := time.Date(2026, 8, 31, 14, 30, 0, 0, time.UTC)
	threeDays := row(1, "Migros", "", 90, now.AddDate(0, 0, -3))
	twoDays := row(2, "A101", "", 100, now.AddDate(0, 0, -2))

	out := OnlyFreshAndLatest([]Row{threeDays, twoDays}, now, 2, true)

	// Tam 3 gün önce: pencere dışı. Tam 2 gün önce: sınır dahil.
	require.Len(t, out, 1)
	assert.Equal(t, "A101", out[0].Store.Name)
}

func TestOnlyFreshAndLatest_DayGranularityNotClock(t *testing.T) {
	// Sabah girilen kayıt, akşam bakıldığında aynı günden sayılır
	now := time.Date(2026, 8, 31, 23, 0, 0, 0, time.UTC)
	edge := row(1, "Migros", "", 90, time.Date(2026, 8, 29, 1, 0, 0, 0, time.UTC))

	out := OnlyFreshAndLatest([]Row{edge}, now, 2, true)
	require.Len(t, out, 1)
}

func TestOnlyFreshAndLatest_AllStaleMeansEmptyNotError(t *testing.T) {
	now := time.Now()
	old := row(1, "Migros", "", 90, now.AddDate(0, 0, -30))

	out := OnlyFreshAndLatest([]Row{old}, now, 7, true)
	assert.Empty(t, out)
}

func TestOnlyFreshAndLatest_PerStoreMode(t *testing.T) {
	now := time.Now()
	// Aynı marka adı, iki ayrı mağaza kaydı
	a := row(1, "Migros", "", 100, now.Add(-2*time.Hour))
	b := row(2, "Migros", "", 110, now.Add(-1*time.Hour))

	perBrand := OnlyFreshAndLatest([]Row{a, b}, now, 7, true)
	require.Len(t, perBrand, 1)
	assert.Equal(t, uint(2), perBrand[0].Store.ID)

	perStore := OnlyFreshAndLatest([]Row{a, b}, now, 7, false)
	assert.Len(t, perStore, 2)
}

func TestFilterNeighborhood_NarrowsOnMatch(t *testing.T) {
	rows := []Row{
		row(1, "Migros", "Yeni Mahalle", 100, time.Now()),
		row(2, "A101", "Kemaliye", 90, time.Now()),
	}

	out := FilterNeighborhood(rows, "yeni mahalle")
	require.Len(t, out, 1)
	assert.Equal(t, "Migros", out[0].Store.Name)
}

func TestFilterNeighborhood_FallsBackToDistrictOnZeroMatches(t *testing.T) {
	rows := []Row{
		row(1, "Migros", "Yeni Mahalle", 100, time.Now()),
		row(2, "A101", "Kemaliye", 90, time.Now()),
	}

	// "Merkez" hiç eşleşmiyor: daraltma terk edilir, tüm küme döner
	out := FilterNeighborhood(rows, "Merkez")
	assert.Len(t, out, 2)
}

func TestDropNonPositive(t *testing.T) {
	now := time.Now()
	rows := []Row{
		row(1, "Migros", "", 0, now),
		row(2, "A101", "", -5, now),
		row(3, "BİM", "", 79.90, now),
	}

	out := DropNonPositive(rows)
	require.Len(t, out, 1)
	assert.Equal(t, "BİM", out[0].Store.Name)
}

func TestAggregate_StorefrontDropsSoleZeroPricedOffer(t *testing.T) {
	now := time.Now()
	only := row(1, "Migros", "", 0, now)

	out := Aggregate([]Row{only}, Options{Now: now, StaleDays: 2, PerBrand: true, DropNonPositive: true})
	assert.Empty(t, out)
}

func TestAggregate_NameVariantProductsCollapsePerStore(t *testing.T) {
	now := time.Now()
	// "Dana Kıyma" ve "DANA KIYMA" ayrı ürün kayıtları olarak açılmış olabilir;
	// detay sorgusu ikisini de getirir ama mağaza başına tek satır kalmalı
	variant1 := row(1, "Migros", "", 100, now.Add(-2*time.Hour))
	variant2 := row(1, "Migros", "", 120, now.Add(-1*time.Hour))
	variant2.Offer.ProductID = 2

	out := Aggregate([]Row{variant1, variant2}, Options{Now: now, StaleDays: 7, PerBrand: true})

	require.Len(t, out, 1)
	// Mağaza kimliği başına en yeni kayıt kazanır, ürün kaydı fark etmez
	assert.Equal(t, 120.0, out[0].Offer.Price)
}

func TestAggregate_StorefrontHidesStoreWhoseNewestPriceIsZero(t *testing.T) {
	now := time.Now()
	rows := []Row{
		row(1, "Migros", "", 100, now.Add(-20*time.Hour)), // eski, pozitif
		row(1, "Migros", "", 0, now.Add(-1*time.Hour)),    // en yeni, hatalı giriş
		row(2, "A101", "", 95, now.Add(-3*time.Hour)),
	}

	out := Aggregate(rows, Options{Now: now, StaleDays: 2, PerBrand: true, DropNonPositive: true})

	// En yeni kayıt kazanır kuralı eleme sırasında da geçerli: Migros'un eski
	// pozitif fiyatı geri gelmez, kart hiç çıkmaz
	require.Len(t, out, 1)
	assert.Equal(t, "A101", out[0].Store.Name)
}

func TestAggregate_CanonicalPipeline(t *testing.T) {
	now := time.Now()
	rows := []Row{
		row(1, "Migros", "Yeni Mahalle", 120, now.Add(-30*time.Hour)), // markanın eski fiyatı
		row(1, "Migros", "Yeni Mahalle", 130, now.Add(-2*time.Hour)),  // markanın güncel fiyatı
		row(2, "A101", "Kemaliye", 110, now.Add(-1*time.Hour)),
		row(3, "BİM", "Yeni Mahalle", 105, now.AddDate(0, 0, -10)), // pencere dışı
	}

	out := Aggregate(rows, Options{Now: now, StaleDays: 7, PerBrand: true})

	require.Len(t, out, 2)
	assert.Equal(t, "A101", out[0].Store.Name)
	assert.Equal(t, 110.0, out[0].Offer.Price)
	assert.Equal(t, "Migros", out[1].Store.Name)
	assert.Equal(t, 130.0, out[1].Offer.Price)
}

func TestBestPriceAndCheapestMarking(t *testing.T) {
	now := time.Now()
	rows := []Row{
		row(1, "Migros", "", 99.90, now),
		row(2, "A101", "", 99.90, now),
		row(3, "BİM", "", 105, now),
	}

	best, ok := BestPrice(rows)
	require.True(t, ok)
	assert.Equal(t, 99.90, best)

	// Tam eşitlik: iki farklı mağaza aynı minimuma sahipse ikisi de işaretlenir
	assert.True(t, IsCheapest(rows[0], best))
	assert.True(t, IsCheapest(rows[1], best))
	assert.False(t, IsCheapest(rows[2], best))

	_, ok = BestPrice(nil)
	assert.False(t, ok)
}

func TestIsNew(t *testing.T) {
	now := time.Now()
	assert.True(t, IsNew(models.Offer{CreatedAt: now.Add(-23 * time.Hour)}, now))
	assert.False(t, IsNew(models.Offer{CreatedAt: now.Add(-25 * time.Hour)}, now))
}

func TestDisplayDate(t *testing.T) {
	created := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	updated := time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, created, DisplayDate(models.Offer{CreatedAt: created}))
	assert.Equal(t, updated, DisplayDate(models.Offer{CreatedAt: created, UpdatedAt: &updated}))
}
