// Package catalog, ziyaretçiye dönük okuma uçlarını içerir: vitrin, ürün
// detayı ve marka sayfaları. Teklif seçme kuralları pricing paketindedir;
// burada yalnızca veritabanından satır toplanır ve JSON'a dökülür.
package catalog

import (
	"pazarmetre-backend/internal/database"
	"pazarmetre-backend/internal/models"
	"pazarmetre-backend/internal/pricing"
)

// loadRows, verilen ürünlerin seçili şehir/ilçedeki onaylı tekliflerini
// mağaza bilgisiyle birlikte toplar. Mağazalar tek sorguda çekilip bellekte
// eşlenir; teklif sayısı ilçe bazında küçük kaldığından join'e gerek yok.
func loadRows(city, district string, productIDs []uint) []pricing.Row {
	if len(productIDs) == 0 {
		return nil
	}

	var stores []models.Store
	database.DB.
		Where("city = ? AND district = ?", city, district).
		Find(&stores)
	if len(stores) == 0 {
		return nil
	}

	storeByID := make(map[uint]models.Store, len(stores))
	storeIDs := make([]uint, 0, len(stores))
	for _, st := range stores {
		storeByID[st.ID] = st
		storeIDs = append(storeIDs, st.ID)
	}

	var offers []models.Offer
	database.DB.
		Where("approved = ? AND product_id IN ? AND store_id IN ?", true, productIDs, storeIDs).
		Find(&offers)

	rows := make([]pricing.Row, 0, len(offers))
	for _, o := range offers {
		st, ok := storeByID[o.StoreID]
		if !ok {
			continue
		}
		rows = append(rows, pricing.Row{Offer: o, Store: st})
	}
	return rows
}

// locationLabel: mağazanın mahallesi kayıtlıysa "İlçe / Mahalle", değilse ilçe.
func locationLabel(st models.Store) string {
	if st.Neighborhood != nil && *st.Neighborhood != "" {
		return st.District + " / " + *st.Neighborhood
	}
	return st.District
}
