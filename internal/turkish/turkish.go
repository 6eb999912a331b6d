// Package turkish sağlar: Türk alfabesine duyarlı küçük harf dönüşümü.
// Düz ASCII lowercase İ/I/ı/i çiftini yanlış eşler; "DANA KIYMA" ile
// "Dana Kıyma" ancak Türkçe katlama ile aynı ürün sayılır.
package turkish

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Lower, s'yi Türkçe kurallarla küçük harfe çevirir (I→ı, İ→i).
func Lower(s string) string {
	// cases.Caser durum tutar, goroutine'ler arasında paylaşılmaz
	return cases.Lower(language.Turkish).String(s)
}

// Fold, karşılaştırma anahtarı üretir: kırpılmış + Türkçe küçük harf.
func Fold(s string) string {
	return Lower(strings.TrimSpace(s))
}

// Equal, iki metni Türkçe harf duyarlılığıyla karşılaştırır.
func Equal(a, b string) bool {
	return Fold(a) == Fold(b)
}
