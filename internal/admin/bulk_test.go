package admin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalStoreName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"migros", "Migros"},
		{"MİGROS", "Migros"},
		{"a101", "A101"},
		{"bim", "BİM"},
		{"BİM", "BİM"},
		{"  bim  ", "BİM"},
		{"Kutsallar Kasap", "Kutsallar Kasap"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CanonicalStoreName(tt.in), tt.in)
	}
}

func TestParseBulkEntriesCommaDecimal(t *testing.T) {
	entries, skipped := ParseBulkEntries(
		[]string{"Dana Kıyma"},
		[]string{"449,90"},
		nil, nil, nil, nil, nil, nil,
	)
	require.Len(t, entries, 1)
	assert.Equal(t, 0, skipped)
	assert.Equal(t, "Dana Kıyma", entries[0].ProductName)
	assert.Equal(t, 449.90, entries[0].Price)
	assert.Equal(t, "kg", entries[0].Unit) // varsayılan birim
}

func TestParseBulkEntriesSkipsInvalidRows(t *testing.T) {
	entries, skipped := ParseBulkEntries(
		[]string{"Dana Kıyma", "Piliç Bonfile", "", "Kuzu But", ""},
		[]string{"449,90", "fiyat-yok", "120", "", ""},
		nil, nil, nil, nil, nil, nil,
	)
	// geçersiz fiyat, isimsiz fiyat ve fiyatsız isim atlanır;
	// tamamen boş şablon satırı sayılmaz
	require.Len(t, entries, 1)
	assert.Equal(t, 3, skipped)
	assert.Equal(t, "Dana Kıyma", entries[0].ProductName)
}

func TestParseBulkEntriesUnitAndCategoryWhitelist(t *testing.T) {
	entries, skipped := ParseBulkEntries(
		[]string{"Süt", "Tavuk But"},
		[]string{"32,50", "189"},
		[]string{"litre", "koli"},
		nil, nil, nil, nil,
		[]string{"diger", "kanatli"},
	)
	require.Len(t, entries, 2)
	assert.Equal(t, 0, skipped)

	assert.Equal(t, "litre", entries[0].Unit)
	assert.Equal(t, "diger", entries[0].Category)

	assert.Equal(t, "kg", entries[1].Unit)   // tanınmayan birim
	assert.Equal(t, "", entries[1].Category) // tanınmayan kategori
}

func TestParseBulkEntriesOptionalColumns(t *testing.T) {
	entries, _ := ParseBulkEntries(
		[]string{"Dana Antrikot"},
		[]string{"899.90"},
		[]string{"kg"},
		[]string{"Atatürk Cad. No:12"},
		[]string{"https://ornek.example/antrikot"},
		[]string{"400"},
		[]string{"gram"},
		[]string{"et"},
	)
	require.Len(t, entries, 1)

	e := entries[0]
	assert.Equal(t, "Atatürk Cad. No:12", e.Address)
	assert.Equal(t, "https://ornek.example/antrikot", e.SourceURL)
	require.NotNil(t, e.SourceWeightG)
	assert.Equal(t, 400.0, *e.SourceWeightG)
	assert.Equal(t, "gram", e.SourceUnit)
	assert.Equal(t, "et", e.Category)
}

func TestParseBulkEntriesRaggedColumns(t *testing.T) {
	// fiyat sütunu isim sütunundan uzun: fazla fiyatlar isimsiz sayılır
	entries, skipped := ParseBulkEntries(
		[]string{"Dana Kıyma"},
		[]string{"449,90", "120,00"},
		nil, nil, nil, nil, nil, nil,
	)
	require.Len(t, entries, 1)
	assert.Equal(t, 1, skipped)
}
