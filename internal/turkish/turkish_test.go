package turkish

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLower(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "dotless capital I", in: "KIYMA", want: "kıyma"},
		{name: "dotted capital İ", in: "İNEGÖL", want: "inegöl"},
		{name: "mixed", in: "Dana Kıyma", want: "dana kıyma"},
		{name: "accented set", in: "ŞĞÜÖÇI", want: "şğüöçı"},
		{name: "already lower", in: "piliç bonfile", want: "piliç bonfile"},
		{name: "empty", in: "", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Lower(tt.in))
		})
	}
}

func TestEqualGroupsNameVariants(t *testing.T) {
	// Aynı ürünün üç yazımı tek ürün sayılmalı
	assert.True(t, Equal("Dana Kıyma", "dana kıyma"))
	assert.True(t, Equal("Dana Kıyma", "DANA KIYMA"))
	assert.True(t, Equal("dana kıyma", "DANA KIYMA"))

	// ASCII lowercase bunu yapamaz: I küçükken i olur, ı olmaz
	assert.False(t, Equal("Kıyma", "Kiyma"))
}

func TestFoldTrims(t *testing.T) {
	assert.Equal(t, Fold("  Migros "), Fold("MİGROS"))
	assert.Equal(t, "a101", Fold(" A101"))
}
