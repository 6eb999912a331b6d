package admin

type seedProduct struct {
	Name        string
	Category    string
	Unit        string
	Description string
}

// Temel geçim sepeti; tohumlama sırasında mevcut isimler atlanır.
var seedProducts = []seedProduct{
	// Süt Ürünleri
	{"Süt (Tam Yağlı)", "Süt Ürünleri", "1L", "Tam yağlı süt"},
	{"Süt (Yarım Yağlı)", "Süt Ürünleri", "1L", "Yarım yağlı süt"},
	{"Yumurta", "Süt Ürünleri", "10 adet", "Orta boy yumurta"},
	{"Beyaz Peynir", "Süt Ürünleri", "1kg", "Tam yağlı beyaz peynir"},
	{"Kaşar Peyniri", "Süt Ürünleri", "1kg", "Kaşar peyniri"},
	{"Yoğurt", "Süt Ürünleri", "1kg", "Süzme olmayan yoğurt"},
	{"Tereyağı", "Süt Ürünleri", "500g", "Tereyağı"},

	// Et Ürünleri
	{"Dana Kıyma", "Et Ürünleri", "1kg", "Dana kıyma"},
	{"Kuzu Kıyma", "Et Ürünleri", "1kg", "Kuzu kıyma"},
	{"Tavuk But", "Et Ürünleri", "1kg", "Tavuk but"},
	{"Tavuk Göğüs", "Et Ürünleri", "1kg", "Tavuk göğüs"},
	{"Tavuk Bütün", "Et Ürünleri", "1kg", "Bütün tavuk"},
	{"Dana Kuşbaşı", "Et Ürünleri", "1kg", "Dana kuşbaşı"},

	// Temel Gıda
	{"Ekmek (Somun)", "Temel Gıda", "1 adet", "200g somun ekmek"},
	{"Pirinç", "Temel Gıda", "1kg", "Baldo pirinç"},
	{"Makarna (Burgu)", "Temel Gıda", "500g", "Burgu makarna"},
	{"Bulgur (İnce)", "Temel Gıda", "1kg", "İnce bulgur"},
	{"Un (Beyaz)", "Temel Gıda", "1kg", "Beyaz un"},
	{"Şeker (Kristal)", "Temel Gıda", "1kg", "Kristal şeker"},
	{"Tuz", "Temel Gıda", "1kg", "İyotlu tuz"},
	{"Ayçiçek Yağı", "Temel Gıda", "1L", "Ayçiçek yağı"},
	{"Zeytinyağı", "Temel Gıda", "1L", "Zeytinyağı"},
	{"Zeytin (Siyah)", "Temel Gıda", "1kg", "Siyah zeytin"},
	{"Domates Salçası", "Temel Gıda", "800g", "Domates salçası"},

	// Sebze-Meyve
	{"Domates", "Sebze-Meyve", "1kg", "Yerli domates"},
	{"Salatalık", "Sebze-Meyve", "1kg", "Yerli salatalık"},
	{"Patates", "Sebze-Meyve", "1kg", "Yerli patates"},
	{"Soğan (Kuru)", "Sebze-Meyve", "1kg", "Kuru soğan"},
	{"Limon", "Sebze-Meyve", "1kg", "Yerli limon"},
	{"Portakal", "Sebze-Meyve", "1kg", "Yerli portakal"},
	{"Muz", "Sebze-Meyve", "1kg", "İthal muz"},
	{"Elma", "Sebze-Meyve", "1kg", "Yerli elma"},

	// Temizlik Ürünleri
	{"Bulaşık Deterjanı", "Temizlik Ürünleri", "750ml", "Bulaşık deterjanı"},
	{"Çamaşır Deterjanı", "Temizlik Ürünleri", "3kg", "Toz çamaşır deterjanı"},
	{"Yumuşatıcı", "Temizlik Ürünleri", "1.5L", "Çamaşır yumuşatıcı"},
	{"Yüzey Temizleyici", "Temizlik Ürünleri", "1L", "Yüzey temizleyici"},

	// Kişisel Bakım
	{"Şampuan", "Kişisel Bakım", "500ml", "Şampuan"},
	{"Sabun", "Kişisel Bakım", "4x90g", "Banyo sabunu"},
	{"Diş Macunu", "Kişisel Bakım", "100ml", "Diş macunu"},
}

type seedBranch struct {
	Name    string
	Address string
	Lat     float64
	Lng     float64
}

// İlçe → şubeler. Şimdilik yalnız Hendek; diğer ilçeler aynı formatta eklenir.
var migrosBranches = map[string][]seedBranch{
	"Hendek": {
		{"HENDEK SAKARYA M MİGROS", "Yeni Mah. Osmangazi Sok. No:42 A-B", 40.7993, 30.7489},
		{"YENİMAHALLE HENDEK SAKARYA MM", "Yeni Mahalle Yıldırım Beyazıt Caddesi Dış Kapı", 40.8004, 30.7516},
	},
}
