package location

// Şimdilik tek il: Sakarya. Yeni il eklemek = bu listeye eklemek.
type District struct {
	Name string `json:"name"`
}

type Province struct {
	Name      string     `json:"name"`
	Districts []District `json:"districts"`
}

var Provinces = []Province{
	{
		Name: "Sakarya",
		Districts: []District{
			{Name: "Adapazarı"},
			{Name: "Akyazı"},
			{Name: "Arifiye"},
			{Name: "Erenler"},
			{Name: "Ferizli"},
			{Name: "Geyve"},
			{Name: "Hendek"},
			{Name: "Karapürçek"},
			{Name: "Karasu"},
			{Name: "Kaynarca"},
			{Name: "Kocaali"},
			{Name: "Pamukova"},
			{Name: "Sapanca"},
			{Name: "Serdivan"},
			{Name: "Söğütlü"},
			{Name: "Taraklı"},
		},
	},
}

// DistrictNames, ilk ilin ilçe adlarını döndürür (toplu giriş ekranı için).
func DistrictNames() []string {
	names := make([]string, 0, len(Provinces[0].Districts))
	for _, d := range Provinces[0].Districts {
		names = append(names, d.Name)
	}
	return names
}
