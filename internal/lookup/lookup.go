package lookup

type CodeEntry struct {
	Name string
	Code string
}

type BrandAlias struct {
	Alias string
	Code  string
}

type Tables struct {
	Customers []CodeEntry
	POAs      []CodeEntry
	// Order matters: substring matching takes the first hit, so longer
	// aliases must precede shorter ones they contain.
	Brands []BrandAlias

	ModelPrefixes   map[string]string
	ContextKeywords []string
	OCRConfusions   map[rune]rune
}

func Defaults() Tables {
	return Tables{
		Customers: []CodeEntry{
			{Name: "Hoedlmayr", Code: "HOD"},
			{Name: "Stellantis", Code: "STS"},
			{Name: "INEOS", Code: "INO"},
			{Name: "Aston Martin Lagonda", Code: "AML"},
			{Name: "Bentley Motors Ltd", Code: "BML"},
			{Name: "KESS Groning", Code: "KGR"},
			{Name: "Neptune JLR", Code: "LRE"},
		},
		POAs: []CodeEntry{
			{Name: "Grimsby", Code: "GRIM"},
			{Name: "Zeebrugge", Code: "ZEEB"},
			{Name: "Malmo", Code: "MALM"},
			{Name: "Emden", Code: "EMD"},
			{Name: "Setubal", Code: "SETU"},
		},
		Brands: []BrandAlias{
			{Alias: "OPEL", Code: "OPEL"},
			{Alias: "VAUXHALL", Code: "OPEL"},
			{Alias: "CITROEN", Code: "CITR"},
			{Alias: "CITR", Code: "CITR"},
			{Alias: "PEUGEOT", Code: "PEUG"},
			{Alias: "PEUG", Code: "PEUG"},
			{Alias: "INEOS", Code: "INO"},
			{Alias: "ASTON MARTIN", Code: "AML"},
			{Alias: "BENTLEY", Code: "BML"},
			{Alias: "JAGUAR LANDROVER", Code: "JLR"},
			{Alias: "JLR", Code: "JLR"},
			{Alias: "FIAT", Code: "FIAT"},
			{Alias: "JEEP", Code: "JEEP"},
		},
		ModelPrefixes: map[string]string{
			"PEUG": "P",
			"CITR": "C",
			"OPEL": "O",
			"FIAT": "F",
		},
		ContextKeywords: []string{
			"MAKE", "BRAND", "MODEL", "MAKER", "OEM", "COMMODITY", "CUST", "DESTINATION",
		},
		OCRConfusions: map[rune]rune{
			'O': '0',
			'Q': '0',
			'I': '1',
		},
	}
}

func (t Tables) CustomerCode(name string) (string, bool) {
	return findCode(t.Customers, name)
}

func (t Tables) POACode(name string) (string, bool) {
	return findCode(t.POAs, name)
}

func findCode(entries []CodeEntry, name string) (string, bool) {
	for _, e := range entries {
		if e.Name == name || e.Code == name {
			return e.Code, true
		}
	}
	return "", false
}

func (t Tables) BrandCodes() map[string]string {
	out := make(map[string]string, len(t.Brands))
	for _, b := range t.Brands {
		out[b.Alias] = b.Code
	}
	return out
}
