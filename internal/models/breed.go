package models

// Breed is one catalog entry. Identity is its position in the store.
type Breed struct {
	Name        string `json:"name"`
	Description string `json:"desc"`
	Weight      string `json:"weight"`
	Height      string `json:"height"`
	LifeSpan    string `json:"life_span"`
	ImagePath   string `json:"image_path,omitempty"`
}

// HasImage reports whether the record references an image file.
func (b Breed) HasImage() bool {
	return b.ImagePath != ""
}

var seedBreeds = [...]Breed{
	{
		Name:        "Сибирская кошка",
		Description: "Одна из старейших русских пород кошек.",
		Weight:      "4–10 кг",
		Height:      "25–38 см",
		LifeSpan:    "12–16 лет",
	},
	{
		Name:        "Британская короткошёрстная",
		Description: "Известна своей спокойной натурой и густым мехом.",
		Weight:      "4–8 кг",
		Height:      "25–30 см",
		LifeSpan:    "12–17 лет",
	},
	{
		Name:        "Сфинкс",
		Description: "Безволосые кошки с большими ушами и выразительными глазами.",
		Weight:      "3–6 кг",
		Height:      "23–30 см",
		LifeSpan:    "10–15 лет",
	},
	{
		Name:        "Русская голубая",
		Description: "Изящная кошка с короткой серовато-голубоватой шерстью.",
		Weight:      "3–6 кг",
		Height:      "25–30 см",
		LifeSpan:    "12–15 лет",
	},
	{
		Name:        "Мейн-кун",
		Description: "Одна из крупнейших домашних пород кошек.",
		Weight:      "6–11 кг",
		Height:      "25–41 см",
		LifeSpan:    "12–15 лет",
	},
}

// SeedBreeds returns a fresh copy of the built-in catalog used when the
// backing file is missing or corrupt.
func SeedBreeds() []Breed {
	out := make([]Breed, len(seedBreeds))
	copy(out, seedBreeds[:])
	return out
}
