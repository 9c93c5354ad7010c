package store

// Contenido por defecto del primer arranque: una mascota de ejemplo
// con perfil completo en el idioma detectado. Es el dataset real de
// la app original (Дженкин el gato y su plan de 6 semanas).

func defaultPets(lang Language) []Pet {
	if lang == LangRU {
		return []Pet{defaultPetRU()}
	}
	return []Pet{defaultPetEN()}
}

func defaultSchedule(pouch string) []DietWeek {
	return []DietWeek{
		{Week: 1, Items: []DietItem{
			{ID: "1", Name: "RC Sterilised 7+", Amount: 70, Unit: "г", Type: ItemDry},
			{ID: "2", Name: "RC Urinary S/O", Amount: 20, Unit: "г", Type: ItemDry},
			{ID: "3", Name: pouch, Amount: 3, Unit: "шт", Type: ItemWet},
		}},
		{Week: 2, Items: []DietItem{
			{ID: "1", Name: "RC Sterilised 7+", Amount: 40, Unit: "г", Type: ItemDry},
			{ID: "2", Name: "RC Urinary S/O", Amount: 35, Unit: "г", Type: ItemDry},
			{ID: "3", Name: pouch, Amount: 3, Unit: "шт", Type: ItemWet},
		}},
		{Week: 3, Items: []DietItem{
			{ID: "1", Name: "RC Sterilised 7+", Amount: 15, Unit: "г", Type: ItemDry},
			{ID: "2", Name: "RC Urinary S/O", Amount: 50, Unit: "г", Type: ItemDry},
			{ID: "3", Name: pouch, Amount: 2, Unit: "шт", Type: ItemWet},
		}},
		{Week: 4, Items: []DietItem{
			{ID: "2", Name: "RC Urinary S/O", Amount: 60, Unit: "г", Type: ItemDry},
			{ID: "3", Name: pouch, Amount: 2, Unit: "шт", Type: ItemWet},
		}},
		{Week: 5, Items: []DietItem{
			{ID: "2", Name: "RC Urinary S/O", Amount: 55, Unit: "г", Type: ItemDry},
			{ID: "3", Name: pouch, Amount: 1, Unit: "шт", Type: ItemWet},
		}},
		{Week: 6, Items: []DietItem{
			{ID: "2", Name: "RC Urinary S/O", Amount: 50, Unit: "г", Type: ItemDry},
			{ID: "3", Name: pouch, Amount: 1, Unit: "шт", Type: ItemWet},
		}},
	}
}

func defaultWeightHistory() []WeightEntry {
	return []WeightEntry{
		{Date: "2026-02-03", Value: 12},
		{Date: "2026-02-10", Value: 11.7},
	}
}

func defaultPetRU() Pet {
	start := "2026-02-03"
	return Pet{
		ID:            "1",
		Name:          "Дженкин",
		Breed:         "Обычный кот",
		Age:           "10",
		Diagnoses:     []Diagnosis{{ID: "1", Name: "МКБ", DateAdded: start}},
		DietStartDate: &start,
		DietSchedule:  defaultSchedule("Pro Plan пауч"),
		MedCourses:    []MedCourse{},
		WeightHistory: defaultWeightHistory(),
		Notes:         "Нельзя давать рыбу",
	}
}

func defaultPetEN() Pet {
	start := "2026-02-03"
	return Pet{
		ID:            "1",
		Name:          "Jenkin",
		Breed:         "Domestic cat",
		Age:           "10",
		Diagnoses:     []Diagnosis{{ID: "1", Name: "Urolithiasis", DateAdded: start}},
		DietStartDate: &start,
		DietSchedule:  defaultSchedule("Pro Plan pouch"),
		MedCourses:    []MedCourse{},
		WeightHistory: defaultWeightHistory(),
		Notes:         "No fish allowed",
	}
}

// copySuffix es el sufijo localizado que se añade al nombre al
// duplicar una mascota.
func copySuffix(lang Language) string {
	if lang == LangRU {
		return " (копия)"
	}
	return " (copy)"
}
