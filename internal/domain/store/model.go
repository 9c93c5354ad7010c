package store

import "time"

// Language define los idiomas soportados por la app.
// @Enum ru, en
type Language string

const (
	LangRU Language = "ru"
	LangEN Language = "en"
)

// IsValid reporta si el idioma es uno de los soportados.
func (l Language) IsValid() bool {
	return l == LangRU || l == LangEN
}

// ItemType clasifica un ítem de la dieta.
// @Enum dry, wet, medicine, natural, other
type ItemType string

const (
	ItemDry      ItemType = "dry"
	ItemWet      ItemType = "wet"
	ItemMedicine ItemType = "medicine"
	ItemNatural  ItemType = "natural"
	ItemOther    ItemType = "other"
)

// DietItem es una ración dentro de una semana de dieta.
type DietItem struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Amount float64  `json:"amount"`
	Unit   string   `json:"unit"`
	Type   ItemType `json:"type"`
}

// DietWeek agrupa las raciones de una semana del plan.
// Los números de semana no tienen por qué ser contiguos;
// la UI asume que el orden del slice es ascendente.
type DietWeek struct {
	Week  int        `json:"week"`
	Items []DietItem `json:"items"`
}

// Diagnosis es un diagnóstico registrado en el perfil.
type Diagnosis struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	DateAdded string `json:"dateAdded"` // YYYY-MM-DD
}

// MedCourse es un curso de medicación.
type MedCourse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Dose        float64 `json:"dose"`
	DoseUnit    string  `json:"doseUnit"`
	TimesPerDay int     `json:"timesPerDay"`
	StartDate   string  `json:"startDate"` // YYYY-MM-DD
	EndDate     string  `json:"endDate"`   // YYYY-MM-DD
	Notes       string  `json:"notes"`
}

// WeightEntry es una muestra de peso.
// La fecha actúa como clave por mascota, pero no se deduplica:
// dos entradas con la misma fecha conviven (ver DESIGN.md).
type WeightEntry struct {
	Date  string  `json:"date"` // YYYY-MM-DD
	Value float64 `json:"value"`
}

// Pet es el perfil completo de una mascota viva.
type Pet struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Breed         string        `json:"breed"`
	Age           string        `json:"age"` // texto libre
	Diagnoses     []Diagnosis   `json:"diagnoses"`
	Photo         *string       `json:"photo"` // data-URL o null
	DietStartDate *string       `json:"dietStartDate"`
	DietSchedule  []DietWeek    `json:"dietSchedule"`
	MedCourses    []MedCourse   `json:"medCourses"`
	WeightHistory []WeightEntry `json:"weightHistory"`
	Notes         string        `json:"notes"`
}

// HasDiet reporta si la mascota tiene un plan de dieta activo.
func (p Pet) HasDiet() bool {
	return len(p.DietSchedule) > 0
}

// DeletedPet es el snapshot de una mascota en la papelera.
// Es la mascota completa (embebida, se aplana en JSON) más el
// momento del borrado.
type DeletedPet struct {
	Pet
	DeletedAt time.Time `json:"deletedAt"`
}

// DeletedDiet es el snapshot de una dieta borrada sin borrar la mascota.
// PetName va desnormalizado: la mascota viva puede cambiar de nombre
// después y la papelera debe seguir mostrando el original.
// DeletedAt actúa como identidad del snapshot.
type DeletedDiet struct {
	PetID         string     `json:"petId"`
	PetName       string     `json:"petName"`
	DietStartDate *string    `json:"dietStartDate"`
	DietSchedule  []DietWeek `json:"dietSchedule"`
	DeletedAt     time.Time  `json:"deletedAt"`
}

// AppState es el agregado raíz y la unidad de persistencia:
// se serializa y escribe completo en cada mutación.
type AppState struct {
	Pets         []Pet         `json:"pets"`
	DeletedPets  []DeletedPet  `json:"deletedPets"`
	DeletedDiets []DeletedDiet `json:"deletedDiets"`
	Language     Language      `json:"language"`
}

// Clone devuelve una copia profunda de la mascota: ninguna colección
// anidada queda compartida con el original.
func (p Pet) Clone() Pet {
	out := p

	if p.Photo != nil {
		v := *p.Photo
		out.Photo = &v
	}
	if p.DietStartDate != nil {
		v := *p.DietStartDate
		out.DietStartDate = &v
	}

	out.Diagnoses = append([]Diagnosis(nil), p.Diagnoses...)
	out.MedCourses = append([]MedCourse(nil), p.MedCourses...)
	out.WeightHistory = append([]WeightEntry(nil), p.WeightHistory...)
	out.DietSchedule = cloneSchedule(p.DietSchedule)

	return out
}

func cloneSchedule(weeks []DietWeek) []DietWeek {
	if weeks == nil {
		return nil
	}
	out := make([]DietWeek, len(weeks))
	for i, w := range weeks {
		out[i] = w
		out[i].Items = append([]DietItem(nil), w.Items...)
	}
	return out
}

func cloneDate(d *string) *string {
	if d == nil {
		return nil
	}
	v := *d
	return &v
}
