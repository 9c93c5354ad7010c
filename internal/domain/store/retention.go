package store

import "time"

// Ventanas de retención de la papelera. Un registro borrado sigue
// siendo restaurable mientras now - deletedAt < ventana; después se
// descarta en el siguiente Load. La expiración es un filtro puro en
// carga, no un job: un registro que expira con la app abierta sigue
// visible hasta la próxima recarga.
const (
	PetRetention  = 30 * 24 * time.Hour
	DietRetention = 14 * 24 * time.Hour
)

func filterDeletedPets(items []DeletedPet, now time.Time) []DeletedPet {
	out := make([]DeletedPet, 0, len(items))
	for _, it := range items {
		if now.Sub(it.DeletedAt) < PetRetention {
			out = append(out, it)
		}
	}
	return out
}

func filterDeletedDiets(items []DeletedDiet, now time.Time) []DeletedDiet {
	out := make([]DeletedDiet, 0, len(items))
	for _, it := range items {
		if now.Sub(it.DeletedAt) < DietRetention {
			out = append(out, it)
		}
	}
	return out
}
