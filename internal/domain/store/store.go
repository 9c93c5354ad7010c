package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
)

// Store es el dueño del AppState: cada operación calcula el estado
// siguiente (copy-on-write, nunca muta el anterior), lo persiste
// completo y lo devuelve. "No encontrado" es un no-op silencioso que
// devuelve el estado sin cambios, no un error.
//
// Se construye explícitamente en el arranque y se pasa a quien lo
// consuma; no hay instancia global. El mutex serializa mutaciones
// concurrentes de la capa HTTP conservando el modelo last-writer-wins
// del original monohilo.
type Store struct {
	mu    sync.Mutex
	codec *Codec
	state AppState

	now   func() time.Time
	newID func() string
}

// New carga el estado persistido (o siembra el inicial) y deja el
// Store listo para operar.
func New(ctx context.Context, codec *Codec) *Store {
	return &Store{
		codec: codec,
		state: codec.Load(ctx),
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// State devuelve el estado actual. Las mutaciones nunca escriben
// sobre slices ya publicados, así que el valor es seguro de leer.
func (s *Store) State() AppState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// apply publica el estado siguiente y lo persiste. Si la escritura
// falla, el estado en memoria ya avanzó (no hay rollback, ver
// DESIGN.md) y el error sube al caller.
func (s *Store) apply(ctx context.Context, next AppState) (AppState, error) {
	s.state = next
	if err := s.codec.Save(ctx, next); err != nil {
		return next, err
	}
	return next, nil
}

// AddPet agrega una mascota viva. Si viene sin id se le asigna uno;
// no se valida unicidad más allá de eso (el id lo aporta el flujo de
// alta).
func (s *Store) AddPet(ctx context.Context, p Pet) (Pet, AppState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if p.ID == "" {
		p.ID = s.newID()
	}
	normalizePet(&p)

	next := s.state
	next.Pets = append(copyPets(s.state.Pets), p)

	st, err := s.apply(ctx, next)
	return p, st, err
}

// UpdatePet reemplaza la mascota viva con el mismo id. No-op si no
// existe.
func (s *Store) UpdatePet(ctx context.Context, p Pet) (AppState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := indexOfPet(s.state.Pets, p.ID)
	if idx < 0 {
		return s.state, nil
	}
	normalizePet(&p)

	next := s.state
	next.Pets = copyPets(s.state.Pets)
	next.Pets[idx] = p

	return s.apply(ctx, next)
}

// DeletePet mueve la mascota a la papelera con sello de borrado.
func (s *Store) DeletePet(ctx context.Context, id string) (AppState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := indexOfPet(s.state.Pets, id)
	if idx < 0 {
		return s.state, nil
	}

	next := s.state
	next.DeletedPets = append(copyDeletedPets(s.state.DeletedPets), DeletedPet{
		Pet:       s.state.Pets[idx],
		DeletedAt: s.now(),
	})
	next.Pets = removePetAt(s.state.Pets, idx)

	return s.apply(ctx, next)
}

// RestorePet saca la mascota de la papelera y la devuelve a la lista
// viva sin el sello de borrado. No comprueba colisión de id con una
// mascota viva (comportamiento indefinido documentado, ver DESIGN.md).
func (s *Store) RestorePet(ctx context.Context, id string) (AppState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := indexOfDeletedPet(s.state.DeletedPets, id)
	if idx < 0 {
		return s.state, nil
	}

	next := s.state
	next.Pets = append(copyPets(s.state.Pets), s.state.DeletedPets[idx].Pet)
	next.DeletedPets = removeDeletedPetAt(s.state.DeletedPets, idx)

	return s.apply(ctx, next)
}

// PurgePet elimina definitivamente una mascota de la papelera.
// Idempotente: repetirlo no cambia nada.
func (s *Store) PurgePet(ctx context.Context, id string) (AppState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := indexOfDeletedPet(s.state.DeletedPets, id)
	if idx < 0 {
		return s.state, nil
	}

	next := s.state
	next.DeletedPets = removeDeletedPetAt(s.state.DeletedPets, idx)

	return s.apply(ctx, next)
}

// DeleteDiet desprende la dieta de una mascota viva: guarda un
// snapshot en la papelera y deja a la mascota sin plan. No-op si la
// mascota no existe o ya no tiene dieta.
func (s *Store) DeleteDiet(ctx context.Context, petID string) (AppState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := indexOfPet(s.state.Pets, petID)
	if idx < 0 || !s.state.Pets[idx].HasDiet() {
		return s.state, nil
	}

	pet := s.state.Pets[idx]

	next := s.state
	next.DeletedDiets = append(copyDeletedDiets(s.state.DeletedDiets), DeletedDiet{
		PetID:         pet.ID,
		PetName:       pet.Name,
		DietStartDate: cloneDate(pet.DietStartDate),
		DietSchedule:  cloneSchedule(pet.DietSchedule),
		DeletedAt:     s.now(),
	})

	detached := pet
	detached.DietStartDate = nil
	detached.DietSchedule = []DietWeek{}

	next.Pets = copyPets(s.state.Pets)
	next.Pets[idx] = detached

	return s.apply(ctx, next)
}

// RestoreDiet reengancha un snapshot de dieta a su mascota, buscando
// el snapshot por su sello de borrado (su identidad). Si la mascota
// ya no existe el snapshot se queda en la papelera y no pasa nada.
func (s *Store) RestoreDiet(ctx context.Context, deletedAt time.Time) (AppState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	dIdx := indexOfDeletedDiet(s.state.DeletedDiets, deletedAt)
	if dIdx < 0 {
		return s.state, nil
	}

	snap := s.state.DeletedDiets[dIdx]
	pIdx := indexOfPet(s.state.Pets, snap.PetID)
	if pIdx < 0 {
		return s.state, nil
	}

	restored := s.state.Pets[pIdx]
	restored.DietStartDate = cloneDate(snap.DietStartDate)
	restored.DietSchedule = cloneSchedule(snap.DietSchedule)

	next := s.state
	next.Pets = copyPets(s.state.Pets)
	next.Pets[pIdx] = restored
	next.DeletedDiets = removeDeletedDietAt(s.state.DeletedDiets, dIdx)

	return s.apply(ctx, next)
}

// PurgeDiet elimina definitivamente un snapshot de dieta por su sello
// de borrado. Idempotente.
func (s *Store) PurgeDiet(ctx context.Context, deletedAt time.Time) (AppState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := indexOfDeletedDiet(s.state.DeletedDiets, deletedAt)
	if idx < 0 {
		return s.state, nil
	}

	next := s.state
	next.DeletedDiets = removeDeletedDietAt(s.state.DeletedDiets, idx)

	return s.apply(ctx, next)
}

// DuplicatePet crea una copia profunda de una mascota viva con id
// nuevo y el sufijo de copia localizado en el nombre. Ninguna
// colección anidada queda compartida con el original.
func (s *Store) DuplicatePet(ctx context.Context, id string) (Pet, AppState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := indexOfPet(s.state.Pets, id)
	if idx < 0 {
		return Pet{}, s.state, nil
	}

	dup := s.state.Pets[idx].Clone()
	dup.ID = s.newID()
	dup.Name += copySuffix(s.state.Language)

	next := s.state
	next.Pets = append(copyPets(s.state.Pets), dup)

	st, err := s.apply(ctx, next)
	return dup, st, err
}

// SetLanguage cambia el idioma activo. Además del blob principal
// escribe la clave rápida de idioma, para que la preferencia se pueda
// leer antes de cargar el estado completo.
func (s *Store) SetLanguage(ctx context.Context, lang Language) (AppState, error) {
	if !lang.IsValid() {
		return s.State(), ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.codec.SaveLanguage(ctx, lang); err != nil {
		return s.state, err
	}

	next := s.state
	next.Language = lang

	return s.apply(ctx, next)
}

// --- helpers copy-on-write ---

func normalizePet(p *Pet) {
	if p.Diagnoses == nil {
		p.Diagnoses = []Diagnosis{}
	}
	if p.DietSchedule == nil {
		p.DietSchedule = []DietWeek{}
	}
	if p.MedCourses == nil {
		p.MedCourses = []MedCourse{}
	}
	if p.WeightHistory == nil {
		p.WeightHistory = []WeightEntry{}
	}
}

func indexOfPet(pets []Pet, id string) int {
	for i, p := range pets {
		if p.ID == id {
			return i
		}
	}
	return -1
}

func indexOfDeletedPet(items []DeletedPet, id string) int {
	for i, it := range items {
		if it.ID == id {
			return i
		}
	}
	return -1
}

func indexOfDeletedDiet(items []DeletedDiet, deletedAt time.Time) int {
	for i, it := range items {
		if it.DeletedAt.Equal(deletedAt) {
			return i
		}
	}
	return -1
}

func copyPets(in []Pet) []Pet {
	return append([]Pet{}, in...)
}

func copyDeletedPets(in []DeletedPet) []DeletedPet {
	return append([]DeletedPet{}, in...)
}

func copyDeletedDiets(in []DeletedDiet) []DeletedDiet {
	return append([]DeletedDiet{}, in...)
}

func removePetAt(in []Pet, idx int) []Pet {
	out := make([]Pet, 0, len(in)-1)
	out = append(out, in[:idx]...)
	return append(out, in[idx+1:]...)
}

func removeDeletedPetAt(in []DeletedPet, idx int) []DeletedPet {
	out := make([]DeletedPet, 0, len(in)-1)
	out = append(out, in[:idx]...)
	return append(out, in[idx+1:]...)
}

func removeDeletedDietAt(in []DeletedDiet, idx int) []DeletedDiet {
	out := make([]DeletedDiet, 0, len(in)-1)
	out = append(out, in[:idx]...)
	return append(out, in[idx+1:]...)
}
