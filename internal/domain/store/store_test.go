package store

import (
	"context"
	"fmt"
	"testing"
	"time"

	mem "dietpet/internal/adapters/storage/memory"

	"github.com/google/go-cmp/cmp"
)

func newTestStore(t *testing.T, lang Language, pets ...Pet) *Store {
	t.Helper()

	kv := mem.NewKV()
	ctx := context.Background()
	if err := kv.Set(ctx, LangKey, string(lang)); err != nil {
		t.Fatalf("seed lang: %v", err)
	}

	codec := NewCodec(kv, nil)
	s := New(ctx, codec)

	// ids y reloj deterministas para los tests
	seq := 0
	s.newID = func() string {
		seq++
		return fmt.Sprintf("id-%d", seq)
	}
	s.now = func() time.Time {
		return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	}

	// estado base: solo las mascotas del test
	s.state = AppState{
		Pets:         append([]Pet{}, pets...),
		DeletedPets:  []DeletedPet{},
		DeletedDiets: []DeletedDiet{},
		Language:     lang,
	}

	return s
}

func testPet(id, name string) Pet {
	start := "2026-02-03"
	return Pet{
		ID:            id,
		Name:          name,
		Breed:         "Domestic cat",
		Age:           "10",
		Diagnoses:     []Diagnosis{{ID: "d1", Name: "Urolithiasis", DateAdded: start}},
		DietStartDate: &start,
		DietSchedule:  defaultSchedule("Pro Plan pouch"),
		MedCourses:    []MedCourse{},
		WeightHistory: []WeightEntry{{Date: "2026-02-03", Value: 12}},
		Notes:         "No fish allowed",
	}
}

func TestAddPet_AssignsIDWhenEmpty(t *testing.T) {
	s := newTestStore(t, LangEN)
	ctx := context.Background()

	created, st, err := s.AddPet(ctx, Pet{Name: "Milo"})
	if err != nil {
		t.Fatalf("AddPet: %v", err)
	}
	if created.ID == "" {
		t.Fatal("expected generated id")
	}
	if len(st.Pets) != 1 || st.Pets[0].ID != created.ID {
		t.Fatalf("pet not appended: %+v", st.Pets)
	}
	// colecciones nil deben quedar normalizadas a vacías
	if created.Diagnoses == nil || created.DietSchedule == nil || created.MedCourses == nil || created.WeightHistory == nil {
		t.Fatalf("nested collections not normalized: %+v", created)
	}
}

func TestUpdatePet_NoopWhenMissing(t *testing.T) {
	s := newTestStore(t, LangEN, testPet("1", "Rex"))
	ctx := context.Background()

	before := s.State()
	after, err := s.UpdatePet(ctx, Pet{ID: "ghost", Name: "Ghost"})
	if err != nil {
		t.Fatalf("UpdatePet: %v", err)
	}
	if diff := cmp.Diff(before, after); diff != "" {
		t.Fatalf("state changed on missing id (-before +after):\n%s", diff)
	}
}

func TestUpdatePet_ReplacesMatching(t *testing.T) {
	s := newTestStore(t, LangEN, testPet("1", "Rex"))
	ctx := context.Background()

	upd := testPet("1", "Rex Updated")
	st, err := s.UpdatePet(ctx, upd)
	if err != nil {
		t.Fatalf("UpdatePet: %v", err)
	}
	if st.Pets[0].Name != "Rex Updated" {
		t.Fatalf("pet not replaced: %+v", st.Pets[0])
	}
}

func TestDeleteThenRestore_IsIdentity(t *testing.T) {
	p := testPet("1", "Rex")
	s := newTestStore(t, LangEN, p)
	ctx := context.Background()

	before := s.State()

	st, err := s.DeletePet(ctx, "1")
	if err != nil {
		t.Fatalf("DeletePet: %v", err)
	}
	if len(st.Pets) != 0 {
		t.Fatalf("pet still live after delete: %+v", st.Pets)
	}
	if len(st.DeletedPets) != 1 {
		t.Fatalf("expected 1 trashed pet, got %d", len(st.DeletedPets))
	}
	if st.DeletedPets[0].DeletedAt.IsZero() {
		t.Fatal("deletedAt not stamped")
	}

	st, err = s.RestorePet(ctx, "1")
	if err != nil {
		t.Fatalf("RestorePet: %v", err)
	}
	if diff := cmp.Diff(before.Pets, st.Pets); diff != "" {
		t.Fatalf("restored pet differs (-before +after):\n%s", diff)
	}
	if len(st.DeletedPets) != 0 {
		t.Fatalf("trash not empty after restore: %+v", st.DeletedPets)
	}
}

func TestDeletePet_NoopWhenMissing(t *testing.T) {
	s := newTestStore(t, LangEN, testPet("1", "Rex"))
	ctx := context.Background()

	before := s.State()
	after, err := s.DeletePet(ctx, "ghost")
	if err != nil {
		t.Fatalf("DeletePet: %v", err)
	}
	if diff := cmp.Diff(before, after); diff != "" {
		t.Fatalf("state changed (-before +after):\n%s", diff)
	}
}

func TestPurgePet_Idempotent(t *testing.T) {
	s := newTestStore(t, LangEN, testPet("1", "Rex"))
	ctx := context.Background()

	if _, err := s.DeletePet(ctx, "1"); err != nil {
		t.Fatalf("DeletePet: %v", err)
	}

	first, err := s.PurgePet(ctx, "1")
	if err != nil {
		t.Fatalf("PurgePet: %v", err)
	}
	second, err := s.PurgePet(ctx, "1")
	if err != nil {
		t.Fatalf("PurgePet twice: %v", err)
	}
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("purge not idempotent (-first +second):\n%s", diff)
	}
	if len(second.DeletedPets) != 0 {
		t.Fatalf("trash not empty: %+v", second.DeletedPets)
	}
}

func TestDeleteDiet_ThenRestore_RoundTrip(t *testing.T) {
	p := testPet("1", "Rex")
	s := newTestStore(t, LangEN, p)
	ctx := context.Background()

	wantSchedule := cloneSchedule(p.DietSchedule)
	wantStart := *p.DietStartDate

	st, err := s.DeleteDiet(ctx, "1")
	if err != nil {
		t.Fatalf("DeleteDiet: %v", err)
	}

	live := st.Pets[0]
	if live.DietStartDate != nil {
		t.Fatalf("dietStartDate not cleared: %v", *live.DietStartDate)
	}
	if len(live.DietSchedule) != 0 {
		t.Fatalf("dietSchedule not cleared: %+v", live.DietSchedule)
	}
	if len(st.DeletedDiets) != 1 {
		t.Fatalf("expected 1 trashed diet, got %d", len(st.DeletedDiets))
	}

	snap := st.DeletedDiets[0]
	if snap.PetID != "1" || snap.PetName != "Rex" {
		t.Fatalf("snapshot wrong identity: %+v", snap)
	}
	if diff := cmp.Diff(wantSchedule, snap.DietSchedule); diff != "" {
		t.Fatalf("snapshot schedule differs (-want +got):\n%s", diff)
	}

	st, err = s.RestoreDiet(ctx, snap.DeletedAt)
	if err != nil {
		t.Fatalf("RestoreDiet: %v", err)
	}

	live = st.Pets[0]
	if live.DietStartDate == nil || *live.DietStartDate != wantStart {
		t.Fatalf("dietStartDate not restored: %v", live.DietStartDate)
	}
	if diff := cmp.Diff(wantSchedule, live.DietSchedule); diff != "" {
		t.Fatalf("schedule not restored (-want +got):\n%s", diff)
	}
	if len(st.DeletedDiets) != 0 {
		t.Fatalf("trash not empty after restore: %+v", st.DeletedDiets)
	}
}

func TestDeleteDiet_NoopWithoutSchedule(t *testing.T) {
	p := testPet("1", "Rex")
	p.DietStartDate = nil
	p.DietSchedule = []DietWeek{}
	s := newTestStore(t, LangEN, p)
	ctx := context.Background()

	st, err := s.DeleteDiet(ctx, "1")
	if err != nil {
		t.Fatalf("DeleteDiet: %v", err)
	}
	if len(st.DeletedDiets) != 0 {
		t.Fatalf("snapshot created for empty diet: %+v", st.DeletedDiets)
	}
}

func TestRestoreDiet_NoopWhenPetGone(t *testing.T) {
	s := newTestStore(t, LangEN, testPet("1", "Rex"))
	ctx := context.Background()

	st, err := s.DeleteDiet(ctx, "1")
	if err != nil {
		t.Fatalf("DeleteDiet: %v", err)
	}
	snap := st.DeletedDiets[0]

	if _, err := s.DeletePet(ctx, "1"); err != nil {
		t.Fatalf("DeletePet: %v", err)
	}
	if _, err := s.PurgePet(ctx, "1"); err != nil {
		t.Fatalf("PurgePet: %v", err)
	}

	st, err = s.RestoreDiet(ctx, snap.DeletedAt)
	if err != nil {
		t.Fatalf("RestoreDiet: %v", err)
	}
	// el snapshot se queda "atascado" en la papelera, sin error
	if len(st.DeletedDiets) != 1 {
		t.Fatalf("snapshot removed despite missing pet: %+v", st.DeletedDiets)
	}
}

func TestPurgeDiet_Idempotent(t *testing.T) {
	s := newTestStore(t, LangEN, testPet("1", "Rex"))
	ctx := context.Background()

	st, err := s.DeleteDiet(ctx, "1")
	if err != nil {
		t.Fatalf("DeleteDiet: %v", err)
	}
	ts := st.DeletedDiets[0].DeletedAt

	first, err := s.PurgeDiet(ctx, ts)
	if err != nil {
		t.Fatalf("PurgeDiet: %v", err)
	}
	second, err := s.PurgeDiet(ctx, ts)
	if err != nil {
		t.Fatalf("PurgeDiet twice: %v", err)
	}
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("purge not idempotent (-first +second):\n%s", diff)
	}
}

func TestDuplicatePet_DeepCopy(t *testing.T) {
	s := newTestStore(t, LangEN, testPet("1", "Rex"))
	ctx := context.Background()

	dup, st, err := s.DuplicatePet(ctx, "1")
	if err != nil {
		t.Fatalf("DuplicatePet: %v", err)
	}
	if dup.ID == "1" || dup.ID == "" {
		t.Fatalf("expected fresh id, got %q", dup.ID)
	}
	if dup.Name != "Rex (copy)" {
		t.Fatalf("expected localized copy suffix, got %q", dup.Name)
	}
	if len(st.Pets) != 2 {
		t.Fatalf("expected 2 live pets, got %d", len(st.Pets))
	}

	// mutar la copia no debe tocar el original
	st.Pets[1].WeightHistory[0].Value = 99
	st.Pets[1].DietSchedule[0].Items[0].Amount = 999
	st.Pets[1].Diagnoses[0].Name = "changed"

	orig := st.Pets[0]
	if orig.WeightHistory[0].Value != 12 {
		t.Fatalf("original weight mutated: %v", orig.WeightHistory[0])
	}
	if orig.DietSchedule[0].Items[0].Amount != 70 {
		t.Fatalf("original schedule mutated: %v", orig.DietSchedule[0].Items[0])
	}
	if orig.Diagnoses[0].Name != "Urolithiasis" {
		t.Fatalf("original diagnoses mutated: %v", orig.Diagnoses[0])
	}
}

func TestDuplicatePet_RussianSuffix(t *testing.T) {
	s := newTestStore(t, LangRU, testPet("1", "Рекс"))
	ctx := context.Background()

	dup, _, err := s.DuplicatePet(ctx, "1")
	if err != nil {
		t.Fatalf("DuplicatePet: %v", err)
	}
	if dup.Name != "Рекс (копия)" {
		t.Fatalf("expected russian suffix, got %q", dup.Name)
	}
}

func TestSetLanguage(t *testing.T) {
	s := newTestStore(t, LangEN, testPet("1", "Rex"))
	ctx := context.Background()

	st, err := s.SetLanguage(ctx, LangRU)
	if err != nil {
		t.Fatalf("SetLanguage: %v", err)
	}
	if st.Language != LangRU {
		t.Fatalf("language not updated: %q", st.Language)
	}

	// la clave rápida debe reflejar el cambio
	raw, ok, err := s.codec.kv.Get(ctx, LangKey)
	if err != nil || !ok {
		t.Fatalf("lang key not persisted: ok=%v err=%v", ok, err)
	}
	if raw != "ru" {
		t.Fatalf("lang key = %q, want ru", raw)
	}

	if _, err := s.SetLanguage(ctx, Language("xx")); err != ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestMutations_DoNotAliasPreviousState(t *testing.T) {
	s := newTestStore(t, LangEN, testPet("1", "Rex"))
	ctx := context.Background()

	before := s.State()
	beforePets := len(before.Pets)

	if _, _, err := s.AddPet(ctx, Pet{Name: "Milo"}); err != nil {
		t.Fatalf("AddPet: %v", err)
	}

	// el estado previo capturado no debe verse afectado
	if len(before.Pets) != beforePets {
		t.Fatalf("previous state mutated in place")
	}
}
