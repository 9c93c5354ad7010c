package store

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Store) {
	// Estado completo (lo que la UI renderiza)
	r.Get("/state", getStateHandler(svc))

	// Mascotas vivas
	r.Route("/pets", func(pr chi.Router) {
		pr.Post("/", addPetHandler(svc))
		pr.Put("/{petID}", updatePetHandler(svc))
		pr.Delete("/{petID}", deletePetHandler(svc))
		pr.Post("/{petID}/restore", restorePetHandler(svc))
		pr.Post("/{petID}/duplicate", duplicatePetHandler(svc))
		pr.Delete("/{petID}/diet", deleteDietHandler(svc))
	})

	// Papelera
	r.Route("/trash", func(tr chi.Router) {
		tr.Get("/", getTrashHandler(svc))
		tr.Delete("/pets/{petID}", purgePetHandler(svc))
		tr.Post("/diets/restore", restoreDietHandler(svc))
		tr.Delete("/diets", purgeDietHandler(svc))
	})

	r.Put("/language", setLanguageHandler(svc))
}

type stateResponse struct {
	Pets         []Pet         `json:"pets"`
	DeletedPets  []DeletedPet  `json:"deletedPets"`
	DeletedDiets []DeletedDiet `json:"deletedDiets"`
	Language     Language      `json:"language"`
}

type trashResponse struct {
	DeletedPets  []DeletedPet  `json:"deletedPets"`
	DeletedDiets []DeletedDiet `json:"deletedDiets"`
}

type addPetResponse struct {
	Pet   Pet           `json:"pet"`
	State stateResponse `json:"state"`
}

type restoreDietRequest struct {
	DeletedAt string `json:"deletedAt"` // RFC3339, identidad del snapshot
}

type setLanguageRequest struct {
	Language string `json:"language"`
}

// getStateHandler devuelve el estado completo.
// @Summary Get full application state
// @Tags state
// @Produce json
// @Success 200 {object} stateResponse
// @Router /state [get]
func getStateHandler(svc *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, toStateResponse(svc.State()))
	}
}

// getTrashHandler devuelve solo la papelera (mascotas y dietas borradas).
// @Summary List trashed pets and diets
// @Tags trash
// @Produce json
// @Success 200 {object} trashResponse
// @Router /trash [get]
func getTrashHandler(svc *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		st := svc.State()
		writeJSON(w, http.StatusOK, trashResponse{
			DeletedPets:  st.DeletedPets,
			DeletedDiets: st.DeletedDiets,
		})
	}
}

// addPetHandler da de alta una mascota. El id lo puede traer el flujo
// de alta; si viene vacío, el store asigna uno.
// @Summary Add a pet
// @Tags pets
// @Accept json
// @Produce json
// @Success 201 {object} addPetResponse
// @Failure 400 {string} string "invalid json"
// @Router /pets [post]
func addPetHandler(svc *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var p Pet
		if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		created, st, err := svc.AddPet(r.Context(), p)
		if err != nil {
			http.Error(w, "storage write failed", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusCreated, addPetResponse{
			Pet:   created,
			State: toStateResponse(st),
		})
	}
}

// updatePetHandler reemplaza la mascota completa. Si el id no existe
// es un no-op y responde igualmente 200 con el estado (el contrato
// del store: "no encontrado" nunca es error).
// @Summary Replace a live pet
// @Tags pets
// @Accept json
// @Produce json
// @Success 200 {object} stateResponse
// @Failure 400 {string} string "invalid json"
// @Router /pets/{petID} [put]
func updatePetHandler(svc *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var p Pet
		if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		// el id manda el de la URL, el del body se ignora
		p.ID = chi.URLParam(r, "petID")

		st, err := svc.UpdatePet(r.Context(), p)
		if err != nil {
			http.Error(w, "storage write failed", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, toStateResponse(st))
	}
}

// deletePetHandler manda la mascota a la papelera (borrado blando).
// @Summary Soft-delete a pet
// @Tags pets
// @Produce json
// @Success 200 {object} stateResponse
// @Router /pets/{petID} [delete]
func deletePetHandler(svc *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		st, err := svc.DeletePet(r.Context(), chi.URLParam(r, "petID"))
		if err != nil {
			http.Error(w, "storage write failed", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, toStateResponse(st))
	}
}

// restorePetHandler devuelve una mascota de la papelera a la lista viva.
// @Summary Restore a trashed pet
// @Tags trash
// @Produce json
// @Success 200 {object} stateResponse
// @Router /pets/{petID}/restore [post]
func restorePetHandler(svc *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		st, err := svc.RestorePet(r.Context(), chi.URLParam(r, "petID"))
		if err != nil {
			http.Error(w, "storage write failed", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, toStateResponse(st))
	}
}

// duplicatePetHandler clona una mascota viva con id nuevo y sufijo
// de copia localizado.
// @Summary Duplicate a live pet
// @Tags pets
// @Produce json
// @Success 201 {object} addPetResponse
// @Failure 404 {string} string "pet not found"
// @Router /pets/{petID}/duplicate [post]
func duplicatePetHandler(svc *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dup, st, err := svc.DuplicatePet(r.Context(), chi.URLParam(r, "petID"))
		if err != nil {
			http.Error(w, "storage write failed", http.StatusInternalServerError)
			return
		}
		if dup.ID == "" {
			// aquí sí devolvemos 404: la UI necesita saber que no
			// hay nada que duplicar
			http.Error(w, "pet not found", http.StatusNotFound)
			return
		}

		writeJSON(w, http.StatusCreated, addPetResponse{
			Pet:   dup,
			State: toStateResponse(st),
		})
	}
}

// purgePetHandler borra definitivamente una mascota de la papelera.
// @Summary Permanently delete a trashed pet
// @Tags trash
// @Produce json
// @Success 200 {object} stateResponse
// @Router /trash/pets/{petID} [delete]
func purgePetHandler(svc *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		st, err := svc.PurgePet(r.Context(), chi.URLParam(r, "petID"))
		if err != nil {
			http.Error(w, "storage write failed", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, toStateResponse(st))
	}
}

// deleteDietHandler desprende la dieta de la mascota hacia la papelera.
// @Summary Detach a pet's diet into the trash
// @Tags diet
// @Produce json
// @Success 200 {object} stateResponse
// @Router /pets/{petID}/diet [delete]
func deleteDietHandler(svc *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		st, err := svc.DeleteDiet(r.Context(), chi.URLParam(r, "petID"))
		if err != nil {
			http.Error(w, "storage write failed", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, toStateResponse(st))
	}
}

// restoreDietHandler reengancha un snapshot de dieta, identificado
// por su sello de borrado.
// @Summary Restore a trashed diet to its pet
// @Tags trash
// @Accept json
// @Produce json
// @Success 200 {object} stateResponse
// @Failure 400 {string} string "deletedAt must be RFC3339"
// @Router /trash/diets/restore [post]
func restoreDietHandler(svc *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req restoreDietRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		ts, err := parseDeletedAt(req.DeletedAt)
		if err != nil {
			http.Error(w, "deletedAt must be RFC3339", http.StatusBadRequest)
			return
		}

		st, err := svc.RestoreDiet(r.Context(), ts)
		if err != nil {
			http.Error(w, "storage write failed", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, toStateResponse(st))
	}
}

// purgeDietHandler borra definitivamente un snapshot de dieta.
// El sello va en query (?deletedAt=...) porque DELETE sin body viaja
// mejor entre proxies.
// @Summary Permanently delete a trashed diet
// @Tags trash
// @Produce json
// @Param deletedAt query string true "deletion timestamp, RFC3339"
// @Success 200 {object} stateResponse
// @Failure 400 {string} string "deletedAt must be RFC3339"
// @Router /trash/diets [delete]
func purgeDietHandler(svc *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ts, err := parseDeletedAt(r.URL.Query().Get("deletedAt"))
		if err != nil {
			http.Error(w, "deletedAt must be RFC3339", http.StatusBadRequest)
			return
		}

		st, err := svc.PurgeDiet(r.Context(), ts)
		if err != nil {
			http.Error(w, "storage write failed", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, toStateResponse(st))
	}
}

// setLanguageHandler cambia el idioma activo (ru/en).
// @Summary Set the active display language
// @Tags state
// @Accept json
// @Produce json
// @Success 200 {object} stateResponse
// @Failure 400 {string} string "language must be ru or en"
// @Router /language [put]
func setLanguageHandler(svc *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req setLanguageRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		st, err := svc.SetLanguage(r.Context(), Language(strings.TrimSpace(req.Language)))
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				http.Error(w, "language must be ru or en", http.StatusBadRequest)
				return
			}
			http.Error(w, "storage write failed", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, toStateResponse(st))
	}
}

func parseDeletedAt(raw string) (time.Time, error) {
	return time.Parse(time.RFC3339Nano, strings.TrimSpace(raw))
}

func toStateResponse(st AppState) stateResponse {
	return stateResponse{
		Pets:         st.Pets,
		DeletedPets:  st.DeletedPets,
		DeletedDiets: st.DeletedDiets,
		Language:     st.Language,
	}
}

// writeJSON vive aquí y no en un helper compartido: es el único
// módulo con handlers por ahora.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
