package pets

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"petstore-server/internal/platform/keyed"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/v2/pet", func(pr chi.Router) {
		pr.Post("/", addPetHandler(svc))
		pr.Put("/", updatePetHandler(svc))

		// chi prioriza rutas literales sobre {petID}, así que findByStatus
		// y findByTags no se confunden con un id.
		pr.Get("/findByStatus", findPetsByStatusHandler(svc))
		pr.Get("/findByTags", findPetsByTagsHandler(svc))

		pr.Get("/{petID}", getPetHandler(svc))
		pr.Delete("/{petID}", deletePetHandler(svc))
		pr.Post("/{petID}", updatePetFormHandler(svc))
	})
}

// addPetHandler godoc
// @Summary Alta de mascota (con cascada de tags/categoría)
// @Router /pet [post]
func addPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var p Pet
		if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
			http.Error(w, "invalid json: "+err.Error(), http.StatusBadRequest)
			return
		}

		stored, err := svc.Add(r.Context(), p)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, stored)
	}
}

// updatePetHandler godoc
// @Summary Reemplazo completo de una mascota existente
// @Router /pet [put]
func updatePetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var p Pet
		if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
			http.Error(w, "invalid json: "+err.Error(), http.StatusBadRequest)
			return
		}

		updated, err := svc.Update(r.Context(), p)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, updated)
	}
}

// getPetHandler godoc
// @Summary Perfil de una mascota por id
// @Router /pet/{petID} [get]
func getPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseUint(chi.URLParam(r, "petID"), 10, 64)
		if err != nil {
			http.Error(w, "pet id must be an unsigned integer", http.StatusBadRequest)
			return
		}

		p, err := svc.Get(r.Context(), id)
		if err != nil {
			writeError(w, err)
			return
		}
		if p == nil {
			http.Error(w, "pet not found", http.StatusNotFound)
			return
		}

		writeJSON(w, http.StatusOK, p)
	}
}

// deletePetHandler godoc
// @Summary Baja de una mascota
// @Router /pet/{petID} [delete]
func deletePetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseUint(chi.URLParam(r, "petID"), 10, 64)
		if err != nil {
			http.Error(w, "pet id must be an unsigned integer", http.StatusBadRequest)
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			writeError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// findPetsByStatusHandler godoc
// @Summary Mascotas por status (csv, semántica OR; sin status matchea todo)
// @Router /pet/findByStatus [get]
func findPetsByStatusHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw := r.URL.Query().Get("status")
		if raw == "" {
			http.Error(w, "status query parameter is required", http.StatusBadRequest)
			return
		}

		var statuses []Status
		for _, part := range strings.Split(raw, ",") {
			st, err := ParseStatus(part)
			if err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			statuses = append(statuses, st)
		}

		found, err := svc.FindByStatus(r.Context(), statuses)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, found)
	}
}

// findPetsByTagsHandler godoc
// @Summary Mascotas por etiquetas (csv, semántica AND)
// @Router /pet/findByTags [get]
func findPetsByTagsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw := r.URL.Query().Get("tags")
		if raw == "" {
			http.Error(w, "tags query parameter is required", http.StatusBadRequest)
			return
		}

		found, err := svc.FindByTags(r.Context(), strings.Split(raw, ","))
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, found)
	}
}

// updatePetFormHandler godoc
// @Summary Patch parcial de nombre/status vía form urlencoded
// @Router /pet/{petID} [post]
func updatePetFormHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseUint(chi.URLParam(r, "petID"), 10, 64)
		if err != nil {
			http.Error(w, "pet id must be an unsigned integer", http.StatusBadRequest)
			return
		}

		if err := r.ParseForm(); err != nil {
			http.Error(w, "invalid form body", http.StatusBadRequest)
			return
		}

		// Campos ausentes = no tocar (patch real, igual que en updates JSON
		// con punteros).
		var (
			name   *string
			status *Status
		)
		if v := r.PostForm.Get("name"); v != "" {
			name = &v
		}
		if v := r.PostForm.Get("status"); v != "" {
			st, err := ParseStatus(v)
			if err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			status = &st
		}

		updated, err := svc.UpdateNameStatus(r.Context(), id, name, status)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, updated)
	}
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput), errors.Is(err, ErrMissingIdentifier):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, keyed.ErrConflict):
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

// writeJSON está duplicado a propósito en los handlers de cada módulo
// (pets/orders/users) para no crear helpers compartidos antes de tiempo.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
