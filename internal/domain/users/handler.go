package users

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"petstore-server/internal/platform/keyed"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/v2/user", func(ur chi.Router) {
		ur.Post("/", addUserHandler(svc))

		// createWithList y createWithArray comparten semántica: alta en
		// lote secuencial, sin rollback.
		ur.Post("/createWithList", addUsersHandler(svc))
		ur.Post("/createWithArray", addUsersHandler(svc))

		ur.Get("/{username}", getUserHandler(svc))
		ur.Put("/{username}", updateUserHandler(svc))
		ur.Delete("/{username}", deleteUserHandler(svc))
	})
}

// addUserHandler godoc
// @Summary Alta de usuario; responde el username asignado
// @Router /user [post]
func addUserHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var u User
		if err := json.NewDecoder(r.Body).Decode(&u); err != nil {
			http.Error(w, "invalid json: "+err.Error(), http.StatusBadRequest)
			return
		}

		stored, err := svc.Add(r.Context(), u)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, stored.Username)
	}
}

// addUsersHandler godoc
// @Summary Alta de usuarios en lote (corta en el primer fallo)
// @Router /user/createWithList [post]
func addUsersHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var list []User
		if err := json.NewDecoder(r.Body).Decode(&list); err != nil {
			http.Error(w, "invalid json: "+err.Error(), http.StatusBadRequest)
			return
		}

		names, err := svc.AddAll(r.Context(), list)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, names)
	}
}

// getUserHandler godoc
// @Summary Usuario por username
// @Router /user/{username} [get]
func getUserHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u, err := svc.Get(r.Context(), chi.URLParam(r, "username"))
		if err != nil {
			writeError(w, err)
			return
		}
		if u == nil {
			http.Error(w, "user not found", http.StatusNotFound)
			return
		}

		writeJSON(w, http.StatusOK, u)
	}
}

// updateUserHandler godoc
// @Summary Reemplazo del usuario identificado por username
// @Router /user/{username} [put]
func updateUserHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var u User
		if err := json.NewDecoder(r.Body).Decode(&u); err != nil {
			http.Error(w, "invalid json: "+err.Error(), http.StatusBadRequest)
			return
		}

		// El username de la ruta manda; el del body se ignora.
		u.Username = chi.URLParam(r, "username")

		updated, err := svc.Update(r.Context(), u)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, updated)
	}
}

// deleteUserHandler godoc
// @Summary Baja de usuario (idempotente)
// @Router /user/{username} [delete]
func deleteUserHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), chi.URLParam(r, "username")); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, ErrDuplicateUsername):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, keyed.ErrConflict):
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
