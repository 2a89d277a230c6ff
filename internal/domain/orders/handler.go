package orders

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"petstore-server/internal/platform/keyed"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/v2/store", func(sr chi.Router) {
		sr.Get("/inventory", inventoryHandler(svc))
		sr.Post("/order", addOrderHandler(svc))
		sr.Get("/order/{orderID}", getOrderHandler(svc))
		sr.Delete("/order/{orderID}", deleteOrderHandler(svc))
	})
}

// inventoryHandler godoc
// @Summary Conteo de mascotas por status de adopción
// @Router /store/inventory [get]
func inventoryHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		inv, err := svc.Inventory(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, inv)
	}
}

// addOrderHandler godoc
// @Summary Alta de orden de compra
// @Router /store/order [post]
func addOrderHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var o Order
		if err := json.NewDecoder(r.Body).Decode(&o); err != nil {
			http.Error(w, "invalid json: "+err.Error(), http.StatusBadRequest)
			return
		}

		stored, err := svc.Add(r.Context(), o)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, stored)
	}
}

// getOrderHandler godoc
// @Summary Orden por id
// @Router /store/order/{orderID} [get]
func getOrderHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseUint(chi.URLParam(r, "orderID"), 10, 64)
		if err != nil {
			http.Error(w, "order id must be an unsigned integer", http.StatusBadRequest)
			return
		}

		o, err := svc.Get(r.Context(), id)
		if err != nil {
			writeError(w, err)
			return
		}
		if o == nil {
			http.Error(w, "order not found", http.StatusNotFound)
			return
		}

		writeJSON(w, http.StatusOK, o)
	}
}

// deleteOrderHandler godoc
// @Summary Baja de orden; responde si existía
// @Router /store/order/{orderID} [delete]
func deleteOrderHandler(svc *Service) http.HandlerFunc {
	// A diferencia del delete de mascotas, acá la ausencia no es 404:
	// se responde 200 con el booleano, preservando el contrato histórico.
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseUint(chi.URLParam(r, "orderID"), 10, 64)
		if err != nil {
			http.Error(w, "order id must be an unsigned integer", http.StatusBadRequest)
			return
		}

		existed, err := svc.Delete(r.Context(), id)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, existed)
	}
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
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
