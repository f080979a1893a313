package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-waste-tracker/internal/utils"
	"github.com/go-chi/chi/v5"
)

// resourceService is the CRUD surface shared by the scanner, product and
// manufacturer services.
type resourceService[In, Out any] interface {
	Create(ctx context.Context, input In) (Out, error)
	Update(ctx context.Context, id string, input In) (Out, error)
	Delete(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (Out, error)
	List(ctx context.Context) ([]Out, error)
}

// resourceRoutes registers GET/POST on pattern and GET/PUT/DELETE on
// pattern+"/{id}".
func resourceRoutes[In, Out any](r chi.Router, pattern string, svc resourceService[In, Out]) {
	r.Get(pattern, listResource(svc))
	r.Post(pattern, createResource(svc))
	r.Get(pattern+"/{id}", getResource(svc))
	r.Put(pattern+"/{id}", updateResource(svc))
	r.Delete(pattern+"/{id}", deleteResource(svc))
}

func listResource[In, Out any](svc resourceService[In, Out]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			writeError(w, r, err, "error listing records")
			return
		}
		utils.WriteJSON(w, items, http.StatusOK)
	}
}

func createResource[In, Out any](svc resourceService[In, Out]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input In
		if err := decodeJSON(w, r, &input); err != nil {
			writeError(w, r, err, "invalid create body")
			return
		}

		created, err := svc.Create(r.Context(), input)
		if err != nil {
			writeError(w, r, err, "error creating record")
			return
		}
		utils.WriteJSON(w, created, http.StatusCreated)
	}
}

func getResource[In, Out any](svc resourceService[In, Out]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		item, err := svc.Get(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, r, err, "error loading record")
			return
		}
		utils.WriteJSON(w, item, http.StatusOK)
	}
}

func updateResource[In, Out any](svc resourceService[In, Out]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input In
		if err := decodeJSON(w, r, &input); err != nil {
			writeError(w, r, err, "invalid update body")
			return
		}

		updated, err := svc.Update(r.Context(), chi.URLParam(r, "id"), input)
		if err != nil {
			writeError(w, r, err, "error updating record")
			return
		}
		utils.WriteJSON(w, updated, http.StatusOK)
	}
}

func deleteResource[In, Out any](svc resourceService[In, Out]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
			writeError(w, r, err, "error deleting record")
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
