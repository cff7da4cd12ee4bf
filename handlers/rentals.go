package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Adhi57/AplikasiPembukuanRentalMotor/httputils"
	"github.com/Adhi57/AplikasiPembukuanRentalMotor/state"
)

func registerRentalRoutes(r *mux.Router, env *Env) {
	r.HandleFunc("/api/rentals", env.listRentals).Methods("GET")
	r.HandleFunc("/api/rentals", env.createRental).Methods("POST")
	r.HandleFunc("/api/rentals/{id}", env.getRental).Methods("GET")
	r.HandleFunc("/api/rentals/{id}", env.updateRental).Methods("PUT")
	r.HandleFunc("/api/rentals/{id}", env.deleteRental).Methods("DELETE")
}

func (env *Env) listRentals(w http.ResponseWriter, r *http.Request) {
	rentals, err := state.ListRentals(env.DB)
	httputils.HandleAPIResponse(w, r, rentals, err)
}

func (env *Env) getRental(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		httputils.HandleAPIResponse(w, r, nil, err)
		return
	}
	rental, err := state.GetRentalByID(env.DB, id)
	httputils.HandleAPIResponse(w, r, rental, err)
}

func (env *Env) createRental(w http.ResponseWriter, r *http.Request) {
	var rental state.Rental
	if err := decodeBody(r, &rental); err != nil {
		httputils.HandleAPIResponse(w, r, nil, err)
		return
	}
	err := state.CreateRental(env.DB, rental)
	httputils.HandleAPIResponse(w, r, map[string]bool{"ok": true}, err)
}

func (env *Env) updateRental(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		httputils.HandleAPIResponse(w, r, nil, err)
		return
	}
	var rental state.Rental
	if err := decodeBody(r, &rental); err != nil {
		httputils.HandleAPIResponse(w, r, nil, err)
		return
	}
	err = state.UpdateRental(env.DB, id, rental)
	httputils.HandleAPIResponse(w, r, map[string]bool{"ok": true}, err)
}

func (env *Env) deleteRental(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		httputils.HandleAPIResponse(w, r, nil, err)
		return
	}
	err = state.DeleteRental(env.DB, id)
	httputils.HandleAPIResponse(w, r, map[string]bool{"ok": true}, err)
}
