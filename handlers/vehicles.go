package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Adhi57/AplikasiPembukuanRentalMotor/httputils"
	"github.com/Adhi57/AplikasiPembukuanRentalMotor/state"
)

func registerVehicleRoutes(r *mux.Router, env *Env) {
	r.HandleFunc("/api/vehicles", env.listVehicles).Methods("GET")
	r.HandleFunc("/api/vehicles", env.createVehicle).Methods("POST")
	r.HandleFunc("/api/vehicles/{id}", env.getVehicle).Methods("GET")
	r.HandleFunc("/api/vehicles/{id}", env.updateVehicle).Methods("PUT")
	r.HandleFunc("/api/vehicles/{id}", env.deleteVehicle).Methods("DELETE")
}

func (env *Env) listVehicles(w http.ResponseWriter, r *http.Request) {
	vehicles, err := state.ListVehicles(env.DB)
	httputils.HandleAPIResponse(w, r, vehicles, err)
}

func (env *Env) getVehicle(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		httputils.HandleAPIResponse(w, r, nil, err)
		return
	}
	vehicle, err := state.GetVehicleByID(env.DB, id)
	httputils.HandleAPIResponse(w, r, vehicle, err)
}

func (env *Env) createVehicle(w http.ResponseWriter, r *http.Request) {
	var v state.Vehicle
	if err := decodeBody(r, &v); err != nil {
		httputils.HandleAPIResponse(w, r, nil, err)
		return
	}
	err := state.CreateVehicle(env.DB, v)
	httputils.HandleAPIResponse(w, r, map[string]bool{"ok": true}, err)
}

func (env *Env) updateVehicle(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		httputils.HandleAPIResponse(w, r, nil, err)
		return
	}
	var v state.Vehicle
	if err := decodeBody(r, &v); err != nil {
		httputils.HandleAPIResponse(w, r, nil, err)
		return
	}
	err = state.UpdateVehicle(env.DB, id, v)
	httputils.HandleAPIResponse(w, r, map[string]bool{"ok": true}, err)
}

func (env *Env) deleteVehicle(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		httputils.HandleAPIResponse(w, r, nil, err)
		return
	}
	err = state.DeleteVehicle(env.DB, id)
	httputils.HandleAPIResponse(w, r, map[string]bool{"ok": true}, err)
}
