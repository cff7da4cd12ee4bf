package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Adhi57/AplikasiPembukuanRentalMotor/httputils"
	"github.com/Adhi57/AplikasiPembukuanRentalMotor/state"
)

func registerCustomerRoutes(r *mux.Router, env *Env) {
	r.HandleFunc("/api/customers", env.listCustomers).Methods("GET")
	r.HandleFunc("/api/customers", env.createCustomer).Methods("POST")
	r.HandleFunc("/api/customers/{id}", env.getCustomer).Methods("GET")
	r.HandleFunc("/api/customers/{id}", env.updateCustomer).Methods("PUT")
	r.HandleFunc("/api/customers/{id}", env.deleteCustomer).Methods("DELETE")
}

func (env *Env) listCustomers(w http.ResponseWriter, r *http.Request) {
	customers, err := state.ListCustomers(env.DB)
	httputils.HandleAPIResponse(w, r, customers, err)
}

func (env *Env) getCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		httputils.HandleAPIResponse(w, r, nil, err)
		return
	}
	customer, err := state.GetCustomerByID(env.DB, id)
	httputils.HandleAPIResponse(w, r, customer, err)
}

func (env *Env) createCustomer(w http.ResponseWriter, r *http.Request) {
	var c state.Customer
	if err := decodeBody(r, &c); err != nil {
		httputils.HandleAPIResponse(w, r, nil, err)
		return
	}
	err := state.CreateCustomer(env.DB, c)
	httputils.HandleAPIResponse(w, r, map[string]bool{"ok": true}, err)
}

func (env *Env) updateCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		httputils.HandleAPIResponse(w, r, nil, err)
		return
	}
	var c state.Customer
	if err := decodeBody(r, &c); err != nil {
		httputils.HandleAPIResponse(w, r, nil, err)
		return
	}
	err = state.UpdateCustomer(env.DB, id, c)
	httputils.HandleAPIResponse(w, r, map[string]bool{"ok": true}, err)
}

func (env *Env) deleteCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		httputils.HandleAPIResponse(w, r, nil, err)
		return
	}
	err = state.DeleteCustomer(env.DB, id)
	httputils.HandleAPIResponse(w, r, map[string]bool{"ok": true}, err)
}
