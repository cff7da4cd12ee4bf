package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Adhi57/AplikasiPembukuanRentalMotor/httputils"
	"github.com/Adhi57/AplikasiPembukuanRentalMotor/state"
)

func registerReceiptRoutes(r *mux.Router, env *Env) {
	r.HandleFunc("/api/receipts", env.listReceipts).Methods("GET")
	r.HandleFunc("/api/receipts", env.createReceipt).Methods("POST")
	r.HandleFunc("/api/receipts/{id}", env.getReceipt).Methods("GET")
	r.HandleFunc("/api/receipts/{id}", env.updateReceipt).Methods("PUT")
	r.HandleFunc("/api/receipts/{id}", env.deleteReceipt).Methods("DELETE")
}

func (env *Env) listReceipts(w http.ResponseWriter, r *http.Request) {
	receipts, err := state.ListReceipts(env.DB)
	httputils.HandleAPIResponse(w, r, receipts, err)
}

func (env *Env) getReceipt(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		httputils.HandleAPIResponse(w, r, nil, err)
		return
	}
	receipt, err := state.GetReceiptByID(env.DB, id)
	httputils.HandleAPIResponse(w, r, receipt, err)
}

func (env *Env) createReceipt(w http.ResponseWriter, r *http.Request) {
	var p state.PaymentReceipt
	if err := decodeBody(r, &p); err != nil {
		httputils.HandleAPIResponse(w, r, nil, err)
		return
	}
	err := state.CreateReceipt(env.DB, p)
	httputils.HandleAPIResponse(w, r, map[string]bool{"ok": true}, err)
}

func (env *Env) updateReceipt(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		httputils.HandleAPIResponse(w, r, nil, err)
		return
	}
	var p state.PaymentReceipt
	if err := decodeBody(r, &p); err != nil {
		httputils.HandleAPIResponse(w, r, nil, err)
		return
	}
	err = state.UpdateReceipt(env.DB, id, p)
	httputils.HandleAPIResponse(w, r, map[string]bool{"ok": true}, err)
}

func (env *Env) deleteReceipt(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		httputils.HandleAPIResponse(w, r, nil, err)
		return
	}
	err = state.DeleteReceipt(env.DB, id)
	httputils.HandleAPIResponse(w, r, map[string]bool{"ok": true}, err)
}
