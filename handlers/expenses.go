package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Adhi57/AplikasiPembukuanRentalMotor/httputils"
	"github.com/Adhi57/AplikasiPembukuanRentalMotor/state"
)

func registerExpenseRoutes(r *mux.Router, env *Env) {
	r.HandleFunc("/api/expenses", env.listExpenses).Methods("GET")
	r.HandleFunc("/api/expenses", env.createExpense).Methods("POST")
	r.HandleFunc("/api/expenses/{id}", env.getExpense).Methods("GET")
	r.HandleFunc("/api/expenses/{id}", env.updateExpense).Methods("PUT")
	r.HandleFunc("/api/expenses/{id}", env.deleteExpense).Methods("DELETE")
}

func (env *Env) listExpenses(w http.ResponseWriter, r *http.Request) {
	expenses, err := state.ListExpenses(env.DB)
	httputils.HandleAPIResponse(w, r, expenses, err)
}

func (env *Env) getExpense(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		httputils.HandleAPIResponse(w, r, nil, err)
		return
	}
	expense, err := state.GetExpenseByID(env.DB, id)
	httputils.HandleAPIResponse(w, r, expense, err)
}

func (env *Env) createExpense(w http.ResponseWriter, r *http.Request) {
	var e state.Expense
	if err := decodeBody(r, &e); err != nil {
		httputils.HandleAPIResponse(w, r, nil, err)
		return
	}
	err := state.CreateExpense(env.DB, e)
	httputils.HandleAPIResponse(w, r, map[string]bool{"ok": true}, err)
}

func (env *Env) updateExpense(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		httputils.HandleAPIResponse(w, r, nil, err)
		return
	}
	var e state.Expense
	if err := decodeBody(r, &e); err != nil {
		httputils.HandleAPIResponse(w, r, nil, err)
		return
	}
	err = state.UpdateExpense(env.DB, id, e)
	httputils.HandleAPIResponse(w, r, map[string]bool{"ok": true}, err)
}

func (env *Env) deleteExpense(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		httputils.HandleAPIResponse(w, r, nil, err)
		return
	}
	err = state.DeleteExpense(env.DB, id)
	httputils.HandleAPIResponse(w, r, map[string]bool{"ok": true}, err)
}
