package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Adhi57/AplikasiPembukuanRentalMotor/httputils"
	"github.com/Adhi57/AplikasiPembukuanRentalMotor/state"
)

func registerSettingRoutes(r *mux.Router, env *Env) {
	r.HandleFunc("/api/settings/{key}", env.getSetting).Methods("GET")
	r.HandleFunc("/api/settings/{key}", env.putSetting).Methods("PUT")
}

func (env *Env) getSetting(w http.ResponseWriter, r *http.Request) {
	key := mux.Vars(r)["key"]
	value, err := state.GetSetting(env.DB, key)
	httputils.HandleAPIResponse(w, r, map[string]string{"key": key, "value": value}, err)
}

func (env *Env) putSetting(w http.ResponseWriter, r *http.Request) {
	key := mux.Vars(r)["key"]
	var body struct {
		Value       string `json:"value"`
		Description string `json:"description"`
	}
	if err := decodeBody(r, &body); err != nil {
		httputils.HandleAPIResponse(w, r, nil, err)
		return
	}
	err := state.SetSetting(env.DB, key, body.Value, body.Description)
	httputils.HandleAPIResponse(w, r, map[string]bool{"ok": true}, err)
}
