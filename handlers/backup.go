package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Adhi57/AplikasiPembukuanRentalMotor/httputils"
)

func registerBackupRoutes(r *mux.Router, env *Env) {
	r.HandleFunc("/api/backup/export", env.exportBackup).Methods("POST")
	r.HandleFunc("/api/backup/import", env.importBackup).Methods("POST")
}

func (env *Env) exportBackup(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Path string `json:"path"`
	}
	if err := decodeBody(r, &body); err != nil {
		httputils.HandleAPIResponse(w, r, nil, err)
		return
	}
	dest, err := env.DB.Export(body.Path)
	httputils.HandleAPIResponse(w, r, map[string]string{"path": dest}, err)
}

func (env *Env) importBackup(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Path string `json:"path"`
	}
	if err := decodeBody(r, &body); err != nil {
		httputils.HandleAPIResponse(w, r, nil, err)
		return
	}
	err := env.DB.Import(body.Path)
	httputils.HandleAPIResponse(w, r, map[string]bool{"ok": true}, err)
}
