package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Adhi57/AplikasiPembukuanRentalMotor/httputils"
	"github.com/Adhi57/AplikasiPembukuanRentalMotor/license"
)

func registerLicenseRoutes(r *mux.Router, env *Env) {
	r.HandleFunc("/api/license/machine-id", env.machineID).Methods("GET")
	r.HandleFunc("/api/license/activate", env.activateLicense).Methods("POST")
	r.HandleFunc("/api/license/status", env.licenseStatus).Methods("GET")
}

func (env *Env) machineID(w http.ResponseWriter, r *http.Request) {
	id, err := license.MachineID()
	httputils.HandleAPIResponse(w, r, map[string]string{"machine_id": id}, err)
}

func (env *Env) activateLicense(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Key string `json:"key"`
	}
	if err := decodeBody(r, &body); err != nil {
		httputils.HandleAPIResponse(w, r, nil, err)
		return
	}
	ok, err := license.Activate(env.DataDir, body.Key)
	httputils.HandleAPIResponse(w, r, map[string]bool{"activated": ok}, err)
}

func (env *Env) licenseStatus(w http.ResponseWriter, r *http.Request) {
	ok, err := license.Status(env.DataDir)
	httputils.HandleAPIResponse(w, r, map[string]bool{"licensed": ok}, err)
}
