package handlers

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Adhi57/AplikasiPembukuanRentalMotor/database"
	"github.com/Adhi57/AplikasiPembukuanRentalMotor/httputils"
	"github.com/Adhi57/AplikasiPembukuanRentalMotor/images"
)

// Each photo kind gets its own subdirectory under the data dir, matching
// the entity the image belongs to.
var photoKinds = map[string]bool{
	"vehicle": true,
	"rental":  true,
	"receipt": true,
}

func registerPhotoRoutes(r *mux.Router, env *Env) {
	r.HandleFunc("/api/photos/{kind}", env.savePhoto).Methods("POST")
}

func (env *Env) savePhoto(w http.ResponseWriter, r *http.Request) {
	kind := mux.Vars(r)["kind"]
	if !photoKinds[kind] {
		httputils.HandleAPIResponse(w, r, nil,
			fmt.Errorf("%w: unknown photo kind %q", database.ErrInvalidFormat, kind))
		return
	}
	var body struct {
		Data string `json:"data"`
	}
	if err := decodeBody(r, &body); err != nil {
		httputils.HandleAPIResponse(w, r, nil, err)
		return
	}
	path, err := images.Save(env.DataDir, kind, body.Data)
	httputils.HandleAPIResponse(w, r, map[string]string{"path": path}, err)
}
