package httputils

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/Adhi57/AplikasiPembukuanRentalMotor/database"
)

// HandleAPIResponse writes resp as JSON, or the error as a plain message
// with a status derived from the data-layer error kind.
func HandleAPIResponse(w http.ResponseWriter, r *http.Request, resp interface{}, err error) {
	if err != nil {
		fmt.Printf("%s - %s %s ERROR: %v\n",
			r.RemoteAddr,
			r.Method,
			r.URL.Path,
			err,
		)
		http.Error(w, err.Error(), statusFor(err))
		return
	}
	body, err := json.Marshal(resp)
	if err != nil {
		fmt.Printf("%s - %s %s ERROR: %v\n",
			r.RemoteAddr,
			r.Method,
			r.URL.Path,
			err,
		)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(body)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, database.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, database.ErrInvalidFormat):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
