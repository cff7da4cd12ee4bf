package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/Adhi57/AplikasiPembukuanRentalMotor/database"
)

// Env carries the process-wide dependencies every handler needs.
type Env struct {
	DB        *database.Database
	DataDir   string
	JWTSecret string
}

// RegisterRoutes wires every entity verb onto the router.
func RegisterRoutes(r *mux.Router, env *Env) {
	registerVehicleRoutes(r, env)
	registerCustomerRoutes(r, env)
	registerRentalRoutes(r, env)
	registerReceiptRoutes(r, env)
	registerExpenseRoutes(r, env)
	registerSettingRoutes(r, env)
	registerBackupRoutes(r, env)
	registerAuthRoutes(r, env)
	registerLicenseRoutes(r, env)
	registerPhotoRoutes(r, env)
}

func pathID(r *http.Request) (int, error) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		return 0, fmt.Errorf("%w: invalid id %q", database.ErrInvalidFormat, mux.Vars(r)["id"])
	}
	return id, nil
}

func decodeBody(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: malformed request body: %v", database.ErrInvalidFormat, err)
	}
	return nil
}
