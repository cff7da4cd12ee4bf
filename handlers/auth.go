package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/gorilla/mux"

	"github.com/Adhi57/AplikasiPembukuanRentalMotor/httputils"
	"github.com/Adhi57/AplikasiPembukuanRentalMotor/state"
)

func registerAuthRoutes(r *mux.Router, env *Env) {
	r.HandleFunc("/api/login", env.login).Methods("POST")
}

func (env *Env) login(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := decodeBody(r, &body); err != nil {
		httputils.HandleAPIResponse(w, r, nil, err)
		return
	}
	ok, userID, err := state.AttemptLogin(env.DB, body.Username, body.Password)
	if err != nil {
		httputils.HandleAPIResponse(w, r, nil, err)
		return
	}
	if !ok {
		http.Error(w, "invalid username or password", http.StatusUnauthorized)
		return
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": fmt.Sprintf("%d", userID),
		"iat": now.Unix(),
		"exp": now.Add(24 * time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(env.JWTSecret))
	if err != nil {
		httputils.HandleAPIResponse(w, r, nil, fmt.Errorf("failed to sign token: %w", err))
		return
	}
	httputils.HandleAPIResponse(w, r, map[string]string{"token": signed}, nil)
}
