package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Adhi57/AplikasiPembukuanRentalMotor/config"
	"github.com/Adhi57/AplikasiPembukuanRentalMotor/database"
	"github.com/Adhi57/AplikasiPembukuanRentalMotor/handlers"
)

func main() {
	cfg := config.Load()

	if err := database.InitSchema(cfg.DBPath); err != nil {
		log.Fatalf("Schema initialization failed: %v", err)
	}

	db, err := database.Connect(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	env := &handlers.Env{DB: db, DataDir: cfg.DataDir, JWTSecret: cfg.JWTSecret}
	router := mux.NewRouter()
	handlers.RegisterRoutes(router, env)

	listenAddr := fmt.Sprintf("127.0.0.1:%d", cfg.Port)
	log.Printf("Starting server on %s (database %s)", listenAddr, cfg.DBPath)
	log.Fatal(http.ListenAndServe(listenAddr, router))
}
