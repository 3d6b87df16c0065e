package main

import (
	"net/http"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"mandal-ledger-go/internal/config"
	"mandal-ledger-go/internal/database"
	httpserver "mandal-ledger-go/internal/http"
)

func main() {
	_ = godotenv.Load(".env")

	logrus.SetFormatter(&logrus.JSONFormatter{})

	cfg := config.Load()

	database.Connect()
	database.Migrate()
	database.SeedAdmin(cfg.AdminPhone, cfg.AdminPassword)

	r := httpserver.NewServer(cfg)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.ReqTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.ReqTimeoutSec) * time.Second,
	}
	logrus.Infof("listening on :%s", cfg.Port)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logrus.Fatal(err)
	}
}
