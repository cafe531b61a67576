package handler

import (
	"context"
	"net/http"

	"github.com/wadjakorntonsri/go-job-board/pkg/bootstrap"
	"github.com/wadjakorntonsri/go-job-board/pkg/config"
)

var mux http.Handler

func init() {
	cfg := config.Load()

	// Note: On Vercel, a local sqlite file is ephemeral unless DATABASE_URL points at Turso or Postgres
	app, err := bootstrap.New(context.Background(), cfg)
	if err != nil {
		panic(err)
	}
	mux = app.Handler
}

// Handler is the entrypoint for Vercel
func Handler(w http.ResponseWriter, r *http.Request) {
	mux.ServeHTTP(w, r)
}
