package api

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/matt-g-everett/flipbook/desk"
)

// Presser is the button the API drives.
type Presser interface {
	Press()
}

// Api exposes the flip button over HTTP for headless runs.
type Api struct {
	button Presser
	status func() desk.Status
	mux    *http.ServeMux
}

// NewApi creates an instance of an Api.
func NewApi(button Presser, status func() desk.Status) *Api {
	a := new(Api)
	a.button = button
	a.status = status
	a.mux = http.NewServeMux()
	a.mux.HandleFunc("/flip", a.handleFlip)
	a.mux.HandleFunc("/status", a.handleStatus)
	return a
}

// Handler returns the routes of the API.
func (a *Api) Handler() http.Handler {
	return a.mux
}

func (a *Api) handleFlip(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	a.button.Press()
	w.WriteHeader(http.StatusAccepted)
}

func (a *Api) handleStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(a.status()); err != nil {
		log.Printf("encode status: %v", err)
	}
}

// Serve listens on addr until ctx is cancelled. Requests see ctx as their base context.
func (a *Api) Serve(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:        addr,
		Handler:     a.mux,
		BaseContext: func(net.Listener) context.Context { return ctx },
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	log.Printf("Listening on %s...", addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
