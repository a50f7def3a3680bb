package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/matt-g-everett/flipbook/desk"
)

type fakeButton struct {
	presses int
}

func (b *fakeButton) Press() { b.presses++ }

func newTestApi() (*Api, *fakeButton) {
	b := new(fakeButton)
	a := NewApi(b, func() desk.Status {
		return desk.Status{Active: true, Animation: "ForwardFlip", ElapsedMs: 400, DurationMs: 1000, Queued: b.presses}
	})
	return a, b
}

func TestFlipPressesButton(t *testing.T) {
	a, b := newTestApi()
	for i := 0; i < 2; i++ {
		rec := httptest.NewRecorder()
		a.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/flip", nil))
		if rec.Code != http.StatusAccepted {
			t.Fatalf("status %d, want 202", rec.Code)
		}
	}
	if b.presses != 2 {
		t.Fatalf("presses %d, want 2", b.presses)
	}
}

func TestFlipRejectsGet(t *testing.T) {
	a, b := newTestApi()
	rec := httptest.NewRecorder()
	a.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/flip", nil))
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status %d, want 405", rec.Code)
	}
	if b.presses != 0 {
		t.Fatalf("GET pressed the button")
	}
}

func TestStatus(t *testing.T) {
	a, _ := newTestApi()
	rec := httptest.NewRecorder()
	a.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/status", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}

	var st desk.Status
	if err := json.NewDecoder(rec.Body).Decode(&st); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !st.Active || st.Animation != "ForwardFlip" || st.ElapsedMs != 400 || st.DurationMs != 1000 {
		t.Fatalf("decoded status %+v", st)
	}
}
