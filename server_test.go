package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newTestServer(t *testing.T) (*Server, *fakeStore) {
	t.Helper()
	provider := &fakeProvider{}
	store := &fakeStore{}
	svc := newTestService(t, provider, store)
	srv := NewServer(Config{ListenAddr: ":0"}, svc, store, nil)
	return srv, store
}

func doRequest(t *testing.T, srv *Server, method, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	w := httptest.NewRecorder()
	srv.handler().ServeHTTP(w, req)
	return w
}

func TestHandleHealth(t *testing.T) {
	srv, _ := newTestServer(t)
	w := doRequest(t, srv, "GET", "/healthz")
	if w.Code != 200 {
		t.Fatalf("status = %d", w.Code)
	}
	if got := w.Header().Get("X-Request-ID"); got == "" {
		t.Error("missing X-Request-ID header")
	}
}

func TestHandleJob(t *testing.T) {
	srv, store := newTestServer(t)

	w := doRequest(t, srv, "GET", "/api/job?title=Registered+Nurse")
	if w.Code != 200 {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var rec JobRecord
	if err := json.Unmarshal(w.Body.Bytes(), &rec); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if rec.JobTitle != "Registered Nurse" || rec.Source != SourceOverride {
		t.Errorf("record = %s/%s", rec.JobTitle, rec.Source)
	}
	if rec.Risk.Year1Risk != 15 || rec.Risk.Year5Risk != 30 {
		t.Errorf("risks = %.0f/%.0f, want 15/30", rec.Risk.Year1Risk, rec.Risk.Year5Risk)
	}
	if len(store.recorded) != 1 {
		t.Errorf("recorded %d searches, want 1", len(store.recorded))
	}
}

func TestHandleJobValidation(t *testing.T) {
	srv, _ := newTestServer(t)

	if w := doRequest(t, srv, "GET", "/api/job"); w.Code != 400 {
		t.Errorf("missing title: status = %d, want 400", w.Code)
	}
	if w := doRequest(t, srv, "POST", "/api/job?title=Nurse"); w.Code != 405 {
		t.Errorf("wrong method: status = %d, want 405", w.Code)
	}
}

func TestHandleAutocomplete(t *testing.T) {
	provider := &fakeProvider{}
	store := NewLocalStore("")
	for _, jt := range []JobTitleEntry{
		{Title: "Nurse", SOCCode: "29-1141", IsPrimary: true},
		{Title: "Nurse Practitioner", SOCCode: "29-1171"},
	} {
		if err := store.AddJobTitle(jt); err != nil {
			t.Fatal(err)
		}
	}
	svc := newTestService(t, provider, &fakeStore{})
	srv := NewServer(Config{ListenAddr: ":0"}, svc, store, nil)

	w := doRequest(t, srv, "GET", "/api/autocomplete?q=nur")
	if w.Code != 200 {
		t.Fatalf("status = %d", w.Code)
	}
	var body struct {
		Suggestions []string `json:"suggestions"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if len(body.Suggestions) != 2 || body.Suggestions[0] != "Nurse" {
		t.Errorf("suggestions = %v", body.Suggestions)
	}

	// No matches still yields a JSON array, not null.
	w = doRequest(t, srv, "GET", "/api/autocomplete?q=zzz")
	if got := w.Body.String(); got != "{\"suggestions\":[]}\n" {
		t.Errorf("body = %q", got)
	}
}

func TestHandleRankingsAndRecent(t *testing.T) {
	provider := &fakeProvider{}
	store := NewLocalStore("")
	base := time.Now().UTC()
	if err := store.RecordSearch(searchRec("Cashier", 70, 90, "Very High", base)); err != nil {
		t.Fatal(err)
	}
	if err := store.RecordSearch(searchRec("Nurse", 15, 30, "Low to Moderate", base.Add(time.Minute))); err != nil {
		t.Fatal(err)
	}
	svc := newTestService(t, provider, store)
	srv := NewServer(Config{ListenAddr: ":0"}, svc, store, nil)

	w := doRequest(t, srv, "GET", "/api/jobs/highest-risk")
	var highest []JobRecordSummary
	if err := json.Unmarshal(w.Body.Bytes(), &highest); err != nil {
		t.Fatalf("decoding highest: %v", err)
	}
	if len(highest) == 0 || highest[0].JobTitle != "Cashier" {
		t.Errorf("highest = %+v", highest)
	}

	w = doRequest(t, srv, "GET", "/api/jobs/lowest-risk")
	var lowest []JobRecordSummary
	if err := json.Unmarshal(w.Body.Bytes(), &lowest); err != nil {
		t.Fatalf("decoding lowest: %v", err)
	}
	if len(lowest) == 0 || lowest[0].JobTitle != "Nurse" {
		t.Errorf("lowest = %+v", lowest)
	}

	w = doRequest(t, srv, "GET", "/api/searches/recent?limit=1")
	var recent []SearchRecord
	if err := json.Unmarshal(w.Body.Bytes(), &recent); err != nil {
		t.Fatalf("decoding recent: %v", err)
	}
	if len(recent) != 1 || recent[0].JobTitle != "Nurse" {
		t.Errorf("recent = %+v", recent)
	}

	w = doRequest(t, srv, "GET", "/api/searches/popular")
	var popular []SearchCount
	if err := json.Unmarshal(w.Body.Bytes(), &popular); err != nil {
		t.Fatalf("decoding popular: %v", err)
	}
	if len(popular) != 2 {
		t.Errorf("popular = %+v", popular)
	}
}

func TestHandleAdviceNotConfigured(t *testing.T) {
	srv, _ := newTestServer(t)
	if w := doRequest(t, srv, "GET", "/api/advice?title=Nurse"); w.Code != 404 {
		t.Errorf("status = %d, want 404 when advice is not configured", w.Code)
	}
}

func TestQueryLimit(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{"", 5},
		{"10", 10},
		{"0", 5},
		{"-3", 5},
		{"500", 5},
		{"abc", 5},
	}
	for _, tt := range tests {
		target := "/x"
		if tt.raw != "" {
			target += "?limit=" + tt.raw
		}
		req := httptest.NewRequest(http.MethodGet, target, nil)
		if got := queryLimit(req, 5); got != tt.want {
			t.Errorf("queryLimit(%q) = %d, want %d", tt.raw, got, tt.want)
		}
	}
}
