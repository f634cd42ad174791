// Package fakeapi is an in-memory stand-in for the remote votes API, used by
// tests. It mirrors the validation and status codes of the real endpoint.
package fakeapi

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/vncsmyrnk/votesender/internal/core/domain"
)

// Request is a recorded call to the API.
type Request struct {
	Method string
	Query  string
	Body   []byte
}

type Server struct {
	mu       sync.Mutex
	devices  map[string]*domain.Device
	requests []Request
}

func New() *Server {
	return &Server{
		devices: make(map[string]*domain.Device),
	}
}

// Start runs the API on an httptest server closed at test cleanup.
func Start(t *testing.T) (*Server, *httptest.Server) {
	t.Helper()

	s := New()
	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)
	return s, ts
}

func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(s.record)

	r.Route("/api", func(r chi.Router) {
		r.Route("/votes", func(r chi.Router) {
			r.Get("/", s.getDevices)
			r.Post("/", s.post)
			r.Delete("/", s.remove)
		})
	})

	return r
}

func (s *Server) AddDevice(name string) *domain.Device {
	s.mu.Lock()
	defer s.mu.Unlock()

	device := &domain.Device{ID: uuid.New().String(), Name: name}
	s.devices[device.ID] = device
	return device
}

func (s *Server) Device(id string) (domain.Device, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	device, ok := s.devices[id]
	if !ok {
		return domain.Device{}, false
	}
	out := *device
	out.Votes = append([]domain.DeviceVote(nil), device.Votes...)
	return out, true
}

func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Request(nil), s.requests...)
}

func (s *Server) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		r.Body.Close()
		r.Body = io.NopCloser(bytes.NewReader(body))

		s.mu.Lock()
		s.requests = append(s.requests, Request{Method: r.Method, Query: r.URL.RawQuery, Body: body})
		s.mu.Unlock()

		next.ServeHTTP(w, r)
	})
}

func (s *Server) post(w http.ResponseWriter, r *http.Request) {
	var req map[string]any
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusInternalServerError, errorBody("Internal server error"))
		return
	}

	if req["action"] == "createDevice" {
		name, ok := req["deviceName"].(string)
		if !ok || name == "" {
			writeJSON(w, http.StatusBadRequest, errorBody("deviceName is required and must be a string"))
			return
		}
		device := s.AddDevice(name)
		writeJSON(w, http.StatusCreated, map[string]string{"id": device.ID})
		return
	}

	deviceID, ok := req["deviceId"].(string)
	if !ok || deviceID == "" {
		writeJSON(w, http.StatusBadRequest, errorBody("deviceId is required and must be a string"))
		return
	}

	value, ok := req["voteValue"].(float64)
	if !ok || value < 1 || value > 5 {
		writeJSON(w, http.StatusBadRequest, errorBody("voteValue is required and must be a number between 1 and 5"))
		return
	}

	s.mu.Lock()
	device, found := s.devices[deviceID]
	var vote domain.DeviceVote
	if found {
		vote = domain.DeviceVote{ID: uuid.New().String(), Value: int(value), CreatedAt: time.Now().UTC()}
		device.Votes = append(device.Votes, vote)
	}
	s.mu.Unlock()

	if !found {
		writeJSON(w, http.StatusInternalServerError, errorBody("Internal server error"))
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"id": vote.ID})
}

func (s *Server) getDevices(w http.ResponseWriter, r *http.Request) {
	deviceID := r.URL.Query().Get("deviceId")
	if deviceID != "" {
		// a failed uuid cast is swallowed by the real route
		if _, err := uuid.Parse(deviceID); err != nil {
			writeJSON(w, http.StatusOK, []domain.Device{})
			return
		}

		device, ok := s.Device(deviceID)
		if !ok {
			writeJSON(w, http.StatusNotFound, errorBody("Device not found"))
			return
		}
		writeJSON(w, http.StatusOK, device)
		return
	}

	s.mu.Lock()
	devices := make([]domain.Device, 0, len(s.devices))
	for _, d := range s.devices {
		devices = append(devices, *d)
	}
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, devices)
}

func (s *Server) remove(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	deviceID := q.Get("deviceId")
	voteID := q.Get("voteId")

	s.mu.Lock()
	defer s.mu.Unlock()

	switch {
	case voteID != "":
		for _, d := range s.devices {
			for i, v := range d.Votes {
				if v.ID == voteID {
					d.Votes = append(d.Votes[:i], d.Votes[i+1:]...)
					break
				}
			}
		}
		writeJSON(w, http.StatusOK, map[string]string{"message": "Vote deleted successfully"})
	case deviceID != "" && q.Get("deleteAllVotes") == "true":
		if d, ok := s.devices[deviceID]; ok {
			d.Votes = nil
		}
		writeJSON(w, http.StatusOK, map[string]string{"message": "All votes deleted successfully"})
	case deviceID != "":
		delete(s.devices, deviceID)
		writeJSON(w, http.StatusOK, map[string]string{"message": "Device deleted successfully"})
	default:
		writeJSON(w, http.StatusBadRequest, errorBody("deviceId or voteId is required"))
	}
}

func errorBody(msg string) map[string]string {
	return map[string]string{"error": msg}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
