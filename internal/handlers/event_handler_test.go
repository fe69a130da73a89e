package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/tripondo/tripondo-backend/internal/models"
	"github.com/tripondo/tripondo-backend/internal/repositories"
	"github.com/tripondo/tripondo-backend/internal/services"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type stubEventRepo struct {
	events []*models.Event
}

var _ repositories.EventRepository = (*stubEventRepo)(nil)

func (r *stubEventRepo) Create(ctx context.Context, event *models.Event) error {
	event.ID = primitive.NewObjectID()
	r.events = append(r.events, event)
	return nil
}

func (r *stubEventRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Event, error) {
	for _, e := range r.events {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (r *stubEventRepo) FindAll(ctx context.Context) ([]*models.Event, error) {
	return r.events, nil
}

func (r *stubEventRepo) FindActive(ctx context.Context) ([]*models.Event, error) {
	active := []*models.Event{}
	for _, e := range r.events {
		if e.IsActive {
			active = append(active, e)
		}
	}
	return active, nil
}

func (r *stubEventRepo) Update(ctx context.Context, event *models.Event) error { return nil }

func (r *stubEventRepo) Delete(ctx context.Context, id primitive.ObjectID) error { return nil }

func TestGetAllEventsDefaultsToActive(t *testing.T) {
	gin.SetMode(gin.TestMode)
	repo := &stubEventRepo{}
	repo.Create(context.Background(), &models.Event{Title: "Open Mic", IsActive: true})
	repo.Create(context.Background(), &models.Event{Title: "Cancelled Gala", IsActive: false})

	h := NewEventHandler(services.NewEventService(repo, nil, nil))
	router := gin.New()
	router.GET("/events/get", h.GetAllEvents)

	list := func(target string) []map[string]interface{} {
		t.Helper()
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, target, nil)
		router.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("%s: status = %d, want %d", target, w.Code, http.StatusOK)
		}
		var body struct {
			Events []map[string]interface{} `json:"events"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("%s: decode: %v", target, err)
		}
		return body.Events
	}

	events := list("/events/get")
	if len(events) != 1 {
		t.Fatalf("default listing returned %d events, want 1 active", len(events))
	}
	if events[0]["title"] != "Open Mic" {
		t.Errorf("default listing returned %v, want the active event", events[0]["title"])
	}

	if events := list("/events/get?all=true"); len(events) != 2 {
		t.Errorf("all=true returned %d events, want 2", len(events))
	}
}
