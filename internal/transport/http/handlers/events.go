package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/fireflysocial/events-service/internal/application/event"
	"github.com/fireflysocial/events-service/internal/domain"
	"github.com/fireflysocial/events-service/internal/transport/http/dto"
	"github.com/fireflysocial/events-service/internal/transport/http/middleware"
	"github.com/fireflysocial/events-service/internal/transport/http/response"
	"github.com/fireflysocial/events-service/internal/transport/http/validate"
)

type EventsHandler struct {
	svc *event.Service
}

func NewEventsHandler(svc *event.Service) *EventsHandler {
	return &EventsHandler{svc: svc}
}

func eventIDParam(r *http.Request) (string, error) {
	id := chi.URLParam(r, "event_id")
	if !validate.IsUUID(id) {
		return "", domain.ErrValidationMeta("INVALID_PARAM", "invalid path param", map[string]string{
			"event_id": "must be uuid",
		})
	}
	return id, nil
}

// List is public; an authenticated viewer gets isParticipating computed
// against their own participation rows.
func (h *EventsHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	limit, _ := strconv.Atoi(q.Get("limit"))

	for _, key := range []string{"since_id", "until_id"} {
		if v := q.Get(key); v != "" && !validate.IsUUID(v) {
			response.Err(w, r, domain.ErrValidationMeta("INVALID_PARAM", "invalid query param", map[string]string{
				key: "must be uuid",
			}))
			return
		}
	}

	items, err := h.svc.List(r.Context(), event.ListQuery{
		Type:     q.Get("type"),
		Limit:    limit,
		SinceID:  q.Get("since_id"),
		UntilID:  q.Get("until_id"),
		ViewerID: middleware.UserID(r),
	})
	if err != nil {
		response.Err(w, r, err)
		return
	}

	response.Data(w, http.StatusOK, items)
}

func (h *EventsHandler) Show(w http.ResponseWriter, r *http.Request) {
	id, err := eventIDParam(r)
	if err != nil {
		response.Err(w, r, err)
		return
	}

	packed, err := h.svc.Show(r.Context(), id, middleware.UserID(r))
	if err != nil {
		response.Err(w, r, err)
		return
	}

	response.Data(w, http.StatusOK, packed)
}

func (h *EventsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateEventReq
	if err := validate.DecodeJSON(r, &req); err != nil {
		response.Err(w, r, domain.ErrValidationMeta("INVALID_PARAM", "invalid json body", map[string]string{
			"body": "malformed JSON or invalid fields",
		}))
		return
	}

	packed, err := h.svc.Create(r.Context(), event.CreateCmd{
		ActorID:     middleware.UserID(r),
		Title:       req.Title,
		Description: req.Description,
		BannerID:    req.BannerID,
		EndsAt:      req.EndsAt,
	})
	if err != nil {
		response.Err(w, r, err)
		return
	}

	response.Data(w, http.StatusCreated, packed)
}

func (h *EventsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := eventIDParam(r)
	if err != nil {
		response.Err(w, r, err)
		return
	}

	var req dto.UpdateEventReq
	if err := validate.DecodeJSON(r, &req); err != nil {
		response.Err(w, r, domain.ErrValidationMeta("INVALID_PARAM", "invalid json body", map[string]string{
			"body": "malformed JSON or invalid fields",
		}))
		return
	}

	packed, err := h.svc.Update(r.Context(), event.UpdateCmd{
		ActorID:   middleware.UserID(r),
		ActorRole: middleware.Role(r),
		EventID:   id,
		Patch: domain.EventPatch{
			Title:       req.Title,
			Description: req.Description,
			EndsAt:      req.EndsAt,
			BannerID:    req.BannerID,
		},
	})
	if err != nil {
		response.Err(w, r, err)
		return
	}

	response.Data(w, http.StatusOK, packed)
}

func (h *EventsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := eventIDParam(r)
	if err != nil {
		response.Err(w, r, err)
		return
	}

	if err := h.svc.Delete(r.Context(), id, middleware.UserID(r), middleware.Role(r)); err != nil {
		response.Err(w, r, err)
		return
	}

	response.Data(w, http.StatusOK, response.Success{Success: true})
}

func (h *EventsHandler) Participate(w http.ResponseWriter, r *http.Request) {
	id, err := eventIDParam(r)
	if err != nil {
		response.Err(w, r, err)
		return
	}

	if err := h.svc.Participate(r.Context(), id, middleware.UserID(r)); err != nil {
		response.Err(w, r, err)
		return
	}

	response.Data(w, http.StatusOK, response.Success{Success: true})
}

func (h *EventsHandler) Leave(w http.ResponseWriter, r *http.Request) {
	id, err := eventIDParam(r)
	if err != nil {
		response.Err(w, r, err)
		return
	}

	if err := h.svc.Leave(r.Context(), id, middleware.UserID(r)); err != nil {
		response.Err(w, r, err)
		return
	}

	response.Data(w, http.StatusOK, response.Success{Success: true})
}
