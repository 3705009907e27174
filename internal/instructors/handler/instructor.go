package handler

import (
	"encoding/json"
	"net/http"

	"motovasiya/internal/instructors/service"
	"motovasiya/pkg/config"
	httputil "motovasiya/pkg/http"
	"motovasiya/pkg/logger"
	"motovasiya/pkg/middleware"
	"motovasiya/pkg/model"

	"github.com/julienschmidt/httprouter"
)

type InstructorHandler struct {
	service service.InstructorService
	cfg     *config.Config
	log     *logger.Logger
}

func NewInstructorHandler(service service.InstructorService, cfg *config.Config) *InstructorHandler {
	return &InstructorHandler{
		service: service,
		cfg:     cfg,
		log:     cfg.Log,
	}
}

// GetAll lists instructors. Anonymous callers see only active instructors;
// a valid bearer token widens the listing to the whole roster.
func (h *InstructorHandler) GetAll(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	_, authenticated := middleware.ClaimsFrom(r.Context())

	instructors, err := h.service.GetAll(r.Context(), authenticated)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "GetAll", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, instructors); err != nil {
		h.log.Error("failed to write success response", "handler", "GetAll", "error", err)
	}
}

func (h *InstructorHandler) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var instructor model.Instructor
	if err := json.NewDecoder(r.Body).Decode(&instructor); err != nil {
		if writeErr := httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{
			Error: "Invalid request body",
		}); writeErr != nil {
			h.log.Error("failed to write JSON response", "handler", "Create", "error", writeErr)
		}
		return
	}

	if err := h.service.Create(r.Context(), &instructor); err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Create", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteCreated(w, instructor); err != nil {
		h.log.Error("failed to write created response", "handler", "Create", "error", err)
	}
}

func (h *InstructorHandler) Update(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")

	var updates model.InstructorUpdate
	if err := json.NewDecoder(r.Body).Decode(&updates); err != nil {
		if writeErr := httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{
			Error: "Invalid request body",
		}); writeErr != nil {
			h.log.Error("failed to write JSON response", "handler", "Update", "error", writeErr)
		}
		return
	}

	instructor, err := h.service.Update(r.Context(), id, &updates)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Update", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, instructor); err != nil {
		h.log.Error("failed to write success response", "handler", "Update", "error", err)
	}
}

func (h *InstructorHandler) ToggleStatus(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")

	instructor, err := h.service.ToggleStatus(r.Context(), id)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "ToggleStatus", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, instructor); err != nil {
		h.log.Error("failed to write success response", "handler", "ToggleStatus", "error", err)
	}
}

func (h *InstructorHandler) Delete(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")

	if err := h.service.Delete(r.Context(), id); err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Delete", "error", writeErr)
		}
		return
	}

	httputil.WriteNoContent(w)
}

func (h *InstructorHandler) RegisterRoutes(router *httprouter.Router) {
	requireAuth := middleware.RequireAuth(h.cfg.AuthSecret, h.log)
	optionalAuth := middleware.OptionalAuth(h.cfg.AuthSecret)

	router.GET("/api/instructors", optionalAuth(h.GetAll))
	router.POST("/api/instructors", requireAuth(h.Create))
	router.PATCH("/api/instructors/:id", requireAuth(h.Update))
	router.DELETE("/api/instructors/:id", requireAuth(h.Delete))
	router.POST("/api/instructors/:id/toggle-status", requireAuth(h.ToggleStatus))
}
