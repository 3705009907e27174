package handler

import (
	"encoding/json"
	"net/http"

	"motovasiya/internal/motorcycles/service"
	"motovasiya/pkg/config"
	httputil "motovasiya/pkg/http"
	"motovasiya/pkg/logger"
	"motovasiya/pkg/middleware"
	"motovasiya/pkg/model"

	"github.com/julienschmidt/httprouter"
)

type MotorcycleHandler struct {
	service service.MotorcycleService
	cfg     *config.Config
	log     *logger.Logger
}

func NewMotorcycleHandler(service service.MotorcycleService, cfg *config.Config) *MotorcycleHandler {
	return &MotorcycleHandler{
		service: service,
		cfg:     cfg,
		log:     cfg.Log,
	}
}

// GetAll lists motorcycles with the same visibility split as instructors:
// anonymous callers see active bikes only.
func (h *MotorcycleHandler) GetAll(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	_, authenticated := middleware.ClaimsFrom(r.Context())

	motorcycles, err := h.service.GetAll(r.Context(), authenticated)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "GetAll", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, motorcycles); err != nil {
		h.log.Error("failed to write success response", "handler", "GetAll", "error", err)
	}
}

func (h *MotorcycleHandler) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var motorcycle model.Motorcycle
	if err := json.NewDecoder(r.Body).Decode(&motorcycle); err != nil {
		if writeErr := httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{
			Error: "Invalid request body",
		}); writeErr != nil {
			h.log.Error("failed to write JSON response", "handler", "Create", "error", writeErr)
		}
		return
	}

	if err := h.service.Create(r.Context(), &motorcycle); err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Create", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteCreated(w, motorcycle); err != nil {
		h.log.Error("failed to write created response", "handler", "Create", "error", err)
	}
}

func (h *MotorcycleHandler) Delete(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")

	if err := h.service.Delete(r.Context(), id); err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Delete", "error", writeErr)
		}
		return
	}

	httputil.WriteNoContent(w)
}

func (h *MotorcycleHandler) RegisterRoutes(router *httprouter.Router) {
	requireAuth := middleware.RequireAuth(h.cfg.AuthSecret, h.log)
	optionalAuth := middleware.OptionalAuth(h.cfg.AuthSecret)

	router.GET("/api/motorcycles", optionalAuth(h.GetAll))
	router.POST("/api/motorcycles", requireAuth(h.Create))
	router.DELETE("/api/motorcycles/:id", requireAuth(h.Delete))
}
