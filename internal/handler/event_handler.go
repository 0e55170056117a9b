package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"unilink.id/campusclubs/internal/dto"
	"unilink.id/campusclubs/internal/middleware"
	"unilink.id/campusclubs/internal/service"
	"unilink.id/campusclubs/pkg/response"
	"unilink.id/campusclubs/pkg/validator"
)

type EventHandler struct {
	service service.EventService
}

func NewEventHandler(service service.EventService) *EventHandler {
	return &EventHandler{service: service}
}

func (h *EventHandler) GetAllEvents(c *gin.Context) {
	events, err := h.service.GetAllEvents(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"events": events})
}

func (h *EventHandler) GetEvent(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid event id")
		return
	}

	event, err := h.service.GetEvent(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"event": event})
}

func (h *EventHandler) CreateEvent(c *gin.Context) {
	clubID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid club id")
		return
	}

	var input dto.CreateEventInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, validator.FormatValidationError(err))
		return
	}

	user := middleware.CurrentUser(c)
	event, err := h.service.CreateEvent(c.Request.Context(), user, clubID, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"message": "Event created successfully",
		"event":   event,
	})
}

func (h *EventHandler) UpdateEvent(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid event id")
		return
	}

	var input dto.UpdateEventInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, validator.FormatValidationError(err))
		return
	}

	user := middleware.CurrentUser(c)
	event, err := h.service.UpdateEvent(c.Request.Context(), user, id, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": "Event updated successfully",
		"event":   event,
	})
}

func (h *EventHandler) DeleteEvent(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid event id")
		return
	}

	user := middleware.CurrentUser(c)
	if err := h.service.DeleteEvent(c.Request.Context(), user, id); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Event deleted successfully"})
}

func (h *EventHandler) Register(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid event id")
		return
	}

	user := middleware.CurrentUser(c)
	if err := h.service.Register(c.Request.Context(), user, id); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"message": "Registered for event successfully"})
}

func (h *EventHandler) Unregister(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid event id")
		return
	}

	user := middleware.CurrentUser(c)
	if err := h.service.Unregister(c.Request.Context(), user, id); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Unregistered from event successfully"})
}
