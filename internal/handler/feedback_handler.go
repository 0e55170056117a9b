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

type FeedbackHandler struct {
	service service.FeedbackService
}

func NewFeedbackHandler(service service.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{service: service}
}

func (h *FeedbackHandler) Submit(c *gin.Context) {
	var input dto.SubmitFeedbackInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, validator.FormatValidationError(err))
		return
	}

	user := middleware.CurrentUser(c)
	feedback, err := h.service.Submit(c.Request.Context(), user, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"message":  "Feedback submitted successfully",
		"feedback": feedback,
	})
}

func (h *FeedbackHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid feedback id")
		return
	}

	var input dto.UpdateFeedbackInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, validator.FormatValidationError(err))
		return
	}

	user := middleware.CurrentUser(c)
	feedback, err := h.service.Update(c.Request.Context(), user, id, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message":  "Feedback updated successfully",
		"feedback": feedback,
	})
}

func (h *FeedbackHandler) ByEvent(c *gin.Context) {
	eventID, err := uuid.Parse(c.Param("eventId"))
	if err != nil {
		response.BadRequest(c, "Invalid event id")
		return
	}

	rows, summary, err := h.service.ByEvent(c.Request.Context(), eventID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"feedback": rows,
		"summary":  summary,
	})
}

func (h *FeedbackHandler) Mine(c *gin.Context) {
	user := middleware.CurrentUser(c)

	rows, err := h.service.Mine(c.Request.Context(), user.ID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"feedback": rows})
}
