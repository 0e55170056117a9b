package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"unilink.id/campusclubs/internal/dto"
	"unilink.id/campusclubs/internal/middleware"
	"unilink.id/campusclubs/internal/model"
	"unilink.id/campusclubs/internal/service"
	"unilink.id/campusclubs/pkg/response"
	"unilink.id/campusclubs/pkg/validator"
)

type AnnouncementHandler struct {
	service       service.AnnouncementService
	maxUploadSize int64
}

func NewAnnouncementHandler(service service.AnnouncementService, maxUploadSize int64) *AnnouncementHandler {
	return &AnnouncementHandler{service: service, maxUploadSize: maxUploadSize}
}

func (h *AnnouncementHandler) GetAllAnnouncements(c *gin.Context) {
	announcements, err := h.service.GetAllAnnouncements(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"announcements": announcements})
}

func (h *AnnouncementHandler) GetAnnouncement(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid announcement id")
		return
	}

	announcement, err := h.service.GetAnnouncement(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"announcement": announcement})
}

func (h *AnnouncementHandler) GetClubAnnouncements(c *gin.Context) {
	clubID, err := uuid.Parse(c.Param("clubId"))
	if err != nil {
		response.BadRequest(c, "Invalid club id")
		return
	}

	announcements, err := h.service.GetClubAnnouncements(c.Request.Context(), clubID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"announcements": announcements})
}

func (h *AnnouncementHandler) CreateAnnouncement(c *gin.Context) {
	var input dto.CreateAnnouncementInput
	if err := c.ShouldBind(&input); err != nil {
		response.BadRequest(c, validator.FormatValidationError(err))
		return
	}

	poster, err := h.posterFromForm(c)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user := middleware.CurrentUser(c)
	announcement, err := h.service.CreateAnnouncement(c.Request.Context(), user, input, poster)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"message":      "Announcement submitted for approval",
		"announcement": announcement,
	})
}

func (h *AnnouncementHandler) UpdateAnnouncement(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid announcement id")
		return
	}

	var input dto.UpdateAnnouncementInput
	if err := c.ShouldBind(&input); err != nil {
		response.BadRequest(c, validator.FormatValidationError(err))
		return
	}

	poster, err := h.posterFromForm(c)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user := middleware.CurrentUser(c)
	announcement, err := h.service.UpdateAnnouncement(c.Request.Context(), user, id, input, poster)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message":      "Announcement updated successfully",
		"announcement": announcement,
	})
}

func (h *AnnouncementHandler) DeleteAnnouncement(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid announcement id")
		return
	}

	user := middleware.CurrentUser(c)
	if err := h.service.DeleteAnnouncement(c.Request.Context(), user, id); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Announcement deleted successfully"})
}

func (h *AnnouncementHandler) Approve(c *gin.Context) {
	h.review(c, h.service.Approve, "Announcement approved")
}

func (h *AnnouncementHandler) Reject(c *gin.Context) {
	h.review(c, h.service.Reject, "Announcement rejected")
}

func (h *AnnouncementHandler) review(
	c *gin.Context,
	apply func(ctx context.Context, admin *model.User, id uuid.UUID, feedback *string) (*model.Announcement, error),
	message string,
) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid announcement id")
		return
	}

	// Feedback body is optional on approval.
	var input dto.ReviewAnnouncementInput
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&input); err != nil {
			response.BadRequest(c, validator.FormatValidationError(err))
			return
		}
	}

	admin := middleware.CurrentUser(c)
	announcement, err := apply(c.Request.Context(), admin, id, input.Feedback)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message":      message,
		"announcement": announcement,
	})
}

// posterFromForm extracts the optional poster upload, enforcing the size cap.
func (h *AnnouncementHandler) posterFromForm(c *gin.Context) (*dto.PosterFile, error) {
	fileHeader, err := c.FormFile("poster")
	if err != nil {
		return nil, nil
	}

	if h.maxUploadSize > 0 && fileHeader.Size > h.maxUploadSize {
		return nil, fmt.Errorf("poster exceeds the maximum upload size of %d bytes", h.maxUploadSize)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to read poster upload")
	}

	return &dto.PosterFile{Reader: file, FileName: fileHeader.Filename}, nil
}
