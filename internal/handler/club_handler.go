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

type ClubHandler struct {
	service service.ClubService
}

func NewClubHandler(service service.ClubService) *ClubHandler {
	return &ClubHandler{service: service}
}

func (h *ClubHandler) GetAllClubs(c *gin.Context) {
	clubs, err := h.service.GetAllClubs(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"clubs": clubs})
}

func (h *ClubHandler) GetClub(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid club id")
		return
	}

	club, err := h.service.GetClub(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"club": club})
}

func (h *ClubHandler) CreateClub(c *gin.Context) {
	var input dto.CreateClubInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, validator.FormatValidationError(err))
		return
	}

	club, err := h.service.CreateClub(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"message": "Club created successfully",
		"club":    club,
	})
}

func (h *ClubHandler) UpdateClub(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid club id")
		return
	}

	var input dto.UpdateClubInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, validator.FormatValidationError(err))
		return
	}

	club, err := h.service.UpdateClub(c.Request.Context(), id, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": "Club updated successfully",
		"club":    club,
	})
}

func (h *ClubHandler) DeleteClub(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid club id")
		return
	}

	if err := h.service.DeleteClub(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Club deleted successfully"})
}

func (h *ClubHandler) Join(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid club id")
		return
	}

	user := middleware.CurrentUser(c)
	if err := h.service.Join(c.Request.Context(), user, id); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"message": "Joined club successfully"})
}

func (h *ClubHandler) Leave(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid club id")
		return
	}

	user := middleware.CurrentUser(c)
	if err := h.service.Leave(c.Request.Context(), user, id); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Left club successfully"})
}

func (h *ClubHandler) MyMemberships(c *gin.Context) {
	user := middleware.CurrentUser(c)

	memberships, err := h.service.Memberships(c.Request.Context(), user.ID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"memberships": memberships})
}
