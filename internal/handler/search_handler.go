package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"unilink.id/campusclubs/internal/service"
	"unilink.id/campusclubs/pkg/response"
)

type SearchHandler struct {
	search service.SearchService
}

func NewSearchHandler(search service.SearchService) *SearchHandler {
	return &SearchHandler{search: search}
}

func (h *SearchHandler) Search(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		response.BadRequest(c, "Query parameter q is required")
		return
	}

	if h.search == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"success": false,
			"message": "Search is not available",
		})
		return
	}

	results, err := h.search.Search(query)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"results": results})
}
