package response

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"unilink.id/campusclubs/pkg/apperror"
)

// Success writes the {success:true, ...} envelope used by every handler.
// Extra keys (e.g. "club", "token") are merged into the envelope.
func Success(c *gin.Context, status int, extra gin.H) {
	body := gin.H{"success": true}
	for k, v := range extra {
		body[k] = v
	}
	c.JSON(status, body)
}

// Error writes a {success:false, message} envelope with the status derived
// from the apperror taxonomy.
func Error(c *gin.Context, err error) {
	code := apperror.MapErrorToStatus(err)

	// Log internal errors
	if code == http.StatusInternalServerError {
		log.Printf("[Internal Error]: %v", err)
		c.JSON(code, gin.H{"success": false, "message": apperror.ErrInternal.Error()})
		return
	}

	c.JSON(code, gin.H{"success": false, "message": err.Error()})
}

// BadRequest writes a 400 with the given message, used for binding failures.
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": message})
}
