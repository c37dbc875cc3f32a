package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apierrors "github.com/proptoken/proptoken-backend/internal/api/shared/errors"
)

// respondOK responds with a success envelope
func respondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, apierrors.Success(data))
}

// respondCreated responds with a success envelope and 201
func respondCreated(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, apierrors.Success(data))
}

// respondBadRequest responds with a bad request error
func respondBadRequest(c *gin.Context, message string, details ...string) {
	c.JSON(http.StatusBadRequest, apierrors.Failure(apierrors.NewBadRequestError(message, details...)))
}

// respondError maps err to a status and error envelope
func (h *handler) respondError(c *gin.Context, err error) {
	status, apiErr := apierrors.FromError(err, h.debug)
	c.JSON(status, apierrors.Failure(apiErr))
}
