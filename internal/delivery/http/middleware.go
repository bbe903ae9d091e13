package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

const (
	authorizationHeader = "Authorization"
	userCtx             = "userId"
)

func (h *Handler) userIdentity(c *gin.Context) {
	header := c.GetHeader(authorizationHeader)
	if header == "" {
		newErrorResponse(c, http.StatusUnauthorized, "missing auth header")
		return
	}
	if !strings.HasPrefix(header, "Bearer ") {
		newErrorResponse(c, http.StatusUnauthorized, "invalid auth header")
		return
	}

	claims, err := h.tokens.Parse(strings.TrimPrefix(header, "Bearer "))
	if err != nil {
		newErrorResponse(c, http.StatusUnauthorized, "invalid token")
		return
	}

	// A valid signature is not enough, the account behind it must still exist.
	if _, err := h.authSvc.UserByID(claims.UID); err != nil {
		newErrorResponse(c, http.StatusUnauthorized, "invalid token")
		return
	}

	c.Set(userCtx, claims.UID)
}

func getUserId(c *gin.Context) (uint, error) {
	v, ok := c.Get(userCtx)
	if !ok {
		return 0, errors.New("user id not found in context")
	}
	id, ok := v.(uint)
	if !ok {
		return 0, errors.New("user id has invalid type")
	}
	return id, nil
}
