package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"orders-api/internal/service"
)

type registerInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

// Register
// @Summary Register
// @Description Registers a new user with a unique email
// @ID register
// @Accept json
// @Produce json
// @Param input body registerInput true "credentials"
// @Success 201 {object} statusResponse
// @Failure 400,409 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /register [post]
func (h *Handler) Register(c *gin.Context) {
	var in registerInput
	if err := c.ShouldBindJSON(&in); err != nil {
		newErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if in.Email == "" || in.Password == "" {
		newErrorResponse(c, http.StatusBadRequest, "Email and password are required.")
		return
	}

	if err := h.authSvc.Register(in.Email, in.Password); err != nil {
		switch {
		case errors.Is(err, service.ErrConflict):
			newErrorResponse(c, http.StatusConflict, "User already exists.")
		case errors.Is(err, service.ErrValidation):
			newErrorResponse(c, http.StatusBadRequest, err.Error())
		default:
			newErrorResponse(c, http.StatusInternalServerError, err.Error())
		}
		return
	}

	c.JSON(http.StatusCreated, statusResponse{Status: "User created!"})
}

// Login
// @Summary Login
// @Description Exchanges credentials for a bearer token
// @ID login
// @Accept json
// @Produce json
// @Param input body loginInput true "credentials"
// @Success 200 {object} tokenResponse
// @Failure 400,401 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /login [post]
func (h *Handler) Login(c *gin.Context) {
	var in loginInput
	if err := c.ShouldBindJSON(&in); err != nil {
		newErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if in.Email == "" || in.Password == "" {
		newErrorResponse(c, http.StatusBadRequest, "Email and password are required.")
		return
	}

	token, err := h.authSvc.Login(in.Email, in.Password)
	if err != nil {
		if errors.Is(err, service.ErrBadCreds) {
			newErrorResponse(c, http.StatusUnauthorized, "invalid credentials")
			return
		}
		newErrorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, tokenResponse{Token: token})
}
