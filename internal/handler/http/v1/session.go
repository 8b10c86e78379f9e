package v1

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/bodycam_dashboard/internal/models"
)

// @Summary Sign up
// @Description Register a user with the hosted auth service. The session is returned as received.
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body CredentialsRequest true "Email and password"
// @Success 200 {object} object "Session"
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 401 {object} map[string]string "Rejected"
// @Failure 502 {object} map[string]string "Auth service unavailable"
// @Router /auth/signup [post]
func (h *Handler) signUp(c *gin.Context) {
	h.authenticate(c, "signUp", h.authService.SignUp)
}

// @Summary Sign in
// @Description Sign in with email and password through the hosted auth service.
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body CredentialsRequest true "Email and password"
// @Success 200 {object} object "Session"
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 401 {object} map[string]string "Rejected"
// @Failure 502 {object} map[string]string "Auth service unavailable"
// @Router /auth/signin [post]
func (h *Handler) signIn(c *gin.Context) {
	h.authenticate(c, "signIn", h.authService.SignIn)
}

type authCall func(ctx context.Context, creds models.Credentials) (models.Session, error)

func (h *Handler) authenticate(c *gin.Context, method string, call authCall) {
	var input CredentialsRequest
	log := h.logger.WithField("method", method)

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, err := call(c.Request.Context(), DTOToCredentials(input))
	if err != nil {
		if errors.Is(err, models.ErrAuthRejected) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": "authentication service unavailable"})
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(session))
}
