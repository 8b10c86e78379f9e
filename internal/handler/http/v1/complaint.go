package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/bodycam_dashboard/internal/models"
)

const (
	msgComplaintSubmitted = "Complaint submitted successfully!"
	msgComplaintFailed    = "Error submitting complaint. Please try again."
	msgComplaintPending   = "This complaint has already been submitted."
)

// @Summary Submit a complaint
// @Description Send the complaint form to the hosted store once. On success the returned draft is empty, on failure it is returned unchanged.
// @Tags Complaints
// @Accept json
// @Produce json
// @Param Idempotency-Key header string false "Client generated key for this submission"
// @Param complaint body ComplaintRequest true "Complaint form"
// @Success 201 {object} ComplaintResponse
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 409 {object} ComplaintResponse "Duplicate submission"
// @Failure 429 {object} map[string]string "Too many requests"
// @Failure 502 {object} ComplaintResponse "Submission failed"
// @Router /complaints [post]
func (h *Handler) submitComplaint(c *gin.Context) {
	var input ComplaintRequest
	log := h.logger.WithField("method", "submitComplaint")

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

	draft := DTOToDraft(input)
	err := h.complaintService.Submit(c.Request.Context(), draft, c.GetHeader("Idempotency-Key"))
	switch {
	case err == nil:
		c.JSON(http.StatusCreated, ComplaintResponse{Message: msgComplaintSubmitted, Draft: *draft})
	case errors.Is(err, models.ErrInvalidDraft):
		c.JSON(http.StatusBadRequest, gin.H{"error": "all complaint fields are required"})
	case errors.Is(err, models.ErrDuplicateSubmission):
		c.JSON(http.StatusConflict, ComplaintResponse{Error: msgComplaintPending, Draft: *draft})
	default:
		// причина уже записана сервисом, пользователю одно общее сообщение
		c.JSON(http.StatusBadGateway, ComplaintResponse{Error: msgComplaintFailed, Draft: *draft})
	}
}

// @Summary List complaints
// @Description Fetch every stored complaint in one request.
// @Tags Complaints
// @Produce json
// @Success 200 {array} models.Complaint
// @Failure 502 {object} map[string]string "Fetch failed"
// @Router /complaints [get]
func (h *Handler) listComplaints(c *gin.Context) {
	log := h.logger.WithField("method", "listComplaints")

	complaints, err := h.complaintService.List(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to list complaints")
		c.JSON(http.StatusBadGateway, gin.H{"error": "could not load complaints"})
		return
	}
	c.JSON(http.StatusOK, complaints)
}
