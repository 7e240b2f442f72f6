package api

import (
	"errors"
	"net/http"

	reqdto "github.com/rico33631/smart-park/internal/handler/dto/request"
	resdto "github.com/rico33631/smart-park/internal/handler/dto/response"
	"github.com/rico33631/smart-park/internal/handler/httperr"
	"github.com/rico33631/smart-park/internal/usecase/commands"
	"github.com/rico33631/smart-park/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	cmds commands.PaymentCommands
	q    queries.PaymentQueries
}

func NewPaymentHandler(cmds commands.PaymentCommands, q queries.PaymentQueries) *PaymentHandler {
	return &PaymentHandler{cmds: cmds, q: q}
}

// @Summary Process payment
// @Description Settle the charge for a pending booking
// @Tags payments
// @Accept json
// @Produce json
// @Param request body reqdto.ProcessPaymentRequest true "Payment request"
// @Success 201 {object} resdto.PaymentResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /payments/process [post]
func (h *PaymentHandler) Process(c *gin.Context) {
	var req reqdto.ProcessPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	view, err := h.cmds.ProcessPayment(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrBookingNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
		case errors.Is(err, commands.ErrAlreadyPaid):
			httperr.AbortWithError(c, http.StatusConflict, err, "Booking already paid", nil)
		case errors.Is(err, commands.ErrInvalidBookingState):
			httperr.AbortWithError(c, http.StatusConflict, err, "Booking state does not allow payment", nil)
		case errors.Is(err, commands.ErrSpaceUnavailable):
			httperr.AbortWithError(c, http.StatusConflict, err, "Space no longer available for the booked time", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}
	c.JSON(http.StatusCreated, resdto.FromPaymentView(view))
}

// @Summary Get payment
// @Description Get payment details by reference
// @Tags payments
// @Produce json
// @Param reference path string true "Payment reference"
// @Success 200 {object} resdto.PaymentResponse
// @Failure 404 {object} map[string]string
// @Router /payments/{reference} [get]
func (h *PaymentHandler) Get(c *gin.Context) {
	view, err := h.q.GetByReference(c.Request.Context(), c.Param("reference"))
	if err != nil {
		if errors.Is(err, queries.ErrPaymentNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Payment not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPaymentView(view))
}
