package api

import (
	"net/http"

	reqdto "padel-club-api/internal/handler/dto/request"
	"padel-club-api/internal/usecase"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	paymentUseCase usecase.PaymentUseCase
}

func NewPaymentHandler(paymentUseCase usecase.PaymentUseCase) *PaymentHandler {
	return &PaymentHandler{
		paymentUseCase: paymentUseCase,
	}
}

func (h *PaymentHandler) Charge(c *gin.Context) {
	var req reqdto.ChargeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Requête invalide",
		})
		return
	}

	tx, err := h.paymentUseCase.SimulateCharge(c.Request.Context(), usecase.ChargeParams{
		Amount:        req.Amount,
		ReservationID: req.ReservationID,
		SplitPayment:  req.SplitPayment,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Erreur interne du serveur",
		})
		return
	}

	c.JSON(http.StatusCreated, tx)
}
