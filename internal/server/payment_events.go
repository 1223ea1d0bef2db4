package server

import (
	"net/http"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	paymentdomain "github.com/smallbiznis/easysale/internal/payment/domain"
)

type createPaymentEventRequest struct {
	TransactionID int64  `json:"transaction_id"`
	EventType     string `json:"event_type"`
	Status        string `json:"status"`
	HoldReason    string `json:"hold_reason"`
	Amount        string `json:"amount"`
}

// CreatePaymentEvent ingests a gateway notification for later authorization
// checks.
func (s *Server) CreatePaymentEvent(c *gin.Context) {
	var req createPaymentEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	amount := decimal.Zero
	if raw := strings.TrimSpace(req.Amount); raw != "" {
		parsed, err := decimal.NewFromString(raw)
		if err != nil {
			AbortWithError(c, newValidationError("amount", "invalid_amount", "invalid amount"))
			return
		}
		amount = parsed
	}

	resp, err := s.paymentSvc.Record(c.Request.Context(), paymentdomain.RecordRequest{
		TransactionID: snowflake.ID(req.TransactionID),
		EventType:     strings.TrimSpace(req.EventType),
		Status:        strings.TrimSpace(req.Status),
		HoldReason:    strings.TrimSpace(req.HoldReason),
		Amount:        amount,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}
