package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"meetsum/service"
	"meetsum/types"
)

type MailHandler struct {
	mailService service.MailSender
}

func NewMailHandler(mailService service.MailSender) *MailHandler {
	return &MailHandler{
		mailService: mailService,
	}
}

// HandleSendEmail emails a previously generated summary to a comma-separated
// recipient list.
func (h *MailHandler) HandleSendEmail(c *gin.Context) {
	var req types.SendEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: "Invalid request body"})
		return
	}

	if req.Summary == "" || req.Recipients == "" {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: "Missing summary or recipients"})
		return
	}

	recipients := service.SplitRecipients(req.Recipients)
	if len(recipients) == 0 {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: "Missing summary or recipients"})
		return
	}

	if err := h.mailService.SendSummary(recipients, req.Summary); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.SendEmailResponse{Success: "Email sent"})
}
