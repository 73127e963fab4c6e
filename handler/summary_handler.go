package handler

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"meetsum/service"
	"meetsum/types"
)

type SummaryHandler struct {
	extractService *service.ExtractService
	aiService      service.AIService
}

func NewSummaryHandler(extractService *service.ExtractService, aiService service.AIService) *SummaryHandler {
	return &SummaryHandler{
		extractService: extractService,
		aiService:      aiService,
	}
}

// HandleGenerateSummary accepts the multipart upload, extracts the
// transcript text and asks the completion provider for a summary.
func (h *SummaryHandler) HandleGenerateSummary(c *gin.Context) {
	file, header, err := c.Request.FormFile("transcript")
	if err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: "Missing transcript or prompt"})
		return
	}
	defer file.Close()

	prompt := c.Request.FormValue("prompt")
	if prompt == "" {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: "Missing transcript or prompt"})
		return
	}

	// Reject unsupported extensions before touching the file contents.
	if _, err := types.FormatFromFilename(header.Filename); err != nil {
		respondError(c, err)
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		respondError(c, err)
		return
	}

	transcript, err := h.extractService.Extract(data, header.Filename)
	if err != nil {
		respondError(c, err)
		return
	}

	summary, err := h.aiService.Summarize(c.Request.Context(), transcript, prompt)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.SummaryResponse{Summary: summary})
}
