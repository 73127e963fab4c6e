package handler

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"meetsum/types"
)

// apiPrefixes are the path prefixes reserved for the API. Unmatched requests
// under them get a JSON 404 instead of the front-end.
var apiPrefixes = []string{"generate_summary", "send_email"}

type StaticHandler struct {
	staticDir string
}

func NewStaticHandler(staticDir string) *StaticHandler {
	return &StaticHandler{
		staticDir: staticDir,
	}
}

// HandleFallback serves the front-end bundle: real asset files when they
// exist, the SPA entry document for everything else.
func (h *StaticHandler) HandleFallback(c *gin.Context) {
	requestPath := strings.TrimPrefix(c.Request.URL.Path, "/")

	for _, prefix := range apiPrefixes {
		if strings.HasPrefix(requestPath, prefix) {
			c.JSON(http.StatusNotFound, types.ErrorResponse{Error: "Not found"})
			return
		}
	}

	assetPath := filepath.Join(h.staticDir, filepath.Clean("/"+requestPath))
	if info, err := os.Stat(assetPath); err == nil && !info.IsDir() {
		c.File(assetPath)
		return
	}

	c.File(filepath.Join(h.staticDir, "index.html"))
}
