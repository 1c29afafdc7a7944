package handlers

import (
	"net/http"

	"github.com/ramonehamilton/combat-calc/internal/api/response"
	"github.com/ramonehamilton/combat-calc/internal/version"
)

// SystemHandler handles system-related API requests.
type SystemHandler struct{}

// NewSystemHandler creates a new SystemHandler.
func NewSystemHandler() *SystemHandler {
	return &SystemHandler{}
}

// GetVersion returns the application version.
func (h *SystemHandler) GetVersion(w http.ResponseWriter, _ *http.Request) {
	response.Success(w, map[string]string{
		"version": version.GetVersion(),
		"service": "combat-calc-api",
	})
}
