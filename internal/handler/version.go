package handler

import "net/http"

// Version is stamped at build time via -ldflags.
var Version = "dev"

// VersionResponse reports the running build
type VersionResponse struct {
	Version string `json:"version"`
}

// HandleVersion reports the deployed version
// @Summary Service version
// @Tags health
// @Produce json
// @Success 200 {object} VersionResponse
// @Router /version [get]
func HandleVersion() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, VersionResponse{Version: Version})
	}
}
