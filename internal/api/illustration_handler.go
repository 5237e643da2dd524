package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/phrazzld/illustrate-api/internal/api/shared"
	"github.com/phrazzld/illustrate-api/internal/illustration"
)

// IllustrationService is the slice of the orchestration service the handler
// depends on. Satisfied by *illustration.Service.
type IllustrationService interface {
	GenerateIllustrations(ctx context.Context, lessonText string) (*illustration.Result, error)
}

// IllustrationHandler handles illustration-related HTTP requests
type IllustrationHandler struct {
	service IllustrationService
	logger  *slog.Logger
}

// NewIllustrationHandler creates a new IllustrationHandler
func NewIllustrationHandler(service IllustrationService, logger *slog.Logger) *IllustrationHandler {
	return &IllustrationHandler{
		service: service,
		logger:  logger,
	}
}

// GenerateIllustrations handles POST /api/illustrations requests.
// It decodes and validates the lesson text, runs the orchestration pipeline,
// and renders either the aggregated result or a sanitized error response.
func (h *IllustrationHandler) GenerateIllustrations(w http.ResponseWriter, r *http.Request) {
	var req GenerateIllustrationsRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: text field is required")
		return
	}

	result, err := h.service.GenerateIllustrations(r.Context(), *req.Text)
	if err != nil {
		status := MapErrorToStatusCode(err)
		shared.RespondWithErrorAndLog(w, r, status, GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, resultToResponse(result))
}

// resultToResponse converts an illustration.Result to the response DTO
func resultToResponse(result *illustration.Result) IllustrationResponse {
	images := make([]ImageResultResponse, 0, len(result.Images))
	for _, img := range result.Images {
		images = append(images, ImageResultResponse{
			Link:        img.Link,
			DisplayLink: img.DisplayLink,
			Title:       img.Title,
		})
	}

	return IllustrationResponse{
		SearchTerms: result.SearchTerms,
		Results:     images,
	}
}
