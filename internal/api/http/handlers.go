// Package httpapi exposes the scoring engine over HTTP for UI and
// report-generation collaborators.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"ai-intro-scoring-service/internal/events"
	"ai-intro-scoring-service/internal/models"
	"ai-intro-scoring-service/internal/observability/logging"
	"ai-intro-scoring-service/internal/rubric"
)

// maxUploadBytes bounds transcript uploads; spoken introductions are small.
const maxUploadBytes = 1 << 20

// Handler serves scoring requests.
type Handler struct {
	engine    *rubric.Engine
	publisher *events.Publisher
	log       zerolog.Logger
}

// NewHandler creates a scoring handler. publisher may be a disabled
// (log-only) publisher but must not be nil.
func NewHandler(engine *rubric.Engine, publisher *events.Publisher) *Handler {
	return &Handler{
		engine:    engine,
		publisher: publisher,
		log:       logging.WithComponent("httpapi"),
	}
}

type scoreRequest struct {
	Transcript string `json:"transcript"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// ScoreText handles POST /v1/score with a JSON transcript body.
func (h *Handler) ScoreText(w http.ResponseWriter, r *http.Request) {
	var req scoreRequest
	if err := json.NewDecoder(io.LimitReader(r.Body, maxUploadBytes)).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "request body must be JSON with a transcript field"})
		return
	}
	h.score(w, r, req.Transcript)
}

// ScoreUpload handles POST /v1/score/upload with a multipart .txt file.
func (h *Handler) ScoreUpload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "request must be multipart form data"})
		return
	}
	file, _, err := r.FormFile("file")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "missing transcript file field"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "could not read uploaded file"})
		return
	}
	h.score(w, r, string(data))
}

// score runs the engine, publishes the report event, and writes the
// response. Capability outages are already absorbed by the engine; only
// non-text input maps to a client error.
func (h *Handler) score(w http.ResponseWriter, r *http.Request, transcript string) {
	report, err := h.engine.Score(r.Context(), transcript)
	if err != nil {
		var inputErr *rubric.InputError
		if errors.As(err, &inputErr) {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: inputErr.Error()})
			return
		}
		h.log.Error().Err(err).Msg("scoring failed")
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "scoring failed"})
		return
	}

	h.publish(report)
	writeJSON(w, http.StatusOK, report)
}

// publish sends the report event. Best effort: failures are logged and
// never affect the HTTP response.
func (h *Handler) publish(report *models.Report) {
	reportID := uuid.NewString()
	categories := make(map[string]float64, len(report.Categories))
	for _, c := range report.Categories {
		categories[c.Name] = c.Awarded
	}
	event := models.ReportEvent{
		EventType:  "report.scored",
		ReportID:   reportID,
		Timestamp:  time.Now().UnixMilli(),
		TotalScore: report.TotalScore,
		Categories: categories,
		Degraded:   report.DerivedSignals.Degraded,
		Empty:      report.DerivedSignals.EmptyTranscript,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := h.publisher.PublishReport(ctx, reportID, event); err != nil {
		logger := logging.WithReport(reportID)
		logger.Warn().Err(err).Msg("report event publish failed")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
