package handler

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/vaultpass/passgen-go/internal/crypto"
	"github.com/vaultpass/passgen-go/internal/model"
	"github.com/vaultpass/passgen-go/internal/service"
	"github.com/vaultpass/passgen-go/internal/validation"
)

const maxBodyBytes = 1 << 20 // 1MB

// GeneratorHandler handles HTTP requests for password generation.
type GeneratorHandler struct {
	service *service.GeneratorService
}

// NewGeneratorHandler creates a new GeneratorHandler.
func NewGeneratorHandler(svc *service.GeneratorService) *GeneratorHandler {
	return &GeneratorHandler{service: svc}
}

// HandleGenerate handles POST /api/v1/generate requests.
func (h *GeneratorHandler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	var req model.GenerateRequest
	if !decodeBody(w, r, &req) {
		return
	}

	resp, err := h.service.Generate(req)
	if err != nil {
		var vErr *validation.ValidationError
		var cfgErr *crypto.ConfigurationError
		switch {
		case errors.As(err, &vErr):
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: vErr.Message, Kind: "validation", Rule: string(vErr.Rule)})
		case errors.As(err, &cfgErr):
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: cfgErr.Error(), Kind: "configuration"})
		default:
			writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
		}
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleValidate handles POST /api/v1/validate requests. Both outcomes are 200.
func (h *GeneratorHandler) HandleValidate(w http.ResponseWriter, r *http.Request) {
	var req model.ValidateRequest
	if !decodeBody(w, r, &req) {
		return
	}

	writeJSON(w, http.StatusOK, h.service.ValidateLength(req))
}

// HandleReset handles GET /api/v1/reset requests.
func (h *GeneratorHandler) HandleReset(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.service.Reset())
}

// decodeBody reads a JSON body into v. An empty body leaves v untouched. It
// writes the error response itself and reports whether the caller may go on.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if r.Body == nil || r.Body == http.NoBody {
		return true
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	defer r.Body.Close()

	err := json.NewDecoder(r.Body).Decode(v)
	if err == nil || errors.Is(err, io.EOF) {
		return true
	}

	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse{Error: "request body too large"})
		return false
	}
	writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
	return false
}

type errorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
	Rule  string `json:"rule,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Warn("writing response failed", "error", err)
	}
}
