package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/realestate-crm/internal/adapters/http/dto"
	"github.com/jsamuelsen11/realestate-crm/internal/domain"
)

// parseID extracts an int64 path parameter from the chi URL params.
func parseID(r *http.Request, param string) (int64, error) {
	raw := chi.URLParam(r, param)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, &domain.ValidationError{
			Fields: map[string]string{param: "must be a positive integer"},
		}
	}
	return id, nil
}

// queryChoice parses an optional enumerated query parameter. Codes are
// matched case-insensitively; an unknown code is an ErrInvalidCriteria.
func queryChoice[E domain.Enum](r *http.Request, param string) (E, error) {
	raw := strings.ToUpper(strings.TrimSpace(r.URL.Query().Get(param)))
	v, err := domain.ParseOptionalChoice[E](raw)
	if err != nil {
		return v, domain.InvalidCriteria(param, err)
	}
	return v, nil
}

// queryRef parses an optional positive ID query parameter.
func queryRef(r *http.Request, param string) (*int64, error) {
	raw := r.URL.Query().Get(param)
	if raw == "" {
		return nil, nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return nil, domain.InvalidCriteria(param, domain.NewFieldError(param, "must be a positive integer"))
	}
	return &id, nil
}

// querySearch returns the trimmed free-text search term.
func querySearch(r *http.Request) (string, error) {
	q := strings.TrimSpace(r.URL.Query().Get("search"))
	if len(q) > domain.MaxSearchLength {
		return "", domain.InvalidCriteria("search", domain.NewFieldError("search", "too long"))
	}
	return q, nil
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", slog.Any("error", err))
	}
}

// writeMessage writes a mutation result with its user feedback message.
func writeMessage[T any](w http.ResponseWriter, status int, msg string, data T) {
	writeJSON(w, status, dto.MessageResponse[T]{Message: msg, Data: data})
}

// maxJSONBodyBytes is the maximum allowed size for a JSON request body (1 MB).
const maxJSONBodyBytes = 1 << 20

// decodeJSONBody decodes the request body as JSON into dst. The body is
// limited to maxJSONBodyBytes to prevent resource exhaustion. On failure,
// it writes a 400 error response and returns false.
func decodeJSONBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		dto.WriteErrorResponse(w, r, &domain.ValidationError{
			Fields: map[string]string{"body": "invalid JSON"},
		})
		return false
	}
	return true
}

// validatable is implemented by request DTOs that support validation.
type validatable interface {
	Validate() error
}

// decodeAndValidate decodes the JSON request body into dst and validates it.
// On decode or validation failure it writes an error response and returns false.
func decodeAndValidate[T validatable](w http.ResponseWriter, r *http.Request, dst T) bool {
	if !decodeJSONBody(w, r, dst) {
		return false
	}
	if err := dst.Validate(); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return false
	}
	return true
}
