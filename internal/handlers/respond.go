package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"serenityplace/internal/errs"
)

var validate = validator.New()

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func respondMessage(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, map[string]string{"message": msg})
}

// respondError maps the sentinel taxonomy to HTTP statuses. Anything
// outside the taxonomy is a server fault: logged, generic body.
func respondError(w http.ResponseWriter, logger *zap.Logger, err error) {
	switch {
	case errors.Is(err, errs.ErrValidation), errors.Is(err, errs.ErrAlreadyExists):
		respondMessage(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, errs.ErrUnauthorized):
		respondMessage(w, http.StatusUnauthorized, "No token, authorization denied")
	case errors.Is(err, errs.ErrForbidden):
		respondMessage(w, http.StatusForbidden, err.Error())
	case errors.Is(err, errs.ErrNotFound):
		respondMessage(w, http.StatusNotFound, "Not found")
	default:
		logger.Error("request failed", zap.Error(err))
		respondMessage(w, http.StatusInternalServerError, "Server error")
	}
}

// decodeJSON decodes the body into dst and runs its validate tags.
// Field failures surface in the error so clients see what to fix.
func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: malformed request body", errs.ErrValidation)
	}
	if err := validate.Struct(dst); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			details := make([]string, 0, len(fieldErrs))
			for _, fe := range fieldErrs {
				switch fe.Tag() {
				case "required":
					details = append(details, fe.Field()+" is required")
				case "email":
					details = append(details, fe.Field()+" must be a valid email")
				default:
					details = append(details, fe.Field()+" is invalid")
				}
			}
			return fmt.Errorf("%w: %s", errs.ErrValidation, strings.Join(details, ", "))
		}
		return errs.ErrValidation
	}
	return nil
}

// idParam parses the {id} route parameter.
func idParam(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errs.ErrValidation
	}
	return id, nil
}

// pageParam reads ?page=, defaulting to 1.
func pageParam(r *http.Request) int {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// limitParam reads ?limit=, clamped to [1, max], defaulting to def.
func limitParam(r *http.Request, def, max int) int {
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit < 1 {
		return def
	}
	if limit > max {
		return max
	}
	return limit
}

func totalPages(total, pageSize int) int {
	if total == 0 {
		return 0
	}
	return (total + pageSize - 1) / pageSize
}
