package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mearas/realmwar/internal/model"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest     = "INVALID_REQUEST"
	CodeArmyNotFound       = "ARMY_NOT_FOUND"
	CodePlayerNotFound     = "PLAYER_NOT_FOUND"
	CodeFactionNotFound    = "FACTION_NOT_FOUND"
	CodeRegionNotFound     = "REGION_NOT_FOUND"
	CodeClaimBuildNotFound = "CLAIMBUILD_NOT_FOUND"
	CodeUnitTypeNotFound   = "UNIT_TYPE_NOT_FOUND"
	CodeAccountNotFound    = "ACCOUNT_NOT_FOUND"
	CodeArmyNameTaken      = "ARMY_NAME_TAKEN"
	CodeMaxArmiesReached   = "MAX_ARMIES_REACHED"
	CodeNotEnoughTokens    = "NOT_ENOUGH_TOKENS"
	CodeNotFactionLeader   = "NOT_FACTION_LEADER"
	CodeFactionMismatch    = "FACTION_MISMATCH"
	CodeRegionMismatch     = "REGION_MISMATCH"
	CodeArmyAlreadyBound   = "ARMY_ALREADY_BOUND"
	CodeNoRPChar           = "NO_RPCHAR"
	CodePlayerExists       = "PLAYER_EXISTS"
	CodeRPCharExists       = "RPCHAR_EXISTS"
	CodeRPCharNameTaken    = "RPCHAR_NAME_TAKEN"
	CodeTitleTooLong       = "TITLE_TOO_LONG"
	CodeInternalError      = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// toHTTPError converts an error to an httpError. Domain error messages carry
// the offending name/id and the limit violated, so they pass through as-is.
func toHTTPError(err error) *httpError {
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	code := func(status int, code string) *httpError {
		return &httpError{status, APIError{code, err.Error()}}
	}

	switch {
	case errors.Is(err, model.ErrValidation):
		return code(http.StatusBadRequest, CodeInvalidRequest)

	case errors.Is(err, model.ErrArmyNotFound):
		return code(http.StatusNotFound, CodeArmyNotFound)
	case errors.Is(err, model.ErrPlayerNotFound):
		return code(http.StatusNotFound, CodePlayerNotFound)
	case errors.Is(err, model.ErrFactionNotFound):
		return code(http.StatusNotFound, CodeFactionNotFound)
	case errors.Is(err, model.ErrRegionNotFound):
		return code(http.StatusNotFound, CodeRegionNotFound)
	case errors.Is(err, model.ErrClaimBuildNotFound):
		return code(http.StatusNotFound, CodeClaimBuildNotFound)
	case errors.Is(err, model.ErrUnitTypeNotFound):
		return code(http.StatusNotFound, CodeUnitTypeNotFound)
	case errors.Is(err, model.ErrAccountNotFound):
		return code(http.StatusNotFound, CodeAccountNotFound)

	case errors.Is(err, model.ErrArmyNameTaken):
		return code(http.StatusConflict, CodeArmyNameTaken)
	case errors.Is(err, model.ErrMaxArmiesReached):
		return code(http.StatusConflict, CodeMaxArmiesReached)
	case errors.Is(err, model.ErrNotEnoughTokens):
		return code(http.StatusConflict, CodeNotEnoughTokens)

	case errors.Is(err, model.ErrNotFactionLeader):
		return code(http.StatusForbidden, CodeNotFactionLeader)
	case errors.Is(err, model.ErrFactionMismatch):
		return code(http.StatusConflict, CodeFactionMismatch)
	case errors.Is(err, model.ErrRegionMismatch):
		return code(http.StatusConflict, CodeRegionMismatch)
	case errors.Is(err, model.ErrArmyAlreadyBound):
		return code(http.StatusConflict, CodeArmyAlreadyBound)
	case errors.Is(err, model.ErrNoRPChar):
		return code(http.StatusConflict, CodeNoRPChar)

	case errors.Is(err, model.ErrPlayerExists):
		return code(http.StatusConflict, CodePlayerExists)
	case errors.Is(err, model.ErrRPCharExists):
		return code(http.StatusConflict, CodeRPCharExists)
	case errors.Is(err, model.ErrRPCharNameTaken):
		return code(http.StatusConflict, CodeRPCharNameTaken)
	case errors.Is(err, model.ErrTitleTooLong):
		return code(http.StatusBadRequest, CodeTitleTooLong)

	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}
