package errors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("utilisateur non trouvé")
	// ErrProjectNotFound is returned when a project is not found.
	ErrProjectNotFound = errors.New("projet non trouvé")
	// ErrImageNotFound is returned when an image is not found.
	ErrImageNotFound = errors.New("image non trouvée")
	// ErrInvalidID is returned when a path id is not a positive integer.
	ErrInvalidID = errors.New("ID invalide")
	// ErrNegativeBudget is returned when a project budget is below zero.
	ErrNegativeBudget = errors.New("le budget doit être positif")
	// ErrNotAnImage is returned when an uploaded file is not an image.
	ErrNotAnImage = errors.New("seules les images sont autorisées")
	// ErrFileTooLarge is returned when an uploaded file exceeds the size limit.
	ErrFileTooLarge = errors.New("fichier trop volumineux")
	// ErrNoFile is returned when a multipart upload carries no image file.
	ErrNoFile = errors.New("aucun fichier image fourni")
)

// MissingFieldsError reports required request fields that are absent or
// blank, keeping the field list for the response body.
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return fmt.Sprintf("champs manquants ou invalides: %s", strings.Join(e.Fields, ", "))
}

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Message         string   `json:"message"`
	Code            string   `json:"code,omitempty"`
	ChampsManquants []string `json:"champsManquants,omitempty"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
	Fields     []string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Message:         e.Message,
		Code:            e.Code,
		ChampsManquants: e.Fields,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	var missing *MissingFieldsError
	if errors.As(err, &missing) {
		httpErr := NewHTTPError(http.StatusBadRequest, "Certains champs sont manquants ou invalides", "MISSING_FIELDS")
		httpErr.Fields = missing.Fields
		return httpErr
	}

	switch {
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "USER_NOT_FOUND")
	case errors.Is(err, ErrProjectNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "PROJECT_NOT_FOUND")
	case errors.Is(err, ErrImageNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "IMAGE_NOT_FOUND")
	case errors.Is(err, ErrInvalidID):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_ID")
	case errors.Is(err, ErrNegativeBudget):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "NEGATIVE_BUDGET")
	case errors.Is(err, ErrNotAnImage):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "NOT_AN_IMAGE")
	case errors.Is(err, ErrFileTooLarge):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "FILE_TOO_LARGE")
	case errors.Is(err, ErrNoFile):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "NO_FILE")
	default:
		return NewHTTPError(http.StatusInternalServerError, "Erreur interne", "INTERNAL_ERROR")
	}
}
