package server

import (
	"net/http"

	"github.com/hirelogic/hirelogic-api/internal/verification"
)

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	switch err.(type) {
	case *verification.ErrUnknownSlot:
		return http.StatusNotFound
	case *verification.ErrValidation:
		return http.StatusBadRequest
	case *verification.ErrSlotBusy, *verification.ErrNotReady, *verification.ErrNotLinked, *verification.ErrEmptyReceipt:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
