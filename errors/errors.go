package errors

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gorilla/websocket"
)

var (
	ErrNotFound             = fmt.Errorf("not found")
	ErrUnauthenticated      = fmt.Errorf("credential is missing")
	ErrUnauthorized         = fmt.Errorf("credential does not grant access to this campaign")
	ErrInvalidArgument      = fmt.Errorf("invalid argument")
	ErrTransientSendFailure = fmt.Errorf("subscriber send failed")
	ErrSnapshotInconsistent = fmt.Errorf("bootstrap snapshot is inconsistent")
	ErrAlreadyRegistered    = fmt.Errorf("subscriber already registered to another campaign")
	ErrConnectionClosed     = fmt.Errorf("connection closed")
	ErrInvalidCredentials   = fmt.Errorf("invalid credentials")
	ErrUserAlreadyExists    = fmt.Errorf("user already exists")
	ErrSlugTaken            = fmt.Errorf("slug already taken")
	ErrInvalidPassword      = fmt.Errorf("password does not meet complexity requirements")
	ErrTokenGeneration      = fmt.Errorf("failed to generate token")
	ErrWorkerPanic          = fmt.Errorf("worker panic")
)

// Close codes sent to websocket subscribers. 4xxx is the application range.
const (
	CloseInvalidCampaign  = 4000
	CloseCampaignNotFound = 4004
	CloseDeliveryFailed   = 4008
)

// Is lets callers match sentinels without importing the standard errors package.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// HTTPStatus maps a service error to the status code returned by the HTTP layer.
func HTTPStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrInvalidArgument), errors.Is(err, ErrInvalidPassword):
		return http.StatusBadRequest
	case errors.Is(err, ErrUnauthenticated), errors.Is(err, ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, ErrUnauthorized):
		return http.StatusForbidden
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrUserAlreadyExists), errors.Is(err, ErrSlugTaken):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// CloseCode maps a subscribe-time error to the close code the client receives
// as close reason. Connection errors are never reported in-band.
func CloseCode(err error) int {
	switch {
	case errors.Is(err, ErrInvalidArgument):
		return CloseInvalidCampaign
	case errors.Is(err, ErrNotFound):
		return CloseCampaignNotFound
	case errors.Is(err, ErrTransientSendFailure), errors.Is(err, ErrConnectionClosed):
		return CloseDeliveryFailed
	default:
		return websocket.CloseInternalServerErr
	}
}
