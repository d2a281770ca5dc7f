package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/aegis-vault/internal/app"
	"github.com/MKhiriev/aegis-vault/internal/logger"
	"github.com/MKhiriev/aegis-vault/internal/service"
	"github.com/MKhiriev/aegis-vault/internal/utils"
)

type errorMapping struct {
	target  error
	status  int
	message string
}

// errorMappings is checked in order. Concrete errors come before the kinds
// they wrap.
var errorMappings = []errorMapping{
	{service.ErrDuplicateUser, http.StatusConflict, app.MsgUserAlreadyExists},
	{service.ErrInvalidDataProvided, http.StatusBadRequest, app.MsgInvalidDataProvided},

	{service.ErrInvalidCredentials, http.StatusUnauthorized, app.MsgInvalidLoginPassword},
	{service.ErrInvalidSecondFactor, http.StatusUnauthorized, app.MsgInvalidSecondFactor},
	{service.ErrTokenIsExpired, http.StatusUnauthorized, app.MsgTokenIsExpired},
	{service.ErrInvalidToken, http.StatusUnauthorized, app.MsgInvalidToken},

	{service.ErrCredentialNotFound, http.StatusNotFound, app.MsgCredentialNotFound},

	{service.ErrValidation, http.StatusBadRequest, app.MsgInvalidDataProvided},
	{service.ErrAuth, http.StatusUnauthorized, app.MsgUnauthorized},
	{service.ErrNotFound, http.StatusNotFound, app.MsgNotFound},
	{service.ErrStorage, http.StatusInternalServerError, app.MsgInternalServerError},
}

// statusFromError returns the HTTP status and the client-facing message for
// err. Unknown errors map to 500.
func statusFromError(err error) (int, string) {
	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			return m.status, m.message
		}
	}
	return http.StatusInternalServerError, app.MsgInternalServerError
}

// writeServiceError logs err and writes the opaque error body for it.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, funcName string) {
	status, message := statusFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Str("func", funcName).Msg("command failed")
	} else {
		log.Debug().Err(err).Str("func", funcName).Int("status", status).Msg("command rejected")
	}

	utils.WriteError(w, message, status)
}

func notFound(w http.ResponseWriter, _ *http.Request) {
	utils.WriteError(w, app.MsgNotFound, http.StatusNotFound)
}
