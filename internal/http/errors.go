package http

import (
	"errors"
	"net/http"

	"github.com/tribelet/kit-service/internal/domain/model"
	"github.com/tribelet/kit-service/internal/i18n"
	"github.com/tribelet/kit-service/internal/service"
)

// respondError translates service and domain errors into HTTP
// responses. Validation and precondition failures carry their own
// messages; infrastructure errors map to translated generic ones.
func respondError(builder *ResponseBuilder, err error) {
	var rejection *service.UploadRejection
	var validation *model.ValidationError
	var precondition *model.PreconditionViolation

	switch {
	case errors.As(err, &rejection):
		respondUploadRejection(builder, rejection)

	case errors.As(err, &validation):
		builder.ErrorWithMessage(http.StatusBadRequest, validation.Error(), err)

	case errors.As(err, &precondition):
		builder.ErrorWithMessage(http.StatusPreconditionFailed, precondition.Error(), err)

	case errors.Is(err, service.ErrSessionNotFound):
		builder.Error(http.StatusNotFound, i18n.ErrKeySessionNotFound, err)

	case errors.Is(err, service.ErrTeamNotFound):
		builder.Error(http.StatusNotFound, i18n.ErrKeyTeamNotFound, err)

	case errors.Is(err, service.ErrEmptyOrder):
		builder.Error(http.StatusBadRequest, i18n.ErrKeyEmptyOrder, err)

	case errors.Is(err, service.ErrKitNotOrderable):
		builder.Error(http.StatusConflict, i18n.ErrKeyKitNotOrderable, err)

	case errors.Is(err, service.ErrStaleUpload),
		errors.Is(err, service.ErrFlowComplete):
		builder.ErrorWithMessage(http.StatusConflict, err.Error(), err)

	case errors.Is(err, service.ErrTeamDraftIncomplete):
		builder.ErrorWithMessage(http.StatusPreconditionFailed, err.Error(), err)

	case errors.Is(err, service.ErrSessionLimit),
		errors.Is(err, service.ErrDirectoryNotConfigured):
		builder.ErrorWithMessage(http.StatusServiceUnavailable, err.Error(), err)

	default:
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
	}
}

// respondUploadRejection maps a rejected upload to its status and
// translated message. Oversized uploads get 413, the rest 400.
func respondUploadRejection(builder *ResponseBuilder, rejection *service.UploadRejection) {
	status := http.StatusBadRequest
	key := i18n.ErrKeyUploadUndecodable

	switch rejection.Reason {
	case model.RejectTooLarge:
		status = http.StatusRequestEntityTooLarge
		key = i18n.ErrKeyUploadTooLarge
	case model.RejectDimensionsExceeded:
		key = i18n.ErrKeyUploadTooBig
	}
	builder.Error(status, key, rejection)
}
