package reply

import (
	"context"
	"errors"
	"net/http"

	"git.appkode.ru/pub/go/failure"
	jsoniter "github.com/json-iterator/go"

	"beer_service/pkg/contextx"
	"beer_service/pkg/errcodes"
	"beer_service/pkg/httpx/req"
	"beer_service/pkg/logx"
	"beer_service/pkg/rest"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

type errorResponse struct {
	Code      string            `json:"code"`
	Message   string            `json:"message"`
	SupportID string            `json:"supportId"`
	Fields    []rest.FieldError `json:"fields,omitempty"`
}

func (e *errorResponse) WithDefaultCode(code failure.ErrorCode) {
	if e.Code == "" {
		e.Code = code.String()
	}
}

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

func OK(w http.ResponseWriter) {
	w.WriteHeader(http.StatusOK)
}

func Created(w http.ResponseWriter) {
	w.WriteHeader(http.StatusCreated)
}

func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

func JSON(ctx context.Context, w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger(ctx).Error("json.Encode", logx.Error(err))
	}
}

func Error(ctx context.Context, w http.ResponseWriter, err error) {
	response := errorResponse{
		Code:      failure.Code(err).String(),
		Message:   failure.Description(err),
		SupportID: supportID(ctx),
	}

	var validationErr *req.ValidationError
	if errors.As(err, &validationErr) {
		response.Fields = validationErr.Fields
	}

	switch {
	case failure.IsInvalidArgumentError(err):
		logger(ctx).Warn("invalid argument", logx.Error(err))
		response.WithDefaultCode(errcodes.ValidationError)
		JSON(ctx, w, http.StatusBadRequest, response)
	case failure.IsNotFoundError(err):
		logger(ctx).Warn("not found", logx.Error(err))
		response.WithDefaultCode(errcodes.NotFound)
		JSON(ctx, w, http.StatusNotFound, response)
	case failure.IsUnauthorizedError(err):
		logger(ctx).Warn("unauthorized", logx.Error(err))
		JSON(ctx, w, http.StatusUnauthorized, response)
	case failure.IsForbiddenError(err):
		logger(ctx).Warn("forbidden", logx.Error(err))
		response.WithDefaultCode(errcodes.Forbidden)
		JSON(ctx, w, http.StatusForbidden, response)
	case failure.IsConflictError(err):
		logger(ctx).Warn("conflict", logx.Error(err))
		response.WithDefaultCode(errcodes.Conflict)
		JSON(ctx, w, http.StatusConflict, response)
	case failure.IsUnprocessableEntityError(err):
		logger(ctx).Warn("unprocessable entity", logx.Error(err))
		JSON(ctx, w, http.StatusUnprocessableEntity, response)
	default:
		logger(ctx).Error("error", logx.Error(err))
		// Internal details stay in the log.
		response.Message = ""
		response.WithDefaultCode(errcodes.InternalServerError)
		JSON(ctx, w, http.StatusInternalServerError, response)
	}
}

func supportID(ctx context.Context) string {
	traceID, err := contextx.TraceIDFromContext(ctx)
	if err != nil {
		return "unsupported"
	}

	return traceID.String()
}
