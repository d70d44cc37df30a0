package serverutils

import (
	"encoding/json"

	"notepad-be/internal/pkg/apperror"
)

// Callable endpoints speak a small RPC envelope: the request body is
// {"data": ...}, a success is {"result": ...} and a failure is
// {"error": {"status": ..., "message": ...}}.

type CallableRequest struct {
	Data json.RawMessage `json:"data"`
}

type CallableResult[T any] struct {
	Result T `json:"result"`
}

type CallableErrorBody struct {
	Status  string                 `json:"status"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

type CallableError struct {
	Error CallableErrorBody `json:"error"`
}

func CallableSuccess[T any](result T) CallableResult[T] {
	return CallableResult[T]{Result: result}
}

// CallableFailure converts err into the error envelope and its HTTP status.
// Only the AppError message and correlation id reach the client.
func CallableFailure(err error) (int, CallableError) {
	appErr := apperror.As(err)
	if appErr == nil {
		appErr = apperror.NewInternalError("Internal error", err)
	}

	body := CallableErrorBody{
		Status:  callableStatus(appErr.Kind),
		Message: appErr.Message,
	}
	if appErr.CorrelationId != "" {
		body.Details = map[string]interface{}{"correlation_id": appErr.CorrelationId}
	}

	return appErr.HTTPStatus(), CallableError{Error: body}
}

func callableStatus(kind apperror.Kind) string {
	switch kind {
	case apperror.KindUnauthenticated:
		return "UNAUTHENTICATED"
	case apperror.KindInvalidArgument:
		return "INVALID_ARGUMENT"
	case apperror.KindNotFound:
		return "NOT_FOUND"
	default:
		return "INTERNAL"
	}
}
