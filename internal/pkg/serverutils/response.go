package serverutils

type BaseResponse[T any] struct {
	Success       bool   `json:"success"`
	Code          int    `json:"code"`
	Message       string `json:"message"`
	Data          T      `json:"data"`
	ErrorKind     string `json:"error_kind,omitempty"`
	CorrelationId string `json:"correlation_id,omitempty"`
}

func SuccessResponse[T any](message string, data T) BaseResponse[T] {
	return BaseResponse[T]{
		Success: true,
		Code:    200,
		Message: message,
		Data:    data,
	}
}

func CreatedResponse[T any](message string, data T) BaseResponse[T] {
	res := SuccessResponse(message, data)
	res.Code = 201
	return res
}

func ErrorResponse(code int, message string) BaseResponse[any] {
	return BaseResponse[any]{
		Success: false,
		Code:    code,
		Message: message,
	}
}
