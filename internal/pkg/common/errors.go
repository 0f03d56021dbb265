package common

import (
	"net/http"
)

// ErrorResponse is the JSON shape of an API error.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// CustomError carries an error code and HTTP status alongside the message.
type CustomError struct {
	Code    string
	Message string
	Err     error
	Status  int
}

func (e *CustomError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

// NewError builds a CustomError.
func NewError(code string, message string, status int, err error) *CustomError {
	return &CustomError{
		Code:    code,
		Message: message,
		Status:  status,
		Err:     err,
	}
}

// Error codes shared by the handlers.
const (
	ErrCodeInvalidRequest     = "INVALID_REQUEST"     // 400
	ErrCodeUnauthorized       = "UNAUTHORIZED"        // 401
	ErrCodeForbidden          = "FORBIDDEN"           // 403
	ErrCodeNotFound           = "NOT_FOUND"           // 404
	ErrCodeRequestTimeout     = "REQUEST_TIMEOUT"     // 408
	ErrCodeConflict           = "CONFLICT"            // 409
	ErrCodeTooManyRequests    = "TOO_MANY_REQUESTS"   // 429
	ErrCodeInternalError      = "INTERNAL_ERROR"      // 500
	ErrCodeServiceUnavailable = "SERVICE_UNAVAILABLE" // 503
	ErrCodeGatewayTimeout     = "GATEWAY_TIMEOUT"     // 504
)

// Predefined errors. User-facing messages are pt-BR, matching the wire
// contract of the rest of the API.
var (
	ErrInvalidRequest  = NewError(ErrCodeInvalidRequest, "Requisição inválida.", http.StatusBadRequest, nil)
	ErrUnauthorized    = NewError(ErrCodeUnauthorized, "Credenciais inválidas.", http.StatusUnauthorized, nil)
	ErrForbidden       = NewError(ErrCodeForbidden, "Acesso negado.", http.StatusForbidden, nil)
	ErrNotFound        = NewError(ErrCodeNotFound, "Recurso não encontrado.", http.StatusNotFound, nil)
	ErrRequestTimeout  = NewError(ErrCodeRequestTimeout, "Tempo de requisição esgotado.", http.StatusRequestTimeout, nil)
	ErrTooManyRequests = NewError(ErrCodeTooManyRequests, "Muitas requisições. Tente novamente em instantes.", http.StatusTooManyRequests, nil)
	ErrInternalError   = NewError(ErrCodeInternalError, "Erro interno do servidor.", http.StatusInternalServerError, nil)

	// Domain errors.
	ErrInvalidImage   = NewError("INVALID_IMAGE", "Arquivo inválido (não é imagem).", http.StatusBadRequest, nil)
	ErrImageTooLarge  = NewError("IMAGE_TOO_LARGE", "Imagem excede o tamanho máximo permitido.", http.StatusBadRequest, nil)
	ErrMissingFile    = NewError("MISSING_FILE", `Arquivo de imagem é obrigatório (campo "file").`, http.StatusBadRequest, nil)
	ErrVisionFailure  = NewError("VISION_FAILURE", "Serviço de análise de imagem indisponível.", http.StatusBadGateway, nil)
	ErrEmailTaken     = NewError("EMAIL_TAKEN", "E-mail já cadastrado.", http.StatusBadRequest, nil)
	ErrMealNotFound   = NewError("MEAL_NOT_FOUND", "Refeição não encontrada.", http.StatusNotFound, nil)
)
