package response

import (
	"log"
	"net/http"

	apperrors "github.com/ahmadnzr/fintrack-by-ai/errors"

	"github.com/gin-gonic/gin"
)

// Envelope định nghĩa cấu trúc response thành công.
type Envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data"`
}

// ErrorBody carries either a single message or a list of form errors,
// never both.
type ErrorBody struct {
	Message string   `json:"message,omitempty"`
	Form    []string `json:"_form,omitempty"`
}

type ErrorEnvelope struct {
	Error ErrorBody `json:"error"`
}

// Pagination định nghĩa cấu trúc phân trang.
type Pagination struct {
	Total       int64 `json:"total"`
	Pages       int   `json:"pages"`
	CurrentPage int   `json:"currentPage"`
	Limit       int   `json:"limit"`
}

type PaginatedEnvelope struct {
	Data       interface{} `json:"data"`
	Pagination Pagination  `json:"pagination"`
}

// Success trả về response thành công.
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Envelope{Success: true, Data: data})
}

// Created trả về response thành công với mã 201.
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Envelope{Success: true, Data: data})
}

// Paginated trả về response thành công có phân trang.
func Paginated(c *gin.Context, data interface{}, total int64, page, limit int) {
	pages := 0
	if limit > 0 {
		pages = int((total + int64(limit) - 1) / int64(limit))
	}
	c.JSON(http.StatusOK, PaginatedEnvelope{
		Data: data,
		Pagination: Pagination{
			Total:       total,
			Pages:       pages,
			CurrentPage: page,
			Limit:       limit,
		},
	})
}

// FormError trả về lỗi validation dạng form.
func FormError(c *gin.Context, messages ...string) {
	c.JSON(http.StatusBadRequest, ErrorEnvelope{Error: ErrorBody{Form: messages}})
}

// BadRequest trả về lỗi 400 với một message.
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorEnvelope{Error: ErrorBody{Message: message}})
}

// Unauthorized trả về response chưa xác thực.
func Unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, ErrorEnvelope{Error: ErrorBody{Message: "Unauthorized"}})
}

// Forbidden trả về response không có quyền.
func Forbidden(c *gin.Context, message string) {
	if message == "" {
		message = "Forbidden"
	}
	c.JSON(http.StatusForbidden, ErrorEnvelope{Error: ErrorBody{Message: message}})
}

// NotFound trả về response không tìm thấy.
func NotFound(c *gin.Context, message string) {
	if message == "" {
		message = "Not found"
	}
	c.JSON(http.StatusNotFound, ErrorEnvelope{Error: ErrorBody{Message: message}})
}

// ServerError trả về lỗi server, không lộ chi tiết bên trong.
func ServerError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, ErrorEnvelope{Error: ErrorBody{Message: "An unexpected error occurred"}})
}

// Error maps an application error to the envelope and HTTP status of the
// error taxonomy. Unknown errors are logged and reported generically.
func Error(c *gin.Context, err error) {
	appErr, ok := apperrors.AsAppError(err)
	if !ok {
		log.Printf("unexpected error: %v", err)
		ServerError(c)
		return
	}

	switch appErr.Code {
	case apperrors.ErrCodeValidation, apperrors.ErrCodeRequiredField, apperrors.ErrCodeInvalidFormat:
		FormError(c, appErr.Message)
	case apperrors.ErrCodeConflict, apperrors.ErrCodeState:
		FormError(c, appErr.Message)
	case apperrors.ErrCodeNotFound:
		NotFound(c, appErr.Message)
	case apperrors.ErrCodeForbidden:
		Forbidden(c, appErr.Message)
	case apperrors.ErrCodeUnauthorized, apperrors.ErrCodeInvalidToken:
		Unauthorized(c)
	default:
		log.Printf("unexpected error: %v", err)
		ServerError(c)
	}
}
