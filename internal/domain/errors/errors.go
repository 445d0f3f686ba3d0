// Package errors defines the application error taxonomy: input
// validation failures recovered locally, first-class catalog outcomes
// (not found, conflict), transport failures that always permit retry,
// order rejection, and the fatal ledger invariant violation.
package errors

import (
	"net/http"

	"pos/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.details != "" {
		return e.message + ": " + e.details
	}

	return e.message
}

// Is matches errors by business error code, so a WithDetails copy still
// matches its predefined value under errors.Is.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)

	return ok && t.errorCode == e.errorCode
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Input validation errors, always recovered locally and never sent
	// over the network.
	ErrEmptyCode = NewBaseError(
		http.StatusBadRequest,
		"EMPTY_CODE",
		"商品コードを入力してください",
		"",
	)

	ErrInvalidRegistration = NewBaseError(
		http.StatusBadRequest,
		"INVALID_REGISTRATION",
		"商品名と0以上の単価を入力してください",
		"",
	)

	ErrInvalidQuantity = NewBaseError(
		http.StatusBadRequest,
		"INVALID_QUANTITY",
		"数量は1以上で指定してください",
		"",
	)

	ErrEmptyCart = NewBaseError(
		http.StatusBadRequest,
		"EMPTY_CART",
		"購入リストが空です",
		"",
	)

	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"入力内容に誤りがあります",
		"",
	)

	// Catalog resolution outcomes
	ErrProductNotFound = NewBaseError(
		http.StatusNotFound,
		"PRODUCT_NOT_FOUND",
		"商品がマスタ未登録です",
		"",
	)

	ErrRegistrationConflict = NewBaseError(
		http.StatusConflict,
		"REGISTRATION_CONFLICT",
		"この商品コードは登録済みです",
		"",
	)

	ErrAttemptSuperseded = NewBaseError(
		http.StatusConflict,
		"ATTEMPT_SUPERSEDED",
		"読み取りが新しい商品コードで上書きされました",
		"",
	)

	ErrResolutionState = NewBaseError(
		http.StatusConflict,
		"RESOLUTION_STATE_INVALID",
		"現在の読み取り状態ではこの操作はできません",
		"",
	)

	// Checkout outcomes
	ErrCheckoutInProgress = NewBaseError(
		http.StatusConflict,
		"CHECKOUT_IN_PROGRESS",
		"購入処理を実行中です",
		"",
	)

	ErrOrderRejected = NewBaseError(
		http.StatusUnprocessableEntity,
		"ORDER_REJECTED",
		"注文が受け付けられませんでした",
		"",
	)

	// Transport-level failure for lookup, registration and checkout.
	// Prior state is always left intact and manual retry is permitted.
	ErrTransportFailed = NewBaseError(
		http.StatusBadGateway,
		"TRANSPORT_FAILED",
		"サーバーとの通信に失敗しました",
		"",
	)

	// Fatal programming-error class failure: the ledger sum or code
	// uniqueness invariant broke. The mutation is aborted.
	ErrInvariantViolation = NewBaseError(
		http.StatusInternalServerError,
		"CART_INVARIANT_VIOLATION",
		"カートの整合性エラーが発生しました",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"システム内部エラーが発生しました",
		"",
	)
)
