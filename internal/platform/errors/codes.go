// Package errors provides structured error handling with localization keys.
package errors

import "net/http"

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Locale errors
	CodeLocaleUnsupported Code = "LOCALE_UNSUPPORTED"
	CodeNamespaceUnknown  Code = "NAMESPACE_UNKNOWN"

	// Override errors
	CodeOverrideKeyInvalid Code = "OVERRIDE_KEY_INVALID"
	CodeOverrideValueEmpty Code = "OVERRIDE_VALUE_EMPTY"
	CodeOverrideNotFound   Code = "OVERRIDE_NOT_FOUND"
	CodeStorageUnavailable Code = "STORAGE_UNAVAILABLE"

	// Admin token errors
	CodeTokenInvalid  Code = "TOKEN_INVALID"
	CodeTokenExpired  Code = "TOKEN_EXPIRED"
	CodeAdminDisabled Code = "ADMIN_DISABLED"
)

// HTTPStatus maps the code to an HTTP status.
func (c Code) HTTPStatus() int {
	switch c {
	case CodeLocaleUnsupported, CodeOverrideKeyInvalid, CodeOverrideValueEmpty:
		return http.StatusBadRequest
	case CodeNamespaceUnknown, CodeOverrideNotFound:
		return http.StatusNotFound
	case CodeTokenInvalid, CodeTokenExpired:
		return http.StatusUnauthorized
	case CodeStorageUnavailable, CodeAdminDisabled:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
