package cookie

import "errors"

var (
	ErrSecretTooShort   = errors.New("cookie.secret_too_short")
	ErrInvalidSignature = errors.New("cookie.invalid_signature")
	ErrInvalidFormat    = errors.New("cookie.invalid_format")
	ErrReservedName     = errors.New("cookie.reserved_name")
	ErrSigningDisabled  = errors.New("cookie.signing_disabled")
	ErrCookieNotFound   = errors.New("cookie.not_found")
)
