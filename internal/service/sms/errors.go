package sms

import "errors"

var (
	ErrMissingRequiredFields  = errors.New("missing required fields")
	ErrUndefinedIntent        = errors.New("undefined sms intent")
	ErrInvalidProviderStatus  = errors.New("invalid provider status")
	ErrInvalidStatusChange    = errors.New("sms status does not allow this action")
	ErrSmsNotFound            = errors.New("sms not found")
	ErrUnknownMessage         = errors.New("unknown provider message id")
	ErrResendCooldown         = errors.New("sms was sent to this parcel recently")
	ErrParcelCancelled        = errors.New("parcel is cancelled")
	ErrHouseholdNotReachable  = errors.New("household has no phone number")
)
