package models

import "errors"

var (
	ErrAuthentication   = errors.New("webhook authentication failed")
	ErrMalformedPayload = errors.New("malformed webhook payload")
	ErrDispatch         = errors.New("pos dispatch failed")
	ErrConfiguration    = errors.New("webhook configuration error")
)
