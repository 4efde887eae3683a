package home

import "errors"

var (
	ErrDeviceNotFound   = errors.New("device not found")
	ErrSecurityNotFound = errors.New("security system not found")
	ErrMediaNotFound    = errors.New("media control not found")
)
