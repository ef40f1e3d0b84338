package form

import "errors"

var (
	ErrNoVolumes          = errors.New("no volume or templates to edit")
	ErrUnknownMountPoint  = errors.New("unknown mount point")
	ErrUnknownAction      = errors.New("unknown form action")
	ErrPolicyNotAvailable = errors.New("sizing policy not available for volume")
	ErrSubmitCallback     = errors.New("submit callback failed")
)
