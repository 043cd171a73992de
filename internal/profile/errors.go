package profile

import "errors"

var (
	ErrDuplicateRegistryKey = errors.New("registry key already exists")
	ErrDuplicateDLL         = errors.New("dll override already exists")
	ErrDuplicateDrive       = errors.New("drive letter already assigned")
	ErrDuplicateFolder      = errors.New("desktop folder already mapped")
	ErrDuplicateVerb        = errors.New("winetricks verb already listed")
	ErrDuplicateDependency  = errors.New("dependency already listed")
	ErrDuplicateMount       = errors.New("folder mount already exists")
	ErrReservedEnvVar       = errors.New("environment variable reserved by the runtime")
	ErrReservedDrive        = errors.New("drive letter is reserved")
	ErrInvalidDriveLetter   = errors.New("invalid drive letter")
	ErrDPIOutOfRange        = errors.New("screen dpi out of range")
	ErrEntryNotFound        = errors.New("entry not found")
)
