package utils

import "likenovel/internal/shared/constants"

// YN renders a boolean as the stored Y/N flag.
func YN(b bool) string {
	if b {
		return constants.FlagYes
	}
	return constants.FlagNo
}

// IsYes reports whether a stored flag is set.
func IsYes(s string) bool {
	return s == constants.FlagYes
}

// DefaultYN returns s when it is a valid flag, otherwise def.
func DefaultYN(s, def string) string {
	if s == constants.FlagYes || s == constants.FlagNo {
		return s
	}
	return def
}
