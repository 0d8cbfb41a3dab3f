package utils

import (
	"strconv"
)

// StringToInt converts s to int, returning 0 on failure.
func StringToInt(s string) int {
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return i
}

// StringToUint converts s to uint, returning 0 on failure or negative input.
func StringToUint(s string) uint {
	i, err := strconv.Atoi(s)
	if err != nil || i < 0 {
		return 0
	}
	return uint(i)
}
