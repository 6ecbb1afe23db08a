// numbers.go - numeric literal parsing shared by the lexer and evaluator

package z80asm

import (
	"errors"
	"strconv"
)

func parseHex(digits string) (int64, error) {
	if digits == "" {
		return 0, errEmptyNumber
	}
	v, err := strconv.ParseUint(digits, 16, 64)
	if err != nil {
		return 0, err
	}
	return int64(v), nil
}

func parseBinary(digits string) (int64, error) {
	if digits == "" {
		return 0, errEmptyNumber
	}
	v, err := strconv.ParseUint(digits, 2, 64)
	if err != nil {
		return 0, err
	}
	return int64(v), nil
}

func parseDecimal(digits string) (int64, error) {
	if digits == "" {
		return 0, errEmptyNumber
	}
	v, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0, err
	}
	return v, nil
}

var errEmptyNumber = errors.New("empty numeric literal")
