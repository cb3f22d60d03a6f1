// Package command turns positional command-line arguments into a Command.
package command

import (
	"errors"
	"strconv"
	"strings"
)

const (
	nameSend    = "send"
	nameBalance = "balance"
)

// ErrInvalidAmount is returned when the send amount is not a non-negative
// 64-bit integer.
var ErrInvalidAmount = errors.New("invalid amount")

// ParseError reports arguments that do not form a known command.
type ParseError struct {
	Reason string
}

func (e *ParseError) Error() string {
	return "parse error: " + e.Reason
}

// Command is one of Send or Balance.
type Command interface {
	Name() string
}

// Send transfers Amount satoshis to Address.
type Send struct {
	Amount  uint64
	Address string
}

// Name implements Command.
func (Send) Name() string { return nameSend }

// Balance reports the wallet balance.
type Balance struct{}

// Name implements Command.
func (Balance) Name() string { return nameBalance }

// Parse maps args (without the program name) onto a Command. It reports
// problems as errors and never exits.
func Parse(args []string) (Command, error) {
	if len(args) == 0 {
		return nil, &ParseError{Reason: "no command provided"}
	}

	switch name, rest := args[0], args[1:]; {
	case name == nameBalance && len(rest) == 0:
		return Balance{}, nil
	case name == nameSend && len(rest) == 2:
		digits, _ := strings.CutPrefix(rest[0], "+")
		amount, err := strconv.ParseUint(digits, 10, 64)
		if err != nil {
			return nil, ErrInvalidAmount
		}
		return Send{Amount: amount, Address: rest[1]}, nil
	case name == nameSend:
		return nil, &ParseError{Reason: "send requires additional arguments: amount and address"}
	default:
		return nil, &ParseError{Reason: "invalid command"}
	}
}
