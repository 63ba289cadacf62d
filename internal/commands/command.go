package commands

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/sandeepkv93/todo/internal/model"
)

type Type string

const (
	TypeAdd    Type = "add"
	TypeToggle Type = "toggle"
	TypeDelete Type = "delete"
	TypeShow   Type = "show"
	TypeCopy   Type = "copy"
)

var aliases = map[string]Type{
	"a":    TypeAdd,
	"t":    TypeToggle,
	"done": TypeToggle,
	"rm":   TypeDelete,
	"del":  TypeDelete,
	"s":    TypeShow,
	"yank": TypeCopy,
}

type ErrorCode string

const (
	ErrCodeEmptyInput      ErrorCode = "empty_input"
	ErrCodeUnknownCommand  ErrorCode = "unknown_command"
	ErrCodeInvalidArgument ErrorCode = "invalid_argument"
	ErrCodeHandlerMissing  ErrorCode = "handler_missing"
)

type CommandError struct {
	Code    ErrorCode
	Message string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

type AddArgs struct {
	Text string
}

type ToggleArgs struct {
	ID model.TaskID
}

type DeleteArgs struct {
	ID model.TaskID
}

type ShowArgs struct {
	Mode model.FilterMode
}

type Command struct {
	Type   Type
	Raw    string
	Add    *AddArgs
	Toggle *ToggleArgs
	Delete *DeleteArgs
	Show   *ShowArgs
}

func Parse(input string) (Command, error) {
	raw := strings.TrimSpace(input)
	raw = strings.TrimSpace(strings.TrimPrefix(raw, "/"))
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}

	head, rest, _ := strings.Cut(raw, " ")
	head = strings.ToLower(head)
	kind := Type(head)
	if alias, ok := aliases[head]; ok {
		kind = alias
	}

	switch kind {
	case TypeAdd:
		return parseAdd(input, rest)
	case TypeToggle:
		id, err := parseID(kind, rest)
		if err != nil {
			return Command{}, err
		}
		return Command{Type: TypeToggle, Raw: input, Toggle: &ToggleArgs{ID: id}}, nil
	case TypeDelete:
		id, err := parseID(kind, rest)
		if err != nil {
			return Command{}, err
		}
		return Command{Type: TypeDelete, Raw: input, Delete: &DeleteArgs{ID: id}}, nil
	case TypeShow:
		return parseShow(input, rest)
	case TypeCopy:
		return Command{Type: TypeCopy, Raw: input}, nil
	default:
		return Command{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unsupported command: %s", head)}
	}
}

func parseAdd(raw string, rest string) (Command, error) {
	rest = strings.TrimLeft(rest, " ")
	if !model.HasText(rest) {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "add requires task text"}
	}
	return Command{Type: TypeAdd, Raw: raw, Add: &AddArgs{Text: rest}}, nil
}

func parseID(kind Type, rest string) (model.TaskID, error) {
	fields := strings.Fields(rest)
	if len(fields) != 1 {
		return 0, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("%s requires exactly one task id", kind)}
	}
	n, err := strconv.ParseInt(strings.TrimPrefix(fields[0], "#"), 10, 64)
	if err != nil || n <= 0 {
		return 0, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("invalid task id: %s", fields[0])}
	}
	return model.TaskID(n), nil
}

func parseShow(raw string, rest string) (Command, error) {
	if strings.TrimSpace(rest) == "" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "show requires all, completed or uncompleted"}
	}
	mode, err := model.ParseFilterMode(rest)
	if err != nil {
		if errors.Is(err, model.ErrInvalidFilter) {
			return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("unknown filter: %s", strings.TrimSpace(rest))}
		}
		return Command{}, err
	}
	return Command{Type: TypeShow, Raw: raw, Show: &ShowArgs{Mode: mode}}, nil
}
