package catalog

import "fmt"

// Kind classifies why a lookup produced no result set.
type Kind int

const (
	// KindInvalidInput means the raw parameters could not be interpreted.
	KindInvalidInput Kind = iota + 1
	// KindNotFound covers unknown filter values and empty book sets.
	KindNotFound
	// KindEmpty means the referenced entity is valid but owns no books.
	KindEmpty
)

func (k Kind) String() string {
	switch k {
	case KindInvalidInput:
		return "invalid_input"
	case KindNotFound:
		return "not_found"
	case KindEmpty:
		return "empty"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Error is a lookup outcome the caller is expected to report verbatim.
type Error struct {
	Kind    Kind
	Code    string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func invalidInput(code, message string) *Error {
	return &Error{Kind: KindInvalidInput, Code: code, Message: message}
}

func notFound(code, message string) *Error {
	return &Error{Kind: KindNotFound, Code: code, Message: message}
}

func empty(code, message string) *Error {
	return &Error{Kind: KindEmpty, Code: code, Message: message}
}
