package outcome

import "fmt"

// Content identifies which payload a Result currently holds.
type Content uint8

const (
	// ContentEmpty means the Result holds no payload. It is the zero
	// value, so a zero Result reports ContentEmpty.
	ContentEmpty Content = iota
	// ContentValue means the Result holds a success value.
	ContentValue
	// ContentError means the Result holds an Error.
	ContentError
)

func (c Content) String() string {
	switch c {
	case ContentEmpty:
		return "Empty"
	case ContentValue:
		return "Value"
	case ContentError:
		return "Error"
	default:
		return fmt.Sprintf("Content(%d)", uint8(c))
	}
}
