package domain

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
)

type stackTracer interface {
	StackTrace() errors.StackTrace
}

// traced keeps the stack recorded when a domain error is built.
// "%+v" prints the message followed by that stack.
type traced struct {
	cause error
}

func (t traced) Error() string {
	return t.cause.Error()
}

func (t traced) StackTrace() errors.StackTrace {
	if st, ok := t.cause.(stackTracer); ok {
		return st.StackTrace()
	}
	return nil
}

func (t traced) Format(s fmt.State, verb rune) {
	if f, ok := t.cause.(fmt.Formatter); ok {
		f.Format(s, verb)
		return
	}
	io.WriteString(s, t.cause.Error())
}

// InvalidColumnError is returned when a column outside 0..Columns-1 is played.
// The message keeps the historical "1 - 7" wording although columns are zero based.
type InvalidColumnError struct {
	traced
	Column int
}

func NewInvalidColumnError(column int) *InvalidColumnError {
	return &InvalidColumnError{
		traced: traced{cause: errors.Errorf("The column %d is not a valid column. Valid Columns are 1 - 7.", column)},
		Column: column,
	}
}

func (e *InvalidColumnError) Name() string {
	return "InvalidColumnError"
}

func (e *InvalidColumnError) Is(target error) bool {
	return target == ErrInvalidColumn
}

// ColumnFullError is returned when the played column already holds Rows discs.
type ColumnFullError struct {
	traced
	Column int
}

func NewColumnFullError(column int) *ColumnFullError {
	return &ColumnFullError{
		traced: traced{cause: errors.Errorf("The column %d is already full.", column)},
		Column: column,
	}
}

func (e *ColumnFullError) Name() string {
	return "ColumnFullError"
}

func (e *ColumnFullError) Is(target error) bool {
	return target == ErrColumnFull
}
