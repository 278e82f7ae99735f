package sink

import (
	"fmt"
	"strings"
)

// Text joins message and args the way console loggers print them: operands
// separated by single spaces, no trailing newline.
func Text(message any, args []any) string {
	if len(args) == 0 {
		if s, ok := message.(string); ok {
			return s
		}
		return fmt.Sprint(message)
	}
	operands := make([]any, 0, len(args)+1)
	operands = append(operands, message)
	operands = append(operands, args...)
	return strings.TrimSuffix(fmt.Sprintln(operands...), "\n")
}
