package table

import (
	"fmt"
	"strings"
)

// MissingColumnsError reports required columns absent from a table.
// Columns is always sorted.
type MissingColumnsError struct {
	Columns []string
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("table missing required columns: [%s]", strings.Join(e.Columns, ", "))
}
