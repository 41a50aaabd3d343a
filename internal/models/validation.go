package models

import "fmt"

// ValidationError is returned when a request or checkout field is missing
// or malformed. It blocks locally and never reaches the network layer.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}
