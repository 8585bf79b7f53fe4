// Package entity holds the JSON envelope shared by every API response.
package entity

// Msg is the response envelope. Errors is only present on validation
// failures and maps a JSON field name to its messages.
type Msg struct {
	Message   string              `json:"message"`
	Data      any                 `json:"data"`
	IsSuccess bool                `json:"isSuccess"`
	Errors    map[string][]string `json:"errors,omitempty"`
}

func OK(message string, data any) Msg {
	return Msg{Message: message, Data: data, IsSuccess: true}
}

func Fail(message string, errs map[string][]string) Msg {
	return Msg{Message: message, IsSuccess: false, Errors: errs}
}
