package errors

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// RequestFailedErr is raised when customers API responded with non-2xx status code
type RequestFailedErr struct {
	statusCode int
	message    string
}

func (e *RequestFailedErr) Error() string {
	return fmt.Sprintf("request failed with status %d - %s", e.statusCode, e.message)
}

func (e *RequestFailedErr) StatusCode() int {
	return e.statusCode
}

func (e *RequestFailedErr) Message() string {
	return e.message
}

func (e *RequestFailedErr) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Status  int    `json:"status"`
		Message string `json:"message"`
	}{Status: e.statusCode, Message: e.message})
}

func NewRequestFailedErr(statusCode int, msg string) *RequestFailedErr {
	if msg == "" {
		msg = http.StatusText(statusCode)
	}
	return &RequestFailedErr{
		statusCode: statusCode,
		message:    msg,
	}
}

type UnknownActionErr struct {
	action string
}

func (e *UnknownActionErr) Error() string {
	return fmt.Sprintf("unknown console action %q", e.action)
}

func NewUnknownActionErr(action string) *UnknownActionErr {
	return &UnknownActionErr{action: action}
}
