package errors

import (
	"encoding/json"
	"fmt"
)

// ErrorMessage is the error body the backend services answer with.
//
// All of them use the shape {"message": "..."}; some older endpoints
// use {"error": "..."} instead, and both are accepted here.
type ErrorMessage struct {
	Message string `json:"message"`
}

func (em *ErrorMessage) UnmarshalJSON(b []byte) error {
	f := new(struct {
		Message *string `json:"message"`
		Error   *string `json:"error"`
	})
	if err := json.Unmarshal(b, f); err != nil {
		return err
	}

	switch {
	case f.Message != nil:
		em.Message = *f.Message
	case f.Error != nil:
		em.Message = *f.Error
	default:
		return fmt.Errorf(`required field missing: "message"`)
	}
	return nil
}

func (em ErrorMessage) Error() string {
	return em.Message
}
