package services

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// check runs a single validator tag against value and returns failure when
// the value does not satisfy it.
func check(value interface{}, tag string, failure error) error {
	if err := validate.Var(value, tag); err != nil {
		return failure
	}
	return nil
}

func checkName(name string, tag string, failure error) error {
	return check(strings.TrimSpace(name), tag, failure)
}
