package errors

import "fmt"

type NilArgumentError struct {
	argument string
}

func NewNilArgumentError(argument string) *NilArgumentError {
	return &NilArgumentError{argument: argument}
}

func (e *NilArgumentError) Error() string {
	return fmt.Sprintf("argument '%s' must not be nil", e.argument)
}

type InvalidConfigError struct {
	component string
	err       error
}

func NewInvalidConfigError(component string, err error) *InvalidConfigError {
	return &InvalidConfigError{component: component, err: err}
}

func (e *InvalidConfigError) Error() string {
	return fmt.Sprintf("invalid %s configuration: %v", e.component, e.err)
}

func (e *InvalidConfigError) Unwrap() error {
	return e.err
}
