package utils

import "github.com/go-playground/validator/v10"

// Validate is the shared validator instance used by controllers for
// request-body validation.
var Validate = validator.New()
