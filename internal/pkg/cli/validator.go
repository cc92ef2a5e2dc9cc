// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"errors"
	"regexp"

	"github.com/go-playground/validator/v10"
)

var (
	// API Gateway stage and Lambda alias names.
	resourceNameRegexp = regexp.MustCompile(`^[a-zA-Z0-9_-]{1,128}$`)
	numberRegexp       = regexp.MustCompile(`^[0-9]+$`)
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("resourcename", func(fl validator.FieldLevel) bool {
		return resourceNameRegexp.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("aliasname", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		return resourceNameRegexp.MatchString(s) && !numberRegexp.MatchString(s)
	})
	return v
}

// validateFlag checks the value of a flag against validator tags.
func validateFlag(flag string, value interface{}, tags string) error {
	err := validate.Var(value, tags)
	if err == nil {
		return nil
	}
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return err
	}
	return &errInvalidFlag{
		flag:  flag,
		value: errs[0].Value(),
		rule:  errs[0].Tag(),
		param: errs[0].Param(),
	}
}
