// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package patch applies idempotent, in-memory changes to AWS resource descriptions
// such as role trust policies and CloudFront cache behaviors.
package patch

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

const (
	assumeRoleAction = "sts:AssumeRole"
	allowEffect      = "Allow"
)

// ErrInvalidArgument is returned when a patch is called with malformed input.
var ErrInvalidArgument = errors.New("invalid argument")

// AppendServiceToTrustPolicy returns a trust policy document that allows the service principal to assume the role.
// If a statement already allows the service to assume the role, doc is returned unchanged.
func AppendServiceToTrustPolicy(doc, service string) (string, error) {
	if service == "" {
		return "", fmt.Errorf("%w: service principal must not be empty", ErrInvalidArgument)
	}
	policy, err := decodeObject(doc)
	if err != nil {
		return "", fmt.Errorf("%w: parse trust policy: %v", ErrInvalidArgument, err)
	}
	statements, err := statementList(policy["Statement"])
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}
	for _, stmt := range statements {
		if allowsAssumeRole(stmt, service) {
			return doc, nil
		}
	}
	statements = append(statements, map[string]interface{}{
		"Effect": allowEffect,
		"Principal": map[string]interface{}{
			"Service": service,
		},
		"Action": assumeRoleAction,
	})
	policy["Statement"] = statements
	out, err := json.Marshal(policy)
	if err != nil {
		return "", fmt.Errorf("marshal trust policy: %w", err)
	}
	return string(out), nil
}

func decodeObject(doc string) (map[string]interface{}, error) {
	dec := json.NewDecoder(bytes.NewBufferString(doc))
	dec.UseNumber()
	var policy map[string]interface{}
	if err := dec.Decode(&policy); err != nil {
		return nil, err
	}
	if policy == nil {
		return nil, errors.New("document is not an object")
	}
	return policy, nil
}

// statementList normalizes the Statement element, which IAM accepts either as a single object or a list.
// A missing element is an empty list.
func statementList(v interface{}) ([]interface{}, error) {
	switch s := v.(type) {
	case nil:
		return nil, nil
	case []interface{}:
		return s, nil
	case map[string]interface{}:
		return []interface{}{s}, nil
	default:
		return nil, fmt.Errorf("trust policy Statement must be an object or a list, got %T", v)
	}
}

func allowsAssumeRole(v interface{}, service string) bool {
	stmt, ok := v.(map[string]interface{})
	if !ok {
		return false
	}
	if stmt["Effect"] != allowEffect || !containsString(stmt["Action"], assumeRoleAction) {
		return false
	}
	principal, ok := stmt["Principal"].(map[string]interface{})
	if !ok {
		return false
	}
	return containsString(principal["Service"], service)
}

// containsString reports whether v is s or a list that contains s.
func containsString(v interface{}, s string) bool {
	switch val := v.(type) {
	case string:
		return val == s
	case []interface{}:
		for _, item := range val {
			if item == s {
				return true
			}
		}
	}
	return false
}
