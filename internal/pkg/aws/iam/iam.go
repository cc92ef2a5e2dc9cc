// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package iam provides a client to make API requests to the AWS Identity and Access Management service.
package iam

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/arn"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/iam"
	"github.com/aws/lambdeploy/internal/pkg/patch"
)

type api interface {
	GetRole(input *iam.GetRoleInput) (*iam.GetRoleOutput, error)
	UpdateAssumeRolePolicy(input *iam.UpdateAssumeRolePolicyInput) (*iam.UpdateAssumeRolePolicyOutput, error)
	AttachRolePolicy(input *iam.AttachRolePolicyInput) (*iam.AttachRolePolicyOutput, error)
	ListAttachedRolePolicies(input *iam.ListAttachedRolePoliciesInput) (*iam.ListAttachedRolePoliciesOutput, error)
	DetachRolePolicy(input *iam.DetachRolePolicyInput) (*iam.DetachRolePolicyOutput, error)
	DeleteRolePolicy(input *iam.DeleteRolePolicyInput) (*iam.DeleteRolePolicyOutput, error)
	ListRolePolicies(input *iam.ListRolePoliciesInput) (*iam.ListRolePoliciesOutput, error)
	DeleteRole(input *iam.DeleteRoleInput) (*iam.DeleteRoleOutput, error)
}

// IAM wraps the AWS SDK's IAM client.
type IAM struct {
	client api
}

// New returns an IAM client configured against the input session.
func New(s *session.Session) *IAM {
	return &IAM{
		client: iam.New(s),
	}
}

// AssumeRolePolicy returns the decoded trust policy document of a role.
func (c *IAM) AssumeRolePolicy(roleNameOrARN string) (string, error) {
	roleName := RoleName(roleNameOrARN)
	out, err := c.client.GetRole(&iam.GetRoleInput{
		RoleName: aws.String(roleName),
	})
	if err != nil {
		return "", fmt.Errorf("get role %s: %w", roleName, err)
	}
	// IAM returns the policy document URL-encoded.
	doc, err := url.QueryUnescape(aws.StringValue(out.Role.AssumeRolePolicyDocument))
	if err != nil {
		return "", fmt.Errorf("decode trust policy of role %s: %w", roleName, err)
	}
	return doc, nil
}

// UpdateAssumeRolePolicy replaces the trust policy document of a role.
func (c *IAM) UpdateAssumeRolePolicy(roleNameOrARN, doc string) error {
	roleName := RoleName(roleNameOrARN)
	if _, err := c.client.UpdateAssumeRolePolicy(&iam.UpdateAssumeRolePolicyInput{
		RoleName:       aws.String(roleName),
		PolicyDocument: aws.String(doc),
	}); err != nil {
		return fmt.Errorf("update trust policy of role %s: %w", roleName, err)
	}
	return nil
}

// AddServiceToTrustPolicy allows the service principal to assume the role.
// It returns false without updating the role if the service could already assume it.
func (c *IAM) AddServiceToTrustPolicy(roleNameOrARN, service string) (bool, error) {
	doc, err := c.AssumeRolePolicy(roleNameOrARN)
	if err != nil {
		return false, err
	}
	patched, err := patch.AppendServiceToTrustPolicy(doc, service)
	if err != nil {
		return false, fmt.Errorf("add %s to trust policy of role %s: %w", service, RoleName(roleNameOrARN), err)
	}
	if patched == doc {
		return false, nil
	}
	if err := c.UpdateAssumeRolePolicy(roleNameOrARN, patched); err != nil {
		return false, err
	}
	return true, nil
}

// AttachRolePolicy attaches a managed policy to a role.
func (c *IAM) AttachRolePolicy(roleNameOrARN, policyARN string) error {
	roleName := RoleName(roleNameOrARN)
	if _, err := c.client.AttachRolePolicy(&iam.AttachRolePolicyInput{
		RoleName:  aws.String(roleName),
		PolicyArn: aws.String(policyARN),
	}); err != nil {
		return fmt.Errorf("attach policy %s to role %s: %w", policyARN, roleName, err)
	}
	return nil
}

// DeleteRole deletes an IAM role based on its name or ARN, after detaching its managed policies and deleting its inline policies.
// If the role does not exist it returns nil.
func (c *IAM) DeleteRole(roleNameOrARN string) error {
	roleName := RoleName(roleNameOrARN)
	if err := c.detachRolePolicies(roleName); err != nil {
		return err
	}
	if err := c.deleteRolePolicies(roleName); err != nil {
		return err
	}
	if _, err := c.client.DeleteRole(&iam.DeleteRoleInput{
		RoleName: aws.String(roleName),
	}); err != nil {
		if isNotExistErr(err) {
			// The role does not exist, exit successfully.
			return nil
		}
		return fmt.Errorf("delete role named %s: %w", roleName, err)
	}
	return nil
}

// RoleName returns the name of the role from its ARN, or the input unchanged if it is not an ARN.
func RoleName(roleNameOrARN string) string {
	parsed, err := arn.Parse(roleNameOrARN)
	if err != nil {
		return roleNameOrARN
	}
	// Sample ARN format: arn:aws:iam::1111:role/service-role/hello-executor
	resource := strings.TrimPrefix(parsed.Resource, "role/")
	return resource[strings.LastIndex(resource, "/")+1:]
}

func (c *IAM) detachRolePolicies(roleName string) error {
	var marker *string
	for {
		out, err := c.client.ListAttachedRolePolicies(&iam.ListAttachedRolePoliciesInput{
			Marker:   marker,
			RoleName: aws.String(roleName),
		})
		if err != nil {
			if isNotExistErr(err) {
				return nil
			}
			return fmt.Errorf("list attached policies for role %s: %w", roleName, err)
		}
		for _, policy := range out.AttachedPolicies {
			if _, err := c.client.DetachRolePolicy(&iam.DetachRolePolicyInput{
				PolicyArn: policy.PolicyArn,
				RoleName:  aws.String(roleName),
			}); err != nil {
				return fmt.Errorf("detach policy %s from role %s: %w", aws.StringValue(policy.PolicyArn), roleName, err)
			}
		}
		if !aws.BoolValue(out.IsTruncated) {
			return nil
		}
		marker = out.Marker
	}
}

func (c *IAM) deleteRolePolicies(roleName string) error {
	policyNames, err := c.listRolePolicyNames(roleName)
	if err != nil {
		return err
	}
	for _, policyName := range policyNames {
		if _, err := c.client.DeleteRolePolicy(&iam.DeleteRolePolicyInput{
			PolicyName: policyName,
			RoleName:   aws.String(roleName),
		}); err != nil {
			return fmt.Errorf("delete policy named %s in role %s: %w", aws.StringValue(policyName), roleName, err)
		}
	}
	return nil
}

func (c *IAM) listRolePolicyNames(roleName string) ([]*string, error) {
	var policyNames []*string
	var marker *string
	for {
		out, err := c.client.ListRolePolicies(&iam.ListRolePoliciesInput{
			Marker:   marker,
			RoleName: aws.String(roleName),
		})
		if err != nil {
			if isNotExistErr(err) {
				return nil, nil
			}
			return nil, fmt.Errorf("list role policies for role %s: %w", roleName, err)
		}
		policyNames = append(policyNames, out.PolicyNames...)
		if !aws.BoolValue(out.IsTruncated) {
			return policyNames, nil
		}
		marker = out.Marker
	}
}

func isNotExistErr(err error) bool {
	aerr, ok := err.(awserr.Error)
	if !ok {
		return false
	}
	switch aerr.Code() {
	case iam.ErrCodeNoSuchEntityException:
		return true
	default:
		return false
	}
}
