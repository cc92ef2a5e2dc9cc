// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package descriptor

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func mustDecode(t *testing.T, in string) *Descriptor {
	t.Helper()
	var d Descriptor
	require.NoError(t, yaml.Unmarshal([]byte(in), &d))
	return &d
}

func TestValidate(t *testing.T) {
	testCases := map[string]struct {
		inDescriptor string

		wantedErr  string
		wantedRule Rule
	}{
		"accepts a well formed descriptor": {
			inDescriptor: `{"version":4,"routes":{"hello":{"GET":{"customAuthorizer":"first"}}},"authorizers":{"first":{"lambdaName":"auth"}}}`,
		},
		"rejects descriptors that are too old": {
			inDescriptor: `{"version":3}`,
			wantedErr:    "api uses API descriptor version 3 which is too old, lambdeploy requires version 4",
		},
		"rejects descriptors that are too new": {
			inDescriptor: `{"version":5,"routes":{"hello":{"GET":{}}}}`,
			wantedErr:    "api uses API descriptor version 5 which is too new, this lambdeploy supports version 4",
		},
		"rejects descriptors without routes": {
			inDescriptor: `{"version":4,"routes":{}}`,
			wantedErr:    "api does not configure any API methods",
			wantedRule:   RuleNoRoutes,
		},
		"rejects success headers without names": {
			inDescriptor: `{"version":4,"routes":{"echo":{"POST":{"success":{"headers":[]}}}}}`,
			wantedErr:    "api POST /echo requests custom headers but does not enumerate any headers",
			wantedRule:   RuleSuccessHeaders,
		},
		"rejects error headers without names": {
			inDescriptor: `{"version":4,"routes":{"echo":{"POST":{"error":{"headers":{}}}}}}`,
			wantedErr:    "api POST /echo error template requests custom headers but does not enumerate any headers",
			wantedRule:   RuleErrorHeaders,
		},
		"rejects custom authorizers when there is no authorizer table": {
			inDescriptor: `{"version":4,"routes":{"hello":{"GET":{"customAuthorizer":"X"}}}}`,
			wantedErr:    "api GET /hello requests an undefined custom authorizer X",
			wantedRule:   RuleUndefinedCustomAuthorizer,
		},
		"rejects undefined cognito authorizers": {
			inDescriptor: `{"version":4,"routes":{"hello":{"GET":{"cognitoAuthorizer":"pool"}}},"authorizers":{"first":{"lambdaName":"auth"}}}`,
			wantedErr:    "api GET /hello requests an undefined cognito authorizer pool",
			wantedRule:   RuleUndefinedCognitoAuthorizer,
		},
		"rejects unsupported authorization types": {
			inDescriptor: `{"version":4,"routes":{"hello":{"GET":{"authorizationType":"SAML"}}}}`,
			wantedErr:    "api GET /hello authorization type SAML is not supported",
			wantedRule:   RuleUnsupportedAuthorization,
		},
		"rejects IAM authorization with a custom authorizer": {
			inDescriptor: `{"version":4,"routes":{"hello":{"GET":{"authorizationType":"AWS_IAM","customAuthorizer":"first"}}},"authorizers":{"first":{"lambdaName":"auth"}}}`,
			wantedErr:    "api GET /hello authorization type AWS_IAM is incompatible with custom authorizers",
			wantedRule:   RuleCustomAuthorizerConflict,
		},
		"rejects custom authorization with a cognito authorizer": {
			inDescriptor: `{"version":4,"routes":{"hello":{"GET":{"authorizationType":"CUSTOM","cognitoAuthorizer":"pool"}}},"authorizers":{"pool":{"providerARNs":["arn:aws:cognito-idp:us-east-1:123456789012:userpool/us-east-1_x"]}}}`,
			wantedErr:    "api GET /hello authorization type CUSTOM is incompatible with cognito authorizers",
			wantedRule:   RuleCognitoAuthorizerConflict,
		},
		"rejects invokeWithCredentials without IAM authorization": {
			inDescriptor: `{"version":4,"routes":{"hello":{"GET":{"authorizationType":"NONE","invokeWithCredentials":true}}}}`,
			wantedErr:    "api GET /hello authorization type NONE is incompatible with invokeWithCredentials",
			wantedRule:   RuleCredentialsConflict,
		},
		"accepts invokeWithCredentials with IAM authorization": {
			inDescriptor: `{"version":4,"routes":{"hello":{"GET":{"authorizationType":"AWS_IAM","invokeWithCredentials":"arn:aws:iam::123456789012:role/invoker"}}}}`,
		},
		"rejects scopes without a cognito authorizer": {
			inDescriptor: `{"version":4,"routes":{"hello":{"GET":{"authorizationScopes":["email"]}}}}`,
			wantedErr:    "api GET /hello authorizationScopes requires a cognitoAuthorizer",
			wantedRule:   RuleScopesRequireCognito,
		},
		"rejects scopes that are not a list": {
			inDescriptor: `{"version":4,"routes":{"hello":{"GET":{"cognitoAuthorizer":"pool","authorizationScopes":"email"}}},"authorizers":{"pool":{"providerARNs":["arn:pool"]}}}`,
			wantedErr:    "api GET /hello authorizationScopes must be an array",
			wantedRule:   RuleScopesNotList,
		},
		"rejects authorizers without an identity": {
			inDescriptor: `{"version":4,"routes":{"hello":{"GET":{}}},"authorizers":{"first":{"headerName":"Authorization"}}}`,
			wantedErr:    "api authorizer first requires either lambdaName or lambdaArn",
			wantedRule:   RuleAuthorizerMissingIdentity,
		},
		"rejects authorizers with both a name and an ARN": {
			inDescriptor: `{"version":4,"routes":{"hello":{"GET":{}}},"authorizers":{"first":{"lambdaName":"auth","lambdaArn":"arn:aws:lambda:us-east-1:123456789012:function:auth"}}}`,
			wantedErr:    "api authorizer first is ambiguous - both lambdaName and lambdaArn are defined",
			wantedRule:   RuleAuthorizerAmbiguousIdentity,
		},
		"rejects authorizer versions that are neither a string nor true": {
			inDescriptor: `{"version":4,"routes":{"hello":{"GET":{}}},"authorizers":{"first":{"lambdaName":"auth","lambdaVersion":2}}}`,
			wantedErr:    "api authorizer first lambdaVersion must be either string or true",
			wantedRule:   RuleAuthorizerVersionShape,
		},
		"rejects authorizer versions with an ARN": {
			inDescriptor: `{"version":4,"routes":{"hello":{"GET":{}}},"authorizers":{"first":{"lambdaArn":"arn:aws:lambda:us-east-1:123456789012:function:auth","lambdaVersion":true}}}`,
			wantedErr:    "api authorizer first is ambiguous - cannot use lambdaVersion with lambdaArn",
			wantedRule:   RuleAuthorizerVersionWithARN,
		},
		"validates authorizers even if no method references them": {
			inDescriptor: `{"version":4,"routes":{"hello":{"GET":{}}},"authorizers":{"unused":{"lambdaName":"auth","lambdaArn":"arn"}}}`,
			wantedErr:    "api authorizer unused is ambiguous - both lambdaName and lambdaArn are defined",
			wantedRule:   RuleAuthorizerAmbiguousIdentity,
		},
		"reports the first route in path order": {
			inDescriptor: `{"version":4,"routes":{"b/c":{"GET":{"authorizationType":"X"}},"a":{"PUT":{"authorizationType":"Y"},"DELETE":{"authorizationType":"Z"}}}}`,
			wantedErr:    "api DELETE /a authorization type Z is not supported",
			wantedRule:   RuleUnsupportedAuthorization,
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			// GIVEN
			d := mustDecode(t, tc.inDescriptor)

			// WHEN
			err := Validate("api", d)

			// THEN
			if tc.wantedErr == "" {
				require.NoError(t, err)
				return
			}
			require.EqualError(t, err, tc.wantedErr)
			if tc.wantedRule != "" {
				var invalid *ErrInvalidDescriptor
				require.True(t, errors.As(err, &invalid))
				require.Equal(t, tc.wantedRule, invalid.Rule)
			}
		})
	}
}

func TestValidate_StructuredError(t *testing.T) {
	// GIVEN
	d := mustDecode(t, `{"version":4,"routes":{"/users/{id}/":{"PATCH":{"customAuthorizer":"X"}}}}`)

	// WHEN
	err := Validate("src/api", d)

	// THEN
	var invalid *ErrInvalidDescriptor
	require.True(t, errors.As(err, &invalid))
	require.Equal(t, &ErrInvalidDescriptor{
		Module: "src/api",
		Route:  "/users/{id}",
		Method: "PATCH",
		Rule:   RuleUndefinedCustomAuthorizer,
		Detail: "requests an undefined custom authorizer X",
	}, invalid)
}

func TestValidate_UnsupportedVersionRecommendsUpgrades(t *testing.T) {
	var tooOld, tooNew *ErrUnsupportedVersion
	require.True(t, errors.As(Validate("api", &Descriptor{Version: 3}), &tooOld))
	require.True(t, errors.As(Validate("api", &Descriptor{Version: 5}), &tooNew))

	require.Contains(t, tooOld.RecommendActions(), "API builder library")
	require.Contains(t, tooNew.RecommendActions(), "Upgrade your lambdeploy installation")
}

func TestValidateAll(t *testing.T) {
	t.Run("collects every violation", func(t *testing.T) {
		// GIVEN
		d := mustDecode(t, `{"version":4,"routes":{"hello":{"GET":{"authorizationType":"NONE","customAuthorizer":"X","invokeWithCredentials":true}}},"authorizers":{"first":{}}}`)

		// WHEN
		err := ValidateAll("api", d)

		// THEN
		var all *ErrInvalidDescriptors
		require.True(t, errors.As(err, &all))
		var rules []Rule
		for _, v := range all.Errors {
			rules = append(rules, v.Rule)
		}
		require.Equal(t, []Rule{
			RuleUndefinedCustomAuthorizer,
			RuleCustomAuthorizerConflict,
			RuleCredentialsConflict,
			RuleAuthorizerMissingIdentity,
		}, rules)
		require.Contains(t, err.Error(), "found 4 problems in the API descriptor:\n- api GET /hello requests an undefined custom authorizer X")
	})
	t.Run("returns nil for valid descriptors", func(t *testing.T) {
		d := mustDecode(t, `{"version":4,"routes":{"":{"GET":{}}}}`)

		require.NoError(t, ValidateAll("api", d))
	})
	t.Run("returns version errors on their own", func(t *testing.T) {
		var unsupported *ErrUnsupportedVersion
		require.True(t, errors.As(ValidateAll("api", &Descriptor{Version: 2}), &unsupported))
	})
	t.Run("uses the singular for one problem", func(t *testing.T) {
		d := mustDecode(t, `{"version":4,"routes":{"hello":{"GET":{"authorizationType":"X"}}}}`)

		require.EqualError(t, ValidateAll("api", d), "found 1 problem in the API descriptor:\n- api GET /hello authorization type X is not supported")
	})
}
