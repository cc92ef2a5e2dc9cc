// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestErrNoProjectConfig(t *testing.T) {
	err := &ErrNoProjectConfig{Path: "lambdeploy.json"}
	require.EqualError(t, err, "couldn't find the project configuration lambdeploy.json")
	require.Contains(t, err.RecommendActions(), "--config")
}

func TestErrNoProjectConfig_Is(t *testing.T) {
	err := &ErrNoProjectConfig{Path: "lambdeploy.json"}
	testCases := map[string]struct {
		wantedSame bool
		otherError error
	}{
		"errors are same": {
			wantedSame: true,
			otherError: &ErrNoProjectConfig{Path: "lambdeploy.json"},
		},
		"errors have different values": {
			wantedSame: false,
			otherError: &ErrNoProjectConfig{Path: "other.json"},
		},
		"errors are different type": {
			wantedSame: false,
			otherError: errors.New("different error"),
		},
	}
	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			require.Equal(t, err.Is(tc.otherError), tc.wantedSame)
		})
	}
}
