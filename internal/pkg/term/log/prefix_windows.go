// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package log

// Log message prefixes.
const (
	successPrefix = "√ Success!"
	errorPrefix   = "X Error!"
	warningPrefix = "Note:"
)
