// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package version holds variables for generating version information.
package version

import "runtime"

// Version is this binary's version. Set with linker flags when building lambdeploy.
var Version = "v0.0.0-dev"

// Platform is the operating system and architecture that the binary is built for.
var Platform = runtime.GOOS + "/" + runtime.GOARCH
