// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package cli

// Long flag names.
const (
	// Common flags.
	sourceFlag  = "source"
	configFlag  = "config"
	profileFlag = "profile"
	versionFlag = "version"
	yesFlag     = "yes"

	// Command specific flags.
	stageFlag          = "stage"
	bucketFlag         = "use-s3-bucket"
	setEnvFlag         = "set-env"
	setEnvFromJSONFlag = "set-env-from-json"
	updateEnvFlag      = "update-env"
	envKMSKeyARNFlag   = "env-kms-key-arn"
	installOptionsFlag = "install-options"
	allFlag            = "all"
	handlerFlag        = "handler"
	apiModuleFlag      = "api-module"
	distributionFlag   = "distribution-id"
	pathPatternFlag    = "path-pattern"
	eventTypesFlag     = "event-types"
)

// Short flag names.
const (
	sourceFlagShort = "s"
	configFlagShort = "c"
)

// Descriptions for flags.
const (
	sourceFlagDescription  = "Directory of the project."
	configFlagDescription  = "Path of the project configuration file. Defaults to lambdeploy.json in the project directory."
	profileFlagDescription = "Name of the AWS profile."
	versionFlagDescription = "Function alias that the API stage invokes."
	yesFlagDescription     = "Skips confirmation prompt."

	stageFlagDescription          = "Optional. API stage to deploy. Defaults to the function alias."
	bucketFlagDescription         = "Optional. Uploads the archive to this S3 bucket instead of sending it inline."
	setEnvFlagDescription         = "Optional. Environment variables of the function, as KEY=VALUE pairs."
	setEnvFromJSONFlagDescription = "Optional. Path of a JSON file with the environment variables of the function."
	updateEnvFlagDescription      = "Keeps the existing environment variables that are not set."
	envKMSKeyARNFlagDescription   = "Optional. ARN of the KMS key that encrypts the environment variables."
	installOptionsFlagDescription = "Optional. Extra arguments for the dependency installation."
	allFlagDescription            = "Reports every problem instead of stopping at the first one."
	handlerFlagDescription        = "Optional. Handler in the module.function format. Overrides the project configuration."
	apiModuleFlagDescription      = "Optional. Module that exports the API router. Overrides the project configuration."
	distributionFlagDescription   = "ID of the CloudFront distribution."
	pathPatternFlagDescription    = "Path pattern of the cache behavior. Defaults to the default cache behavior."
	eventTypesFlagDescription     = "CloudFront events that invoke the function."
)
