// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package s3

import (
	"bytes"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"github.com/aws/lambdeploy/internal/pkg/aws/s3/mocks"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

func TestS3_Upload(t *testing.T) {
	body := bytes.NewBufferString("PK")
	testCases := map[string]struct {
		mockS3Manager func(m *mocks.Mocks3ManagerAPI)

		wantedLocation string
		wantedErr      error
	}{
		"returns the location of the uploaded object": {
			mockS3Manager: func(m *mocks.Mocks3ManagerAPI) {
				m.EXPECT().Upload(&s3manager.UploadInput{
					Body:   body,
					Bucket: aws.String("deployments"),
					Key:    aws.String("hello-1234.zip"),
				}).Return(&s3manager.UploadOutput{
					Location: "https://deployments.s3.amazonaws.com/hello-1234.zip",
				}, nil)
			},
			wantedLocation: "https://deployments.s3.amazonaws.com/hello-1234.zip",
		},
		"wraps upload errors": {
			mockS3Manager: func(m *mocks.Mocks3ManagerAPI) {
				m.EXPECT().Upload(gomock.Any()).Return(nil, errors.New("some error"))
			},
			wantedErr: errors.New("upload hello-1234.zip to bucket deployments: some error"),
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			// GIVEN
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			m := mocks.NewMocks3ManagerAPI(ctrl)
			tc.mockS3Manager(m)
			client := &S3{s3Manager: m}

			// WHEN
			location, err := client.Upload("deployments", "hello-1234.zip", body)

			// THEN
			if tc.wantedErr != nil {
				require.EqualError(t, err, tc.wantedErr.Error())
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.wantedLocation, location)
		})
	}
}
