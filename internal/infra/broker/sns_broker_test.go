package broker

import (
	"testing"

	"snsbridge/internal/domain/entity"
	"snsbridge/internal/domain/service"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns/types"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapSNSError_EndpointDisabled(t *testing.T) {
	err := mapSNSError(&types.EndpointDisabledException{Message: aws.String("Endpoint is disabled")})
	assert.ErrorIs(t, err, service.ErrEndpointDisabled)
}

func TestMapSNSError_InvalidTargetArn(t *testing.T) {
	err := mapSNSError(&types.InvalidParameterException{
		Message: aws.String("Invalid parameter: TargetArn Reason: No endpoint found"),
	})
	assert.ErrorIs(t, err, service.ErrInvalidTarget)
}

func TestMapSNSError_OtherInvalidParameter(t *testing.T) {
	// Parameter errors unrelated to the target ARN must not trigger local
	// registration cleanup.
	original := &types.InvalidParameterException{
		Message: aws.String("Invalid parameter: Message too long"),
	}
	err := mapSNSError(original)
	assert.NotErrorIs(t, err, service.ErrInvalidTarget)
	assert.ErrorIs(t, err, original)
}

func TestMapSNSError_NotFound(t *testing.T) {
	err := mapSNSError(&types.NotFoundException{Message: aws.String("Endpoint does not exist")})
	assert.ErrorIs(t, err, service.ErrInvalidTarget)
}

func TestMapSNSError_Passthrough(t *testing.T) {
	original := errors.New("throttled")
	assert.Equal(t, original, mapSNSError(original))
}

func TestApplicationARN(t *testing.T) {
	b := &snsBroker{
		apnsARN: "arn:aws:sns:us-east-1:123:app/APNS/discourse",
		gcmARN:  "arn:aws:sns:us-east-1:123:app/GCM/discourse",
	}

	arn, err := b.applicationARN(entity.PlatformIOS)
	require.NoError(t, err)
	assert.Equal(t, "arn:aws:sns:us-east-1:123:app/APNS/discourse", arn)

	arn, err = b.applicationARN(entity.PlatformAndroid)
	require.NoError(t, err)
	assert.Equal(t, "arn:aws:sns:us-east-1:123:app/GCM/discourse", arn)

	_, err = b.applicationARN(entity.Platform("windows"))
	assert.Error(t, err)
}

func TestApplicationARN_Unconfigured(t *testing.T) {
	b := &snsBroker{}

	_, err := b.applicationARN(entity.PlatformIOS)
	assert.Error(t, err)

	_, err = b.applicationARN(entity.PlatformAndroid)
	assert.Error(t, err)
}
