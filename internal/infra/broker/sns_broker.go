// Package broker implements the push broker contract against Amazon SNS.
package broker

import (
	"context"
	"strings"

	snsbridgecfg "snsbridge/config"
	"snsbridge/internal/domain/entity"
	"snsbridge/internal/domain/service"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	awssns "github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/aws/aws-sdk-go-v2/service/sns/types"
	"github.com/pkg/errors"
)

// snsBroker implements the service.PushBroker interface using Amazon SNS
// platform endpoints.
type snsBroker struct {
	client  *awssns.Client
	apnsARN string
	gcmARN  string
}

// New creates an SNS-backed push broker. Explicit credentials in the config
// take precedence over the ambient AWS credential chain.
func New(ctx context.Context, cfg *snsbridgecfg.SNSConfig) (service.PushBroker, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKeyID != "" && cfg.SecretAccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load AWS config")
	}

	return &snsBroker{
		client:  awssns.NewFromConfig(awsCfg),
		apnsARN: cfg.APNSApplicationARN,
		gcmARN:  cfg.GCMApplicationARN,
	}, nil
}

// applicationARN resolves the platform application the token registers under.
func (b *snsBroker) applicationARN(platform entity.Platform) (string, error) {
	switch platform {
	case entity.PlatformIOS:
		if b.apnsARN == "" {
			return "", errors.New("APNS application ARN is not configured")
		}

		return b.apnsARN, nil
	case entity.PlatformAndroid:
		if b.gcmARN == "" {
			return "", errors.New("GCM application ARN is not configured")
		}

		return b.gcmARN, nil
	default:
		return "", errors.Errorf("unknown platform: %s", platform)
	}
}

// CreateEndpoint registers a device token and returns the endpoint ARN.
// SNS returns the existing ARN when the token is already registered.
func (b *snsBroker) CreateEndpoint(ctx context.Context, deviceToken string, platform entity.Platform) (string, error) {
	appARN, err := b.applicationARN(platform)
	if err != nil {
		return "", err
	}

	out, err := b.client.CreatePlatformEndpoint(ctx, &awssns.CreatePlatformEndpointInput{
		PlatformApplicationArn: aws.String(appARN),
		Token:                  aws.String(deviceToken),
	})
	if err != nil {
		return "", errors.Wrap(mapSNSError(err), "failed to create platform endpoint")
	}

	return aws.ToString(out.EndpointArn), nil
}

// GetEndpointAttributes fetches the endpoint's attribute map.
func (b *snsBroker) GetEndpointAttributes(ctx context.Context, endpointARN string) (service.EndpointAttributes, error) {
	out, err := b.client.GetEndpointAttributes(ctx, &awssns.GetEndpointAttributesInput{
		EndpointArn: aws.String(endpointARN),
	})
	if err != nil {
		return nil, errors.Wrap(mapSNSError(err), "failed to get endpoint attributes")
	}

	return service.EndpointAttributes(out.Attributes), nil
}

// DeleteEndpoint removes the endpoint from the platform application.
func (b *snsBroker) DeleteEndpoint(ctx context.Context, endpointARN string) error {
	_, err := b.client.DeleteEndpoint(ctx, &awssns.DeleteEndpointInput{
		EndpointArn: aws.String(endpointARN),
	})
	if err != nil {
		return errors.Wrap(mapSNSError(err), "failed to delete endpoint")
	}

	return nil
}

// Publish sends a pre-built platform message envelope to the endpoint.
func (b *snsBroker) Publish(ctx context.Context, endpointARN string, message string) error {
	_, err := b.client.Publish(ctx, &awssns.PublishInput{
		MessageStructure: aws.String("json"),
		Message:          aws.String(message),
		TargetArn:        aws.String(endpointARN),
	})
	if err != nil {
		return errors.Wrap(mapSNSError(err), "failed to publish to endpoint")
	}

	return nil
}

// mapSNSError translates SNS API errors into the domain sentinels the
// reconciliation and dispatch flows act on.
func mapSNSError(err error) error {
	var disabled *types.EndpointDisabledException
	if errors.As(err, &disabled) {
		return service.ErrEndpointDisabled
	}

	var invalid *types.InvalidParameterException
	if errors.As(err, &invalid) {
		// Only a bad TargetArn means the endpoint is gone. Other parameter
		// errors (oversized payload, malformed token) stay as-is.
		if strings.Contains(aws.ToString(invalid.Message), "TargetArn") {
			return service.ErrInvalidTarget
		}
	}

	var notFound *types.NotFoundException
	if errors.As(err, &notFound) {
		return service.ErrInvalidTarget
	}

	return err
}
