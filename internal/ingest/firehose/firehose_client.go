package firehose

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/firehose"
	"github.com/aws/aws-sdk-go-v2/service/firehose/types"

	"cloudbox/internal/config"
	"cloudbox/internal/domain"
	"cloudbox/internal/port"
)

type firehoseClient struct {
	client *firehose.Client
	stream string
}

// NewFirehoseClient creates a Firehose-backed IngestPipeline implementation.
func NewFirehoseClient(awsCfg *config.AWSConfig, cfg *config.FirehoseConfig) (port.IngestPipeline, error) {
	var opts []func(*awsconfig.LoadOptions) error
	opts = append(opts, awsconfig.WithRegion(awsCfg.Region))

	if awsCfg.AccessKey != "" && awsCfg.SecretKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(awsCfg.AccessKey, awsCfg.SecretKey, ""),
		))
	}

	loaded, err := awsconfig.LoadDefaultConfig(context.Background(), opts...)
	if err != nil {
		return nil, fmt.Errorf("loading aws config: %w", err)
	}

	var fhOpts []func(*firehose.Options)
	if awsCfg.Endpoint != "" {
		fhOpts = append(fhOpts, func(o *firehose.Options) {
			o.BaseEndpoint = aws.String(awsCfg.Endpoint)
		})
	}

	return &firehoseClient{
		client: firehose.NewFromConfig(loaded, fhOpts...),
		stream: cfg.Stream,
	}, nil
}

// Emit serializes the record as JSON and puts it on the delivery stream. The
// trailing newline keeps records line-delimited for downstream consumers.
func (c *firehoseClient) Emit(ctx context.Context, meta *domain.FileMetadata) error {
	data, err := json.Marshal(meta)
	if err != nil {
		return fmt.Errorf("marshaling metadata record: %w", err)
	}
	data = append(data, '\n')

	_, err = c.client.PutRecord(ctx, &firehose.PutRecordInput{
		DeliveryStreamName: aws.String(c.stream),
		Record:             &types.Record{Data: data},
	})
	if err != nil {
		return fmt.Errorf("firehose put record: %w", err)
	}
	return nil
}
