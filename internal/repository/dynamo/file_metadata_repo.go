package dynamo

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"cloudbox/internal/config"
	"cloudbox/internal/domain"
	"cloudbox/internal/port"
)

type fileMetadataRepo struct {
	client *dynamodb.Client
	table  string
}

// NewFileMetadataRepo creates a DynamoDB-backed FileMetadataRepository. The
// table is keyed by user_id (partition) and file_id (sort).
func NewFileMetadataRepo(awsCfg *config.AWSConfig, cfg *config.DynamoConfig) (port.FileMetadataRepository, error) {
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

	var ddbOpts []func(*dynamodb.Options)
	if awsCfg.Endpoint != "" {
		ddbOpts = append(ddbOpts, func(o *dynamodb.Options) {
			o.BaseEndpoint = aws.String(awsCfg.Endpoint)
		})
	}

	return &fileMetadataRepo{
		client: dynamodb.NewFromConfig(loaded, ddbOpts...),
		table:  cfg.Table,
	}, nil
}

func (r *fileMetadataRepo) Put(ctx context.Context, meta *domain.FileMetadata) error {
	item, err := attributevalue.MarshalMap(meta)
	if err != nil {
		return fmt.Errorf("marshaling metadata item: %w", err)
	}

	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.table),
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("dynamodb put item: %w", err)
	}
	return nil
}

func (r *fileMetadataRepo) Get(ctx context.Context, userID, fileID string) (*domain.FileMetadata, error) {
	result, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.table),
		Key: map[string]types.AttributeValue{
			"user_id": &types.AttributeValueMemberS{Value: userID},
			"file_id": &types.AttributeValueMemberS{Value: fileID},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("dynamodb get item: %w", err)
	}
	if result.Item == nil {
		return nil, domain.ErrNotFound
	}

	var meta domain.FileMetadata
	if err := attributevalue.UnmarshalMap(result.Item, &meta); err != nil {
		return nil, fmt.Errorf("unmarshaling metadata item: %w", err)
	}
	return &meta, nil
}

func (r *fileMetadataRepo) Ping(ctx context.Context) error {
	_, err := r.client.DescribeTable(ctx, &dynamodb.DescribeTableInput{
		TableName: aws.String(r.table),
	})
	if err != nil {
		return fmt.Errorf("dynamodb describe table: %w", err)
	}
	return nil
}
