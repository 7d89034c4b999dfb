package repository

import (
	"context"
	"strconv"
	"time"

	"troca_medidores/internal/domain/entities"
	"troca_medidores/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

const (
	defaultEvidencesTableName = "evidences"
	evidencesOrderIDIndex     = "order_id-index"
)

type evidenceItemRow struct {
	ID        string `dynamodbav:"id"`
	OrderID   string `dynamodbav:"order_id"`
	MediaURL  string `dynamodbav:"media_url"`
	IsVideo   bool   `dynamodbav:"is_video"`
	CreatedAt string `dynamodbav:"created_at"`
}

// EvidenceDynamoRepository tracks evidence references in DynamoDB. The media
// itself lives in the external object store; removing a row here does not
// delete the blob (the store's lifecycle rules handle that).
//
// Table requirements:
//   - PK: id (string)
//   - GSI: order_id-index (PK: order_id)

type EvidenceDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IEvidenceStore = (*EvidenceDynamoRepository)(nil)

func NewEvidenceDynamoRepository(ddb *dynamodb.Client) *EvidenceDynamoRepository {
	return &EvidenceDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("EVIDENCES_TABLE", defaultEvidencesTableName),
	}
}

func (r *EvidenceDynamoRepository) ListByOrderID(ctx context.Context, orderID int64) ([]entities.EvidenceItem, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(evidencesOrderIDIndex),
		KeyConditionExpression: aws.String("order_id = :oid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":oid": &types.AttributeValueMemberS{Value: orderKey(orderID)},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.EvidenceItem, 0, len(out.Items))
	for _, raw := range out.Items {
		var row evidenceItemRow
		if err := attributevalue.UnmarshalMap(raw, &row); err != nil {
			return nil, err
		}
		items = append(items, fromEvidenceRow(row))
	}
	return items, nil
}

func (r *EvidenceDynamoRepository) Add(ctx context.Context, orderID int64, mediaURL string, isVideo bool) (entities.EvidenceItem, error) {
	item := entities.EvidenceItem{
		ID:        uuid.NewString(),
		OrderID:   orderID,
		MediaURL:  mediaURL,
		IsVideo:   isVideo,
		CreatedAt: time.Now().UTC(),
	}

	av, err := attributevalue.MarshalMap(toEvidenceRow(item))
	if err != nil {
		return entities.EvidenceItem{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.EvidenceItem{}, err
	}
	return item, nil
}

func (r *EvidenceDynamoRepository) Remove(ctx context.Context, evidenceID string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: evidenceID},
		},
	})
	return err
}

func toEvidenceRow(e entities.EvidenceItem) evidenceItemRow {
	return evidenceItemRow{
		ID:        e.ID,
		OrderID:   orderKey(e.OrderID),
		MediaURL:  e.MediaURL,
		IsVideo:   e.IsVideo,
		CreatedAt: e.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromEvidenceRow(row evidenceItemRow) entities.EvidenceItem {
	orderID, _ := strconv.ParseInt(row.OrderID, 10, 64)
	createdAt, _ := time.Parse(time.RFC3339Nano, row.CreatedAt)
	return entities.EvidenceItem{
		ID:        row.ID,
		OrderID:   orderID,
		MediaURL:  row.MediaURL,
		IsVideo:   row.IsVideo,
		CreatedAt: createdAt,
	}
}
