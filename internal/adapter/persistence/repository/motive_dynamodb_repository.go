package repository

import (
	"context"
	"log"
	"sort"

	"troca_medidores/internal/domain/entities"
	"troca_medidores/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const defaultMotivesTableName = "motives"

type motiveRow struct {
	Code  int    `dynamodbav:"code"`
	Label string `dynamodbav:"label"`
}

// MotiveDynamoRepository serves the closure-motive catalog. The catalog is a
// small fixed table; when it is empty or unreachable the in-code seed is
// returned instead, so the override selector never comes up blank in the
// field.
//
// Table requirements:
//   - PK: code (number)

type MotiveDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IMotiveCatalog = (*MotiveDynamoRepository)(nil)

func NewMotiveDynamoRepository(ddb *dynamodb.Client) *MotiveDynamoRepository {
	return &MotiveDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("MOTIVES_TABLE", defaultMotivesTableName),
	}
}

func (r *MotiveDynamoRepository) ListMotives(ctx context.Context) ([]entities.ClosureMotive, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		log.Printf("[motives][repository] scan failed table=%s err=%v (serving seed catalog)", r.tableName, err)
		return entities.DefaultMotiveCatalog(), nil
	}
	if len(out.Items) == 0 {
		return entities.DefaultMotiveCatalog(), nil
	}

	motives := make([]entities.ClosureMotive, 0, len(out.Items))
	for _, raw := range out.Items {
		var row motiveRow
		if err := attributevalue.UnmarshalMap(raw, &row); err != nil {
			return nil, err
		}
		motives = append(motives, entities.ClosureMotive{Code: row.Code, Label: row.Label})
	}
	sort.Slice(motives, func(i, j int) bool { return motives[i].Code < motives[j].Code })
	return motives, nil
}
