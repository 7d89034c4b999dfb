package repository

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"time"

	"troca_medidores/internal/domain/entities"
	"troca_medidores/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultOrdersTableName = "orders"

type orderItem struct {
	ID string `dynamodbav:"id"`

	ResidentPresent          string `dynamodbav:"resident_present,omitempty"`
	ClientAcceptsChange      string `dynamodbav:"client_accepts_change,omitempty"`
	MeterSerialMatches       string `dynamodbav:"meter_serial_matches,omitempty"`
	MeterDamaged             string `dynamodbav:"meter_damaged,omitempty"`
	HasGrateOrWeld           string `dynamodbav:"has_grate_or_weld,omitempty"`
	GrateRemovable           string `dynamodbav:"grate_removable,omitempty"`
	LeakOutsideZone          string `dynamodbav:"leak_outside_zone,omitempty"`
	ValveLeak                string `dynamodbav:"valve_leak,omitempty"`
	ValveOperable            string `dynamodbav:"valve_operable,omitempty"`
	LeakPersistsAfterValveOp string `dynamodbav:"leak_persists_after_valve_op,omitempty"`

	NewMeterSerial   string   `dynamodbav:"new_meter_serial,omitempty"`
	NewReading       *float64 `dynamodbav:"new_reading,omitempty"`
	RegulatorPresent string   `dynamodbav:"regulator_present,omitempty"`
	FlexibleHoseType string   `dynamodbav:"flexible_hose_type,omitempty"`
	Notes            string   `dynamodbav:"notes,omitempty"`

	ClosureMotive *int     `dynamodbav:"closure_motive,omitempty"`
	Signature     string   `dynamodbav:"signature,omitempty"`
	Latitude      *float64 `dynamodbav:"latitude,omitempty"`
	Longitude     *float64 `dynamodbav:"longitude,omitempty"`

	CurrentStep  int    `dynamodbav:"current_step,omitempty"`
	FirstVisitAt string `dynamodbav:"first_visit_at,omitempty"`
	FinalizedAt  string `dynamodbav:"finalized_at,omitempty"`
	Status       string `dynamodbav:"status,omitempty"`
}

// OrderDynamoRepository is the Order Store adapter. Orders are created by the
// back office (out of scope here); this repository only reads records and
// applies field-level partial updates, matching the mutation queue's
// coalesced-map flush.
//
// Table requirements:
//   - PK: id (order identifier as a numeric string)

type OrderDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IOrderStore = (*OrderDynamoRepository)(nil)

// writableAttributes whitelists the attribute names UpdateFields accepts, so
// a malformed flush cannot touch back-office columns.
var writableAttributes = buildWritableAttributes()

func buildWritableAttributes() map[string]bool {
	m := map[string]bool{
		entities.FieldNewMeterSerial:   true,
		entities.FieldNewReading:       true,
		entities.FieldRegulatorPresent: true,
		entities.FieldFlexibleHoseType: true,
		entities.FieldNotes:            true,
		entities.FieldClosureMotive:    true,
		entities.FieldSignature:        true,
		entities.FieldLatitude:         true,
		entities.FieldLongitude:        true,
		entities.FieldCurrentStep:      true,
		entities.FieldFirstVisitAt:     true,
		entities.FieldFinalizedAt:      true,
	}
	for _, q := range entities.Questions {
		m[string(q)] = true
	}
	return m
}

func NewOrderDynamoRepository(ddb *dynamodb.Client) *OrderDynamoRepository {
	return &OrderDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ORDERS_TABLE", defaultOrdersTableName),
	}
}

func (r *OrderDynamoRepository) GetByID(ctx context.Context, orderID int64) (entities.InspectionRecord, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: orderKey(orderID)},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.InspectionRecord{}, err
	}
	if len(out.Item) == 0 {
		return entities.InspectionRecord{}, nil
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.InspectionRecord{}, err
	}
	return fromOrderItem(it), nil
}

// UpdateFields applies one coalesced batch as a single SET expression. Field
// names are attribute names; the whole batch lands atomically or not at all.
func (r *OrderDynamoRepository) UpdateFields(ctx context.Context, orderID int64, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}

	// Stable order keeps the expression deterministic for logging and tests.
	names := make([]string, 0, len(fields))
	for name := range fields {
		if !writableAttributes[name] {
			return fmt.Errorf("attribute %q is not writable", name)
		}
		names = append(names, name)
	}
	sort.Strings(names)

	expr := "SET "
	exprNames := map[string]string{"#id": "id"}
	exprValues := make(map[string]types.AttributeValue, len(fields))
	for i, name := range names {
		av, err := attributevalue.Marshal(fields[name])
		if err != nil {
			return fmt.Errorf("marshal attribute %q: %w", name, err)
		}
		ph := fmt.Sprintf("%d", i)
		if i > 0 {
			expr += ", "
		}
		expr += "#f" + ph + " = :v" + ph
		exprNames["#f"+ph] = name
		exprValues[":v"+ph] = av
	}

	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: orderKey(orderID)},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeNames:  exprNames,
		ExpressionAttributeValues: exprValues,
	})
	return err
}

func (r *OrderDynamoRepository) SetStatus(ctx context.Context, orderID int64, status entities.OrderStatus) error {
	// Status names resolve against a fixed external catalog; an unknown name
	// is a fatal caller error, not a retryable one.
	if !entities.IsKnownStatus(status) {
		return fmt.Errorf("%w: %q", interfaces.ErrUnknownStatus, status)
	}

	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: orderKey(orderID)},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #status = :status, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: time.Now().UTC().Format(time.RFC3339Nano)},
		},
		ExpressionAttributeNames: mergeNames(map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
		}, map[string]string{"#id": "id"}),
	})
	return err
}

func orderKey(orderID int64) string {
	return strconv.FormatInt(orderID, 10)
}

func fromOrderItem(it orderItem) entities.InspectionRecord {
	orderID, _ := strconv.ParseInt(it.ID, 10, 64)
	rec := entities.InspectionRecord{
		OrderID: orderID,

		ResidentPresent:          entities.Answer(it.ResidentPresent),
		ClientAcceptsChange:      entities.Answer(it.ClientAcceptsChange),
		MeterSerialMatches:       entities.Answer(it.MeterSerialMatches),
		MeterDamaged:             entities.Answer(it.MeterDamaged),
		HasGrateOrWeld:           entities.Answer(it.HasGrateOrWeld),
		GrateRemovable:           entities.Answer(it.GrateRemovable),
		LeakOutsideZone:          entities.Answer(it.LeakOutsideZone),
		ValveLeak:                entities.Answer(it.ValveLeak),
		ValveOperable:            entities.Answer(it.ValveOperable),
		LeakPersistsAfterValveOp: entities.Answer(it.LeakPersistsAfterValveOp),

		NewMeterSerial:   it.NewMeterSerial,
		NewReading:       it.NewReading,
		RegulatorPresent: entities.Answer(it.RegulatorPresent),
		FlexibleHoseType: entities.HoseType(it.FlexibleHoseType),
		Notes:            it.Notes,

		ClosureMotive: it.ClosureMotive,
		Signature:     it.Signature,
		Latitude:      it.Latitude,
		Longitude:     it.Longitude,

		CurrentStep: entities.WorkflowStep(it.CurrentStep),
		Status:      entities.OrderStatus(it.Status),
	}
	if t, err := time.Parse(time.RFC3339Nano, it.FirstVisitAt); err == nil {
		u := t.UTC()
		rec.FirstVisitAt = &u
	}
	if t, err := time.Parse(time.RFC3339Nano, it.FinalizedAt); err == nil {
		u := t.UTC()
		rec.FinalizedAt = &u
	}
	return rec
}
