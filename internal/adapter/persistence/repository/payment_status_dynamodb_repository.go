package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"pix_server/internal/domain/entities"
	"pix_server/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultPaymentsTableName      = "pix_payments"
	defaultNotificationsTableName = "pix_notifications"
)

// dynamoAPI is the subset of *dynamodb.Client the repositories use.
type dynamoAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
}

type paymentRecordItem struct {
	TxID        string `dynamodbav:"txid"`
	Status      string `dynamodbav:"status"`
	AmountCents int64  `dynamodbav:"amount_cents"`
	Name        string `dynamodbav:"name,omitempty"`
	Email       string `dynamodbav:"email,omitempty"`
	Phone       string `dynamodbav:"phone,omitempty"`
	CreatedAt   string `dynamodbav:"created_at"`
	PaidAt      string `dynamodbav:"paid_at,omitempty"`
	ExpiresAt   int64  `dynamodbav:"expires_at,omitempty"`
}

// PaymentStatusDynamoRepository persists payment records in DynamoDB.
//
// Table requirements:
//   - PK: txid (string)
//   - TTL enabled on expires_at (epoch seconds)
//
// DynamoDB deletes expired items lazily, so Get also treats them as unknown.
type PaymentStatusDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
	ttl       time.Duration
	now       func() time.Time
}

var _ interfaces.IPaymentStatusRepository = (*PaymentStatusDynamoRepository)(nil)

func NewPaymentStatusDynamoRepository(ddb dynamoAPI, tableName string, ttl time.Duration) *PaymentStatusDynamoRepository {
	if tableName == "" {
		tableName = defaultPaymentsTableName
	}
	return &PaymentStatusDynamoRepository{
		ddb:       ddb,
		tableName: tableName,
		ttl:       ttl,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (r *PaymentStatusDynamoRepository) Get(ctx context.Context, txid string) (entities.PaymentRecord, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"txid": &types.AttributeValueMemberS{Value: txid},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PaymentRecord{}, err
	}
	if len(out.Item) == 0 {
		return entities.UnknownPaymentRecord(txid), nil
	}

	var it paymentRecordItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PaymentRecord{}, err
	}
	if it.ExpiresAt > 0 && !r.now().Before(time.Unix(it.ExpiresAt, 0)) {
		return entities.UnknownPaymentRecord(txid), nil
	}
	return fromPaymentRecordItem(it), nil
}

func (r *PaymentStatusDynamoRepository) Set(ctx context.Context, record entities.PaymentRecord) error {
	if r.ttl > 0 {
		record.ExpiresAt = r.now().Add(r.ttl)
	}
	av, err := attributevalue.MarshalMap(toPaymentRecordItem(record))
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}

// NotificationLedgerDynamo claims txids with a conditional put, so concurrent
// instances sharing the table agree on a single winner.
type NotificationLedgerDynamo struct {
	ddb       dynamoAPI
	tableName string
	ttl       time.Duration
	now       func() time.Time
}

var _ interfaces.INotificationLedger = (*NotificationLedgerDynamo)(nil)

func NewNotificationLedgerDynamo(ddb dynamoAPI, tableName string, ttl time.Duration) *NotificationLedgerDynamo {
	if tableName == "" {
		tableName = defaultNotificationsTableName
	}
	return &NotificationLedgerDynamo{
		ddb:       ddb,
		tableName: tableName,
		ttl:       ttl,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (l *NotificationLedgerDynamo) Claim(ctx context.Context, txid string) (bool, error) {
	now := l.now()
	item := map[string]types.AttributeValue{
		"txid":        &types.AttributeValueMemberS{Value: txid},
		"notified_at": &types.AttributeValueMemberS{Value: now.Format(time.RFC3339Nano)},
	}
	if l.ttl > 0 {
		item["expires_at"] = &types.AttributeValueMemberN{Value: strconv.FormatInt(now.Add(l.ttl).Unix(), 10)}
	}

	_, err := l.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(l.tableName),
		Item:                item,
		ConditionExpression: aws.String("attribute_not_exists(#txid)"),
		ExpressionAttributeNames: map[string]string{
			"#txid": "txid",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func toPaymentRecordItem(p entities.PaymentRecord) paymentRecordItem {
	it := paymentRecordItem{
		TxID:        p.TxID,
		Status:      string(p.Status),
		AmountCents: p.AmountCents,
		Name:        p.Name,
		Email:       p.Email,
		Phone:       p.Phone,
		CreatedAt:   p.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
	if p.PaidAt != nil {
		it.PaidAt = p.PaidAt.UTC().Format(time.RFC3339Nano)
	}
	if !p.ExpiresAt.IsZero() {
		it.ExpiresAt = p.ExpiresAt.Unix()
	}
	return it
}

func fromPaymentRecordItem(it paymentRecordItem) entities.PaymentRecord {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	rec := entities.PaymentRecord{
		TxID:        it.TxID,
		Status:      entities.PaymentStatus(it.Status),
		AmountCents: it.AmountCents,
		Name:        it.Name,
		Email:       it.Email,
		Phone:       it.Phone,
		CreatedAt:   createdAt,
	}
	if it.PaidAt != "" {
		if paidAt, err := time.Parse(time.RFC3339Nano, it.PaidAt); err == nil {
			rec.PaidAt = &paidAt
		}
	}
	if it.ExpiresAt > 0 {
		rec.ExpiresAt = time.Unix(it.ExpiresAt, 0).UTC()
	}
	return rec
}
