package bookings

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/medibook/booking-platform/pkg/logging"
)

// userIndex is the GSI on the bookings table keyed by userId.
const userIndex = "userId-index"

type dynamoAPI interface {
	GetItem(context.Context, *dynamodb.GetItemInput, ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(context.Context, *dynamodb.PutItemInput, ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	Query(context.Context, *dynamodb.QueryInput, ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	Scan(context.Context, *dynamodb.ScanInput, ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
}

// DynamoStore persists bookings to DynamoDB.
type DynamoStore struct {
	client    dynamoAPI
	tableName string
	logger    *logging.Logger
}

var _ Store = (*DynamoStore)(nil)

// NewDynamoStore builds a booking store backed by the provided DynamoDB client.
func NewDynamoStore(client dynamoAPI, tableName string, logger *logging.Logger) *DynamoStore {
	if client == nil {
		panic("bookings: dynamodb client cannot be nil")
	}
	if tableName == "" {
		panic("bookings: table name cannot be empty")
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &DynamoStore{client: client, tableName: tableName, logger: logger}
}

// Put inserts a new booking record.
func (s *DynamoStore) Put(ctx context.Context, booking *Booking) error {
	item, err := attributevalue.MarshalMap(booking)
	if err != nil {
		return fmt.Errorf("bookings: failed to marshal booking: %w", err)
	}
	if _, err := s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(s.tableName),
		Item:                item,
		ConditionExpression: aws.String("attribute_not_exists(id)"),
	}); err != nil {
		return fmt.Errorf("bookings: failed to persist booking %s: %w", booking.ID, err)
	}
	return nil
}

// Get fetches a booking by ID.
func (s *DynamoStore) Get(ctx context.Context, bookingID string) (*Booking, error) {
	if bookingID == "" {
		return nil, ErrBookingNotFound
	}
	out, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: bookingID},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("bookings: failed to fetch booking %s: %w", bookingID, err)
	}
	if out.Item == nil {
		return nil, ErrBookingNotFound
	}

	var booking Booking
	if err := attributevalue.UnmarshalMap(out.Item, &booking); err != nil {
		return nil, fmt.Errorf("bookings: failed to decode booking: %w", err)
	}
	return &booking, nil
}

// Update overwrites an existing booking record.
func (s *DynamoStore) Update(ctx context.Context, booking *Booking) error {
	item, err := attributevalue.MarshalMap(booking)
	if err != nil {
		return fmt.Errorf("bookings: failed to marshal booking: %w", err)
	}
	if _, err := s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(s.tableName),
		Item:                item,
		ConditionExpression: aws.String("attribute_exists(id)"),
	}); err != nil {
		return fmt.Errorf("bookings: failed to update booking %s: %w", booking.ID, err)
	}
	return nil
}

// ListByUser queries the user GSI for the user's bookings.
func (s *DynamoStore) ListByUser(ctx context.Context, userID string) ([]*Booking, error) {
	out, err := s.client.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(s.tableName),
		IndexName:              aws.String(userIndex),
		KeyConditionExpression: aws.String("userId = :user"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":user": &types.AttributeValueMemberS{Value: userID},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("bookings: failed to list bookings for user %s: %w", userID, err)
	}
	return decodeBookings(out.Items)
}

// ListAll scans the whole table for the doctor dashboard.
func (s *DynamoStore) ListAll(ctx context.Context) ([]*Booking, error) {
	out, err := s.client.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(s.tableName),
	})
	if err != nil {
		return nil, fmt.Errorf("bookings: failed to list bookings: %w", err)
	}
	return decodeBookings(out.Items)
}

func decodeBookings(items []map[string]types.AttributeValue) ([]*Booking, error) {
	bookings := make([]*Booking, 0, len(items))
	for _, item := range items {
		var b Booking
		if err := attributevalue.UnmarshalMap(item, &b); err != nil {
			return nil, fmt.Errorf("bookings: failed to decode booking: %w", err)
		}
		bookings = append(bookings, &b)
	}
	return bookings, nil
}
