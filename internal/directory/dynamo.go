package directory

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/medibook/booking-platform/pkg/logging"
)

// specialtyIndex is the GSI on the doctors table keyed by specialtyId.
const specialtyIndex = "specialtyId-index"

type dynamoAPI interface {
	GetItem(context.Context, *dynamodb.GetItemInput, ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(context.Context, *dynamodb.PutItemInput, ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	Query(context.Context, *dynamodb.QueryInput, ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	Scan(context.Context, *dynamodb.ScanInput, ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
}

// DynamoStore persists the catalog to a doctors table and a specialties table.
type DynamoStore struct {
	client           dynamoAPI
	doctorsTable     string
	specialtiesTable string
	logger           *logging.Logger
}

var _ Repository = (*DynamoStore)(nil)

// NewDynamoStore builds a catalog store backed by the provided DynamoDB client.
func NewDynamoStore(client dynamoAPI, doctorsTable, specialtiesTable string, logger *logging.Logger) *DynamoStore {
	if client == nil {
		panic("directory: dynamodb client cannot be nil")
	}
	if doctorsTable == "" || specialtiesTable == "" {
		panic("directory: table names cannot be empty")
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &DynamoStore{
		client:           client,
		doctorsTable:     doctorsTable,
		specialtiesTable: specialtiesTable,
		logger:           logger,
	}
}

// GetDoctor fetches a doctor by ID.
func (s *DynamoStore) GetDoctor(ctx context.Context, doctorID string) (*Doctor, error) {
	if doctorID == "" {
		return nil, ErrDoctorNotFound
	}
	out, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.doctorsTable),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: doctorID},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("directory: failed to fetch doctor %s: %w", doctorID, err)
	}
	if out.Item == nil {
		return nil, ErrDoctorNotFound
	}

	var doctor Doctor
	if err := attributevalue.UnmarshalMap(out.Item, &doctor); err != nil {
		return nil, fmt.Errorf("directory: failed to decode doctor: %w", err)
	}
	return &doctor, nil
}

// ListSpecialties returns every specialty in the catalog.
func (s *DynamoStore) ListSpecialties(ctx context.Context) ([]*Specialty, error) {
	out, err := s.client.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(s.specialtiesTable),
	})
	if err != nil {
		return nil, fmt.Errorf("directory: failed to list specialties: %w", err)
	}

	specialties := make([]*Specialty, 0, len(out.Items))
	for _, item := range out.Items {
		var sp Specialty
		if err := attributevalue.UnmarshalMap(item, &sp); err != nil {
			return nil, fmt.Errorf("directory: failed to decode specialty: %w", err)
		}
		specialties = append(specialties, &sp)
	}
	return specialties, nil
}

// ListDoctorsBySpecialty queries the specialty GSI on the doctors table.
func (s *DynamoStore) ListDoctorsBySpecialty(ctx context.Context, specialtyID string) ([]*Doctor, error) {
	out, err := s.client.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(s.doctorsTable),
		IndexName:              aws.String(specialtyIndex),
		KeyConditionExpression: aws.String("specialtyId = :specialty"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":specialty": &types.AttributeValueMemberS{Value: specialtyID},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("directory: failed to list doctors for specialty %s: %w", specialtyID, err)
	}

	doctors := make([]*Doctor, 0, len(out.Items))
	for _, item := range out.Items {
		var d Doctor
		if err := attributevalue.UnmarshalMap(item, &d); err != nil {
			return nil, fmt.Errorf("directory: failed to decode doctor: %w", err)
		}
		doctors = append(doctors, &d)
	}
	return doctors, nil
}

// PutDoctor validates and stores a doctor record.
func (s *DynamoStore) PutDoctor(ctx context.Context, doctor *Doctor) error {
	if err := doctor.Validate(); err != nil {
		return err
	}
	item, err := attributevalue.MarshalMap(doctor)
	if err != nil {
		return fmt.Errorf("directory: failed to marshal doctor: %w", err)
	}
	if _, err := s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.doctorsTable),
		Item:      item,
	}); err != nil {
		return fmt.Errorf("directory: failed to persist doctor %s: %w", doctor.ID, err)
	}
	return nil
}

// PutSpecialty stores a specialty record.
func (s *DynamoStore) PutSpecialty(ctx context.Context, specialty *Specialty) error {
	item, err := attributevalue.MarshalMap(specialty)
	if err != nil {
		return fmt.Errorf("directory: failed to marshal specialty: %w", err)
	}
	if _, err := s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.specialtiesTable),
		Item:      item,
	}); err != nil {
		return fmt.Errorf("directory: failed to persist specialty %s: %w", specialty.ID, err)
	}
	return nil
}
