package services

import (
	"context"
	"fmt"
	"heartlink_server/models"
	"heartlink_server/utils"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// UserDirectory is the keyed store of user records that the match engine
// and the user service operate on. SavePair must persist both records as
// one logical unit so a match never commits half-way.
type UserDirectory interface {
	FindByID(ctx context.Context, userID string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByPhone(ctx context.Context, phoneNumber string) (*models.User, error)
	Save(ctx context.Context, user *models.User) error
	SavePair(ctx context.Context, first, second *models.User) error
	FindMany(ctx context.Context, filter models.DiscoveryFilter, excludeIDs map[string]struct{}) ([]models.User, error)
}

// DynamoDirectory is the DynamoDB-backed UserDirectory.
type DynamoDirectory struct {
	Dynamo *DynamoService
}

// FindByID retrieves a user record by its partition key.
func (dd *DynamoDirectory) FindByID(ctx context.Context, userID string) (*models.User, error) {
	key := map[string]types.AttributeValue{
		"userId": &types.AttributeValueMemberS{Value: userID},
	}

	item, err := dd.Dynamo.GetItem(ctx, models.UsersTable, key)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	if item == nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, userID)
	}

	var user models.User
	if err := attributevalue.UnmarshalMap(item, &user); err != nil {
		return nil, fmt.Errorf("%w: failed to unmarshal user: %v", ErrStorage, err)
	}
	return &user, nil
}

// FindByEmail looks a user up through the EmailIndex GSI.
func (dd *DynamoDirectory) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return dd.findByIndex(ctx, models.EmailIndexName, "emailId = :emailId",
		map[string]types.AttributeValue{
			":emailId": &types.AttributeValueMemberS{Value: email},
		})
}

// FindByPhone looks a user up through the PhoneIndex GSI.
func (dd *DynamoDirectory) FindByPhone(ctx context.Context, phoneNumber string) (*models.User, error) {
	return dd.findByIndex(ctx, models.PhoneIndexName, "phoneNumber = :phoneNumber",
		map[string]types.AttributeValue{
			":phoneNumber": &types.AttributeValueMemberS{Value: phoneNumber},
		})
}

func (dd *DynamoDirectory) findByIndex(ctx context.Context, indexName, keyCondition string, values map[string]types.AttributeValue) (*models.User, error) {
	items, err := dd.Dynamo.QueryItemsWithIndex(ctx, models.UsersTable, indexName, keyCondition, values, 1)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	if len(items) == 0 {
		return nil, ErrNotFound
	}

	var user models.User
	if err := attributevalue.UnmarshalMap(items[0], &user); err != nil {
		return nil, fmt.Errorf("%w: failed to unmarshal user: %v", ErrStorage, err)
	}
	return &user, nil
}

// Save persists a single user record.
func (dd *DynamoDirectory) Save(ctx context.Context, user *models.User) error {
	if err := dd.Dynamo.PutItem(ctx, models.UsersTable, user); err != nil {
		return fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return nil
}

// SavePair persists both records in one DynamoDB transaction.
func (dd *DynamoDirectory) SavePair(ctx context.Context, first, second *models.User) error {
	if err := dd.Dynamo.TransactPutItems(ctx, models.UsersTable, first, second); err != nil {
		return fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return nil
}

// FindMany scans the Users table for records matching the filter fields,
// excluding the given ids.
func (dd *DynamoDirectory) FindMany(ctx context.Context, filter models.DiscoveryFilter, excludeIDs map[string]struct{}) ([]models.User, error) {
	matchFields := map[string]string{}
	if filter.Gender != "" {
		matchFields["gender"] = filter.Gender
	}
	if filter.DatingIntention != "" {
		matchFields["datingIntention"] = filter.DatingIntention
	}

	var users []models.User
	err := dd.Dynamo.ScanWithFilter(ctx, models.UsersTable, matchFields, func(item map[string]types.AttributeValue) bool {
		userID := utils.ExtractString(item, "userId")
		_, excluded := excludeIDs[userID]
		return !excluded
	}, &users)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}

	return users, nil
}
