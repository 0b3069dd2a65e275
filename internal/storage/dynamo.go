package storage

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/Teflondom25/LFG-Bot/internal/game"
)

// DynamoAPI is the slice of the DynamoDB client the store uses.
type DynamoAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
}

// DynamoStore implements SubscriptionStore on a DynamoDB table keyed by
// (guild_id, game_key) with the subscriber set held in a string-set
// attribute. ADD/DELETE update expressions give atomic per-item set union
// and difference, so no in-process locking is needed and a concurrent
// add/remove of different users on the same record cannot lose either
// update. UpdateItem creates the item when it is absent, which makes
// Subscribe an upsert and Unsubscribe of a never-created record benign.
type DynamoStore struct {
	client DynamoAPI
	table  string
}

// record mirrors one table item.
type record struct {
	GuildID     string   `dynamodbav:"guild_id"`
	GameKey     string   `dynamodbav:"game_key"`
	Subscribers []string `dynamodbav:"subscribers,stringset"`
}

// NewDynamoClient builds a DynamoDB client from the ambient AWS
// configuration (credentials and region from the environment).
func NewDynamoClient(ctx context.Context, region string) (*dynamodb.Client, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	return dynamodb.NewFromConfig(cfg), nil
}

// NewDynamoStore creates a store backed by the given table.
func NewDynamoStore(client DynamoAPI, table string) *DynamoStore {
	return &DynamoStore{client: client, table: table}
}

func (s *DynamoStore) key(guildID string, key game.Key) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"guild_id": &types.AttributeValueMemberS{Value: guildID},
		"game_key": &types.AttributeValueMemberS{Value: string(key)},
	}
}

// Subscribe adds the user via an atomic ADD on the subscriber string set.
func (s *DynamoStore) Subscribe(ctx context.Context, guildID string, key game.Key, userID string) error {
	_, err := s.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:        aws.String(s.table),
		Key:              s.key(guildID, key),
		UpdateExpression: aws.String("ADD #subs :user"),
		ExpressionAttributeNames: map[string]string{
			"#subs": "subscribers",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":user": &types.AttributeValueMemberSS{Value: []string{userID}},
		},
	})
	if err != nil {
		return unavailable(fmt.Sprintf("subscribe %s to %s", userID, key), err)
	}
	return nil
}

// Unsubscribe removes the user via an atomic DELETE on the subscriber
// string set. DynamoDB treats deleting an absent element, or updating an
// absent item, as a successful no-op, which matches the contract that
// "already not subscribed" is not an error.
func (s *DynamoStore) Unsubscribe(ctx context.Context, guildID string, key game.Key, userID string) error {
	_, err := s.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:        aws.String(s.table),
		Key:              s.key(guildID, key),
		UpdateExpression: aws.String("DELETE #subs :user"),
		ExpressionAttributeNames: map[string]string{
			"#subs": "subscribers",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":user": &types.AttributeValueMemberSS{Value: []string{userID}},
		},
	})
	if err != nil {
		return unavailable(fmt.Sprintf("unsubscribe %s from %s", userID, key), err)
	}
	return nil
}

// Subscribers returns the current subscriber set for a game; a missing
// record yields an empty result.
func (s *DynamoStore) Subscribers(ctx context.Context, guildID string, key game.Key) ([]string, error) {
	out, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.table),
		Key:       s.key(guildID, key),
	})
	if err != nil {
		return nil, unavailable(fmt.Sprintf("get subscribers for %s", key), err)
	}
	if out.Item == nil {
		return nil, nil
	}

	var rec record
	if err := attributevalue.UnmarshalMap(out.Item, &rec); err != nil {
		return nil, unavailable(fmt.Sprintf("unmarshal subscribers for %s", key), err)
	}
	return rec.Subscribers, nil
}

// UserGames returns every game in the guild whose subscriber set contains
// the user, using a contains() filter over the guild's records.
func (s *DynamoStore) UserGames(ctx context.Context, guildID, userID string) ([]game.Key, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(s.table),
		KeyConditionExpression: aws.String("guild_id = :guild"),
		FilterExpression:       aws.String("contains(#subs, :user)"),
		ExpressionAttributeNames: map[string]string{
			"#subs": "subscribers",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":guild": &types.AttributeValueMemberS{Value: guildID},
			":user":  &types.AttributeValueMemberS{Value: userID},
		},
	}

	records, err := s.queryAll(ctx, input)
	if err != nil {
		return nil, unavailable(fmt.Sprintf("list games for user %s", userID), err)
	}

	keys := make([]game.Key, 0, len(records))
	for _, rec := range records {
		keys = append(keys, game.Key(rec.GameKey))
	}
	return keys, nil
}

// PopulatedGames returns every game in the guild with at least one
// subscriber. Ordering is left to the presentation layer.
func (s *DynamoStore) PopulatedGames(ctx context.Context, guildID string) ([]GameCount, error) {
	records, err := s.scanGuild(ctx, guildID)
	if err != nil {
		return nil, unavailable("list populated games", err)
	}

	var games []GameCount
	for _, rec := range records {
		if len(rec.Subscribers) == 0 {
			continue
		}
		games = append(games, GameCount{Key: game.Key(rec.GameKey), Count: len(rec.Subscribers)})
	}
	return games, nil
}

// AllGameKeys returns every game key with a record in the guild, including
// records whose subscriber set has emptied out. Used to feed autocomplete.
func (s *DynamoStore) AllGameKeys(ctx context.Context, guildID string) ([]game.Key, error) {
	records, err := s.scanGuild(ctx, guildID)
	if err != nil {
		return nil, unavailable("list game keys", err)
	}

	keys := make([]game.Key, 0, len(records))
	for _, rec := range records {
		keys = append(keys, game.Key(rec.GameKey))
	}
	return keys, nil
}

// scanGuild fetches every record under a guild's partition.
func (s *DynamoStore) scanGuild(ctx context.Context, guildID string) ([]record, error) {
	return s.queryAll(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(s.table),
		KeyConditionExpression: aws.String("guild_id = :guild"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":guild": &types.AttributeValueMemberS{Value: guildID},
		},
	})
}

// queryAll runs a query to completion, following pagination.
func (s *DynamoStore) queryAll(ctx context.Context, input *dynamodb.QueryInput) ([]record, error) {
	var records []record
	for {
		out, err := s.client.Query(ctx, input)
		if err != nil {
			return nil, err
		}

		var page []record
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			return nil, fmt.Errorf("failed to unmarshal records: %w", err)
		}
		records = append(records, page...)

		if out.LastEvaluatedKey == nil {
			return records, nil
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}
}

func unavailable(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrUnavailable, err)
}
