package dynamo

import (
	"context"
	"fmt"
	"sort"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/hackforge-dev/admin-api/internal/domain"
)

// AnnouncementRepo provides typed DynamoDB operations for the announcements table.
type AnnouncementRepo struct {
	client    *dynamodb.Client
	tableName string
}

func NewAnnouncementRepo(client *dynamodb.Client, tableName string) *AnnouncementRepo {
	return &AnnouncementRepo{client: client, tableName: tableName}
}

func (r *AnnouncementRepo) Put(ctx context.Context, a *domain.Announcement) error {
	item, err := attributevalue.MarshalMap(a)
	if err != nil {
		return fmt.Errorf("marshal announcement: %w", err)
	}
	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      item,
	})
	return err
}

func (r *AnnouncementRepo) Get(ctx context.Context, announcementID string) (*domain.Announcement, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       strKey("announcement_id", announcementID),
	})
	if err != nil {
		return nil, err
	}
	if out.Item == nil {
		return nil, fmt.Errorf("announcement not found: %w", domain.ErrNotFound)
	}
	var a domain.Announcement
	if err := attributevalue.UnmarshalMap(out.Item, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

// ListRecent returns all announcements, newest first. Announcement ids are
// ULIDs, so ordering by creation time is the same as ordering by id.
func (r *AnnouncementRepo) ListRecent(ctx context.Context) ([]domain.Announcement, error) {
	out, err := r.client.Scan(ctx, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})
	if err != nil {
		return nil, err
	}
	var announcements []domain.Announcement
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &announcements); err != nil {
		return nil, err
	}
	sort.Slice(announcements, func(i, j int) bool {
		return announcements[i].AnnouncementID > announcements[j].AnnouncementID
	})
	return announcements, nil
}

func (r *AnnouncementRepo) Count(ctx context.Context) (int, error) {
	out, err := r.client.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
		Select:    types.SelectCount,
	})
	if err != nil {
		return 0, err
	}
	return int(out.Count), nil
}

// Delete removes an announcement and returns the deleted record, or
// domain.ErrNotFound when no item matched.
func (r *AnnouncementRepo) Delete(ctx context.Context, announcementID string) (*domain.Announcement, error) {
	out, err := r.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:    aws.String(r.tableName),
		Key:          strKey("announcement_id", announcementID),
		ReturnValues: types.ReturnValueAllOld,
	})
	if err != nil {
		return nil, err
	}
	if out.Attributes == nil {
		return nil, fmt.Errorf("announcement not found: %w", domain.ErrNotFound)
	}
	var a domain.Announcement
	if err := attributevalue.UnmarshalMap(out.Attributes, &a); err != nil {
		return nil, err
	}
	return &a, nil
}
