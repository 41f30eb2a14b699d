package db

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/spacesedan/adforge/internal/clients"
	"github.com/spacesedan/adforge/internal/models"
)

const DEFAULT_AD_RECORDS_TABLE_NAME = "AdRecords"

var dbClient *dynamodb.Client

func InitDynamoDB() {
	dbClient = clients.GetDynamoDBClient()
}

func adRecordsTable() string {
	if table := os.Getenv("DYNAMODB_AD_TABLE"); table != "" {
		return table
	}
	return DEFAULT_AD_RECORDS_TABLE_NAME
}

// StoreBatchedAdRecords writes generation records in BatchWriteItem chunks of
// 25, retrying unprocessed items with exponential backoff.
func StoreBatchedAdRecords(ctx context.Context, records []models.AdRecord) error {
	if dbClient == nil {
		dbClient = clients.GetDynamoDBClient()
	}
	if len(records) == 0 {
		return nil
	}

	table := adRecordsTable()

	const maxBatchSize = 25
	for i := 0; i < len(records); i += maxBatchSize {
		select {
		case <-ctx.Done():
			slog.Warn("[DynamoDB] context canceled")
			return ctx.Err()
		default:

			end := i + maxBatchSize
			if end > len(records) {
				end = len(records)
			}

			writeRequests := make([]types.WriteRequest, 0, maxBatchSize)
			for _, record := range records[i:end] {
				item, err := attributevalue.MarshalMap(record)
				if err != nil {
					return fmt.Errorf("[DynamoDB] Failed to marshal ad record %s: %w", record.ID, err)
				}
				writeRequests = append(writeRequests, types.WriteRequest{
					PutRequest: &types.PutRequest{Item: item},
				})
			}

			out, err := dbClient.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{
				RequestItems: map[string][]types.WriteRequest{
					table: writeRequests,
				},
			})
			if err != nil {
				return fmt.Errorf("[DynamoDB] Failed to batch write ad records: %w", err)
			}

			retryCount := 0
			backoffDuration := time.Millisecond * 500
			for len(out.UnprocessedItems) > 0 && retryCount < 3 {
				time.Sleep(backoffDuration)
				backoffDuration *= 2
				slog.Warn("[DynamoDB] Retrying unprocessed items...",
					slog.Int("retry_attempt", retryCount+1),
					slog.Int("remaining_items", len(out.UnprocessedItems[table])),
				)

				out, err = dbClient.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{
					RequestItems: out.UnprocessedItems,
				})
				if err != nil {
					slog.Error("[DynamoDB] Error retrying batch write",
						slog.String("error", err.Error()))
					return fmt.Errorf("[DynamoDB] Failed to retry batch write: %w", err)
				}
				retryCount++
			}

			if len(out.UnprocessedItems) > 0 {
				slog.Error("[DynamoDB] Some items were not written even after retries",
					slog.Int("remaining_items", len(out.UnprocessedItems[table])))
			}
		}
	}
	slog.Info("[DynamoDB] Successfully stored ad records",
		slog.Int("count", len(records)))
	return nil
}

// GetAdRecordsForCampaign scans for a campaign's generation history.
func GetAdRecordsForCampaign(ctx context.Context, campaignID string) ([]models.AdRecord, error) {
	if dbClient == nil {
		dbClient = clients.GetDynamoDBClient()
	}

	var records []models.AdRecord
	input := &dynamodb.ScanInput{
		TableName:        aws.String(adRecordsTable()),
		FilterExpression: aws.String("campaign_id = :cid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": &types.AttributeValueMemberS{Value: campaignID},
		},
	}

	paginator := dynamodb.NewScanPaginator(dbClient, input)

	for paginator.HasMorePages() {
		out, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("[DynamoDB] Scan for ad records failed: %w", err)
		}
		var page []models.AdRecord
		err = attributevalue.UnmarshalListOfMaps(out.Items, &page)
		if err != nil {
			slog.Error("[DynamoDB] Unable to unmarshal current record page", slog.String("error", err.Error()))
			return nil, err
		}
		records = append(records, page...)

	}
	slog.Info("[DynamoDB] Successfully retrieved ad records", slog.Int("count", len(records)))
	return records, nil
}
