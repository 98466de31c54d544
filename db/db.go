package db

import (
	"strconv"

	"github.com/jsphweid/chordsense/constants"
	"github.com/jsphweid/chordsense/model"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
)

func newClient() (*dynamodb.DynamoDB, error) {
	endpoint := constants.GetDynamoEndpoint()
	sess, err := session.NewSession(&aws.Config{
		Region:   aws.String("localhost"),
		Endpoint: &endpoint,
	})
	if err != nil {
		return nil, err
	}
	return dynamodb.New(sess), nil
}

// PutSessionRecords saves a finished session's chord records under the given
// session id. Requires SESSIONS_TABLE to be set.
func PutSessionRecords(sessionID string, records []model.ChordRecord) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	table := constants.GetSessionTable()
	for _, rec := range records {
		item := map[string]*dynamodb.AttributeValue{
			"PK":      {S: aws.String(sessionID)},
			"SK":      {S: aws.String(rec.Label() + "|" + pitchesKey(rec.Pitches))},
			"Root":    {S: aws.String(rec.Root)},
			"Type":    {S: aws.String(rec.Type)},
			"Count":   {N: aws.String(strconv.Itoa(rec.Count))},
			"IsSlash": {BOOL: aws.Bool(rec.IsSlash)},
		}
		if rec.IsSlash {
			item["Bass"] = &dynamodb.AttributeValue{S: aws.String(rec.Bass)}
		}
		input := &dynamodb.PutItemInput{
			TableName: aws.String(table),
			Item:      item,
		}
		if _, err := client.PutItem(input); err != nil {
			return err
		}
	}
	return nil
}

func pitchesKey(pitches []uint8) string {
	var res string
	for i, p := range pitches {
		res += strconv.Itoa(int(p))
		if i < len(pitches)-1 {
			res += "-"
		}
	}
	return res
}
