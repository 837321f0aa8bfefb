/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package storagemodels

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// Attribute names of the crew table's composite key and the filterable name field.
const (
	AttrMovieID  = "movieId"
	AttrCrewRole = "crewRole"
	AttrName     = "name"
)

// CrewKeyCondition selects every record of one (movieId, crewRole) partition.
const CrewKeyCondition = "movieId = :m AND crewRole = :r"

// CrewRecord is one person's crew assignment on one movie.
type CrewRecord struct {
	// MovieID is the partition key.
	MovieID int
	// CrewRole is the sort key, e.g. "director" or "editor".
	CrewRole string
	// Name is the crew member's display name. HasName is false when the stored item has no name attribute.
	Name    string
	HasName bool
	// Attributes holds every other stored attribute, passed through unmodified.
	Attributes map[string]interface{}
}

// NewCrewRecordFromMap splits a generic attribute map into the known crew fields and passthrough attributes.
func NewCrewRecordFromMap(m map[string]interface{}) (CrewRecord, error) {
	var rec CrewRecord
	rec.Attributes = make(map[string]interface{}, len(m))

	for k, v := range m {
		switch k {
		case AttrMovieID:
			id, err := toInt(v)
			if err != nil {
				return CrewRecord{}, fmt.Errorf("invalid %s: %w", AttrMovieID, err)
			}
			rec.MovieID = id
		case AttrCrewRole:
			s, ok := v.(string)
			if !ok {
				return CrewRecord{}, fmt.Errorf("invalid %s: expected string, got %T", AttrCrewRole, v)
			}
			rec.CrewRole = s
		case AttrName:
			s, ok := v.(string)
			if !ok {
				// a non-string name is kept as-is and never matches a name filter
				rec.Attributes[k] = v
				continue
			}
			rec.Name = s
			rec.HasName = true
		default:
			rec.Attributes[k] = v
		}
	}
	return rec, nil
}

// AsMap flattens the record back into a single attribute map.
func (r CrewRecord) AsMap() map[string]interface{} {
	m := make(map[string]interface{}, len(r.Attributes)+3)
	for k, v := range r.Attributes {
		m[k] = v
	}
	m[AttrMovieID] = r.MovieID
	m[AttrCrewRole] = r.CrewRole
	if r.HasName {
		m[AttrName] = r.Name
	}
	return m
}

// MarshalJSON renders the record as a flat object including passthrough attributes.
func (r CrewRecord) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.AsMap())
}

// UnmarshalJSON accepts the flat object produced by MarshalJSON.
func (r *CrewRecord) UnmarshalJSON(data []byte) error {
	var m map[string]interface{}
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	rec, err := NewCrewRecordFromMap(m)
	if err != nil {
		return err
	}
	*r = rec
	return nil
}

func toInt(v interface{}) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case int32:
		return int(n), nil
	case int64:
		return int(n), nil
	case float64:
		if n != math.Trunc(n) {
			return 0, fmt.Errorf("%v is not an integer", n)
		}
		return int(n), nil
	case string:
		return strconv.Atoi(n)
	default:
		return 0, fmt.Errorf("unsupported type %T", v)
	}
}

// QueryParams defines parameters for a DynamoDB Query operation.
// The table name always comes from the datastore.
type QueryParams struct {
	// KeyConditionExpression is the primary condition for the query.
	KeyConditionExpression string
	// ExpressionAttributeValues contains the values for expression placeholders.
	ExpressionAttributeValues map[string]types.AttributeValue
	// Limit defines an optional limit per query page.
	Limit *int32
	// ExclusiveStartKey for pagination
	ExclusiveStartKey map[string]types.AttributeValue
	// ConsistentRead requests a strongly consistent read.
	ConsistentRead *bool
}

// NewCrewQueryParams builds the equality query for one (movieId, crewRole) partition.
func NewCrewQueryParams(movieID int, role string) *QueryParams {
	return &QueryParams{
		KeyConditionExpression: CrewKeyCondition,
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":m": &types.AttributeValueMemberN{Value: strconv.Itoa(movieID)},
			":r": &types.AttributeValueMemberS{Value: role},
		},
	}
}
