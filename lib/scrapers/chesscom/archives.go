package chesscom

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// archiveIndex decodes the archives field through a pointer, a nil
// pointer after decoding means the field was missing from the body.
type archiveIndex struct {
	Archives *[]string `json:"archives"`
}

// Archives returns the monthly archive urls for a player in the order
// the api publishes them, oldest month first. A player who never played
// gets an empty list, not an error.
func (c Client) Archives(ctx context.Context, username string) ([]string, error) {
	ctx, span := tracer.Start(ctx, "client:Archives")
	defer span.End()
	span.SetAttributes(attribute.String("username", username))

	if username == "" {
		err := errors.New("username must not be empty")
		span.RecordError(err)
		span.SetStatus(codes.Error, "invalid username")
		return nil, err
	}

	endpoint := fmt.Sprintf("%s/player/%s/games/archives", c.baseUrl, url.PathEscape(username))
	body, err := c.get(ctx, endpoint)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch archive index")
		return nil, err
	}

	var index archiveIndex
	if err := json.Unmarshal(body, &index); err != nil {
		err = &SchemaError{URL: endpoint, Err: err}
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to parse archive index")
		return nil, err
	}
	if index.Archives == nil {
		err := &SchemaError{URL: endpoint, Err: errors.New(`missing "archives" field`)}
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to parse archive index")
		return nil, err
	}

	return *index.Archives, nil
}
