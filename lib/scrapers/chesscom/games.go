package chesscom

import (
	"context"
	"encoding/json"
	"errors"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

type monthlyGames struct {
	Games *[]Game `json:"games"`
}

// ArchiveGames returns every game of one monthly archive in api order.
// The archive url must be taken verbatim from Archives, months with no
// games decode to an empty list.
func (c Client) ArchiveGames(ctx context.Context, archiveUrl string) ([]Game, error) {
	ctx, span := tracer.Start(ctx, "client:ArchiveGames")
	defer span.End()
	span.SetAttributes(attribute.String("url", archiveUrl))

	body, err := c.get(ctx, archiveUrl)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch archive")
		return nil, err
	}

	var month monthlyGames
	if err := json.Unmarshal(body, &month); err != nil {
		err = &SchemaError{URL: archiveUrl, Err: err}
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to parse archive")
		return nil, err
	}
	if month.Games == nil {
		err := &SchemaError{URL: archiveUrl, Err: errors.New(`missing "games" field`)}
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to parse archive")
		return nil, err
	}

	return *month.Games, nil
}
