package hikaru

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/elibenporat/hikaru/lib/scrapers/chesscom"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("hikaru")
var meter = otel.Meter("hikaru")

// both counters advance per completed archive
var archivesFetched, _ = meter.Int64Counter("archives_fetched")
var gamesDownloaded, _ = meter.Int64Counter("games_downloaded")

// Downloader fetches and flattens game histories over one api client.
type Downloader struct {
	client chesscom.Client
}

func NewDownloader(client chesscom.Client) Downloader {
	return Downloader{client: client}
}

// PlayerGames downloads the complete game history of one player,
// archive by archive in the order the index lists them, and flattens
// every game from that player's perspective. The first failure aborts
// the download, the client error types stay reachable with errors.As.
func (d Downloader) PlayerGames(ctx context.Context, username string) ([]GameData, error) {
	ctx, span := tracer.Start(ctx, "PlayerGames")
	defer span.End()
	span.SetAttributes(attribute.String("username", username))

	archives, err := d.client.Archives(ctx, username)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch archive index")
		return nil, fmt.Errorf("fetch archive index for %q: %w", username, err)
	}

	var out []GameData
	for _, archiveUrl := range archives {
		games, err := d.client.ArchiveGames(ctx, archiveUrl)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "failed to fetch archive")
			return nil, fmt.Errorf("fetch archive %q: %w", archiveUrl, err)
		}
		archivesFetched.Add(ctx, 1)
		for _, game := range games {
			data, err := Normalize(game, username)
			if err != nil {
				span.RecordError(err)
				span.SetStatus(codes.Error, "failed to normalize game")
				return nil, err
			}
			out = append(out, data)
		}
		gamesDownloaded.Add(ctx, int64(len(games)))
		slog.DebugContext(ctx, "fetched archive", "url", archiveUrl, "games", len(games))
	}

	return out, nil
}

// Download concatenates the histories of the given players in argument
// order, every player's games grouped together.
func (d Downloader) Download(ctx context.Context, usernames ...string) ([]GameData, error) {
	ctx, span := tracer.Start(ctx, "Download")
	defer span.End()

	var out []GameData
	for _, username := range usernames {
		games, err := d.PlayerGames(ctx, username)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "download failed")
			return nil, err
		}
		out = append(out, games...)
	}
	return out, nil
}

// Download fetches the complete histories of the given players over a
// default client.
func Download(ctx context.Context, usernames ...string) ([]GameData, error) {
	d := NewDownloader(chesscom.NewClient(chesscom.ClientOptions{}))
	return d.Download(ctx, usernames...)
}
