package chesscom

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/elibenporat/hikaru/lib/restyutil"
	"github.com/elibenporat/hikaru/lib/telemetry"
	"github.com/elibenporat/hikaru/lib/testutil"
	"github.com/stretchr/testify/require"
)

func setup(t testing.TB) (Client, *testutil.Server) {
	t.Cleanup(telemetry.SetupForTesting(t, "test:scrapers/chesscom"))

	server := testutil.NewServer(t)
	client := NewClient(ClientOptions{
		BaseUrl: server.BaseUrl(),
		Timeout: time.Second * 5,
	})
	return client, server
}

func ptr[T any](v T) *T { return &v }

func fixtureGame(white, black string) Game {
	return Game{
		Url:         "https://www.chess.com/game/live/30987648721",
		Pgn:         ptr("[ECO \"B06\"]\n[UTCDate \"2021.10.02\"]\n\n1. e4 g6 1-0"),
		TimeControl: "600",
		StartTime:   ptr(int64(1633194572)),
		EndTime:     1633195872,
		Rated:       true,
		Fen:         "rnbqkbnr/pppppp1p/6p1/8/4P3/8/PPPP1PPP/RNBQKBNR w KQkq -",
		TimeClass:   TimeClassRapid,
		Rules:       RulesChess,
		Eco:         ptr("B06"),
		White: Player{
			Username: white,
			Rating:   2550,
			Result:   ResultWin,
			Id:       "https://api.chess.com/pub/player/" + white,
		},
		Black: Player{
			Username: black,
			Rating:   2490,
			Result:   ResultCheckmated,
			Id:       "https://api.chess.com/pub/player/" + black,
		},
	}
}

func TestArchives(t *testing.T) {
	client, server := setup(t)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	username := testutil.RandomUsername(t)
	expected := server.SetArchives(username, "2021/09", "2021/10")

	archives, err := client.Archives(ctx, username)
	require.NoError(t, err)
	require.Equal(t, expected, archives)
}

func TestArchivesPlayerWithoutGames(t *testing.T) {
	client, server := setup(t)

	server.SetArchives("lurker")

	archives, err := client.Archives(context.Background(), "lurker")
	require.NoError(t, err)
	require.Empty(t, archives)
}

func TestArchivesEmptyUsername(t *testing.T) {
	client, _ := setup(t)

	_, err := client.Archives(context.Background(), "")
	require.Error(t, err)
}

func TestArchiveGames(t *testing.T) {
	client, server := setup(t)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	game := fixtureGame("alice", "bob")
	archiveUrl := server.SetMonth("alice", "2021/10", game)

	games, err := client.ArchiveGames(ctx, archiveUrl)
	require.NoError(t, err)
	require.Len(t, games, 1)
	require.Equal(t, game, games[0])
}

func TestArchiveGamesEmptyMonth(t *testing.T) {
	client, server := setup(t)

	archiveUrl := server.SetMonth("alice", "2021/11")

	games, err := client.ArchiveGames(context.Background(), archiveUrl)
	require.NoError(t, err)
	require.Empty(t, games)
}

func TestArchivesUnknownPlayer(t *testing.T) {
	client, _ := setup(t)

	_, err := client.Archives(context.Background(), "ghost")

	var transportErr *TransportError
	require.ErrorAs(t, err, &transportErr)
	require.Contains(t, transportErr.URL, "/player/ghost/games/archives")
}

func TestArchivesMalformedJson(t *testing.T) {
	client, server := setup(t)

	server.Handle("/player/mallory/games/archives", 200, `{"archives": [`)

	_, err := client.Archives(context.Background(), "mallory")

	var schemaErr *SchemaError
	require.ErrorAs(t, err, &schemaErr)
	require.Contains(t, schemaErr.URL, "/player/mallory/games/archives")
}

func TestArchivesMissingField(t *testing.T) {
	client, server := setup(t)

	server.Handle("/player/mallory/games/archives", 200, `{"code":0,"message":"ok"}`)

	_, err := client.Archives(context.Background(), "mallory")

	var schemaErr *SchemaError
	require.ErrorAs(t, err, &schemaErr)
	require.Contains(t, schemaErr.Error(), "archives")
}

func TestArchiveGamesMissingResult(t *testing.T) {
	client, server := setup(t)

	server.Handle(
		"/player/alice/games/2021/11", 200,
		`{"games":[{"url":"u","time_control":"600","end_time":1,"rated":true,"fen":"f",`+
			`"time_class":"rapid","rules":"chess",`+
			`"white":{"username":"alice","rating":1,"@id":"a"},`+
			`"black":{"username":"bob","rating":1,"result":"win","@id":"b"}}]}`,
	)

	_, err := client.ArchiveGames(context.Background(), server.BaseUrl()+"/player/alice/games/2021/11")

	var schemaErr *SchemaError
	require.ErrorAs(t, err, &schemaErr)
	require.Contains(t, schemaErr.Error(), `missing "result" field`)
}

func TestArchivesInvalidUtf8(t *testing.T) {
	client, server := setup(t)

	server.Handle("/player/mallory/games/archives", 200, "\xff\xfe{}")

	_, err := client.Archives(context.Background(), "mallory")

	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
}

func TestRestyInstrumentOutput(t *testing.T) {
	// setup installs the debug log handler, the returned client
	// predates the hook and is not used
	_, server := setup(t)

	dir := filepath.Join(t.TempDir(), "dumps")
	SetRestyInstrumentOutput(restyutil.NewFilesystemOutput(dir))
	t.Cleanup(func() { SetRestyInstrumentOutput(nil) })

	client := NewClient(ClientOptions{
		BaseUrl: server.BaseUrl(),
		Timeout: time.Second * 5,
	})

	username := testutil.RandomUsername(t)
	server.SetArchives(username, "2021/10")

	_, err := client.Archives(context.Background(), username)
	require.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.NotEmpty(t, entries)

	dump, err := os.ReadFile(filepath.Join(dir, entries[0].Name()))
	require.NoError(t, err)
	require.Contains(t, string(dump), "---- REQUEST ----")
	require.Contains(t, string(dump), "---- RESPONSE ----")
	require.Contains(t, string(dump), "games/archives")
}

func TestArchiveGamesUnknownEnum(t *testing.T) {
	client, server := setup(t)

	server.Handle(
		"/player/alice/games/2021/12", 200,
		`{"games":[{"url":"u","time_control":"600","end_time":1,"rated":true,"fen":"f",`+
			`"time_class":"hyperbullet","rules":"chess",`+
			`"white":{"username":"alice","rating":1,"result":"win","@id":"a"},`+
			`"black":{"username":"bob","rating":1,"result":"checkmated","@id":"b"}}]}`,
	)

	_, err := client.ArchiveGames(context.Background(), server.BaseUrl()+"/player/alice/games/2021/12")

	var schemaErr *SchemaError
	require.ErrorAs(t, err, &schemaErr)
	require.Contains(t, schemaErr.Error(), "hyperbullet")
}
