// Package hikaru downloads complete chess.com game histories and
// flattens every game into a single analysis-friendly record.
//
// The one-call surface:
//
//	games, err := hikaru.Download(ctx, "hikaru", "fabianocaruana")
//
// wraps the two moving parts, lib/scrapers/chesscom fetches the archive
// index and the monthly archives it points at, and Normalize projects
// each raw game onto GameData from the perspective of the requested
// player. Fetching is strictly sequential and nothing is cached or
// persisted, a download always reflects what the api returns right now.
package hikaru

import (
	"github.com/elibenporat/hikaru/lib/scrapers/chesscom"
)

// Colour is the side the requested player took in a game.
type Colour string

const (
	White Colour = "White"
	Black Colour = "Black"
)

// GameData is one game flattened from the perspective of a single
// player. Raw api fields are carried over verbatim, the perspective
// fields (result, rating, colour, win) are drawn from whichever side
// the requested player took. Optional upstream fields stay pointers so
// absent values serialize as null instead of a zero value.
type GameData struct {
	GameUrl        string              `json:"game_url"`
	TimeControl    string              `json:"time_control"`
	StartTime      *int64              `json:"start_time"`
	EndTime        int64               `json:"end_time"`
	Rated          bool                `json:"rated"`
	Fen            string              `json:"fen"`
	TimeClass      chesscom.TimeClass  `json:"time_class"`
	Rules          chesscom.Rules      `json:"rules"`
	EcoGame        *string             `json:"eco_game"`
	Tournament     *string             `json:"tournament"`
	TeamMatch      *string             `json:"match"`
	WhiteRating    int                 `json:"white_rating"`
	WhiteUsername  string              `json:"white_username"`
	BlackRating    int                 `json:"black_rating"`
	BlackUsername  string              `json:"black_username"`
	EcoPgn         string              `json:"eco_pgn"`
	EcoUrl         string              `json:"eco_url"`
	Result         chesscom.GameResult `json:"result"`
	ResultWinLose  GameResultWinLose   `json:"result_win_lose"`
	Rating         int                 `json:"rating"`
	Date           string              `json:"date"`
	Colour         Colour              `json:"colour"`
	Win            float64             `json:"win"`
	PlayerUsername string              `json:"player_username"`
}
