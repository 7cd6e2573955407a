package hikaru

import (
	"fmt"

	"github.com/elibenporat/hikaru/lib/pgn"
	"github.com/elibenporat/hikaru/lib/scrapers/chesscom"

	"github.com/antzucaro/matchr"
)

// PerspectiveError reports a game that lists the requested player on
// neither side. Usernames are matched exactly, including case.
type PerspectiveError struct {
	GameUrl  string
	Username string
	White    string
	Black    string
}

func (e *PerspectiveError) Error() string {
	closest := e.White
	if matchr.JaroWinkler(e.Username, e.Black, false) > matchr.JaroWinkler(e.Username, e.White, false) {
		closest = e.Black
	}
	return fmt.Sprintf(
		"%q played neither side of %s (white %q, black %q), closest side is %q",
		e.Username, e.GameUrl, e.White, e.Black, closest,
	)
}

// Normalize flattens one raw game from the perspective of username.
// The username must exactly match one side of the game, white taking
// precedence, otherwise a PerspectiveError comes back.
func Normalize(game chesscom.Game, username string) (GameData, error) {
	var side chesscom.Player
	var colour Colour
	switch username {
	case game.White.Username:
		side, colour = game.White, White
	case game.Black.Username:
		side, colour = game.Black, Black
	default:
		return GameData{}, &PerspectiveError{
			GameUrl:  game.Url,
			Username: username,
			White:    game.White.Username,
			Black:    game.Black.Username,
		}
	}

	var notation pgn.Fields
	if game.Pgn != nil {
		notation = pgn.ParseFields(*game.Pgn)
	}
	winLose := ToWinLose(side.Result)

	return GameData{
		GameUrl:        game.Url,
		TimeControl:    game.TimeControl,
		StartTime:      game.StartTime,
		EndTime:        game.EndTime,
		Rated:          game.Rated,
		Fen:            game.Fen,
		TimeClass:      game.TimeClass,
		Rules:          game.Rules,
		EcoGame:        game.Eco,
		Tournament:     game.Tournament,
		TeamMatch:      game.Match,
		WhiteRating:    game.White.Rating,
		WhiteUsername:  game.White.Username,
		BlackRating:    game.Black.Rating,
		BlackUsername:  game.Black.Username,
		EcoPgn:         notation.ECO,
		EcoUrl:         notation.ECOUrl,
		Result:         side.Result,
		ResultWinLose:  winLose,
		Rating:         side.Rating,
		Date:           notation.UTCDate,
		Colour:         colour,
		Win:            winLose.Score(),
		PlayerUsername: username,
	}, nil
}
