package hikaru

import (
	"github.com/elibenporat/hikaru/lib/scrapers/chesscom"
)

// GameResultWinLose collapses the api result taxonomy into the three
// outcomes an analysis cares about.
type GameResultWinLose string

const (
	Win  GameResultWinLose = "Win"
	Loss GameResultWinLose = "Loss"
	Draw GameResultWinLose = "Draw"
)

// ToWinLose maps a per-side result onto win, loss or draw. The variant
// wins (king of the hill, three check) count as wins, a fixed set of
// results count as losses and everything else falls through to a draw.
func ToWinLose(result chesscom.GameResult) GameResultWinLose {
	switch result {
	case chesscom.ResultWin,
		chesscom.ResultBughousePartnerWin,
		chesscom.ResultKingOfTheHill,
		chesscom.ResultThreeCheck:
		return Win
	case chesscom.ResultCheckmated,
		chesscom.ResultBughousePartnerLose,
		chesscom.ResultAbandoned,
		chesscom.ResultResigned:
		return Loss
	default:
		return Draw
	}
}

// Score is the conventional chess score of the outcome, 1 for a win,
// 0.5 for a draw and 0 for a loss.
func (r GameResultWinLose) Score() float64 {
	switch r {
	case Win:
		return 1
	case Loss:
		return 0
	default:
		return 0.5
	}
}
