package hikaru

import (
	"testing"

	"github.com/elibenporat/hikaru/lib/scrapers/chesscom"
	"github.com/stretchr/testify/require"
)

func TestToWinLose(t *testing.T) {
	cases := []struct {
		result   chesscom.GameResult
		expected GameResultWinLose
	}{
		{chesscom.ResultWin, Win},
		{chesscom.ResultBughousePartnerWin, Win},
		{chesscom.ResultKingOfTheHill, Win},
		{chesscom.ResultThreeCheck, Win},
		{chesscom.ResultCheckmated, Loss},
		{chesscom.ResultBughousePartnerLose, Loss},
		{chesscom.ResultAbandoned, Loss},
		{chesscom.ResultResigned, Loss},
		{chesscom.ResultTimeout, Draw},
		{chesscom.ResultStalemate, Draw},
		{chesscom.ResultAgreed, Draw},
		{chesscom.ResultRepetition, Draw},
		{chesscom.ResultInsufficient, Draw},
		{chesscom.ResultFiftyMove, Draw},
		{chesscom.ResultTimeVsInsufficient, Draw},
	}

	for _, c := range cases {
		require.Equal(t, c.expected, ToWinLose(c.result), "result %q", c.result)
	}
}

func TestScore(t *testing.T) {
	require.Equal(t, 1.0, Win.Score())
	require.Equal(t, 0.5, Draw.Score())
	require.Equal(t, 0.0, Loss.Score())
}
