package chesscom

import (
	"encoding/json"
	"fmt"
)

// TimeClass is the pace bucket the api slots a game into.
type TimeClass string

const (
	TimeClassBullet TimeClass = "bullet"
	TimeClassBlitz  TimeClass = "blitz"
	TimeClassRapid  TimeClass = "rapid"
	TimeClassDaily  TimeClass = "daily"
)

var timeClasses = map[TimeClass]struct{}{
	TimeClassBullet: {},
	TimeClassBlitz:  {},
	TimeClassRapid:  {},
	TimeClassDaily:  {},
}

func (t *TimeClass) UnmarshalJSON(data []byte) error {
	v, err := unmarshalEnum(data, "time class", timeClasses)
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// Rules is the game variant.
type Rules string

const (
	RulesChess         Rules = "chess"
	RulesChess960      Rules = "chess960"
	RulesCrazyhouse    Rules = "crazyhouse"
	RulesThreeCheck    Rules = "threecheck"
	RulesKingOfTheHill Rules = "kingofthehill"
	RulesHorde         Rules = "horde"
	RulesBughouse      Rules = "bughouse"
	RulesOddsChess     Rules = "oddschess"
)

var rulesets = map[Rules]struct{}{
	RulesChess:         {},
	RulesChess960:      {},
	RulesCrazyhouse:    {},
	RulesThreeCheck:    {},
	RulesKingOfTheHill: {},
	RulesHorde:         {},
	RulesBughouse:      {},
	RulesOddsChess:     {},
}

func (r *Rules) UnmarshalJSON(data []byte) error {
	v, err := unmarshalEnum(data, "ruleset", rulesets)
	if err != nil {
		return err
	}
	*r = v
	return nil
}

// GameResult is the per-side outcome of a game. Both sides of a win
// carry their own value, "win" for the winner and the way the loser
// lost ("checkmated", "timeout", ...) for the loser. Draws carry the
// draw reason on both sides.
type GameResult string

const (
	ResultWin                 GameResult = "win"
	ResultTimeout             GameResult = "timeout"
	ResultCheckmated          GameResult = "checkmated"
	ResultStalemate           GameResult = "stalemate"
	ResultResigned            GameResult = "resigned"
	ResultAgreed              GameResult = "agreed"
	ResultRepetition          GameResult = "repetition"
	ResultInsufficient        GameResult = "insufficient"
	ResultAbandoned           GameResult = "abandoned"
	ResultFiftyMove           GameResult = "50move"
	ResultTimeVsInsufficient  GameResult = "timevsinsufficient"
	ResultKingOfTheHill       GameResult = "kingofthehill"
	ResultThreeCheck          GameResult = "threecheck"
	ResultBughousePartnerLose GameResult = "bughousepartnerlose"
	ResultBughousePartnerWin  GameResult = "bughousepartnerwin"
)

var gameResults = map[GameResult]struct{}{
	ResultWin:                 {},
	ResultTimeout:             {},
	ResultCheckmated:          {},
	ResultStalemate:           {},
	ResultResigned:            {},
	ResultAgreed:              {},
	ResultRepetition:          {},
	ResultInsufficient:        {},
	ResultAbandoned:           {},
	ResultFiftyMove:           {},
	ResultTimeVsInsufficient:  {},
	ResultKingOfTheHill:       {},
	ResultThreeCheck:          {},
	ResultBughousePartnerLose: {},
	ResultBughousePartnerWin:  {},
}

func (r *GameResult) UnmarshalJSON(data []byte) error {
	v, err := unmarshalEnum(data, "game result", gameResults)
	if err != nil {
		return err
	}
	*r = v
	return nil
}

// unmarshalEnum decodes a string enum, rejecting values outside the
// known set.
func unmarshalEnum[T ~string](data []byte, kind string, valid map[T]struct{}) (T, error) {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return "", err
	}
	v := T(s)
	if _, ok := valid[v]; !ok {
		return "", fmt.Errorf("unknown %s %q", kind, s)
	}
	return v, nil
}

type fieldPresence struct {
	name string
	ok   bool
}

// firstMissingField reports the first mandatory field a decoded object
// lacks.
func firstMissingField(fields []fieldPresence) error {
	for _, f := range fields {
		if !f.ok {
			return fmt.Errorf("missing %q field", f.name)
		}
	}
	return nil
}

// Player is one side of a game.
type Player struct {
	Username string     `json:"username"`
	Rating   int        `json:"rating"`
	Result   GameResult `json:"result"`
	Id       string     `json:"@id"`
}

// rawPlayer mirrors Player with every field behind a pointer, a nil
// pointer after decoding means the field was missing from the body.
type rawPlayer struct {
	Username *string     `json:"username"`
	Rating   *int        `json:"rating"`
	Result   *GameResult `json:"result"`
	Id       *string     `json:"@id"`
}

func (p *Player) UnmarshalJSON(data []byte) error {
	var raw rawPlayer
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	err := firstMissingField([]fieldPresence{
		{"username", raw.Username != nil},
		{"rating", raw.Rating != nil},
		{"result", raw.Result != nil},
		{"@id", raw.Id != nil},
	})
	if err != nil {
		return err
	}
	*p = Player{
		Username: *raw.Username,
		Rating:   *raw.Rating,
		Result:   *raw.Result,
		Id:       *raw.Id,
	}
	return nil
}

// Game is a single game exactly as the monthly archives publish it.
// Pointer fields are absent from some games, live games carry no
// start_time and variant games may lack a pgn or an opening code.
// Every other field is mandatory and a game lacking one fails to
// decode.
type Game struct {
	Url         string    `json:"url"`
	Pgn         *string   `json:"pgn"`
	TimeControl string    `json:"time_control"`
	StartTime   *int64    `json:"start_time"`
	EndTime     int64     `json:"end_time"`
	Rated       bool      `json:"rated"`
	Fen         string    `json:"fen"`
	TimeClass   TimeClass `json:"time_class"`
	Rules       Rules     `json:"rules"`
	Eco         *string   `json:"eco"`
	Tournament  *string   `json:"tournament"`
	Match       *string   `json:"match"`
	White       Player    `json:"white"`
	Black       Player    `json:"black"`
}

// rawGame mirrors Game with the mandatory fields behind pointers, a
// nil pointer after decoding means the field was missing from the
// body.
type rawGame struct {
	Url         *string    `json:"url"`
	Pgn         *string    `json:"pgn"`
	TimeControl *string    `json:"time_control"`
	StartTime   *int64     `json:"start_time"`
	EndTime     *int64     `json:"end_time"`
	Rated       *bool      `json:"rated"`
	Fen         *string    `json:"fen"`
	TimeClass   *TimeClass `json:"time_class"`
	Rules       *Rules     `json:"rules"`
	Eco         *string    `json:"eco"`
	Tournament  *string    `json:"tournament"`
	Match       *string    `json:"match"`
	White       *Player    `json:"white"`
	Black       *Player    `json:"black"`
}

func (g *Game) UnmarshalJSON(data []byte) error {
	var raw rawGame
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	err := firstMissingField([]fieldPresence{
		{"url", raw.Url != nil},
		{"time_control", raw.TimeControl != nil},
		{"end_time", raw.EndTime != nil},
		{"rated", raw.Rated != nil},
		{"fen", raw.Fen != nil},
		{"time_class", raw.TimeClass != nil},
		{"rules", raw.Rules != nil},
		{"white", raw.White != nil},
		{"black", raw.Black != nil},
	})
	if err != nil {
		return err
	}
	*g = Game{
		Url:         *raw.Url,
		Pgn:         raw.Pgn,
		TimeControl: *raw.TimeControl,
		StartTime:   raw.StartTime,
		EndTime:     *raw.EndTime,
		Rated:       *raw.Rated,
		Fen:         *raw.Fen,
		TimeClass:   *raw.TimeClass,
		Rules:       *raw.Rules,
		Eco:         raw.Eco,
		Tournament:  raw.Tournament,
		Match:       raw.Match,
		White:       *raw.White,
		Black:       *raw.Black,
	}
	return nil
}
