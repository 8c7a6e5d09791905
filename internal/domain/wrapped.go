package domain

import "time"

type StreakType string

const (
	StreakWin  StreakType = "win"
	StreakLoss StreakType = "loss"
	StreakDraw StreakType = "draw"
)

type Streak struct {
	Type  StreakType `json:"type"`
	Count int        `json:"count"`
}

// RatingPoint is one entry in a collapsed rating series: at most one point
// per calendar date (UTC), holding the rating after the last game that date.
type RatingPoint struct {
	Date      string    `json:"date"`
	Rating    int       `json:"rating"`
	Timestamp time.Time `json:"timestamp"`
}

type RatingExtreme struct {
	Rating int    `json:"rating"`
	Date   string `json:"date"`
}

type RatingHistory struct {
	Points      []RatingPoint `json:"points"`
	StartRating int           `json:"startRating"`
	EndRating   int           `json:"endRating"`
	Change      int           `json:"change"`
	Peak        RatingExtreme `json:"peak"`
	Lowest      RatingExtreme `json:"lowest"`
}

type OpeningStats struct {
	ECO     string  `json:"eco,omitempty"`
	Name    string  `json:"name"`
	Games   int     `json:"games"`
	Wins    int     `json:"wins"`
	Losses  int     `json:"losses"`
	Draws   int     `json:"draws"`
	WinRate float64 `json:"winRate"`
}

type OpeningReport struct {
	Top  []OpeningStats `json:"top"`
	Best *OpeningStats  `json:"best,omitempty"`
}

type OpponentStats struct {
	Username string `json:"username"`
	Games    int    `json:"games"`
	Wins     int    `json:"wins"`
	Losses   int    `json:"losses"`
	Draws    int    `json:"draws"`
	// Rating is the opponent's rating in the most recent game against them
	Rating int `json:"rating"`
}

type DefeatedOpponent struct {
	Username string `json:"username"`
	Rating   int    `json:"rating"`
	GameURL  string `json:"gameUrl,omitempty"`
}

type TimeControlStats struct {
	TimeControl string    `json:"timeControl"`
	TimeClass   TimeClass `json:"timeClass"`
	Games       int       `json:"games"`
	Wins        int       `json:"wins"`
	Losses      int       `json:"losses"`
	Draws       int       `json:"draws"`
	WinRate     float64   `json:"winRate"`
}

type NotableGame struct {
	URL            string    `json:"url,omitempty"`
	Opponent       string    `json:"opponent"`
	OpponentRating int       `json:"opponentRating"`
	PlayerRating   int       `json:"playerRating"`
	Moves          int       `json:"moves"`
	TimeClass      TimeClass `json:"timeClass"`
	EndTime        time.Time `json:"endTime"`
}

type ResultBreakdown struct {
	CheckmatesGiven    int `json:"checkmatesGiven"`
	CheckmatesReceived int `json:"checkmatesReceived"`
	WinsByCheckmate    int `json:"winsByCheckmate"`
	WinsByResignation  int `json:"winsByResignation"`
	WinsByTimeout      int `json:"winsByTimeout"`
	WinsByOther        int `json:"winsByOther"`
	Stalemates         int `json:"stalemates"`
	OtherDraws         int `json:"otherDraws"`
}

type Activity struct {
	TotalMoves           int `json:"totalMoves"`
	EstimatedPlaySeconds int `json:"estimatedPlaySeconds"`
}

// WrappedStats is the full statistics report for one player and period.
// It is the sole input a downstream renderer needs.
type WrappedStats struct {
	Username    string        `json:"username"`
	Platform    Platform      `json:"platform"`
	Profile     PlayerProfile `json:"profile"`
	PeriodStart time.Time     `json:"periodStart"`
	PeriodEnd   time.Time     `json:"periodEnd"`

	TotalGames int     `json:"totalGames"`
	Wins       int     `json:"wins"`
	Losses     int     `json:"losses"`
	Draws      int     `json:"draws"`
	WinRate    float64 `json:"winRate"`

	Results ResultBreakdown `json:"results"`

	RatingHistories map[TimeClass]RatingHistory `json:"ratingHistories"`

	OpeningsAsWhite OpeningReport `json:"openingsAsWhite"`
	OpeningsAsBlack OpeningReport `json:"openingsAsBlack"`

	TopOpponents         []OpponentStats   `json:"topOpponents"`
	MostPlayedOpponent   *OpponentStats    `json:"mostPlayedOpponent,omitempty"`
	Nemesis              *OpponentStats    `json:"nemesis,omitempty"`
	HighestRatedDefeated *DefeatedOpponent `json:"highestRatedDefeated,omitempty"`

	TimeControls []TimeControlStats `json:"timeControls"`

	GamesByHour [24]int      `json:"gamesByHour"`
	GamesByDay  [7]int       `json:"gamesByDay"`
	BusiestHour int          `json:"busiestHour"`
	BusiestDay  time.Weekday `json:"busiestDay"`

	LongestWinStreak  int    `json:"longestWinStreak"`
	LongestLossStreak int    `json:"longestLossStreak"`
	CurrentStreak     Streak `json:"currentStreak"`

	Activity Activity `json:"activity"`

	BestWin     *NotableGame `json:"bestWin,omitempty"`
	QuickestWin *NotableGame `json:"quickestWin,omitempty"`

	MostPlayedTimeClass   TimeClass `json:"mostPlayedTimeClass"`
	MostPlayedTimeControl string    `json:"mostPlayedTimeControl"`
	FormatTag             string    `json:"formatTag"`
	TimeTag               string    `json:"timeTag"`
}
