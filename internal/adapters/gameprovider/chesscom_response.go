package gameprovider

// Raw shapes returned by the chess.com published-data API.

type chessComProfile struct {
	Username string  `json:"username"`
	Title    *string `json:"title"`
	Country  *string `json:"country"`
	Joined   int64   `json:"joined"`
	Avatar   *string `json:"avatar"`
}

type chessComArchiveList struct {
	Archives []string `json:"archives"`
}

type chessComArchive struct {
	Games []chessComGame `json:"games"`
}

type chessComGame struct {
	UUID        string             `json:"uuid"`
	URL         string             `json:"url"`
	PGN         string             `json:"pgn"`
	TimeControl string             `json:"time_control"`
	TimeClass   string             `json:"time_class"`
	Rated       bool               `json:"rated"`
	EndTime     int64              `json:"end_time"`
	ECO         string             `json:"eco"`
	White       chessComGamePlayer `json:"white"`
	Black       chessComGamePlayer `json:"black"`
}

type chessComGamePlayer struct {
	Username string `json:"username"`
	Rating   int    `json:"rating"`
	Result   string `json:"result"`
}
