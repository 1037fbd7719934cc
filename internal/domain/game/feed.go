package game

// LiveFeed is a snapshot of the play-by-play endpoint.
type LiveFeed struct {
	GameID         int64            `json:"gameId"`
	State          State            `json:"state"`
	Period         PeriodDescriptor `json:"period"`
	InIntermission bool             `json:"inIntermission"`
	Home           TeamScore        `json:"home"`
	Away           TeamScore        `json:"away"`
	Plays          []Play           `json:"plays"`
}

// BoxScore carries final or running team totals.
type BoxScore struct {
	GameID int64            `json:"gameId"`
	State  State            `json:"state"`
	Period PeriodDescriptor `json:"period"`
	Home   TeamScore        `json:"home"`
	Away   TeamScore        `json:"away"`
}

// Star is one of the three stars of the game.
type Star struct {
	Rank       int    `json:"rank"`
	Name       string `json:"name"`
	TeamAbbrev string `json:"teamAbbrev"`
	Position   string `json:"position"`
	Goals      int    `json:"goals"`
	Assists    int    `json:"assists"`
}

// Landing is the post-game summary page: stars and recap video.
type Landing struct {
	GameID       int64  `json:"gameId"`
	ThreeStars   []Star `json:"threeStars"`
	RecapVideoID string `json:"recapVideoId"`
}

// Officials lists the announced officiating crew.
type Officials struct {
	Confirmed bool     `json:"confirmed"`
	Referees  []string `json:"referees"`
	Linesmen  []string `json:"linesmen"`
}

// LineScoreEntry is one goal in the line score.
type LineScoreEntry struct {
	Label   string   `json:"label"`
	Scorer  string   `json:"scorer"`
	Assists []string `json:"assists"`
}

// LineScore groups goal entries by scoring team abbreviation, in order.
type LineScore struct {
	Home []LineScoreEntry `json:"home"`
	Away []LineScoreEntry `json:"away"`
}
