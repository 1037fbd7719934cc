package nhlweb

// localized is the {"default": "..."} wrapper the API uses for display strings.
type localized struct {
	Default string `json:"default"`
}

type periodDescriptor struct {
	Number     int    `json:"number"`
	PeriodType string `json:"periodType"`
}

type team struct {
	ID         int       `json:"id"`
	Abbrev     string    `json:"abbrev"`
	PlaceName  localized `json:"placeName"`
	CommonName localized `json:"commonName"`
	Name       localized `json:"name"`
	Score      int       `json:"score"`
	SOG        int       `json:"sog"`
}

type scheduleResponse struct {
	GameWeek []scheduleDay `json:"gameWeek"`
}

type scheduleDay struct {
	Date  string         `json:"date"`
	Games []scheduleGame `json:"games"`
}

type scheduleGame struct {
	ID           int64     `json:"id"`
	StartTimeUTC string    `json:"startTimeUTC"`
	GameState    string    `json:"gameState"`
	Venue        localized `json:"venue"`
	HomeTeam     team      `json:"homeTeam"`
	AwayTeam     team      `json:"awayTeam"`
}

type clock struct {
	TimeRemaining  string `json:"timeRemaining"`
	InIntermission bool   `json:"inIntermission"`
}

type playByPlayResponse struct {
	ID               int64            `json:"id"`
	GameState        string           `json:"gameState"`
	PeriodDescriptor periodDescriptor `json:"periodDescriptor"`
	Clock            clock            `json:"clock"`
	HomeTeam         team             `json:"homeTeam"`
	AwayTeam         team             `json:"awayTeam"`
	Plays            []play           `json:"plays"`
	RosterSpots      []rosterSpot     `json:"rosterSpots"`
}

type play struct {
	EventID          int64            `json:"eventId"`
	SortOrder        int              `json:"sortOrder"`
	TypeDescKey      string           `json:"typeDescKey"`
	PeriodDescriptor periodDescriptor `json:"periodDescriptor"`
	TimeInPeriod     string           `json:"timeInPeriod"`
	TimeRemaining    string           `json:"timeRemaining"`
	SituationCode    string           `json:"situationCode"`
	Details          *playDetails     `json:"details"`
}

type playDetails struct {
	EventOwnerTeamID    int    `json:"eventOwnerTeamId"`
	ScoringPlayerID     int64  `json:"scoringPlayerId"`
	ScoringPlayerTotal  int    `json:"scoringPlayerTotal"`
	Assist1PlayerID     int64  `json:"assist1PlayerId"`
	Assist2PlayerID     int64  `json:"assist2PlayerId"`
	HomeScore           int    `json:"homeScore"`
	AwayScore           int    `json:"awayScore"`
	CommittedByPlayerID int64  `json:"committedByPlayerId"`
	ServedByPlayerID    int64  `json:"servedByPlayerId"`
	DrawnByPlayerID     int64  `json:"drawnByPlayerId"`
	DescKey             string `json:"descKey"`
	Duration            int    `json:"duration"`
}

type rosterSpot struct {
	TeamID    int       `json:"teamId"`
	PlayerID  int64     `json:"playerId"`
	FirstName localized `json:"firstName"`
	LastName  localized `json:"lastName"`
}

type boxScoreResponse struct {
	ID               int64            `json:"id"`
	GameState        string           `json:"gameState"`
	PeriodDescriptor periodDescriptor `json:"periodDescriptor"`
	HomeTeam         team             `json:"homeTeam"`
	AwayTeam         team             `json:"awayTeam"`
}

type landingResponse struct {
	ID      int64          `json:"id"`
	Summary landingSummary `json:"summary"`
}

type landingSummary struct {
	ThreeStars []star    `json:"threeStars"`
	GameVideo  gameVideo `json:"gameVideo"`
}

type star struct {
	Star       int       `json:"star"`
	TeamAbbrev string    `json:"teamAbbrev"`
	Name       localized `json:"name"`
	Position   string    `json:"position"`
	Goals      int       `json:"goals"`
	Assists    int       `json:"assists"`
}

type gameVideo struct {
	ThreeMinRecap int64 `json:"threeMinRecap"`
}
