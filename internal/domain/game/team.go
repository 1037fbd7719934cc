package game

import "strings"

// Team identifies a club in provider-neutral terms.
type Team struct {
	ID     int    `json:"id"`
	Abbrev string `json:"abbrev"`
	Place  string `json:"place"`
	Name   string `json:"name"`
}

// FullName joins place and common name, e.g. "Toronto Maple Leafs".
func (t Team) FullName() string {
	return strings.TrimSpace(t.Place + " " + t.Name)
}

// Matches reports whether abbrev identifies this team.
func (t Team) Matches(abbrev string) bool {
	return abbrev != "" && strings.EqualFold(t.Abbrev, abbrev)
}

// TeamScore pairs a team with its running totals.
type TeamScore struct {
	Team  Team `json:"team"`
	Score int  `json:"score"`
	Shots int  `json:"shots"`
}
