package api

// Character is a player identity. Name carries the battletag
// discriminator ("Serral#1234").
type Character struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Region string `json:"region"`
}

// TeamMember is one character's membership in a ranked team, with the
// per-race played-games counters. Absent counters decode to zero.
type TeamMember struct {
	Character          Character `json:"character"`
	ProNickname        string    `json:"proNickname"`
	TerranGamesPlayed  int       `json:"terranGamesPlayed"`
	ProtossGamesPlayed int       `json:"protossGamesPlayed"`
	ZergGamesPlayed    int       `json:"zergGamesPlayed"`
	RandomGamesPlayed  int       `json:"randomGamesPlayed"`
}

type TeamLeague struct {
	Type      int `json:"type"`
	QueueType int `json:"queueType"`
	TeamType  int `json:"teamType"`
}

// Team is one ladder entry, a ranked group of 1-4 members.
type Team struct {
	ID       int64        `json:"id"`
	Rating   int          `json:"rating"`
	Wins     int          `json:"wins"`
	Losses   int          `json:"losses"`
	Region   string       `json:"region"`
	League   TeamLeague   `json:"league"`
	TierType *int         `json:"tierType"`
	Members  []TeamMember `json:"members"`
}

type LadderPage struct {
	Result []Team `json:"result"`
}

// CharacterSummary aggregates a character's 1v1 results over a look-back
// window.
type CharacterSummary struct {
	PlayerCharacterID int64  `json:"playerCharacterId"`
	Race              string `json:"race"`
	Games             int    `json:"games"`
	RatingLast        int    `json:"ratingLast"`
	RatingAvg         int    `json:"ratingAvg"`
	RatingMax         int    `json:"ratingMax"`
}

type CharacterSearchResult struct {
	LeagueMax        int        `json:"leagueMax"`
	RatingMax        int        `json:"ratingMax"`
	TotalGamesPlayed int        `json:"totalGamesPlayed"`
	Members          TeamMember `json:"members"`
}

type Season struct {
	BattlenetID int    `json:"battlenetId"`
	Region      string `json:"region"`
	Year        int    `json:"year"`
	Number      int    `json:"number"`
}
