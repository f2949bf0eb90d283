package normalize

// KeyStyle holds the key names the late stages operate on. They differ
// depending on whether camelCase conversion ran first.
type KeyStyle struct {
	GroupPatterns []string
	Timestamps    []Rename
	RatingField   string
	Renames       []Rename
}

// SnakeStyle matches keys as the upstream sends them.
var SnakeStyle = KeyStyle{
	GroupPatterns: []string{"player_{N}_account_id", "league_id_{N}"},
	Timestamps:    []Rename{{From: "time_created", To: "created_at"}},
	RatingField:   "rating",
	Renames: []Rename{
		{From: "logo", To: "logo_ugcid"},
		{From: "logo_sponsor", To: "sponsor_logo_ugcid"},
		{From: "sponsor_logo", To: "sponsor_logo_ugcid"},
	},
}

// CamelStyle matches keys after CamelCaseKeys.
var CamelStyle = KeyStyle{
	GroupPatterns: []string{"player{N}AccountID", "leagueID{N}"},
	Timestamps:    []Rename{{From: "timeCreated", To: "createdAt"}},
	RatingField:   "rating",
	Renames: []Rename{
		{From: "logo", To: "logoUGCID"},
		{From: "logoSponsor", To: "sponsorLogoUGCID"},
		{From: "sponsorLogo", To: "sponsorLogoUGCID"},
	},
}
