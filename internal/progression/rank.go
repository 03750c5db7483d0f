package progression

// Rank pairs a minimum level with the title shown from that level on.
type Rank struct {
	Level int
	Title string
}

// DefaultRankTitle is shown below the first threshold.
const DefaultRankTitle = "Initiate"

// Ranks is sorted by ascending level.
var Ranks = []Rank{
	{Level: 1, Title: "Initiate"},
	{Level: 5, Title: "Scout"},
	{Level: 10, Title: "Operator"},
	{Level: 15, Title: "Specialist"},
	{Level: 20, Title: "Elite"},
	{Level: 25, Title: "Vanguard"},
	{Level: 30, Title: "Legend"},
	{Level: 40, Title: "Ascendant"},
	{Level: 50, Title: "Architect"},
}

// RankTitle returns the highest title whose level is at most level.
func RankTitle(level int) string {
	title := DefaultRankTitle
	for _, r := range Ranks {
		if r.Level > level {
			break
		}
		title = r.Title
	}
	return title
}
