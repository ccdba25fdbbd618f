package fixture

// PremierLeagueTeams is the team list offered by the admin fixture form.
var PremierLeagueTeams = []string{
	"Arsenal", "Aston Villa", "Brighton & Hove Albion", "Burnley", "Chelsea",
	"Crystal Palace", "Everton", "Fulham", "Liverpool", "Luton Town",
	"Manchester City", "Manchester United", "Newcastle United", "Nottingham Forest",
	"Sheffield United", "Tottenham Hotspur", "West Ham United", "Wolverhampton Wanderers",
	"AFC Bournemouth", "Brentford",
}
