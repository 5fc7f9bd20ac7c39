package driver

import "github.com/soundprediction/herorag/pkg/types"

// The fixed demo dataset: four heroes, one team, nine hero-to-hero edges
// plus one MEMBER_OF edge per hero.

// TeamName is the single team in the dataset.
const TeamName = "Justice League"

type heroSeed struct {
	Name     string
	RealName string
	Powers   []string
	Origin   string
	Team     string
}

type teamSeed struct {
	Name    string
	Type    string
	Founded string
}

type edgeSeed struct {
	From string
	To   string
	Type types.RelType
}

func heroSeeds() []heroSeed {
	return []heroSeed{
		{
			Name:     "Superman",
			RealName: "Clark Kent",
			Powers:   []string{"super strength", "flight", "invulnerability", "heat vision"},
			Origin:   "Krypton",
			Team:     TeamName,
		},
		{
			Name:     "Batman",
			RealName: "Bruce Wayne",
			Powers:   []string{"intelligence", "martial arts", "technology"},
			Origin:   "Gotham City",
			Team:     TeamName,
		},
		{
			Name:     "Wonder Woman",
			RealName: "Diana Prince",
			Powers:   []string{"super strength", "lasso of truth", "combat skills"},
			Origin:   "Themyscira",
			Team:     TeamName,
		},
		{
			Name:     "Flash",
			RealName: "Barry Allen",
			Powers:   []string{"super speed", "time travel"},
			Origin:   "Central City",
			Team:     TeamName,
		},
	}
}

func justiceLeagueSeed() teamSeed {
	return teamSeed{Name: TeamName, Type: "superhero team", Founded: "1960"}
}

func edgeSeeds() []edgeSeed {
	return []edgeSeed{
		{"Superman", "Batman", types.RelTeammate},
		{"Superman", "Wonder Woman", types.RelTeammate},
		{"Superman", "Flash", types.RelTeammate},
		{"Batman", "Wonder Woman", types.RelTeammate},
		{"Batman", "Flash", types.RelTeammate},
		{"Wonder Woman", "Flash", types.RelTeammate},
		{"Superman", "Batman", types.RelAlly},
		{"Superman", "Wonder Woman", types.RelAlly},
		{"Superman", "Flash", types.RelAlly},
	}
}
