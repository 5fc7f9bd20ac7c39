package docstore

import "github.com/soundprediction/herorag/pkg/types"

// Superheroes returns the fixed demo corpus: one biography per hero plus
// a team overview document.
func Superheroes() []types.Document {
	return []types.Document{
		{
			ID:        "superman_bio",
			Title:     "Superman Biography",
			Content:   "Superman, also known as Clark Kent, is a fictional superhero from the planet Krypton. He possesses incredible powers including super strength, flight, invulnerability, heat vision, and x-ray vision. He was sent to Earth as an infant and raised by Jonathan and Martha Kent in Smallville, Kansas. Superman is a founding member of the Justice League and works as a reporter for the Daily Planet in Metropolis.",
			Character: "Superman",
		},
		{
			ID:        "batman_bio",
			Title:     "Batman Biography",
			Content:   "Batman, whose real identity is Bruce Wayne, is a billionaire vigilante who fights crime in Gotham City. After witnessing his parents' murder as a child, Bruce dedicated his life to fighting crime. He has no superhuman powers but relies on his intelligence, martial arts skills, detective abilities, and advanced technology. Batman is known for his dark persona and is a founding member of the Justice League.",
			Character: "Batman",
		},
		{
			ID:        "wonder_woman_bio",
			Title:     "Wonder Woman Biography",
			Content:   "Wonder Woman, also known as Diana Prince, is an Amazonian princess from the island of Themyscira. She possesses superhuman strength, speed, and durability. Her signature weapons include the Lasso of Truth, indestructible bracelets, and a sword and shield. Wonder Woman serves as an ambassador for peace and is a founding member of the Justice League.",
			Character: "Wonder Woman",
		},
		{
			ID:        "flash_bio",
			Title:     "Flash Biography",
			Content:   "The Flash, whose real name is Barry Allen, is the fastest man alive. He gained his super-speed powers after being struck by lightning and doused with chemicals. Barry can run faster than the speed of light, travel through time, and phase through solid objects. He works as a forensic scientist for the Central City Police Department and is a member of the Justice League.",
			Character: "Flash",
		},
		{
			ID:        "justice_league_info",
			Title:     "Justice League Information",
			Content:   "The Justice League is a team of superheroes including Superman, Batman, Wonder Woman, Flash, Green Lantern, Aquaman, and others. Founded to protect Earth from threats too large for any single hero, the team operates from the Watchtower satellite. The Justice League represents hope, justice, and heroism, with each member bringing unique abilities to protect humanity.",
			Character: "Team",
		},
	}
}

// NewSuperheroStore creates a store preloaded with the fixed corpus.
func NewSuperheroStore() *Store {
	s, err := New(Superheroes())
	if err != nil {
		// The fixed corpus is validated by tests; this cannot fail at runtime.
		panic(err)
	}
	return s
}
