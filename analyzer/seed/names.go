package seed

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/jmatamoros/cvmatch/pkg/kernel"
)

// The dataset carries no personal data, so candidate identities are
// synthesized. Generation is seeded so re-running the seeder on the same
// dataset produces the same people.

var firstNames = []string{
	"Alice", "Bruno", "Carmen", "Diego", "Elena", "Felix", "Gloria", "Hector",
	"Irene", "Javier", "Karla", "Luis", "Maria", "Nadia", "Oscar", "Paula",
	"Quentin", "Rosa", "Samuel", "Teresa", "Ulises", "Valeria", "Walter", "Ximena",
}

var lastNames = []string{
	"Aguilar", "Blanco", "Castro", "Delgado", "Espinoza", "Flores", "Garcia",
	"Herrera", "Ibarra", "Jimenez", "Klein", "Lopez", "Mendoza", "Navarro",
	"Ortega", "Paredes", "Quiroga", "Rojas", "Salazar", "Torres", "Urbina",
	"Vargas", "Watson", "Zamora",
}

// NameGenerator produces deterministic synthetic candidate identities.
type NameGenerator struct {
	rng   *rand.Rand
	index int
}

// NewNameGenerator creates a generator with a fixed seed.
func NewNameGenerator(seed int64) *NameGenerator {
	return &NameGenerator{rng: rand.New(rand.NewSource(seed))}
}

// Next returns the next synthetic identity. The email embeds a running index
// so generated addresses never collide even when names repeat.
func (g *NameGenerator) Next() (kernel.FullName, kernel.Email, kernel.Phone) {
	first := firstNames[g.rng.Intn(len(firstNames))]
	last := lastNames[g.rng.Intn(len(lastNames))]
	name := first + " " + last

	email := fmt.Sprintf("%s.%s%d@example.com",
		strings.ToLower(first), strings.ToLower(last), g.index)
	phone := fmt.Sprintf("+1-555-%07d", g.rng.Intn(10000000))

	g.index++
	return kernel.FullName(name), kernel.Email(email), kernel.Phone(phone)
}
