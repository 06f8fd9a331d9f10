package generator

import (
	"fmt"
	"math/rand"

	"github.com/zyedidia/generic/mapset"

	"doltmap/pkg/game/territory"
)

var (
	namePrefixes = []string{"North", "South", "East", "West", "New", "Old", "Upper", "Lower"}
	nameRoots    = []string{"Plains", "Valley", "Hills", "Forest", "Woods", "Fields", "Meadows", "Ridge",
		"Haven", "Landing", "Point", "Glen", "Dale", "Hollow", "Brook", "Springs"}
	nameSuffixes = []string{"", "land", "ton", "ville", "burg", "ford", "shire"}
)

// TerritoryName returns the display name for a territory ID.
// Names depend only on the ID, never on the generation random source.
func TerritoryName(id int) string {
	r := rand.New(rand.NewSource(int64(id*7919 + 1)))
	switch r.Intn(3) {
	case 0:
		return namePrefixes[r.Intn(len(namePrefixes))] + " " + nameRoots[r.Intn(len(nameRoots))]
	case 1:
		return nameRoots[r.Intn(len(nameRoots))] + nameSuffixes[r.Intn(len(nameSuffixes))]
	default:
		return nameRoots[r.Intn(len(nameRoots))]
	}
}

// NameTerritories assigns every territory a unique name. Clashes get a
// numeric suffix.
func NameTerritories(territories []*territory.Territory) {
	used := mapset.New[string]()
	for _, t := range territories {
		base := TerritoryName(int(t.ID))
		name := base
		for n := 2; used.Has(name); n++ {
			name = fmt.Sprintf("%s %d", base, n)
		}
		used.Put(name)
		t.Name = name
	}
}
