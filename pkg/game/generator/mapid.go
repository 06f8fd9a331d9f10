package generator

import (
	"fmt"

	"github.com/google/uuid"
)

// MapID derives a stable identifier from everything that determines the
// generated map, so two runs with the same parameters share an ID.
func MapID(cfg Config) uuid.UUID {
	key := fmt.Sprintf("doltmap:%dx%d:n=%d:size=%d-%d:seed=%d:start=%d,%d:attempts=%d",
		cfg.Width, cfg.Height, cfg.NumTerritories, cfg.MinSize, cfg.MaxSize,
		cfg.Seed, cfg.StartX, cfg.StartY, cfg.BuildAttempts)
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(key))
}
