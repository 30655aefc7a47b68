package game

import (
	"fmt"

	"github.com/pixil98/go-errors"
)

// Location is one node of the world graph.
type Location struct {
	ID   string `json:"id"`
	Name string `json:"name"`

	// Image is an asset path rendered above the location description.
	// Empty means the location has no artwork.
	Image string `json:"image"`

	Description string `json:"description"`

	// Details is the longer lore text behind the "details" command. It also
	// seeds the canned narration fallback.
	Details string `json:"details"`

	Objects  []*Object  `json:"objects"`
	Actors   []*Actor   `json:"actors"`
	Pathways []*Pathway `json:"pathways"`
}

func (l *Location) Validate() error {
	el := errors.NewErrorList()

	for i, obj := range l.Objects {
		if obj.ID == "" {
			el.Add(fmt.Errorf("object %d: id is required", i))
		}
	}
	for i, actor := range l.Actors {
		if actor.ID == "" {
			el.Add(fmt.Errorf("actor %d: id is required", i))
		}
	}
	for i, path := range l.Pathways {
		if path.ID == "" {
			el.Add(fmt.Errorf("pathway %d: id is required", i))
		}
		if err := path.Validate(); err != nil {
			el.Add(fmt.Errorf("pathway %s: %w", path.ID, err))
		}
	}

	return el.Err()
}
