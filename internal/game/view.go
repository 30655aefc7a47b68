package game

// View is the read-only projection handed to presentation layers. It
// exposes what the player can currently perceive without leaking the
// mutable state structures themselves.
type View struct {
	Location  ViewLocation `json:"location"`
	Inventory []ViewItem   `json:"inventory"`
}

// ViewLocation describes the current location and its visible contents.
type ViewLocation struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Details     string       `json:"details"`
	Image       string       `json:"image"`
	Actors      []ViewActor  `json:"actors"`
	Objects     []ViewObject `json:"objects"`
	Exits       []ViewExit   `json:"exits"`
}

type ViewActor struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type ViewObject struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Details     string `json:"details"`
}

type ViewExit struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Target      string `json:"target"`
	Locked      bool   `json:"locked"`
}

type ViewItem struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Snapshot projects the current location and inventory. Held objects and
// hidden exits are filtered out; exit lock flags reflect session state,
// not the definition.
func Snapshot(w *World, s *State) View {
	loc := w.Location(s.Player.LocationID)

	actors := []ViewActor{}
	for _, actor := range loc.Actors {
		actors = append(actors, ViewActor{
			ID:          actor.ID,
			Name:        actor.Name,
			Description: actor.Description,
		})
	}

	objects := []ViewObject{}
	for _, obj := range loc.Objects {
		if s.Objects[obj.ID].HeldByPlayer {
			continue
		}
		objects = append(objects, ViewObject{
			ID:          obj.ID,
			Name:        obj.Name,
			Description: obj.Description,
			Details:     obj.Details,
		})
	}

	exits := []ViewExit{}
	for _, path := range loc.Pathways {
		if s.Pathways[path.ID].Hidden {
			continue
		}
		exits = append(exits, ViewExit{
			ID:          path.ID,
			Name:        path.Name,
			Description: path.Description,
			Target:      path.Target,
			Locked:      s.Pathways[path.ID].Locked,
		})
	}

	inventory := []ViewItem{}
	for _, id := range s.Player.Inventory {
		if obj := w.Object(id); obj != nil {
			inventory = append(inventory, ViewItem{ID: id, Name: obj.Name})
		}
	}

	return View{
		Location: ViewLocation{
			ID:          loc.ID,
			Name:        loc.Name,
			Description: loc.Description,
			Details:     loc.Details,
			Image:       loc.Image,
			Actors:      actors,
			Objects:     objects,
			Exits:       exits,
		},
		Inventory: inventory,
	}
}
