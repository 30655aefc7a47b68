package command

import (
	"fmt"
	"os"

	"github.com/pixil98/go-adventure/internal/game"
	"github.com/pixil98/go-adventure/internal/storage"
	"github.com/pixil98/go-errors"
)

// GameConfig points at the game library and names which world to serve.
type GameConfig struct {
	Path    string `json:"path"`
	Default string `json:"default,omitempty"`
}

func (c *GameConfig) Validate() error {
	el := errors.NewErrorList()

	if c.Path == "" {
		el.Add(fmt.Errorf("game: path is required"))
	} else if _, err := os.Stat(c.Path); err != nil {
		el.Add(fmt.Errorf("game: invalid path %q: %w", c.Path, err))
	}

	return el.Err()
}

func (c *GameConfig) BuildStore() (*storage.FileStore[*game.World], error) {
	return storage.NewFileStore[*game.World](c.Path)
}

// PickWorld selects the world every session will play: the configured
// default, or the library's only entry when no default is set.
func (c *GameConfig) PickWorld(store *storage.FileStore[*game.World]) (*game.World, error) {
	if c.Default != "" {
		w := store.Get(c.Default)
		if w == nil {
			return nil, fmt.Errorf("game %q not found in %s", c.Default, c.Path)
		}
		return w, nil
	}

	ids := store.Ids()
	if len(ids) != 1 {
		return nil, fmt.Errorf("game.default must be set when %s holds %d games", c.Path, len(ids))
	}
	return store.Get(ids[0]), nil
}

// AssetsConfig points at the directory artwork paths resolve against.
// The web front end serves the same directory under /assets/.
type AssetsConfig struct {
	Path string `json:"path"`
}

func (c *AssetsConfig) Validate() error {
	el := errors.NewErrorList()

	if c.Path == "" {
		el.Add(fmt.Errorf("assets: path is required"))
	} else if _, err := os.Stat(c.Path); err != nil {
		el.Add(fmt.Errorf("assets: invalid path %q: %w", c.Path, err))
	}

	return el.Err()
}
