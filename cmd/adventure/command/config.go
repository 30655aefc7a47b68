package command

import (
	"fmt"

	"github.com/pixil98/go-errors"
)

type Config struct {
	Game      GameConfig       `json:"game"`
	Assets    AssetsConfig     `json:"assets"`
	Narrator  NarratorConfig   `json:"narrator"`
	Web       WebConfig        `json:"web"`
	Listeners []ListenerConfig `json:"listeners"`
	Console   ConsoleConfig    `json:"console"`
}

func (c *Config) Validate() error {
	el := errors.NewErrorList()

	el.Add(c.Game.Validate())
	el.Add(c.Assets.Validate())
	el.Add(c.Narrator.Validate())
	el.Add(c.Web.Validate())

	for i, l := range c.Listeners {
		if err := l.Validate(); err != nil {
			el.Add(fmt.Errorf("listener %d: %w", i, err))
		}
	}

	if !c.Web.Enabled && !c.Console.Enabled && len(c.Listeners) == 0 {
		el.Add(fmt.Errorf("at least one front end (web, console, or listeners) must be configured"))
	}

	return el.Err()
}

type ConsoleConfig struct {
	Enabled bool `json:"enabled"`
}
