package command

import (
	"fmt"

	"github.com/pixil98/go-adventure/internal/artwork"
	"github.com/pixil98/go-adventure/internal/commands"
	"github.com/pixil98/go-adventure/internal/listener"
	"github.com/pixil98/go-adventure/internal/repl"
	"github.com/pixil98/go-adventure/internal/web"
	"github.com/pixil98/go-service/service"
)

func BuildWorkers(config interface{}) (service.WorkerList, error) {
	cfg, ok := config.(*Config)
	if !ok {
		return nil, fmt.Errorf("unable to cast config")
	}

	// Load the game library and pick the world to serve
	games, err := cfg.Game.BuildStore()
	if err != nil {
		return nil, fmt.Errorf("creating game store: %w", err)
	}
	world, err := cfg.Game.PickWorld(games)
	if err != nil {
		return nil, err
	}

	renderer := artwork.NewRenderer(cfg.Assets.Path)

	narr, err := cfg.Narrator.BuildNarrator()
	if err != nil {
		return nil, fmt.Errorf("creating narrator: %w", err)
	}

	// Terminal sessions get ASCII artwork; browser sessions get real
	// images from /assets/ instead.
	newSession := func() *commands.Interpreter {
		opts := []commands.InterpreterOpt{commands.WithRenderer(renderer)}
		if narr != nil {
			opts = append(opts, commands.WithNarrator(narr))
		}
		return commands.NewInterpreter(world, opts...)
	}
	newWebSession := func() *commands.Interpreter {
		var opts []commands.InterpreterOpt
		if narr != nil {
			opts = append(opts, commands.WithNarrator(narr))
		}
		return commands.NewInterpreter(world, opts...)
	}

	workers := service.WorkerList{}

	if len(cfg.Listeners) > 0 {
		cm := listener.NewConnectionManager(newSession)
		listeners := make(service.WorkerList, len(cfg.Listeners))
		for i, l := range cfg.Listeners {
			lst, err := l.BuildListener(cm)
			if err != nil {
				return nil, fmt.Errorf("creating listener %d: %w", i, err)
			}
			listeners[fmt.Sprintf("listener-%d", i)] = lst
		}
		workers["listeners"] = &listeners
	}

	if cfg.Web.Enabled {
		workers["web"] = cfg.Web.BuildWorker(web.NewHandler(newWebSession, cfg.Assets.Path))
	}

	if cfg.Console.Enabled {
		workers["console"] = repl.NewWorker(newSession)
	}

	return workers, nil
}
