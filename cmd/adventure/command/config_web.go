package command

import (
	"fmt"
	"net/http"

	"github.com/pixil98/go-adventure/internal/web"
	"github.com/pixil98/go-errors"
)

type WebConfig struct {
	Enabled bool   `json:"enabled"`
	Address string `json:"address,omitempty"`
}

func (c *WebConfig) Validate() error {
	el := errors.NewErrorList()

	if c.Enabled && c.Address == "" {
		el.Add(fmt.Errorf("web: address is required when enabled"))
	}

	return el.Err()
}

func (c *WebConfig) BuildWorker(handler http.Handler) *web.Worker {
	return web.NewWorker(c.Address, handler)
}
