package pos

import "github.com/rajat6235/Robusters-POS-sub001/internal/provider"

// Handler serves the counter-facing POS API.
type Handler struct {
	*provider.Container
}

// New creates the POS handler.
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}
