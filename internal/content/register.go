package content

import (
	"errors"
	"fmt"

	"github.com/dodorz/albumdesk/internal/wm"
)

// Register adds one provider per album and page of c, installs the
// placeholder fallback and verifies every catalog title resolves.
func Register(ps *wm.Providers, c *Catalog) error {
	var errs []error
	for _, a := range c.Albums {
		errs = append(errs, ps.Register(a.Title, AlbumProvider(a)))
	}
	for _, p := range c.Pages {
		errs = append(errs, ps.Register(p.Title, PageProvider(p)))
	}
	ps.SetFallback(wm.ProviderFunc(NewPlaceholder))

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("register providers: %w", err)
	}
	return ps.Verify(c.Titles()...)
}
