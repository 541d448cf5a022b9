// Package browser wraps go-rod with the handful of primitives the suite
// needs: navigate, fill, type, click and read-text, each with rod's
// built-in element waiting. The transliteration app itself stays opaque.
package browser

import (
	"context"
	"errors"
	"sync"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	"github.com/translit-qa/translit-e2e/internal/config"
	"github.com/translit-qa/translit-e2e/internal/domain"
)

// Driver owns the Chrome instance shared by all case tasks. Each case gets
// its own incognito page, so tasks never share page state.
type Driver struct {
	app    config.AppConfig
	timing config.TimingConfig

	mu       sync.Mutex
	browser  *rod.Browser
	launch   *launcher.Launcher
	headless bool
}

// NewDriver creates a driver for the given app and timing configuration.
func NewDriver(app config.AppConfig, timing config.TimingConfig, headless bool) *Driver {
	return &Driver{app: app, timing: timing, headless: headless}
}

// Connect launches Chrome and connects to it. Calling Connect on an
// already-connected driver is a no-op.
func (d *Driver) Connect(ctx context.Context) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.browser != nil {
		return nil
	}

	d.launch = launcher.New().Headless(d.headless)
	controlURL, err := d.launch.Launch()
	if err != nil {
		return domain.NewError("browser", "", "failed to launch chrome", err)
	}

	browser := rod.New().ControlURL(controlURL).Context(ctx)
	if err := browser.Connect(); err != nil {
		return domain.NewError("browser", "", "failed to connect to chrome", err)
	}

	d.browser = browser
	return nil
}

// Close shuts the browser down and kills the launched Chrome process.
func (d *Driver) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	var err error
	if d.browser != nil {
		err = d.browser.Close()
		d.browser = nil
	}
	if d.launch != nil {
		d.launch.Cleanup()
		d.launch = nil
	}
	return err
}

// NewPage opens an isolated incognito page and navigates it to url.
// The caller owns the page and must Close it.
func (d *Driver) NewPage(ctx context.Context, url string) (*Page, error) {
	d.mu.Lock()
	browser := d.browser
	d.mu.Unlock()

	if browser == nil {
		return nil, domain.NewError("browser", "", "driver not connected", errors.New("call Connect first"))
	}

	incognito, err := browser.Incognito()
	if err != nil {
		return nil, domain.NewError("browser", "", "failed to create incognito context", err)
	}

	page, err := incognito.Page(proto.TargetCreateTarget{URL: url})
	if err != nil {
		return nil, domain.NewError("browser", "", "failed to open page", err)
	}

	if err := page.Context(ctx).Timeout(d.timing.NavigationTimeout()).WaitLoad(); err != nil {
		_ = page.Close()
		return nil, domain.NewError("browser", "", "page failed to load", err)
	}

	return &Page{page: page, app: d.app, timing: d.timing}, nil
}
