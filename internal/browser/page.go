package browser

import (
	"context"
	"strings"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/input"
	"github.com/go-rod/rod/lib/proto"

	"github.com/translit-qa/translit-e2e/internal/config"
	"github.com/translit-qa/translit-e2e/internal/domain"
)

// Page is one case's isolated view of the app. All methods re-locate their
// elements so a re-rendering UI cannot hand back a stale node.
type Page struct {
	page   *rod.Page
	app    config.AppConfig
	timing config.TimingConfig
}

// Close closes the underlying browser page.
func (p *Page) Close() error {
	return p.page.Close()
}

// inputElement locates the first matching input surface and waits until it
// is visible.
func (p *Page) inputElement(ctx context.Context) (*rod.Element, error) {
	el, err := p.page.Context(ctx).Element(p.app.InputSelector)
	if err != nil {
		return nil, domain.NewError("interact", "", "input surface not found", err)
	}
	if err := el.WaitVisible(); err != nil {
		return nil, domain.NewError("interact", "", "input surface not visible", err)
	}
	return el, nil
}

// ClearInput removes any existing content from the input surface.
func (p *Page) ClearInput(ctx context.Context) error {
	el, err := p.inputElement(ctx)
	if err != nil {
		return err
	}
	if err := el.SelectAllText(); err != nil {
		return domain.NewError("interact", "", "failed to select input text", err)
	}
	if err := el.Type(input.Backspace); err != nil {
		return domain.NewError("interact", "", "failed to clear input surface", err)
	}
	return nil
}

// Fill clears the input surface and sets its content to text in one shot.
func (p *Page) Fill(ctx context.Context, text string) error {
	el, err := p.inputElement(ctx)
	if err != nil {
		return err
	}
	if err := el.SelectAllText(); err != nil {
		return domain.NewError("interact", "", "failed to select input text", err)
	}
	if err := el.Type(input.Backspace); err != nil {
		return domain.NewError("interact", "", "failed to clear input surface", err)
	}
	if err := el.Input(text); err != nil {
		return domain.NewError("interact", "", "failed to fill input surface", err)
	}
	return nil
}

// TypeSlowly submits text one character at a time with a fixed delay to
// simulate live typing.
func (p *Page) TypeSlowly(ctx context.Context, text string, delay time.Duration) error {
	el, err := p.inputElement(ctx)
	if err != nil {
		return err
	}
	for _, r := range text {
		if err := el.Input(string(r)); err != nil {
			return domain.NewError("interact", "", "failed to type character", err)
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}
	return nil
}

// InputValue reads the current value of the input surface.
func (p *Page) InputValue(ctx context.Context) (string, error) {
	el, err := p.inputElement(ctx)
	if err != nil {
		return "", err
	}
	val, err := el.Property("value")
	if err != nil {
		return "", domain.NewError("interact", "", "failed to read input value", err)
	}
	return val.String(), nil
}

// OutputText reads the trimmed text of the LAST element matching the
// output selector. No matching element means no output was observed, which
// is reported as an empty string rather than an error.
func (p *Page) OutputText(ctx context.Context) (string, error) {
	els, err := p.page.Context(ctx).Elements(p.app.OutputSelector)
	if err != nil {
		return "", domain.NewError("interact", "", "failed to query output surface", err)
	}
	if len(els) == 0 {
		return "", nil
	}
	text, err := els[len(els)-1].Text()
	if err != nil {
		return "", domain.NewError("interact", "", "failed to read output text", err)
	}
	return strings.TrimSpace(text), nil
}

// ClickClear looks for a visible button whose caption matches one of the
// configured clear labels (case-insensitive) and activates it. It reports
// whether such a button was found.
func (p *Page) ClickClear(ctx context.Context) (bool, error) {
	buttons, err := p.page.Context(ctx).Elements("button")
	if err != nil {
		return false, domain.NewError("interact", "", "failed to query buttons", err)
	}
	for _, btn := range buttons {
		caption, err := btn.Text()
		if err != nil {
			continue
		}
		if !p.matchesClearLabel(caption) {
			continue
		}
		visible, err := btn.Visible()
		if err != nil || !visible {
			continue
		}
		if err := btn.Click(proto.InputMouseButtonLeft, 1); err != nil {
			return true, domain.NewError("interact", "", "failed to click clear button", err)
		}
		return true, nil
	}
	return false, nil
}

func (p *Page) matchesClearLabel(caption string) bool {
	caption = strings.ToLower(strings.TrimSpace(caption))
	for _, label := range p.app.ClearButtonTexts {
		if caption == strings.ToLower(label) {
			return true
		}
	}
	return false
}

// Settle waits for the UI's internal processing to finish. With polling
// enabled it returns early once two consecutive output reads agree;
// otherwise it is the original blind wait, since the app exposes no
// completion signal. The worst case is always the full budget.
func (p *Page) Settle(ctx context.Context, budget time.Duration) {
	if !p.timing.PollStableOutput || p.timing.StablePoll() <= 0 {
		p.sleep(ctx, budget)
		return
	}

	deadline := time.Now().Add(budget)
	last, _ := p.OutputText(ctx)
	for time.Now().Before(deadline) {
		p.sleep(ctx, p.timing.StablePoll())
		current, err := p.OutputText(ctx)
		if err == nil && current == last && current != "" {
			return
		}
		last = current
	}
}

func (p *Page) sleep(ctx context.Context, d time.Duration) {
	select {
	case <-ctx.Done():
	case <-time.After(d):
	}
}
