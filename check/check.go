// Package check loads one page in a headless browser, waits until its
// network activity has been quiet for a while, counts the map-tile requests
// it made and optionally saves a screenshot.
//
// A Checker is single use: Run owns the browser from launch to close and
// every failure is terminal.
package check

//go:generate mockgen -package=check -destination=mock_chrome_test.go go.ajitem.com/pagecheck/chrome Browser,BrowserTab

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"golang.org/x/sync/errgroup"

	"go.ajitem.com/pagecheck/chrome"
)

const (
	// DefaultQuietPeriod is how long the network must stay idle before the
	// page counts as settled.
	DefaultQuietPeriod = 500 * time.Millisecond
	// DefaultScreenshotDelay lets the last tiles paint before the capture.
	DefaultScreenshotDelay = 500 * time.Millisecond
	// DefaultNavigationTimeout bounds the wait for the load event.
	DefaultNavigationTimeout = 30 * time.Second

	closeTimeout = 10 * time.Second
)

var errStreamClosed = errors.New("browser event stream closed")

// Report summarises a settled page.
type Report struct {
	Target     string
	Elapsed    time.Duration
	Tiles      int
	Screenshot string
}

// Checker runs one page check against a Browser and reports through logger.
type Checker struct {
	cfg               Config
	browser           chrome.Browser
	logger            *log.Logger
	viewport          chrome.ScreenshotOpts
	quietPeriod       time.Duration
	screenshotDelay   time.Duration
	navigationTimeout time.Duration

	start   time.Time
	elapsed time.Duration
	tracker *tracker
	quiet   *quiescence
}

// Option tunes a Checker built by New.
type Option func(*Checker)

// WithQuietPeriod overrides DefaultQuietPeriod.
func WithQuietPeriod(d time.Duration) Option {
	return func(c *Checker) { c.quietPeriod = d }
}

// WithScreenshotDelay overrides DefaultScreenshotDelay.
func WithScreenshotDelay(d time.Duration) Option {
	return func(c *Checker) { c.screenshotDelay = d }
}

// WithViewport replaces the high density default viewport.
func WithViewport(vp chrome.ScreenshotOpts) Option {
	return func(c *Checker) { c.viewport = vp }
}

// WithNavigationTimeout overrides DefaultNavigationTimeout.
func WithNavigationTimeout(d time.Duration) Option {
	return func(c *Checker) { c.navigationTimeout = d }
}

// New returns a Checker for cfg. The browser must not have been launched yet.
func New(cfg Config, browser chrome.Browser, logger *log.Logger, opts ...Option) *Checker {
	c := &Checker{
		cfg:               cfg,
		browser:           browser,
		logger:            logger,
		viewport:          chrome.HighDensityViewport(),
		quietPeriod:       DefaultQuietPeriod,
		screenshotDelay:   DefaultScreenshotDelay,
		navigationTimeout: DefaultNavigationTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Run performs the check. The browser is closed exactly once before Run
// returns, whatever the outcome.
func (c *Checker) Run(ctx context.Context) (report *Report, err error) {
	c.start = time.Now()
	c.tracker = newTracker()
	c.quiet = newQuiescence(c.quietPeriod)

	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), closeTimeout)
		defer cancel()

		if cerr := c.browser.Close(closeCtx); cerr != nil && err == nil {
			report, err = nil, c.unexpected(cerr)
		}
	}()

	var nav errgroup.Group
	defer func() { _ = nav.Wait() }()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	tab, err := c.browser.Launch(ctx, c.cfg.LaunchOpts())
	if err != nil {
		return nil, c.unexpected(err)
	}
	if err := tab.SetViewport(ctx, c.viewport); err != nil {
		return nil, c.unexpected(err)
	}
	events, err := tab.Listen(ctx)
	if err != nil {
		return nil, c.unexpected(err)
	}

	// the document request is itself intercepted, so navigation has to run
	// alongside the loop that continues it
	navDone := make(chan error, 1)
	nav.Go(func() error {
		navDone <- c.navigate(ctx, tab)
		return nil
	})

	if err := c.loop(ctx, tab, events, navDone); err != nil {
		return nil, err
	}

	return &Report{
		Target:     c.cfg.Target,
		Elapsed:    c.elapsed,
		Tiles:      c.tracker.tiles,
		Screenshot: c.cfg.Screenshot,
	}, nil
}

func (c *Checker) loop(ctx context.Context, tab chrome.BrowserTab, events <-chan chrome.Event, navDone <-chan error) error {
	var shoot <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return c.unexpected(ctx.Err())

		case err := <-navDone:
			navDone = nil
			if ctx.Err() != nil {
				return c.unexpected(ctx.Err())
			}
			if err != nil {
				c.logger.Printf("Page load error: %v.", err)
				return fail(KindNavigation, err)
			}
			c.quiet.arm()

		case ev, ok := <-events:
			if !ok {
				return c.unexpected(errStreamClosed)
			}
			if err := c.handle(ctx, tab, ev); err != nil {
				return err
			}

		case <-c.quiet.C():
			inFlight := c.tracker.inFlight()
			if navDone != nil {
				// still waiting for the load event
				inFlight++
			}
			if !c.quiet.fire(inFlight) {
				continue
			}

			c.elapsed = time.Since(c.start)
			c.logger.Printf("Check finished in %v seconds, with %d tiles",
				c.elapsed.Round(time.Millisecond).Seconds(), c.tracker.tiles)

			if c.cfg.Screenshot == "" {
				return nil
			}
			shoot = time.After(c.screenshotDelay)

		case <-shoot:
			return c.capture(ctx, tab)
		}
	}
}

// navigate waits for the load event, giving up after navigationTimeout.
func (c *Checker) navigate(ctx context.Context, tab chrome.BrowserTab) error {
	navCtx, cancel := context.WithTimeout(ctx, c.navigationTimeout)
	defer cancel()

	err := tab.Navigate(navCtx, c.cfg.Target)
	if err != nil && ctx.Err() == nil && errors.Is(navCtx.Err(), context.DeadlineExceeded) {
		return fmt.Errorf("%w: timeout of %v exceeded", chrome.ErrNavigation, c.navigationTimeout)
	}
	return err
}

func (c *Checker) handle(ctx context.Context, tab chrome.BrowserTab, ev chrome.Event) error {
	switch ev.Kind {
	case chrome.RequestStarted:
		c.quiet.markBusy()
		if c.tracker.started(ev.URL) {
			c.logger.Println(ev.URL)
		}
		if err := tab.ContinueRequest(ctx, ev.InterceptID); err != nil {
			return c.unexpected(fmt.Errorf("continue %s: %w", ev.URL, err))
		}

	case chrome.RequestFinished:
		c.tracker.finished(ev.URL)
		c.quiet.arm()

	case chrome.RequestFailed:
		c.logger.Printf("Request failed on: %s", ev.URL)
		return fail(KindRequest, fmt.Errorf("%s: %s", ev.URL, ev.Text))

	case chrome.PageError:
		c.logger.Println("Page error")
		c.logger.Println(ev.Text)
		return fail(KindPageScript, errors.New(ev.Text))
	}

	return nil
}

func (c *Checker) capture(ctx context.Context, tab chrome.BrowserTab) error {
	if err := tab.CaptureScreenshot(ctx, c.cfg.Screenshot); err != nil {
		c.logger.Printf("Screenshot error: %v", err)
		return fail(KindCapture, err)
	}

	c.logger.Printf("Screenshot saved at: %s", c.cfg.Screenshot)
	return nil
}

func (c *Checker) unexpected(err error) error {
	c.logger.Printf("Unexpected error: %v.", err)
	return fail(KindUnexpected, err)
}
