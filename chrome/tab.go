package chrome

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/mafredri/cdp"
	"github.com/mafredri/cdp/protocol/emulation"
	"github.com/mafredri/cdp/protocol/fetch"
	"github.com/mafredri/cdp/protocol/network"
	"github.com/mafredri/cdp/protocol/page"
	tgt "github.com/mafredri/cdp/protocol/target"
	"github.com/mafredri/cdp/rpcc"
)

type Tab struct {
	// target Id of a single tab
	Id tgt.ID
	// devtools port the browser listens on
	port int
	// connection to connect with the browser
	conn *rpcc.Conn
	// client to control the browser
	client *cdp.Client
}

func (t *Tab) connect(ctx context.Context) error {
	var err error
	// connect to chrome
	t.conn, err = rpcc.DialContext(ctx, fmt.Sprintf("ws://127.0.0.1:%d/devtools/page/%s", t.port, t.Id))
	if err != nil {
		return err
	}

	// This cdp client controls the page target.
	t.client = cdp.NewClient(t.conn)

	// Enable events on the Page domain so navigation can wait for the load event.
	return t.client.Page.Enable(ctx)
}

func (t *Tab) Close() error {
	if t.conn == nil {
		return nil
	}
	return t.conn.Close()
}

func (t *Tab) SetViewport(ctx context.Context, opts ScreenshotOpts) error {
	args := emulation.NewSetDeviceMetricsOverrideArgs(opts.Width, opts.Height, opts.DeviceScaleFactor, opts.Mobile)
	return t.client.Emulation.SetDeviceMetricsOverride(ctx, args)
}

func (t *Tab) ContinueRequest(ctx context.Context, interceptID string) error {
	return t.client.Fetch.ContinueRequest(ctx, fetch.NewContinueRequestArgs(fetch.RequestID(interceptID)))
}

// ErrNavigation is returned when the browser reports that the document
// itself could not be loaded.
var ErrNavigation = errors.New("navigation failed")

func (t *Tab) Navigate(ctx context.Context, url string) error {
	// Open a LoadEventFired client to buffer this event before navigating.
	loadEvent, err := t.client.Page.LoadEventFired(ctx)
	if err != nil {
		return err
	}
	defer loadEvent.Close()

	nav, err := t.client.Page.Navigate(ctx, page.NewNavigateArgs(url))
	if err != nil {
		return err
	}
	if nav.ErrorText != nil {
		return fmt.Errorf("%w: %s at %s", ErrNavigation, *nav.ErrorText, url)
	}

	// Wait until we have a LoadEventFired event.
	select {
	case <-loadEvent.Ready():
		_, err = loadEvent.Recv()
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (t *Tab) CaptureScreenshot(ctx context.Context, path string) error {
	shot, err := t.client.Page.CaptureScreenshot(ctx, page.NewCaptureScreenshotArgs())
	if err != nil {
		return err
	}

	return os.WriteFile(path, shot.Data, 0o644)
}

// Listen turns on Network, Runtime and Fetch and forwards their events.
// Streams are opened before the domains are enabled so no event is missed.
func (t *Tab) Listen(ctx context.Context) (<-chan Event, error) {
	s, err := t.openStreams(ctx)
	if err != nil {
		return nil, err
	}

	// keep protocol order across the individual event clients
	if err := cdp.Sync(s.paused, s.willSend, s.finished, s.failed, s.thrown); err != nil {
		s.Close()
		return nil, err
	}

	if err := t.client.Network.Enable(ctx, network.NewEnableArgs()); err != nil {
		s.Close()
		return nil, err
	}
	if err := t.client.Runtime.Enable(ctx); err != nil {
		s.Close()
		return nil, err
	}
	patterns := []fetch.RequestPattern{{URLPattern: String("*")}}
	if err := t.client.Fetch.Enable(ctx, fetch.NewEnableArgs().SetPatterns(patterns)); err != nil {
		s.Close()
		return nil, err
	}

	events := make(chan Event)
	go s.dispatch(ctx, events)

	return events, nil
}

func (t *Tab) openStreams(ctx context.Context) (*streams, error) {
	s := new(streams)
	var err error

	if s.paused, err = t.client.Fetch.RequestPaused(ctx); err != nil {
		return nil, err
	}
	if s.willSend, err = t.client.Network.RequestWillBeSent(ctx); err != nil {
		s.Close()
		return nil, err
	}
	if s.finished, err = t.client.Network.LoadingFinished(ctx); err != nil {
		s.Close()
		return nil, err
	}
	if s.failed, err = t.client.Network.LoadingFailed(ctx); err != nil {
		s.Close()
		return nil, err
	}
	if s.thrown, err = t.client.Runtime.ExceptionThrown(ctx); err != nil {
		s.Close()
		return nil, err
	}

	return s, nil
}
