package chrome

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/google/uuid"
	"github.com/playwright-community/playwright-go"
)

// NewPlaywright returns a Browser that drives Chromium through Playwright
// instead of a locally launched Chrome process.
func NewPlaywright() Browser {
	return &playwrightBrowser{}
}

type playwrightBrowser struct {
	pw      *playwright.Playwright
	browser playwright.Browser
}

func (b *playwrightBrowser) Launch(ctx context.Context, opts *LaunchOpts) (BrowserTab, error) {
	pw, err := playwright.Run()
	if err != nil {
		log.Println("chrome error: unable to start playwright", err.Error())
		return nil, err
	}
	b.pw = pw

	launch := playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(opts.headless),
		Args:     opts.arguments,
	}
	if opts.path != "" {
		launch.ExecutablePath = playwright.String(opts.path)
	}

	b.browser, err = pw.Chromium.Launch(launch)
	if err != nil {
		log.Println("chrome error: unable to launch chromium", err.Error())
		return nil, err
	}

	page, err := b.browser.NewPage()
	if err != nil {
		return nil, err
	}

	return &playwrightTab{page: page, routes: make(map[string]playwright.Route)}, nil
}

func (b *playwrightBrowser) Close(ctx context.Context) error {
	var err error
	if b.browser != nil {
		err = b.browser.Close()
	}
	if b.pw != nil {
		if serr := b.pw.Stop(); serr != nil && err == nil {
			err = serr
		}
	}
	return err
}

type playwrightTab struct {
	page playwright.Page

	mu     sync.Mutex
	routes map[string]playwright.Route
}

func (t *playwrightTab) SetViewport(ctx context.Context, opts ScreenshotOpts) error {
	return t.page.SetViewportSize(opts.Width, opts.Height)
}

func (t *playwrightTab) Listen(ctx context.Context) (<-chan Event, error) {
	q := newEventQueue()

	t.page.OnPageError(func(err error) {
		q.push(Event{Kind: PageError, Text: err.Error()})
	})
	t.page.OnRequestFinished(func(r playwright.Request) {
		q.push(Event{Kind: RequestFinished, URL: r.URL()})
	})
	t.page.OnRequestFailed(func(r playwright.Request) {
		ev := Event{Kind: RequestFailed, URL: r.URL()}
		if failure := r.Failure(); failure != nil {
			ev.Text = failure.Error()
		}
		q.push(ev)
	})

	err := t.page.Route("**/*", func(route playwright.Route) {
		id := uuid.NewString()
		t.mu.Lock()
		t.routes[id] = route
		t.mu.Unlock()
		q.push(Event{Kind: RequestStarted, URL: route.Request().URL(), InterceptID: id})
	})
	if err != nil {
		return nil, err
	}

	events := make(chan Event)
	go q.forward(ctx, events)

	return events, nil
}

func (t *playwrightTab) ContinueRequest(ctx context.Context, interceptID string) error {
	t.mu.Lock()
	route, ok := t.routes[interceptID]
	delete(t.routes, interceptID)
	t.mu.Unlock()

	if !ok {
		return fmt.Errorf("unknown intercepted request %q", interceptID)
	}
	return route.Continue()
}

func (t *playwrightTab) Navigate(ctx context.Context, url string) error {
	if _, err := t.page.Goto(url); err != nil {
		return fmt.Errorf("%w: %v", ErrNavigation, err)
	}
	return nil
}

func (t *playwrightTab) CaptureScreenshot(ctx context.Context, path string) error {
	_, err := t.page.Screenshot(playwright.PageScreenshotOptions{
		Path: playwright.String(path),
	})
	return err
}

// eventQueue decouples Playwright's callback goroutine from the consumer so
// a handler never blocks while the consumer waits on a Playwright call.
type eventQueue struct {
	mu     sync.Mutex
	items  []Event
	signal chan struct{}
}

func newEventQueue() *eventQueue {
	return &eventQueue{signal: make(chan struct{}, 1)}
}

func (q *eventQueue) push(ev Event) {
	q.mu.Lock()
	q.items = append(q.items, ev)
	q.mu.Unlock()

	select {
	case q.signal <- struct{}{}:
	default:
	}
}

func (q *eventQueue) pop() (Event, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.items) == 0 {
		return Event{}, false
	}
	ev := q.items[0]
	q.items = q.items[1:]
	return ev, true
}

// forward delivers queued events in push order until ctx is done.
func (q *eventQueue) forward(ctx context.Context, out chan<- Event) {
	defer close(out)

	for {
		ev, ok := q.pop()
		if !ok {
			select {
			case <-q.signal:
				continue
			case <-ctx.Done():
				return
			}
		}

		select {
		case out <- ev:
		case <-ctx.Done():
			return
		}
	}
}
