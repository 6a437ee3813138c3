package chrome

import (
	"context"

	"github.com/mafredri/cdp/protocol/fetch"
	"github.com/mafredri/cdp/protocol/network"
	"github.com/mafredri/cdp/protocol/runtime"
)

// streams holds the event clients a Tab listens on.
type streams struct {
	paused   fetch.RequestPausedClient
	willSend network.RequestWillBeSentClient
	finished network.LoadingFinishedClient
	failed   network.LoadingFailedClient
	thrown   runtime.ExceptionThrownClient
}

func (s *streams) Close() {
	if s.paused != nil {
		closeRes(s.paused)
	}
	if s.willSend != nil {
		closeRes(s.willSend)
	}
	if s.finished != nil {
		closeRes(s.finished)
	}
	if s.failed != nil {
		closeRes(s.failed)
	}
	if s.thrown != nil {
		closeRes(s.thrown)
	}
}

// dispatch reads the synchronised streams on one goroutine and forwards
// translated events until a stream errors or ctx is done.
func (s *streams) dispatch(ctx context.Context, events chan<- Event) {
	defer close(events)
	defer s.Close()

	book := newRequestBook()
	for {
		var out []Event

		select {
		case <-ctx.Done():
			return

		case <-s.paused.Ready():
			ev, err := s.paused.Recv()
			if err != nil {
				return
			}
			out = append(out, Event{
				Kind:        RequestStarted,
				URL:         ev.Request.URL,
				InterceptID: string(ev.RequestID),
			})

		case <-s.willSend.Ready():
			ev, err := s.willSend.Recv()
			if err != nil {
				return
			}
			if url, ok := book.sent(string(ev.RequestID), ev.Request.URL, ev.RedirectResponse != nil); ok {
				out = append(out, Event{Kind: RequestFinished, URL: url})
			}

		case <-s.finished.Ready():
			ev, err := s.finished.Recv()
			if err != nil {
				return
			}
			out = append(out, Event{Kind: RequestFinished, URL: book.done(string(ev.RequestID))})

		case <-s.failed.Ready():
			ev, err := s.failed.Recv()
			if err != nil {
				return
			}
			out = append(out, Event{
				Kind: RequestFailed,
				URL:  book.done(string(ev.RequestID)),
				Text: ev.ErrorText,
			})

		case <-s.thrown.Ready():
			ev, err := s.thrown.Recv()
			if err != nil {
				return
			}
			out = append(out, Event{Kind: PageError, Text: describeException(ev.ExceptionDetails)})
		}

		for _, e := range out {
			select {
			case events <- e:
			case <-ctx.Done():
				return
			}
		}
	}
}

func describeException(details runtime.ExceptionDetails) string {
	if details.Exception != nil {
		if desc := StringValue(details.Exception.Description); desc != "" {
			return desc
		}
	}
	return details.Text
}

// requestBook maps network request IDs to the URL currently loading under
// that ID. A redirect reuses the ID, so the previous hop is reported as
// finished when the next one is sent.
type requestBook struct {
	urls map[string]string
}

func newRequestBook() *requestBook {
	return &requestBook{urls: make(map[string]string)}
}

// sent records url under id. For a redirect it returns the URL of the hop
// being replaced.
func (b *requestBook) sent(id, url string, redirect bool) (string, bool) {
	prev, known := b.urls[id]
	b.urls[id] = url
	if redirect && known {
		return prev, true
	}
	return "", false
}

// done forgets id and returns its URL, or "" for an unknown id.
func (b *requestBook) done(id string) string {
	url := b.urls[id]
	delete(b.urls, id)
	return url
}
