package chrome

import (
	"context"
	"testing"
	"time"

	"github.com/mafredri/cdp/protocol/runtime"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestBook(t *testing.T) {
	book := newRequestBook()

	_, ok := book.sent("1", "http://localhost:3003/map.html", false)
	assert.False(t, ok)

	// redirect replaces the previous hop under the same id
	prev, ok := book.sent("1", "http://localhost:3003/map/", true)
	require.True(t, ok)
	assert.Equal(t, "http://localhost:3003/map.html", prev)

	assert.Equal(t, "http://localhost:3003/map/", book.done("1"))
	assert.Equal(t, "", book.done("1"))
}

func TestRequestBookRedirectOfUnknownID(t *testing.T) {
	book := newRequestBook()

	_, ok := book.sent("7", "https://example.com/b", true)
	assert.False(t, ok)
	assert.Equal(t, "https://example.com/b", book.done("7"))
}

func TestDescribeException(t *testing.T) {
	tests := []struct {
		name    string
		details runtime.ExceptionDetails
		want    string
	}{
		{
			name:    "text only",
			details: runtime.ExceptionDetails{Text: "Uncaught"},
			want:    "Uncaught",
		},
		{
			name: "description wins",
			details: runtime.ExceptionDetails{
				Text:      "Uncaught",
				Exception: &runtime.RemoteObject{Description: String("TypeError: map is undefined")},
			},
			want: "TypeError: map is undefined",
		},
		{
			name: "empty description",
			details: runtime.ExceptionDetails{
				Text:      "Uncaught",
				Exception: &runtime.RemoteObject{},
			},
			want: "Uncaught",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, describeException(tt.details))
		})
	}
}

func TestEventKindString(t *testing.T) {
	assert.Equal(t, "request", RequestStarted.String())
	assert.Equal(t, "requestfinished", RequestFinished.String())
	assert.Equal(t, "requestfailed", RequestFailed.String())
	assert.Equal(t, "pageerror", PageError.String())
	assert.Equal(t, "unknown", EventKind(42).String())
}

func TestEventQueueKeepsOrder(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	q := newEventQueue()
	out := make(chan Event)
	go q.forward(ctx, out)

	urls := []string{"a", "b", "c", "d"}
	for _, u := range urls {
		q.push(Event{Kind: RequestStarted, URL: u})
	}

	for _, want := range urls {
		select {
		case ev := <-out:
			assert.Equal(t, want, ev.URL)
		case <-time.After(time.Second):
			t.Fatalf("timed out waiting for %s", want)
		}
	}
}

func TestEventQueueClosesOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	q := newEventQueue()
	out := make(chan Event)
	go q.forward(ctx, out)

	cancel()

	select {
	case _, ok := <-out:
		assert.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("channel not closed after cancel")
	}
}
