package chrome

// EventKind identifies what happened in a tab.
type EventKind int

const (
	// RequestStarted is an outgoing request held by interception.
	RequestStarted EventKind = iota
	// RequestFinished is a request whose response body was fully loaded.
	RequestFinished
	// RequestFailed is a request that failed at the transport level.
	RequestFailed
	// PageError is an uncaught exception in page script.
	PageError
)

func (k EventKind) String() string {
	switch k {
	case RequestStarted:
		return "request"
	case RequestFinished:
		return "requestfinished"
	case RequestFailed:
		return "requestfailed"
	case PageError:
		return "pageerror"
	}
	return "unknown"
}

type Event struct {
	Kind EventKind
	// URL of the request, empty for PageError.
	URL string
	// InterceptID must be passed to ContinueRequest for RequestStarted events.
	InterceptID string
	// Text is the failure reason or the exception description.
	Text string
}
