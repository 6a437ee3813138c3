package check

import "strings"

// tracker holds the requests in flight and the tile count.
type tracker struct {
	pending map[string]struct{}
	// starts at -1 to discount the capabilities document served from the
	// same host as the tiles
	tiles int
}

func newTracker() *tracker {
	return &tracker{
		pending: make(map[string]struct{}),
		tiles:   -1,
	}
}

// started records url and reports whether it is a tile request.
func (t *tracker) started(url string) bool {
	t.pending[url] = struct{}{}
	if strings.HasPrefix(url, TilePrefix) {
		t.tiles++
		return true
	}
	return false
}

func (t *tracker) finished(url string) {
	delete(t.pending, url)
}

func (t *tracker) inFlight() int {
	return len(t.pending)
}
