package sim

// Message is one on_message event: text plus optional map
// coordinates and an importance flag the UI uses to decide whether to
// auto-center. HasLocation mirrors the disaster package's -1,-1
// sentinel for map-wide events (earthquakes) that have no single origin.
type Message struct {
	Text        string
	X, Y        int
	HasLocation bool
	Important   bool
}
