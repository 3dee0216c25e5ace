package splitter

// Observer receives progress events from Split. Calls are made
// synchronously from the splitting goroutine.
type Observer interface {
	// FileStarted is called when output file index is created.
	FileStarted(index int, path string)
	// LineWritten is called after each line; count is the number of lines
	// now in file index.
	LineWritten(index, count int)
	// FileFinished is called once file index is flushed and closed.
	FileFinished(index int, path string, lines int)
}

// NopObserver ignores all events.
type NopObserver struct{}

func (NopObserver) FileStarted(int, string) {}
func (NopObserver) LineWritten(int, int) {}
func (NopObserver) FileFinished(int, string, int) {}
