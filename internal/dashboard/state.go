// Package dashboard implements the command center overview: the fetch
// sequence that loads stats and then the active run, the per-resource
// fetch state, the values derived for presentation, and the HTML and text
// renderings of the page.
//
// A Controller is mounted once. Mount issues the stats fetch. The run
// fetch starts only after stats resolve successfully and uses the
// activeRunId carried by the stats payload. Each resource resolves at most
// once. After Unmount no late result changes state or reaches a
// subscriber.
package dashboard

// Phase is the resolution state of one fetched resource.
type Phase string

const (
	PhasePending Phase = "pending"
	PhaseSuccess Phase = "success"
	PhaseError   Phase = "error"
)

// FetchState holds the outcome of one fetch. At most one of Data and
// Error is set; neither set means the fetch is still pending.
type FetchState[T any] struct {
	Data  *T     `json:"data"`
	Error string `json:"error,omitempty"`
}

// Phase derives the resolution state.
func (s FetchState[T]) Phase() Phase {
	switch {
	case s.Data != nil:
		return PhaseSuccess
	case s.Error != "":
		return PhaseError
	default:
		return PhasePending
	}
}

func succeeded[T any](data *T) FetchState[T] {
	return FetchState[T]{Data: data}
}

func failed[T any](msg string) FetchState[T] {
	return FetchState[T]{Error: msg}
}
