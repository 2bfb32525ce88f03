package heatmap

import (
	"sync"
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"

	"tempus/chrono"
)

// DataProcessed delivers a finished normalization pass back to the UI
// loop. Data is normalized/inverted with nil positions intact; Totals
// is the rebuilt date-to-raw-value map for tooltip sums.
type DataProcessed struct {
	Seq    uint64
	Data   ActivityData
	Totals Totals
}

// Normalizer runs normalization passes off the UI loop. Full-year grids
// are the only work in this package big enough to justify it. Passes
// for one widget are exclusive: a mutex serializes them so no partial
// results interleave, and a generation counter marks every pass so
// Update can drop results a newer call superseded.
type Normalizer struct {
	mu  sync.Mutex
	seq atomic.Uint64
}

// Process schedules a pass over the raw samples aligned to the dates
// scaffold (as produced by EmptyYear). The returned command runs on a
// background goroutine and resolves to a DataProcessed message.
func (n *Normalizer) Process(dates [][]*chrono.Date, raw ActivityData) tea.Cmd {
	seq := n.seq.Add(1)
	return func() tea.Msg {
		n.mu.Lock()
		defer n.mu.Unlock()

		totals := make(Totals)
		for r, row := range raw {
			for c, v := range row {
				if v == nil || r >= len(dates) || c >= len(dates[r]) {
					continue
				}
				if d := dates[r][c]; d != nil {
					totals[*d] = *v
				}
			}
		}

		flat := Normalize(Flatten(raw))
		return DataProcessed{
			Seq:    seq,
			Data:   Reshape(flat, raw),
			Totals: totals,
		}
	}
}

// Current reports whether the sequence number belongs to the most
// recent pass; stale results are discarded by the widget.
func (n *Normalizer) Current(seq uint64) bool {
	return seq == n.seq.Load()
}
