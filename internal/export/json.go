package export

import (
	"encoding/json"
	"io"

	"github.com/san-kum/oscillab/internal/oscillator"
	"github.com/san-kum/oscillab/internal/sim"
)

// Document is the JSON export shape for one run.
type Document struct {
	ID         string                `json:"id,omitempty"`
	Parameters oscillator.Parameters `json:"parameters"`
	Descriptor oscillator.Descriptor `json:"descriptor"`
	Samples    int                   `json:"samples"`
	AvgEnergy  *float64              `json:"avg_total_energy,omitempty"`
	Metrics    map[string]float64    `json:"metrics,omitempty"`
	Series     *sim.TimeSeries       `json:"series"`
}

// WriteJSON emits an indented run document. AvgEnergy is omitted for an
// empty series rather than written as zero.
func WriteJSON(w io.Writer, doc Document) error {
	if doc.Series != nil {
		doc.Samples = doc.Series.Len()
		if avg, ok := doc.Series.MeanTotalEnergy(); ok {
			doc.AvgEnergy = &avg
		}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
