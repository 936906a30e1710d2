// Package export writes published time series to external formats.
package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/san-kum/oscillab/internal/sim"
)

// Columns are the exported header names, in order. Consumers rely on
// these exact strings.
var Columns = []string{
	"Time (s)",
	"Position (m)",
	"Velocity (m/s)",
	"Acceleration (m/s²)",
	"Kinetic Energy (J)",
	"Potential Energy (J)",
	"Total Energy (J)",
}

// WriteCSV emits one header row followed by one row per sample, in
// chronological order.
func WriteCSV(w io.Writer, series *sim.TimeSeries) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(Columns); err != nil {
		return err
	}

	for i := 0; i < series.Len(); i++ {
		s := series.At(i)
		row := []string{
			formatFloat(s.T),
			formatFloat(s.X),
			formatFloat(s.V),
			formatFloat(s.A),
			formatFloat(s.KE),
			formatFloat(s.PE),
			formatFloat(s.TE),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
