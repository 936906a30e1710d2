package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/san-kum/oscillab/internal/oscillator"
	"github.com/san-kum/oscillab/internal/sim"
)

// Store persists one directory per run under baseDir:
// metadata.json plus series.csv with the published columns.
type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID         string                `json:"id"`
	Timestamp  time.Time             `json:"timestamp"`
	Parameters oscillator.Parameters `json:"parameters"`
	Descriptor oscillator.Descriptor `json:"descriptor"`
	FPS        int                   `json:"fps"`
	Phase      string                `json:"phase"`
	Samples    int                   `json:"samples"`
	AvgEnergy  *float64              `json:"avg_total_energy,omitempty"`
	Metrics    map[string]float64    `json:"metrics,omitempty"`
}

var seriesColumns = []string{"time", "position", "velocity", "acceleration", "ke", "pe", "te"}

func (s *Store) Save(p oscillator.Parameters, fps int, result *sim.Result) (string, error) {
	runID := fmt.Sprintf("osc_%d", time.Now().UnixNano())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:         runID,
		Timestamp:  time.Now(),
		Parameters: p,
		Descriptor: result.Descriptor,
		FPS:        fps,
		Phase:      result.Phase.String(),
		Samples:    result.Series.Len(),
		Metrics:    result.Metrics,
	}
	if avg, ok := result.AvgTotalEnergy(); ok {
		meta.AvgEnergy = &avg
	}

	metaPath := filepath.Join(runDir, "metadata.json")
	metaFile, err := os.Create(metaPath)
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvPath := filepath.Join(runDir, "series.csv")
	csvFile, err := os.Create(csvPath)
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write(seriesColumns); err != nil {
		return "", err
	}

	series := result.Series
	for i := 0; i < series.Len(); i++ {
		smp := series.At(i)
		row := []string{
			strconv.FormatFloat(smp.T, 'f', 6, 64),
			strconv.FormatFloat(smp.X, 'f', 6, 64),
			strconv.FormatFloat(smp.V, 'f', 6, 64),
			strconv.FormatFloat(smp.A, 'f', 6, 64),
			strconv.FormatFloat(smp.KE, 'f', 6, 64),
			strconv.FormatFloat(smp.PE, 'f', 6, 64),
			strconv.FormatFloat(smp.TE, 'f', 6, 64),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	w.Flush()
	return runID, w.Error()
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		metaPath := filepath.Join(s.baseDir, entry.Name(), "metadata.json")
		data, err := os.ReadFile(metaPath)
		if err != nil {
			continue
		}

		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}

		runs = append(runs, meta)
	}

	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	metaPath := filepath.Join(s.baseDir, runID, "metadata.json")
	data, err := os.ReadFile(metaPath)
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

// LoadSeries reads series.csv back into a TimeSeries. Malformed rows
// are skipped rather than failing the whole load.
func (s *Store) LoadSeries(runID string) (*sim.TimeSeries, error) {
	csvPath := filepath.Join(s.baseDir, runID, "series.csv")
	file, err := os.Open(csvPath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	series := sim.NewTimeSeries(len(records))
	for i := 1; i < len(records); i++ {
		record := records[i]
		if len(record) < len(seriesColumns) {
			continue
		}

		vals := make([]float64, len(seriesColumns))
		bad := false
		for j := range vals {
			v, err := strconv.ParseFloat(record[j], 64)
			if err != nil {
				bad = true
				break
			}
			vals[j] = v
		}
		if bad {
			continue
		}

		series.Append(oscillator.Sample{
			T: vals[0], X: vals[1], V: vals[2], A: vals[3],
			KE: vals[4], PE: vals[5], TE: vals[6],
		})
	}

	return series, nil
}
