package sim

import (
	"fmt"
	"os"

	"github.com/gocarina/gocsv"
)

// StepRecord is one row of run telemetry.
type StepRecord struct {
	Step        int     `csv:"step"`
	Time        float64 `csv:"time"`
	EKin        float64 `csv:"e_kin"`
	EPot        float64 `csv:"e_pot"`
	ETot        float64 `csv:"e_tot"`
	Pairs       int64   `csv:"pairs"`
	CutoffPairs int64   `csv:"cutoff_pairs"`
	RadiusDrift float64 `csv:"radius_drift"`
}

// Recorder appends StepRecords to a CSV file, writing the header on the
// first record only.
type Recorder struct {
	file          *os.File
	headerWritten bool
}

// NewRecorder creates (or truncates) the telemetry file at path.
func NewRecorder(path string) (*Recorder, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating telemetry file: %w", err)
	}
	return &Recorder{file: f}, nil
}

// Record snapshots the manager's current state into a StepRecord.
func (man *Manager) Record() StepRecord {
	en := man.Energies()
	stats := man.Stats()
	return StepRecord{
		Step:        man.Steps(),
		Time:        man.Time(),
		EKin:        en.Kinetic,
		EPot:        en.Potential,
		ETot:        en.Total,
		Pairs:       stats.Pairs,
		CutoffPairs: stats.CutoffPairs,
		RadiusDrift: MaxRadiusDrift(man.Particles()),
	}
}

// Write appends one record.
func (rec *Recorder) Write(r StepRecord) error {
	rows := []StepRecord{r}
	if !rec.headerWritten {
		if err := gocsv.Marshal(rows, rec.file); err != nil {
			return fmt.Errorf("writing telemetry: %w", err)
		}
		rec.headerWritten = true
		return nil
	}
	if err := gocsv.MarshalWithoutHeaders(rows, rec.file); err != nil {
		return fmt.Errorf("writing telemetry: %w", err)
	}
	return nil
}

// Close flushes and closes the underlying file.
func (rec *Recorder) Close() error {
	return rec.file.Close()
}

// ReadRecords loads a telemetry file back into memory. Used by the
// analysis scripts.
func ReadRecords(path string) ([]StepRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var rows []StepRecord
	if err := gocsv.Unmarshal(f, &rows); err != nil {
		return nil, fmt.Errorf("reading telemetry: %w", err)
	}
	return rows, nil
}
