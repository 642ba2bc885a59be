package telemetry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
	"github.com/google/uuid"

	"github.com/pthm-cable/blossom/config"
)

// ResizeEvent records one applied viewport change.
type ResizeEvent struct {
	RunID   string  `csv:"run_id"`
	Frame   int64   `csv:"frame"`
	Elapsed float64 `csv:"elapsed_s"`
	Width   int     `csv:"width"`
	Height  int     `csv:"height"`
	Aspect  float32 `csv:"aspect"`
}

// OutputManager handles structured run output with CSV logging.
type OutputManager struct {
	dir        string
	runID      string
	perfFile   *os.File
	resizeFile *os.File

	// Track if headers have been written
	perfHeaderWritten   bool
	resizeHeaderWritten bool
}

// NewOutputManager creates a new output manager and initializes the output directory.
// Returns nil if dir is empty (output disabled).
func NewOutputManager(dir string) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	om := &OutputManager{dir: dir, runID: uuid.NewString()}

	f, err := os.Create(filepath.Join(dir, "perf.csv"))
	if err != nil {
		return nil, fmt.Errorf("creating perf.csv: %w", err)
	}
	om.perfFile = f

	f, err = os.Create(filepath.Join(dir, "resize.csv"))
	if err != nil {
		om.perfFile.Close()
		return nil, fmt.Errorf("creating resize.csv: %w", err)
	}
	om.resizeFile = f

	return om, nil
}

// RunID returns the identifier stamped on every record of this run.
func (om *OutputManager) RunID() string {
	if om == nil {
		return ""
	}
	return om.runID
}

// WriteConfig saves the current configuration as YAML.
func (om *OutputManager) WriteConfig(cfg *config.Config) error {
	if om == nil {
		return nil
	}
	return cfg.WriteYAML(filepath.Join(om.dir, "config.yaml"))
}

// WritePerf writes a performance stats record to perf.csv.
func (om *OutputManager) WritePerf(stats PerfStats, frame int64, elapsed float64) error {
	if om == nil {
		return nil
	}

	rec := stats.ToCSV(frame, elapsed)
	rec.RunID = om.runID
	records := []PerfStatsCSV{rec}

	if !om.perfHeaderWritten {
		// First write includes headers
		if err := gocsv.Marshal(records, om.perfFile); err != nil {
			return fmt.Errorf("writing perf: %w", err)
		}
		om.perfHeaderWritten = true
	} else {
		if err := gocsv.MarshalWithoutHeaders(records, om.perfFile); err != nil {
			return fmt.Errorf("writing perf: %w", err)
		}
	}

	return nil
}

// WriteResize writes a resize record to resize.csv.
func (om *OutputManager) WriteResize(ev ResizeEvent) error {
	if om == nil {
		return nil
	}

	ev.RunID = om.runID
	records := []ResizeEvent{ev}

	if !om.resizeHeaderWritten {
		if err := gocsv.Marshal(records, om.resizeFile); err != nil {
			return fmt.Errorf("writing resize: %w", err)
		}
		om.resizeHeaderWritten = true
	} else {
		if err := gocsv.MarshalWithoutHeaders(records, om.resizeFile); err != nil {
			return fmt.Errorf("writing resize: %w", err)
		}
	}

	return nil
}

// Dir returns the output directory path.
func (om *OutputManager) Dir() string {
	if om == nil {
		return ""
	}
	return om.dir
}

// Close flushes and closes all output files.
func (om *OutputManager) Close() error {
	if om == nil {
		return nil
	}

	var firstErr error

	if om.perfFile != nil {
		if err := om.perfFile.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	if om.resizeFile != nil {
		if err := om.resizeFile.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	return firstErr
}
