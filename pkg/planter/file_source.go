package planter

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"
	"liyu1981.xyz/plant-care-service/pkg/common"
	"liyu1981.xyz/plant-care-service/pkg/metrics"
	"liyu1981.xyz/plant-care-service/pkg/models"
)

const (
	snapshotReadAttempts     = 3
	snapshotRetryInterval    = 20 * time.Millisecond
	snapshotRetryMaxInterval = 100 * time.Millisecond
)

// FileSource polls the snapshot file written by the sensor hardware.
type FileSource struct {
	Path     string
	Guard    *IngestionGuard
	Readings IReading
}

type PollResult struct {
	Reading   *models.SensorReading
	Persisted bool
	Fallback  bool
}

func NewFileSource(path string, readings IReading) *FileSource {
	return &FileSource{
		Path:     path,
		Guard:    NewIngestionGuard(),
		Readings: readings,
	}
}

func (s *FileSource) writeDefaultSnapshot() error {
	if dir := filepath.Dir(s.Path); dir != "" {
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			return err
		}
	}
	data, err := json.MarshalIndent(DefaultSnapshot, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.Path, data, 0o644)
}

func parseSnapshot(data []byte) (RawSnapshot, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return RawSnapshot{}, err
	}
	for _, key := range []string{"moisture", "light", "temp", "humidity", "waterLevel"} {
		if _, ok := fields[key]; !ok {
			return RawSnapshot{}, fmt.Errorf("snapshot is missing %q", key)
		}
	}

	var snapshot RawSnapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return RawSnapshot{}, err
	}
	return snapshot, nil
}

// readSnapshot retries a failed parse briefly, the writer may be halfway
// through replacing the file.
func (s *FileSource) readSnapshot() (RawSnapshot, error) {
	var snapshot RawSnapshot

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = snapshotRetryInterval
	bo.MaxInterval = snapshotRetryMaxInterval

	err := backoff.Retry(func() error {
		data, err := os.ReadFile(s.Path)
		if err != nil {
			return backoff.Permanent(err)
		}
		snapshot, err = parseSnapshot(data)
		return err
	}, backoff.WithMaxRetries(bo, snapshotReadAttempts-1))

	return snapshot, err
}

// Poll reads the snapshot file and persists it when its modification time is
// newer than the last persisted one. Unchanged files still return freshly
// parsed values. A missing file is created with DefaultSnapshot; an
// unreadable one is replaced by DefaultSnapshot for this poll.
func (s *FileSource) Poll() (*PollResult, error) {
	logger := common.GetCategoryLogger(common.LoggerNamePlanterCore, common.LoggerCategorySource)

	info, err := os.Stat(s.Path)
	if errors.Is(err, os.ErrNotExist) {
		logger.Warn("Sensor snapshot file not found, writing default snapshot", zap.String("path", s.Path))
		if werr := s.writeDefaultSnapshot(); werr != nil {
			logger.Error("Failed to write default sensor snapshot", zap.String("path", s.Path), zap.Error(werr))
		}
		info, err = os.Stat(s.Path)
	}

	result := &PollResult{}
	snapshot, readErr := s.readSnapshot()
	if readErr != nil {
		logger.Warn("Falling back to default sensor snapshot", zap.String("path", s.Path), zap.Error(readErr))
		metrics.SnapshotFallbacks.Inc()
		snapshot = DefaultSnapshot
		result.Fallback = true
	}

	source := models.ReadingSourceFile
	if result.Fallback {
		source = models.ReadingSourceFallback
	}
	reading := snapshot.Normalize(source)

	if err != nil {
		// no modification time to compare against, nothing is persisted
		logger.Error("Cannot stat sensor snapshot file", zap.String("path", s.Path), zap.Error(err))
		reading.CreatedAt = time.Now().UTC()
		result.Reading = reading
		return result, nil
	}

	if !s.Guard.Observe(info.ModTime()) {
		metrics.SnapshotPollsSkipped.Inc()
		reading.CreatedAt = time.Now().UTC()
		result.Reading = reading
		return result, nil
	}

	stored, err := s.Readings.Insert(reading)
	if err != nil {
		s.Guard.Release(info.ModTime())
		return nil, fmt.Errorf("persist sensor snapshot: %w", err)
	}

	result.Reading = stored
	result.Persisted = true
	return result, nil
}
