package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"liyu1981.xyz/plant-care-service/pkg/common"
	"liyu1981.xyz/plant-care-service/pkg/planter"
)

const (
	modeFile = "file"
	modePost = "post"
)

var waterLevelCodes = []int{0, 1, 3, 7}

var rnd *rand.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
var rndMu sync.Mutex

func main() {
	mode := flag.String("mode", modeFile, "file: rewrite the snapshot file, post: send readings to the server")
	snapshotPath := flag.String("file", common.DefaultSensorSnapshotPath, "snapshot file written in file mode")
	httpHostPort := flag.String("addr", "127.0.0.1:1080", "server address used in post mode")
	sensors := flag.Int("sensors", 3, "concurrent virtual sensors in post mode")
	interval := flag.Duration("interval", 5*time.Second, "delay between two readings of one sensor")
	flag.Parse()

	logger := common.GetLoggerWith(common.LoggerNameSimulator)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	switch *mode {
	case modeFile:
		logger.Info("Writing sensor snapshots", zap.String("path", *snapshotPath), zap.Duration("interval", *interval))
		runFileMode(ctx, logger, *snapshotPath, *interval)
	case modePost:
		baseURL := fmt.Sprintf("http://%s", *httpHostPort)
		if err := checkHealth(baseURL); err != nil {
			log.Fatal("Failed to connect to HTTP server:", err)
		}
		logger.Info("http server verified", zap.String("addr", *httpHostPort), zap.Int("sensors", *sensors))
		runPostMode(ctx, logger, baseURL, *sensors, *interval)
	default:
		log.Fatalf("unknown -mode %q, use %q or %q", *mode, modeFile, modePost)
	}

	logger.Info("Simulator stopped")
}

func rndFloat64(min, max float64, decimal int) float64 {
	rndMu.Lock()
	val := min + rnd.Float64()*(max-min)
	rndMu.Unlock()

	multiplier := math.Pow10(decimal)
	return math.Round(val*multiplier) / multiplier
}

func rndWaterLevelCode() int {
	rndMu.Lock()
	defer rndMu.Unlock()
	return waterLevelCodes[rnd.Intn(len(waterLevelCodes))]
}

func randomSnapshot() planter.RawSnapshot {
	return planter.RawSnapshot{
		Moisture:   rndFloat64(0.1, 0.9, 2),
		Light:      rndFloat64(0.0, 1.0, 2),
		Temp:       rndFloat64(18.0, 30.0, 1),
		Humidity:   rndFloat64(30.0, 80.0, 1),
		WaterLevel: rndWaterLevelCode(),
	}
}

// writeSnapshot replaces the file through a rename so the server never
// reads a half-written document.
func writeSnapshot(path string, snapshot planter.RawSnapshot) error {
	if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return err
	}
	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

func runFileMode(ctx context.Context, logger *zap.Logger, path string, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		snapshot := randomSnapshot()
		if err := writeSnapshot(path, snapshot); err != nil {
			logger.Error("Failed to write snapshot", zap.String("path", path), zap.Error(err))
		} else {
			logger.Info("Wrote snapshot", zap.Reflect("snapshot", snapshot))
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func checkHealth(baseURL string) error {
	resp, err := http.Get(baseURL + "/healthz")
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("healthz returned %d", resp.StatusCode)
	}
	return nil
}

// randomSubmission is a snapshot normalized the way the server would, posted
// with explicit threshold booleans.
func randomSubmission() map[string]any {
	reading := randomSnapshot().Normalize("")
	return map[string]any{
		"water_level":     reading.WaterLevel,
		"light_level":     reading.LightLevel,
		"temperature":     reading.Temperature,
		"humidity":        reading.Humidity,
		"moisture":        reading.Moisture,
		"water_sensor_75": reading.WaterSensor75,
		"water_sensor_50": reading.WaterSensor50,
		"water_sensor_25": reading.WaterSensor25,
	}
}

func postReading(ctx context.Context, baseURL, deviceID string) error {
	data, err := json.Marshal(randomSubmission())
	if err != nil {
		return err
	}

	bo := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 4), ctx)
	return backoff.Retry(func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, baseURL+"/sensors", bytes.NewReader(data))
		if err != nil {
			return backoff.Permanent(err)
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(common.HeaderDeviceID, deviceID)

		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		switch {
		case resp.StatusCode == http.StatusCreated:
			return nil
		case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
			return fmt.Errorf("server answered %d", resp.StatusCode)
		default:
			return backoff.Permanent(fmt.Errorf("server rejected reading with %d", resp.StatusCode))
		}
	}, bo)
}

func runPostMode(ctx context.Context, logger *zap.Logger, baseURL string, sensors int, interval time.Duration) {
	wg := sync.WaitGroup{}
	for i := 0; i < sensors; i++ {
		i := i
		deviceID := uuid.NewString()
		wg.Add(1)
		go func() {
			defer wg.Done()

			sensorLogger := logger.With(zap.Int("sensor", i), zap.String("device_id", deviceID))
			ticker := time.NewTicker(interval)
			defer ticker.Stop()

			for {
				if err := postReading(ctx, baseURL, deviceID); err != nil && ctx.Err() == nil {
					sensorLogger.Warn("Failed to post reading", zap.Error(err))
				} else if err == nil {
					sensorLogger.Info("Posted reading")
				}

				select {
				case <-ctx.Done():
					return
				case <-ticker.C:
				}
			}
		}()
	}
	wg.Wait()
}
