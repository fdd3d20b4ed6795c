package http

import (
	"bufio"
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"liyu1981.xyz/plant-care-service/pkg/db"
	"liyu1981.xyz/plant-care-service/pkg/planter"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestPlanter(t *testing.T) *planter.Planter {
	t.Helper()

	dbInstance, err := db.Open(db.UseNamedMemorySqliteDialector(uuid.NewString()))
	require.NoError(t, err)

	return (&planter.Planter{Db: *dbInstance}).WithDefaultServices()
}

// setupTestServer has no limiter and no snapshot file, tests opt in to both.
func setupTestServer(t *testing.T, configure ...func(rs *RestfulServer)) *RestfulServer {
	t.Helper()

	rs := &RestfulServer{
		Server:        gin.New(),
		Planter:       newTestPlanter(t),
		RetentionDays: 30,
	}
	for _, fn := range configure {
		fn(rs)
	}
	rs.Setup()

	return rs
}

func doJSON(rs *RestfulServer, method, target string, body any) *httptest.ResponseRecorder {
	return serve(rs, doJSONRequest(method, target, body))
}

func serve(rs *RestfulServer, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	rs.Server.ServeHTTP(w, req)
	return w
}

func doJSONRequest(method, target string, body any) *http.Request {
	var reader *bytes.Reader
	switch v := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(v))
	default:
		data, _ := json.Marshal(v)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v))
	return v
}

func basilBody() map[string]any {
	return map[string]any{
		"name":               "Basil",
		"water_amount":       250,
		"watering_frequency": 2,
		"light_min":          60,
		"light_max":          90,
		"soil_type":          "loamy",
		"soil_moisture_min":  30,
		"soil_moisture_max":  70,
		"humidity_min":       40,
		"humidity_max":       60,
		"temperature_min":    18,
		"temperature_max":    30,
	}
}

func sensorBody() map[string]any {
	return map[string]any{
		"water_level": 70,
		"light_level": 45.5,
		"temperature": 21.3,
		"humidity":    52,
		"moisture":    38,
		"water_sensors": map[string]bool{
			"level_75": false,
			"level_50": true,
			"level_25": true,
		},
	}
}

func parseLogLines(r io.Reader) []any {
	scanner := bufio.NewScanner(r)
	var logs []any

	for scanner.Scan() {
		var j any
		if err := json.Unmarshal(scanner.Bytes(), &j); err == nil {
			logs = append(logs, j)
		}
	}
	return logs
}
