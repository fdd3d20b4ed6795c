package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"liyu1981.xyz/plant-care-service/pkg/common"
	"liyu1981.xyz/plant-care-service/pkg/metrics"
	"liyu1981.xyz/plant-care-service/pkg/planter"
)

type RestfulServer struct {
	Server  *gin.Engine
	Planter *planter.Planter
	// FileSource is polled by GET /sensors; nil serves the latest stored reading.
	FileSource    *planter.FileSource
	Limiters      *planter.ClientLimiters
	Live          *LiveHub
	MockOnEmpty   bool
	RetentionDays int
	CorsOrigins   []string
}

func (rs *RestfulServer) Setup() {
	if rs.Live == nil {
		rs.Live = NewLiveHub()
	}

	rs.Server.Use(RequestLogger())
	if len(rs.CorsOrigins) > 0 {
		rs.Server.Use(cors.New(cors.Config{
			AllowOrigins:  rs.CorsOrigins,
			AllowMethods:  []string{"GET", "POST", "PUT", "DELETE"},
			AllowHeaders:  []string{"Content-Type", common.HeaderDeviceID, common.HeaderRequestID},
			ExposeHeaders: []string{common.HeaderRequestID},
			MaxAge:        12 * time.Hour,
		}))
	}

	rs.Server.GET("/healthz", rs.HealthCheck)
	rs.Server.GET("/metrics", gin.WrapH(metrics.Handler()))

	plants := rs.Server.Group("/plants")
	{
		plants.GET("", rs.GetPlants)
		plants.POST("", rs.CreatePlant)
		plants.GET("/:id", rs.GetPlant)
		plants.PUT("/:id", rs.UpdatePlant)
		plants.DELETE("/:id", rs.DeletePlant)
		plants.POST("/:id/water", rs.LimitClient(), rs.WaterPlant)
	}

	sensors := rs.Server.Group("/sensors")
	{
		sensors.GET("", rs.GetSensors)
		sensors.POST("", rs.LimitClient(), rs.PostSensors)
		sensors.DELETE("", rs.CleanupSensors)
		sensors.GET("/history/:metric", rs.GetSensorHistory)
		sensors.GET("/live", rs.Live.Serve)
	}

	watering := rs.Server.Group("/watering")
	{
		watering.GET("", rs.GetWatering)
		watering.POST("", rs.LimitClient(), rs.PostWatering)
	}
}

func (rs *RestfulServer) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// clientID identifies the caller for rate limiting: the sensor's device id
// when it sends one, its address otherwise.
func clientID(c *gin.Context) string {
	if id := c.GetHeader(common.HeaderDeviceID); id != "" {
		return id
	}
	return c.ClientIP()
}

func (rs *RestfulServer) LimitClient() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rs.Limiters.Allow(clientID(c)) {
			metrics.RequestsThrottled.Inc()
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "too many requests"})
			return
		}
		c.Next()
	}
}

func parsePlantID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 0)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid plant ID"})
		return 0, false
	}
	return uint(id), true
}

// respondError maps core errors onto status codes. Anything unrecognized is
// a storage failure.
func respondError(c *gin.Context, err error) {
	var verr *planter.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Error(), "fields": verr.Fields()})
	case errors.Is(err, planter.ErrPlantNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Plant not found"})
	case errors.Is(err, planter.ErrNoReadings):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		common.GetLoggerWith(common.LoggerNameRestfulServer).Error("Request failed",
			zap.String(common.LoggerFieldRequestID, c.GetString(common.LoggerFieldRequestID)),
			zap.String("path", c.FullPath()),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

func badJSON(c *gin.Context) {
	c.JSON(http.StatusBadRequest, gin.H{"error": "request body must be a JSON object"})
}
