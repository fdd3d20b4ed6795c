package http

import (
	"net/http"
	"strconv"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"
	"github.com/gin-gonic/gin"
)

type WateringRequest struct {
	PlantId int `json:"plantId"`
}

var wateringRequestSchema = z.Struct(z.Shape{
	"plantId": z.Int().GT(0).Required(),
})

func (rs *RestfulServer) GetWatering(c *gin.Context) {
	raw, found := c.GetQuery("plantId")
	if !found || raw == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "plantId parameter is required"})
		return
	}

	id, err := strconv.ParseUint(raw, 10, 0)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid plantId"})
		return
	}

	report, err := rs.Planter.Watering.StatusForPlant(uint(id))
	if err != nil {
		respondError(c, err)
		return
	}
	if report == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Plant not found"})
		return
	}
	c.JSON(http.StatusOK, report)
}

func (rs *RestfulServer) PostWatering(c *gin.Context) {
	var req WateringRequest
	if issues := wateringRequestSchema.Parse(zhttp.Request(c.Request), &req); len(issues) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":  "plantId is required as a positive integer in a JSON body sent with Content-Type: application/json",
			"fields": []string{"plantId"},
		})
		return
	}

	confirmation, err := rs.Planter.Watering.Water(uint(req.PlantId))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, confirmation)
}
