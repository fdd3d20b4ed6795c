package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"liyu1981.xyz/plant-care-service/pkg/planter"
)

func (rs *RestfulServer) GetPlants(c *gin.Context) {
	plants, err := rs.Planter.Plant.GetAll()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, plants)
}

func (rs *RestfulServer) CreatePlant(c *gin.Context) {
	var input planter.PlantInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badJSON(c)
		return
	}

	plant, err := rs.Planter.Plant.Create(&input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, plant)
}

func (rs *RestfulServer) GetPlant(c *gin.Context) {
	id, ok := parsePlantID(c)
	if !ok {
		return
	}

	plant, err := rs.Planter.Plant.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, plant)
}

func (rs *RestfulServer) UpdatePlant(c *gin.Context) {
	id, ok := parsePlantID(c)
	if !ok {
		return
	}

	var patch planter.PlantInput
	if err := c.ShouldBindJSON(&patch); err != nil {
		badJSON(c)
		return
	}

	plant, err := rs.Planter.Plant.Update(id, &patch)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, plant)
}

func (rs *RestfulServer) DeletePlant(c *gin.Context) {
	id, ok := parsePlantID(c)
	if !ok {
		return
	}

	deleted, err := rs.Planter.Plant.Delete(id)
	if err != nil {
		respondError(c, err)
		return
	}
	if !deleted {
		respondError(c, planter.ErrPlantNotFound)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Plant deleted successfully"})
}

func (rs *RestfulServer) WaterPlant(c *gin.Context) {
	id, ok := parsePlantID(c)
	if !ok {
		return
	}

	plant, err := rs.Planter.Plant.MarkWatered(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":         "Plant marked as watered",
		"plant":           plant,
		"last_watered_at": plant.LastWateredAt,
	})
}
