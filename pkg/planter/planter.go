package planter

import (
	"time"

	"liyu1981.xyz/plant-care-service/pkg/db"
	"liyu1981.xyz/plant-care-service/pkg/models"
)

type IReading interface {
	Insert(reading *models.SensorReading) (*models.SensorReading, error)
	Latest() (*models.SensorReading, error)
	List(limit int) ([]models.SensorReading, error)
	Recent(hours int) ([]models.SensorReading, error)
	Cleanup(daysToKeep int) (int64, error)
	History(metric string, hours int) (*History, error)
}

type IPlant interface {
	Create(input *PlantInput) (*models.Plant, error)
	GetByID(id uint) (*models.Plant, error)
	GetAll() ([]models.Plant, error)
	Update(id uint, patch *PlantInput) (*models.Plant, error)
	Delete(id uint) (bool, error)
	MarkWatered(id uint) (*models.Plant, error)
}

type IWatering interface {
	StatusForPlant(id uint) (*WateringReport, error)
	Water(id uint) (*WateringConfirmation, error)
}

type Planter struct {
	Db db.DB
	// Now is the clock used for every server-assigned timestamp; nil means time.Now.
	Now      func() time.Time
	Plant    IPlant
	Reading  IReading
	Watering IWatering
}

type ServiceOpts struct {
	Plant    IPlant
	Reading  IReading
	Watering IWatering
}

func (i *Planter) WithServices(opts ServiceOpts) *Planter {
	if opts.Plant != nil {
		i.Plant = opts.Plant
	}
	if opts.Reading != nil {
		i.Reading = opts.Reading
	}
	if opts.Watering != nil {
		i.Watering = opts.Watering
	}
	return i
}

// WithDefaultServices wires the database backed implementations of every
// service.
func (i *Planter) WithDefaultServices() *Planter {
	return i.WithServices(ServiceOpts{
		Plant:    i.GetIPlant(),
		Reading:  i.GetIReading(),
		Watering: i.GetIWatering(),
	})
}

func (i *Planter) now() time.Time {
	if i.Now == nil {
		return time.Now().UTC()
	}
	return i.Now().UTC()
}
