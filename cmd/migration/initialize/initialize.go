package initialize

import (
	"driftline/config"

	logger "github.com/Bparsons0904/goLogger"

	. "driftline/internal/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func InitializeTables(db *gorm.DB, config config.Config, log logger.Logger) error {
	log = log.Function("InitializeTables")
	log.Info("Initializing essential production data")

	if err := initializeLocations(db, log); err != nil {
		return log.Err("failed to initialize locations", err)
	}

	log.Info("Table initialization complete")
	return nil
}

type locationSeed struct {
	name    string
	geojson string
	// monthlyWeights holds one aggregate debris weight in kg per calendar
	// month, January first. Winter storms wash up the bulk of it.
	monthlyWeights [12]float64
}

func getLocationsData() []locationSeed {
	return []locationSeed{
		{
			name:    "Gull Point",
			geojson: `{"type":"Point","coordinates":[-124.063,44.621]}`,
			monthlyWeights: [12]float64{
				48.2, 41.5, 36.9, 28.4, 22.1, 17.6,
				15.3, 16.8, 21.9, 29.5, 39.4, 46.7,
			},
		},
		{
			name:    "Driftwood Cove",
			geojson: `{"type":"Point","coordinates":[-124.102,44.887]}`,
			monthlyWeights: [12]float64{
				35.6, 31.2, 27.8, 21.3, 16.4, 12.9,
				11.2, 12.5, 16.1, 22.7, 29.8, 34.9,
			},
		},
		{
			name:    "Heron Spit",
			geojson: `{"type":"Point","coordinates":[-123.981,46.214]}`,
			monthlyWeights: [12]float64{
				61.4, 54.8, 47.2, 36.5, 27.9, 21.4,
				18.7, 20.3, 27.6, 38.2, 50.1, 59.3,
			},
		},
		{
			name:    "Tern Flats",
			geojson: `{"type":"Point","coordinates":[-124.158,45.433]}`,
			monthlyWeights: [12]float64{
				24.9, 21.6, 18.8, 14.2, 10.7, 8.3,
				7.1, 7.9, 10.4, 15.6, 20.5, 24.1,
			},
		},
	}
}

func initializeLocations(db *gorm.DB, log logger.Logger) error {
	log.Info("Initializing cleanup location reference data")

	locations := getLocationsData()

	for _, seed := range locations {
		var existingLocation Location
		if err := db.First(&existingLocation, "name = ?", seed.name).Error; err == nil {
			log.Debug("Location already exists", "name", seed.name)
			continue
		}

		log.Info("Initializing location", "name", seed.name)
		location := Location{
			Name:    seed.name,
			Geojson: datatypes.JSON([]byte(seed.geojson)),
		}
		if err := db.Create(&location).Error; err != nil {
			return log.Err("failed to create location", err, "name", seed.name)
		}

		for i, weight := range seed.monthlyWeights {
			flotsam := HistoricalMonthlyFlotsam{
				Month:      i + 1,
				Weight:     weight,
				LocationID: location.ID,
			}
			if err := db.Create(&flotsam).Error; err != nil {
				return log.Err(
					"failed to create flotsam history",
					err,
					"name",
					seed.name,
					"month",
					i+1,
				)
			}
		}
	}

	log.Info("Cleanup location reference data initialized", "count", len(locations))
	return nil
}
