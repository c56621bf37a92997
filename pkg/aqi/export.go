package aqi

import (
	"encoding/csv"
	"io"
	"strconv"
	"time"

	"airsense.xyz/aqi-prediction-service/pkg/common"
	"airsense.xyz/aqi-prediction-service/pkg/models"
)

var csvHeader = []string{"location", "predictionDate", "predictionTime", "predictedAqi", "createdAt"}

// ExportCSV writes the loaded prediction list as a downloadable CSV. An
// empty list still produces the header row.
func ExportCSV(w io.Writer, predictions []models.Prediction) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(csvHeader); err != nil {
		return err
	}

	rows := common.Mapper(predictions, func(p models.Prediction) []string {
		return []string{
			p.Location,
			p.PredictionDate.Format("2006-01-02"),
			string(p.PredictionTime),
			strconv.Itoa(p.PredictedAQI),
			p.CreatedAt.Format(time.RFC3339),
		}
	})

	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}
