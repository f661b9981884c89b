package populartimes

import "github.com/salonflow/dialog-server-go/internal/model"

// industryDefaults are served to salons with too little history to compute
// real buckets. Confidence 0 marks them as defaults, never as measurements.
func industryDefaults() []model.PopularTimeBucket {
	return []model.PopularTimeBucket{
		{DayOfWeek: 6, Hour: 10, Confidence: 0}, // Saturday morning
		{DayOfWeek: 6, Hour: 14, Confidence: 0},
		{DayOfWeek: 5, Hour: 17, Confidence: 0}, // Friday after work
		{DayOfWeek: 4, Hour: 17, Confidence: 0},
		{DayOfWeek: 3, Hour: 18, Confidence: 0},
	}
}
