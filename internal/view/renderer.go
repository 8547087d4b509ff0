package view

import (
	"fmt"
	"math"
	"time"

	"weatherboard/internal/model"
	"weatherboard/internal/weathercode"
)

// maxChartPoints is the hourly window charted: the next 24 hours.
const maxChartPoints = 24

// Open-Meteo timestamp layouts.
const (
	hourLayout = "2006-01-02T15:04"
	dateLayout = "2006-01-02"
)

// Today renders the current-conditions summary. Temperatures are rounded to
// the nearest whole unit for display only; the snapshot is not mutated.
//
// The current payload carries no rain probability, so the figure is taken
// from the hourly entry whose timestamp matches the current time exactly,
// falling back to the first hourly entry, and to a placeholder when the
// hourly series is empty.
func Today(snap *model.ForecastSnapshot, unit model.UnitPreference) *model.TodaySummary {
	cond := weathercode.Decode(snap.Current.ConditionCode)

	humidity := model.MissingValue
	if snap.Current.Humidity != nil {
		humidity = fmt.Sprintf("%.0f%%", *snap.Current.Humidity)
	}

	return &model.TodaySummary{
		Time:                snap.Current.Time,
		Temperature:         roundWhole(snap.Current.Temperature),
		ApparentTemperature: roundWhole(snap.Current.ApparentTemperature),
		Humidity:            humidity,
		RainChance:          rainChanceNow(snap),
		Precipitation:       snap.Current.Precipitation,
		WindSpeed:           snap.Current.WindSpeed,
		ConditionLabel:      cond.Label,
		ConditionIcon:       cond.Icon,
	}
}

func rainChanceNow(snap *model.ForecastSnapshot) string {
	hourly := snap.Hourly
	if len(hourly.Time) == 0 {
		return model.MissingValue
	}
	idx := 0
	for i, ts := range hourly.Time {
		if ts == snap.Current.Time {
			idx = i
			break
		}
	}
	if idx >= len(hourly.PrecipitationProbability) || hourly.PrecipitationProbability[idx] == nil {
		return model.MissingValue
	}
	return fmt.Sprintf("%.0f%%", *hourly.PrecipitationProbability[idx])
}

// DailyCards renders one card per returned day, nominally 7.
func DailyCards(snap *model.ForecastSnapshot, unit model.UnitPreference) []model.DailyCard {
	daily := snap.Daily
	cards := make([]model.DailyCard, 0, len(daily.Time))
	for i, date := range daily.Time {
		cond := weathercode.Decode(intAt(daily.ConditionCode, i))

		rainChance := model.MissingValue
		if i < len(daily.PrecipitationProbabilityMax) && daily.PrecipitationProbabilityMax[i] != nil {
			rainChance = fmt.Sprintf("%.0f%%", *daily.PrecipitationProbabilityMax[i])
		}

		weekday := ""
		if d, err := time.Parse(dateLayout, date); err == nil {
			weekday = d.Weekday().String()[:3]
		}

		cards = append(cards, model.DailyCard{
			Date:           date,
			Weekday:        weekday,
			TempMin:        roundWhole(floatAt(daily.TempMin, i)),
			TempMax:        roundWhole(floatAt(daily.TempMax, i)),
			PrecipSum:      math.Round(floatAt(daily.PrecipitationSum, i)*10) / 10,
			RainChance:     rainChance,
			ConditionLabel: cond.Label,
			ConditionIcon:  cond.Icon,
		})
	}
	return cards
}

// Next24HourSeries windows the hourly arrays to the first 24 entries, or all
// of them when fewer are available. No padding is applied.
func Next24HourSeries(snap *model.ForecastSnapshot) *model.ChartSeries {
	hourly := snap.Hourly
	n := len(hourly.Time)
	if n > maxChartPoints {
		n = maxChartPoints
	}

	series := &model.ChartSeries{
		Labels:          make([]string, 0, n),
		Temperature:     make([]float64, 0, n),
		RainProbability: make([]*float64, 0, n),
		WindSpeed:       make([]float64, 0, n),
	}
	for i := 0; i < n; i++ {
		series.Labels = append(series.Labels, hourLabel(hourly.Time[i]))
		series.Temperature = append(series.Temperature, floatAt(hourly.Temperature, i))
		series.WindSpeed = append(series.WindSpeed, floatAt(hourly.WindSpeed, i))
		if i < len(hourly.PrecipitationProbability) {
			series.RainProbability = append(series.RainProbability, hourly.PrecipitationProbability[i])
		} else {
			series.RainProbability = append(series.RainProbability, nil)
		}
	}
	return series
}

func hourLabel(ts string) string {
	t, err := time.Parse(hourLayout, ts)
	if err != nil {
		return ts
	}
	return t.Format("15:04")
}

func roundWhole(v float64) int {
	return int(math.Round(v))
}

func floatAt(arr []float64, i int) float64 {
	if i < len(arr) {
		return arr[i]
	}
	return 0
}

func intAt(arr []int, i int) int {
	if i < len(arr) {
		return arr[i]
	}
	return 0
}
