package report

import (
	"context"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/healthtrack/backend/internal/domain/journal"
	"github.com/healthtrack/backend/internal/domain/shared"
)

// ChartSeries holds the three date-keyed series shown on the dashboard
type ChartSeries struct {
	Dates       []string  `json:"dates"`
	Mood        []string  `json:"mood"`
	SleepHours  []float64 `json:"sleep_hours"`
	WaterIntake []float64 `json:"water_intake"`
}

// ChartService builds chart series from a user's log history.
// Series are recomputed per request; nothing is cached.
type ChartService struct {
	logRepo journal.HealthLogRepository
	logger  *zap.Logger
}

// NewChartService creates a new chart service
func NewChartService(logRepo journal.HealthLogRepository, logger *zap.Logger) *ChartService {
	return &ChartService{
		logRepo: logRepo,
		logger:  logger,
	}
}

// BuildSeries loads all of the user's entries in list order and
// produces the mood, sleep and water series
func (s *ChartService) BuildSeries(ctx context.Context, userID uuid.UUID) (*ChartSeries, error) {
	logs, err := s.logRepo.FindAllByUser(ctx, userID)
	if err != nil {
		s.logger.Error("Failed to load entries for charts",
			zap.String("user_id", userID.String()),
			zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to build chart series")
	}

	series := &ChartSeries{
		Dates:       make([]string, 0, len(logs)),
		Mood:        make([]string, 0, len(logs)),
		SleepHours:  make([]float64, 0, len(logs)),
		WaterIntake: make([]float64, 0, len(logs)),
	}

	for _, log := range logs {
		series.Dates = append(series.Dates, log.DateString())
		series.Mood = append(series.Mood, log.Mood)
		sleep, _ := log.SleepHours.Float64()
		series.SleepHours = append(series.SleepHours, sleep)
		water, _ := log.WaterIntake.Float64()
		series.WaterIntake = append(series.WaterIntake, water)
	}

	return series, nil
}

// RenderHTML writes the three line charts as a self-contained HTML page
func (s *ChartService) RenderHTML(w io.Writer, series *ChartSeries) error {
	page := components.NewPage()
	page.SetPageTitle("Health Charts")
	page.AddCharts(
		sleepChart(series),
		waterChart(series),
		moodChart(series),
	)
	return page.Render(w)
}

func sleepChart(series *ChartSeries) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Sleep Hours"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)

	data := make([]opts.LineData, 0, len(series.SleepHours))
	for _, v := range series.SleepHours {
		data = append(data, opts.LineData{Value: v})
	}

	line.SetXAxis(series.Dates).AddSeries("Sleep Hours", data)
	return line
}

func waterChart(series *ChartSeries) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Water Intake"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)

	data := make([]opts.LineData, 0, len(series.WaterIntake))
	for _, v := range series.WaterIntake {
		data = append(data, opts.LineData{Value: v})
	}

	line.SetXAxis(series.Dates).AddSeries("Water Intake", data)
	return line
}

// moodChart plots the free-text mood values on a category axis in
// first-seen order
func moodChart(series *ChartSeries) *charts.Line {
	categories := make([]string, 0)
	seen := make(map[string]bool)
	for _, mood := range series.Mood {
		if !seen[mood] {
			seen[mood] = true
			categories = append(categories, mood)
		}
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Mood"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithYAxisOpts(opts.YAxis{Type: "category", Data: categories}),
	)

	data := make([]opts.LineData, 0, len(series.Mood))
	for _, mood := range series.Mood {
		data = append(data, opts.LineData{Value: mood})
	}

	line.SetXAxis(series.Dates).AddSeries("Mood", data)
	return line
}
