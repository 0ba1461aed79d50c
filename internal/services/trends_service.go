package services

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/opencre/mockapi/internal/logger"
	"github.com/opencre/mockapi/internal/models"
)

// Trend metric names accepted by the trends endpoint.
const (
	MetricTotalSalesVolume      = "totalSalesVolume"
	MetricAveragePricePerSqft   = "averagePricePerSqft"
	MetricTransactionCount      = "transactionCount"
	MetricLeaseRateAverage      = "leaseRateAverage"
	MetricBuyerTypeDistribution = "buyerTypeDistribution"
)

// DefaultTrendMetrics are used when the request names no metrics.
var DefaultTrendMetrics = []string{
	MetricTotalSalesVolume,
	MetricAveragePricePerSqft,
	MetricTransactionCount,
}

// TrendsParams narrows the reported intervals and metrics. Filters is the
// raw query parameter set, echoed back in the response metadata; the
// aggregates themselves are illustrative and not computed from real data.
type TrendsParams struct {
	StartDate *models.Date
	EndDate   *models.Date
	Metrics   []string
	Filters   map[string]string
}

// TrendsMetadata echoes the request context for a trends response.
type TrendsMetadata struct {
	Filters     map[string]string `json:"filters"`
	LastUpdated time.Time         `json:"lastUpdated"`
}

// TrendsResult is the trends response body.
type TrendsResult struct {
	Metadata TrendsMetadata           `json:"metadata"`
	Data     []map[string]interface{} `json:"data"`
}

// TrendService produces mock aggregate statistics by year interval.
type TrendService interface {
	Trends(params TrendsParams) *TrendsResult
}

type trendService struct {
	log *logger.Logger
}

// NewTrendService creates a TrendService.
func NewTrendService(log *logger.Logger) TrendService {
	return &trendService{log: log}
}

// Trends reports one interval per year over the trailing three years,
// bounded by the requested date range. Metric values are randomized each
// call.
func (s *trendService) Trends(p TrendsParams) *TrendsResult {
	metrics := p.Metrics
	if len(metrics) == 0 {
		metrics = DefaultTrendMetrics
	}
	wanted := make(map[string]bool, len(metrics))
	for _, m := range metrics {
		wanted[m] = true
	}

	currentYear := time.Now().Year()
	data := make([]map[string]interface{}, 0, 3)

	for year := currentYear - 2; year <= currentYear; year++ {
		if p.StartDate != nil && year < p.StartDate.Year() {
			continue
		}
		if p.EndDate != nil && year > p.EndDate.Year() {
			continue
		}

		interval := map[string]interface{}{
			"interval": fmt.Sprint(year),
		}
		if wanted[MetricTotalSalesVolume] {
			interval[MetricTotalSalesVolume] = rand.Intn(500000000) + 100000000
		}
		if wanted[MetricAveragePricePerSqft] {
			interval[MetricAveragePricePerSqft] = round2(rand.Float64()*300 + 200)
		}
		if wanted[MetricTransactionCount] {
			interval[MetricTransactionCount] = rand.Intn(150) + 50
		}
		if wanted[MetricLeaseRateAverage] {
			interval[MetricLeaseRateAverage] = round2(rand.Float64()*40 + 20)
		}
		if wanted[MetricBuyerTypeDistribution] {
			interval[MetricBuyerTypeDistribution] = map[string]int{
				string(models.BuyerTypePrivateEquity): rand.Intn(50),
				string(models.BuyerTypeREIT):          rand.Intn(30),
				string(models.BuyerTypePrivateBuyer):  rand.Intn(70),
			}
		}
		data = append(data, interval)
	}

	s.log.Debug("Trends served", map[string]interface{}{
		"intervals": len(data),
		"metrics":   metrics,
	})

	return &TrendsResult{
		Metadata: TrendsMetadata{
			Filters:     p.Filters,
			LastUpdated: time.Now().UTC(),
		},
		Data: data,
	}
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
