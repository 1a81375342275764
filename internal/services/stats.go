package services

import (
	"sort"
	"time"

	"github.com/apptrackr/backend/internal/dtos"
	"github.com/apptrackr/backend/internal/models"
)

// ComputeStatusStats buckets records by status. All four statuses are always
// present in the result; unknown status values (there should be none) are
// dropped rather than invented as new keys.
func ComputeStatusStats(statuses []string) dtos.StatusStats {
	var out dtos.StatusStats
	for _, s := range statuses {
		switch s {
		case models.StatusPending:
			out.Pending++
		case models.StatusRejected:
			out.Rejected++
		case models.StatusCleared:
			out.Cleared++
		case models.StatusScheduled:
			out.Scheduled++
		}
	}
	return out
}

type yearMonth struct {
	year  int
	month time.Month
}

// ComputeMonthlyStats buckets record dates by calendar month, keeps the 12
// most recent buckets, and returns them in ascending chronological order.
// Months with no records are absent, not zero-filled.
func ComputeMonthlyStats(dates []time.Time) []dtos.MonthlyCount {
	buckets := make(map[yearMonth]int)
	for _, d := range dates {
		buckets[yearMonth{d.Year(), d.Month()}]++
	}

	keys := make([]yearMonth, 0, len(buckets))
	for k := range buckets {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].year != keys[j].year {
			return keys[i].year > keys[j].year
		}
		return keys[i].month > keys[j].month
	})
	if len(keys) > 12 {
		keys = keys[:12]
	}

	out := make([]dtos.MonthlyCount, 0, len(keys))
	for i := len(keys) - 1; i >= 0; i-- {
		k := keys[i]
		label := time.Date(k.year, k.month, 1, 0, 0, 0, 0, time.UTC).Format("Jan 2006")
		out = append(out, dtos.MonthlyCount{Date: label, Count: buckets[k]})
	}
	return out
}
