package store

import (
	"math"
	"strconv"

	"github.com/TusharBadgujar235/jk-soda-water-website-new/internal/models"
)

type OrderStats struct {
	Total     int
	Pending   int
	Completed int
}

type MessageStats struct {
	Total  int
	Unread int
}

type RatingStats struct {
	Total   int
	Average float64 // arithmetic mean of stars, rounded to one decimal
}

// ComputeOrderStats recounts the order breakdown from a snapshot. Pure so
// the admin panel can recompute after every mutation.
func ComputeOrderStats(orders []models.Order) OrderStats {
	stats := OrderStats{Total: len(orders)}
	for _, o := range orders {
		switch o.Status {
		case models.OrderCompleted:
			stats.Completed++
		default:
			stats.Pending++
		}
	}
	return stats
}

func ComputeMessageStats(messages []models.Message) MessageStats {
	stats := MessageStats{Total: len(messages)}
	for _, m := range messages {
		if !m.Read {
			stats.Unread++
		}
	}
	return stats
}

func ComputeRatingStats(ratings []models.Rating) RatingStats {
	stats := RatingStats{Total: len(ratings)}
	if len(ratings) == 0 {
		return stats
	}
	sum := 0
	for _, r := range ratings {
		sum += r.Stars
	}
	stats.Average = math.Round(float64(sum)/float64(len(ratings))*10) / 10
	return stats
}

// FormatAverage renders the mean with one decimal, matching the admin
// panel display ("4.5", "0" when empty).
func (rs RatingStats) FormatAverage() string {
	if rs.Total == 0 {
		return "0"
	}
	return strconv.FormatFloat(rs.Average, 'f', 1, 64)
}
