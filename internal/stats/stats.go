// Package stats aggregates already-fetched transactions for the dashboard
// cards and charts. All computation is client-side over the listing
// snapshot; nothing here queries the backend.
package stats

import (
	"strconv"
	"strings"
	"time"

	"github.com/frauddesk/frauddesk/internal/types"
)

// WeekdayLabels are the chart labels in display order, Monday first.
var WeekdayLabels = [7]string{"M", "T", "W", "T", "F", "S", "S"}

// MonthLabels are the chart labels January through December.
var MonthLabels = [12]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// Summary holds the dashboard card figures for one transaction snapshot.
type Summary struct {
	Total   int     // all transactions in the snapshot
	Today   int     // created on now's local date
	Volume  float64 // sum of amounts
	Flagged int     // review status FLAGGED
}

// Summarize computes the card figures. "Today" compares calendar dates in
// now's location, matching what the analyst's clock considers today.
func Summarize(txs []types.Transaction, now time.Time) Summary {
	s := Summary{Total: len(txs)}
	y, m, d := now.Date()
	for _, tx := range txs {
		ty, tm, td := tx.CreateTime.In(now.Location()).Date()
		if ty == y && tm == m && td == d {
			s.Today++
		}
		s.Volume += float64(tx.Amount)
		if tx.ReviewStatus == types.ReviewStatusFlagged {
			s.Flagged++
		}
	}
	return s
}

// CountByWeekday buckets transactions by creation weekday, Monday first.
func CountByWeekday(txs []types.Transaction) [7]int {
	var counts [7]int
	for _, tx := range txs {
		// time.Weekday is Sunday=0; rotate so Monday lands in bucket 0.
		counts[(int(tx.CreateTime.Weekday())+6)%7]++
	}
	return counts
}

// CountByMonth buckets transactions by creation month, January first.
func CountByMonth(txs []types.Transaction) [12]int {
	var counts [12]int
	for _, tx := range txs {
		counts[int(tx.CreateTime.Month())-1]++
	}
	return counts
}

// FlaggedByMonth buckets flagged transactions by creation month.
func FlaggedByMonth(txs []types.Transaction) [12]int {
	var counts [12]int
	for _, tx := range txs {
		if tx.ReviewStatus == types.ReviewStatusFlagged {
			counts[int(tx.CreateTime.Month())-1]++
		}
	}
	return counts
}

// FilterByReviewStatus returns the transactions with the given status, in
// input order.
func FilterByReviewStatus(txs []types.Transaction, status types.ReviewStatus) []types.Transaction {
	out := make([]types.Transaction, 0, len(txs))
	for _, tx := range txs {
		if tx.ReviewStatus == status {
			out = append(out, tx)
		}
	}
	return out
}

// FormatUSD renders a dollar figure with thousands grouping and two decimal
// places, e.g. 1234567.891 -> "$1,234,567.89".
func FormatUSD(v float64) string {
	neg := v < 0
	if neg {
		v = -v
	}
	s := strconv.FormatFloat(v, 'f', 2, 64)
	whole, frac, _ := strings.Cut(s, ".")

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	b.WriteByte('$')
	for i, c := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(c)
	}
	b.WriteByte('.')
	b.WriteString(frac)
	return b.String()
}
