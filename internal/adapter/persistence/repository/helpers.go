package repository

import (
	"os"
	"strconv"
	"time"

	"github.com/Prossima-Tech/emprise-order-tracking-system-sub002/internal/domain/entities"
)

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func parseFloat(s string) float64 {
	v, _ := strconv.ParseFloat(s, 64)
	return v
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}

// statusHistoryItem is the stored form of one transition record. Timestamps
// are RFC3339Nano strings so range filters compare lexicographically.
type statusHistoryItem struct {
	FromStatus  string `dynamodbav:"from_status"`
	ToStatus    string `dynamodbav:"to_status"`
	Remarks     string `dynamodbav:"remarks,omitempty"`
	DocumentRef string `dynamodbav:"document_ref,omitempty"`
	ActorID     string `dynamodbav:"actor_id"`
	Timestamp   string `dynamodbav:"timestamp"`
}

func toHistoryItem(e entities.StatusHistoryEntry) statusHistoryItem {
	return statusHistoryItem{
		FromStatus:  e.FromStatus,
		ToStatus:    e.ToStatus,
		Remarks:     e.Remarks,
		DocumentRef: e.DocumentRef,
		ActorID:     e.ActorID,
		Timestamp:   formatTime(e.Timestamp),
	}
}

func toHistoryItems(entries []entities.StatusHistoryEntry) []statusHistoryItem {
	items := make([]statusHistoryItem, 0, len(entries))
	for _, e := range entries {
		items = append(items, toHistoryItem(e))
	}
	return items
}

func fromHistoryItems(items []statusHistoryItem) []entities.StatusHistoryEntry {
	entries := make([]entities.StatusHistoryEntry, 0, len(items))
	for _, it := range items {
		entries = append(entries, entities.StatusHistoryEntry{
			FromStatus:  it.FromStatus,
			ToStatus:    it.ToStatus,
			Remarks:     it.Remarks,
			DocumentRef: it.DocumentRef,
			ActorID:     it.ActorID,
			Timestamp:   parseTime(it.Timestamp),
		})
	}
	return entries
}
