package usecase

import (
	"testing"
	"time"

	"github.com/Prossima-Tech/emprise-order-tracking-system-sub002/internal/domain/entities"
)

func TestClassifyExpiry(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name       string
		due        time.Time
		windowDays int
		want       ExpiryClassification
	}{
		{name: "inside window", due: now.AddDate(0, 0, 10), windowDays: 30, want: ExpiryClassification{ExpiringSoon: true}},
		{name: "past due", due: now.AddDate(0, 0, -1), windowDays: 30, want: ExpiryClassification{Overdue: true}},
		{name: "beyond window", due: now.AddDate(0, 0, 40), windowDays: 30, want: ExpiryClassification{}},
		{name: "exactly at window edge", due: now.AddDate(0, 0, 30), windowDays: 30, want: ExpiryClassification{ExpiringSoon: true}},
		{name: "due exactly now", due: now, windowDays: 30, want: ExpiryClassification{ExpiringSoon: true}},
		{name: "custom window", due: now.AddDate(0, 0, 40), windowDays: 60, want: ExpiryClassification{ExpiringSoon: true}},
		{name: "zero window falls back to default", due: now.AddDate(0, 0, 10), windowDays: 0, want: ExpiryClassification{ExpiringSoon: true}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ClassifyExpiry(tc.due, now, tc.windowDays); got != tc.want {
				t.Fatalf("expected %+v, got %+v", tc.want, got)
			}
		})
	}
}

func TestDerivedEMDStatus(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	past := now.AddDate(0, 0, -5)
	future := now.AddDate(0, 0, 5)

	cases := []struct {
		name string
		emd  entities.EMD
		want entities.EMDStatus
	}{
		{name: "pending past maturity", emd: entities.EMD{Status: entities.EMDStatusPending, MaturityDate: past}, want: entities.EMDStatusOverdue},
		{name: "verified past maturity", emd: entities.EMD{Status: entities.EMDStatusVerified, MaturityDate: past}, want: entities.EMDStatusOverdue},
		{name: "returned past maturity stays returned", emd: entities.EMD{Status: entities.EMDStatusReturned, MaturityDate: past}, want: entities.EMDStatusReturned},
		{name: "forfeited past maturity stays forfeited", emd: entities.EMD{Status: entities.EMDStatusForfeited, MaturityDate: past}, want: entities.EMDStatusForfeited},
		{name: "pending before maturity", emd: entities.EMD{Status: entities.EMDStatusPending, MaturityDate: future}, want: entities.EMDStatusPending},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := DerivedEMDStatus(tc.emd, now); got != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, got)
			}
		})
	}
}
