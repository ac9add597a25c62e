package services

import (
	"context"
	"math"
	"sort"
	"time"

	"dentalpro-backend/models"
	"dentalpro-backend/repository"
	"dentalpro-backend/utils"
)

type PeriodIncomeExpense struct {
	Period     string `json:"period"`
	IncomeYER  int64  `json:"incomeYER"`
	ExpenseYER int64  `json:"expenseYER"`
}

type IncomeByDoctor struct {
	DoctorID         string `json:"doctorId"`
	DoctorName       string `json:"doctorName"`
	IncomeYER        int64  `json:"incomeYER"`
	NetAfterCostsYER int64  `json:"netAfterCostsYER"`
}

type CashBalanceSummary struct {
	BalanceYER  int64 `json:"balanceYER"`
	TotalInYER  int64 `json:"totalInYER"`
	TotalOutYER int64 `json:"totalOutYER"`
}

// ReportService aggregates ledger and session data. Queries return empty
// results rather than failing when nothing matches.
type ReportService struct {
	repos *repository.Bundle
}

func NewReportService(repos *repository.Bundle) *ReportService {
	return &ReportService{repos: repos}
}

// IncomeByPeriod buckets ledger entries by day or month key derived from
// the entry date, summing income and expense per bucket, sorted ascending.
func (s *ReportService) IncomeByPeriod(ctx context.Context, start, end time.Time, granularity string) []PeriodIncomeExpense {
	type bucket struct{ income, expense int64 }
	buckets := make(map[string]*bucket)
	for _, entry := range s.repos.Ledger.ListByDateRange(start, end) {
		key := utils.PeriodKey(entry.Date, granularity)
		b, ok := buckets[key]
		if !ok {
			b = &bucket{}
			buckets[key] = b
		}
		if entry.Direction == models.LedgerIn {
			b.income += entry.AmountYER
		} else {
			b.expense += entry.AmountYER
		}
	}
	out := make([]PeriodIncomeExpense, 0, len(buckets))
	for key, b := range buckets {
		out = append(out, PeriodIncomeExpense{Period: key, IncomeYER: b.income, ExpenseYER: b.expense})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Period < out[j].Period })
	return out
}

// ExpenseByCategory sums outgoing ledger amounts grouped by entry type.
func (s *ReportService) ExpenseByCategory(ctx context.Context, start, end time.Time) map[models.LedgerType]int64 {
	out := make(map[models.LedgerType]int64)
	for _, entry := range s.repos.Ledger.ListByDateRange(start, end) {
		if entry.Direction == models.LedgerOut {
			out[entry.Type] += entry.AmountYER
		}
	}
	return out
}

// NetByDoctor nets each doctor's share of session fees against a cost
// proxy. The proxy is the raw sum of consumed material quantities, not
// their cost; the books have always been kept this way.
func (s *ReportService) NetByDoctor(ctx context.Context, start, end time.Time) []IncomeByDoctor {
	doctors := make(map[string]models.Doctor)
	for _, doctor := range s.repos.Doctors.List() {
		doctors[doctor.ID] = doctor
	}
	type totals struct{ income, costs int64 }
	perDoctor := make(map[string]*totals)
	var order []string
	for _, session := range s.repos.Sessions.List() {
		if session.Date.Before(start) || session.Date.After(end) {
			continue
		}
		t, ok := perDoctor[session.DoctorID]
		if !ok {
			t = &totals{}
			perDoctor[session.DoctorID] = t
			order = append(order, session.DoctorID)
		}
		t.income += session.FeeYER
		for _, material := range session.Materials {
			t.costs += int64(material.Quantity)
		}
	}
	sort.Strings(order)
	out := make([]IncomeByDoctor, 0, len(order))
	for _, doctorID := range order {
		t := perDoctor[doctorID]
		name := "unknown doctor"
		share := 0
		if doctor, ok := doctors[doctorID]; ok {
			name = doctor.Name
			share = doctor.RevenueSharePercent
		}
		net := int64(math.Round(float64(t.income) * float64(share) / 100))
		out = append(out, IncomeByDoctor{
			DoctorID:         doctorID,
			DoctorName:       name,
			IncomeYER:        t.income,
			NetAfterCostsYER: net - t.costs,
		})
	}
	return out
}

// CashBalance scans the full ledger history: all in minus all out.
func (s *ReportService) CashBalance(ctx context.Context) CashBalanceSummary {
	var totalIn, totalOut int64
	for _, entry := range s.repos.Ledger.List() {
		if entry.Direction == models.LedgerIn {
			totalIn += entry.AmountYER
		} else {
			totalOut += entry.AmountYER
		}
	}
	return CashBalanceSummary{
		BalanceYER:  totalIn - totalOut,
		TotalInYER:  totalIn,
		TotalOutYER: totalOut,
	}
}
