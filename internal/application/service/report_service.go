package service

import (
	"context"
	"sort"
	"time"

	"github.com/samber/lo"
	"github.com/sangkips/medrep-crm/internal/domain/entity"
	"github.com/sangkips/medrep-crm/internal/domain/enum"
	"github.com/sangkips/medrep-crm/internal/domain/repository"
	"github.com/sangkips/medrep-crm/pkg/apperror"
	"github.com/shopspring/decimal"
)

const (
	msgSummaryFailed = "Failed to get business summary."
	msgReportFailed  = "Failed to generate report."

	recentOrdersLimit = 5
	recentSalesLimit  = 20
	topDoctorsLimit   = 10
)

// ReportService aggregates billing entries into summaries and sales reports
type ReportService struct {
	registry    repository.BillingRegistry
	profileRepo repository.ProfileRepository
	now         func() time.Time
}

// NewReportService creates a new report service
func NewReportService(registry repository.BillingRegistry, profileRepo repository.ProfileRepository) *ReportService {
	return &ReportService{
		registry:    registry,
		profileRepo: profileRepo,
		now:         time.Now,
	}
}

// BusinessSummary totals the orders placed by one doctor
type BusinessSummary struct {
	TotalOrders       int     `json:"totalOrders"`
	TotalAmount       float64 `json:"totalAmount"`
	TotalNetAmount    float64 `json:"totalNetAmount"`
	TotalDiscount     float64 `json:"totalDiscount"`
	TotalSampleUnits  float64 `json:"totalSampleUnits"`
	AverageOrderValue float64 `json:"averageOrderValue"`
	AverageNetValue   float64 `json:"averageNetValue"`
}

// DoctorSummary joins a visit record with the doctor's billing activity
type DoctorSummary struct {
	DoctorName      string                `json:"doctorName"`
	DoctorDegree    string                `json:"doctorDegree"`
	NoOfVisits      int                   `json:"noOfVisits"`
	BusinessSummary BusinessSummary       `json:"businessSummary"`
	RecentOrders    []entity.BillingEntry `json:"recentOrders"`
}

// TopDoctor ranks a doctor by sales within a report period
type TopDoctor struct {
	DoctorName    string  `json:"doctorName"`
	DoctorDegree  string  `json:"doctorDegree"`
	TotalSales    float64 `json:"totalSales"`
	TotalNetSales float64 `json:"totalNetSales"`
	OrderCount    int     `json:"orderCount"`
}

// SalesReport aggregates the entries of one period
type SalesReport struct {
	Period            enum.ReportPeriod     `json:"period"`
	TotalSales        float64               `json:"totalSales"`
	TotalNetSales     float64               `json:"totalNetSales"`
	TotalOrders       int                   `json:"totalOrders"`
	AverageOrderValue float64               `json:"averageOrderValue"`
	ActiveDoctors     int                   `json:"activeDoctors"`
	TopDoctors        []TopDoctor           `json:"topDoctors"`
	RecentSales       []entity.BillingEntry `json:"recentSales"`
	GeneratedAt       time.Time             `json:"generatedAt"`
}

type doctorKey struct {
	name   string
	degree string
}

// DoctorBusinessSummary builds one summary per valid visit of the user
func (s *ReportService) DoctorBusinessSummary(ctx context.Context, userID string) ([]DoctorSummary, error) {
	ns, err := resolveNamespace(ctx, s.registry, userID, msgSummaryFailed)
	if err != nil {
		return nil, err
	}

	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, apperror.Wrap(err, msgSummaryFailed)
	}
	if profile == nil {
		return []DoctorSummary{}, nil
	}

	entries, err := ns.FindAll(ctx, repository.EntryFilter{})
	if err != nil {
		return nil, apperror.Wrap(err, msgSummaryFailed)
	}
	valid := lo.Filter(entries, func(e entity.BillingEntry, _ int) bool {
		return e.HasDoctorIdentity()
	})

	visits := lo.Filter(profile.DoctorVisits, func(v entity.DoctorVisit, _ int) bool {
		return v.HasDoctorIdentity()
	})

	return lo.Map(visits, func(v entity.DoctorVisit, _ int) DoctorSummary {
		matched := lo.Filter(valid, func(e entity.BillingEntry, _ int) bool {
			return visitMatchesEntry(&v, &e)
		})
		return DoctorSummary{
			DoctorName:      v.DoctorName,
			DoctorDegree:    v.DoctorDegree,
			NoOfVisits:      v.NoOfVisits,
			BusinessSummary: summarize(matched),
			RecentOrders:    lo.Slice(matched, 0, recentOrdersLimit),
		}
	}), nil
}

// visitMatchesEntry links by directory id when both sides carry one, by
// case-insensitive name and degree otherwise
func visitMatchesEntry(v *entity.DoctorVisit, e *entity.BillingEntry) bool {
	if v.DoctorID != nil && e.DoctorID != "" {
		return v.DoctorID.String() == e.DoctorID
	}
	return entity.SameDoctor(v.DoctorName, v.DoctorDegree, e.DoctorName, e.DoctorDegree)
}

func summarize(entries []entity.BillingEntry) BusinessSummary {
	var amount, net, units decimal.Decimal
	for _, e := range entries {
		amount = amount.Add(decimal.NewFromFloat(e.TotalOrderAmount))
		net = net.Add(decimal.NewFromFloat(e.NetAmount))
		units = units.Add(decimal.NewFromFloat(e.SampleUnits))
	}

	summary := BusinessSummary{
		TotalOrders:      len(entries),
		TotalAmount:      amount.InexactFloat64(),
		TotalNetAmount:   net.InexactFloat64(),
		TotalDiscount:    amount.Sub(net).InexactFloat64(),
		TotalSampleUnits: units.InexactFloat64(),
	}
	if len(entries) > 0 {
		count := decimal.NewFromInt(int64(len(entries)))
		summary.AverageOrderValue = amount.Div(count).InexactFloat64()
		summary.AverageNetValue = net.Div(count).InexactFloat64()
	}
	return summary
}

// EntriesForPeriod returns the user's entries inside the period window, newest first
func (s *ReportService) EntriesForPeriod(ctx context.Context, userID string, period enum.ReportPeriod) ([]entity.BillingEntry, error) {
	ns, err := resolveNamespace(ctx, s.registry, userID, msgReportFailed)
	if err != nil {
		return nil, err
	}

	entries, err := ns.FindAll(ctx, periodFilter(period, s.now()))
	if err != nil {
		return nil, apperror.Wrap(err, msgReportFailed)
	}
	return entries, nil
}

func periodFilter(period enum.ReportPeriod, now time.Time) repository.EntryFilter {
	start, bounded := period.Start(now)
	if !bounded {
		return repository.EntryFilter{}
	}
	return repository.EntryFilter{From: &start, To: &now}
}

// SalesReport aggregates the user's entries for the given period
func (s *ReportService) SalesReport(ctx context.Context, userID string, period enum.ReportPeriod) (*SalesReport, error) {
	now := s.now()

	ns, err := resolveNamespace(ctx, s.registry, userID, msgReportFailed)
	if err != nil {
		return nil, err
	}
	entries, err := ns.FindAll(ctx, periodFilter(period, now))
	if err != nil {
		return nil, apperror.Wrap(err, msgReportFailed)
	}

	var sales, net decimal.Decimal
	for _, e := range entries {
		sales = sales.Add(decimal.NewFromFloat(e.TotalOrderAmount))
		net = net.Add(decimal.NewFromFloat(e.NetAmount))
	}

	report := &SalesReport{
		Period:        period,
		TotalSales:    sales.InexactFloat64(),
		TotalNetSales: net.InexactFloat64(),
		TotalOrders:   len(entries),
		ActiveDoctors: len(lo.UniqBy(entries, func(e entity.BillingEntry) doctorKey {
			return doctorKey{name: e.DoctorName, degree: e.DoctorDegree}
		})),
		TopDoctors:  topDoctors(entries, topDoctorsLimit),
		RecentSales: lo.Slice(entries, 0, recentSalesLimit),
		GeneratedAt: now,
	}
	if len(entries) > 0 {
		report.AverageOrderValue = sales.Div(decimal.NewFromInt(int64(len(entries)))).InexactFloat64()
	}
	return report, nil
}

// topDoctors ranks doctors by total sales. Ties keep the order in which the
// doctors first appear in entries.
func topDoctors(entries []entity.BillingEntry, limit int) []TopDoctor {
	type stats struct {
		doctor TopDoctor
		sales  decimal.Decimal
		net    decimal.Decimal
	}

	index := make(map[doctorKey]int)
	grouped := make([]*stats, 0)
	for _, e := range entries {
		key := doctorKey{name: e.DoctorName, degree: e.DoctorDegree}
		i, ok := index[key]
		if !ok {
			i = len(grouped)
			index[key] = i
			grouped = append(grouped, &stats{doctor: TopDoctor{DoctorName: e.DoctorName, DoctorDegree: e.DoctorDegree}})
		}
		st := grouped[i]
		st.sales = st.sales.Add(decimal.NewFromFloat(e.TotalOrderAmount))
		st.net = st.net.Add(decimal.NewFromFloat(e.NetAmount))
		st.doctor.OrderCount++
	}

	sort.SliceStable(grouped, func(i, j int) bool {
		return grouped[i].sales.GreaterThan(grouped[j].sales)
	})

	return lo.Map(lo.Slice(grouped, 0, limit), func(st *stats, _ int) TopDoctor {
		st.doctor.TotalSales = st.sales.InexactFloat64()
		st.doctor.TotalNetSales = st.net.InexactFloat64()
		return st.doctor
	})
}
