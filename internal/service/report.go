package service

import (
	"context"
	"sort"
	"time"

	"toolcrib-backend/internal/domain"
	"toolcrib-backend/internal/repository"
)

type reportService struct {
	reservations repository.ReservationRepository
	tools        repository.ToolRepository
	users        repository.UserRepository
	timeout      time.Duration
}

func NewReportService(
	reservations repository.ReservationRepository,
	tools repository.ToolRepository,
	users repository.UserRepository,
	timeout time.Duration,
) ReportService {
	return &reportService{
		reservations: reservations,
		tools:        tools,
		users:        users,
		timeout:      timeout,
	}
}

// usageDays computes how many days a reservation has held its tool. ACTIVE
// reservations count from their start date up to today. Always at least one
// day.
func usageDays(res domain.Reservation, now time.Time) int32 {
	start, err := time.Parse(dateLayout, res.StartDate)
	if err != nil {
		return 1
	}
	end := now
	if res.Status != domain.ReservationStatusActive {
		end, err = time.Parse(dateLayout, res.EndDate)
		if err != nil {
			return 1
		}
	}
	days := int32((end.Sub(start) + 24*time.Hour - 1) / (24 * time.Hour))
	if days < 1 {
		days = 1
	}
	return days
}

func (s *reportService) ToolUsage(ctx context.Context, startDate, endDate string) ([]domain.ToolUsage, error) {
	ctx, cancel := opContext(ctx, s.timeout)
	defer cancel()

	reservations, err := s.reservations.ListBetween(ctx, startDate, endDate,
		[]domain.ReservationStatus{domain.ReservationStatusCompleted, domain.ReservationStatusActive})
	if err != nil {
		return nil, storeErr("ToolUsage", err)
	}
	tools, err := s.tools.List(ctx)
	if err != nil {
		return nil, storeErr("ToolUsage", err)
	}

	byID := make(map[int32]domain.Tool, len(tools))
	for _, t := range tools {
		byID[t.ID] = t
	}

	now := time.Now()
	usage := make(map[int32]*domain.ToolUsage)
	for _, res := range reservations {
		entry, ok := usage[res.ToolID]
		if !ok {
			t := byID[res.ToolID]
			entry = &domain.ToolUsage{ToolID: res.ToolID, Name: t.Name, Description: t.Description}
			usage[res.ToolID] = entry
		}
		entry.TotalDays += usageDays(res, now)
		entry.ReservationCount++
	}

	report := make([]domain.ToolUsage, 0, len(usage))
	for _, entry := range usage {
		report = append(report, *entry)
	}
	sort.Slice(report, func(i, j int) bool { return report[i].TotalDays > report[j].TotalDays })
	return report, nil
}

func (s *reportService) UserUsage(ctx context.Context, startDate, endDate string) ([]domain.UserUsage, error) {
	ctx, cancel := opContext(ctx, s.timeout)
	defer cancel()

	reservations, err := s.reservations.ListBetween(ctx, startDate, endDate,
		[]domain.ReservationStatus{domain.ReservationStatusCompleted, domain.ReservationStatusActive})
	if err != nil {
		return nil, storeErr("UserUsage", err)
	}
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, storeErr("UserUsage", err)
	}

	byID := make(map[int32]domain.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}

	now := time.Now()
	usage := make(map[int32]*domain.UserUsage)
	for _, res := range reservations {
		entry, ok := usage[res.UserID]
		if !ok {
			u := byID[res.UserID]
			entry = &domain.UserUsage{UserID: res.UserID, Name: u.Name, Email: u.Email}
			usage[res.UserID] = entry
		}
		entry.TotalDays += usageDays(res, now)
		entry.ReservationCount++
	}

	report := make([]domain.UserUsage, 0, len(usage))
	for _, entry := range usage {
		report = append(report, *entry)
	}
	sort.Slice(report, func(i, j int) bool { return report[i].TotalDays > report[j].TotalDays })
	return report, nil
}

func (s *reportService) TopTools(ctx context.Context) ([]domain.ToolRequestCount, error) {
	ctx, cancel := opContext(ctx, s.timeout)
	defer cancel()

	reservations, err := s.reservations.List(ctx, "")
	if err != nil {
		return nil, storeErr("TopTools", err)
	}
	tools, err := s.tools.List(ctx)
	if err != nil {
		return nil, storeErr("TopTools", err)
	}

	names := make(map[int32]string, len(tools))
	for _, t := range tools {
		names[t.ID] = t.Name
	}

	counts := make(map[int32]*domain.ToolRequestCount)
	for _, res := range reservations {
		entry, ok := counts[res.ToolID]
		if !ok {
			entry = &domain.ToolRequestCount{ToolID: res.ToolID, Name: names[res.ToolID]}
			counts[res.ToolID] = entry
		}
		entry.Count++
	}

	report := make([]domain.ToolRequestCount, 0, len(counts))
	for _, entry := range counts {
		report = append(report, *entry)
	}
	sort.Slice(report, func(i, j int) bool { return report[i].Count > report[j].Count })
	return report, nil
}

func (s *reportService) TopUsers(ctx context.Context) ([]domain.UserRequestCount, error) {
	ctx, cancel := opContext(ctx, s.timeout)
	defer cancel()

	reservations, err := s.reservations.List(ctx, "")
	if err != nil {
		return nil, storeErr("TopUsers", err)
	}
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, storeErr("TopUsers", err)
	}

	byID := make(map[int32]domain.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}

	counts := make(map[int32]*domain.UserRequestCount)
	for _, res := range reservations {
		entry, ok := counts[res.UserID]
		if !ok {
			u := byID[res.UserID]
			entry = &domain.UserRequestCount{UserID: res.UserID, Name: u.Name, Email: u.Email}
			counts[res.UserID] = entry
		}
		entry.Count++
	}

	report := make([]domain.UserRequestCount, 0, len(counts))
	for _, entry := range counts {
		report = append(report, *entry)
	}
	sort.Slice(report, func(i, j int) bool { return report[i].Count > report[j].Count })
	return report, nil
}
