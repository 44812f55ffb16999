// Package store keeps the in-memory snapshot of the record collection
// and the doctor directory, refreshing both from the hospital services
// on an interval. Nothing is persisted: a restart starts empty and
// refreshes from the services again.
package store

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/chartgrep/chartgrep/pkg/log"
	"github.com/chartgrep/chartgrep/pkg/records"
)

// Fetcher assembles the full record collection. Implemented by
// assemble.Assembler.
type Fetcher interface {
	Assemble(ctx context.Context) ([]records.Record, error)
}

// DoctorLister fetches the doctor directory. Implemented by
// hospital.Client.
type DoctorLister interface {
	Doctors(ctx context.Context) ([]records.Doctor, error)
}

// Stats summarizes the current snapshot for the stats endpoint and CLI.
type Stats struct {
	TotalRecords    int            `json:"total_records"`
	TotalDoctors    int            `json:"total_doctors"`
	LastRefresh     time.Time      `json:"last_refresh"`
	ByDepartment    map[string]int `json:"by_department"`
	ByPaymentStatus map[string]int `json:"by_payment_status"`
}

// Store holds the snapshot behind a read-write lock. Searches read a
// snapshot copy, so a refresh never mutates records a search is
// scanning.
type Store struct {
	fetcher  Fetcher
	doctors  DoctorLister
	interval time.Duration
	logger   *log.Logger

	mu          sync.RWMutex
	recs        []records.Record
	doctorList  []records.Doctor
	lastRefresh time.Time

	stopCh  chan struct{}
	wg      sync.WaitGroup
	running bool
}

// NewStore creates a store refreshing from fetcher and doctors every
// interval once started.
func NewStore(fetcher Fetcher, doctors DoctorLister, interval time.Duration) *Store {
	return &Store{
		fetcher:  fetcher,
		doctors:  doctors,
		interval: interval,
		logger:   log.ForService("store"),
		stopCh:   make(chan struct{}),
	}
}

// SetSources swaps the fetcher and doctor lister, used when the
// configuration is reloaded while serving. The new sources take effect
// on the next refresh; the current snapshot is left alone.
func (s *Store) SetSources(fetcher Fetcher, doctors DoctorLister) {
	s.mu.Lock()
	s.fetcher = fetcher
	s.doctors = doctors
	s.mu.Unlock()
}

// Refresh pulls a fresh collection and doctor directory and swaps the
// snapshot. On error the previous snapshot stays in place.
func (s *Store) Refresh(ctx context.Context) error {
	s.mu.RLock()
	fetcher, doctors := s.fetcher, s.doctors
	s.mu.RUnlock()

	recs, err := fetcher.Assemble(ctx)
	if err != nil {
		return fmt.Errorf("refreshing records: %w", err)
	}

	doctorList, err := doctors.Doctors(ctx)
	if err != nil {
		return fmt.Errorf("refreshing doctors: %w", err)
	}

	s.mu.Lock()
	s.recs = recs
	s.doctorList = doctorList
	s.lastRefresh = time.Now()
	s.mu.Unlock()

	s.logger.Infof("snapshot refreshed: %d records, %d doctors", len(recs), len(doctorList))
	return nil
}

// Start performs an initial refresh and then refreshes on the
// configured interval until the context is canceled or Close is
// called. The initial refresh failure is logged, not fatal; the
// scheduler keeps retrying on the interval.
func (s *Store) Start(ctx context.Context) {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return
	}
	s.running = true
	s.mu.Unlock()

	if err := s.Refresh(ctx); err != nil {
		s.logger.Errorf("initial refresh failed: %v", err)
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-s.stopCh:
				return
			case <-ticker.C:
				if err := s.Refresh(ctx); err != nil {
					s.logger.Errorf("scheduled refresh failed: %v", err)
				}
			}
		}
	}()
}

// Close stops the refresh scheduler and waits for it to exit.
func (s *Store) Close() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	s.mu.Unlock()

	close(s.stopCh)
	s.wg.Wait()
}

// Records returns a copy of the current snapshot in stable order.
func (s *Store) Records() []records.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]records.Record, len(s.recs))
	copy(out, s.recs)
	return out
}

// Record returns the record with the given ID from the snapshot.
func (s *Store) Record(id string) (records.Record, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.recs {
		if s.recs[i].ID == id {
			return s.recs[i], true
		}
	}
	return records.Record{}, false
}

// Doctors returns a copy of the doctor directory.
func (s *Store) Doctors() []records.Doctor {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]records.Doctor, len(s.doctorList))
	copy(out, s.doctorList)
	return out
}

// Departments returns the sorted set of departments present in the
// doctor directory, for the filter controls.
func (s *Store) Departments() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]bool)
	var out []string
	for i := range s.doctorList {
		dept := s.doctorList[i].Department
		if dept == "" || seen[dept] {
			continue
		}
		seen[dept] = true
		out = append(out, dept)
	}
	sort.Strings(out)
	return out
}

// Stats aggregates snapshot counts by department and payment status.
func (s *Store) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := Stats{
		TotalRecords:    len(s.recs),
		TotalDoctors:    len(s.doctorList),
		LastRefresh:     s.lastRefresh,
		ByDepartment:    make(map[string]int),
		ByPaymentStatus: make(map[string]int),
	}
	for i := range s.recs {
		stats.ByDepartment[s.recs[i].Doctor.Department]++
		stats.ByPaymentStatus[s.recs[i].Billing.PaymentStatus]++
	}
	return stats
}
