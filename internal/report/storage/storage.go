// Package storage keeps report jobs in memory. Raw report text lives only
// in RAM during processing and is zeroed afterwards; finished jobs expire
// after a TTL so no result outlives the patient's session for long.
package storage

import (
	"crypto/rand"
	"sync"
	"time"

	"github.com/insideimaging/insideimaging-backend/internal/report/domain"
)

// JobStore is an in-memory store for report jobs with TTL cleanup
type JobStore struct {
	mu   sync.RWMutex
	jobs map[string]*domain.ReportJob
	ttl  time.Duration
	stop chan struct{}
}

// NewJobStore creates a job store and starts its cleanup loop
func NewJobStore(ttl time.Duration) *JobStore {
	s := &JobStore{
		jobs: make(map[string]*domain.ReportJob),
		ttl:  ttl,
		stop: make(chan struct{}),
	}
	go s.cleanupLoop()
	return s
}

// GenerateJobID creates a cryptographically random job ID
func GenerateJobID() string {
	b := make([]byte, 16)
	rand.Read(b)
	const hex = "0123456789abcdef"
	id := make([]byte, 32)
	for i, v := range b {
		id[i*2] = hex[v>>4]
		id[i*2+1] = hex[v&0x0f]
	}
	return string(id)
}

// StoreJob stores a report job
func (s *JobStore) StoreJob(job *domain.ReportJob) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobs[job.JobID] = job
}

// GetJob retrieves a snapshot of a report job by ID, or nil if unknown or
// expired. A copy is returned so callers serializing the job never observe
// a concurrent UpdateJob mid-write. The Result pointer is shared, but a
// result is never mutated once attached.
func (s *JobStore) GetJob(jobID string) *domain.ReportJob {
	s.mu.RLock()
	defer s.mu.RUnlock()
	job, ok := s.jobs[jobID]
	if !ok {
		return nil
	}
	snapshot := *job
	return &snapshot
}

// UpdateJob applies a mutation to an existing job under the store lock
func (s *JobStore) UpdateJob(jobID string, update func(*domain.ReportJob)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if job, ok := s.jobs[jobID]; ok {
		update(job)
	}
}

// DeleteJob removes a job from the store
func (s *JobStore) DeleteJob(jobID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.jobs, jobID)
}

// Len returns the number of live jobs
func (s *JobStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.jobs)
}

// Close stops the cleanup loop
func (s *JobStore) Close() {
	close(s.stop)
}

// ZeroBytes overwrites a byte slice with zeros so uploaded report data
// does not linger in memory after processing.
func ZeroBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

func (s *JobStore) cleanupLoop() {
	ticker := time.NewTicker(s.ttl / 2)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			s.cleanup()
		case <-s.stop:
			return
		}
	}
}

func (s *JobStore) cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()
	cutoff := time.Now().Add(-s.ttl)
	for id, job := range s.jobs {
		if job.CreatedAt.Before(cutoff) {
			delete(s.jobs, id)
		}
	}
}
