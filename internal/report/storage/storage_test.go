package storage

import (
	"testing"
	"time"

	"github.com/insideimaging/insideimaging-backend/internal/report/domain"
)

func TestGenerateJobID(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := GenerateJobID()
		if len(id) != 32 {
			t.Fatalf("job ID length = %d, want 32", len(id))
		}
		if seen[id] {
			t.Fatalf("duplicate job ID %s", id)
		}
		seen[id] = true
	}
}

func TestJobStoreLifecycle(t *testing.T) {
	s := NewJobStore(time.Minute)
	defer s.Close()

	job := &domain.ReportJob{
		JobID:     GenerateJobID(),
		Status:    domain.StatusPending,
		CreatedAt: time.Now(),
	}
	s.StoreJob(job)

	got := s.GetJob(job.JobID)
	if got == nil || got.Status != domain.StatusPending {
		t.Fatalf("GetJob = %+v", got)
	}

	s.UpdateJob(job.JobID, func(j *domain.ReportJob) {
		j.Status = domain.StatusCompleted
	})
	if got := s.GetJob(job.JobID); got.Status != domain.StatusCompleted {
		t.Errorf("status after update = %s", got.Status)
	}

	s.DeleteJob(job.JobID)
	if s.GetJob(job.JobID) != nil {
		t.Error("job still present after delete")
	}
}

func TestGetJobReturnsSnapshot(t *testing.T) {
	s := NewJobStore(time.Minute)
	defer s.Close()

	s.StoreJob(&domain.ReportJob{
		JobID:     "snap",
		Status:    domain.StatusProcessing,
		CreatedAt: time.Now(),
	})

	got := s.GetJob("snap")
	got.Status = domain.StatusFailed
	if again := s.GetJob("snap"); again.Status != domain.StatusProcessing {
		t.Fatalf("stored job mutated through returned value: %+v", again)
	}

	s.UpdateJob("snap", func(j *domain.ReportJob) {
		j.Status = domain.StatusCompleted
	})
	if got.Status != domain.StatusFailed {
		t.Errorf("earlier snapshot changed by update: %s", got.Status)
	}
}

func TestJobStoreUnknownJob(t *testing.T) {
	s := NewJobStore(time.Minute)
	defer s.Close()

	if s.GetJob("missing") != nil {
		t.Error("expected nil for unknown job")
	}
	// update of a missing job is a no-op
	s.UpdateJob("missing", func(j *domain.ReportJob) {
		t.Error("update callback should not run")
	})
}

func TestJobStoreCleanup(t *testing.T) {
	s := NewJobStore(10 * time.Millisecond)
	defer s.Close()

	s.StoreJob(&domain.ReportJob{
		JobID:     "old",
		CreatedAt: time.Now().Add(-time.Minute),
	})
	s.StoreJob(&domain.ReportJob{
		JobID:     "fresh",
		CreatedAt: time.Now().Add(time.Hour),
	})

	s.cleanup()
	if s.GetJob("old") != nil {
		t.Error("expired job not cleaned up")
	}
	if s.GetJob("fresh") == nil {
		t.Error("fresh job was removed")
	}
	if s.Len() != 1 {
		t.Errorf("Len = %d, want 1", s.Len())
	}
}

func TestZeroBytes(t *testing.T) {
	b := []byte("sensitive report text")
	ZeroBytes(b)
	for i, v := range b {
		if v != 0 {
			t.Fatalf("byte %d not zeroed", i)
		}
	}
}
