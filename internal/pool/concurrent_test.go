package pool_test

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/propline/proppool/internal/pool"
	"github.com/propline/proppool/internal/testutil"
)

// TestConcurrentStatusChange verifies that when several requests race to lock
// the same pool, exactly one wins and the rest are turned away without
// disturbing the stored state.
func TestConcurrentStatusChange(t *testing.T) {
	router, db, _ := testutil.NewTestRouter(t)
	p, captain := testutil.CreateTestPool(t, db, pool.StatusOpen)

	numAttempts := 4
	var successCount, conflictCount atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < numAttempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			req := testutil.MakeRequest("POST", "/api/pools/"+p.Code+"/status",
				pool.ChangeStatusRequest{Status: pool.StatusLocked}, testutil.Secret(captain.Secret))
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			switch w.Code {
			case http.StatusOK:
				successCount.Add(1)
			case http.StatusConflict:
				conflictCount.Add(1)
			}
		}()
	}

	wg.Wait()

	if successCount.Load() != 1 {
		t.Errorf("Expected exactly 1 successful lock, got %d", successCount.Load())
	}
	if int(conflictCount.Load()) != numAttempts-1 {
		t.Errorf("Expected %d conflicts, got %d", numAttempts-1, conflictCount.Load())
	}

	var stored pool.Pool
	if err := db.First(&stored, p.ID).Error; err != nil {
		t.Fatalf("Failed to reload pool: %v", err)
	}
	if stored.Status != pool.StatusLocked {
		t.Errorf("Expected pool to end locked, got %q", stored.Status)
	}
	if stored.LockedAt == nil {
		t.Error("Expected locked_at to be set")
	}
}
