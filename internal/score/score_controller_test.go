package score_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/propline/proppool/internal/pick"
	"github.com/propline/proppool/internal/pool"
	"github.com/propline/proppool/internal/score"
	"github.com/propline/proppool/internal/testutil"
	"github.com/propline/proppool/pkg/responses"
)

func intPtr(v int) *int { return &v }

// resolveScenario builds a locked pool with one three-option prop worth 10
// points and three players who picked A, B and B respectively.
type resolveScenario struct {
	router  *gin.Engine
	db      *gorm.DB
	p       *pool.Pool
	captain *pool.Participant
	alice   *pool.Participant
	bob     *pool.Participant
	carol   *pool.Participant
	propID  uint
}

func newResolveScenario(t *testing.T) *resolveScenario {
	t.Helper()

	router, db, _ := testutil.NewTestRouter(t)
	p, captain := testutil.CreateTestPool(t, db, pool.StatusLocked)
	pr := testutil.AddTestProp(t, db, p.ID, "Who wins the game?", []string{"A", "B", "C"}, 10)

	alice := testutil.AddTestParticipant(t, db, p.ID, "Alice")
	bob := testutil.AddTestParticipant(t, db, p.ID, "Bob")
	carol := testutil.AddTestParticipant(t, db, p.ID, "Carol")

	testutil.SubmitTestPick(t, db, p.ID, alice.ID, pr.ID, 0)
	testutil.SubmitTestPick(t, db, p.ID, bob.ID, pr.ID, 1)
	testutil.SubmitTestPick(t, db, p.ID, carol.ID, pr.ID, 1)

	return &resolveScenario{
		router:  router,
		db:      db,
		p:       p,
		captain: captain,
		alice:   alice,
		bob:     bob,
		carol:   carol,
		propID:  pr.ID,
	}
}

func (s *resolveScenario) resolve(t *testing.T, body interface{}, secret string) *httptest.ResponseRecorder {
	t.Helper()

	path := fmt.Sprintf("/api/pools/%s/props/%d/resolve", s.p.Code, s.propID)
	req := testutil.MakeRequest("POST", path, body, testutil.Secret(secret))
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *resolveScenario) total(t *testing.T, participantID uint) int {
	t.Helper()

	var stored pool.Participant
	if err := s.db.First(&stored, participantID).Error; err != nil {
		t.Fatalf("Failed to load participant %d: %v", participantID, err)
	}
	return stored.TotalPoints
}

func (s *resolveScenario) pickPoints(t *testing.T, participantID uint) *int {
	t.Helper()

	var stored pick.Pick
	err := s.db.Where("participant_id = ? AND prop_id = ?", participantID, s.propID).First(&stored).Error
	if err != nil {
		t.Fatalf("Failed to load pick for participant %d: %v", participantID, err)
	}
	return stored.PointsEarned
}

func TestResolveProp(t *testing.T) {
	s := newResolveScenario(t)

	w := s.resolve(t, score.ResolveRequest{CorrectOptionIndex: intPtr(1)}, s.captain.Secret)
	testutil.AssertStatus(t, w, http.StatusOK)

	var resp score.ResolveResponse
	testutil.DecodeData(t, w, &resp)

	if resp.Prop == nil || !resp.Prop.Resolved() {
		t.Fatal("Expected the prop to come back resolved")
	}
	if *resp.Prop.CorrectOptionIndex != 1 {
		t.Errorf("Expected correct option 1, got %d", *resp.Prop.CorrectOptionIndex)
	}
	if resp.PoolStatus != pool.StatusLocked {
		t.Errorf("Resolving must not move the pool, got status %q", resp.PoolStatus)
	}

	// Breakdown is ordered by name.
	if len(resp.Results) != 3 {
		t.Fatalf("Expected 3 results, got %d", len(resp.Results))
	}
	wantResults := []score.ParticipantResult{
		{ParticipantID: s.alice.ID, Name: "Alice", SelectedOptionIndex: 0, PointsEarned: 0},
		{ParticipantID: s.bob.ID, Name: "Bob", SelectedOptionIndex: 1, PointsEarned: 10},
		{ParticipantID: s.carol.ID, Name: "Carol", SelectedOptionIndex: 1, PointsEarned: 10},
	}
	for i, want := range wantResults {
		if resp.Results[i] != want {
			t.Errorf("Result %d: expected %+v, got %+v", i, want, resp.Results[i])
		}
	}

	// Stored picks and totals agree with the breakdown.
	for _, tc := range []struct {
		participant *pool.Participant
		points      int
	}{
		{s.alice, 0},
		{s.bob, 10},
		{s.carol, 10},
	} {
		earned := s.pickPoints(t, tc.participant.ID)
		if earned == nil || *earned != tc.points {
			t.Errorf("%s: expected %d points on the pick, got %v", tc.participant.Name, tc.points, earned)
		}
		if got := s.total(t, tc.participant.ID); got != tc.points {
			t.Errorf("%s: expected total %d, got %d", tc.participant.Name, tc.points, got)
		}
	}

	var stored pool.Pool
	s.db.First(&stored, s.p.ID)
	if stored.Status != pool.StatusLocked {
		t.Errorf("Pool status must stay locked, got %q", stored.Status)
	}
}

func TestResolvePropAgainWithoutOverwrite(t *testing.T) {
	s := newResolveScenario(t)

	w := s.resolve(t, score.ResolveRequest{CorrectOptionIndex: intPtr(1)}, s.captain.Secret)
	testutil.AssertStatus(t, w, http.StatusOK)

	w = s.resolve(t, score.ResolveRequest{CorrectOptionIndex: intPtr(0)}, s.captain.Secret)
	testutil.AssertStatus(t, w, http.StatusConflict)
	testutil.AssertCode(t, w, responses.CodeAlreadyResolved)

	// The rejected call must not touch anything.
	if got := s.total(t, s.bob.ID); got != 10 {
		t.Errorf("Expected Bob to keep 10 points, got %d", got)
	}
	if got := s.total(t, s.alice.ID); got != 0 {
		t.Errorf("Expected Alice to keep 0 points, got %d", got)
	}
}

func TestResolvePropOverwriteFlipsTotals(t *testing.T) {
	s := newResolveScenario(t)

	w := s.resolve(t, score.ResolveRequest{CorrectOptionIndex: intPtr(1)}, s.captain.Secret)
	testutil.AssertStatus(t, w, http.StatusOK)

	w = s.resolve(t, score.ResolveRequest{CorrectOptionIndex: intPtr(0), Overwrite: true}, s.captain.Secret)
	testutil.AssertStatus(t, w, http.StatusOK)

	// Points move, never accumulate.
	for _, tc := range []struct {
		participant *pool.Participant
		points      int
	}{
		{s.alice, 10},
		{s.bob, 0},
		{s.carol, 0},
	} {
		earned := s.pickPoints(t, tc.participant.ID)
		if earned == nil || *earned != tc.points {
			t.Errorf("%s: expected %d points after re-resolution, got %v", tc.participant.Name, tc.points, earned)
		}
		if got := s.total(t, tc.participant.ID); got != tc.points {
			t.Errorf("%s: expected total %d after re-resolution, got %d", tc.participant.Name, tc.points, got)
		}
	}
}

func TestResolvePropTotalsSpanProps(t *testing.T) {
	s := newResolveScenario(t)
	second := testutil.AddTestProp(t, s.db, s.p.ID, "Total over 40?", []string{"Over", "Under"}, 5)
	testutil.SubmitTestPick(t, s.db, s.p.ID, s.bob.ID, second.ID, 0)

	w := s.resolve(t, score.ResolveRequest{CorrectOptionIndex: intPtr(1)}, s.captain.Secret)
	testutil.AssertStatus(t, w, http.StatusOK)

	path := fmt.Sprintf("/api/pools/%s/props/%d/resolve", s.p.Code, second.ID)
	req := testutil.MakeRequest("POST", path, score.ResolveRequest{CorrectOptionIndex: intPtr(0)}, testutil.Secret(s.captain.Secret))
	w = httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	if got := s.total(t, s.bob.ID); got != 15 {
		t.Errorf("Expected Bob's total to sum both props (15), got %d", got)
	}
	if got := s.total(t, s.carol.ID); got != 10 {
		t.Errorf("Expected Carol's total to stay 10, got %d", got)
	}
}

func TestResolvePropWithoutPicks(t *testing.T) {
	router, db, _ := testutil.NewTestRouter(t)
	p, captain := testutil.CreateTestPool(t, db, pool.StatusLocked)
	pr := testutil.AddTestProp(t, db, p.ID, "Nobody picked?", []string{"Yes", "No"}, 10)

	path := fmt.Sprintf("/api/pools/%s/props/%d/resolve", p.Code, pr.ID)
	req := testutil.MakeRequest("POST", path, score.ResolveRequest{CorrectOptionIndex: intPtr(0)}, testutil.Secret(captain.Secret))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp score.ResolveResponse
	testutil.DecodeData(t, w, &resp)
	if resp.Results == nil {
		t.Fatal("Expected an empty results list, got null")
	}
	if len(resp.Results) != 0 {
		t.Errorf("Expected no results, got %d", len(resp.Results))
	}
}

func TestResolvePropGates(t *testing.T) {
	tests := []struct {
		name         string
		poolStatus   pool.Status
		expectedCode string
	}{
		{"draft pool", pool.StatusDraft, responses.CodePoolNotLocked},
		{"open pool", pool.StatusOpen, responses.CodePoolNotLocked},
		{"completed pool", pool.StatusCompleted, responses.CodePoolCompleted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, db, _ := testutil.NewTestRouter(t)
			p, captain := testutil.CreateTestPool(t, db, tt.poolStatus)
			pr := testutil.AddTestProp(t, db, p.ID, "Too early?", []string{"Yes", "No"}, 1)

			path := fmt.Sprintf("/api/pools/%s/props/%d/resolve", p.Code, pr.ID)
			req := testutil.MakeRequest("POST", path, score.ResolveRequest{CorrectOptionIndex: intPtr(0)}, testutil.Secret(captain.Secret))
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			testutil.AssertStatus(t, w, http.StatusConflict)
			testutil.AssertCode(t, w, tt.expectedCode)
		})
	}
}

func TestResolvePropValidation(t *testing.T) {
	s := newResolveScenario(t)

	t.Run("index out of range", func(t *testing.T) {
		w := s.resolve(t, score.ResolveRequest{CorrectOptionIndex: intPtr(3)}, s.captain.Secret)
		testutil.AssertStatus(t, w, http.StatusBadRequest)
		testutil.AssertCode(t, w, responses.CodeInvalidOption)
	})

	t.Run("negative index", func(t *testing.T) {
		w := s.resolve(t, score.ResolveRequest{CorrectOptionIndex: intPtr(-1)}, s.captain.Secret)
		testutil.AssertStatus(t, w, http.StatusBadRequest)
		testutil.AssertCode(t, w, responses.CodeValidationError)
	})

	t.Run("missing index", func(t *testing.T) {
		w := s.resolve(t, map[string]interface{}{}, s.captain.Secret)
		testutil.AssertStatus(t, w, http.StatusBadRequest)
	})

	t.Run("non-captain", func(t *testing.T) {
		w := s.resolve(t, score.ResolveRequest{CorrectOptionIndex: intPtr(1)}, s.alice.Secret)
		testutil.AssertStatus(t, w, http.StatusUnauthorized)
		testutil.AssertCode(t, w, responses.CodeUnauthorized)
	})

	t.Run("unknown prop", func(t *testing.T) {
		path := fmt.Sprintf("/api/pools/%s/props/%d/resolve", s.p.Code, uint(99999))
		req := testutil.MakeRequest("POST", path, score.ResolveRequest{CorrectOptionIndex: intPtr(0)}, testutil.Secret(s.captain.Secret))
		w := httptest.NewRecorder()
		s.router.ServeHTTP(w, req)

		testutil.AssertStatus(t, w, http.StatusNotFound)
		testutil.AssertCode(t, w, responses.CodePropNotFound)
	})
}
