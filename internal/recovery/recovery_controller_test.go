package recovery_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/propline/proppool/internal/pool"
	"github.com/propline/proppool/internal/recovery"
	"github.com/propline/proppool/internal/testutil"
	"github.com/propline/proppool/pkg/responses"
)

func mintPath(code string, participantID uint) string {
	return fmt.Sprintf("/api/pools/%s/participants/%d/recovery", code, participantID)
}

func TestMintToken(t *testing.T) {
	router, db, _ := testutil.NewTestRouter(t)
	p, captain := testutil.CreateTestPool(t, db, pool.StatusOpen)
	player := testutil.AddTestParticipant(t, db, p.ID, "Bob")

	t.Run("captain mints for a player", func(t *testing.T) {
		req := testutil.MakeRequest("POST", mintPath(p.Code, player.ID), nil, testutil.Secret(captain.Secret))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		testutil.AssertStatus(t, w, http.StatusCreated)

		var minted recovery.MintResponse
		testutil.DecodeData(t, w, &minted)
		if minted.Token == "" {
			t.Fatal("Expected a token")
		}
		if !strings.Contains(minted.RecoveryURL, p.Code) || !strings.Contains(minted.RecoveryURL, minted.Token) {
			t.Errorf("Expected the recovery URL to carry the pool code and token, got %s", minted.RecoveryURL)
		}
		if !minted.ExpiresAt.After(time.Now()) {
			t.Error("Expected the token to expire in the future")
		}

		var count int64
		db.Table("recovery_tokens").Where("pool_id = ? AND participant_id = ?", p.ID, player.ID).Count(&count)
		if count != 1 {
			t.Errorf("Expected one token row, found %d", count)
		}
	})

	t.Run("player cannot mint", func(t *testing.T) {
		req := testutil.MakeRequest("POST", mintPath(p.Code, player.ID), nil, testutil.Secret(player.Secret))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		testutil.AssertStatus(t, w, http.StatusUnauthorized)
		testutil.AssertCode(t, w, responses.CodeUnauthorized)
	})

	t.Run("unknown participant", func(t *testing.T) {
		req := testutil.MakeRequest("POST", mintPath(p.Code, uint(99999)), nil, testutil.Secret(captain.Secret))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		testutil.AssertStatus(t, w, http.StatusNotFound)
		testutil.AssertCode(t, w, responses.CodeParticipantNotFound)
	})

	t.Run("removed participant", func(t *testing.T) {
		removed := testutil.AddTestParticipant(t, db, p.ID, "Gone")
		if err := db.Model(&pool.Participant{}).Where("id = ?", removed.ID).
			Update("status", pool.ParticipantRemoved).Error; err != nil {
			t.Fatalf("Failed to remove participant: %v", err)
		}

		req := testutil.MakeRequest("POST", mintPath(p.Code, removed.ID), nil, testutil.Secret(captain.Secret))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		testutil.AssertStatus(t, w, http.StatusBadRequest)
	})

	t.Run("unknown pool", func(t *testing.T) {
		req := testutil.MakeRequest("POST", mintPath("NOSUCHPL", player.ID), nil, testutil.Secret(captain.Secret))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		testutil.AssertStatus(t, w, http.StatusNotFound)
	})
}

// mintToken mints through the API and returns the raw token string.
func mintToken(t *testing.T, router http.Handler, code, captainSecret string, participantID uint) string {
	t.Helper()

	req := testutil.MakeRequest("POST", mintPath(code, participantID), nil, testutil.Secret(captainSecret))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	testutil.AssertStatus(t, w, http.StatusCreated)

	var minted recovery.MintResponse
	testutil.DecodeData(t, w, &minted)
	return minted.Token
}

func TestRedeem(t *testing.T) {
	router, db, _ := testutil.NewTestRouter(t)
	p, captain := testutil.CreateTestPool(t, db, pool.StatusOpen)
	player := testutil.AddTestParticipant(t, db, p.ID, "Bob")
	token := mintToken(t, router, p.Code, captain.Secret, player.ID)

	t.Run("valid token recovers the secret", func(t *testing.T) {
		req := testutil.MakeRequest("POST", "/api/pools/"+p.Code+"/recover", recovery.RedeemRequest{Token: token}, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		testutil.AssertStatus(t, w, http.StatusOK)

		var redeemed recovery.RedeemResponse
		testutil.DecodeData(t, w, &redeemed)
		if redeemed.Secret != player.Secret {
			t.Error("Expected the participant's secret back")
		}
		if redeemed.IsCaptain {
			t.Error("Bob is not the captain")
		}
		if redeemed.PoolCode != p.Code {
			t.Errorf("Expected pool code %s, got %s", p.Code, redeemed.PoolCode)
		}

		sessionCookie := false
		for _, cookie := range w.Result().Cookies() {
			if cookie.Name == "pool_session" && cookie.Value != "" {
				sessionCookie = true
			}
		}
		if !sessionCookie {
			t.Error("Expected redemption to set the session cookie")
		}

		// The recovered secret authenticates normally.
		meReq := testutil.MakeRequest("GET", "/api/pools/"+p.Code+"/me", nil, testutil.Secret(redeemed.Secret))
		meRec := httptest.NewRecorder()
		router.ServeHTTP(meRec, meReq)
		testutil.AssertStatus(t, meRec, http.StatusOK)
	})

	t.Run("tokens are single use", func(t *testing.T) {
		req := testutil.MakeRequest("POST", "/api/pools/"+p.Code+"/recover", recovery.RedeemRequest{Token: token}, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		testutil.AssertStatus(t, w, http.StatusUnauthorized)
		testutil.AssertCode(t, w, responses.CodeInvalidToken)
	})
}

func TestRedeemRejectsBadTokens(t *testing.T) {
	router, db, _ := testutil.NewTestRouter(t)
	p, captain := testutil.CreateTestPool(t, db, pool.StatusOpen)
	player := testutil.AddTestParticipant(t, db, p.ID, "Bob")

	t.Run("garbage token", func(t *testing.T) {
		req := testutil.MakeRequest("POST", "/api/pools/"+p.Code+"/recover",
			recovery.RedeemRequest{Token: "not-a-token"}, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		testutil.AssertStatus(t, w, http.StatusUnauthorized)
		testutil.AssertCode(t, w, responses.CodeInvalidToken)
	})

	t.Run("token minted for another pool", func(t *testing.T) {
		token := mintToken(t, router, p.Code, captain.Secret, player.ID)
		other, _ := testutil.CreateTestPool(t, db, pool.StatusOpen)

		req := testutil.MakeRequest("POST", "/api/pools/"+other.Code+"/recover",
			recovery.RedeemRequest{Token: token}, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		testutil.AssertStatus(t, w, http.StatusUnauthorized)
		testutil.AssertCode(t, w, responses.CodeInvalidToken)
	})

	t.Run("expired token", func(t *testing.T) {
		expired := recovery.RecoveryToken{
			Token:         "expired-token-value",
			PoolID:        p.ID,
			ParticipantID: player.ID,
			ExpiresAt:     time.Now().Add(-time.Minute),
		}
		if err := db.Create(&expired).Error; err != nil {
			t.Fatalf("Failed to insert expired token: %v", err)
		}

		req := testutil.MakeRequest("POST", "/api/pools/"+p.Code+"/recover",
			recovery.RedeemRequest{Token: expired.Token}, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		testutil.AssertStatus(t, w, http.StatusUnauthorized)
		testutil.AssertCode(t, w, responses.CodeInvalidToken)

		// Redemption sweeps expired rows.
		var count int64
		db.Table("recovery_tokens").Where("token = ?", expired.Token).Count(&count)
		if count != 0 {
			t.Error("Expected the expired token row to be purged")
		}
	})

	t.Run("token for a removed participant", func(t *testing.T) {
		victim := testutil.AddTestParticipant(t, db, p.ID, "Victim")
		token := mintToken(t, router, p.Code, captain.Secret, victim.ID)
		if err := db.Model(&pool.Participant{}).Where("id = ?", victim.ID).
			Update("status", pool.ParticipantRemoved).Error; err != nil {
			t.Fatalf("Failed to remove participant: %v", err)
		}

		req := testutil.MakeRequest("POST", "/api/pools/"+p.Code+"/recover",
			recovery.RedeemRequest{Token: token}, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		testutil.AssertStatus(t, w, http.StatusUnauthorized)
		testutil.AssertCode(t, w, responses.CodeInvalidToken)
	})

	t.Run("missing token field", func(t *testing.T) {
		req := testutil.MakeRequest("POST", "/api/pools/"+p.Code+"/recover", map[string]string{}, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		testutil.AssertStatus(t, w, http.StatusBadRequest)
		testutil.AssertCode(t, w, responses.CodeValidationError)
	})
}
