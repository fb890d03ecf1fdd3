package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"go.uber.org/zap"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/propline/proppool/config"
	"github.com/propline/proppool/internal/pick"
	"github.com/propline/proppool/internal/pool"
	"github.com/propline/proppool/internal/prop"
	"github.com/propline/proppool/internal/recovery"
	"github.com/propline/proppool/routes"
)

// SetupTestDB opens a fresh in-memory database with the full schema.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("Failed to access underlying connection: %v", err)
	}
	// One connection keeps every query on the same in-memory database.
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&pool.Pool{}, &pool.Participant{},
		&prop.Prop{}, &pick.Pick{},
		&recovery.RecoveryToken{},
	)
	if err != nil {
		t.Fatalf("AutoMigrate failed: %v", err)
	}

	return db
}

// GetTestConfig returns a standard test configuration.
func GetTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.App.Env = "test"
	cfg.App.Port = "0"
	cfg.App.FrontendURL = "http://localhost:5173"
	cfg.Session.Secret = "test-session-secret"
	cfg.Session.TTLHours = 1
	cfg.Recovery.TTLMinutes = 60
	return cfg
}

// NewTestRouter wires the full route tree against an isolated database.
func NewTestRouter(t *testing.T) (*gin.Engine, *gorm.DB, *config.Config) {
	t.Helper()

	gin.SetMode(gin.TestMode)
	db := SetupTestDB(t)
	cfg := GetTestConfig()
	router := routes.SetupRoutes(db, cfg, zap.NewNop())
	return router, db, cfg
}

// CreateTestPool inserts a pool with its captain participant and returns
// both. The captain secret doubles as the pool's captain credential.
func CreateTestPool(t *testing.T, db *gorm.DB, status pool.Status) (*pool.Pool, *pool.Participant) {
	t.Helper()

	secret, err := pool.NewSecret()
	if err != nil {
		t.Fatalf("Failed to mint captain secret: %v", err)
	}
	code, err := pool.NewInviteCode()
	if err != nil {
		t.Fatalf("Failed to mint invite code: %v", err)
	}

	p := &pool.Pool{
		Name:          "Test Pool",
		Description:   "A test pool",
		Code:          code,
		CaptainName:   "Captain",
		CaptainSecret: secret,
		Status:        status,
	}
	now := time.Now()
	switch status {
	case pool.StatusLocked:
		p.LockedAt = &now
	case pool.StatusCompleted:
		p.LockedAt = &now
		p.CompletedAt = &now
	}
	if err := db.Create(p).Error; err != nil {
		t.Fatalf("Failed to create test pool: %v", err)
	}

	captain := &pool.Participant{
		PoolID:   p.ID,
		Name:     "Captain",
		Secret:   secret,
		Status:   pool.ParticipantActive,
		JoinedAt: now,
	}
	if err := db.Create(captain).Error; err != nil {
		t.Fatalf("Failed to create test captain: %v", err)
	}

	return p, captain
}

// AddTestParticipant joins a named participant to the pool directly.
func AddTestParticipant(t *testing.T, db *gorm.DB, poolID uint, name string) *pool.Participant {
	t.Helper()

	secret, err := pool.NewSecret()
	if err != nil {
		t.Fatalf("Failed to mint participant secret: %v", err)
	}

	participant := &pool.Participant{
		PoolID:   poolID,
		Name:     name,
		Secret:   secret,
		Status:   pool.ParticipantActive,
		JoinedAt: time.Now(),
	}
	if err := db.Create(participant).Error; err != nil {
		t.Fatalf("Failed to create test participant %q: %v", name, err)
	}

	return participant
}

// AddTestProp inserts a prop at the end of the pool's display order.
func AddTestProp(t *testing.T, db *gorm.DB, poolID uint, question string, options []string, pointValue int) *prop.Prop {
	t.Helper()

	var order int
	err := db.Model(&prop.Prop{}).
		Where("pool_id = ?", poolID).
		Select("COALESCE(MAX(display_order), -1) + 1").
		Scan(&order).Error
	if err != nil {
		t.Fatalf("Failed to compute display order: %v", err)
	}

	pr := &prop.Prop{
		PoolID:       poolID,
		Question:     question,
		Options:      options,
		PointValue:   pointValue,
		DisplayOrder: order,
	}
	if err := db.Create(pr).Error; err != nil {
		t.Fatalf("Failed to create test prop: %v", err)
	}

	return pr
}

// SubmitTestPick inserts a pick row directly.
func SubmitTestPick(t *testing.T, db *gorm.DB, poolID, participantID, propID uint, optionIndex int) *pick.Pick {
	t.Helper()

	pk := &pick.Pick{
		PoolID:              poolID,
		ParticipantID:       participantID,
		PropID:              propID,
		SelectedOptionIndex: optionIndex,
	}
	if err := db.Create(pk).Error; err != nil {
		t.Fatalf("Failed to create test pick: %v", err)
	}

	return pk
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// Secret builds the header map presenting a participant secret.
func Secret(secret string) map[string]string {
	return map[string]string{"X-Pool-Secret": secret}
}

// Envelope mirrors the response wrapper for assertions.
type Envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Code    string          `json:"code"`
	Data    json.RawMessage `json:"data"`
	Errors  json.RawMessage `json:"errors"`
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}

// AssertCode decodes the envelope and checks the machine-readable code.
func AssertCode(t *testing.T, w *httptest.ResponseRecorder, expected string) Envelope {
	t.Helper()
	var envelope Envelope
	AssertJSON(t, w, &envelope)
	if envelope.Code != expected {
		t.Errorf("Expected code %q, got %q. Body: %s", expected, envelope.Code, w.Body.String())
	}
	return envelope
}

// DecodeData unmarshals the envelope's data section into v.
func DecodeData(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	var envelope Envelope
	AssertJSON(t, w, &envelope)
	if err := json.Unmarshal(envelope.Data, v); err != nil {
		t.Fatalf("Failed to decode data section: %v. Body: %s", err, w.Body.String())
	}
}
