package services

import (
	"fmt"
	"sync"
	"testing"

	"contacts_backend/internal/email"
	"contacts_backend/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// setupTestDB opens an isolated in-memory database and migrates the schema.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Contact{}))
	return db
}

// recordingMailer captures verification sends so tests can wait on them.
type recordingMailer struct {
	mu    sync.Mutex
	sent  []sentMail
	dings chan struct{}
}

type sentMail struct {
	To    string
	Token string
}

func newRecordingMailer() *recordingMailer {
	return &recordingMailer{dings: make(chan struct{}, 16)}
}

func (m *recordingMailer) Send(e *email.Email) error { return nil }

func (m *recordingMailer) SendVerification(to, token string) error {
	m.mu.Lock()
	m.sent = append(m.sent, sentMail{To: to, Token: token})
	m.mu.Unlock()
	m.dings <- struct{}{}
	return nil
}

func (m *recordingMailer) Validate() error { return nil }
func (m *recordingMailer) Close() error    { return nil }

func (m *recordingMailer) lastSent() (sentMail, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.sent) == 0 {
		return sentMail{}, false
	}
	return m.sent[len(m.sent)-1], true
}
