package report

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/forumhub/forum-hub-backend/internal/database"
	"github.com/forumhub/forum-hub-backend/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func TestWriteTopicsReport(t *testing.T) {
	db := newTestDB(t)
	svc := NewReportService(db)

	user := &models.User{Name: "Alice", Username: "alice", Email: "alice@example.com", PasswordHash: "x"}
	require.NoError(t, db.Create(user).Error)
	course := &models.Course{Name: "Go Basics"}
	require.NoError(t, db.Create(course).Error)
	topic := &models.Topic{
		Title:    "How do I configure GORM?",
		Message:  "I cannot figure out how to configure connection pooling.",
		Status:   models.TopicStatusOpen,
		AuthorID: user.ID,
		CourseID: course.ID,
	}
	require.NoError(t, db.Create(topic).Error)
	require.NoError(t, db.Create(&models.Answer{
		Message: "Set SetMaxOpenConns.", AuthorID: user.ID, TopicID: topic.ID,
	}).Error)

	var buf bytes.Buffer
	require.NoError(t, svc.WriteTopicsReport(&buf))
	require.NotZero(t, buf.Len())

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Topics")
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, []string{"ID", "Title", "Course", "Author", "Status", "Answers", "Created At"}, rows[0])
	assert.Equal(t, "How do I configure GORM?", rows[1][1])
	assert.Equal(t, "Go Basics", rows[1][2])
	assert.Equal(t, "alice", rows[1][3])
	assert.Equal(t, "open", rows[1][4])
	assert.Equal(t, "1", rows[1][5])
}

func TestWriteTopicsReportEmpty(t *testing.T) {
	db := newTestDB(t)
	svc := NewReportService(db)

	var buf bytes.Buffer
	require.NoError(t, svc.WriteTopicsReport(&buf))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Topics")
	require.NoError(t, err)
	require.Len(t, rows, 1)
}
