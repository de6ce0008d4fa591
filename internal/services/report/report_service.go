package report

import (
	"fmt"
	"io"

	"github.com/forumhub/forum-hub-backend/internal/database/repository"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// Service builds Excel exports of forum data
type Service struct {
	topicRepo *repository.TopicRepository
}

// NewReportService creates a new report service instance
func NewReportService(db *gorm.DB) *Service {
	return &Service{
		topicRepo: repository.NewTopicRepository(db),
	}
}

const topicsSheet = "Topics"

// WriteTopicsReport writes an .xlsx listing of all topics to w, newest first
func (s *Service) WriteTopicsReport(w io.Writer) error {
	topics, err := s.topicRepo.GetAll()
	if err != nil {
		return fmt.Errorf("failed to get topics: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(topicsSheet)
	if err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"D9D9D9"},
			Pattern: 1,
		},
	})

	headers := []string{"ID", "Title", "Course", "Author", "Status", "Answers", "Created At"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(topicsSheet, cell, header)
		f.SetCellStyle(topicsSheet, cell, cell, headerStyle)
	}

	for row, topic := range topics {
		values := []interface{}{
			topic.ID,
			topic.Title,
			topic.Course.Name,
			topic.Author.Username,
			topic.Status,
			len(topic.Answers),
			topic.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(topicsSheet, cell, value)
		}
	}

	f.SetColWidth(topicsSheet, "B", "B", 40)
	f.SetColWidth(topicsSheet, "G", "G", 20)

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}
