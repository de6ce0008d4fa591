package services

import (
	"testing"

	"github.com/forumhub/forum-hub-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAnswer(t *testing.T) {
	db := newTestDB(t)
	topicSvc := NewTopicService(db)
	answerSvc := NewAnswerService(db)
	author := createUser(t, db, "alice")
	helper := createUser(t, db, "bob")
	course := createCourse(t, db, "Go Basics")

	topic, err := topicSvc.CreateTopic(principalFor(author), validTopicRequest(course.ID))
	require.NoError(t, err)

	answer, err := answerSvc.CreateAnswer(principalFor(helper), &models.CreateAnswerRequest{
		Message: "Set SetMaxOpenConns on the underlying sql.DB.",
		TopicID: topic.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, helper.ID, answer.AuthorID)
	assert.Equal(t, "bob", answer.Author.Username)
	assert.Equal(t, topic.ID, answer.TopicID)
	assert.False(t, answer.Solution)
}

func TestCreateAnswerUnknownTopic(t *testing.T) {
	db := newTestDB(t)
	svc := NewAnswerService(db)
	helper := createUser(t, db, "bob")

	_, err := svc.CreateAnswer(principalFor(helper), &models.CreateAnswerRequest{
		Message: "Replying into the void.",
		TopicID: 777,
	})
	var notFoundErr *models.NotFoundError
	require.ErrorAs(t, err, &notFoundErr)
	assert.Equal(t, "Topic not found with id: 777", notFoundErr.Message)

	var count int64
	require.NoError(t, db.Model(&models.Answer{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestUpdateAnswerAuthorOnly(t *testing.T) {
	db := newTestDB(t)
	topicSvc := NewTopicService(db)
	answerSvc := NewAnswerService(db)
	author := createUser(t, db, "alice")
	helper := createUser(t, db, "bob")
	course := createCourse(t, db, "Go Basics")

	topic, err := topicSvc.CreateTopic(principalFor(author), validTopicRequest(course.ID))
	require.NoError(t, err)

	answer, err := answerSvc.CreateAnswer(principalFor(helper), &models.CreateAnswerRequest{
		Message: "Set SetMaxOpenConns on the underlying sql.DB.",
		TopicID: topic.ID,
	})
	require.NoError(t, err)

	// The topic author cannot edit someone else's answer
	var forbiddenErr *models.ForbiddenError
	_, err = answerSvc.UpdateAnswer(principalFor(author), answer.ID, &models.UpdateAnswerRequest{
		Message: "Rewritten by the topic author.",
	})
	require.ErrorAs(t, err, &forbiddenErr)

	updated, err := answerSvc.UpdateAnswer(principalFor(helper), answer.ID, &models.UpdateAnswerRequest{
		Message: "Also consider SetMaxIdleConns.",
	})
	require.NoError(t, err)
	assert.Equal(t, "Also consider SetMaxIdleConns.", updated.Message)
}

func TestDeleteAnswerAuthorOnly(t *testing.T) {
	db := newTestDB(t)
	topicSvc := NewTopicService(db)
	answerSvc := NewAnswerService(db)
	author := createUser(t, db, "alice")
	helper := createUser(t, db, "bob")
	course := createCourse(t, db, "Go Basics")

	topic, err := topicSvc.CreateTopic(principalFor(author), validTopicRequest(course.ID))
	require.NoError(t, err)

	answer, err := answerSvc.CreateAnswer(principalFor(helper), &models.CreateAnswerRequest{
		Message: "Set SetMaxOpenConns on the underlying sql.DB.",
		TopicID: topic.ID,
	})
	require.NoError(t, err)

	var forbiddenErr *models.ForbiddenError
	err = answerSvc.DeleteAnswer(principalFor(author), answer.ID)
	require.ErrorAs(t, err, &forbiddenErr)

	require.NoError(t, answerSvc.DeleteAnswer(principalFor(helper), answer.ID))

	var notFoundErr *models.NotFoundError
	err = answerSvc.DeleteAnswer(principalFor(helper), answer.ID)
	require.ErrorAs(t, err, &notFoundErr)
}

func TestMarkSolutionClosesTopic(t *testing.T) {
	db := newTestDB(t)
	topicSvc := NewTopicService(db)
	answerSvc := NewAnswerService(db)
	author := createUser(t, db, "alice")
	helper := createUser(t, db, "bob")
	course := createCourse(t, db, "Go Basics")

	topic, err := topicSvc.CreateTopic(principalFor(author), validTopicRequest(course.ID))
	require.NoError(t, err)

	answer, err := answerSvc.CreateAnswer(principalFor(helper), &models.CreateAnswerRequest{
		Message: "Set SetMaxOpenConns on the underlying sql.DB.",
		TopicID: topic.ID,
	})
	require.NoError(t, err)

	marked, err := answerSvc.MarkSolution(principalFor(author), answer.ID)
	require.NoError(t, err)
	assert.True(t, marked.Solution)

	closed, err := topicSvc.GetTopicByID(topic.ID)
	require.NoError(t, err)
	assert.Equal(t, models.TopicStatusClosed, closed.Status)
}

func TestMarkSolutionTopicAuthorOnly(t *testing.T) {
	db := newTestDB(t)
	topicSvc := NewTopicService(db)
	answerSvc := NewAnswerService(db)
	author := createUser(t, db, "alice")
	helper := createUser(t, db, "bob")
	course := createCourse(t, db, "Go Basics")

	topic, err := topicSvc.CreateTopic(principalFor(author), validTopicRequest(course.ID))
	require.NoError(t, err)

	answer, err := answerSvc.CreateAnswer(principalFor(helper), &models.CreateAnswerRequest{
		Message: "Set SetMaxOpenConns on the underlying sql.DB.",
		TopicID: topic.ID,
	})
	require.NoError(t, err)

	// Even the answer's own author cannot accept it as the solution
	var forbiddenErr *models.ForbiddenError
	_, err = answerSvc.MarkSolution(principalFor(helper), answer.ID)
	require.ErrorAs(t, err, &forbiddenErr)

	// Neither side of the rejected write stuck
	fresh, err := answerSvc.answerRepo.GetByID(answer.ID)
	require.NoError(t, err)
	assert.False(t, fresh.Solution)

	openTopic, err := topicSvc.GetTopicByID(topic.ID)
	require.NoError(t, err)
	assert.Equal(t, models.TopicStatusOpen, openTopic.Status)
}

func TestMarkSolutionUnknownAnswer(t *testing.T) {
	db := newTestDB(t)
	svc := NewAnswerService(db)
	author := createUser(t, db, "alice")

	var notFoundErr *models.NotFoundError
	_, err := svc.MarkSolution(principalFor(author), 555)
	require.ErrorAs(t, err, &notFoundErr)
	assert.Equal(t, "Answer not found with id: 555", notFoundErr.Message)
}
