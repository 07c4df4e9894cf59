//go:build integration
// +build integration

package tests

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"

	"taskhub/internal/adapter/http/dto"
	"taskhub/pkg/apierrors"
	"taskhub/pkg/translator"
)

type APIIntegrationSuite struct {
	IntegrationSuiteBase
	router *gin.Engine
}

func TestAPIIntegrationSuite(t *testing.T) {
	suite.Run(t, new(APIIntegrationSuite))
}

func (s *APIIntegrationSuite) SetupTest() {
	s.ResetDatabase()
	s.router = s.NewRouter()
}

func (s *APIIntegrationSuite) do(method, target, token string, body io.Reader) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, body)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *APIIntegrationSuite) register(name, email, password string) dto.PublicUser {
	rec := s.do(http.MethodPost, "/api/register", "",
		strings.NewReader(`{"name":"`+name+`","email":"`+email+`","password":"`+password+`"}`))
	s.Require().Equal(http.StatusOK, rec.Code)

	var user dto.PublicUser
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &user))
	return user
}

func (s *APIIntegrationSuite) login(email, password string) dto.LoginResponse {
	rec := s.do(http.MethodPost, "/api/login", "",
		strings.NewReader(`{"email":"`+email+`","password":"`+password+`"}`))
	s.Require().Equal(http.StatusOK, rec.Code)

	var resp dto.LoginResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func (s *APIIntegrationSuite) TestRegisterAndLogin() {
	user := s.register("Ada", "ada@example.com", "s3cret")
	s.Require().NotEmpty(user.ID)
	s.Require().Equal("ada@example.com", user.Email)

	// Same address again conflicts.
	rec := s.do(http.MethodPost, "/api/register", "",
		strings.NewReader(`{"name":"Ada","email":"ada@example.com","password":"other"}`))
	s.Require().Equal(http.StatusConflict, rec.Code)

	var conflict apierrors.JsonErr
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &conflict))
	s.Require().Equal("User already exists", conflict.ErrDetails.Message)

	// A case variant of the address is a distinct account.
	rec = s.do(http.MethodPost, "/api/register", "",
		strings.NewReader(`{"name":"Ada","email":"Ada@example.com","password":"other"}`))
	s.Require().Equal(http.StatusOK, rec.Code)

	session := s.login("ada@example.com", "s3cret")
	s.Require().NotEmpty(session.Token)
	s.Require().Equal(user.ID, session.User.ID)

	rec = s.do(http.MethodPost, "/api/login", "",
		strings.NewReader(`{"email":"ada@example.com","password":"wrong"}`))
	s.Require().Equal(http.StatusUnauthorized, rec.Code)
}

func (s *APIIntegrationSuite) TestTasksRequireAuthentication() {
	rec := s.do(http.MethodGet, "/api/tasks", "", nil)
	s.Require().Equal(http.StatusUnauthorized, rec.Code)

	rec = s.do(http.MethodPost, "/api/tasks", "", strings.NewReader(`{"title":"x"}`))
	s.Require().Equal(http.StatusUnauthorized, rec.Code)
}

func (s *APIIntegrationSuite) TestTaskLifecycleWithAssignment() {
	s.register("Ada", "ada@example.com", "s3cret")
	assignee := s.register("Grace", "grace@example.com", "s3cret")
	creatorToken := s.login("ada@example.com", "s3cret").Token
	assigneeToken := s.login("grace@example.com", "s3cret").Token

	rec := s.do(http.MethodPost, "/api/tasks", creatorToken, strings.NewReader(`{
		"title":"Ship the task board",
		"priority":"HIGH",
		"dueDate":"2026-09-15",
		"assignedToId":"`+assignee.ID+`"
	}`))
	s.Require().Equal(http.StatusOK, rec.Code)

	var task dto.TaskItem
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &task))
	s.Require().NotEmpty(task.ID)
	s.Require().Equal("TODO", task.Status)
	s.Require().Equal("HIGH", task.Priority)
	s.Require().Equal("2026-09-15", *task.DueDate)
	s.Require().NotNil(task.AssignedTo)
	s.Require().Equal("Grace", task.AssignedTo.Name)

	// The assignment landed in the assignee's unread feed.
	rec = s.do(http.MethodGet, "/api/notifications", assigneeToken, nil)
	s.Require().Equal(http.StatusOK, rec.Code)

	var notifications []dto.NotificationItem
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &notifications))
	s.Require().Len(notifications, 1)
	s.Require().Equal("TASK_ASSIGNED", notifications[0].Type)
	s.Require().Equal("You have been assigned a new task: Ship the task board", notifications[0].Content)
	s.Require().NotNil(notifications[0].Task)
	s.Require().Equal("Ship the task board", notifications[0].Task.Title)

	// The assignee may move the task along.
	rec = s.do(http.MethodPatch, "/api/tasks/"+task.ID, assigneeToken, strings.NewReader(`{
		"title":"Ship the task board",
		"status":"IN_PROGRESS",
		"priority":"HIGH",
		"assignedToId":"`+assignee.ID+`"
	}`))
	s.Require().Equal(http.StatusOK, rec.Code)

	var updated dto.TaskItem
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &updated))
	s.Require().Equal("IN_PROGRESS", updated.Status)
	// The sparse payload cleared the unmentioned due date.
	s.Require().Nil(updated.DueDate)

	// A third user may read but not mutate.
	s.register("Eve", "eve@example.com", "s3cret")
	strangerToken := s.login("eve@example.com", "s3cret").Token

	rec = s.do(http.MethodGet, "/api/tasks/"+task.ID, strangerToken, nil)
	s.Require().Equal(http.StatusOK, rec.Code)

	rec = s.do(http.MethodPatch, "/api/tasks/"+task.ID, strangerToken, strings.NewReader(`{"title":"hijacked"}`))
	s.Require().Equal(http.StatusForbidden, rec.Code)

	// Deletion stays with the creator.
	rec = s.do(http.MethodDelete, "/api/tasks/"+task.ID, assigneeToken, nil)
	s.Require().Equal(http.StatusForbidden, rec.Code)

	rec = s.do(http.MethodDelete, "/api/tasks/"+task.ID, creatorToken, nil)
	s.Require().Equal(http.StatusNoContent, rec.Code)

	rec = s.do(http.MethodGet, "/api/tasks/"+task.ID, creatorToken, nil)
	s.Require().Equal(http.StatusNotFound, rec.Code)

	// The delete cascaded into the notification feed.
	rec = s.do(http.MethodGet, "/api/notifications", assigneeToken, nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &notifications))
	s.Require().Len(notifications, 0)
}

func (s *APIIntegrationSuite) TestNotificationMarkRead() {
	s.register("Ada", "ada@example.com", "s3cret")
	assignee := s.register("Grace", "grace@example.com", "s3cret")
	creatorToken := s.login("ada@example.com", "s3cret").Token
	assigneeToken := s.login("grace@example.com", "s3cret").Token

	rec := s.do(http.MethodPost, "/api/tasks", creatorToken, strings.NewReader(`{
		"title":"Review the release notes",
		"assignedToId":"`+assignee.ID+`"
	}`))
	s.Require().Equal(http.StatusOK, rec.Code)

	rec = s.do(http.MethodGet, "/api/notifications", assigneeToken, nil)
	s.Require().Equal(http.StatusOK, rec.Code)

	var notifications []dto.NotificationItem
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &notifications))
	s.Require().Len(notifications, 1)
	notificationID := notifications[0].ID

	// Only the recipient may flip the flag.
	rec = s.do(http.MethodPatch, "/api/notifications", creatorToken,
		strings.NewReader(`{"id":"`+notificationID+`","read":true}`))
	s.Require().Equal(http.StatusForbidden, rec.Code)

	rec = s.do(http.MethodPatch, "/api/notifications", assigneeToken,
		strings.NewReader(`{"id":"`+notificationID+`","read":true}`))
	s.Require().Equal(http.StatusOK, rec.Code)

	var marked dto.NotificationItem
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &marked))
	s.Require().True(marked.Read)

	// Marking twice is harmless.
	rec = s.do(http.MethodPatch, "/api/notifications", assigneeToken,
		strings.NewReader(`{"id":"`+notificationID+`","read":true}`))
	s.Require().Equal(http.StatusOK, rec.Code)

	// The read notification leaves the unread feed.
	rec = s.do(http.MethodGet, "/api/notifications", assigneeToken, nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &notifications))
	s.Require().Len(notifications, 0)
}

func (s *APIIntegrationSuite) TestTaskListFilters() {
	creator := s.register("Ada", "ada@example.com", "s3cret")
	assignee := s.register("Grace", "grace@example.com", "s3cret")
	creatorToken := s.login("ada@example.com", "s3cret").Token
	assigneeToken := s.login("grace@example.com", "s3cret").Token

	create := func(body string) dto.TaskItem {
		rec := s.do(http.MethodPost, "/api/tasks", creatorToken, strings.NewReader(body))
		s.Require().Equal(http.StatusOK, rec.Code)

		var task dto.TaskItem
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &task))
		return task
	}

	create(`{"title":"Deploy alpha build","status":"IN_PROGRESS","priority":"HIGH","assignedToId":"` + assignee.ID + `"}`)
	create(`{"title":"Write onboarding docs","status":"TODO","priority":"LOW"}`)

	list := func(token, query string) []dto.TaskItem {
		rec := s.do(http.MethodGet, "/api/tasks"+query, token, nil)
		s.Require().Equal(http.StatusOK, rec.Code)

		var tasks []dto.TaskItem
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &tasks))
		return tasks
	}

	s.Require().Len(list(creatorToken, ""), 2)
	s.Require().Len(list(creatorToken, "?status=IN_PROGRESS"), 1)
	s.Require().Len(list(creatorToken, "?status=ALL"), 2)
	s.Require().Len(list(creatorToken, "?priority=LOW"), 1)
	s.Require().Len(list(creatorToken, "?assignedTo=created"), 2)
	s.Require().Len(list(assigneeToken, "?assignedTo=me"), 1)
	s.Require().Len(list(assigneeToken, "?assignedTo=created"), 0)

	// Search opens the listing beyond the requester's own tasks.
	s.register("Eve", "eve@example.com", "s3cret")
	strangerToken := s.login("eve@example.com", "s3cret").Token

	s.Require().Len(list(strangerToken, ""), 0)
	found := list(strangerToken, "?search=alpha")
	s.Require().Len(found, 1)
	s.Require().Equal("Deploy alpha build", found[0].Title)
	s.Require().Equal(creator.ID, found[0].CreatedByID)
}
