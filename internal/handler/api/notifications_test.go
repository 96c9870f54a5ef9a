//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"emy-orders/internal/handler/api"
	resdto "emy-orders/internal/handler/dto/response"
	"emy-orders/internal/infra/gateway"
	"emy-orders/internal/usecase/queries"
	"emy-orders/tests/common/httptest"
	commandsmock "emy-orders/tests/mock/commands"
	queriesmock "emy-orders/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type NotificationsHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockNotificationCommands
	mockQueries  *queriesmock.MockNotificationQueries
	handler      *api.NotificationsHandler
}

func (s *NotificationsHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockNotificationCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockNotificationQueries(s.mockCtrl)
	s.handler = api.NewNotificationsHandler(s.mockCommands, s.mockQueries)

	// Mock auth middleware behavior
	asUser := func(handler gin.HandlerFunc) gin.HandlerFunc {
		return func(c *gin.Context) {
			c.Set("user_id", "7")
			handler(c)
		}
	}
	s.router.GET("/api/notifications", asUser(s.handler.Fetch))
	s.router.GET("/api/notifications/count", asUser(s.handler.Count))
	s.router.POST("/api/notifications", s.handler.Send)
}

func (s *NotificationsHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestNotificationsHandlerSuite(t *testing.T) {
	suite.Run(t, new(NotificationsHandlerTestSuite))
}

func (s *NotificationsHandlerTestSuite) TestFetch() {
	url := "/api/notifications"

	s.Run("success: returns the consumed batch", func() {
		unread := []queries.NotificationView{
			{ID: "n2", UserID: "7", Message: "segundo", Date: time.Date(2024, 3, 5, 13, 0, 0, 0, time.UTC)},
			{ID: "n1", UserID: "7", Message: "primero", Date: time.Date(2024, 3, 5, 12, 0, 0, 0, time.UTC)},
		}
		s.mockCommands.EXPECT().FetchAndConsume(gomock.Any(), "7").Return(unread, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response []resdto.NotificationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response, 2)
		s.Equal("n2", response[0].ID)
		s.Equal("segundo", response[0].Message)
	})

	s.Run("success: nothing unread renders an empty array", func() {
		s.mockCommands.EXPECT().FetchAndConsume(gomock.Any(), "7").Return(nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
		s.JSONEq("[]", rec.Body.String())
	})

	s.Run("error: collaborator outage maps to 502", func() {
		s.mockCommands.EXPECT().FetchAndConsume(gomock.Any(), "7").
			Return(nil, gateway.NewError(gateway.KindUnavailable, "timeout")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadGateway, "Persistence service unavailable")
	})
}

func (s *NotificationsHandlerTestSuite) TestCount() {
	s.Run("success: returns the unread count", func() {
		s.mockQueries.EXPECT().UnreadCount(gomock.Any(), "7").Return(3, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/notifications/count", nil, "")

		var response map[string]int
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(3, response["count"])
	})
}

func (s *NotificationsHandlerTestSuite) TestSend() {
	url := "/api/notifications"

	s.Run("success: returns 201 Created", func() {
		s.mockCommands.EXPECT().Notify(gomock.Any(), "7", "Su pedido está listo").Return(nil).Times(1)

		body := map[string]string{"user_id": "7", "message": "Su pedido está listo"}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")

		var response map[string]string
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal("Notification sent", response["message"])
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []struct {
			name string
			body map[string]string
		}{
			{name: "missing user_id", body: map[string]string{"message": "hola"}},
			{name: "missing message", body: map[string]string{"user_id": "7"}},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, tc.body, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
			})
		}
	})
}
