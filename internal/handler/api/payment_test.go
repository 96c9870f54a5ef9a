//go:build unit

package api_test

import (
	"context"
	"net/http"
	"testing"

	"emy-orders/internal/handler/api"
	resdto "emy-orders/internal/handler/dto/response"
	"emy-orders/internal/infra/gateway"
	"emy-orders/internal/usecase/commands"
	"emy-orders/tests/common/httptest"
	commandsmock "emy-orders/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// fakeConfigReads stubs the read-side port; the single method does not
// warrant a generated mock.
type fakeConfigReads struct {
	image string
	err   error
}

func (f *fakeConfigReads) QrImage(context.Context) (string, error) {
	return f.image, f.err
}

type PaymentHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockPaymentConfigCommands
	configReads  *fakeConfigReads
	handler      *api.PaymentHandler
}

func (s *PaymentHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockPaymentConfigCommands(s.mockCtrl)
	s.configReads = &fakeConfigReads{image: "https://example.test/qr.png"}
	s.handler = api.NewPaymentHandler(s.mockCommands, s.configReads)

	s.router.GET("/api/payment/qr", s.handler.GetQrConfig)
	s.router.PUT("/api/payment/qr", s.handler.SaveQrConfig)
}

func (s *PaymentHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPaymentHandlerSuite(t *testing.T) {
	suite.Run(t, new(PaymentHandlerTestSuite))
}

func (s *PaymentHandlerTestSuite) TestGetQrConfig() {
	s.Run("success: returns the configured image", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/payment/qr", nil, "")

		var response resdto.QrConfigResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("https://example.test/qr.png", response.QrImageURL)
	})

	s.Run("error: collaborator outage maps to 502", func() {
		s.configReads.err = gateway.NewError(gateway.KindUnavailable, "timeout")

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/payment/qr", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadGateway, "Persistence service unavailable")
	})
}

func (s *PaymentHandlerTestSuite) TestSaveQrConfig() {
	url := "/api/payment/qr"
	body := map[string]string{"qr_image_url": "https://example.test/new-qr.png"}

	s.Run("success: returns the collaborator message", func() {
		s.mockCommands.EXPECT().
			SaveQrImage(gomock.Any(), "https://example.test/new-qr.png").
			Return("Configuración guardada", nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, body, "")

		var response map[string]string
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("Configuración guardada", response["message"])
	})

	s.Run("success: a silent collaborator gets a default message", func() {
		s.mockCommands.EXPECT().
			SaveQrImage(gomock.Any(), "https://example.test/new-qr.png").
			Return("", nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, body, "")

		var response map[string]string
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("QR config saved", response["message"])
	})

	s.Run("error: 400 on missing qr_image_url", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]string{}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: 400 when the command rejects an empty image", func() {
		s.mockCommands.EXPECT().
			SaveQrImage(gomock.Any(), "https://example.test/new-qr.png").
			Return("", commands.ErrEmptyQrImage).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "QR image must not be empty")
	})
}
