//go:build unit

package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	nethttptest "net/http/httptest"
	"testing"

	"emy-orders/internal/domain/order"
	"emy-orders/internal/domain/user"
	"emy-orders/internal/handler/api"
	resdto "emy-orders/internal/handler/dto/response"
	"emy-orders/internal/infra/gateway"
	"emy-orders/internal/usecase/commands"
	"emy-orders/tests/common/httptest"
	commandsmock "emy-orders/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const testSessionID = "session-1"

type CheckoutHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCheckout *commandsmock.MockCheckoutCommands
	mockCart     *commandsmock.MockCartCommands
	handler      *api.CheckoutHandler
}

func (s *CheckoutHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCheckout = commandsmock.NewMockCheckoutCommands(s.mockCtrl)
	s.mockCart = commandsmock.NewMockCartCommands(s.mockCtrl)
	s.handler = api.NewCheckoutHandler(s.mockCheckout, s.mockCart)

	s.router.POST("/api/checkout", func(c *gin.Context) {
		// Mock session and auth middleware behavior
		c.Set("session_id", testSessionID)
		if uid := c.GetHeader("X-Test-User-ID"); uid != "" {
			c.Set("user_id", uid)
		}
		if role := c.GetHeader("X-Test-User-Role"); role != "" {
			c.Set("user_role", user.Role(role))
		}
		s.handler.Checkout(c)
	})
}

func (s *CheckoutHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCheckoutHandlerSuite(t *testing.T) {
	suite.Run(t, new(CheckoutHandlerTestSuite))
}

// performAuthed sends a checkout request as a logged-in user, letting
// the stub middleware above populate the auth context.
func (s *CheckoutHandlerTestSuite) performAuthed(body any, userID, role string) *nethttptest.ResponseRecorder {
	s.T().Helper()

	jsonBody, err := json.Marshal(body)
	s.Require().NoError(err)

	req := nethttptest.NewRequest(http.MethodPost, "/api/checkout", bytes.NewBuffer(jsonBody))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Test-User-ID", userID)
	req.Header.Set("X-Test-User-Role", role)

	w := nethttptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *CheckoutHandlerTestSuite) TestCheckout() {
	url := "/api/checkout"
	cashBody := map[string]string{"payment_method": "Efectivo"}
	qrBody := map[string]string{"payment_method": "QR"}

	s.Run("success: cash checkout confirms immediately and clears the cart", func() {
		s.mockCheckout.EXPECT().
			Checkout(gomock.Any(), testSessionID, order.PaymentCash, gomock.Any()).
			Return(&commands.CheckoutResult{
				Kind:    commands.OutcomeConfirmed,
				SaleID:  "sale-1",
				Total:   decimal.RequireFromString("45.00"),
				Message: "Venta registrada",
			}, nil).Times(1)
		s.mockCart.EXPECT().Clear(gomock.Any(), testSessionID).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, cashBody, "")

		var response resdto.CheckoutResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal("confirmed", response.Status)
		s.Equal("sale-1", response.SaleID)
		s.Equal("45.00", response.Total)
	})

	s.Run("success: QR checkout creates a pending order", func() {
		s.mockCheckout.EXPECT().
			Checkout(gomock.Any(), testSessionID, order.PaymentQR, gomock.Any()).
			Return(&commands.CheckoutResult{
				Kind:    commands.OutcomePendingApproval,
				Total:   decimal.RequireFromString("25.50"),
				Message: "Pedido pendiente de aprobación",
			}, nil).Times(1)
		s.mockCart.EXPECT().Clear(gomock.Any(), testSessionID).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, qrBody, "")

		var response resdto.CheckoutResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal("pending_approval", response.Status)
		s.Empty(response.SaleID)
	})

	s.Run("attribution: anonymous checkout is recorded as guest", func() {
		var gotCustomer *string
		s.mockCheckout.EXPECT().
			Checkout(gomock.Any(), testSessionID, order.PaymentCash, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, _ order.PaymentMethod, customerID *string) (*commands.CheckoutResult, error) {
				gotCustomer = customerID
				return &commands.CheckoutResult{Kind: commands.OutcomeConfirmed}, nil
			}).Times(1)
		s.mockCart.EXPECT().Clear(gomock.Any(), testSessionID).Return(nil).Times(1)

		httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, cashBody, "")

		s.Require().NotNil(gotCustomer)
		s.Equal(order.GuestCustomerID, *gotCustomer)
	})

	s.Run("attribution: logged-in customer carries their own ID", func() {
		var gotCustomer *string
		s.mockCheckout.EXPECT().
			Checkout(gomock.Any(), testSessionID, order.PaymentQR, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, _ order.PaymentMethod, customerID *string) (*commands.CheckoutResult, error) {
				gotCustomer = customerID
				return &commands.CheckoutResult{Kind: commands.OutcomePendingApproval}, nil
			}).Times(1)
		s.mockCart.EXPECT().Clear(gomock.Any(), testSessionID).Return(nil).Times(1)

		w := s.performAuthed(qrBody, "7", "customer")
		s.Equal(http.StatusCreated, w.Code)

		s.Require().NotNil(gotCustomer)
		s.Equal("7", *gotCustomer)
	})

	s.Run("attribution: staff counter sale is unattributed", func() {
		var gotCustomer *string
		called := false
		s.mockCheckout.EXPECT().
			Checkout(gomock.Any(), testSessionID, order.PaymentCash, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, _ order.PaymentMethod, customerID *string) (*commands.CheckoutResult, error) {
				called = true
				gotCustomer = customerID
				return &commands.CheckoutResult{Kind: commands.OutcomeConfirmed}, nil
			}).Times(1)
		s.mockCart.EXPECT().Clear(gomock.Any(), testSessionID).Return(nil).Times(1)

		w := s.performAuthed(cashBody, "admin-1", "staff")
		s.Equal(http.StatusCreated, w.Code)

		s.True(called)
		s.Nil(gotCustomer)
	})

	s.Run("error: 400 on unknown payment method", func() {
		body := map[string]string{"payment_method": "Tarjeta"}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid payment method")
	})

	s.Run("error: 422 on empty cart, cart untouched", func() {
		s.mockCheckout.EXPECT().
			Checkout(gomock.Any(), testSessionID, order.PaymentCash, gomock.Any()).
			Return(nil, commands.ErrEmptyCart).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, cashBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Cart is empty")
	})

	s.Run("error: collaborator rejection surfaces its message, cart untouched", func() {
		s.mockCheckout.EXPECT().
			Checkout(gomock.Any(), testSessionID, order.PaymentCash, gomock.Any()).
			Return(nil, gateway.NewError(gateway.KindRejected, "Producto no disponible")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, cashBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Producto no disponible")
	})

	s.Run("error: collaborator outage maps to 502, cart untouched", func() {
		s.mockCheckout.EXPECT().
			Checkout(gomock.Any(), testSessionID, order.PaymentCash, gomock.Any()).
			Return(nil, gateway.NewError(gateway.KindUnavailable, "timeout")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, cashBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadGateway, "Persistence service unavailable")
	})
}
