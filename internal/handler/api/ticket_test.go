//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"eventdeck/internal/domain/ticket"
	"eventdeck/internal/handler/api"
	reqdto "eventdeck/internal/handler/dto/request"
	resdto "eventdeck/internal/handler/dto/response"
	"eventdeck/internal/usecase/commands"
	"eventdeck/internal/usecase/queries"
	"eventdeck/tests/common/builder"
	"eventdeck/tests/common/httptest"
	"eventdeck/tests/common/testutil"
	commandsmock "eventdeck/tests/mock/commands"
	queriesmock "eventdeck/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type TicketHandlerTestSuite struct {
	suite.Suite
	router          *gin.Engine
	mockCtrl        *gomock.Controller
	mockTicketTypes *commandsmock.MockTicketTypeCommands
	mockIssuance    *commandsmock.MockIssuanceCommands
	mockInstances   *commandsmock.MockInstanceCommands
	mockQueries     *queriesmock.MockTicketQueries
	handler         *api.TicketHandler
	actorID         uuid.UUID
}

func (s *TicketHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockTicketTypes = commandsmock.NewMockTicketTypeCommands(s.mockCtrl)
	s.mockIssuance = commandsmock.NewMockIssuanceCommands(s.mockCtrl)
	s.mockInstances = commandsmock.NewMockInstanceCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockTicketQueries(s.mockCtrl)
	s.handler = api.NewTicketHandler(s.mockTicketTypes, s.mockIssuance, s.mockInstances, s.mockQueries)

	s.actorID = uuid.New()

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Set("user_id", s.actorID)
		c.Next()
	}

	// Setup routes
	s.router.POST("/events/:id/ticket-types", authMiddleware, s.handler.CreateTicketType)
	s.router.GET("/ticket-types/:id", s.handler.GetTicketType)
	s.router.POST("/ticket-types/:id/issue", authMiddleware, s.handler.IssueBatch)
	s.router.POST("/instances/:id/redeem", authMiddleware, s.handler.RedeemInstance)
}

func (s *TicketHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestTicketHandlerSuite(t *testing.T) {
	suite.Run(t, new(TicketHandlerTestSuite))
}

// ================================================================================
// TestIssueBatch
// ================================================================================

func (s *TicketHandlerTestSuite) TestIssueBatch() {
	ticketTypeID := uuid.New()
	eventID := uuid.New()
	url := "/ticket-types/" + ticketTypeID.String() + "/issue"

	reqBody := reqdto.IssueBatchRequest{Quantity: 3}

	issuedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	instances := make([]*ticket.Instance, 3)
	for i := range instances {
		instances[i] = ticket.NewInstance(ticketTypeID, eventID, "1700000000000-0", issuedAt)
		locator := "mem://qr/" + instances[i].CodePayload + ".png"
		instances[i].ArtifactLocator = &locator
	}
	expectedResult := &commands.IssuanceResult{
		TicketTypeID: ticketTypeID,
		Requested:    3,
		Instances:    instances,
	}

	s.Run("success: returns 201 Created with the issued batch", func() {
		s.mockIssuance.EXPECT().IssueBatch(gomock.Any(), s.actorID, ticketTypeID, int32(3)).
			Return(expectedResult, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		s.Equal(http.StatusCreated, rec.Code)

		var response resdto.IssueBatchResponse
		httptest.DecodeResponseBody(s.T(), rec.Body, &response)
		s.Equal(ticketTypeID, response.TicketTypeID)
		s.Equal(int32(3), response.Requested)
		s.Equal(3, response.Issued)
		s.Require().Len(response.Instances, 3)
		s.Equal(instances[0].CodePayload, response.Instances[0].CodePayload)
		s.Require().NotNil(response.Instances[0].ArtifactLocator)
		s.Empty(response.FailedArtifacts)
	})

	s.Run("success: reports failed artifact slots alongside issued tickets", func() {
		partial := &commands.IssuanceResult{
			TicketTypeID:    ticketTypeID,
			Requested:       3,
			Instances:       instances,
			FailedArtifacts: []commands.SlotFailure{{Index: 1, Reason: "encode failed"}},
		}
		s.mockIssuance.EXPECT().IssueBatch(gomock.Any(), s.actorID, ticketTypeID, int32(3)).
			Return(partial, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		s.Equal(http.StatusCreated, rec.Code)

		var response resdto.IssueBatchResponse
		httptest.DecodeResponseBody(s.T(), rec.Body, &response)
		s.Require().Len(response.FailedArtifacts, 1)
		s.Equal(1, response.FailedArtifacts[0].Index)
	})

	s.Run("error: 409 Conflict with capacity details when the batch does not fit", func() {
		s.mockIssuance.EXPECT().IssueBatch(gomock.Any(), s.actorID, ticketTypeID, int32(3)).
			Return(nil, &ticket.CapacityExceededError{
				TicketTypeID: ticketTypeID.String(),
				Requested:    3,
				Remaining:    1,
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		s.Equal(http.StatusConflict, rec.Code)

		var body map[string]any
		httptest.DecodeResponseBody(s.T(), rec.Body, &body)
		s.Equal("Insufficient capacity", body["error"])
		s.Equal(float64(3), body["requested"])
		s.Equal(float64(1), body["remaining"])
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []struct {
			name       string
			mutate     func(m map[string]any)
			expectCode int
		}{
			{name: "quantity boundary OK (1)", mutate: testutil.Field("quantity", 1), expectCode: http.StatusCreated},
			{name: "quantity boundary invalid (0)", mutate: testutil.Field("quantity", 0), expectCode: http.StatusBadRequest},
			{name: "negative quantity", mutate: testutil.Field("quantity", -5), expectCode: http.StatusBadRequest},
			{name: "missing field: quantity (required)", mutate: testutil.Field("quantity", nil), expectCode: http.StatusBadRequest},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)

				if tc.expectCode == http.StatusCreated {
					s.mockIssuance.EXPECT().IssueBatch(gomock.Any(), s.actorID, ticketTypeID, int32(1)).
						Return(&commands.IssuanceResult{TicketTypeID: ticketTypeID, Requested: 1}, nil).Times(1)
				}
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				s.Equal(tc.expectCode, rec.Code)
			})
		}
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		invalidURL := "/ticket-types/invalid-uuid/issue"
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, invalidURL, reqBody, "bearer-token")
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "ticket type not found",
				commandsError:  commands.ErrTicketTypeNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Ticket type not found",
			},
			{
				name:           "ticket type inactive",
				commandsError:  commands.ErrTicketTypeInactive,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Ticket type is not active",
			},
			{
				name:           "not the event owner",
				commandsError:  commands.ErrNotEventOwner,
				expectedStatus: http.StatusForbidden,
				expectedMsg:    "Access denied",
			},
			{
				name:           "event not found",
				commandsError:  commands.ErrEventNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Event not found",
			},
			{
				name:           "batch too large",
				commandsError:  commands.ErrBatchTooLarge,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Batch size exceeds limit",
			},
			{
				name:           "persistence failed",
				commandsError:  commands.ErrBatchPersistenceFailed,
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Failed to persist issued tickets",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockIssuance.EXPECT().IssueBatch(gomock.Any(), s.actorID, ticketTypeID, int32(3)).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				s.Equal(tc.expectedStatus, rec.Code)

				var body map[string]string
				httptest.DecodeResponseBody(s.T(), rec.Body, &body)
				s.Equal(tc.expectedMsg, body["error"])
			})
		}
	})
}

// ================================================================================
// TestGetTicketType
// ================================================================================

func (s *TicketHandlerTestSuite) TestGetTicketType() {
	ticketTypeID := uuid.New()
	url := "/ticket-types/" + ticketTypeID.String()

	returnView := builder.NewTicketTypeViewBuilder().
		WithID(ticketTypeID).
		WithQuantities(100, 40).
		Build()

	s.Run("success: returns 200 OK with remaining capacity", func() {
		s.mockQueries.EXPECT().GetTicketType(gomock.Any(), ticketTypeID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		s.Equal(http.StatusOK, rec.Code)

		var response resdto.TicketTypeResponse
		httptest.DecodeResponseBody(s.T(), rec.Body, &response)
		s.Equal(ticketTypeID, response.ID)
		s.Equal(int32(60), response.Remaining)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/ticket-types/invalid-uuid", nil, "")
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("error: 404 Not Found for missing ticket type", func() {
		s.mockQueries.EXPECT().GetTicketType(gomock.Any(), ticketTypeID).
			Return(nil, queries.ErrTicketTypeNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		s.Equal(http.StatusNotFound, rec.Code)
	})
}

// ================================================================================
// TestRedeemInstance
// ================================================================================

func (s *TicketHandlerTestSuite) TestRedeemInstance() {
	instanceID := uuid.New()
	url := "/instances/" + instanceID.String() + "/redeem"

	s.Run("success: returns 204 No Content", func() {
		s.mockInstances.EXPECT().Redeem(gomock.Any(), s.actorID, instanceID).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/instances/invalid-uuid/redeem", nil, "bearer-token")
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "instance not found",
				commandsError:  commands.ErrInstanceNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Ticket instance not found",
			},
			{
				name:           "already redeemed",
				commandsError:  ticket.ErrAlreadyRedeemed,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Ticket already redeemed",
			},
			{
				name:           "void instance",
				commandsError:  ticket.ErrInstanceVoid,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Ticket is void",
			},
			{
				name:           "not the event owner",
				commandsError:  commands.ErrNotEventOwner,
				expectedStatus: http.StatusForbidden,
				expectedMsg:    "Access denied",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockInstances.EXPECT().Redeem(gomock.Any(), s.actorID, instanceID).
					Return(tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
				s.Equal(tc.expectedStatus, rec.Code)

				var body map[string]string
				httptest.DecodeResponseBody(s.T(), rec.Body, &body)
				s.Equal(tc.expectedMsg, body["error"])
			})
		}
	})
}

// ================================================================================
// TestCreateTicketType
// ================================================================================

func (s *TicketHandlerTestSuite) TestCreateTicketType() {
	eventID := uuid.New()
	url := "/events/" + eventID.String() + "/ticket-types"

	reqBody := reqdto.CreateTicketTypeRequest{
		Name:          "General Admission",
		PriceCents:    5000,
		QuantityTotal: 100,
		Tier:          "regular",
	}
	createdID := uuid.New()

	s.Run("success: returns 201 Created with the new ID", func() {
		s.mockTicketTypes.EXPECT().CreateTicketType(gomock.Any(), s.actorID, eventID, gomock.Any()).
			Return(createdID, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		s.Equal(http.StatusCreated, rec.Code)

		var response resdto.CreatedResponse
		httptest.DecodeResponseBody(s.T(), rec.Body, &response)
		s.Equal(createdID, response.ID)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing field: name (required)", mutate: testutil.Field("name", nil)},
			{name: "missing field: tier (required)", mutate: testutil.Field("tier", nil)},
			{name: "missing field: quantity_total (required)", mutate: testutil.Field("quantity_total", nil)},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				s.Equal(http.StatusBadRequest, rec.Code)
			})
		}
	})

	s.Run("error: 403 Forbidden for non-owner", func() {
		s.mockTicketTypes.EXPECT().CreateTicketType(gomock.Any(), s.actorID, eventID, gomock.Any()).
			Return(uuid.Nil, commands.ErrNotEventOwner).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		s.Equal(http.StatusForbidden, rec.Code)
	})
}
