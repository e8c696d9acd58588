package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	httpapi "raitha-mithra-backend/internal/api/http"
	"raitha-mithra-backend/internal/domain"
	"raitha-mithra-backend/internal/security"
	"raitha-mithra-backend/internal/service"
)

const testSecret = "0123456789abcdef0123456789abcdef"

type testServer struct {
	router    http.Handler
	tokens    security.TokenManager
	equipment *MockEquipmentService
	bookings  *MockBookingService
	reviews   *MockReviewService
}

func newTestServer() *testServer {
	equipment := new(MockEquipmentService)
	bookings := new(MockBookingService)
	reviews := new(MockReviewService)
	tokens := security.NewTokenManager(testSecret)
	router := httpapi.NewRouter(
		tokens,
		httpapi.NewEquipmentHandler(equipment),
		httpapi.NewBookingHandler(bookings),
		httpapi.NewReviewHandler(reviews),
	)
	return &testServer{
		router:    router,
		tokens:    tokens,
		equipment: equipment,
		bookings:  bookings,
		reviews:   reviews,
	}
}

func (ts *testServer) request(t *testing.T, method, path string, body any, identity *domain.Identity) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encoding request body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	if identity != nil {
		token, err := ts.tokens.Generate(identity.UserID, identity.Role, time.Hour)
		if err != nil {
			t.Fatalf("generating token: %v", err)
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	ts.router.ServeHTTP(rec, req)
	return rec
}

func errorKind(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Error struct {
			Kind    string `json:"kind"`
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decoding error body: %v", err)
	}
	return body.Error.Kind
}

func TestHealthEndpoint(t *testing.T) {
	ts := newTestServer()
	rec := ts.request(t, http.MethodGet, "/api/health", nil, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthRequired(t *testing.T) {
	ts := newTestServer()

	t.Run("MissingHeader", func(t *testing.T) {
		rec := ts.request(t, http.MethodPost, "/api/equipment", service.CreateEquipmentInput{}, nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("MalformedHeader", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/bookings", nil)
		req.Header.Set("Authorization", "Basic abc123")
		rec := httptest.NewRecorder()
		ts.router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("BadToken", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/bookings", nil)
		req.Header.Set("Authorization", "Bearer not.a.token")
		rec := httptest.NewRecorder()
		ts.router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("PublicListingNeedsNoToken", func(t *testing.T) {
		ts.equipment.On("List", mock.Anything, domain.EquipmentFilter{}).Return([]domain.Equipment{}, nil).Once()
		rec := ts.request(t, http.MethodGet, "/api/equipment", nil, nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestEquipmentRoutes(t *testing.T) {
	owner := domain.Identity{UserID: uuid.New(), Role: domain.RoleOwner}

	t.Run("Create", func(t *testing.T) {
		ts := newTestServer()
		in := service.CreateEquipmentInput{
			Name:             "Mahindra 575 DI",
			Type:             "tractor",
			Description:      "45 HP workhorse for tillage",
			PricePerDayPaise: 150000,
			Location:         "Mandya",
		}
		ts.equipment.On("Create", mock.Anything, owner, in).
			Return(&domain.Equipment{ID: uuid.New(), Name: in.Name}, nil).Once()

		rec := ts.request(t, http.MethodPost, "/api/equipment", in, &owner)
		assert.Equal(t, http.StatusCreated, rec.Code)
		ts.equipment.AssertExpectations(t)
	})

	t.Run("GetBySlug", func(t *testing.T) {
		ts := newTestServer()
		ts.equipment.On("Get", mock.Anything, "mahindra-575-di-a1b2c3").
			Return(&domain.Equipment{Slug: "mahindra-575-di-a1b2c3"}, nil).Once()

		rec := ts.request(t, http.MethodGet, "/api/equipment/mahindra-575-di-a1b2c3", nil, nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("ListWithFilters", func(t *testing.T) {
		ts := newTestServer()
		ts.equipment.On("List", mock.Anything, domain.EquipmentFilter{
			Type:     "tractor",
			Location: "Mandya",
			Search:   "paddy",
		}).Return([]domain.Equipment{}, nil).Once()

		rec := ts.request(t, http.MethodGet, "/api/equipment?type=tractor&location=Mandya&search=paddy", nil, nil)
		assert.Equal(t, http.StatusOK, rec.Code)
		ts.equipment.AssertExpectations(t)
	})

	t.Run("MyEquipmentNotSwallowedBySlugRoute", func(t *testing.T) {
		ts := newTestServer()
		ts.equipment.On("ListMine", mock.Anything, owner).Return([]domain.Equipment{}, nil).Once()

		rec := ts.request(t, http.MethodGet, "/api/equipment/owner/my-equipment", nil, &owner)
		assert.Equal(t, http.StatusOK, rec.Code)
		ts.equipment.AssertExpectations(t)
	})

	t.Run("DeleteConflict", func(t *testing.T) {
		ts := newTestServer()
		id := uuid.New()
		ts.equipment.On("Delete", mock.Anything, owner, id).
			Return(domain.Conflict("equipment has active bookings and cannot be deleted")).Once()

		rec := ts.request(t, http.MethodDelete, "/api/equipment/"+id.String(), nil, &owner)
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "conflict", errorKind(t, rec))
	})

	t.Run("BadUUIDOnUpdate", func(t *testing.T) {
		ts := newTestServer()
		rec := ts.request(t, http.MethodPut, "/api/equipment/not-a-uuid", service.UpdateEquipmentInput{}, &owner)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestBookingRoutes(t *testing.T) {
	farmer := domain.Identity{UserID: uuid.New(), Role: domain.RoleFarmer}
	owner := domain.Identity{UserID: uuid.New(), Role: domain.RoleOwner}

	t.Run("Create", func(t *testing.T) {
		ts := newTestServer()
		in := service.CreateBookingInput{
			EquipmentID: uuid.NewString(),
			StartDate:   "2026-09-10",
			EndDate:     "2026-09-12",
		}
		ts.bookings.On("Create", mock.Anything, farmer, in).
			Return(&domain.Booking{ID: uuid.New(), Status: domain.BookingStatusPending}, nil).Once()

		rec := ts.request(t, http.MethodPost, "/api/bookings", in, &farmer)
		assert.Equal(t, http.StatusCreated, rec.Code)

		var booking domain.Booking
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &booking))
		assert.Equal(t, domain.BookingStatusPending, booking.Status)
	})

	t.Run("CreateConflictOnOverlap", func(t *testing.T) {
		ts := newTestServer()
		in := service.CreateBookingInput{EquipmentID: uuid.NewString(), StartDate: "2026-09-10", EndDate: "2026-09-12"}
		ts.bookings.On("Create", mock.Anything, farmer, in).
			Return(nil, domain.Conflict("equipment is already booked for these dates")).Once()

		rec := ts.request(t, http.MethodPost, "/api/bookings", in, &farmer)
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "conflict", errorKind(t, rec))
	})

	t.Run("UpdateStatus", func(t *testing.T) {
		ts := newTestServer()
		id := uuid.New()
		ts.bookings.On("UpdateStatus", mock.Anything, owner, id, domain.BookingStatusApproved).
			Return(&domain.Booking{ID: id, Status: domain.BookingStatusApproved}, nil).Once()

		rec := ts.request(t, http.MethodPut, "/api/bookings/"+id.String()+"/status",
			map[string]string{"status": "approved"}, &owner)
		assert.Equal(t, http.StatusOK, rec.Code)
		ts.bookings.AssertExpectations(t)
	})

	t.Run("CancelReturnsNoContent", func(t *testing.T) {
		ts := newTestServer()
		id := uuid.New()
		ts.bookings.On("Cancel", mock.Anything, farmer, id).Return(nil).Once()

		rec := ts.request(t, http.MethodDelete, "/api/bookings/"+id.String(), nil, &farmer)
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("GetForbiddenForStranger", func(t *testing.T) {
		ts := newTestServer()
		id := uuid.New()
		ts.bookings.On("Get", mock.Anything, farmer, id).
			Return(nil, domain.Forbidden("not authorized to view this booking")).Once()

		rec := ts.request(t, http.MethodGet, "/api/bookings/"+id.String(), nil, &farmer)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("NotFound", func(t *testing.T) {
		ts := newTestServer()
		id := uuid.New()
		ts.bookings.On("Get", mock.Anything, farmer, id).
			Return(nil, domain.NotFound("booking not found")).Once()

		rec := ts.request(t, http.MethodGet, "/api/bookings/"+id.String(), nil, &farmer)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "not_found", errorKind(t, rec))
	})
}

func TestReviewRoutes(t *testing.T) {
	farmer := domain.Identity{UserID: uuid.New(), Role: domain.RoleFarmer}

	t.Run("Create", func(t *testing.T) {
		ts := newTestServer()
		in := service.CreateReviewInput{
			BookingID: uuid.NewString(),
			Rating:    5,
			Comment:   "Machine was well maintained and ran all day.",
		}
		ts.reviews.On("Create", mock.Anything, farmer, in).
			Return(&domain.Review{ID: uuid.New(), Rating: 5}, nil).Once()

		rec := ts.request(t, http.MethodPost, "/api/reviews", in, &farmer)
		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("EquipmentReviewsArePublic", func(t *testing.T) {
		ts := newTestServer()
		equipmentID := uuid.New()
		ts.reviews.On("ListForEquipment", mock.Anything, equipmentID).
			Return([]domain.Review{{Rating: 4}}, nil).Once()

		rec := ts.request(t, http.MethodGet, "/api/reviews/equipment/"+equipmentID.String(), nil, nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("MyReviewsRequiresAuth", func(t *testing.T) {
		ts := newTestServer()
		rec := ts.request(t, http.MethodGet, "/api/reviews/my-reviews", nil, nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("DuplicateIsConflict", func(t *testing.T) {
		ts := newTestServer()
		in := service.CreateReviewInput{
			BookingID: uuid.NewString(),
			Rating:    5,
			Comment:   "Machine was well maintained and ran all day.",
		}
		ts.reviews.On("Create", mock.Anything, farmer, in).
			Return(nil, domain.Conflict("review already exists for this booking")).Once()

		rec := ts.request(t, http.MethodPost, "/api/reviews", in, &farmer)
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("UpdateValidation", func(t *testing.T) {
		ts := newTestServer()
		id := uuid.New()
		ts.reviews.On("Update", mock.Anything, farmer, id, mock.Anything).
			Return(nil, domain.Validation("rating must be between 1 and 5")).Once()

		rec := ts.request(t, http.MethodPut, "/api/reviews/"+id.String(),
			map[string]int{"rating": 9}, &farmer)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "validation", errorKind(t, rec))
	})
}

func TestInternalErrorsAreOpaque(t *testing.T) {
	ts := newTestServer()
	ts.equipment.On("List", mock.Anything, domain.EquipmentFilter{}).
		Return(nil, assert.AnError).Once()

	rec := ts.request(t, http.MethodGet, "/api/equipment", nil, nil)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), assert.AnError.Error())
}
