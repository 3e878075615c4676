package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Prossima-Tech/emprise-order-tracking-system-sub002/internal/adapter/http/handlers/mocks"
	"github.com/Prossima-Tech/emprise-order-tracking-system-sub002/internal/domain/entities"
	"github.com/Prossima-Tech/emprise-order-tracking-system-sub002/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestOfferHandler_CreateOffer(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOfferUseCase(ctrl)
		h := NewOfferHandler(uc)

		r := gin.New()
		r.POST("/v1/offers", h.CreateOffer)

		req := httptest.NewRequest(http.MethodPost, "/v1/offers", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing subject", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOfferUseCase(ctrl)
		h := NewOfferHandler(uc)

		r := gin.New()
		r.POST("/v1/offers", h.CreateOffer)

		req := httptest.NewRequest(http.MethodPost, "/v1/offers", bytes.NewBufferString(`{"to_authority":"DRM","amount":100}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("create success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOfferUseCase(ctrl)
		h := NewOfferHandler(uc)

		r := gin.New()
		r.POST("/v1/offers", h.CreateOffer)

		uc.EXPECT().Create(gomock.Any(), usecase.CreateOfferInput{Subject: "Supply of cables", ToAuthority: "DRM", Amount: 495000}).
			Return(entities.BudgetaryOffer{ID: "offer-1", Subject: "Supply of cables", ToAuthority: "DRM", Amount: 495000, Status: entities.OfferStatusDraft}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/offers", bytes.NewBufferString(`{"subject":"Supply of cables","to_authority":"DRM","amount":495000}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}

		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body["id"] != "offer-1" || body["status"] != "DRAFT" {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("internal error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOfferUseCase(ctrl)
		h := NewOfferHandler(uc)

		r := gin.New()
		r.POST("/v1/offers", h.CreateOffer)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.BudgetaryOffer{}, errors.New("db"))

		req := httptest.NewRequest(http.MethodPost, "/v1/offers", bytes.NewBufferString(`{"subject":"x","to_authority":"y"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestOfferHandler_GetOffer(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOfferUseCase(ctrl)
		h := NewOfferHandler(uc)

		r := gin.New()
		r.GET("/v1/offers/:id", h.GetOffer)

		uc.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.BudgetaryOffer{}, usecase.ErrOfferNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/offers/missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOfferUseCase(ctrl)
		h := NewOfferHandler(uc)

		r := gin.New()
		r.GET("/v1/offers/:id", h.GetOffer)

		uc.EXPECT().GetByID(gomock.Any(), "offer-1").Return(entities.BudgetaryOffer{ID: "offer-1", Status: entities.OfferStatusApproved}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/offers/offer-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestOfferHandler_UpdateOfferStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing actor id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOfferUseCase(ctrl)
		h := NewOfferHandler(uc)

		r := gin.New()
		r.PATCH("/v1/offers/:id/status", h.UpdateOfferStatus)

		req := httptest.NewRequest(http.MethodPatch, "/v1/offers/offer-1/status", bytes.NewBufferString(`{"status":"PENDING_APPROVAL"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("status is normalized", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOfferUseCase(ctrl)
		h := NewOfferHandler(uc)

		r := gin.New()
		r.PATCH("/v1/offers/:id/status", h.UpdateOfferStatus)

		uc.EXPECT().ApplyTransition(gomock.Any(), usecase.TransitionInput{ID: "offer-1", Target: "PENDING_APPROVAL", ActorID: "user-1"}).
			Return(entities.BudgetaryOffer{ID: "offer-1", Status: entities.OfferStatusPendingApproval}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/offers/offer-1/status", bytes.NewBufferString(`{"status":" pending_approval ","actor_id":"user-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("illegal transition maps to 422 with both statuses", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOfferUseCase(ctrl)
		h := NewOfferHandler(uc)

		r := gin.New()
		r.PATCH("/v1/offers/:id/status", h.UpdateOfferStatus)

		uc.EXPECT().ApplyTransition(gomock.Any(), gomock.Any()).
			Return(entities.BudgetaryOffer{}, &usecase.TransitionError{From: "DRAFT", To: "APPROVED"})

		req := httptest.NewRequest(http.MethodPatch, "/v1/offers/offer-1/status", bytes.NewBufferString(`{"status":"APPROVED","actor_id":"user-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}

		var body map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body["code"] != "ILLEGAL_TRANSITION" {
			t.Fatalf("unexpected code: %v", body)
		}
		msg := body["message"]
		if !bytes.Contains([]byte(msg), []byte("DRAFT")) || !bytes.Contains([]byte(msg), []byte("APPROVED")) {
			t.Fatalf("message must name both statuses: %q", msg)
		}
	})
}

func TestOfferHandler_ListOfferTransitions(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIOfferUseCase(ctrl)
	h := NewOfferHandler(uc)

	r := gin.New()
	r.GET("/v1/offers/:id/transitions", h.ListOfferTransitions)

	uc.EXPECT().ListLegalTransitions(gomock.Any(), "offer-1").
		Return([]entities.OfferStatus{entities.OfferStatusApproved, entities.OfferStatusRejected}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/offers/offer-1/transitions", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body struct {
		Next []string `json:"next"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(body.Next) != 2 || body.Next[0] != "APPROVED" || body.Next[1] != "REJECTED" {
		t.Fatalf("unexpected transitions: %v", body.Next)
	}
}

func TestOfferHandler_OfferStatistics(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIOfferUseCase(ctrl)
	h := NewOfferHandler(uc)

	r := gin.New()
	r.GET("/v1/dashboard/offers", h.OfferStatistics)

	uc.EXPECT().Statistics(gomock.Any(), entities.OfferFilter{Status: entities.OfferStatus("DRAFT")}).Return(usecase.Statistics{
		ByStatus:   map[string]usecase.StatusBucket{"DRAFT": {Count: 2, TotalValue: 150}},
		TotalCount: 2,
		TotalValue: 150,
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/dashboard/offers?status=DRAFT", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body struct {
		TotalCount int     `json:"total_count"`
		TotalValue float64 `json:"total_value"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if body.TotalCount != 2 || body.TotalValue != 150 {
		t.Fatalf("unexpected body: %+v", body)
	}
}

func TestOfferHandler_ListOffers(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("list with total header", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOfferUseCase(ctrl)
		h := NewOfferHandler(uc)

		r := gin.New()
		r.GET("/v1/offers", h.ListOffers)

		filter := entities.OfferFilter{Status: entities.OfferStatus("DRAFT")}
		uc.EXPECT().List(gomock.Any(), filter).Return([]entities.BudgetaryOffer{
			{ID: "offer-1", Subject: "Track renewal", Status: entities.OfferStatusDraft},
			{ID: "offer-2", Subject: "Signal cabling", Status: entities.OfferStatusDraft},
		}, nil)
		uc.EXPECT().Count(gomock.Any(), filter).Return(2, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/offers?status=DRAFT", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if got := w.Header().Get("X-Total-Count"); got != "2" {
			t.Fatalf("expected X-Total-Count 2, got %q", got)
		}

		var body []struct {
			ID string `json:"id"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if len(body) != 2 || body[0].ID != "offer-1" {
			t.Fatalf("unexpected body: %+v", body)
		}
	})

	t.Run("list error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOfferUseCase(ctrl)
		h := NewOfferHandler(uc)

		r := gin.New()
		r.GET("/v1/offers", h.ListOffers)

		uc.EXPECT().List(gomock.Any(), entities.OfferFilter{}).Return(nil, errors.New("db"))

		req := httptest.NewRequest(http.MethodGet, "/v1/offers", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}
