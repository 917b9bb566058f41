package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"renomatch/internal/adapter/http/handlers/mocks"
	"renomatch/internal/adapter/http/middleware"
	"renomatch/internal/domain/entities"
	"renomatch/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestBidHandler_SubmitBid(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBidUseCase(ctrl)
		h := NewBidHandler(uc)

		r := gin.New()
		r.POST("/v1/requests/:request_id/bids", asSubject("c-1", middleware.RoleContractor), h.SubmitBid)

		req := httptest.NewRequest(http.MethodPost, "/v1/requests/req-1/bids", bytes.NewBufferString(`{"price":-5}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("submits for the token subject", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBidUseCase(ctrl)
		h := NewBidHandler(uc)

		r := gin.New()
		r.POST("/v1/requests/:request_id/bids", asSubject("c-1", middleware.RoleContractor), h.SubmitBid)

		uc.EXPECT().Submit(gomock.Any(), "req-1", "c-1", 1500.0, "full remodel", "doc-1").
			Return(entities.ContractorQuote{ID: "q-1", RequestID: "req-1", ContractorID: "c-1", Price: 1500, Status: entities.QuoteStatusSubmitted}, nil)

		body := `{"price":1500,"description":"full remodel","document_ref":"doc-1"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/requests/req-1/bids", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d body=%s", w.Code, w.Body.String())
		}
	})

	t.Run("error mapping", func(t *testing.T) {
		cases := []struct {
			name string
			err  error
			code int
		}{
			{name: "no completed visit", err: usecase.ErrBidNotEligible, code: http.StatusUnprocessableEntity},
			{name: "request closed", err: usecase.ErrRequestClosed, code: http.StatusUnprocessableEntity},
			{name: "duplicate bid", err: usecase.ErrDuplicateBid, code: http.StatusConflict},
			{name: "inactive contractor", err: usecase.ErrContractorInactive, code: http.StatusForbidden},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				ctrl := gomock.NewController(t)
				defer ctrl.Finish()
				uc := mocks.NewMockIBidUseCase(ctrl)
				h := NewBidHandler(uc)

				r := gin.New()
				r.POST("/v1/requests/:request_id/bids", asSubject("c-1", middleware.RoleContractor), h.SubmitBid)

				uc.EXPECT().Submit(gomock.Any(), "req-1", "c-1", 1500.0, "x", "").Return(entities.ContractorQuote{}, tc.err)

				req := httptest.NewRequest(http.MethodPost, "/v1/requests/req-1/bids", bytes.NewBufferString(`{"price":1500,"description":"x"}`))
				req.Header.Set("Content-Type", "application/json")
				w := httptest.NewRecorder()
				r.ServeHTTP(w, req)

				if w.Code != tc.code {
					t.Fatalf("expected %d, got %d", tc.code, w.Code)
				}
			})
		}
	})
}

func TestBidHandler_WithdrawBid(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("withdraws", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBidUseCase(ctrl)
		h := NewBidHandler(uc)

		r := gin.New()
		r.DELETE("/v1/bids/:bid_id", asSubject("c-1", middleware.RoleContractor), h.WithdrawBid)

		uc.EXPECT().Withdraw(gomock.Any(), "bid-1", "c-1").Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/v1/bids/bid-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})

	t.Run("after selection is a conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBidUseCase(ctrl)
		h := NewBidHandler(uc)

		r := gin.New()
		r.DELETE("/v1/bids/:bid_id", asSubject("c-1", middleware.RoleContractor), h.WithdrawBid)

		uc.EXPECT().Withdraw(gomock.Any(), "bid-1", "c-1").Return(usecase.ErrSelectionAlreadyMade)

		req := httptest.NewRequest(http.MethodDelete, "/v1/bids/bid-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("someone else's bid is forbidden", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBidUseCase(ctrl)
		h := NewBidHandler(uc)

		r := gin.New()
		r.DELETE("/v1/bids/:bid_id", asSubject("c-2", middleware.RoleContractor), h.WithdrawBid)

		uc.EXPECT().Withdraw(gomock.Any(), "bid-1", "c-2").Return(usecase.ErrNotBidOwner)

		req := httptest.NewRequest(http.MethodDelete, "/v1/bids/bid-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})
}
