package handlers

import (
	"encoding/json"
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

func TestDashboardHandler_ListProjects(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIDashboardUseCase(ctrl)
	h := NewDashboardHandler(uc)

	r := gin.New()
	r.GET("/v1/dashboard/projects", asSubject("c-1", middleware.RoleContractor), h.ListProjects)

	visit := entities.SiteVisitApplication{ID: "v-1", RequestID: "req-1", ContractorID: "c-1", Status: entities.VisitStatusCompleted}
	bid := entities.ContractorQuote{ID: "q-1", RequestID: "req-1", ContractorID: "c-1", Price: 1500}
	uc.EXPECT().ListForContractor(gomock.Any(), "c-1").Return([]usecase.ContractorProjection{
		{
			Request: entities.QuoteRequest{ID: "req-1", Status: entities.RequestStatusCompleted, SelectedContractorID: "c-1"},
			Visit:   &visit,
			Bid:     &bid,
			Status:  entities.ProjectStatusSelected,
		},
		{
			Request:     entities.QuoteRequest{ID: "req-2", Status: entities.RequestStatusSiteVisitPending},
			Status:      entities.ProjectStatusApproved,
			VisitMissed: true,
		},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/dashboard/projects", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
	}

	var rows []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &rows); err != nil {
		t.Fatalf("invalid response json: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0]["status"] != "selected" {
		t.Fatalf("unexpected first row status: %v", rows[0]["status"])
	}
	if rows[1]["status"] != "approved" || rows[1]["visit_missed"] != true {
		t.Fatalf("unexpected second row: %v", rows[1])
	}
	if _, has := rows[1]["bid"]; has {
		t.Fatalf("expected bid omitted when absent")
	}
}

func TestDashboardHandler_GetProject(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("projects for the token subject", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDashboardUseCase(ctrl)
		h := NewDashboardHandler(uc)

		r := gin.New()
		r.GET("/v1/dashboard/projects/:request_id", asSubject("c-1", middleware.RoleContractor), h.GetProject)

		uc.EXPECT().ProjectForContractor(gomock.Any(), "req-1", "c-1").Return(usecase.ContractorProjection{
			Request: entities.QuoteRequest{ID: "req-1", Status: entities.RequestStatusBidding},
			Status:  entities.ProjectStatusBidding,
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/dashboard/projects/req-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("unknown request is not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDashboardUseCase(ctrl)
		h := NewDashboardHandler(uc)

		r := gin.New()
		r.GET("/v1/dashboard/projects/:request_id", asSubject("c-1", middleware.RoleContractor), h.GetProject)

		uc.EXPECT().ProjectForContractor(gomock.Any(), "missing", "c-1").
			Return(usecase.ContractorProjection{}, usecase.ErrRequestNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/dashboard/projects/missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
