package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/realestate-crm/internal/adapters/http/dto"
	"github.com/jsamuelsen11/realestate-crm/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/realestate-crm/internal/domain"
	"github.com/jsamuelsen11/realestate-crm/internal/domain/dashboard"
	"github.com/jsamuelsen11/realestate-crm/internal/domain/property"
	"github.com/jsamuelsen11/realestate-crm/mocks"
)

func TestDashboardSummary(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockDashboardService(t)
	h := handlers.NewDashboardHandler(svc)

	svc.EXPECT().Summary(mock.Anything).Return(&dashboard.Summary{
		Properties: dashboard.PropertyStats{
			Total:          3,
			ByStatus:       map[property.Status]int{property.StatusAvailable: 2, property.StatusSold: 1},
			AvailableValue: domain.MoneyFromFloat(1000),
		},
		Clients: dashboard.ClientStats{Total: 4, Buyers: 3, Sellers: 2, BuyerRatio: 0.75},
	}, nil)

	rec := httptest.NewRecorder()
	h.Summary(rec, httptest.NewRequest(http.MethodGet, "/api/v1/dashboard", nil))

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.DashboardResponse](t, rec)
	if resp.Properties.Total != 3 || resp.Properties.ByStatus["AVAILABLE"] != 2 {
		t.Errorf("Properties = %+v", resp.Properties)
	}
	if resp.Clients.BuyerRatio != 0.75 {
		t.Errorf("BuyerRatio = %v, want 0.75", resp.Clients.BuyerRatio)
	}
}

func TestDashboardSummary_Unavailable(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockDashboardService(t)
	h := handlers.NewDashboardHandler(svc)
	svc.EXPECT().Summary(mock.Anything).Return(nil, domain.ErrUnavailable)

	rec := httptest.NewRecorder()
	h.Summary(rec, httptest.NewRequest(http.MethodGet, "/api/v1/dashboard", nil))

	requireStatus(t, rec, http.StatusServiceUnavailable)
}

func TestChoices(t *testing.T) {
	t.Parallel()

	h := handlers.NewDashboardHandler(mocks.NewMockDashboardService(t))

	rec := httptest.NewRecorder()
	h.Choices(rec, httptest.NewRequest(http.MethodGet, "/api/v1/choices", nil))

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.ChoicesResponse](t, rec)
	if len(resp.PropertyType) != len(property.Types) {
		t.Errorf("len(PropertyType) = %d, want %d", len(resp.PropertyType), len(property.Types))
	}
	if resp.PropertyType[1].Label != "Condominium" {
		t.Errorf("PropertyType[1] = %+v, want Condominium", resp.PropertyType[1])
	}
}
