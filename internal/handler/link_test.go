package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planner-app/planner/internal/domain"
	"github.com/planner-app/planner/internal/handler/gen"
	"github.com/planner-app/planner/internal/service"
)

func TestCreateLink_201(t *testing.T) {
	lid := uuid.New()
	svc := &mockLinkServicer{
		create: func(_ context.Context, in service.CreateLinkInput) (domain.Link, error) {
			assert.Equal(t, "https://hotel.example.com", in.URL)
			return domain.Link{ID: lid}, nil
		},
	}

	rec := do(newHTTPHandler(services{links: svc}), http.MethodPost, "/trips/"+uuid.NewString()+"/links",
		jsonBody(t, map[string]any{"title": "Hotel booking", "url": "https://hotel.example.com"}))

	assert.Equal(t, http.StatusCreated, rec.Code)
	var resp gen.LinkCreated
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, lid, resp.LinkId)
}

func TestListLinks_DefaultPagination(t *testing.T) {
	var got domain.PaginationParams
	svc := &mockLinkServicer{
		listByTripID: func(_ context.Context, _ uuid.UUID, p domain.PaginationParams) (domain.Page[domain.Link], error) {
			got = p
			return domain.Page[domain.Link]{Items: []domain.Link{}, Total: 0, Params: p}, nil
		},
	}

	rec := do(newHTTPHandler(services{links: svc}), http.MethodGet, "/trips/"+uuid.NewString()+"/links", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.PaginationParams{Page: 1, Limit: domain.DefaultPageLimit}, got)
	assert.JSONEq(t, `{"data":[],"pagination":{"page":1,"limit":20,"total":0}}`, rec.Body.String())
}

func TestListLinks_PageAndLimit(t *testing.T) {
	svc := &mockLinkServicer{
		listByTripID: func(_ context.Context, _ uuid.UUID, p domain.PaginationParams) (domain.Page[domain.Link], error) {
			return domain.Page[domain.Link]{
				Items:  []domain.Link{{ID: uuid.New(), Title: "Hotel booking", URL: "https://hotel.example.com", CreatedAt: time.Now()}},
				Total:  7,
				Params: p,
			}, nil
		},
	}

	rec := do(newHTTPHandler(services{links: svc}), http.MethodGet, "/trips/"+uuid.NewString()+"/links?page=2&limit=500", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	var resp gen.LinkList
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, gen.Pagination{Page: 2, Limit: domain.MaxPageLimit, Total: 7}, resp.Pagination)
	require.Len(t, resp.Data, 1)
}

func TestListLinks_400_BadPage(t *testing.T) {
	rec := do(newHTTPHandler(services{}), http.MethodGet, "/trips/"+uuid.NewString()+"/links?page=abc", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListLinks_404(t *testing.T) {
	svc := &mockLinkServicer{
		listByTripID: func(context.Context, uuid.UUID, domain.PaginationParams) (domain.Page[domain.Link], error) {
			return domain.Page[domain.Link]{}, domain.ErrTripNotFound
		},
	}

	rec := do(newHTTPHandler(services{links: svc}), http.MethodGet, "/trips/"+uuid.NewString()+"/links", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
