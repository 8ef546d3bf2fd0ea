package handlers_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/vazqueztomas/barbershop/internal/models"
)

func TestHaircutCreateAndGet(t *testing.T) {
	r := setupRouter(t)

	w := httpDo(r, "POST", "/haircuts/create", map[string]any{
		"clientName":  "Juan",
		"serviceName": "Corte",
		"price":       7000,
		"date":        "2024-03-01",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	created := decode[models.Haircut](t, w)
	require.NotZero(t, created.ID)
	require.Equal(t, "Juan", created.ClientName)
	require.Equal(t, "Corte", created.ServiceName)
	require.Equal(t, 7000.0, created.Price)
	require.Equal(t, "2024-03-01", created.Date)
	require.Equal(t, 0, created.Count)
	require.Equal(t, 0.0, created.Tip)

	w = httpDo(r, "GET", fmt.Sprintf("/haircuts/%d", created.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	got := decode[models.Haircut](t, w)
	require.Equal(t, created.ID, got.ID)
	require.Equal(t, created.ClientName, got.ClientName)
	require.Equal(t, created.Price, got.Price)
	require.Equal(t, created.Date, got.Date)
}

func TestHaircutCreateAcceptsSlashDates(t *testing.T) {
	r := setupRouter(t)

	w := httpDo(r, "POST", "/haircuts/create", map[string]any{
		"clientName":  "Pedro",
		"serviceName": "Barba",
		"price":       3000,
		"date":        "01/03/2024",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode[models.Haircut](t, w)
	require.Equal(t, "2024-03-01", created.Date)

	w = httpDo(r, "POST", "/haircuts/create", map[string]any{
		"clientName":  "Pedro",
		"serviceName": "Barba",
		"price":       3000,
		"date":        "3/1/26",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created = decode[models.Haircut](t, w)
	require.Equal(t, "2026-01-03", created.Date)
}

func TestHaircutCreateDefaultsDateToToday(t *testing.T) {
	r := setupRouter(t)

	w := httpDo(r, "POST", "/haircuts/create", map[string]any{
		"clientName":  "Maria",
		"serviceName": "Claritos",
		"price":       5000,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode[models.Haircut](t, w)
	require.Equal(t, time.Now().UTC().Format("2006-01-02"), created.Date)
}

func TestHaircutCreateValidation(t *testing.T) {
	r := setupRouter(t)

	// Missing clientName.
	w := httpDo(r, "POST", "/haircuts/create", map[string]any{
		"serviceName": "Corte",
		"price":       7000,
	})
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	// Missing price.
	w = httpDo(r, "POST", "/haircuts/create", map[string]any{
		"clientName":  "Juan",
		"serviceName": "Corte",
	})
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	// Negative price.
	w = httpDo(r, "POST", "/haircuts/create", map[string]any{
		"clientName":  "Juan",
		"serviceName": "Corte",
		"price":       -1,
	})
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	// Unparseable date.
	w = httpDo(r, "POST", "/haircuts/create", map[string]any{
		"clientName":  "Juan",
		"serviceName": "Corte",
		"price":       7000,
		"date":        "definitely-not-a-date",
	})
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestHaircutGetNotFound(t *testing.T) {
	r := setupRouter(t)

	w := httpDo(r, "GET", "/haircuts/99999", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestHaircutUpdateStrict(t *testing.T) {
	r := setupRouter(t)

	w := httpDo(r, "POST", "/haircuts/create", map[string]any{
		"clientName":  "Juan",
		"serviceName": "Corte",
		"price":       7000,
		"date":        "2024-03-01",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	created := decode[models.Haircut](t, w)

	w = httpDo(r, "PUT", "/haircuts/update", map[string]any{
		"id":          created.ID,
		"clientName":  "Juan",
		"serviceName": "Corte+Barba",
		"price":       10000,
		"date":        "2024-03-02",
		"tip":         500,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	updated := decode[models.Haircut](t, w)
	require.Equal(t, created.ID, updated.ID)
	require.Equal(t, "Corte+Barba", updated.ServiceName)
	require.Equal(t, 10000.0, updated.Price)
	require.Equal(t, "2024-03-02", updated.Date)
	require.Equal(t, 500.0, updated.Tip)

	// Unknown ids are never upserted.
	w = httpDo(r, "PUT", "/haircuts/update", map[string]any{
		"id":          99999,
		"clientName":  "Ghost",
		"serviceName": "Corte",
		"price":       7000,
		"date":        "2024-03-02",
	})
	require.Equal(t, http.StatusNotFound, w.Code)

	w = httpDo(r, "GET", "/haircuts", nil)
	require.Equal(t, http.StatusOK, w.Code)
	all := decode[[]models.Haircut](t, w)
	require.Len(t, all, 1)
}

func TestHaircutUpdatePrice(t *testing.T) {
	r := setupRouter(t)

	w := httpDo(r, "POST", "/haircuts/create", map[string]any{
		"clientName":  "Juan",
		"serviceName": "Corte",
		"price":       7000,
		"date":        "2024-03-01",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	created := decode[models.Haircut](t, w)

	w = httpDo(r, "PATCH", fmt.Sprintf("/haircuts/%d/price", created.ID), map[string]any{
		"price": 7500,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	patched := decode[models.Haircut](t, w)
	require.Equal(t, 7500.0, patched.Price)
	require.Equal(t, created.ClientName, patched.ClientName)

	// Body without a price is a 400, not a validation 422.
	w = httpDo(r, "PATCH", fmt.Sprintf("/haircuts/%d/price", created.ID), map[string]any{})
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = httpDo(r, "PATCH", "/haircuts/99999/price", map[string]any{"price": 100})
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestHaircutDelete(t *testing.T) {
	r := setupRouter(t)

	w := httpDo(r, "POST", "/haircuts/create", map[string]any{
		"clientName":  "Juan",
		"serviceName": "Corte",
		"price":       7000,
		"date":        "2024-03-01",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	created := decode[models.Haircut](t, w)

	w = httpDo(r, "DELETE", fmt.Sprintf("/haircuts/%d", created.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = httpDo(r, "GET", fmt.Sprintf("/haircuts/%d", created.ID), nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	w = httpDo(r, "DELETE", fmt.Sprintf("/haircuts/%d", created.ID), nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestHaircutListOrdering(t *testing.T) {
	r := setupRouter(t)

	mk := func(client, date string, price float64) models.Haircut {
		w := httpDo(r, "POST", "/haircuts/create", map[string]any{
			"clientName":  client,
			"serviceName": "Corte",
			"price":       price,
			"date":        date,
		})
		require.Equal(t, http.StatusCreated, w.Code)
		return decode[models.Haircut](t, w)
	}

	first := mk("A", "2024-03-01", 7000)
	second := mk("B", "2024-03-01", 7000)
	newest := mk("C", "2024-03-05", 9000)

	w := httpDo(r, "GET", "/haircuts", nil)
	require.Equal(t, http.StatusOK, w.Code)
	all := decode[[]models.Haircut](t, w)
	require.Len(t, all, 3)

	// Date descending, then most-recently-inserted first.
	require.Equal(t, newest.ID, all[0].ID)
	require.Equal(t, second.ID, all[1].ID)
	require.Equal(t, first.ID, all[2].ID)
}

func TestHistoryByDateAndDailySummary(t *testing.T) {
	r := setupRouter(t)

	for _, c := range []struct {
		date  string
		price float64
		tip   float64
	}{
		{"2024-03-01", 7000, 0},
		{"2024-03-01", 3000, 500},
		{"2024-03-02", 9000, 0},
	} {
		w := httpDo(r, "POST", "/haircuts/create", map[string]any{
			"clientName":  "Juan",
			"serviceName": "Corte",
			"price":       c.price,
			"tip":         c.tip,
			"date":        c.date,
		})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := httpDo(r, "GET", "/haircuts/history/date/2024-03-01", nil)
	require.Equal(t, http.StatusOK, w.Code)
	onDate := decode[[]models.Haircut](t, w)
	require.Len(t, onDate, 2)
	// Most recently inserted first.
	require.Greater(t, onDate[0].ID, onDate[1].ID)

	w = httpDo(r, "GET", "/haircuts/history/daily", nil)
	require.Equal(t, http.StatusOK, w.Code)
	daily := decode[map[string]float64](t, w)
	require.Equal(t, 10000.0, daily["2024-03-01"])
	require.Equal(t, 9000.0, daily["2024-03-02"])

	w = httpDo(r, "GET", "/haircuts/history/date/not-a-date", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHistoryDeleteByDateIsIdempotent(t *testing.T) {
	r := setupRouter(t)

	for i := 0; i < 2; i++ {
		w := httpDo(r, "POST", "/haircuts/create", map[string]any{
			"clientName":  "Juan",
			"serviceName": "Corte",
			"price":       7000,
			"date":        "2024-03-01",
		})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := httpDo(r, "DELETE", "/haircuts/history/date/2024-03-01", nil)
	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[map[string]any](t, w)
	require.Equal(t, 2.0, resp["deleted"])

	// Absence of matches is success with count zero.
	w = httpDo(r, "DELETE", "/haircuts/history/date/2024-03-01", nil)
	require.Equal(t, http.StatusOK, w.Code)
	resp = decode[map[string]any](t, w)
	require.Equal(t, 0.0, resp["deleted"])

	w = httpDo(r, "GET", "/haircuts/history/date/2024-03-01", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Empty(t, decode[[]models.Haircut](t, w))
}

func TestHistoryTodaySummary(t *testing.T) {
	r := setupRouter(t)

	today := time.Now().UTC().Format("2006-01-02")

	for _, c := range []struct {
		price float64
		tip   float64
	}{{7000, 0}, {3000, 1000}} {
		w := httpDo(r, "POST", "/haircuts/create", map[string]any{
			"clientName":  "Juan",
			"serviceName": "Corte",
			"price":       c.price,
			"tip":         c.tip,
			"date":        today,
		})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := httpDo(r, "GET", "/haircuts/history/today", nil)
	require.Equal(t, http.StatusOK, w.Code)

	summary := decode[map[string]any](t, w)
	require.Equal(t, today, summary["date"])
	require.Equal(t, 2.0, summary["count"])
	require.Equal(t, 10000.0, summary["total"])
	require.Equal(t, 1000.0, summary["tip"])
}
