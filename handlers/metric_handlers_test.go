package handlers_test

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateMetricWithoutStorage(t *testing.T) {
	app := newTestApp(nil)

	resp, _ := app.Test(jsonRequest("POST", "/api/metrics",
		`{"period":"2024-05-01","sales":1000,"orders":50,"marketing_spend":100}`))

	assert.Equal(t, 500, resp.StatusCode)
	body := decodeMap(t, resp)
	assert.Equal(t, "Database not configured", body["message"])
}

func TestCreateMetricRoundTrip(t *testing.T) {
	gw := newFakeGateway()
	app := newTestApp(gw)

	resp, _ := app.Test(jsonRequest("POST", "/api/metrics",
		`{"period":"2024-05-01","sales":1000.5,"orders":50,"marketing_spend":100}`))

	assert.Equal(t, 201, resp.StatusCode)
	created := decodeMap(t, resp)
	assert.NotEmpty(t, created["id"])
	assert.Equal(t, "Metric saved", created["message"])

	resp, _ = app.Test(httptest.NewRequest("GET", "/api/metrics", nil))
	assert.Equal(t, 200, resp.StatusCode)
	items := decodeList(t, resp)
	assert.Len(t, items, 1)
	assert.Equal(t, created["id"], items[0]["_id"])
	assert.Equal(t, "2024-05-01", items[0]["period"])
	assert.Equal(t, 1000.5, items[0]["sales"])
	assert.Equal(t, float64(50), items[0]["orders"])
	assert.Equal(t, float64(100), items[0]["marketing_spend"])
}

func TestCreateMetricNormalizesDateTimePeriod(t *testing.T) {
	gw := newFakeGateway()
	app := newTestApp(gw)

	resp, _ := app.Test(jsonRequest("POST", "/api/metrics",
		`{"period":"2024-05-01T10:30:00Z","sales":1,"orders":1,"marketing_spend":1}`))
	assert.Equal(t, 201, resp.StatusCode)

	resp, _ = app.Test(httptest.NewRequest("GET", "/api/metrics", nil))
	items := decodeList(t, resp)
	assert.Len(t, items, 1)
	assert.Equal(t, "2024-05-01", items[0]["period"])
}

func TestCreateMetricZeroValuesAccepted(t *testing.T) {
	app := newTestApp(newFakeGateway())

	resp, _ := app.Test(jsonRequest("POST", "/api/metrics",
		`{"period":"2024-05-01","sales":0,"orders":0,"marketing_spend":0}`))

	assert.Equal(t, 201, resp.StatusCode)
}

func TestCreateMetricValidation(t *testing.T) {
	app := newTestApp(newFakeGateway())

	cases := []struct {
		name  string
		body  string
		field string
	}{
		{"missing sales", `{"period":"2024-05-01","orders":50,"marketing_spend":100}`, "sales"},
		{"negative orders", `{"period":"2024-05-01","sales":10,"orders":-1,"marketing_spend":0}`, "orders"},
		{"negative marketing spend", `{"period":"2024-05-01","sales":10,"orders":1,"marketing_spend":-5}`, "marketing_spend"},
		{"missing period", `{"sales":10,"orders":1,"marketing_spend":0}`, "period"},
		{"unparseable period", `{"period":"May 2024","sales":10,"orders":1,"marketing_spend":0}`, "period"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp, _ := app.Test(jsonRequest("POST", "/api/metrics", tc.body))

			assert.Equal(t, 422, resp.StatusCode)
			body := decodeMap(t, resp)
			assert.Equal(t, "Validation failed", body["message"])
			errs, ok := body["errors"].(map[string]interface{})
			assert.True(t, ok)
			assert.Contains(t, errs, tc.field)
		})
	}
}

func TestCreateMetricIgnoresExtraFields(t *testing.T) {
	app := newTestApp(newFakeGateway())

	resp, _ := app.Test(jsonRequest("POST", "/api/metrics",
		`{"period":"2024-05-01","sales":1,"orders":1,"marketing_spend":1,"unknown_field":"x"}`))

	assert.Equal(t, 201, resp.StatusCode)
}

func TestCreateMetricMalformedBody(t *testing.T) {
	app := newTestApp(newFakeGateway())

	resp, _ := app.Test(jsonRequest("POST", "/api/metrics", `{not json`))

	assert.Equal(t, 422, resp.StatusCode)
}

func TestListMetricsLimit(t *testing.T) {
	gw := newFakeGateway()
	app := newTestApp(gw)
	for i := 0; i < 3; i++ {
		resp, _ := app.Test(jsonRequest("POST", "/api/metrics",
			`{"period":"2024-05-01","sales":1,"orders":1,"marketing_spend":1}`))
		assert.Equal(t, 201, resp.StatusCode)
	}

	// default cap is 50
	resp, _ := app.Test(httptest.NewRequest("GET", "/api/metrics", nil))
	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, int64(50), gw.lastLimit)
	assert.Len(t, decodeList(t, resp), 3)

	// explicit cap
	resp, _ = app.Test(httptest.NewRequest("GET", "/api/metrics?limit=2", nil))
	assert.Len(t, decodeList(t, resp), 2)

	// limit=0 means an empty list
	resp, _ = app.Test(httptest.NewRequest("GET", "/api/metrics?limit=0", nil))
	assert.Equal(t, 200, resp.StatusCode)
	assert.Len(t, decodeList(t, resp), 0)
}

func TestListMetricsStorageError(t *testing.T) {
	gw := newFakeGateway()
	gw.failWith = assert.AnError
	app := newTestApp(gw)

	resp, _ := app.Test(httptest.NewRequest("GET", "/api/metrics", nil))

	assert.Equal(t, 500, resp.StatusCode)
}
