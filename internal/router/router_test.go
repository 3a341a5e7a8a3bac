package router_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"petmate/internal/adapters/auth/token"
	"petmate/internal/platform/clock"
	"petmate/internal/router"
)

func fixedClock(t *testing.T) *clock.Clock {
	t.Helper()
	loc, err := time.LoadLocation("Asia/Seoul")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}
	// mediodía para que "hoy" no dependa de bordes de día
	return clock.NewFixed(time.Date(2025, 3, 10, 12, 0, 0, 0, loc), "Asia/Seoul")
}

func TestHTTP_EndToEnd_CareFlow(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{
		AuthVerifier: nil, // modo dev: X-Debug-User-ID
		Clock:        fixedClock(t),
	}))
	defer ts.Close()

	ownerID := "owner-1"
	strangerID := "stranger-1"

	// 1) Owner registra un perro de 10kg
	petID := createPet(t, ts.URL, ownerID, map[string]any{
		"name":      "Mochi",
		"species":   "dog",
		"breed":     "mixed",
		"weight_kg": 10.0,
	})

	// 2) Otro usuario no ve el perfil (404, no 403: no filtramos existencia)
	{
		st, _ := doReq(t, ts.URL, "GET", "/pets/"+petID, strangerID, nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 for stranger, got %d", st)
		}
	}

	// 3) Log de comida y agua de hoy
	{
		st, body := doReq(t, ts.URL, "POST", "/pets/"+petID+"/feedings", ownerID, map[string]any{
			"amount": 40,
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 record feeding, got %d body=%s", st, string(body))
		}
	}
	{
		st, body := doReq(t, ts.URL, "POST", "/pets/"+petID+"/waterings", ownerID, map[string]any{
			"amount": 300,
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 record water, got %d body=%s", st, string(body))
		}
	}

	// 4) Dashboard de hoy: fórmulas de perro de 10kg
	{
		st, body := doReq(t, ts.URL, "GET", "/pets/"+petID+"/dashboard", ownerID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 dashboard, got %d body=%s", st, string(body))
		}

		var resp struct {
			Date               string  `json:"date"`
			FoodRecommendedG   int     `json:"food_recommended_g"`
			SnackLimitG        int     `json:"snack_limit_g"`
			FoodEatenG         int     `json:"food_eaten_g"`
			WaterRecommendedMl int     `json:"water_recommended_ml"`
			WaterDrankMl       int     `json:"water_drank_ml"`
			WaterAdherence     float64 `json:"water_adherence"`
		}
		if err := json.Unmarshal(body, &resp); err != nil {
			t.Fatalf("dashboard json: %v body=%s", err, string(body))
		}

		if resp.Date != "2025-03-10" {
			t.Errorf("dashboard date = %q, want 2025-03-10", resp.Date)
		}
		if resp.FoodRecommendedG != 106 || resp.SnackLimitG != 11 {
			t.Errorf("food recommendation = (%d, %d), want (106, 11)", resp.FoodRecommendedG, resp.SnackLimitG)
		}
		if resp.FoodEatenG != 40 {
			t.Errorf("food eaten = %d, want 40", resp.FoodEatenG)
		}
		if resp.WaterRecommendedMl != 600 || resp.WaterDrankMl != 300 {
			t.Errorf("water = (%d, %d), want (600, 300)", resp.WaterRecommendedMl, resp.WaterDrankMl)
		}
		if resp.WaterAdherence != 0.5 {
			t.Errorf("water adherence = %v, want 0.5", resp.WaterAdherence)
		}
	}

	// 5) Registrar peso refresca el cache del perfil
	{
		st, body := doReq(t, ts.URL, "POST", "/pets/"+petID+"/weights", ownerID, map[string]any{
			"weight_kg": 9.6,
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 record weight, got %d body=%s", st, string(body))
		}

		st, body = doReq(t, ts.URL, "GET", "/pets/"+petID, ownerID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 get pet, got %d", st)
		}
		var p struct {
			WeightKg float64 `json:"weight_kg"`
		}
		_ = json.Unmarshal(body, &p)
		if p.WeightKg != 9.6 {
			t.Errorf("profile weight after record = %v, want 9.6", p.WeightKg)
		}
	}

	// 6) Tendencias: ventana válida e inválida
	{
		st, body := doReq(t, ts.URL, "GET", "/pets/"+petID+"/trends?days=14", ownerID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 trends, got %d body=%s", st, string(body))
		}
		var resp struct {
			Window     []string `json:"window"`
			FeedSeries []struct {
				Date  string `json:"date"`
				Total int    `json:"total"`
			} `json:"feed_series"`
		}
		if err := json.Unmarshal(body, &resp); err != nil {
			t.Fatalf("trends json: %v", err)
		}
		if len(resp.Window) != 14 || len(resp.FeedSeries) != 14 {
			t.Errorf("trends window/series len = (%d, %d), want (14, 14)", len(resp.Window), len(resp.FeedSeries))
		}
		// el último punto es hoy, con lo comido hoy
		last := resp.FeedSeries[len(resp.FeedSeries)-1]
		if last.Date != "2025-03-10" || last.Total != 40 {
			t.Errorf("trends last point = (%s, %d), want (2025-03-10, 40)", last.Date, last.Total)
		}
	}
	{
		st, _ := doReq(t, ts.URL, "GET", "/pets/"+petID+"/trends?days=10", ownerID, nil)
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 for days=10, got %d", st)
		}
	}

	// 7) Medicación: alta, expansión de 7 días y horario inválido
	{
		st, body := doReq(t, ts.URL, "POST", "/pets/"+petID+"/medications", ownerID, map[string]any{
			"drug":  "온시오르",
			"dose":  "6",
			"unit":  "mg",
			"times": []string{"20:00", "08:00"},
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 create schedule, got %d body=%s", st, string(body))
		}
		var sched struct {
			Times []string `json:"times"`
		}
		_ = json.Unmarshal(body, &sched)
		if len(sched.Times) != 2 || sched.Times[0] != "08:00" {
			t.Errorf("schedule times = %v, want sorted [08:00 20:00]", sched.Times)
		}

		st, body = doReq(t, ts.URL, "GET", "/pets/"+petID+"/medications/upcoming", ownerID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 upcoming, got %d body=%s", st, string(body))
		}
		var occs []struct {
			Date      string `json:"date"`
			Time      string `json:"time"`
			DoseLabel string `json:"dose_label"`
		}
		_ = json.Unmarshal(body, &occs)
		if len(occs) != 14 {
			t.Fatalf("upcoming occurrences = %d, want 14 (7 días x 2 tomas)", len(occs))
		}
		if occs[0].Date != "2025-03-10" || occs[0].Time != "08:00" || occs[0].DoseLabel != "6mg" {
			t.Errorf("first occurrence = %+v, want hoy 08:00 6mg", occs[0])
		}
	}
	{
		st, _ := doReq(t, ts.URL, "POST", "/pets/"+petID+"/medications", ownerID, map[string]any{
			"drug":  "항생제",
			"times": []string{"8:00"},
		})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 for malformed time, got %d", st)
		}
	}

	// 8) Cita veterinaria con defaults (hoy 10:00)
	{
		st, body := doReq(t, ts.URL, "POST", "/pets/"+petID+"/appointments", ownerID, map[string]any{
			"title": "정기검진",
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 create appointment, got %d body=%s", st, string(body))
		}
		var appt struct {
			At time.Time `json:"at"`
		}
		_ = json.Unmarshal(body, &appt)
		if appt.At.Format("15:04") != "10:00" {
			t.Errorf("appointment time = %s, want 10:00", appt.At.Format("15:04"))
		}
	}

	// 9) Tabla de peligro sembrada: el chocolate aparece por substring
	{
		st, body := doReq(t, ts.URL, "GET", "/unsafe?q=초콜", ownerID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 unsafe search, got %d", st)
		}
		var items []struct {
			Name string `json:"name"`
			Risk string `json:"risk"`
		}
		_ = json.Unmarshal(body, &items)
		if len(items) != 1 || items[0].Risk != "high" {
			t.Fatalf("unsafe search = %+v, want solo 초콜릿 high", items)
		}
	}

	// 10) Reset de logs: el consumo de hoy vuelve a cero
	{
		st, _ := doReq(t, ts.URL, "DELETE", "/logs", ownerID, nil)
		if st != http.StatusNoContent {
			t.Fatalf("expected 204 clear logs, got %d", st)
		}

		st, body := doReq(t, ts.URL, "GET", "/pets/"+petID+"/dashboard", ownerID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 dashboard after clear, got %d", st)
		}
		var resp struct {
			FoodEatenG   int `json:"food_eaten_g"`
			WaterDrankMl int `json:"water_drank_ml"`
		}
		_ = json.Unmarshal(body, &resp)
		if resp.FoodEatenG != 0 || resp.WaterDrankMl != 0 {
			t.Errorf("after clear = (%d, %d), want (0, 0)", resp.FoodEatenG, resp.WaterDrankMl)
		}
	}
}

func TestHTTP_TokenAuthFlow(t *testing.T) {
	tokens := token.NewManager("test-secret", time.Hour)

	ts := httptest.NewServer(router.NewRouter(router.Options{
		AuthVerifier: tokens,
		Issuer:       tokens,
		Clock:        fixedClock(t),
	}))
	defer ts.Close()

	// registro + login
	{
		st, body := doReq(t, ts.URL, "POST", "/auth/register", "", map[string]any{
			"username": "mina",
			"password": "secret123",
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 register, got %d body=%s", st, string(body))
		}
	}
	{
		st, _ := doReq(t, ts.URL, "POST", "/auth/register", "", map[string]any{
			"username": "mina",
			"password": "other",
		})
		if st != http.StatusConflict {
			t.Fatalf("expected 409 duplicate username, got %d", st)
		}
	}

	var tok string
	{
		st, body := doReq(t, ts.URL, "POST", "/auth/login", "", map[string]any{
			"username": "mina",
			"password": "secret123",
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 login, got %d body=%s", st, string(body))
		}
		var resp struct {
			Token string `json:"token"`
		}
		_ = json.Unmarshal(body, &resp)
		if resp.Token == "" {
			t.Fatalf("login: missing token body=%s", string(body))
		}
		tok = resp.Token
	}

	// sin token => 401
	{
		st, _ := doReq(t, ts.URL, "GET", "/auth/me", "", nil)
		if st != http.StatusUnauthorized {
			t.Fatalf("expected 401 without token, got %d", st)
		}
	}

	// con token => perfil y alta de mascota
	{
		st, body := doBearerReq(t, ts.URL, "GET", "/auth/me", tok, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 me, got %d body=%s", st, string(body))
		}
		var me struct {
			Username string `json:"username"`
		}
		_ = json.Unmarshal(body, &me)
		if me.Username != "mina" {
			t.Errorf("me.username = %q, want mina", me.Username)
		}
	}
	{
		st, body := doBearerReq(t, ts.URL, "POST", "/pets", tok, map[string]any{
			"name":    "Nabi",
			"species": "cat",
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 create pet with token, got %d body=%s", st, string(body))
		}
	}

	// credenciales malas => 401
	{
		st, _ := doReq(t, ts.URL, "POST", "/auth/login", "", map[string]any{
			"username": "mina",
			"password": "wrong",
		})
		if st != http.StatusUnauthorized {
			t.Fatalf("expected 401 bad password, got %d", st)
		}
	}
}

func createPet(t *testing.T, baseURL, userID string, payload map[string]any) string {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", "/pets", userID, payload)
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create pet, got %d body=%s", st, string(body))
	}

	var resp struct {
		ID string `json:"id"`
	}
	_ = json.Unmarshal(body, &resp)
	if resp.ID == "" {
		t.Fatalf("create pet: missing id body=%s", string(body))
	}
	return resp.ID
}

func doReq(t *testing.T, baseURL, method, path, debugUserID string, body any) (int, []byte) {
	t.Helper()

	req := newReq(t, baseURL, method, path, body)
	if debugUserID != "" {
		req.Header.Set("X-Debug-User-ID", debugUserID)
	}
	return send(t, req)
}

func doBearerReq(t *testing.T, baseURL, method, path, token string, body any) (int, []byte) {
	t.Helper()

	req := newReq(t, baseURL, method, path, body)
	req.Header.Set("Authorization", "Bearer "+token)
	return send(t, req)
}

func newReq(t *testing.T, baseURL, method, path string, body any) *http.Request {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("json marshal: %v", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, rdr)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}

func send(t *testing.T, req *http.Request) (int, []byte) {
	t.Helper()

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	respBody, _ := io.ReadAll(res.Body)
	return res.StatusCode, respBody
}
