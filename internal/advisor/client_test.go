package advisor

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/theirongolddev/hisab/internal/model"
)

func fakeAPI(t *testing.T, status int, text string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if !strings.Contains(r.URL.Path, ":generateContent") {
			t.Errorf("path = %s, want generateContent", r.URL.Path)
		}
		if r.URL.Query().Get("key") == "" {
			t.Error("missing key query parameter")
		}

		var req generateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decoding request: %v", err)
		}
		if len(req.Contents) == 0 || len(req.Contents[0].Parts) == 0 {
			t.Error("request has no prompt parts")
		}

		w.WriteHeader(status)
		resp := generateResponse{}
		if text != "" {
			resp.Candidates = []struct {
				Content content `json:"content"`
			}{{Content: content{Parts: []part{{Text: text}}}}}
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
}

func TestGenerateReturnsFirstCandidate(t *testing.T) {
	srv := fakeAPI(t, http.StatusOK, "Looking steady today.")
	defer srv.Close()

	c := NewClient("test-key", "", srv.URL)
	got, err := c.Generate(context.Background(), "hello")
	if err != nil {
		t.Fatal(err)
	}
	if got != "Looking steady today." {
		t.Errorf("Generate = %q", got)
	}
}

func TestGenerateEmptyResponse(t *testing.T) {
	srv := fakeAPI(t, http.StatusOK, "")
	defer srv.Close()

	c := NewClient("test-key", "", srv.URL)
	_, err := c.Generate(context.Background(), "hello")
	if !errors.Is(err, ErrEmptyResponse) {
		t.Errorf("err = %v, want ErrEmptyResponse", err)
	}
}

func TestGenerateServerError(t *testing.T) {
	srv := fakeAPI(t, http.StatusInternalServerError, "")
	defer srv.Close()

	c := NewClient("test-key", "", srv.URL)
	_, err := c.Generate(context.Background(), "hello")
	if err == nil {
		t.Fatal("expected error on 500")
	}
}

func TestNilClientFallsBack(t *testing.T) {
	var c *Client
	if got := c.DailyUpdate(context.Background(), Digest{}); got != DailyFallback {
		t.Errorf("DailyUpdate on nil client = %q, want fallback", got)
	}
	if got := c.StrategyPlan(context.Background(), Digest{}); got != StrategyFallback {
		t.Errorf("StrategyPlan on nil client = %q, want fallback", got)
	}
}

func TestNewClientWithoutKey(t *testing.T) {
	if c := NewClient("", "m", "u"); c != nil {
		t.Error("NewClient with empty key should return nil")
	}
}

func TestDailyUpdateFallsBackOnFailure(t *testing.T) {
	srv := fakeAPI(t, http.StatusBadGateway, "")
	defer srv.Close()

	c := NewClient("test-key", "", srv.URL)
	if got := c.DailyUpdate(context.Background(), Digest{}); got != DailyFallback {
		t.Errorf("DailyUpdate on failure = %q, want fallback", got)
	}
}

func TestNewDigestLimitsRecent(t *testing.T) {
	s := model.FinancialState{
		BankBalance: decimal.NewFromInt(290000),
		Transactions: []model.Transaction{
			{ID: "a", Type: model.Income, Amount: decimal.NewFromInt(1), Date: time.Now()},
			{ID: "b", Type: model.Income, Amount: decimal.NewFromInt(2), Date: time.Now()},
			{ID: "c", Type: model.Income, Amount: decimal.NewFromInt(3), Date: time.Now()},
			{ID: "d", Type: model.Income, Amount: decimal.NewFromInt(4), Date: time.Now()},
		},
		Goals: []model.Goal{{ID: "g1"}},
		Liabilities: []model.Liability{
			{Title: "Toma", TotalAmount: decimal.NewFromInt(120000)},
			{Title: "Mama", TotalAmount: decimal.NewFromInt(70000), PaidAmount: decimal.NewFromInt(5000)},
		},
	}

	d := NewDigest(s)
	if len(d.Recent) != 3 {
		t.Errorf("Recent has %d entries, want 3", len(d.Recent))
	}
	if d.Recent[0].ID != "a" {
		t.Errorf("Recent[0] = %s, want newest first", d.Recent[0].ID)
	}
	if !d.TotalDebt.Equal(decimal.NewFromInt(185000)) {
		t.Errorf("TotalDebt = %s, want 185000", d.TotalDebt)
	}
	if d.GoalCount != 1 {
		t.Errorf("GoalCount = %d, want 1", d.GoalCount)
	}
}

func TestPromptsMentionKeyFigures(t *testing.T) {
	d := Digest{
		BankBalance: decimal.NewFromInt(290000),
		TotalDebt:   decimal.NewFromInt(285000),
		Liabilities: []model.Liability{{Title: "Toma", TotalAmount: decimal.NewFromInt(120000)}},
		Goals:       []model.Goal{{Title: "Bike", TargetAmount: decimal.NewFromInt(50000)}},
	}

	daily := dailyPrompt(d)
	for _, want := range []string{"290000", "285000"} {
		if !strings.Contains(daily, want) {
			t.Errorf("daily prompt missing %q", want)
		}
	}

	strategy := strategyPrompt(d)
	for _, want := range []string{"Toma", "Bike", "snowball"} {
		if !strings.Contains(strategy, want) {
			t.Errorf("strategy prompt missing %q", want)
		}
	}
}
