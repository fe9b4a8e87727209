package tradestation

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

// newTestClient builds a client backed by a fake token endpoint and the
// given API handler. The seeded refresh token makes the first call mint
// an access token from the fake endpoint.
func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()

	tokenSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"access_token":"TEST","refresh_token":"R","expires_in":1200}`)
	}))
	t.Cleanup(tokenSrv.Close)

	apiSrv := httptest.NewServer(handler)
	t.Cleanup(apiSrv.Close)

	c, err := New(Config{
		ClientID:     "cid",
		ClientSecret: "csecret",
		BaseURL:      apiSrv.URL,
		TokenURL:     tokenSrv.URL,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	c.SetRefreshToken("seed")
	return c, apiSrv
}

func TestGetAccounts(t *testing.T) {
	t.Parallel()

	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v3/brokerage/accounts" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer TEST" {
			t.Errorf("Authorization = %q, want Bearer TEST", got)
		}
		fmt.Fprint(w, `{"Accounts":[{"AccountID":"123456","AccountType":"Margin","Currency":"USD"}]}`)
	}))

	accounts, err := c.GetAccounts(context.Background())
	if err != nil {
		t.Fatalf("GetAccounts: %v", err)
	}
	if len(accounts.Accounts) != 1 || accounts.Accounts[0].AccountID != "123456" {
		t.Errorf("accounts = %+v", accounts)
	}
}

func TestKnownErrorStatusReturnsAPIError(t *testing.T) {
	t.Parallel()

	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, `{"Error":"Unauthorized","Message":"The access token is expired"}`)
	}))

	_, err := c.GetAccounts(context.Background())
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error = %v, want *APIError", err)
	}
	if apiErr.StatusCode != http.StatusUnauthorized {
		t.Errorf("StatusCode = %d, want 401", apiErr.StatusCode)
	}
	if apiErr.Response.Error != "Unauthorized" || apiErr.Response.Message != "The access token is expired" {
		t.Errorf("Response = %+v", apiErr.Response)
	}
}

func TestUnexpectedStatusIsHardError(t *testing.T) {
	t.Parallel()

	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		fmt.Fprint(w, `short and stout`)
	}))

	_, err := c.GetAccounts(context.Background())
	if err == nil {
		t.Fatal("want an error for status 418")
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		t.Errorf("status 418 produced a structured APIError: %v", err)
	}
}

func TestPartialSuccessBalances(t *testing.T) {
	t.Parallel()

	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v3/brokerage/accounts/A1,A2/balances" {
			t.Errorf("path = %q", r.URL.Path)
		}
		fmt.Fprint(w, `{"Balances":[{"AccountID":"A1","CashBalance":"1000.00"}],"Errors":[{"AccountID":"A2","Error":"Forbidden","Message":"no access"}]}`)
	}))

	balances, err := c.GetBalances(context.Background(), []string{"A1", "A2"})
	if err != nil {
		t.Fatalf("GetBalances: %v", err)
	}
	if len(balances.Balances) != 1 || balances.Balances[0].CashBalance != "1000.00" {
		t.Errorf("balances = %+v", balances.Balances)
	}
	if len(balances.Errors) != 1 || balances.Errors[0].AccountID != "A2" {
		t.Errorf("errors = %+v", balances.Errors)
	}
}

func TestGetOrdersPaging(t *testing.T) {
	t.Parallel()

	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("pageSize") != "2" {
			t.Errorf("pageSize = %q, want 2", q.Get("pageSize"))
		}
		if q.Get("nextToken") == "" {
			fmt.Fprint(w, `{"Orders":[{"OrderID":"1"},{"OrderID":"2"}],"NextToken":"tok"}`)
			return
		}
		fmt.Fprint(w, `{"Orders":[{"OrderID":"3"}]}`)
	}))

	page1, err := c.GetOrders(context.Background(), []string{"A1"}, OrdersQuery{PageSize: 2})
	if err != nil {
		t.Fatalf("GetOrders: %v", err)
	}
	if page1.NextToken != "tok" || len(page1.Orders) != 2 {
		t.Fatalf("page1 = %+v", page1)
	}

	page2, err := c.GetOrders(context.Background(), []string{"A1"}, OrdersQuery{PageSize: 2, NextToken: page1.NextToken})
	if err != nil {
		t.Fatalf("GetOrders page 2: %v", err)
	}
	if page2.NextToken != "" || len(page2.Orders) != 1 {
		t.Errorf("page2 = %+v", page2)
	}
}

func TestPlaceOrderSendsBody(t *testing.T) {
	t.Parallel()

	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/v3/orderexecution/orders" {
			t.Errorf("%s %s", r.Method, r.URL.Path)
		}
		if got := r.Header.Get("Content-Type"); got != "application/json" {
			t.Errorf("Content-Type = %q", got)
		}
		fmt.Fprint(w, `{"Orders":[{"Message":"Sent order","OrderID":"786539123"}]}`)
	}))

	resp, err := c.PlaceOrder(context.Background(), &OrderRequest{
		AccountID:   "123456",
		OrderType:   OrderTypeLimit,
		Symbol:      "MSFT",
		Quantity:    "10",
		TradeAction: TradeActionBuy,
		LimitPrice:  "300.00",
		TimeInForce: TimeInForce{Duration: DurationDay},
	})
	if err != nil {
		t.Fatalf("PlaceOrder: %v", err)
	}
	if len(resp.Orders) != 1 || resp.Orders[0].OrderID != "786539123" {
		t.Errorf("resp = %+v", resp)
	}
}

func TestCancelOrder(t *testing.T) {
	t.Parallel()

	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete || r.URL.Path != "/v3/orderexecution/orders/123" {
			t.Errorf("%s %s", r.Method, r.URL.Path)
		}
		fmt.Fprint(w, `{"OrderID":"123","Message":"Cancel request sent"}`)
	}))

	resp, err := c.CancelOrder(context.Background(), "123")
	if err != nil {
		t.Fatalf("CancelOrder: %v", err)
	}
	if resp.OrderID != "123" {
		t.Errorf("resp = %+v", resp)
	}
}

func TestSuggestSymbolsBareArray(t *testing.T) {
	t.Parallel()

	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v2/data/symbols/suggest/MSF" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if got := r.URL.Query().Get("$top"); got != "5" {
			t.Errorf("$top = %q, want 5", got)
		}
		fmt.Fprint(w, `[{"Name":"MSFT","Description":"MICROSOFT CORP","Category":"Stock"}]`)
	}))

	matches, err := c.SuggestSymbols(context.Background(), "MSF", 5, "")
	if err != nil {
		t.Fatalf("SuggestSymbols: %v", err)
	}
	if len(matches) != 1 || matches[0].Name != "MSFT" {
		t.Errorf("matches = %+v", matches)
	}
}

func TestDemoSelectsSimHost(t *testing.T) {
	t.Parallel()

	live, err := New(Config{ClientID: "a", ClientSecret: "b"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if live.baseURL != LiveURL {
		t.Errorf("baseURL = %q, want %q", live.baseURL, LiveURL)
	}

	demo, err := New(Config{ClientID: "a", ClientSecret: "b", Demo: true})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if demo.baseURL != DemoURL {
		t.Errorf("baseURL = %q, want %q", demo.baseURL, DemoURL)
	}
}
