package tradestation

import (
	"context"
	"net/url"
	"strconv"
	"strings"
)

func joinIDs(ids []string) string {
	return url.PathEscape(strings.Join(ids, ","))
}

// GetAccounts fetches the brokerage accounts available to the
// authenticated user.
func (c *Client) GetAccounts(ctx context.Context) (*Accounts, error) {
	out := &Accounts{}
	if err := c.get(ctx, "/v3/brokerage/accounts", nil, out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetBalances fetches real-time balances for up to 25 accounts. Failures
// for individual accounts come back in Errors alongside the successes.
func (c *Client) GetBalances(ctx context.Context, accountIDs []string) (*Balances, error) {
	out := &Balances{}
	if err := c.get(ctx, "/v3/brokerage/accounts/"+joinIDs(accountIDs)+"/balances", nil, out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetBalancesBOD fetches beginning-of-day balances for up to 25 accounts.
func (c *Client) GetBalancesBOD(ctx context.Context, accountIDs []string) (*BalancesBOD, error) {
	out := &BalancesBOD{}
	if err := c.get(ctx, "/v3/brokerage/accounts/"+joinIDs(accountIDs)+"/bodbalances", nil, out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetPositions fetches open positions for up to 25 accounts. symbol
// optionally filters the result; wildcards like `MSFT *` select option
// positions on an underlying.
func (c *Client) GetPositions(ctx context.Context, accountIDs []string, symbol string) (*Positions, error) {
	var query url.Values
	if symbol != "" {
		query = url.Values{"symbol": {symbol}}
	}
	out := &Positions{}
	if err := c.get(ctx, "/v3/brokerage/accounts/"+joinIDs(accountIDs)+"/positions", query, out); err != nil {
		return nil, err
	}
	return out, nil
}

// OrdersQuery are the paging parameters of the order listing endpoints.
// A zero PageSize leaves paging to the server default of 600.
type OrdersQuery struct {
	PageSize  int
	NextToken string
}

func (q OrdersQuery) values() url.Values {
	v := url.Values{}
	if q.PageSize > 0 {
		v.Set("pageSize", strconv.Itoa(q.PageSize))
	}
	if q.NextToken != "" {
		v.Set("nextToken", q.NextToken)
	}
	return v
}

// GetOrders fetches today's and open orders for up to 25 accounts. Pass
// the returned NextToken back in to page through large result sets.
func (c *Client) GetOrders(ctx context.Context, accountIDs []string, query OrdersQuery) (*Orders, error) {
	out := &Orders{}
	if err := c.get(ctx, "/v3/brokerage/accounts/"+joinIDs(accountIDs)+"/orders", query.values(), out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetOrdersByID fetches specific orders by ID.
func (c *Client) GetOrdersByID(ctx context.Context, accountIDs, orderIDs []string) (*OrdersByID, error) {
	out := &OrdersByID{}
	path := "/v3/brokerage/accounts/" + joinIDs(accountIDs) + "/orders/" + joinIDs(orderIDs)
	if err := c.get(ctx, path, nil, out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetHistoricalOrders fetches closed orders since the given date
// (formatted 2006-01-02), limited to 90 days back.
func (c *Client) GetHistoricalOrders(ctx context.Context, accountIDs []string, since string, query OrdersQuery) (*Orders, error) {
	v := query.values()
	v.Set("since", since)
	out := &Orders{}
	if err := c.get(ctx, "/v3/brokerage/accounts/"+joinIDs(accountIDs)+"/historicalorders", v, out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetHistoricalOrdersByID fetches specific closed orders since the given
// date.
func (c *Client) GetHistoricalOrdersByID(ctx context.Context, accountIDs, orderIDs []string, since string) (*OrdersByID, error) {
	v := url.Values{"since": {since}}
	out := &OrdersByID{}
	path := "/v3/brokerage/accounts/" + joinIDs(accountIDs) + "/historicalorders/" + joinIDs(orderIDs)
	if err := c.get(ctx, path, v, out); err != nil {
		return nil, err
	}
	return out, nil
}
