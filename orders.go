package tradestation

import (
	"context"
	"net/url"
)

// ConfirmOrder estimates the cost and commission of an order without
// placing it.
func (c *Client) ConfirmOrder(ctx context.Context, req *OrderRequest) (*OrderConfirmResponses, error) {
	out := &OrderConfirmResponses{}
	if err := c.post(ctx, "/v3/orderexecution/orderconfirm", req, out); err != nil {
		return nil, err
	}
	return out, nil
}

// PlaceOrder submits an order. Per-order rejections come back inside the
// response rather than as an HTTP error.
func (c *Client) PlaceOrder(ctx context.Context, req *OrderRequest) (*OrderResponses, error) {
	out := &OrderResponses{}
	if err := c.post(ctx, "/v3/orderexecution/orders", req, out); err != nil {
		return nil, err
	}
	return out, nil
}

// ConfirmGroupOrder estimates a bracket or OCO group without placing it.
func (c *Client) ConfirmGroupOrder(ctx context.Context, req *GroupOrderRequest) (*OrderConfirmResponses, error) {
	out := &OrderConfirmResponses{}
	if err := c.post(ctx, "/v3/orderexecution/ordergroupconfirm", req, out); err != nil {
		return nil, err
	}
	return out, nil
}

// PlaceGroupOrder submits a bracket or OCO group as one unit.
func (c *Client) PlaceGroupOrder(ctx context.Context, req *GroupOrderRequest) (*OrderResponses, error) {
	out := &OrderResponses{}
	if err := c.post(ctx, "/v3/orderexecution/ordergroups", req, out); err != nil {
		return nil, err
	}
	return out, nil
}

// ReplaceOrder updates a working order in place.
func (c *Client) ReplaceOrder(ctx context.Context, orderID string, req *OrderReplaceRequest) (*OrderResponse, error) {
	out := &OrderResponse{}
	if err := c.put(ctx, "/v3/orderexecution/orders/"+url.PathEscape(orderID), req, out); err != nil {
		return nil, err
	}
	return out, nil
}

// CancelOrder cancels a working order. Orders past the point of no return
// report the failure in the response body.
func (c *Client) CancelOrder(ctx context.Context, orderID string) (*OrderResponse, error) {
	out := &OrderResponse{}
	if err := c.delete(ctx, "/v3/orderexecution/orders/"+url.PathEscape(orderID), out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetActivationTriggers lists the tick patterns usable in market
// activation rules.
func (c *Client) GetActivationTriggers(ctx context.Context) (*ActivationTriggers, error) {
	out := &ActivationTriggers{}
	if err := c.get(ctx, "/v3/orderexecution/activationtriggers", nil, out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetRoutes lists the valid order routing destinations.
func (c *Client) GetRoutes(ctx context.Context) (*Routes, error) {
	out := &Routes{}
	if err := c.get(ctx, "/v3/orderexecution/routes", nil, out); err != nil {
		return nil, err
	}
	return out, nil
}
