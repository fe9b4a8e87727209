package tradestation

import "time"

// The types below mirror the TradeStation WebAPI wire contract: JSON keys
// are PascalCase, and money/quantity fields are decimal strings exactly as
// the API delivers them. Converting them to numeric types is left to the
// caller, which also keeps full precision.

// ErrorResponse is the error body returned by v3 endpoints on a known
// non-2xx status. Error is a title such as `BadRequest` or `Unauthorized`;
// Message describes the failure.
type ErrorResponse struct {
	Error   string `json:"Error,omitempty"`
	Message string `json:"Message,omitempty"`
}

// Error is the error body of the v2 symbol endpoints.
type Error struct {
	TraceID    string `json:"TraceId,omitempty"`
	StatusCode int    `json:"StatusCode,omitempty"`
	Message    string `json:"Message,omitempty"`
}

// Heartbeat is the periodic stream message sent to prove the connection is
// alive. One arrives after roughly five seconds of stream inactivity.
type Heartbeat struct {
	Heartbeat int       `json:"Heartbeat"`
	Timestamp time.Time `json:"Timestamp"`
}

// StreamStatus marks a stream lifecycle transition, e.g. `EndSnapshot`
// once the initial snapshot is complete or `GoAway` before a server
// shutdown.
type StreamStatus struct {
	StreamStatus string `json:"StreamStatus"`
}

// StreamErrorResponse is the in-band error object on market data streams.
type StreamErrorResponse struct {
	Error   string `json:"Error,omitempty"`
	Message string `json:"Message,omitempty"`
}

// StreamOrderErrorResponse is the in-band error object on order streams.
type StreamOrderErrorResponse struct {
	Error     string `json:"Error,omitempty"`
	Message   string `json:"Message,omitempty"`
	AccountID string `json:"AccountID,omitempty"`
}

// StreamOrderByOrderIDErrorResponse is the in-band error object on the
// order-by-id stream; it additionally names the order.
type StreamOrderByOrderIDErrorResponse struct {
	Error     string `json:"Error,omitempty"`
	Message   string `json:"Message,omitempty"`
	AccountID string `json:"AccountID,omitempty"`
	OrderID   string `json:"OrderID,omitempty"`
}

// StreamPositionsErrorResponse is the in-band error object on the
// positions stream.
type StreamPositionsErrorResponse struct {
	Error     string `json:"Error,omitempty"`
	Message   string `json:"Message,omitempty"`
	AccountID string `json:"AccountID,omitempty"`
}

// Accounts

// AccountDetail carries equities-specific account attributes.
type AccountDetail struct {
	DayTradingQualified        *bool `json:"DayTradingQualified,omitempty"`
	EnrolledInRegTProgram      *bool `json:"EnrolledInRegTProgram,omitempty"`
	IsStockLocateEligible      *bool `json:"IsStockLocateEligible,omitempty"`
	OptionApprovalLevel        *int  `json:"OptionApprovalLevel,omitempty"`
	PatternDayTrader           *bool `json:"PatternDayTrader,omitempty"`
	RequiresBuyingPowerWarning *bool `json:"RequiresBuyingPowerWarning,omitempty"`
}

// Account is one brokerage account of the authenticated user.
type Account struct {
	AccountDetail *AccountDetail `json:"AccountDetail,omitempty"`
	AccountID     string         `json:"AccountID,omitempty"`
	AccountType   string         `json:"AccountType,omitempty"` // Cash, Margin, Futures, DVP
	Alias         string         `json:"Alias,omitempty"`
	AltID         string         `json:"AltID,omitempty"`
	Currency      string         `json:"Currency,omitempty"`
	Status        string         `json:"Status,omitempty"`
}

// Accounts is the payload of the accounts endpoint.
type Accounts struct {
	Accounts []Account `json:"Accounts,omitempty"`
}

// Balances

// BalanceError reports a per-account failure inside a partial-success
// balances response.
type BalanceError struct {
	AccountID string `json:"AccountID,omitempty"`
	Error     string `json:"Error,omitempty"`
	Message   string `json:"Message,omitempty"`
}

// BalanceDetail holds the account-type dependent real-time balance fields.
type BalanceDetail struct {
	CostOfPositions          string `json:"CostOfPositions,omitempty"`
	DayTradeExcess           string `json:"DayTradeExcess,omitempty"`
	DayTradeMargin           string `json:"DayTradeMargin,omitempty"`
	DayTradeOpenOrderMargin  string `json:"DayTradeOpenOrderMargin,omitempty"`
	DayTrades                string `json:"DayTrades,omitempty"`
	InitialMargin            string `json:"InitialMargin,omitempty"`
	MaintenanceMargin        string `json:"MaintenanceMargin,omitempty"`
	MaintenanceRate          string `json:"MaintenanceRate,omitempty"`
	MarginRequirement        string `json:"MarginRequirement,omitempty"`
	OpenOrderMargin          string `json:"OpenOrderMargin,omitempty"`
	OptionBuyingPower        string `json:"OptionBuyingPower,omitempty"`
	OptionsMarketValue       string `json:"OptionsMarketValue,omitempty"`
	OvernightBuyingPower     string `json:"OvernightBuyingPower,omitempty"`
	RealizedProfitLoss       string `json:"RealizedProfitLoss,omitempty"`
	RequiredMargin           string `json:"RequiredMargin,omitempty"`
	SecurityOnDeposit        string `json:"SecurityOnDeposit,omitempty"`
	TodayRealTimeTradeEquity string `json:"TodayRealTimeTradeEquity,omitempty"`
	TradeEquity              string `json:"TradeEquity,omitempty"`
	UnrealizedProfitLoss     string `json:"UnrealizedProfitLoss,omitempty"`
	UnsettledFunds           string `json:"UnsettledFunds,omitempty"`
}

// CurrencyDetail describes balances per currency for futures accounts.
type CurrencyDetail struct {
	AccountConversionRate    string `json:"AccountConversionRate,omitempty"`
	AccountMarginRequirement string `json:"AccountMarginRequirement,omitempty"`
	CashBalance              string `json:"CashBalance,omitempty"`
	Commission               string `json:"Commission,omitempty"`
	Currency                 string `json:"Currency,omitempty"`
	InitialMargin            string `json:"InitialMargin,omitempty"`
	MaintenanceMargin        string `json:"MaintenanceMargin,omitempty"`
	RealizedProfitLoss       string `json:"RealizedProfitLoss,omitempty"`
	UnrealizedProfitLoss     string `json:"UnrealizedProfitLoss,omitempty"`
}

// Balance is the real-time balance of a single account.
type Balance struct {
	AccountID        string           `json:"AccountID,omitempty"`
	AccountType      string           `json:"AccountType,omitempty"`
	BalanceDetail    *BalanceDetail   `json:"BalanceDetail,omitempty"`
	BuyingPower      string           `json:"BuyingPower,omitempty"`
	CashBalance      string           `json:"CashBalance,omitempty"`
	Commission       string           `json:"Commission,omitempty"`
	CurrencyDetails  []CurrencyDetail `json:"CurrencyDetails,omitempty"`
	Equity           string           `json:"Equity,omitempty"`
	MarketValue      string           `json:"MarketValue,omitempty"`
	TodaysProfitLoss string           `json:"TodaysProfitLoss,omitempty"`
	UnclearedDeposit string           `json:"UnclearedDeposit,omitempty"`
}

// Balances is the payload of the balances endpoint.
type Balances struct {
	Balances []Balance      `json:"Balances,omitempty"`
	Errors   []BalanceError `json:"Errors,omitempty"`
}

// BODCurrencyDetail describes beginning-of-day balances per currency.
type BODCurrencyDetail struct {
	AccountMarginRequirement string `json:"AccountMarginRequirement,omitempty"`
	AccountOpenTradeEquity   string `json:"AccountOpenTradeEquity,omitempty"`
	AccountSecurities        string `json:"AccountSecurities,omitempty"`
	CashBalance              string `json:"CashBalance,omitempty"`
	Currency                 string `json:"Currency,omitempty"`
	MarginRequirement        string `json:"MarginRequirement,omitempty"`
	OpenTradeEquity          string `json:"OpenTradeEquity,omitempty"`
	Securities               string `json:"Securities,omitempty"`
}

// BODBalanceDetail holds the account-type dependent beginning-of-day
// balance fields.
type BODBalanceDetail struct {
	AccountBalance                  string `json:"AccountBalance,omitempty"`
	CashAvailableToWithdraw         string `json:"CashAvailableToWithdraw,omitempty"`
	DayTrades                       string `json:"DayTrades,omitempty"`
	DayTradingMarginableBuyingPower string `json:"DayTradingMarginableBuyingPower,omitempty"`
	Equity                          string `json:"Equity,omitempty"`
	NetCash                         string `json:"NetCash,omitempty"`
	OpenTradeEquity                 string `json:"OpenTradeEquity,omitempty"`
	OptionBuyingPower               string `json:"OptionBuyingPower,omitempty"`
	OptionValue                     string `json:"OptionValue,omitempty"`
	OvernightBuyingPower            string `json:"OvernightBuyingPower,omitempty"`
	SecurityOnDeposit               string `json:"SecurityOnDeposit,omitempty"`
}

// BODBalance is the beginning-of-day balance of a single account.
type BODBalance struct {
	AccountID       string              `json:"AccountID,omitempty"`
	AccountType     string              `json:"AccountType,omitempty"`
	BalanceDetail   *BODBalanceDetail   `json:"BalanceDetail,omitempty"`
	CurrencyDetails []BODCurrencyDetail `json:"CurrencyDetails,omitempty"`
}

// BalancesBOD is the payload of the beginning-of-day balances endpoint.
type BalancesBOD struct {
	BODBalances []BODBalance   `json:"BODBalances,omitempty"`
	Errors      []BalanceError `json:"Errors,omitempty"`
}

// Positions

// PositionError reports a per-account failure inside a partial-success
// positions response.
type PositionError struct {
	AccountID string `json:"AccountID,omitempty"`
	Error     string `json:"Error,omitempty"`
	Message   string `json:"Message,omitempty"`
}

// PositionDirection is Long or Short.
type PositionDirection string

const (
	PositionLong  PositionDirection = "Long"
	PositionShort PositionDirection = "Short"
)

// Position is one open position. On the positions stream, Deleted is sent
// as true (alongside only the PositionID) when a position closes.
type Position struct {
	AccountID               string            `json:"AccountID,omitempty"`
	AssetType               string            `json:"AssetType,omitempty"`
	AveragePrice            string            `json:"AveragePrice,omitempty"`
	Bid                     string            `json:"Bid,omitempty"`
	Ask                     string            `json:"Ask,omitempty"`
	ConversionRate          string            `json:"ConversionRate,omitempty"`
	DayTradeRequirement     string            `json:"DayTradeRequirement,omitempty"`
	Deleted                 bool              `json:"Deleted,omitempty"`
	ExpirationDate          string            `json:"ExpirationDate,omitempty"`
	InitialRequirement      string            `json:"InitialRequirement,omitempty"`
	MaintenanceMargin       string            `json:"MaintenanceMargin,omitempty"`
	Last                    string            `json:"Last,omitempty"`
	LongShort               PositionDirection `json:"LongShort,omitempty"`
	MarkToMarketPrice       string            `json:"MarkToMarketPrice,omitempty"`
	MarketValue             string            `json:"MarketValue,omitempty"`
	PositionID              string            `json:"PositionID,omitempty"`
	Quantity                string            `json:"Quantity,omitempty"`
	Symbol                  string            `json:"Symbol,omitempty"`
	Timestamp               string            `json:"Timestamp,omitempty"`
	TodaysProfitLoss        string            `json:"TodaysProfitLoss,omitempty"`
	TotalCost               string            `json:"TotalCost,omitempty"`
	UnrealizedProfitLoss    string            `json:"UnrealizedProfitLoss,omitempty"`
	UnrealizedProfitLossPct string            `json:"UnrealizedProfitLossPercent,omitempty"`
	UnrealizedProfitLossQty string            `json:"UnrealizedProfitLossQty,omitempty"`
}

// Positions is the payload of the positions endpoint.
type Positions struct {
	Positions []Position      `json:"Positions,omitempty"`
	Errors    []PositionError `json:"Errors,omitempty"`
}

// Orders

// OrderStatus is the short status code of an order.
type OrderStatus string

// The commonly observed order status codes.
const (
	OrderStatusReceived        OrderStatus = "ACK"
	OrderStatusBroken          OrderStatus = "BRO"
	OrderStatusCanceled        OrderStatus = "CAN"
	OrderStatusExpired         OrderStatus = "EXP"
	OrderStatusFilled          OrderStatus = "FLL"
	OrderStatusPartialFillDone OrderStatus = "FLP"
	OrderStatusPartialFill     OrderStatus = "FPR"
	OrderStatusTooLateToCancel OrderStatus = "LAT"
	OrderStatusSent            OrderStatus = "OPN"
	OrderStatusUROut           OrderStatus = "OUT"
	OrderStatusRejected        OrderStatus = "REJ"
	OrderStatusReplaced        OrderStatus = "UCH"
	OrderStatusCancelSent      OrderStatus = "UCN"
	OrderStatusQueued          OrderStatus = "DON"
	OrderStatusReplaceSent     OrderStatus = "RSN"
	OrderStatusConditionMet    OrderStatus = "CND"
	OrderStatusSuspended       OrderStatus = "SUS"
)

// OrderType is the pricing style of an order.
type OrderType string

const (
	OrderTypeLimit      OrderType = "Limit"
	OrderTypeMarket     OrderType = "Market"
	OrderTypeStopMarket OrderType = "StopMarket"
	OrderTypeStopLimit  OrderType = "StopLimit"
)

// TradeAction conveys the intent of a trade.
type TradeAction string

const (
	TradeActionBuy         TradeAction = "BUY"
	TradeActionSell        TradeAction = "SELL"
	TradeActionBuyToCover  TradeAction = "BUYTOCOVER"
	TradeActionSellShort   TradeAction = "SELLSHORT"
	TradeActionBuyToOpen   TradeAction = "BUYTOOPEN"
	TradeActionBuyToClose  TradeAction = "BUYTOCLOSE"
	TradeActionSellToOpen  TradeAction = "SELLTOOPEN"
	TradeActionSellToClose TradeAction = "SELLTOCLOSE"
)

// OrderDuration is how long an order remains working.
type OrderDuration string

const (
	DurationDay               OrderDuration = "DAY"
	DurationDayPlus           OrderDuration = "DYP"
	DurationGoodTillCanceled  OrderDuration = "GTC"
	DurationGTCPlus           OrderDuration = "GCP"
	DurationGoodThroughDate   OrderDuration = "GTD"
	DurationGTDPlus           OrderDuration = "GDP"
	DurationAtOpening         OrderDuration = "OPG"
	DurationOnClose           OrderDuration = "CLO"
	DurationImmediateOrCancel OrderDuration = "IOC"
	DurationFillOrKill        OrderDuration = "FOK"
)

// TrailingStop is an offset from the current price, as an amount or a
// percentage. The two fields are mutually exclusive.
type TrailingStop struct {
	Amount  string `json:"Amount,omitempty"`
	Percent string `json:"Percent,omitempty"`
}

// OrderLeg is one leg of a (possibly multi-leg) order.
type OrderLeg struct {
	AssetType         string `json:"AssetType,omitempty"`
	BuyOrSell         string `json:"BuyOrSell,omitempty"`
	ExecQuantity      string `json:"ExecQuantity,omitempty"`
	ExecutionPrice    string `json:"ExecutionPrice,omitempty"`
	ExpirationDate    string `json:"ExpirationDate,omitempty"`
	OpenOrClose       string `json:"OpenOrClose,omitempty"`
	OptionType        string `json:"OptionType,omitempty"`
	QuantityOrdered   string `json:"QuantityOrdered,omitempty"`
	QuantityRemaining string `json:"QuantityRemaining,omitempty"`
	StrikePrice       string `json:"StrikePrice,omitempty"`
	Symbol            string `json:"Symbol,omitempty"`
	Underlying        string `json:"Underlying,omitempty"`
}

// OrderRelationship links an order to the other members of its group.
type OrderRelationship struct {
	OrderID      string `json:"OrderID,omitempty"`
	Relationship string `json:"Relationship,omitempty"` // BRK, OSP, OSO, OCO
}

// MarketActivationRule places an order when a symbol's price action
// satisfies a predicate.
type MarketActivationRule struct {
	RuleType      string `json:"RuleType,omitempty"`
	Symbol        string `json:"Symbol,omitempty"`
	Predicate     string `json:"Predicate,omitempty"` // Lt, Lte, Gt, Gte
	TriggerKey    string `json:"TriggerKey,omitempty"`
	Price         string `json:"Price,omitempty"`
	LogicOperator string `json:"LogicOperator,omitempty"` // And, Or
}

// TimeActivationRule places an order at a given time. The date portion of
// TimeUtc is not used and comes back as "0001-01-01".
type TimeActivationRule struct {
	TimeUtc string `json:"TimeUtc,omitempty"`
}

// Order is a brokerage order as returned by the order and order-stream
// endpoints. Historical orders share the same shape.
type Order struct {
	AccountID               string                 `json:"AccountID,omitempty"`
	AdvancedOptions         string                 `json:"AdvancedOptions,omitempty"`
	ClosedDateTime          string                 `json:"ClosedDateTime,omitempty"`
	CommissionFee           string                 `json:"CommissionFee,omitempty"`
	ConditionalOrders       []OrderRelationship    `json:"ConditionalOrders,omitempty"`
	ConversionRate          string                 `json:"ConversionRate,omitempty"`
	Currency                string                 `json:"Currency,omitempty"`
	Duration                string                 `json:"Duration,omitempty"`
	FilledPrice             string                 `json:"FilledPrice,omitempty"`
	GoodTillDate            string                 `json:"GoodTillDate,omitempty"`
	GroupName               string                 `json:"GroupName,omitempty"`
	Legs                    []OrderLeg             `json:"Legs,omitempty"`
	MarketActivationRules   []MarketActivationRule `json:"MarketActivationRules,omitempty"`
	TimeActivationRules     []TimeActivationRule   `json:"TimeActivationRules,omitempty"`
	LimitPrice              string                 `json:"LimitPrice,omitempty"`
	OpenedDateTime          string                 `json:"OpenedDateTime,omitempty"`
	OrderID                 string                 `json:"OrderID,omitempty"`
	OrderType               OrderType              `json:"OrderType,omitempty"`
	PriceUsedForBuyingPower string                 `json:"PriceUsedForBuyingPower,omitempty"`
	RejectReason            string                 `json:"RejectReason,omitempty"`
	Routing                 string                 `json:"Routing,omitempty"`
	ShowOnlyQuantity        string                 `json:"ShowOnlyQuantity,omitempty"`
	Spread                  string                 `json:"Spread,omitempty"`
	Status                  OrderStatus            `json:"Status,omitempty"`
	StatusDescription       string                 `json:"StatusDescription,omitempty"`
	StopPrice               string                 `json:"StopPrice,omitempty"`
	TrailingStop            *TrailingStop          `json:"TrailingStop,omitempty"`
	UnbundledRouteFee       string                 `json:"UnbundledRouteFee,omitempty"`
}

// OrderError reports a per-account failure inside a partial-success
// orders response.
type OrderError struct {
	AccountID string `json:"AccountID,omitempty"`
	Error     string `json:"Error,omitempty"`
	Message   string `json:"Message,omitempty"`
}

// OrderByIDError additionally names the order that failed.
type OrderByIDError struct {
	AccountID string `json:"AccountID,omitempty"`
	OrderID   string `json:"OrderID,omitempty"`
	Error     string `json:"Error,omitempty"`
	Message   string `json:"Message,omitempty"`
}

// Orders is the payload of the orders endpoints, paginated via NextToken.
type Orders struct {
	Orders    []Order      `json:"Orders,omitempty"`
	Errors    []OrderError `json:"Errors,omitempty"`
	NextToken string       `json:"NextToken,omitempty"`
}

// OrdersByID is the payload of the orders-by-id endpoints.
type OrdersByID struct {
	Orders []Order          `json:"Orders,omitempty"`
	Errors []OrderByIDError `json:"Errors,omitempty"`
}

// Order placement

// AdvancedOptions are the optional execution instructions of an order
// request.
type AdvancedOptions struct {
	AddLiquidity          *bool                  `json:"AddLiquidity,omitempty"`
	AllOrNone             *bool                  `json:"AllOrNone,omitempty"`
	BookOnly              *bool                  `json:"BookOnly,omitempty"`
	DiscretionaryPrice    string                 `json:"DiscretionaryPrice,omitempty"`
	MarketActivationRules []MarketActivationRule `json:"MarketActivationRules,omitempty"`
	NonDisplay            *bool                  `json:"NonDisplay,omitempty"`
	PegValue              string                 `json:"PegValue,omitempty"` // BEST or MID
	ShowOnlyQuantity      string                 `json:"ShowOnlyQuantity,omitempty"`
	TimeActivationRules   []TimeActivationRule   `json:"TimeActivationRules,omitempty"`
	TrailingStop          *TrailingStop          `json:"TrailingStop,omitempty"`
}

// TimeInForce defines the duration and, for GTD orders, the expiration
// timestamp of an order.
type TimeInForce struct {
	Duration   OrderDuration `json:"Duration"`
	Expiration string        `json:"Expiration,omitempty"`
}

// OrderRequestLeg is one leg of a multi-leg order request.
type OrderRequestLeg struct {
	Quantity    string      `json:"Quantity"`
	Symbol      string      `json:"Symbol"`
	TradeAction TradeAction `json:"TradeAction"`
}

// OrderRequestOSO groups order-sends-order children with their trigger
// semantics.
type OrderRequestOSO struct {
	Orders []OrderRequest `json:"Orders"`
	Type   string         `json:"Type"` // NORMAL, BRK, OCO
}

// OrderRequest submits one order, possibly with legs and OSO children.
type OrderRequest struct {
	AccountID          string            `json:"AccountID"`
	OrderType          OrderType         `json:"OrderType"`
	Symbol             string            `json:"Symbol"`
	Quantity           string            `json:"Quantity"`
	TradeAction        TradeAction       `json:"TradeAction"`
	TimeInForce        TimeInForce       `json:"TimeInForce"`
	AdvancedOptions    *AdvancedOptions  `json:"AdvancedOptions,omitempty"`
	BuyingPowerWarning string            `json:"BuyingPowerWarning,omitempty"`
	Legs               []OrderRequestLeg `json:"Legs,omitempty"`
	LimitPrice         string            `json:"LimitPrice,omitempty"`
	OSOs               []OrderRequestOSO `json:"OSOs,omitempty"`
	OrderConfirmID     string            `json:"OrderConfirmID,omitempty"`
	Route              string            `json:"Route,omitempty"` // defaults to Intelligent server-side
	StopPrice          string            `json:"StopPrice,omitempty"`
}

// GroupOrderRequest places several orders as one bracket/OCO group.
type GroupOrderRequest struct {
	Orders []OrderRequest `json:"Orders"`
	Type   string         `json:"Type"` // BRK, OCO, NORMAL
}

// MarketActivationRulesReplace swaps the activation rules of a working
// order; ClearAll removes them instead.
type MarketActivationRulesReplace struct {
	ClearAll *bool                  `json:"ClearAll,omitempty"`
	Rules    []MarketActivationRule `json:"Rules,omitempty"`
}

// TimeActivationRulesReplace swaps the time activation rules of a working
// order; ClearAll removes them instead.
type TimeActivationRulesReplace struct {
	ClearAll *bool                `json:"ClearAll,omitempty"`
	Rules    []TimeActivationRule `json:"Rules,omitempty"`
}

// AdvancedOptionsReplace carries the replaceable advanced options.
type AdvancedOptionsReplace struct {
	ShowOnlyQuantity      string                        `json:"ShowOnlyQuantity,omitempty"`
	TrailingStop          *TrailingStop                 `json:"TrailingStop,omitempty"`
	MarketActivationRules *MarketActivationRulesReplace `json:"MarketActivationRules,omitempty"`
	TimeActivationRules   *TimeActivationRulesReplace   `json:"TimeActivationRules,omitempty"`
}

// OrderReplaceRequest updates a working order. At least one property must
// be set.
type OrderReplaceRequest struct {
	LimitPrice      string                  `json:"LimitPrice,omitempty"`
	StopPrice       string                  `json:"StopPrice,omitempty"`
	OrderType       OrderType               `json:"OrderType,omitempty"`
	Quantity        string                  `json:"Quantity,omitempty"`
	AdvancedOptions *AdvancedOptionsReplace `json:"AdvancedOptions,omitempty"`
}

// OrderResponse is the per-order result of placing, replacing, or
// cancelling a trade.
type OrderResponse struct {
	Error   string `json:"Error,omitempty"`
	Message string `json:"Message,omitempty"`
	OrderID string `json:"OrderID,omitempty"`
}

// OrderResponses is the result of placing one or more orders.
type OrderResponses struct {
	Errors []OrderResponse `json:"Errors,omitempty"`
	Orders []OrderResponse `json:"Orders,omitempty"`
}

// OrderConfirmResponseLeg is one leg of a confirmed (not placed) order.
type OrderConfirmResponseLeg struct {
	ExpirationDate string      `json:"ExpirationDate,omitempty"`
	OptionType     string      `json:"OptionType,omitempty"`
	Quantity       string      `json:"Quantity,omitempty"`
	StrikePrice    string      `json:"StrikePrice,omitempty"`
	Symbol         string      `json:"Symbol,omitempty"`
	TradeAction    TradeAction `json:"TradeAction,omitempty"`
}

// OrderConfirmResponse estimates the cost and margin impact of an order
// without placing it. Asset-specific fields are populated as applicable.
type OrderConfirmResponse struct {
	AccountCurrency          string                    `json:"AccountCurrency,omitempty"`
	AccountID                string                    `json:"AccountID,omitempty"`
	AddLiquidity             *bool                     `json:"AddLiquidity,omitempty"`
	AllOrNone                *bool                     `json:"AllOrNone,omitempty"`
	BaseCurrency             string                    `json:"BaseCurrency,omitempty"`
	BookOnly                 *bool                     `json:"BookOnly,omitempty"`
	CounterCurrency          string                    `json:"CounterCurrency,omitempty"`
	Currency                 string                    `json:"Currency,omitempty"`
	DebitCreditEstimatedCost string                    `json:"DebitCreditEstimatedCost,omitempty"`
	DiscretionaryPrice       string                    `json:"DiscretionaryPrice,omitempty"`
	EstimatedCommission      string                    `json:"EstimatedCommission,omitempty"`
	EstimatedCost            string                    `json:"EstimatedCost,omitempty"`
	EstimatedPrice           string                    `json:"EstimatedPrice,omitempty"`
	InitialMarginDisplay     string                    `json:"InitialMarginDisplay,omitempty"`
	Legs                     []OrderConfirmResponseLeg `json:"Legs,omitempty"`
	LimitPrice               string                    `json:"LimitPrice,omitempty"`
	NonDisplay               *bool                     `json:"NonDisplay,omitempty"`
	OrderAssetCategory       string                    `json:"OrderAssetCategory,omitempty"`
	OrderConfirmID           string                    `json:"OrderConfirmID,omitempty"`
	PegValue                 string                    `json:"PegValue,omitempty"`
	ProductCurrency          string                    `json:"ProductCurrency,omitempty"`
	Route                    string                    `json:"Route,omitempty"`
	ShowOnlyQuantity         *int                      `json:"ShowOnlyQuantity,omitempty"`
	Spread                   string                    `json:"Spread,omitempty"`
	StopPrice                string                    `json:"StopPrice,omitempty"`
	SummaryMessage           string                    `json:"SummaryMessage,omitempty"`
	TimeInForce              *TimeInForce              `json:"TimeInForce,omitempty"`
	TrailingStop             *TrailingStop             `json:"TrailingStop,omitempty"`
	Underlying               string                    `json:"Underlying,omitempty"`
}

// OrderConfirmResponses is the payload of the order-confirm endpoints.
type OrderConfirmResponses struct {
	Confirmations []OrderConfirmResponse `json:"Confirmations,omitempty"`
}

// Market data

// Bar is one interval of price history. On the bar stream the same shape
// arrives incrementally, with BarStatus marking open vs. closed bars.
type Bar struct {
	Close          float64   `json:"Close"`
	DownTicks      int64     `json:"DownTicks,omitempty"`
	DownVolume     int64     `json:"DownVolume,omitempty"`
	Epoch          int64     `json:"Epoch,omitempty"`
	High           float64   `json:"High"`
	IsEndOfHistory bool      `json:"IsEndOfHistory,omitempty"`
	IsRealtime     bool      `json:"IsRealtime,omitempty"`
	Low            float64   `json:"Low"`
	Open           float64   `json:"Open"`
	OpenInterest   int64     `json:"OpenInterest,omitempty"`
	TimeStamp      time.Time `json:"TimeStamp,omitempty"`
	TotalTicks     int64     `json:"TotalTicks,omitempty"`
	TotalVolume    int64     `json:"TotalVolume,omitempty"`
	UpTicks        int64     `json:"UpTicks,omitempty"`
	UpVolume       int64     `json:"UpVolume,omitempty"`
	BarStatus      string    `json:"BarStatus,omitempty"` // Open or Closed
}

// Bars is the payload of the barcharts endpoint.
type Bars struct {
	Bars []Bar `json:"Bars,omitempty"`
}

// TickBar is one streamed tick bar.
type TickBar struct {
	Close       float64 `json:"Close,omitempty"`
	TimeStamp   string  `json:"TimeStamp,omitempty"`
	TotalVolume float64 `json:"TotalVolume,omitempty"`
}

// MarketFlags carries per-symbol market state.
type MarketFlags struct {
	IsBats         bool `json:"IsBats,omitempty"`
	IsDelayed      bool `json:"IsDelayed,omitempty"`
	IsHalted       bool `json:"IsHalted,omitempty"`
	IsHardToBorrow bool `json:"IsHardToBorrow,omitempty"`
}

// Quote is the current price data of one symbol.
type Quote struct {
	Ask                 string       `json:"Ask,omitempty"`
	AskSize             string       `json:"AskSize,omitempty"`
	Bid                 string       `json:"Bid,omitempty"`
	BidSize             string       `json:"BidSize,omitempty"`
	Close               string       `json:"Close,omitempty"`
	DailyOpenInterest   string       `json:"DailyOpenInterest,omitempty"`
	High                string       `json:"High,omitempty"`
	Low                 string       `json:"Low,omitempty"`
	High52Week          string       `json:"High52Week,omitempty"`
	High52WeekTimestamp string       `json:"High52WeekTimestamp,omitempty"`
	Last                string       `json:"Last,omitempty"`
	MinPrice            string       `json:"MinPrice,omitempty"`
	MaxPrice            string       `json:"MaxPrice,omitempty"`
	FirstNoticeDate     string       `json:"FirstNoticeDate,omitempty"`
	LastTradingDate     string       `json:"LastTradingDate,omitempty"`
	Low52Week           string       `json:"Low52Week,omitempty"`
	Low52WeekTimestamp  string       `json:"Low52WeekTimestamp,omitempty"`
	MarketFlags         *MarketFlags `json:"MarketFlags,omitempty"`
	NetChange           string       `json:"NetChange,omitempty"`
	NetChangePct        string       `json:"NetChangePct,omitempty"`
	Open                string       `json:"Open,omitempty"`
	PreviousClose       string       `json:"PreviousClose,omitempty"`
	PreviousVolume      string       `json:"PreviousVolume,omitempty"`
	Restrictions        []string     `json:"Restrictions,omitempty"`
	Symbol              string       `json:"Symbol,omitempty"`
	TickSizeTier        string       `json:"TickSizeTier,omitempty"`
	TradeTime           string       `json:"TradeTime,omitempty"`
	Volume              string       `json:"Volume,omitempty"`
	LastSize            string       `json:"LastSize,omitempty"`
	LastVenue           string       `json:"LastVenue,omitempty"`
	VWAP                string       `json:"VWAP,omitempty"`
}

// QuoteError reports a per-symbol failure inside a partial-success quote
// snapshot.
type QuoteError struct {
	Symbol string `json:"Symbol,omitempty"`
	Error  string `json:"Error,omitempty"`
}

// QuoteSnapshot is the payload of the quote snapshot endpoint.
type QuoteSnapshot struct {
	Quotes []Quote      `json:"Quotes,omitempty"`
	Errors []QuoteError `json:"Errors,omitempty"`
}

// QuoteStream is a streamed quote update; updates carry only the fields
// that changed, plus Error for per-symbol stream errors.
type QuoteStream struct {
	Quote
	Error string `json:"Error,omitempty"`
}

// Symbols

// SymbolSuggestDefinition is one match of the symbol suggest endpoint.
type SymbolSuggestDefinition struct {
	Category       string  `json:"Category,omitempty"`
	Country        string  `json:"Country,omitempty"`
	Currency       string  `json:"Currency,omitempty"`
	Description    string  `json:"Description,omitempty"`
	DisplayType    float64 `json:"DisplayType,omitempty"`
	Error          string  `json:"Error,omitempty"`
	Exchange       string  `json:"Exchange,omitempty"`
	ExchangeID     float64 `json:"ExchangeID,omitempty"`
	ExpirationDate string  `json:"ExpirationDate,omitempty"`
	ExpirationType string  `json:"ExpirationType,omitempty"`
	FutureType     string  `json:"FutureType,omitempty"`
	MinMove        float64 `json:"MinMove,omitempty"`
	Name           string  `json:"Name,omitempty"`
	OptionType     string  `json:"OptionType,omitempty"`
	PointValue     float64 `json:"PointValue,omitempty"`
	Root           string  `json:"Root,omitempty"`
	StrikePrice    float64 `json:"StrikePrice,omitempty"`
}

// SymbolSearchDefinition is one match of the symbol search endpoint.
type SymbolSearchDefinition struct {
	SymbolSuggestDefinition
	Underlying string `json:"Underlying,omitempty"`
}

// SymbolNames is the payload of the crypto symbol names endpoint.
type SymbolNames struct {
	SymbolNames []string `json:"SymbolNames,omitempty"`
}

// IncrementScheduleRow is one threshold of a price/quantity increment
// schedule.
type IncrementScheduleRow struct {
	Increment string `json:"Increment,omitempty"`
	StartsAt  string `json:"StartsAt,omitempty"`
}

// PriceFormat conveys number formatting for a symbol's price fields.
type PriceFormat struct {
	Format            string                 `json:"Format,omitempty"` // Decimal, Fraction, SubFraction
	Decimals          string                 `json:"Decimals,omitempty"`
	Fraction          string                 `json:"Fraction,omitempty"`
	SubFraction       string                 `json:"SubFraction,omitempty"`
	IncrementStyle    string                 `json:"IncrementStyle,omitempty"` // Simple, Schedule
	Increment         string                 `json:"Increment,omitempty"`
	IncrementSchedule []IncrementScheduleRow `json:"IncrementSchedule,omitempty"`
	PointValue        string                 `json:"PointValue,omitempty"`
}

// QuantityFormat conveys number formatting for a symbol's quantity fields.
type QuantityFormat struct {
	Format               string                 `json:"Format,omitempty"`
	Decimals             string                 `json:"Decimals,omitempty"`
	IncrementStyle       string                 `json:"IncrementStyle,omitempty"`
	Increment            string                 `json:"Increment,omitempty"`
	IncrementSchedule    []IncrementScheduleRow `json:"IncrementSchedule,omitempty"`
	MinimumTradeQuantity string                 `json:"MinimumTradeQuantity,omitempty"`
}

// SymbolDetail is the full definition of one symbol.
type SymbolDetail struct {
	AssetType      string          `json:"AssetType,omitempty"`
	Country        string          `json:"Country,omitempty"`
	Currency       string          `json:"Currency,omitempty"`
	Description    string          `json:"Description,omitempty"`
	Exchange       string          `json:"Exchange,omitempty"`
	ExpirationDate string          `json:"ExpirationDate,omitempty"`
	FutureType     string          `json:"FutureType,omitempty"`
	OptionType     string          `json:"OptionType,omitempty"`
	PriceFormat    *PriceFormat    `json:"PriceFormat,omitempty"`
	QuantityFormat *QuantityFormat `json:"QuantityFormat,omitempty"`
	Root           string          `json:"Root,omitempty"`
	StrikePrice    string          `json:"StrikePrice,omitempty"`
	Symbol         string          `json:"Symbol,omitempty"`
	Underlying     string          `json:"Underlying,omitempty"`
}

// SymbolDetailsError reports a per-symbol failure inside a partial-success
// symbol details response.
type SymbolDetailsError struct {
	Error   string `json:"Error,omitempty"`
	Message string `json:"Message,omitempty"`
	Symbol  string `json:"Symbol,omitempty"`
}

// SymbolDetailsResponse is the payload of the symbol details endpoint.
type SymbolDetailsResponse struct {
	Errors  []SymbolDetailsError `json:"Errors,omitempty"`
	Symbols []SymbolDetail       `json:"Symbols,omitempty"`
}

// ActivationTrigger describes one tick pattern usable in market
// activation rules.
type ActivationTrigger struct {
	Key         string `json:"Key,omitempty"`
	Name        string `json:"Name,omitempty"`
	Description string `json:"Description,omitempty"`
}

// ActivationTriggers is the payload of the activation triggers endpoint.
type ActivationTriggers struct {
	ActivationTriggers []ActivationTrigger `json:"ActivationTriggers,omitempty"`
}

// Route is one order routing destination.
type Route struct {
	ID         string   `json:"Id,omitempty"`
	Name       string   `json:"Name,omitempty"`
	AssetTypes []string `json:"AssetTypes,omitempty"`
}

// Routes is the payload of the routes endpoint.
type Routes struct {
	Routes []Route `json:"Routes,omitempty"`
}

// Options

// OptionExpiration is one contract expiration date of an underlying.
type OptionExpiration struct {
	Date string `json:"Date,omitempty"`
	Type string `json:"Type,omitempty"` // Weekly, Monthly, Quarterly, EOM, Other
}

// Expirations is the payload of the option expirations endpoint.
type Expirations struct {
	Expirations []OptionExpiration `json:"Expirations,omitempty"`
}

// RiskRewardLeg is one leg of a potential option spread trade.
type RiskRewardLeg struct {
	Symbol      string      `json:"Symbol"`
	Quantity    int         `json:"Quantity"`
	TradeAction TradeAction `json:"TradeAction"`
}

// RiskRewardAnalysisInput describes a potential option spread trade.
type RiskRewardAnalysisInput struct {
	SpreadPrice float64         `json:"SpreadPrice,omitempty"`
	Legs        []RiskRewardLeg `json:"Legs,omitempty"`
}

// RiskRewardAnalysisResult is the computed risk/reward of a spread trade.
type RiskRewardAnalysisResult struct {
	MaxGainIsInfinite *bool    `json:"MaxGainIsInfinite,omitempty"`
	AdjustedMaxGain   string   `json:"AdjustedMaxGain,omitempty"`
	MaxLossIsInfinite *bool    `json:"MaxLossIsInfinite,omitempty"`
	AdjustedMaxLoss   string   `json:"AdjustedMaxLoss,omitempty"`
	BreakevenPoints   []string `json:"BreakevenPoints,omitempty"`
}

// SpreadLeg is one leg of an option spread quote.
type SpreadLeg struct {
	Symbol      string `json:"Symbol,omitempty"`
	Ratio       int    `json:"Ratio,omitempty"`
	StrikePrice string `json:"StrikePrice,omitempty"`
	Expiration  string `json:"Expiration,omitempty"`
	OptionType  string `json:"OptionType,omitempty"`
	AssetType   string `json:"AssetType,omitempty"`
}

// Spread is one option chain entry with greeks, quote data, and legs.
type Spread struct {
	Delta               string      `json:"Delta,omitempty"`
	Theta               string      `json:"Theta,omitempty"`
	Gamma               string      `json:"Gamma,omitempty"`
	Rho                 string      `json:"Rho,omitempty"`
	Vega                string      `json:"Vega,omitempty"`
	ImpliedVolatility   string      `json:"ImpliedVolatility,omitempty"`
	IntrinsicValue      string      `json:"IntrinsicValue,omitempty"`
	ExtrinsicValue      string      `json:"ExtrinsicValue,omitempty"`
	TheoreticalValue    string      `json:"TheoreticalValue,omitempty"`
	ProbabilityITM      string      `json:"ProbabilityITM,omitempty"`
	ProbabilityOTM      string      `json:"ProbabilityOTM,omitempty"`
	ProbabilityBE       string      `json:"ProbabilityBE,omitempty"`
	ProbabilityITMIV    string      `json:"ProbabilityITM_IV,omitempty"`
	ProbabilityOTMIV    string      `json:"ProbabilityOTM_IV,omitempty"`
	ProbabilityBEIV     string      `json:"ProbabilityBE_IV,omitempty"`
	TheoreticalValueIV  string      `json:"TheoreticalValue_IV,omitempty"`
	StandardDeviation   string      `json:"StandardDeviation,omitempty"`
	DailyOpenInterest   int64       `json:"DailyOpenInterest,omitempty"`
	Ask                 string      `json:"Ask,omitempty"`
	Bid                 string      `json:"Bid,omitempty"`
	Mid                 string      `json:"Mid,omitempty"`
	AskSize             int64       `json:"AskSize,omitempty"`
	BidSize             int64       `json:"BidSize,omitempty"`
	Close               string      `json:"Close,omitempty"`
	High                string      `json:"High,omitempty"`
	Last                string      `json:"Last,omitempty"`
	Low                 string      `json:"Low,omitempty"`
	NetChange           string      `json:"NetChange,omitempty"`
	NetChangePct        string      `json:"NetChangePct,omitempty"`
	Open                string      `json:"Open,omitempty"`
	PreviousClose       string      `json:"PreviousClose,omitempty"`
	Volume              int64       `json:"Volume,omitempty"`
	Side                string      `json:"Side,omitempty"` // Call, Put, Both
	Strikes             []string    `json:"Strikes,omitempty"`
	Legs                []SpreadLeg `json:"Legs,omitempty"`
}

// SpreadType describes one available option spread type.
type SpreadType struct {
	Name               string `json:"Name,omitempty"`
	StrikeInterval     bool   `json:"StrikeInterval,omitempty"`
	ExpirationInterval bool   `json:"ExpirationInterval,omitempty"`
}

// SpreadTypes is the payload of the spread types endpoint.
type SpreadTypes struct {
	SpreadTypes []SpreadType `json:"SpreadTypes,omitempty"`
}

// Strikes lists the available strike prices for a spread type. Each
// element of Strikes is the strike set of a single spread.
type Strikes struct {
	SpreadType string     `json:"SpreadType,omitempty"`
	Strikes    [][]string `json:"Strikes,omitempty"`
}

// Market depth

// BidQuote is one participant-level bid in the market depth book.
type BidQuote struct {
	TimeStamp  string `json:"TimeStamp,omitempty"`
	Side       string `json:"Side,omitempty"`
	Price      string `json:"Price,omitempty"`
	Size       string `json:"Size,omitempty"`
	OrderCount int    `json:"OrderCount,omitempty"`
	Name       string `json:"Name,omitempty"`
}

// AskQuote is one participant-level ask in the market depth book.
type AskQuote struct {
	TimeStamp  string `json:"TimeStamp,omitempty"`
	Side       string `json:"Side,omitempty"`
	Price      string `json:"Price,omitempty"`
	Size       string `json:"Size,omitempty"`
	OrderCount int    `json:"OrderCount,omitempty"`
	Name       string `json:"Name,omitempty"`
}

// AggregatedBid summarizes all participants bidding at one price.
type AggregatedBid struct {
	EarliestTime    string `json:"EarliestTime,omitempty"`
	LatestTime      string `json:"LatestTime,omitempty"`
	Side            string `json:"Side,omitempty"`
	Price           string `json:"Price,omitempty"`
	TotalSize       string `json:"TotalSize,omitempty"`
	BiggestSize     string `json:"BiggestSize,omitempty"`
	SmallestSize    string `json:"SmallestSize,omitempty"`
	NumParticipants int    `json:"NumParticipants,omitempty"`
	TotalOrderCount int    `json:"TotalOrderCount,omitempty"`
}

// AggregatedAsk summarizes all participants offering at one price.
type AggregatedAsk struct {
	EarliestTime    string `json:"EarliestTime,omitempty"`
	LatestTime      string `json:"LatestTime,omitempty"`
	Side            string `json:"Side,omitempty"`
	Price           string `json:"Price,omitempty"`
	TotalSize       string `json:"TotalSize,omitempty"`
	BiggestSize     string `json:"BiggestSize,omitempty"`
	SmallestSize    string `json:"SmallestSize,omitempty"`
	NumParticipants int    `json:"NumParticipants,omitempty"`
	TotalOrderCount int    `json:"TotalOrderCount,omitempty"`
}

// MarketDepthQuote is one participant-level market depth update. Bids are
// ordered high to low, asks low to high.
type MarketDepthQuote struct {
	Bids []BidQuote `json:"Bids,omitempty"`
	Asks []AskQuote `json:"Asks,omitempty"`
}

// MarketDepthAggregate is one aggregated market depth update.
type MarketDepthAggregate struct {
	Bids []AggregatedBid `json:"Bids,omitempty"`
	Asks []AggregatedAsk `json:"Asks,omitempty"`
}
