package main

// Ticker is the demo item type: a stock symbol and company name. The
// engine only ever sees the symbol, through the ID accessor.
type Ticker struct {
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
}

// tickers is the demo candidate set used for local filtering and for the
// simulated backend.
var tickers = []Ticker{
	{Symbol: "AAPL", Name: "Apple Inc."},
	{Symbol: "MSFT", Name: "Microsoft Corporation"},
	{Symbol: "GOOGL", Name: "Alphabet Inc."},
	{Symbol: "AMZN", Name: "Amazon.com Inc."},
	{Symbol: "NVDA", Name: "NVIDIA Corporation"},
	{Symbol: "META", Name: "Meta Platforms Inc."},
	{Symbol: "TSLA", Name: "Tesla Inc."},
	{Symbol: "BRK.B", Name: "Berkshire Hathaway Inc."},
	{Symbol: "JPM", Name: "JPMorgan Chase & Co."},
	{Symbol: "V", Name: "Visa Inc."},
	{Symbol: "JNJ", Name: "Johnson & Johnson"},
	{Symbol: "WMT", Name: "Walmart Inc."},
	{Symbol: "PG", Name: "Procter & Gamble Co."},
	{Symbol: "MA", Name: "Mastercard Inc."},
	{Symbol: "UNH", Name: "UnitedHealth Group Inc."},
	{Symbol: "HD", Name: "Home Depot Inc."},
	{Symbol: "KO", Name: "Coca-Cola Co."},
	{Symbol: "PEP", Name: "PepsiCo Inc."},
	{Symbol: "COST", Name: "Costco Wholesale Corporation"},
	{Symbol: "DIS", Name: "Walt Disney Co."},
	{Symbol: "NFLX", Name: "Netflix Inc."},
	{Symbol: "AMD", Name: "Advanced Micro Devices Inc."},
	{Symbol: "INTC", Name: "Intel Corporation"},
	{Symbol: "ORCL", Name: "Oracle Corporation"},
	{Symbol: "CRM", Name: "Salesforce Inc."},
	{Symbol: "ADBE", Name: "Adobe Inc."},
	{Symbol: "ABNB", Name: "Airbnb Inc."},
	{Symbol: "UBER", Name: "Uber Technologies Inc."},
	{Symbol: "SHOP", Name: "Shopify Inc."},
	{Symbol: "SQ", Name: "Block Inc."},
}

// popularTickers is the default list shown before any query is typed.
var popularTickers = []Ticker{
	{Symbol: "AAPL", Name: "Apple Inc."},
	{Symbol: "MSFT", Name: "Microsoft Corporation"},
	{Symbol: "NVDA", Name: "NVIDIA Corporation"},
	{Symbol: "AMZN", Name: "Amazon.com Inc."},
	{Symbol: "TSLA", Name: "Tesla Inc."},
}
