package agent

import (
	"context"
	"fmt"

	"github.com/pranavk/papertrade"
	"github.com/pranavk/papertrade/renderer"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// creates the facilitator
func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name:      "Facilitator",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and solving the user's request.

			Learn about the expert's skills from the Tools and ask them questions.
			They are at your service and 100% dedicated to you, they keep context of your previous questions.

			The user runs a paper trading session: a simulated market, a cash wallet,
			average-cost positions and a watchlist. He is here primarily to understand
			his simulated portfolio and the market board.

			Devise a plan of questions to ask each expert and come up with the best
			response to the user's request. Check the broker first to learn which
			tickers the user holds or watches.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewAnalyst returns the expert grounding answers in web search, for
// questions about the real companies behind the simulated tickers.
func NewAnalyst() *Expert {
	return &Expert{
		Name: "Analyst",
		Description: `This is an expert market analyst,
		very well aware of financial products and institutions and of
		the latest news about companies.
		Ask the Analyst whenever you need recent or grounding information.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are an expert market analyst. You can search and find anything related
			to financial institutions, companies, markets and funds. You leverage
			Google Search to ground your assertions in solid truth, and you know how
			to relate the latest news to the user's request.
				`}}},
		},
	}
}

// NewBroker returns the expert answering from the live session state:
// market board, wallet, positions, watchlist and trade journal.
func NewBroker(session *papertrade.Session) *Expert {
	lib := sessionTools(session)

	return &Expert{
		Name: "Broker",
		Description: `This is the Broker. He has live access to the user's paper
		trading session: the simulated market board, the cash wallet, the open
		positions with their average costs, the watchlist and the trade journal.
		Ask the Broker anything about the state of the user's simulated account.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are a broker with live read access to the user's paper trading
				session. Use the available tools to get information about
				  - the market board and individual quotes
				  - the wallet balance
				  - the open positions and their average costs
				  - the watchlist and the trade journal
				Pardon approximate ticker spellings and figure out what was meant.
			`}}},
		},
		Library: NewLibrary(lib),
	}
}

// sessionTools builds the broker's function library over a session.
func sessionTools(session *papertrade.Session) []Function {
	board := &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        "market_board",
			Description: "Returns the full market board with current prices and the wallet balance, as markdown.",
		},
		Fn: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			md := renderer.Market(session.Securities(), session.Balance(), session.Watched)
			return respond(id, "market_board", md)
		},
	}

	quote := &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        "quote",
			Description: "Returns the current and previous price of one security.",
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"ticker": {
						Type:        genai.TypeString,
						Description: "The security's ticker, e.g. \"HDFC Bank\".",
					},
				},
				Required: []string{"ticker"},
			},
		},
		Fn: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			ticker, _ := args["ticker"].(string)
			sec, ok := session.Quote(ticker)
			if !ok {
				return respondErr(id, "quote", fmt.Sprintf("unknown security %q", ticker))
			}
			return respond(id, "quote", fmt.Sprintf("%s: %s (previous %s)",
				sec.Ticker(), sec.LastPrice(), sec.PreviousPrice()))
		},
	}

	holdings := &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        "holdings",
			Description: "Returns the open positions with quantities, average costs and unrealized gains, as markdown.",
		},
		Fn: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			var hs []renderer.Holding
			for _, p := range session.Positions() {
				sec, ok := session.Quote(p.Ticker())
				if !ok {
					continue
				}
				hs = append(hs, renderer.Holding{Position: p, Price: sec.LastPrice()})
			}
			return respond(id, "holdings", renderer.Holdings(hs, session.Balance()))
		},
	}

	trades := &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        "trades",
			Description: "Returns the journal of executed trades, oldest first, as markdown.",
		},
		Fn: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			return respond(id, "trades", renderer.Transactions(session.Journal()))
		},
	}

	return []Function{board, quote, holdings, trades}
}

func respond(id, name, output string) *genai.FunctionResponse {
	return &genai.FunctionResponse{ID: id, Name: name, Response: map[string]any{"output": output}}
}

func respondErr(id, name, msg string) *genai.FunctionResponse {
	return &genai.FunctionResponse{ID: id, Name: name, Response: map[string]any{"error": msg}}
}
