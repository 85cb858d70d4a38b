package agent

import (
	"context"
	"time"

	"github.com/mfalme0/monies"
	"github.com/mfalme0/monies/renderer"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// newFacilitator creates the expert in charge of the conversation. It never
// answers from its own knowledge; it consults the other experts as tools.
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

			Learn about each expert's skill from the Tools and ask them questions.
			They are at your service and 100% dedicated to you, they keep context of your previous questions.

			The user is here to understand and improve their personal finances: what they can
			safely spend, whether they are overspending, what they owe and what bills are due.
			Amounts are in Kenyan Shillings.

			Devise a plan of questions to ask each expert and come up with the best response
			to the user's request. Always check the user's actual ledger figures before advising.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewCoach creates the budgeting coach. It grounds general money advice with
// Google Search.
func NewCoach() *Expert {
	return &Expert{
		Name: "Coach",
		Description: `This is a personal finance coach. Ask the Coach for advice on
		budgeting, saving, dealing with debt, and for current information such as
		typical prices, rates or money news in Kenya.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are a pragmatic personal finance coach for a user living in Kenya.
			You give short, actionable budgeting advice. Leverage Google Search to
			ground your assertions; never invent prices or rates.
		`}}},
		},
	}
}

// NewBookkeeper creates the expert that reads the user's ledger. All its
// answers come from the tools; it holds no figures of its own.
func NewBookkeeper(l *monies.Ledger) *Expert {
	lib := []Function{summaryTool(l), breakdownTool(l), loansTool(l)}

	return &Expert{
		Name: "Bookkeeper",
		Description: `This is the Bookkeeper. It reads the user's ledger and reports
		the real figures: balances, safe-to-spend, burn rate, spending per category,
		and the loan book. Ask it whenever a question involves the user's own money.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are a bookkeeper in charge of the user's ledger. Use the available
			tools to fetch the figures; never guess them. Other experts might ask you
			questions in approximative language, pardon it and figure out what they meant.
		`}}},
		},
		Library: NewLibrary(lib),
	}
}

// Func implements a Function from a declaration and a closure.
type Func struct {
	Decl *genai.FunctionDeclaration
	Func func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse
}

func (f *Func) Declaration() *genai.FunctionDeclaration { return f.Decl }
func (f *Func) Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
	return f.Func(ctx, id, args)
}

// output wraps a markdown answer into a function response.
func output(id, name, markdown string) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:       id,
		Name:     name,
		Response: map[string]any{"output": markdown},
	}
}

func summaryTool(l *monies.Ledger) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Summary",
			Description: `Summary reports the user's current financial state: total balance,
			outstanding debt, monthly bills, what is still due, the safe-to-spend effective
			balance and this month's burn rate with its health band.`,
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted summary of the user's finances.",
			},
		},
		Func: func(_ context.Context, id string, _ map[string]any) *genai.FunctionResponse {
			return output(id, "Summary", renderer.SummaryMarkdown(monies.NewSummary(l, time.Now())))
		},
	}
}

func breakdownTool(l *monies.Ledger) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Breakdown",
			Description: `Breakdown reports spending per category (rent, utilities, food,
			entertainment, loan repayments), merging actual spend with committed bills.`,
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted table of spending per category.",
			},
		},
		Func: func(_ context.Context, id string, _ map[string]any) *genai.FunctionResponse {
			return output(id, "Breakdown", renderer.BreakdownMarkdown(monies.NewBreakdown(l)))
		},
	}
}

func loansTool(l *monies.Ledger) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Loans",
			Description: `Loans reports the user's loan book: every loan with its lender,
			principal, amount repaid, outstanding balance and whether it is settled.`,
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted table of the user's loans.",
			},
		},
		Func: func(_ context.Context, id string, _ map[string]any) *genai.FunctionResponse {
			return output(id, "Loans", renderer.LoansMarkdown(l.Loans()))
		},
	}
}
