package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"eventdeck/internal/infra"
	"eventdeck/internal/pkg/clock"
	"eventdeck/internal/pkg/errs"
	"eventdeck/internal/usecase/queries"
)

// CompletionClient relays a rendered prompt to a completion API. The
// advisor owns all data shaping; the client carries no decision logic.
type CompletionClient interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

type EventFacts struct {
	Title       string `json:"title"`
	Type        string `json:"type"`
	BudgetTotal int64  `json:"budget_total"`
	Capacity    *int32 `json:"capacity"`
}

type Financials struct {
	TotalRevenue     int64   `json:"total_revenue"`
	TotalBudget      int64   `json:"total_budget"`
	TotalSpent       int64   `json:"total_spent"`
	Margin           int64   `json:"margin"`
	MarginPercentage float64 `json:"margin_percentage"`
}

type BudgetItemFacts struct {
	Category  string  `json:"category"`
	Name      string  `json:"name"`
	Estimated int64   `json:"estimated"`
	Actual    int64   `json:"actual"`
	Overspend int64   `json:"overspend"`
	Vendor    *string `json:"vendor"`
}

type OverspendFacts struct {
	Category        string  `json:"category"`
	Name            string  `json:"name"`
	OverspendAmount int64   `json:"overspend_amount"`
	PercentageOver  float64 `json:"percentage_over"`
}

type BudgetAnalysis struct {
	Event          EventFacts        `json:"event"`
	Financials     Financials        `json:"financials"`
	BudgetItems    []BudgetItemFacts `json:"budget_items"`
	OverspendItems []OverspendFacts  `json:"overspend_items"`
}

type Suggestion struct {
	Title            string `json:"title"`
	Description      string `json:"description"`
	PotentialSavings string `json:"potential_savings"`
	Priority         string `json:"priority"`
	Category         string `json:"category"`
}

type AdvisorResult struct {
	Analysis    BudgetAnalysis `json:"analysis"`
	Suggestions []Suggestion   `json:"suggestions"`
	GeneratedAt time.Time      `json:"generated_at"`
}

type AdvisorCommands interface {
	OptimizeBudget(ctx context.Context, actor uuid.UUID, eventID uuid.UUID) (*AdvisorResult, error)
}

type advisorCommandsImpl struct {
	completion  CompletionClient
	events      queries.EventReadStore
	budgetItems queries.BudgetReadStore
	ticketTypes queries.TicketTypeReadStore
	clock       clock.Clock
}

func NewAdvisorCommands(
	completion CompletionClient,
	events queries.EventReadStore,
	budgetItems queries.BudgetReadStore,
	ticketTypes queries.TicketTypeReadStore,
	clock clock.Clock,
) AdvisorCommands {
	return &advisorCommandsImpl{
		completion:  completion,
		events:      events,
		budgetItems: budgetItems,
		ticketTypes: ticketTypes,
		clock:       clock,
	}
}

const advisorSystemPrompt = "You are an expert event budget optimizer. Always respond with valid JSON."

const advisorPromptTemplate = `
You are an expert event budget optimizer. Analyze the following event budget data and provide 3 specific, actionable cost optimization suggestions.

Event Data:
%s

Please provide exactly 3 suggestions in the following JSON format:
{
  "suggestions": [
    {
      "title": "Brief title of the suggestion",
      "description": "Detailed explanation of the optimization",
      "potential_savings": "Estimated savings amount or percentage",
      "priority": "high|medium|low",
      "category": "Category this affects"
    }
  ]
}

Focus on:
1. Items that are over budget
2. Categories with high spending
3. Opportunities to improve profit margins
4. Vendor negotiations or alternatives
5. Process improvements

Make suggestions specific to the event type and realistic for the budget scale.
`

func (c *advisorCommandsImpl) OptimizeBudget(ctx context.Context, actor uuid.UUID, eventID uuid.UUID) (*AdvisorResult, error) {
	analysis, err := c.buildAnalysis(ctx, actor, eventID)
	if err != nil {
		return nil, err
	}

	suggestions := c.requestSuggestions(ctx, analysis)

	return &AdvisorResult{
		Analysis:    *analysis,
		Suggestions: suggestions,
		GeneratedAt: c.clock.Now(),
	}, nil
}

func (c *advisorCommandsImpl) buildAnalysis(ctx context.Context, actor uuid.UUID, eventID uuid.UUID) (*BudgetAnalysis, error) {
	eventView, err := c.events.FindByID(ctx, eventID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if eventView.OwnerID != actor {
		return nil, ErrNotEventOwner
	}

	items, err := c.budgetItems.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	ticketTypes, err := c.ticketTypes.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	var totalRevenue int64
	for _, tt := range ticketTypes {
		totalRevenue += tt.PriceCents * int64(tt.QuantitySold)
	}

	var totalBudget, totalSpent int64
	itemFacts := make([]BudgetItemFacts, 0, len(items))
	var overspend []OverspendFacts
	for _, item := range items {
		totalBudget += item.EstimatedCostCents
		totalSpent += item.ActualCostCents

		itemFacts = append(itemFacts, BudgetItemFacts{
			Category:  item.Category,
			Name:      item.ItemName,
			Estimated: item.EstimatedCostCents,
			Actual:    item.ActualCostCents,
			Overspend: item.ActualCostCents - item.EstimatedCostCents,
			Vendor:    item.VendorName,
		})

		if item.ActualCostCents > item.EstimatedCostCents {
			facts := OverspendFacts{
				Category:        item.Category,
				Name:            item.ItemName,
				OverspendAmount: item.ActualCostCents - item.EstimatedCostCents,
			}
			if item.EstimatedCostCents > 0 {
				facts.PercentageOver = (float64(item.ActualCostCents)/float64(item.EstimatedCostCents) - 1) * 100
			}
			overspend = append(overspend, facts)
		}
	}

	margin := totalRevenue - totalSpent
	var marginPct float64
	if totalRevenue > 0 {
		marginPct = float64(margin) / float64(totalRevenue) * 100
	}

	return &BudgetAnalysis{
		Event: EventFacts{
			Title:       eventView.Title,
			Type:        eventView.EventType,
			BudgetTotal: eventView.BudgetTotalCents,
			Capacity:    eventView.MaxCapacity,
		},
		Financials: Financials{
			TotalRevenue:     totalRevenue,
			TotalBudget:      totalBudget,
			TotalSpent:       totalSpent,
			Margin:           margin,
			MarginPercentage: marginPct,
		},
		BudgetItems:    itemFacts,
		OverspendItems: overspend,
	}, nil
}

// requestSuggestions asks the completion API for suggestions and falls back
// to canned advice when the response is missing or malformed.
func (c *advisorCommandsImpl) requestSuggestions(ctx context.Context, analysis *BudgetAnalysis) []Suggestion {
	data, err := json.MarshalIndent(analysis, "", "  ")
	if err != nil {
		return fallbackSuggestions()
	}

	content, err := c.completion.Complete(ctx, advisorSystemPrompt, renderAdvisorPrompt(string(data)))
	if err != nil {
		return fallbackSuggestions()
	}

	var parsed struct {
		Suggestions []Suggestion `json:"suggestions"`
	}
	if err := json.Unmarshal([]byte(content), &parsed); err != nil || len(parsed.Suggestions) == 0 {
		return fallbackSuggestions()
	}

	if len(parsed.Suggestions) > 3 {
		parsed.Suggestions = parsed.Suggestions[:3]
	}
	return parsed.Suggestions
}

func renderAdvisorPrompt(analysisJSON string) string {
	return fmt.Sprintf(advisorPromptTemplate, analysisJSON)
}

func fallbackSuggestions() []Suggestion {
	return []Suggestion{
		{
			Title:            "Review Vendor Contracts",
			Description:      "Negotiate better rates with vendors or find alternative suppliers for overspend categories.",
			PotentialSavings: "10-20%",
			Priority:         "high",
			Category:         "Vendor Management",
		},
		{
			Title:            "Optimize Resource Allocation",
			Description:      "Reallocate budget from underutilized categories to areas that drive more value.",
			PotentialSavings: "5-15%",
			Priority:         "medium",
			Category:         "Budget Planning",
		},
		{
			Title:            "Implement Cost Controls",
			Description:      "Set up approval processes for expenses above certain thresholds to prevent overspending.",
			PotentialSavings: "Variable",
			Priority:         "medium",
			Category:         "Process Improvement",
		},
	}
}
