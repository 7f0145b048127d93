package automation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"outreach-server/internal/observability"
	"outreach-server/internal/ratelimit"
	"outreach-server/internal/store"
)

// ErrUnknownStage is returned when the planning model answers a stage
// classification with something outside the closed stage set.
var ErrUnknownStage = errors.New("planner returned an unrecognized stage")

// PlanParseError reports a planner response that did not contain a usable
// execution plan.
type PlanParseError struct {
	Reason string
	Err    error
}

func (e *PlanParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Reason, e.Err)
	}
	return e.Reason
}

func (e *PlanParseError) Unwrap() error {
	return e.Err
}

const outreachStage = "3"

// stageLabels is the closed set of automation stages the planner may report.
var stageLabels = map[string]string{
	"1": "Creator Search",
	"2": "Contract Generation",
	"3": "Outreach Execution",
	"4": "Response Processing",
	"5": "Campaign Completion",
}

const planSystemPrompt = `You are the outreach strategist for an influencer marketing agency.
You prioritize creators by relevance and engagement, and you always contact a creator
only through the channel that creator has opted into. Respond with only a JSON object.`

const stageSystemPrompt = `You are the outreach strategist for an influencer marketing agency.
Classify campaign progress into one of five stages:
1 = creator search, 2 = contract generation, 3 = outreach execution,
4 = response processing, 5 = campaign completion.
Respond with only the stage number.`

// PlanEventType distinguishes the two event kinds emitted by Events.
type PlanEventType string

const (
	PlanEventStageUpdate PlanEventType = "STAGE_UPDATE"
	PlanEventAction      PlanEventType = "ACTION"
)

// PlanEvent is one item emitted by the plan-driven walkthrough.
type PlanEvent struct {
	Type   PlanEventType  `json:"type"`
	Stage  string         `json:"stage"`
	Action *PlannedAction `json:"action,omitempty"`
}

// OutreachPlanner turns a campaign and its creators into a prioritized
// execution plan and classifies run progress into stages. It never sends
// anything itself; the orchestrator owns the send path and uses the plan as
// an audit artifact.
type OutreachPlanner struct {
	campaign store.Campaign
	creators []Creator
	model    PlanModel
	limiter  *ratelimit.Limiter
	logger   *observability.Logger

	mu      sync.Mutex
	stage   string
	history []string
	plan    *ExecutionPlan
}

func NewOutreachPlanner(campaign store.Campaign, creators []Creator, model PlanModel,
	limiter *ratelimit.Limiter, logger *observability.Logger) *OutreachPlanner {
	return &OutreachPlanner{
		campaign: campaign,
		creators: append([]Creator(nil), creators...),
		model:    model,
		limiter:  limiter,
		logger:   logger,
		stage:    "1",
	}
}

// CreateExecutionPlan asks the planning model for a prioritized outreach
// sequence over the contactable creators. Actions whose channel contradicts
// the creator's stored preference are dropped before the plan is returned.
func (p *OutreachPlanner) CreateExecutionPlan(ctx context.Context) (ExecutionPlan, error) {
	contactable := p.contactableCreators()
	if len(contactable) == 0 {
		plan := ExecutionPlan{
			Sequence:          []PlannedAction{},
			StrategyReasoning: "No creators selected for contact",
		}
		p.setPlan(plan)
		return plan, nil
	}

	if err := p.limiter.Wait(ctx); err != nil {
		return ExecutionPlan{}, err
	}

	prompt, err := p.buildPlanPrompt(contactable)
	if err != nil {
		return ExecutionPlan{}, err
	}

	raw, err := p.model.Complete(ctx, planSystemPrompt, prompt)
	if err != nil {
		return ExecutionPlan{}, fmt.Errorf("execution plan request failed: %w", err)
	}

	obj, ok := extractJSONObject(raw)
	if !ok {
		return ExecutionPlan{}, &PlanParseError{Reason: "no JSON object found in planner response"}
	}

	var plan ExecutionPlan
	if err := json.Unmarshal([]byte(obj), &plan); err != nil {
		return ExecutionPlan{}, &PlanParseError{Reason: "failed to decode execution plan JSON", Err: err}
	}

	plan.Sequence = p.enforcePreferences(ctx, plan.Sequence)
	if plan.Sequence == nil {
		plan.Sequence = []PlannedAction{}
	}
	p.setPlan(plan)
	return plan, nil
}

// DetermineNextStage asks the model to classify current progress and returns
// the stage's human-readable label. An answer outside the closed stage set
// is a protocol error.
func (p *OutreachPlanner) DetermineNextStage(ctx context.Context) (string, error) {
	if err := p.limiter.Wait(ctx); err != nil {
		return "", err
	}

	prompt, err := p.buildStagePrompt()
	if err != nil {
		return "", err
	}

	raw, err := p.model.Complete(ctx, stageSystemPrompt, prompt)
	if err != nil {
		return "", fmt.Errorf("stage analysis request failed: %w", err)
	}

	answer := strings.TrimSpace(raw)
	label, ok := stageLabels[answer]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownStage, answer)
	}

	p.mu.Lock()
	p.stage = answer
	p.history = append(p.history, fmt.Sprintf("stage -> %s (%s)", answer, label))
	p.mu.Unlock()
	return label, nil
}

// Events walks the five stages in order and dequeues the current plan's
// actions during the outreach stage. It is an alternative read-only driver
// over the plan; nothing is dispatched from here.
func (p *OutreachPlanner) Events(ctx context.Context) <-chan PlanEvent {
	events := make(chan PlanEvent)
	go func() {
		defer close(events)
		queue := p.plannedActions()
		for n := 1; n <= len(stageLabels); n++ {
			stage := strconv.Itoa(n)
			if !emit(ctx, events, PlanEvent{Type: PlanEventStageUpdate, Stage: stageLabels[stage]}) {
				return
			}
			if stage != outreachStage {
				continue
			}
			for len(queue) > 0 {
				action := queue[0]
				queue = queue[1:]
				if !emit(ctx, events, PlanEvent{Type: PlanEventAction, Stage: stageLabels[stage], Action: &action}) {
					return
				}
			}
		}
	}()
	return events
}

func emit(ctx context.Context, events chan<- PlanEvent, event PlanEvent) bool {
	select {
	case <-ctx.Done():
		return false
	case events <- event:
		return true
	}
}

func (p *OutreachPlanner) contactableCreators() []Creator {
	var out []Creator
	for _, c := range p.creators {
		if c.Preference != PreferenceNone && c.Preference != "" {
			out = append(out, c)
		}
	}
	return out
}

// enforcePreferences drops plan actions whose channel does not match the
// creator's stored preference. The model occasionally invents a channel;
// the stored preference always wins.
func (p *OutreachPlanner) enforcePreferences(ctx context.Context, sequence []PlannedAction) []PlannedAction {
	prefs := make(map[string]ContactPreference, len(p.creators))
	for _, c := range p.creators {
		prefs[c.ID.String()] = c.Preference
	}

	kept := make([]PlannedAction, 0, len(sequence))
	dropped := 0
	for _, action := range sequence {
		pref, known := prefs[action.CreatorID]
		if !known || string(pref) != string(action.Type) {
			dropped++
			continue
		}
		kept = append(kept, action)
	}
	if dropped > 0 {
		p.logger.Warn(observability.WithFields(ctx,
			observability.Field{Key: "dropped_actions", Value: dropped},
		), "dropped plan actions that contradicted stored contact preferences")
	}
	return kept
}

func (p *OutreachPlanner) buildPlanPrompt(contactable []Creator) (string, error) {
	campaignJSON, err := json.Marshal(p.campaign)
	if err != nil {
		return "", fmt.Errorf("failed to marshal campaign for planning: %w", err)
	}
	creatorsJSON, err := json.Marshal(contactable)
	if err != nil {
		return "", fmt.Errorf("failed to marshal creators for planning: %w", err)
	}

	return fmt.Sprintf(`Campaign:
%s

Creators (each has already chosen a contact channel under "preference"):
%s

Produce a prioritized outreach plan. Every action must use that creator's chosen channel.
Respond with only a JSON object of the form:
{"sequence":[{"type":"EMAIL"|"PHONE","creator_id":"<id>","priority":<number>,"reasoning":"<why>"}],"strategy_reasoning":"<overall strategy>"}`,
		campaignJSON, creatorsJSON), nil
}

func (p *OutreachPlanner) buildStagePrompt() (string, error) {
	campaignJSON, err := json.Marshal(p.campaign)
	if err != nil {
		return "", fmt.Errorf("failed to marshal campaign for stage analysis: %w", err)
	}
	creatorsJSON, err := json.Marshal(p.creators)
	if err != nil {
		return "", fmt.Errorf("failed to marshal creators for stage analysis: %w", err)
	}

	p.mu.Lock()
	stage := p.stage
	history := strings.Join(p.history, "\n")
	p.mu.Unlock()

	return fmt.Sprintf(`Current stage: %s

Campaign:
%s

Creators:
%s

History:
%s

Which stage should run next? Respond with only the stage number (1-5).`,
		stage, campaignJSON, creatorsJSON, history), nil
}

func (p *OutreachPlanner) setPlan(plan ExecutionPlan) {
	p.mu.Lock()
	p.plan = &plan
	p.mu.Unlock()
}

func (p *OutreachPlanner) plannedActions() []PlannedAction {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.plan == nil {
		return nil
	}
	return append([]PlannedAction(nil), p.plan.Sequence...)
}

// extractJSONObject returns the substring spanning the first '{' through the
// last '}' of raw. Planner responses regularly wrap the JSON body in prose;
// this mirrors the lenient extraction the dashboard has always used.
func extractJSONObject(raw string) (string, bool) {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start < 0 || end < start {
		return "", false
	}
	return raw[start : end+1], true
}
