package automation

import (
	"context"
	"errors"
	"testing"
	"time"

	"outreach-server/internal/observability"
	"outreach-server/internal/ratelimit"
	"outreach-server/internal/store"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func instantLimiter() *ratelimit.Limiter {
	current := time.Unix(0, 0)
	return ratelimit.NewWithClock(ratelimit.DefaultPolicy(),
		func() time.Time { return current },
		func(ctx context.Context, d time.Duration) error {
			current = current.Add(d)
			return nil
		})
}

func plannerFixture(t *testing.T, model PlanModel) (*OutreachPlanner, []Creator) {
	t.Helper()
	phone := "+15550001111"
	creators := []Creator{
		{ID: uuid.New(), Name: "Ava", Email: "ava@example.com", Preference: PreferenceEmail},
		{ID: uuid.New(), Name: "Ben", Email: "ben@example.com", Phone: &phone, Preference: PreferencePhone},
		{ID: uuid.New(), Name: "Cam", Email: "cam@example.com", Preference: PreferenceNone},
	}
	campaign := store.Campaign{ID: uuid.New(), Name: "Spring Launch", Brand: "Acme"}
	return NewOutreachPlanner(campaign, creators, model, instantLimiter(), observability.NewLogger()), creators
}

func TestCreateExecutionPlan_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	model := NewMockPlanModel(ctrl)
	planner, creators := plannerFixture(t, model)

	response := `Here is the plan:
{"sequence":[
  {"type":"EMAIL","creator_id":"` + creators[0].ID.String() + `","priority":1,"reasoning":"high relevance"},
  {"type":"PHONE","creator_id":"` + creators[1].ID.String() + `","priority":2,"reasoning":"prefers calls"}
],"strategy_reasoning":"email first, then calls"}`
	model.EXPECT().Complete(gomock.Any(), gomock.Any(), gomock.Any()).Return(response, nil)

	plan, err := planner.CreateExecutionPlan(context.Background())
	require.NoError(t, err)
	require.Len(t, plan.Sequence, 2)
	assert.Equal(t, ChannelEmail, plan.Sequence[0].Type)
	assert.Equal(t, creators[0].ID.String(), plan.Sequence[0].CreatorID)
	assert.Equal(t, "email first, then calls", plan.StrategyReasoning)
}

func TestCreateExecutionPlan_NoContactableCreators(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	model := NewMockPlanModel(ctrl)
	campaign := store.Campaign{ID: uuid.New(), Name: "Quiet"}
	creators := []Creator{{ID: uuid.New(), Name: "Cam", Preference: PreferenceNone}}
	planner := NewOutreachPlanner(campaign, creators, model, instantLimiter(), observability.NewLogger())

	// The model must not be consulted when there is nobody to contact.
	plan, err := planner.CreateExecutionPlan(context.Background())
	require.NoError(t, err)
	assert.Empty(t, plan.Sequence)
	assert.Equal(t, "No creators selected for contact", plan.StrategyReasoning)
}

func TestCreateExecutionPlan_MalformedResponse(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	model := NewMockPlanModel(ctrl)
	planner, _ := plannerFixture(t, model)

	model.EXPECT().Complete(gomock.Any(), gomock.Any(), gomock.Any()).
		Return("I could not produce a plan today.", nil)

	_, err := planner.CreateExecutionPlan(context.Background())
	var parseErr *PlanParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestCreateExecutionPlan_InvalidJSON(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	model := NewMockPlanModel(ctrl)
	planner, _ := plannerFixture(t, model)

	model.EXPECT().Complete(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(`{"sequence": [not json]}`, nil)

	_, err := planner.CreateExecutionPlan(context.Background())
	var parseErr *PlanParseError
	require.ErrorAs(t, err, &parseErr)
	assert.NotNil(t, parseErr.Err)
}

func TestCreateExecutionPlan_DropsActionsAgainstPreference(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	model := NewMockPlanModel(ctrl)
	planner, creators := plannerFixture(t, model)

	// The model calls the email-preferring creator by phone; that action
	// must not survive into the plan.
	response := `{"sequence":[
  {"type":"PHONE","creator_id":"` + creators[0].ID.String() + `","priority":1,"reasoning":"calls convert better"},
  {"type":"PHONE","creator_id":"` + creators[1].ID.String() + `","priority":2,"reasoning":"prefers calls"}
],"strategy_reasoning":"call everyone"}`
	model.EXPECT().Complete(gomock.Any(), gomock.Any(), gomock.Any()).Return(response, nil)

	plan, err := planner.CreateExecutionPlan(context.Background())
	require.NoError(t, err)
	require.Len(t, plan.Sequence, 1)
	assert.Equal(t, creators[1].ID.String(), plan.Sequence[0].CreatorID)
}

func TestCreateExecutionPlan_ModelError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	model := NewMockPlanModel(ctrl)
	planner, _ := plannerFixture(t, model)

	model.EXPECT().Complete(gomock.Any(), gomock.Any(), gomock.Any()).
		Return("", errors.New("upstream unavailable"))

	_, err := planner.CreateExecutionPlan(context.Background())
	require.Error(t, err)
	var parseErr *PlanParseError
	assert.False(t, errors.As(err, &parseErr), "transport errors are not parse errors")
}

func TestDetermineNextStage_ValidStage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	model := NewMockPlanModel(ctrl)
	planner, _ := plannerFixture(t, model)

	model.EXPECT().Complete(gomock.Any(), gomock.Any(), gomock.Any()).Return("3\n", nil)

	label, err := planner.DetermineNextStage(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Outreach Execution", label)
}

func TestDetermineNextStage_UnknownStage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	model := NewMockPlanModel(ctrl)
	planner, _ := plannerFixture(t, model)

	model.EXPECT().Complete(gomock.Any(), gomock.Any(), gomock.Any()).Return("7", nil)

	_, err := planner.DetermineNextStage(context.Background())
	require.ErrorIs(t, err, ErrUnknownStage)
}

func TestEvents_WalksStagesAndDequeuesActions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	model := NewMockPlanModel(ctrl)
	planner, creators := plannerFixture(t, model)

	response := `{"sequence":[
  {"type":"EMAIL","creator_id":"` + creators[0].ID.String() + `","priority":1,"reasoning":"r"}
],"strategy_reasoning":"s"}`
	model.EXPECT().Complete(gomock.Any(), gomock.Any(), gomock.Any()).Return(response, nil)

	_, err := planner.CreateExecutionPlan(context.Background())
	require.NoError(t, err)

	var stages []string
	var actions int
	for event := range planner.Events(context.Background()) {
		switch event.Type {
		case PlanEventStageUpdate:
			stages = append(stages, event.Stage)
		case PlanEventAction:
			actions++
			assert.Equal(t, "Outreach Execution", event.Stage)
		}
	}

	assert.Equal(t, []string{
		"Creator Search",
		"Contract Generation",
		"Outreach Execution",
		"Response Processing",
		"Campaign Completion",
	}, stages)
	assert.Equal(t, 1, actions)
}
