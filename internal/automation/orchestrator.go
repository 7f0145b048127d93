package automation

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"outreach-server/internal/email"
	"outreach-server/internal/observability"
	"outreach-server/internal/ratelimit"
	"outreach-server/internal/store"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

var (
	ErrExecutionInProgress = errors.New("campaign execution already in progress")
	ErrMissingCampaignID   = errors.New("campaign id is required")
	ErrMissingUserID       = errors.New("user id is required")
	ErrMissingCollaborator = errors.New("missing required collaborator")
	ErrCreatorMissingPhone = errors.New("creator has no phone number")
	ErrContractNotFound    = errors.New("no contract found for creator")
)

const (
	errKindExecutionFailure = "CAMPAIGN_EXECUTION_FAILURE"

	stepStarted   = "STARTED"
	stepCompleted = "COMPLETED"

	// maxSearchResults caps criteria-based creator discovery.
	maxSearchResults = 10

	defaultCollaboratorTimeout = 30 * time.Second
	defaultResponseWait        = 2 * time.Second
)

// CallPayload is the JSON context handed to the phone collaborator for one
// outbound call.
type CallPayload struct {
	Campaign store.Campaign `json:"campaign"`
	Creator  Creator        `json:"creator"`
	Contract store.Contract `json:"contract"`
}

// Params configures one Orchestrator. Campaign and user ids are required;
// there are deliberately no placeholder defaults.
type Params struct {
	CampaignID uuid.UUID
	UserID     uuid.UUID
	Mode       Mode

	Store     AutomationStore
	Email     EmailSender
	Phone     PhoneCaller
	AuditLog  AutomationLog
	PlanModel PlanModel
	Limiter   *ratelimit.Limiter
	Logger    *observability.Logger

	// Retry bounds the campaign fetch loop; zero means DefaultRetryPolicy.
	Retry RetryPolicy

	// CollaboratorTimeout wraps each external call; zero means 30s.
	CollaboratorTimeout time.Duration

	// ResponseWait is the response-processing settle window; zero means 2s.
	ResponseWait time.Duration

	// Sleep is replaceable so tests can run against virtual time.
	Sleep func(ctx context.Context, d time.Duration) error

	// OnProgress receives a full state snapshot after every mutation.
	OnProgress func(CampaignState)
}

// Orchestrator drives one campaign through the automation stages:
// creator search, contract generation, outreach, and response processing.
// Exactly one run may be in flight per instance.
type Orchestrator struct {
	store     AutomationStore
	email     EmailSender
	phone     PhoneCaller
	audit     AutomationLog
	planModel PlanModel
	limiter   *ratelimit.Limiter
	logger    *observability.Logger

	campaignID uuid.UUID
	userID     uuid.UUID
	mode       Mode
	onProgress func(CampaignState)

	retry        RetryPolicy
	callTimeout  time.Duration
	responseWait time.Duration
	sleep        func(ctx context.Context, d time.Duration) error

	executing     atomic.Bool
	auditFailures atomic.Int64

	mu       sync.Mutex
	state    CampaignState
	prefs    map[uuid.UUID]ContactPreference
	campaign store.Campaign
	metrics  store.AutomationMetrics
	logID    uuid.UUID
	planner  *OutreachPlanner
}

// New validates Params and builds an Orchestrator in the INITIATED state.
func New(p Params) (*Orchestrator, error) {
	if p.CampaignID == uuid.Nil {
		return nil, ErrMissingCampaignID
	}
	if p.UserID == uuid.Nil {
		return nil, ErrMissingUserID
	}
	for name, missing := range map[string]bool{
		"store":      p.Store == nil,
		"email":      p.Email == nil,
		"phone":      p.Phone == nil,
		"audit log":  p.AuditLog == nil,
		"plan model": p.PlanModel == nil,
		"limiter":    p.Limiter == nil,
		"logger":     p.Logger == nil,
	} {
		if missing {
			return nil, fmt.Errorf("%w: %s", ErrMissingCollaborator, name)
		}
	}

	mode := p.Mode
	if mode == "" {
		mode = ModeAutomatic
	}
	retry := p.Retry
	if retry.MaxAttempts <= 0 {
		retry = DefaultRetryPolicy()
	}
	callTimeout := p.CollaboratorTimeout
	if callTimeout <= 0 {
		callTimeout = defaultCollaboratorTimeout
	}
	responseWait := p.ResponseWait
	if responseWait <= 0 {
		responseWait = defaultResponseWait
	}
	sleep := p.Sleep
	if sleep == nil {
		sleep = defaultSleep
	}

	return &Orchestrator{
		store:        p.Store,
		email:        p.Email,
		phone:        p.Phone,
		audit:        p.AuditLog,
		planModel:    p.PlanModel,
		limiter:      p.Limiter,
		logger:       p.Logger,
		campaignID:   p.CampaignID,
		userID:       p.UserID,
		mode:         mode,
		onProgress:   p.OnProgress,
		retry:        retry,
		callTimeout:  callTimeout,
		responseWait: responseWait,
		sleep:        sleep,
		state:        newCampaignState(),
		prefs:        make(map[uuid.UUID]ContactPreference),
	}, nil
}

// State returns a full snapshot of the current run state.
func (o *Orchestrator) State() CampaignState {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state.clone()
}

// Planner returns the planner built for the current run, or nil before the
// outreach phase has been reached.
func (o *Orchestrator) Planner() *OutreachPlanner {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.planner
}

// DegradedAuditEvents counts audit-log writes that failed. A non-zero value
// means the observability trail is incomplete even though the run itself
// kept going.
func (o *Orchestrator) DegradedAuditEvents() int64 {
	return o.auditFailures.Load()
}

// SetCreatorPreferences stamps the supplied contact preferences onto any
// already-selected creators and keeps the raw list for creators adopted
// later. Call it before ExecuteCampaign; calling it mid-run is caller error.
func (o *Orchestrator) SetCreatorPreferences(prefs []CreatorPreference) {
	o.mu.Lock()
	o.prefs = make(map[uuid.UUID]ContactPreference, len(prefs))
	for _, pref := range prefs {
		p := pref.Preference
		if p == "" {
			p = PreferenceNone
		}
		o.prefs[pref.CreatorID] = p
	}

	next := o.state.clone()
	for i := range next.SelectedCreators {
		next.SelectedCreators[i].Preference = o.preferenceForLocked(next.SelectedCreators[i].ID)
	}
	next.Preferences = append([]CreatorPreference(nil), prefs...)
	o.state = next
	snapshot := next.clone()
	o.mu.Unlock()

	o.broadcast(snapshot)
}

// Reset discards all run state back to INITIATED. Calling it during an
// active run is caller error.
func (o *Orchestrator) Reset() {
	o.mu.Lock()
	o.state = newCampaignState()
	o.prefs = make(map[uuid.UUID]ContactPreference)
	o.metrics = store.AutomationMetrics{}
	o.campaign = store.Campaign{}
	o.planner = nil
	snapshot := o.state.clone()
	o.mu.Unlock()

	o.broadcast(snapshot)
}

// ExecuteCampaign runs the full stage sequence and returns the final state.
// On failure the returned state is FAILED and the original error comes back
// with it. Not reentrant.
func (o *Orchestrator) ExecuteCampaign(ctx context.Context) (CampaignState, error) {
	if !o.executing.CompareAndSwap(false, true) {
		return CampaignState{}, ErrExecutionInProgress
	}
	defer o.executing.Store(false)

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "campaign_id", Value: o.campaignID.String()},
		observability.Field{Key: "user_id", Value: o.userID.String()},
		observability.Field{Key: "mode", Value: string(o.mode)},
	)

	o.startAudit(ctx)

	if err := o.run(ctx); err != nil {
		o.logger.Error(ctx, "campaign execution failed", err)
		o.recordAuditError(ctx, errKindExecutionFailure, err)
		o.setStatus(StatusFailed)
		o.mu.Lock()
		o.metrics.Failed = true
		o.mu.Unlock()
		o.finalizeMetrics()
		o.pushAuditMetrics(ctx)
		return o.State(), err
	}

	return o.State(), nil
}

func (o *Orchestrator) run(ctx context.Context) error {
	if err := o.limiter.Wait(ctx); err != nil {
		return err
	}
	o.setStatus(StatusCreatorSearch)
	o.auditStep(ctx, "creator_search", stepStarted, nil)
	if err := o.searchCreators(ctx); err != nil {
		return fmt.Errorf("creator search failed: %w", err)
	}
	found := len(o.State().SelectedCreators)
	o.auditStep(ctx, "creator_search", stepCompleted, map[string]interface{}{"creators_found": found})
	o.mu.Lock()
	o.metrics.CreatorsFound = found
	o.mu.Unlock()

	if err := o.limiter.Wait(ctx); err != nil {
		return err
	}
	o.setStatus(StatusContractPhase)
	o.auditStep(ctx, "contract_generation", stepStarted, nil)
	if err := o.generateContracts(ctx); err != nil {
		return fmt.Errorf("contract generation failed: %w", err)
	}
	generated := len(o.State().SentContracts)
	o.auditStep(ctx, "contract_generation", stepCompleted, map[string]interface{}{"contracts_generated": generated})
	o.mu.Lock()
	o.metrics.ContractsGenerated = generated
	o.mu.Unlock()

	// The planner works off a fresh fetch so late-arriving campaign edits
	// are reflected in the outreach strategy.
	campaign, _, err := o.fetchCampaignWithCreators(ctx)
	if err != nil {
		return fmt.Errorf("campaign refresh before outreach failed: %w", err)
	}
	planner := NewOutreachPlanner(campaign, o.State().SelectedCreators, o.planModel, o.limiter, o.logger)
	o.mu.Lock()
	o.planner = planner
	o.mu.Unlock()

	if err := o.limiter.Wait(ctx); err != nil {
		return err
	}
	o.setStatus(StatusOutreach)
	o.auditStep(ctx, "outreach", stepStarted, nil)
	if err := o.conductOutreach(ctx); err != nil {
		return fmt.Errorf("outreach failed: %w", err)
	}
	o.mu.Lock()
	emails, calls := o.metrics.EmailsSent, o.metrics.CallsMade
	o.mu.Unlock()
	o.auditStep(ctx, "outreach", stepCompleted, map[string]interface{}{
		"emails_sent": emails,
		"calls_made":  calls,
	})

	if err := o.limiter.Wait(ctx); err != nil {
		return err
	}
	o.setStatus(StatusResponseProcessing)
	o.auditStep(ctx, "response_processing", stepStarted, nil)
	if err := o.processResponses(ctx); err != nil {
		return fmt.Errorf("response processing failed: %w", err)
	}
	o.auditStep(ctx, "response_processing", stepCompleted, nil)

	o.setStatus(StatusCompleted)
	o.finalizeMetrics()
	o.pushAuditMetrics(ctx)
	return nil
}

// searchCreators adopts the campaign's pre-selected creators when it has
// them, otherwise searches the store using the campaign's target filters.
func (o *Orchestrator) searchCreators(ctx context.Context) error {
	campaign, rows, err := o.fetchCampaignWithCreators(ctx)
	if err != nil {
		return err
	}

	if len(rows) == 0 {
		rows, err = o.store.SearchCreators(ctx, store.SearchCreatorsParams{
			Platform:          campaign.Platform,
			MinFollowers:      campaign.MinFollowers,
			MaxEngagementRate: campaign.MaxEngagementRate,
			Limit:             maxSearchResults,
		})
		if err != nil {
			return fmt.Errorf("creator search query failed: %w", err)
		}
	}

	creators := make([]Creator, 0, len(rows))
	for _, row := range rows {
		creator := creatorFromRow(row)
		creator.Preference = o.preferenceFor(creator.ID)
		creators = append(creators, creator)
	}

	o.replaceCreators(creators)
	o.appendCommunication(SystemActor, ChannelSystem, CommStatusSent,
		fmt.Sprintf("Creator search complete: %d creators selected", len(creators)))
	return nil
}

// generateContracts creates one draft contract per creator the caller chose
// to contact. The batch is all-or-nothing: a single insert failure aborts
// the stage and no contracts are committed to state.
func (o *Orchestrator) generateContracts(ctx context.Context) error {
	eligible := o.contactableCreators()
	if len(eligible) == 0 {
		o.appendCommunication(SystemActor, ChannelSystem, CommStatusSent,
			"No creators selected for contact; skipping contract generation")
		return nil
	}

	if err := o.limiter.Wait(ctx); err != nil {
		return err
	}

	content := contractContentFor(o.campaignSnapshot())
	contracts := make([]store.Contract, len(eligible))
	g, gctx := errgroup.WithContext(ctx)
	for i, creator := range eligible {
		i, creator := i, creator
		g.Go(func() error {
			cctx, cancel := context.WithTimeout(gctx, o.callTimeout)
			defer cancel()
			contract, err := o.store.CreateContract(cctx, store.CreateContractParams{
				CampaignID: o.campaignID,
				CreatorID:  creator.ID,
				Status:     store.ContractStatusDraft,
				Content:    content,
			})
			if err != nil {
				return fmt.Errorf("contract for creator %s: %w", creator.ID, err)
			}
			contracts[i] = contract
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	o.commitContracts(contracts)
	o.appendCommunication(SystemActor, ChannelSystem, CommStatusSent,
		fmt.Sprintf("Generated %d draft contracts", len(contracts)))
	return nil
}

// conductOutreach partitions creators by stored preference and dispatches
// each side: email as one bulk send with streaming per-item results, phone
// strictly sequential behind the limiter. A failed call marks that creator
// FAILED and the loop keeps going.
func (o *Orchestrator) conductOutreach(ctx context.Context) error {
	var emailCreators, phoneCreators []Creator
	for _, creator := range o.State().SelectedCreators {
		switch creator.Preference {
		case PreferenceEmail:
			emailCreators = append(emailCreators, creator)
		case PreferencePhone:
			phoneCreators = append(phoneCreators, creator)
		}
	}

	if len(emailCreators) == 0 && len(phoneCreators) == 0 {
		o.logger.Info(ctx, "no creators opted in to outreach, nothing to send")
		return nil
	}

	campaign := o.campaignSnapshot()

	if len(emailCreators) > 0 {
		if err := o.limiter.Wait(ctx); err != nil {
			return err
		}
		o.sendBulkEmails(ctx, campaign, emailCreators)
	}

	for _, creator := range phoneCreators {
		if err := o.limiter.Wait(ctx); err != nil {
			return err
		}
		if err := o.placeCall(ctx, campaign, creator); err != nil {
			o.logger.WarnWithError(observability.WithFields(ctx,
				observability.Field{Key: "creator_id", Value: creator.ID.String()},
			), "phone outreach failed for creator", err)
			o.appendCommunication(creator.ID.String(), ChannelPhone, CommStatusFailed,
				fmt.Sprintf("Phone outreach failed: %v", err))
			continue
		}
		o.mu.Lock()
		o.metrics.CallsMade++
		o.mu.Unlock()
		o.appendCommunication(creator.ID.String(), ChannelPhone, CommStatusSent, "Outreach call placed")
	}

	// The plan is recorded for display and audit; sending already happened
	// through the partition above.
	planner := o.Planner()
	if planner != nil {
		plan, err := planner.CreateExecutionPlan(ctx)
		if err != nil {
			return fmt.Errorf("execution plan generation failed: %w", err)
		}
		o.setPlan(plan)
	}
	return nil
}

func (o *Orchestrator) sendBulkEmails(ctx context.Context, campaign store.Campaign, creators []Creator) {
	recipients := make([]email.OutreachRecipient, 0, len(creators))
	for _, creator := range creators {
		recipients = append(recipients, email.OutreachRecipient{
			CreatorID: creator.ID.String(),
			Name:      creator.Name,
			Address:   creator.Email,
		})
	}

	cctx, cancel := context.WithTimeout(ctx, o.callTimeout)
	defer cancel()

	summary := o.email.SendOutreachBulk(cctx, outreachContentFor(campaign), recipients,
		func(result email.OutreachResult) {
			if result.Err != nil {
				o.appendCommunication(result.CreatorID, ChannelEmail, CommStatusFailed,
					fmt.Sprintf("Email outreach failed: %v", result.Err))
				return
			}
			o.appendCommunication(result.CreatorID, ChannelEmail, CommStatusSent, "Outreach email sent")
		})

	o.mu.Lock()
	o.metrics.EmailsSent += summary.Sent
	o.mu.Unlock()

	o.logger.Metrics(ctx,
		observability.MetricField{Key: "emails_sent", Value: summary.Sent},
		observability.MetricField{Key: "emails_failed", Value: summary.Failed},
	)
}

func (o *Orchestrator) placeCall(ctx context.Context, campaign store.Campaign, creator Creator) error {
	if creator.Phone == nil || *creator.Phone == "" {
		return fmt.Errorf("%w: %s", ErrCreatorMissingPhone, creator.Name)
	}
	contract, ok := o.contractFor(creator.ID)
	if !ok {
		return fmt.Errorf("%w: %s", ErrContractNotFound, creator.Name)
	}

	cctx, cancel := context.WithTimeout(ctx, o.callTimeout)
	defer cancel()
	_, err := o.phone.PlaceCall(cctx, *creator.Phone, CallPayload{
		Campaign: campaign,
		Creator:  creator,
		Contract: contract,
	})
	return err
}

// processResponses is a settle window for provider callbacks; response
// ingestion itself lives with the excluded webhook surface.
func (o *Orchestrator) processResponses(ctx context.Context) error {
	if err := o.sleep(ctx, o.responseWait); err != nil {
		return err
	}
	o.appendCommunication(SystemActor, ChannelSystem, CommStatusSent,
		"Response processing window elapsed")
	return nil
}

// fetchCampaignWithCreators retries around the store's propagation lag:
// association rows can trail campaign creation by a few seconds.
func (o *Orchestrator) fetchCampaignWithCreators(ctx context.Context) (store.Campaign, []store.Creator, error) {
	var lastErr error
	for attempt := 1; attempt <= o.retry.MaxAttempts; attempt++ {
		cctx, cancel := context.WithTimeout(ctx, o.callTimeout)
		campaign, creators, err := o.store.GetCampaignWithCreators(cctx, o.campaignID)
		cancel()
		if err == nil {
			o.mu.Lock()
			o.campaign = campaign
			o.mu.Unlock()
			return campaign, creators, nil
		}

		lastErr = err
		if errors.Is(err, store.ErrAssociationsNotReady) {
			o.logger.Warn(observability.WithFields(ctx,
				observability.Field{Key: "attempt", Value: attempt},
			), "campaign creator associations not yet populated, retrying")
		} else {
			o.logger.WarnWithError(observability.WithFields(ctx,
				observability.Field{Key: "attempt", Value: attempt},
			), "campaign fetch failed, retrying", err)
		}

		if attempt < o.retry.MaxAttempts {
			if serr := o.sleep(ctx, o.retry.Delay); serr != nil {
				return store.Campaign{}, nil, serr
			}
		}
	}
	return store.Campaign{}, nil, fmt.Errorf("campaign fetch failed after %d attempts: %w",
		o.retry.MaxAttempts, lastErr)
}

func (o *Orchestrator) finalizeMetrics() {
	o.mu.Lock()
	defer o.mu.Unlock()

	sent, failed := 0, 0
	for _, comm := range o.state.Communications {
		if comm.Status == CommStatusSent {
			sent++
		} else {
			failed++
		}
	}
	o.metrics.CommunicationsSent = sent
	o.metrics.CommunicationsFailed = failed
	o.metrics.SuccessRate = 0
	if total := sent + failed; total > 0 {
		o.metrics.SuccessRate = float64(sent) / float64(total) * 100
	}
	o.metrics.CreatorsFound = len(o.state.SelectedCreators)
	o.metrics.ContractsGenerated = len(o.state.SentContracts)
}

// --- audit logging: best-effort, never aborts the run ---

func (o *Orchestrator) startAudit(ctx context.Context) {
	logID, err := o.audit.StartAutomationLog(ctx, o.campaignID, o.userID, string(o.mode))
	if err != nil {
		o.auditDegraded(ctx, err)
		return
	}
	o.mu.Lock()
	o.logID = logID
	o.mu.Unlock()
}

func (o *Orchestrator) auditStep(ctx context.Context, name, status string, details map[string]interface{}) {
	logID := o.currentLogID()
	if logID == uuid.Nil {
		return
	}
	err := o.audit.AddAutomationStep(ctx, logID, store.AutomationStep{
		Name:    name,
		Status:  status,
		Details: details,
		At:      time.Now(),
	})
	if err != nil {
		o.auditDegraded(ctx, err)
	}
}

func (o *Orchestrator) recordAuditError(ctx context.Context, kind string, cause error) {
	logID := o.currentLogID()
	if logID == uuid.Nil {
		return
	}
	if err := o.audit.AddAutomationError(ctx, logID, kind, cause.Error()); err != nil {
		o.auditDegraded(ctx, err)
	}
}

func (o *Orchestrator) pushAuditMetrics(ctx context.Context) {
	logID := o.currentLogID()
	if logID == uuid.Nil {
		return
	}
	o.mu.Lock()
	metrics := o.metrics
	o.mu.Unlock()
	if err := o.audit.UpdateAutomationMetrics(ctx, logID, metrics); err != nil {
		o.auditDegraded(ctx, err)
	}
}

func (o *Orchestrator) auditDegraded(ctx context.Context, err error) {
	o.auditFailures.Add(1)
	o.logger.WarnWithError(ctx, "automation audit logging degraded", err)
}

func (o *Orchestrator) currentLogID() uuid.UUID {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.logID
}

// --- state mutation: always replace, then broadcast a snapshot ---

func (o *Orchestrator) setStatus(status CampaignStatus) {
	o.mu.Lock()
	next := o.state.clone()
	next.Status = status
	o.state = next
	snapshot := next.clone()
	o.mu.Unlock()
	o.broadcast(snapshot)
}

func (o *Orchestrator) appendCommunication(creatorID string, channel Channel, status CommStatus, content string) {
	comm := Communication{
		ID:        uuid.New(),
		CreatorID: creatorID,
		Channel:   channel,
		Status:    status,
		Content:   content,
		Timestamp: time.Now(),
	}
	o.mu.Lock()
	next := o.state.clone()
	next.Communications = append(next.Communications, comm)
	o.state = next
	snapshot := next.clone()
	o.mu.Unlock()
	o.broadcast(snapshot)
}

func (o *Orchestrator) replaceCreators(creators []Creator) {
	o.mu.Lock()
	next := o.state.clone()
	next.SelectedCreators = append([]Creator(nil), creators...)
	o.state = next
	snapshot := next.clone()
	o.mu.Unlock()
	o.broadcast(snapshot)
}

func (o *Orchestrator) commitContracts(contracts []store.Contract) {
	o.mu.Lock()
	next := o.state.clone()
	next.SentContracts = append([]store.Contract(nil), contracts...)
	o.state = next
	snapshot := next.clone()
	o.mu.Unlock()
	o.broadcast(snapshot)
}

func (o *Orchestrator) setPlan(plan ExecutionPlan) {
	o.mu.Lock()
	next := o.state.clone()
	next.ExecutionPlan = &plan
	o.state = next
	snapshot := next.clone()
	o.mu.Unlock()
	o.broadcast(snapshot)
}

func (o *Orchestrator) broadcast(snapshot CampaignState) {
	if o.onProgress != nil {
		o.onProgress(snapshot)
	}
}

// --- small lookups ---

func (o *Orchestrator) preferenceFor(creatorID uuid.UUID) ContactPreference {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.preferenceForLocked(creatorID)
}

func (o *Orchestrator) preferenceForLocked(creatorID uuid.UUID) ContactPreference {
	if pref, ok := o.prefs[creatorID]; ok {
		return pref
	}
	return PreferenceNone
}

func (o *Orchestrator) contactableCreators() []Creator {
	var out []Creator
	for _, creator := range o.State().SelectedCreators {
		if creator.Preference != PreferenceNone && creator.Preference != "" {
			out = append(out, creator)
		}
	}
	return out
}

func (o *Orchestrator) contractFor(creatorID uuid.UUID) (store.Contract, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	for _, contract := range o.state.SentContracts {
		if contract.CreatorID == creatorID {
			return contract, true
		}
	}
	return store.Contract{}, false
}

func (o *Orchestrator) campaignSnapshot() store.Campaign {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.campaign
}

func contractContentFor(campaign store.Campaign) store.ContractContent {
	content := store.ContractContent{
		Deliverables: "To be agreed with the creator",
		Timeline:     "To be agreed with the creator",
		Compensation: "To be negotiated within campaign budget",
	}
	if campaign.Deliverables != nil && *campaign.Deliverables != "" {
		content.Deliverables = *campaign.Deliverables
	}
	if campaign.Timeline != nil && *campaign.Timeline != "" {
		content.Timeline = *campaign.Timeline
	}
	if campaign.Budget > 0 {
		content.Compensation = fmt.Sprintf("Negotiable within a campaign budget of $%.2f", campaign.Budget)
	}
	return content
}

func outreachContentFor(campaign store.Campaign) email.OutreachContent {
	content := email.OutreachContent{
		CampaignName: campaign.Name,
		Brand:        campaign.Brand,
	}
	if campaign.Goals != nil {
		content.Goals = *campaign.Goals
	}
	if campaign.Deliverables != nil {
		content.Deliverables = *campaign.Deliverables
	}
	if campaign.Timeline != nil {
		content.Timeline = *campaign.Timeline
	}
	return content
}
