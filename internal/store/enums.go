package store

// Contract ENUMs
const (
	ContractStatusDraft  = "draft"
	ContractStatusSent   = "sent"
	ContractStatusSigned = "signed"
)

// Automation log ENUMs
const (
	AutomationLogStatusRunning   = "running"
	AutomationLogStatusCompleted = "completed"
	AutomationLogStatusFailed    = "failed"
)

const (
	AutomationEntryKindStep  = "step"
	AutomationEntryKindError = "error"
)

// Creator platform ENUMs
const (
	PlatformInstagram = "instagram"
	PlatformTikTok    = "tiktok"
	PlatformYouTube   = "youtube"
)
