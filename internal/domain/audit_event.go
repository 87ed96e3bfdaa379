package domain

import "time"

// AuditActor identifies who performed an audited action.
type AuditActor string

const (
	ActorSystem AuditActor = "system"
	ActorAgent  AuditActor = "agent"
	ActorUser   AuditActor = "user"
)

// Well-known audit actions. Action is an open string on purpose: new
// workflow steps must be representable without a schema change, so the
// set below is documentation, not an enum.
const (
	ActionTicketCreated       = "TICKET_CREATED"
	ActionPlanCreated         = "PLAN_CREATED"
	ActionClassificationStart = "CLASSIFICATION_STARTED"
	ActionAgentClassified     = "AGENT_CLASSIFIED"
	ActionKBRetrievalStarted  = "KB_RETRIEVAL_STARTED"
	ActionKBRetrieved         = "KB_RETRIEVED"
	ActionDraftingStarted     = "DRAFTING_STARTED"
	ActionDraftGenerated      = "DRAFT_GENERATED"
	ActionAutoClosed          = "AUTO_CLOSED"
	ActionAssignedToHuman     = "ASSIGNED_TO_HUMAN"
	ActionTriageCompleted     = "TRIAGE_COMPLETED"
	ActionTriageFailed        = "TRIAGE_FAILED"
	ActionStatusChanged       = "STATUS_CHANGED"
	ActionReplySent           = "REPLY_SENT"
)

// AuditEvent is an immutable, trace-correlated trail entry. Events are
// never updated or deleted once written.
type AuditEvent struct {
	ID        string
	TicketID  string
	TraceID   string
	Actor     AuditActor
	Action    string
	Meta      map[string]any
	CreatedAt time.Time
}
