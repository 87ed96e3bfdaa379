package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/smart-helpdesk/helpdesk/internal/domain"
)

func TestAuditAppendSwallowsRepositoryFailure(t *testing.T) {
	repo := &fakeAuditRepo{failing: true}
	svc := NewAuditService(repo, zap.NewNop())

	// must not panic or surface the error to the workflow
	svc.Append(context.Background(), "ticket-1", domain.ActorSystem, domain.ActionTicketCreated, nil, "trace-1")

	assert.Empty(t, repo.events)
}

func TestAuditAppendDefaultsNilMeta(t *testing.T) {
	repo := &fakeAuditRepo{}
	svc := NewAuditService(repo, zap.NewNop())

	svc.Append(context.Background(), "ticket-1", domain.ActorAgent, domain.ActionDraftingStarted, nil, "trace-1")

	require.Len(t, repo.events, 1)
	assert.NotNil(t, repo.events[0].Meta)
}

func TestAuditByTicketPreservesOrder(t *testing.T) {
	repo := &fakeAuditRepo{}
	svc := NewAuditService(repo, zap.NewNop())

	svc.Append(context.Background(), "ticket-1", domain.ActorAgent, domain.ActionPlanCreated, nil, "trace-1")
	svc.Append(context.Background(), "ticket-2", domain.ActorAgent, domain.ActionPlanCreated, nil, "trace-2")
	svc.Append(context.Background(), "ticket-1", domain.ActorAgent, domain.ActionTriageCompleted, nil, "trace-1")

	events, err := svc.ByTicket(context.Background(), "ticket-1")
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, domain.ActionPlanCreated, events[0].Action)
	assert.Equal(t, domain.ActionTriageCompleted, events[1].Action)
}

func TestAuditByTraceRequiresTraceID(t *testing.T) {
	svc := NewAuditService(&fakeAuditRepo{}, zap.NewNop())

	_, err := svc.ByTrace(context.Background(), "")
	assert.Error(t, err)
}

func TestAuditByTraceSpansTickets(t *testing.T) {
	repo := &fakeAuditRepo{}
	svc := NewAuditService(repo, zap.NewNop())

	svc.Append(context.Background(), "ticket-1", domain.ActorAgent, domain.ActionPlanCreated, nil, "trace-1")
	svc.Append(context.Background(), "ticket-1", domain.ActorAgent, domain.ActionTriageCompleted, nil, "trace-1")
	svc.Append(context.Background(), "ticket-1", domain.ActorAgent, domain.ActionReplySent, nil, "other")

	events, err := svc.ByTrace(context.Background(), "trace-1")
	require.NoError(t, err)
	assert.Len(t, events, 2)
}
