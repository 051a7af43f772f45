package chatbot

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/safarnama/safarnama/internal/app/models"
)

type stubGenerator struct {
	response string
	err      error
	calls    int
}

func (g *stubGenerator) GenerateText(_ context.Context, _ string) (string, error) {
	g.calls++
	if g.err != nil {
		return "", g.err
	}
	return g.response, nil
}

func TestReplyMatchesRule(t *testing.T) {
	gen := &stubGenerator{response: "model answer"}
	svc := NewService(DefaultRules(), gen, zap.NewNop())

	reply := svc.Reply(context.Background(), models.ChatRequest{Message: "What is the best time to visit Kerala?"})

	assert.Equal(t, "rules", reply.Source)
	assert.Contains(t, reply.Reply, "October to March")
	assert.Zero(t, gen.calls, "rule match must not hit the model")
}

func TestReplyIsCaseInsensitive(t *testing.T) {
	svc := NewService(DefaultRules(), nil, zap.NewNop())

	reply := svc.Reply(context.Background(), models.ChatRequest{Message: "NAMASTE!"})

	assert.Equal(t, "rules", reply.Source)
}

func TestReplyFallsThroughToModel(t *testing.T) {
	gen := &stubGenerator{response: "Try the backwaters of Alleppey."}
	svc := NewService(DefaultRules(), gen, zap.NewNop())

	reply := svc.Reply(context.Background(), models.ChatRequest{Message: "Tell me about houseboats"})

	assert.Equal(t, "model", reply.Source)
	assert.Equal(t, "Try the backwaters of Alleppey.", reply.Reply)
	assert.Equal(t, 1, gen.calls)
}

func TestReplyModelFailureUsesFallback(t *testing.T) {
	gen := &stubGenerator{err: errors.New("quota exceeded")}
	svc := NewService(DefaultRules(), gen, zap.NewNop())

	reply := svc.Reply(context.Background(), models.ChatRequest{Message: "Tell me about houseboats"})

	assert.Equal(t, "fallback", reply.Source)
	assert.Equal(t, fallbackReply, reply.Reply)
}

func TestReplyNilGeneratorUsesFallback(t *testing.T) {
	svc := NewService(DefaultRules(), nil, zap.NewNop())

	reply := svc.Reply(context.Background(), models.ChatRequest{Message: "Tell me about houseboats"})

	assert.Equal(t, "fallback", reply.Source)
}

func TestReplyAssignsSessionID(t *testing.T) {
	svc := NewService(DefaultRules(), nil, zap.NewNop())

	reply := svc.Reply(context.Background(), models.ChatRequest{Message: "hello"})
	assert.NotEmpty(t, reply.SessionID)

	kept := svc.Reply(context.Background(), models.ChatRequest{SessionID: reply.SessionID, Message: "hello"})
	assert.Equal(t, reply.SessionID, kept.SessionID)
}

func TestReplyPartialWordDoesNotMatch(t *testing.T) {
	// "hitchhiking" contains "hi" but only whole words trigger rules.
	svc := NewService(DefaultRules(), nil, zap.NewNop())

	reply := svc.Reply(context.Background(), models.ChatRequest{Message: "hitchhiking tips?"})

	assert.Equal(t, "fallback", reply.Source)
}
