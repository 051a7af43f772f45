package chatbot

import (
	"context"

	"github.com/google/uuid"
	ahocorasick "github.com/petar-dambovaliev/aho-corasick"
	"go.uber.org/zap"

	"github.com/safarnama/safarnama/internal/app/models"
	"github.com/safarnama/safarnama/internal/pkg/llm"
)

const fallbackReply = "I can help with Indian destinations, itineraries, budgets and travel tips. Could you rephrase that?"

// Rule maps trigger keywords to one canned response.
type Rule struct {
	Keywords []string
	Reply    string
}

// Service answers chat messages. Messages matching a keyword rule get the
// canned response; everything else goes to the model, and a model failure
// degrades to a static fallback. A reply is always produced.
type Service interface {
	Reply(ctx context.Context, req models.ChatRequest) models.ChatReply
}

type ServiceImpl struct {
	matcher    ahocorasick.AhoCorasick
	ruleForPat []int
	rules      []Rule
	generator  llm.Generator
	logger     *zap.Logger
}

var _ Service = (*ServiceImpl)(nil)

// NewService builds the keyword automaton from an immutable rule table.
// The generator may be nil, in which case unmatched messages get the
// static fallback.
func NewService(rules []Rule, generator llm.Generator, logger *zap.Logger) *ServiceImpl {
	var patterns []string
	var ruleForPat []int
	for i, rule := range rules {
		for _, kw := range rule.Keywords {
			patterns = append(patterns, kw)
			ruleForPat = append(ruleForPat, i)
		}
	}

	builder := ahocorasick.NewAhoCorasickBuilder(ahocorasick.Opts{
		AsciiCaseInsensitive: true,
		MatchOnlyWholeWords:  true,
		MatchKind:            ahocorasick.LeftMostLongestMatch,
		DFA:                  true,
	})

	return &ServiceImpl{
		matcher:    builder.Build(patterns),
		ruleForPat: ruleForPat,
		rules:      rules,
		generator:  generator,
		logger:     logger,
	}
}

func (s *ServiceImpl) Reply(ctx context.Context, req models.ChatRequest) models.ChatReply {
	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	if matches := s.matcher.FindAll(req.Message); len(matches) > 0 {
		rule := s.rules[s.ruleForPat[matches[0].Pattern()]]
		return models.ChatReply{SessionID: sessionID, Reply: rule.Reply, Source: "rules"}
	}

	if s.generator != nil {
		answer, err := s.generator.GenerateText(ctx,
			"You are a concise travel assistant for destinations in India. Answer in a few sentences.\n\nQuestion: "+req.Message)
		if err == nil {
			return models.ChatReply{SessionID: sessionID, Reply: answer, Source: "model"}
		}
		s.logger.Warn("chat model call failed, using fallback", zap.Error(err))
	}

	return models.ChatReply{SessionID: sessionID, Reply: fallbackReply, Source: "fallback"}
}

// DefaultRules is the built-in canned response table.
func DefaultRules() []Rule {
	return []Rule{
		{
			Keywords: []string{"hello", "hi", "namaste", "hey"},
			Reply:    "Namaste! Ask me about destinations, itineraries, budgets or the best time to travel in India.",
		},
		{
			Keywords: []string{"best time", "season", "when to visit", "monsoon"},
			Reply:    "October to March is pleasant across most of India. Hill stations are best April to June, and the monsoon (June to September) suits Kerala and the Western Ghats.",
		},
		{
			Keywords: []string{"budget", "cheap", "cost", "expensive"},
			Reply:    "Budget travelers manage on ₹1,500-2,500 per day, mid-range trips run ₹4,000-8,000, and luxury stays start around ₹12,000. Use the cost endpoint for a per-destination estimate.",
		},
		{
			Keywords: []string{"train", "railway", "irctc"},
			Reply:    "Indian Railways is the classic way to travel between cities. Book on IRCTC well in advance and prefer 2A or 3A class for long overnight routes.",
		},
		{
			Keywords: []string{"visa", "evisa", "passport"},
			Reply:    "Most nationalities can apply for an Indian e-Visa online; it usually arrives within 72 hours. Carry a passport valid for six months beyond arrival.",
		},
		{
			Keywords: []string{"food", "eat", "street food", "cuisine"},
			Reply:    "Every region has its own cuisine: chaat in Delhi, thalis in Gujarat, dosas in the south, seafood on the coasts. Stick to busy stalls and bottled water.",
		},
		{
			Keywords: []string{"safe", "safety", "scam"},
			Reply:    "India is broadly safe for travelers who take the usual precautions: prepaid taxis from airports, registered guides at monuments, and agreed fares before boarding autos.",
		},
	}
}
