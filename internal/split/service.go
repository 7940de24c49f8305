package split

import (
	"context"
	"errors"
	"log"

	"github.com/moriyama-t/splitbot/internal/bill"
	"github.com/moriyama-t/splitbot/internal/llm"
)

var ErrNoSession = errors.New("no pending bill for this conversation")

// Generator is the inference service: one synchronous call mixing
// textual instructions and at most one image.
type Generator interface {
	Generate(ctx context.Context, parts []llm.Part) (string, error)
}

// Notifier delivers an outbound message to a conversation.
// Fire-and-forget: failures are logged by the caller, never retried.
type Notifier interface {
	Notify(channelID, text string) error
}

// Service runs the bill-split conversation: photo in, structured bill
// out, then free-text assignments in, per-person breakdown out. All
// session access goes through the service; the two stages never touch
// the store directly.
type Service struct {
	gen   Generator
	out   Notifier
	store *Store
}

func NewService(gen Generator, out Notifier) *Service {
	return &Service{
		gen:   gen,
		out:   out,
		store: NewStore(),
	}
}

// State reports the conversation's position in the flow. A pending
// bill means assignments are expected next.
func (s *Service) State(channelID string) State {
	if s.store.Get(channelID) != nil {
		return StateAwaitingAssignments
	}
	return StateIdle
}

// PendingCount reports how many conversations are awaiting assignments.
func (s *Service) PendingCount() int {
	return s.store.Count()
}

// HandlePhoto runs the extraction stage. On success the conversation
// moves to awaiting assignments; on any failure it returns to idle
// with the session empty. A photo sent while a split is already in
// progress restarts the flow with the new image.
func (s *Service) HandlePhoto(ctx context.Context, channelID string, image []byte, mimeType string) {
	if s.State(channelID) == StateAwaitingAssignments {
		s.store.Clear(channelID)
		s.notify(channelID, "Starting over with the new photo. I've discarded the previous split.")
	}

	s.notify(channelID, "Got your photo! Reading the bill with AI... 📸")

	raw, err := s.gen.Generate(ctx, []llm.Part{
		llm.TextPart(extractionPrompt),
		llm.ImagePart(image, mimeType),
	})
	if err != nil {
		log.Printf("split: extraction call failed for channel %s: %v", channelID, err)
		s.notify(channelID, "Sorry, I had trouble reading that receipt. Please try a clearer photo or use /cancel to stop.")
		return
	}

	b, err := bill.Parse(raw)
	if err != nil {
		log.Printf("split: extraction parse failed for channel %s: %v", channelID, err)
		s.notify(channelID, "Sorry, I couldn't find any items on that receipt. Please try a clearer photo.")
		return
	}

	s.store.Put(channelID, b)

	summary := "OK, I've read the bill! Here's what I found:\n\n**Items:**\n" +
		b.Summary() +
		"\n\n---------------------------------\n" +
		"**Now, please tell me who had what.**\n" +
		"Send me a single message like this:\n\n" +
		"Alice: Burger, Fries\n" +
		"Bob: Salad\n" +
		"Everyone: Tacos (to split an item)"
	s.notify(channelID, summary)
}

// HandleText runs the assignment stage. The pending bill is cleared
// unconditionally after the attempt; the conversation always ends the
// turn idle.
func (s *Service) HandleText(ctx context.Context, channelID, assignments string) {
	b := s.store.Get(channelID)
	if b == nil {
		log.Printf("split: %v (channel %s)", ErrNoSession, channelID)
		s.notify(channelID, "Oops! Something went wrong. Please send the photo again to start over.")
		return
	}
	defer s.store.Clear(channelID)

	s.notify(channelID, "Got it! Calculating the split... 🧮")

	raw, err := s.gen.Generate(ctx, []llm.Part{
		llm.TextPart(assignmentPrompt(b, assignments)),
	})
	if err != nil {
		log.Printf("split: assignment call failed for channel %s: %v", channelID, err)
		s.notify(channelID, "Sorry, I had trouble with the final calculation. Please try again.")
		return
	}

	// The breakdown is relayed verbatim; the model owns the arithmetic.
	s.notify(channelID, raw)
}

// Cancel clears any pending bill and confirms to the user. Safe to
// call in any state.
func (s *Service) Cancel(channelID string) {
	s.store.Clear(channelID)
	s.notify(channelID, "OK, I've cancelled the current bill split.")
}

func (s *Service) notify(channelID, text string) {
	if err := s.out.Notify(channelID, text); err != nil {
		log.Printf("split: failed to send message to channel %s: %v", channelID, err)
	}
}
