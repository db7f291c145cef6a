// Package dispatch routes incoming bot events to their replies. Commands are
// matched exactly against a fixed table; free text is matched by ordered
// substring tests on its lower-cased form.
package dispatch

import (
	"context"
	"log/slog"
	"sort"
	"strings"

	"github.com/edgard/fitbot/internal/completion"
	"github.com/edgard/fitbot/internal/config"
)

// Commands understood by the dispatcher, without the leading slash.
const (
	CommandStart = "start"
	CommandHelp  = "help"
	CommandTrain = "train"
	CommandFood  = "food"
)

// Free-text triggers, matched against the lower-cased message in this order.
var (
	greetingTriggers = []string{"привет", "hello"}
	exerciseTrigger  = "какие упражнения"
)

// Kind tells a command event from a free-text one.
type Kind int

const (
	// KindCommand is a recognised slash command.
	KindCommand Kind = iota
	// KindText is any plain text message.
	KindText
)

// Event is a single user message or command awaiting a reply.
type Event struct {
	Kind    Kind
	Command string
	Text    string
}

// Command returns a command event for name (no leading slash).
func Command(name string) Event {
	return Event{Kind: KindCommand, Command: name}
}

// Text returns a free-text event.
func Text(text string) Event {
	return Event{Kind: KindText, Text: text}
}

type replyFunc func(ctx context.Context) string

// Dispatcher turns events into reply text. It holds no mutable state and is
// safe for concurrent use.
type Dispatcher struct {
	logger   *slog.Logger
	client   completion.Client
	prompts  completion.Prompts
	messages config.MessagesConfig
	commands map[string]replyFunc
}

// New creates a Dispatcher answering with msgs and asking client for
// generated replies using prompts.
func New(logger *slog.Logger, client completion.Client, prompts completion.Prompts, msgs config.MessagesConfig) *Dispatcher {
	if logger == nil {
		logger = slog.Default()
	}
	d := &Dispatcher{
		logger:   logger.With("component", "dispatcher"),
		client:   client,
		prompts:  prompts,
		messages: msgs,
	}
	d.commands = map[string]replyFunc{
		CommandStart: d.static(msgs.Start),
		CommandHelp:  d.static(msgs.Help),
		CommandTrain: d.generated(completion.TrainingPlan),
		CommandFood:  d.static(msgs.Food),
	}
	return d
}

// Commands lists the command names the dispatcher answers, sorted.
func (d *Dispatcher) Commands() []string {
	names := make([]string, 0, len(d.commands))
	for name := range d.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Route returns the reply for ev. It never fails: completion errors are
// logged and replaced with the configured fallback message.
func (d *Dispatcher) Route(ctx context.Context, ev Event) string {
	switch ev.Kind {
	case KindCommand:
		if reply, ok := d.commands[ev.Command]; ok {
			return reply(ctx)
		}
		d.logger.WarnContext(ctx, "Unknown command routed to dispatcher", "command", ev.Command)
		return d.messages.NotUnderstood
	case KindText:
		return d.routeText(ctx, ev.Text)
	default:
		d.logger.WarnContext(ctx, "Unknown event kind", "kind", int(ev.Kind))
		return d.messages.NotUnderstood
	}
}

func (d *Dispatcher) routeText(ctx context.Context, text string) string {
	lower := strings.ToLower(text)

	// Greeting wins even if the exercise trigger is present too.
	for _, trigger := range greetingTriggers {
		if strings.Contains(lower, trigger) {
			return d.messages.Greeting
		}
	}

	if strings.Contains(lower, exerciseTrigger) {
		return d.complete(ctx, completion.ExerciseSuggestion)
	}

	return d.messages.NotUnderstood
}

func (d *Dispatcher) static(text string) replyFunc {
	return func(context.Context) string { return text }
}

func (d *Dispatcher) generated(kind completion.Kind) replyFunc {
	return func(ctx context.Context) string { return d.complete(ctx, kind) }
}

// complete asks the completion service for kind and maps any failure to the
// fallback message.
func (d *Dispatcher) complete(ctx context.Context, kind completion.Kind) string {
	log := d.logger.With("prompt_kind", kind.String())

	req, ok := d.prompts.Lookup(kind)
	if !ok {
		log.ErrorContext(ctx, "No prompt configured for kind")
		return d.messages.Fallback
	}
	if d.client == nil {
		log.ErrorContext(ctx, "Completion client is not configured")
		return d.messages.Fallback
	}

	text, err := d.client.Complete(ctx, req)
	if err != nil {
		log.ErrorContext(ctx, "Completion request failed", "error", err)
		return d.messages.Fallback
	}

	log.DebugContext(ctx, "Completion succeeded", "text_length", len(text))
	return text
}
