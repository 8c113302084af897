package service

import (
	"context"
	"errors"
	"strings"
	"sync"

	"stocksight/internal/dashboard/repository"
	"stocksight/pkg/logger"

	"go.uber.org/zap"
)

var (
	// ErrBlankInput is returned by Submit when the input is empty or only
	// whitespace. The page state is left untouched.
	ErrBlankInput = errors.New("blank input")
	// ErrSuperseded is returned to a submission whose response arrived after
	// a newer submission on the same page. Its result is discarded.
	ErrSuperseded = errors.New("request superseded by a newer submission")
)

// Status is the state of a page.
type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusSuccess
	StatusFailure
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	case StatusSuccess:
		return "success"
	case StatusFailure:
		return "failure"
	default:
		return "unknown"
	}
}

// View is an immutable snapshot of a page, ready to render.
type View[In, Out any] struct {
	Status Status
	Input  In
	// Result is meaningful only when HasResult is true. It survives a new
	// submission until that submission fails.
	Result    Out
	HasResult bool
	Err       error
	// Message is the user-facing error text.
	Message string
	Seq     uint64
}

// Loading reports whether the view is waiting on a request.
func (v View[In, Out]) Loading() bool {
	return v.Status == StatusLoading
}

// FetchFunc performs the page's request(s) for a normalized input.
type FetchFunc[In, Out any] func(ctx context.Context, in In) (Out, error)

// NormalizeFunc validates and canonicalizes raw input. It returns
// ErrBlankInput (or another error) to reject the submission before any call.
type NormalizeFunc[In any] func(in In) (In, error)

// Page is the idle → loading → success|failure state machine shared by all
// dashboard pages.
//
// Each submission is tagged with a sequence number. A response is applied
// only if no newer submission has started since; otherwise it is dropped and
// the older request's context is cancelled.
type Page[In, Out any] struct {
	name      string
	fallback  string
	normalize NormalizeFunc[In]
	fetch     FetchFunc[In, Out]
	onSuccess func(in In, out Out)
	log       *logger.Logger

	mu        sync.Mutex
	seq       uint64
	cancel    context.CancelFunc
	view      View[In, Out]
	lastInput In
	hasInput  bool
}

// NewPage creates a page. fallback is shown when a failure carries no text.
func NewPage[In, Out any](name, fallback string, normalize NormalizeFunc[In], fetch FetchFunc[In, Out], log *logger.Logger) *Page[In, Out] {
	return &Page[In, Out]{
		name:      name,
		fallback:  fallback,
		normalize: normalize,
		fetch:     fetch,
		log:       log,
	}
}

// Name returns the page name.
func (p *Page[In, Out]) Name() string {
	return p.name
}

// Submit runs the page request for in and blocks until it resolves.
func (p *Page[In, Out]) Submit(ctx context.Context, in In) (Out, error) {
	var zero Out

	norm, err := p.normalize(in)
	if err != nil {
		return zero, err
	}

	p.mu.Lock()
	if p.cancel != nil {
		p.cancel()
	}
	p.seq++
	seq := p.seq
	reqCtx, cancel := context.WithCancel(ctx)
	p.cancel = cancel
	p.lastInput = norm
	p.hasInput = true
	p.view.Status = StatusLoading
	p.view.Input = norm
	p.view.Err = nil
	p.view.Message = ""
	p.view.Seq = seq
	p.mu.Unlock()

	reqCtx = logger.WithContextFields(reqCtx,
		logger.StringField("page", p.name),
		logger.Uint64Field("seq", seq),
	)
	p.log.DebugContext(reqCtx, "Page submitted", logger.Field("input", norm))

	out, fetchErr := p.fetch(reqCtx, norm)

	p.mu.Lock()
	defer p.mu.Unlock()
	cancel()

	if seq != p.seq {
		p.log.DebugContext(reqCtx, "Discarding stale response", logger.Uint64Field("current_seq", p.seq))
		return zero, ErrSuperseded
	}
	p.cancel = nil

	if fetchErr != nil {
		p.view.Status = StatusFailure
		p.view.Err = fetchErr
		p.view.Message = p.messageFor(fetchErr)
		p.view.Result = zero
		p.view.HasResult = false
		p.log.WarnContext(reqCtx, "Page request failed", failureFields(fetchErr)...)
		return zero, fetchErr
	}

	p.view.Status = StatusSuccess
	p.view.Result = out
	p.view.HasResult = true
	if p.onSuccess != nil {
		p.onSuccess(norm, out)
	}
	return out, nil
}

// Retry re-submits the last input. It returns ErrBlankInput when nothing
// was submitted yet.
func (p *Page[In, Out]) Retry(ctx context.Context) (Out, error) {
	p.mu.Lock()
	in, ok := p.lastInput, p.hasInput
	p.mu.Unlock()

	if !ok {
		var zero Out
		return zero, ErrBlankInput
	}
	return p.Submit(ctx, in)
}

// Loading reports whether a request is in flight. Front ends disable their
// submit control while it is true.
func (p *Page[In, Out]) Loading() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.view.Status == StatusLoading
}

// View returns a snapshot of the page.
func (p *Page[In, Out]) View() View[In, Out] {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.view
}

// DismissError clears a displayed error, returning the page to idle.
func (p *Page[In, Out]) DismissError() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.view.Status == StatusFailure {
		p.view.Status = StatusIdle
		p.view.Err = nil
		p.view.Message = ""
	}
}

func (p *Page[In, Out]) messageFor(err error) string {
	if msg := err.Error(); msg != "" {
		return msg
	}
	return p.fallback
}

// normalizeSymbol trims and upper-cases a ticker.
func normalizeSymbol(symbol string) (string, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if symbol == "" {
		return "", ErrBlankInput
	}
	return symbol, nil
}

func failureFields(err error) []zap.Field {
	fields := []zap.Field{logger.ErrorField(err)}
	var fe *repository.FetchError
	if errors.As(err, &fe) {
		fields = append(fields,
			logger.StringField("kind", fe.Kind.String()),
			logger.IntField("status_code", fe.StatusCode),
			logger.StringField("detail", fe.Detail()),
		)
	}
	return fields
}
