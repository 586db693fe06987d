package permit

import (
	"context"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"excuse-agency/api/internal/llm"
	"excuse-agency/api/internal/report"
)

// FontProvider supplies the certificate typeface.
type FontProvider interface {
	Fetch(ctx context.Context) ([]byte, error)
}

// RenderFunc serializes the composed document to an image.
type RenderFunc func(Presentation, Document, []byte) []byte

// Service drives the whole pipeline: validate, draw an outcome, prompt the
// model, decode (falling back on any model or decode failure), map the
// presentation and render. Stateless across requests.
type Service struct {
	eng    llm.Engine
	fonts  FontProvider
	render RenderFunc
	sel    *Selector
	rep    *report.Reporter
	issue  IssueSource
	log    *zap.Logger
}

func NewService(eng llm.Engine, fonts FontProvider, render RenderFunc, sel *Selector, rep *report.Reporter, log *zap.Logger) *Service {
	return &Service{
		eng:    eng,
		fonts:  fonts,
		render: render,
		sel:    sel,
		rep:    rep,
		issue:  rand.New(rand.NewSource(time.Now().UnixNano())),
		log:    log,
	}
}

// Generate runs one application through the pipeline and returns the rendered
// SVG. Model unavailability and malformed output degrade into the fallback
// document; only invalid input, a missing credential or a typeface failure
// surface as errors.
func (s *Service) Generate(ctx context.Context, rawReason string) ([]byte, error) {
	reason, err := ValidateReason(rawReason)
	if err != nil {
		return nil, err
	}

	if !s.eng.Configured() {
		return nil, ErrMissingAPIKey
	}

	d := s.sel.Draw()
	prompt := BuildPrompt(d, reason)

	raw, err := s.eng.Generate(ctx, prompt)
	doc := FallbackDocument
	if err != nil {
		s.log.Warn("model call failed, using fallback document",
			zap.String("engine", s.eng.Name()), zap.Error(err))
		raw = ""
	} else if decoded, derr := DecodeDocument(raw); derr != nil {
		s.log.Warn("model output rejected, using fallback document",
			zap.String("engine", s.eng.Name()), zap.Error(derr))
	} else {
		doc = decoded
	}

	p := BuildPresentation(d, doc, time.Now(), s.issue)

	font, err := s.fonts.Fetch(ctx)
	if err != nil {
		return nil, err
	}

	svg := s.render(p, doc, font)

	s.rep.Send(reason, raw)

	return svg, nil
}
