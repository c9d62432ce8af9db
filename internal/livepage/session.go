package livepage

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"go.uber.org/zap"

	"elaundry/internal/carousel"
	"elaundry/internal/directory"
	"elaundry/internal/dto"
	"elaundry/internal/orderform"
	apperrors "elaundry/pkg/errors"
	"elaundry/pkg/geo"
	"elaundry/pkg/websocket"
)

// Sender is where a session writes its envelopes. *websocket.Client is one.
type Sender interface {
	Send(env websocket.Envelope) error
}

// Session is the server side of one page view: the branch directory, the
// order form and the hero carousel, driven by messages from the browser.
type Session struct {
	ID string

	directory *directory.Directory
	form      *orderform.Form
	rotator   *carousel.Rotator
	out       Sender
	logger    *zap.Logger

	closeOnce sync.Once
}

func newSession(id string, d *directory.Directory, f *orderform.Form, r *carousel.Rotator, out Sender, logger *zap.Logger) *Session {
	s := &Session{
		ID:        id,
		directory: d,
		form:      f,
		rotator:   r,
		out:       out,
		logger:    logger.With(zap.String("session", id)),
	}

	d.Subscribe(func(c directory.Change) {
		s.emit(dto.EvtViewport, dto.ViewportPayload{Reason: c.Reason, Viewport: c.Viewport, Animate: c.Animate})
	})
	r.OnAdvance(func(i int) {
		s.emit(dto.EvtSlide, s.slide(i))
	})
	return s
}

func (s *Session) Directory() *directory.Directory { return s.directory }

func (s *Session) Form() *orderform.Form { return s.form }

func (s *Session) Rotator() *carousel.Rotator { return s.rotator }

func (s *Session) ready() {
	view := dto.DirectoryViewFromSnapshot(s.directory.Snapshot())
	s.emit(dto.EvtReady, dto.ReadyPayload{SessionID: s.ID, View: view, Slide: s.slide(s.rotator.Current())})
	s.rotator.Start()
}

// Handle applies one message from the browser. Bad input is answered with
// an error envelope; the session stays usable.
func (s *Session) Handle(ctx context.Context, raw []byte) {
	var msg dto.ClientMessage
	if err := json.Unmarshal(raw, &msg); err != nil {
		s.fail("malformed message")
		return
	}

	switch msg.Type {
	case dto.MsgQuery:
		var p dto.QueryPayload
		if !s.decode(msg.Payload, &p) {
			return
		}
		filtered := s.directory.SetQuery(p.Query)
		s.emit(dto.EvtBranches, dto.BranchesPayload{
			Query:    p.Query,
			Shown:    len(filtered),
			Branches: dto.BranchesToDTO(filtered),
			Markers:  s.directory.Markers(),
		})

	case dto.MsgSelect:
		var p dto.SelectPayload
		if !s.decode(msg.Payload, &p) {
			return
		}
		if !s.directory.Select(p.ID) {
			s.fail("unknown branch")
			return
		}
		marker, _ := s.directory.Marker(p.ID)
		s.emit(dto.EvtSelection, dto.SelectionPayload{ID: p.ID, Marker: marker})

	case dto.MsgResetView:
		s.directory.ResetView()

	case dto.MsgFitBranches:
		s.directory.FitBranches()

	case dto.MsgResize:
		var p dto.ResizePayload
		if !s.decode(msg.Payload, &p) {
			return
		}
		s.directory.Resize(geo.Size{W: p.Width, H: p.Height})

	case dto.MsgCall:
		var p dto.CallPayload
		if !s.decode(msg.Payload, &p) {
			return
		}
		uri, err := s.directory.CallTarget(p.ID)
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			s.fail("unknown branch")
		case errors.Is(err, apperrors.ErrNoPhone):
			s.fail("this branch has no phone number")
		case err != nil:
			s.fail("could not start the call")
		default:
			s.emit(dto.EvtCall, dto.CallTargetPayload{ID: p.ID, URI: uri})
		}

	case dto.MsgFormField:
		var p dto.FormFieldPayload
		if !s.decode(msg.Payload, &p) {
			return
		}
		if err := s.form.Set(p.Field, p.Value); err != nil {
			s.fail("unknown form field")
			return
		}
		s.emit(dto.EvtFormState, dto.FormStatePayload{State: string(s.form.State())})

	case dto.MsgFormSubmit:
		res := s.form.Submit(ctx)
		if res.Err != nil {
			s.logger.Error("order submit failed", zap.Error(res.Err))
		}
		s.emit(dto.EvtFormResult, dto.OrderResultDTO{Result: res, Draft: s.form.Draft()})

	default:
		s.fail("unknown message type")
	}
}

// Close stops the carousel and any pending map fit.
func (s *Session) Close() {
	s.closeOnce.Do(func() {
		s.rotator.Stop()
		s.directory.Close()
	})
}

func (s *Session) slide(i int) dto.SlidePayload {
	images := s.rotator.Images()
	if i < 0 || i >= len(images) {
		return dto.SlidePayload{Index: i}
	}
	return dto.SlidePayload{Index: i, Image: images[i]}
}

func (s *Session) decode(payload json.RawMessage, v interface{}) bool {
	if len(payload) == 0 {
		s.fail("missing payload")
		return false
	}
	if err := json.Unmarshal(payload, v); err != nil {
		s.fail("malformed payload")
		return false
	}
	return true
}

func (s *Session) fail(message string) {
	s.emit(dto.EvtError, dto.ErrorPayload{Message: message})
}

func (s *Session) emit(eventType string, payload interface{}) {
	if err := s.out.Send(websocket.NewEnvelope(eventType, payload)); err != nil {
		s.logger.Debug("dropping outbound message", zap.String("type", eventType), zap.Error(err))
	}
}
