package dto

import (
	"encoding/json"

	"elaundry/internal/directory"
	"elaundry/internal/entities"
	"elaundry/pkg/geo"
)

// Inbound message types on the live page socket.
const (
	MsgQuery       = "query"
	MsgSelect      = "select"
	MsgResetView   = "reset_view"
	MsgFitBranches = "fit_branches"
	MsgResize      = "resize"
	MsgCall        = "call"
	MsgFormField   = "form_field"
	MsgFormSubmit  = "form_submit"
)

// Outbound envelope types.
const (
	EvtReady      = "ready"
	EvtBranches   = "branches"
	EvtViewport   = "viewport"
	EvtSelection  = "selection"
	EvtSlide      = "slide"
	EvtCall       = "call"
	EvtFormResult = "form_result"
	EvtFormState  = "form_state"
	EvtError      = "error"
)

type ClientMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type QueryPayload struct {
	Query string `json:"query"`
}

type SelectPayload struct {
	ID entities.BranchID `json:"id"`
}

type ResizePayload struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type CallPayload struct {
	ID entities.BranchID `json:"id"`
}

type FormFieldPayload struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

type ReadyPayload struct {
	SessionID string           `json:"session_id"`
	View      DirectoryViewDTO `json:"view"`
	Slide     SlidePayload     `json:"slide"`
}

type BranchesPayload struct {
	Query    string             `json:"query"`
	Shown    int                `json:"shown"`
	Branches []BranchDTO        `json:"branches"`
	Markers  []directory.Marker `json:"markers"`
}

type ViewportPayload struct {
	Reason   directory.Reason `json:"reason"`
	Viewport geo.Viewport     `json:"viewport"`
	Animate  bool             `json:"animate"`
}

type SelectionPayload struct {
	ID     entities.BranchID `json:"id"`
	Marker directory.Marker  `json:"marker"`
}

type SlidePayload struct {
	Index int    `json:"index"`
	Image string `json:"image"`
}

type CallTargetPayload struct {
	ID  entities.BranchID `json:"id"`
	URI string            `json:"uri"`
}

type FormStatePayload struct {
	State string `json:"state"`
}

type ErrorPayload struct {
	Message string `json:"message"`
}
