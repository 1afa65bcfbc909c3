package equation

import (
	"math"

	"bhaskara/internal/form"
	"bhaskara/internal/quadratic"
)

// SolveRequest is the JSON body for POST /equation/solve. Coefficients are
// raw text so the comma decimal separator and empty fields reach validation
// untouched.
type SolveRequest struct {
	A string `json:"a"`
	B string `json:"b"`
	C string `json:"c"`
}

// SolveResponse is returned for a single equation. On a validation failure
// both roots are quadratic.NotComputed and Alert is set.
type SolveResponse struct {
	A            string      `json:"a"`
	B            string      `json:"b"`
	C            string      `json:"c"`
	Outcome      string      `json:"outcome,omitempty"`
	Discriminant *float64    `json:"discriminant,omitempty"`
	Root1        string      `json:"root1"`
	Root2        string      `json:"root2"`
	ErrorKind    string      `json:"error_kind,omitempty"`
	Alert        *form.Alert `json:"alert,omitempty"`
}

// BatchRequest is the JSON body for POST /equation/batch.
type BatchRequest struct {
	Equations []SolveRequest `json:"equations"`
}

// BatchResponse reports every equation in request order.
type BatchResponse struct {
	Results  []SolveResponse `json:"results"`
	Solved   int             `json:"solved"`
	Rejected int             `json:"rejected"`
}

// InputsRequest is the JSON body for PATCH /forms/{id}/inputs. Omitted
// fields keep their current text.
type InputsRequest struct {
	A *string `json:"a,omitempty"`
	B *string `json:"b,omitempty"`
	C *string `json:"c,omitempty"`
}

// FormResponse is a form session snapshot plus any alerts the last action
// raised.
type FormResponse struct {
	ID string `json:"id"`
	form.Snapshot
	Alerts []form.Alert `json:"alerts,omitempty"`
}

func rejectedResponse(req SolveRequest, err error) SolveResponse {
	return SolveResponse{
		A:         req.A,
		B:         req.B,
		C:         req.C,
		Root1:     quadratic.NotComputed,
		Root2:     quadratic.NotComputed,
		ErrorKind: quadratic.KindName(err),
		Alert: &form.Alert{
			Title:   quadratic.AlertTitle,
			Message: quadratic.UserMessage(err),
		},
	}
}

func solvedResponse(req SolveRequest, out quadratic.Outcome) SolveResponse {
	r1, r2 := out.Display(quadratic.PtBR)
	resp := SolveResponse{
		A:       req.A,
		B:       req.B,
		C:       req.C,
		Outcome: out.Kind.String(),
		Root1:   r1,
		Root2:   r2,
	}
	// JSON has no encoding for NaN or ±Inf.
	if delta := out.Discriminant; !math.IsNaN(delta) && !math.IsInf(delta, 0) {
		resp.Discriminant = &delta
	}
	return resp
}
