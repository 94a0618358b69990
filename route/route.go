// Package route provides the message router object. A router is
// configured with a list of tokens and owns one outlet per token plus
// a final catch-all outlet. Every inbound message is matched against
// the tokens and forwarded on the matching outlet, unmatched traffic
// goes to the catch-all.
package route

import (
	"github.com/dudk/patcher"
	"github.com/dudk/patcher/object"
)

// Type is the registry tag of the router.
const Type = "route"

func init() {
	object.Register(Type, func() object.Object {
		return &Route{}
	})
}

// Route classifies and forwards messages by token match. Matching is
// first-match-wins, case-sensitive, exact string equality. Duplicate
// tokens are legal, the earliest index wins.
type Route struct {
	object.Base
	tokens []string
}

// Type implements object.Object.
func (r *Route) Type() string {
	return Type
}

// Construct declares the single inlet with all four message handlers.
func (r *Route) Construct() {
	in := r.AddInlet()
	in.OnBang(r.onBang)
	in.OnInt(r.onInt)
	in.OnFloat(r.onFloat)
	in.OnList(r.onList)
}

// ParamClear drops the token list.
func (r *Route) ParamClear() {
	r.tokens = nil
}

// ParamParse tokenizes arguments and grows outlets to one per token
// plus the catch-all. Outlets are never removed, so connections made
// on existing outlets survive a re-parse with a longer token list.
func (r *Route) ParamParse(args string) error {
	r.tokens = object.Tokens(args)
	for r.NumOutlets() < len(r.tokens)+1 {
		r.AddOutlet()
	}
	return nil
}

func (r *Route) onBang() {
	for i := range r.tokens {
		if r.tokens[i] == "bang" {
			r.Outlet(i).SendBang()
			return
		}
	}
	r.catchAll().SendBang()
}

func (r *Route) onInt(value int) {
	s := patcher.IntToken(value)
	for i := range r.tokens {
		if r.tokens[i] == s {
			r.Outlet(i).SendInt(value)
			return
		}
	}
	r.catchAll().SendInt(value)
}

func (r *Route) onFloat(value float32) {
	s := patcher.FloatToken(value)
	for i := range r.tokens {
		if r.tokens[i] == s {
			r.Outlet(i).SendFloat(value)
			return
		}
	}
	r.catchAll().SendFloat(value)
}

// onList matches on the first token of the payload only, but
// forwards the payload whole.
func (r *Route) onList(payload string) {
	token := patcher.FirstToken(payload)
	for i := range r.tokens {
		if r.tokens[i] == token {
			r.Outlet(i).SendList(payload)
			return
		}
	}
	r.catchAll().SendList(payload)
}

func (r *Route) catchAll() *object.Outlet {
	return r.Outlet(r.NumOutlets() - 1)
}
