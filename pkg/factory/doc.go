// Package factory builds implementations of a capability by name.
//
// A capability contract is a Go interface plus a root Node created with
// NewContract. Implementations are attached to the tree with Provide, either
// directly under the contract or under abstract layers created with Abstract.
// A Factory discovers every concrete implementation reachable from the
// contract, keeps the first implementation seen for each name, and constructs
// one on demand:
//
//	type Reducer interface { Reduce(samples []float64) float64 }
//
//	var Reducers = factory.NewContract[Reducer]("Reducer")
//
//	func init() {
//	    Reducers.Provide("Peak", func(args ...any) (Reducer, error) {
//	        return peak{}, nil
//	    })
//	}
//
//	f := factory.New("reducers", Reducers)
//	r, err := f.Produce(ctx, "Peak")
//
// # Discovery
//
// Discovery runs once, inside New. The resulting index is sealed: providers
// added to the contract afterwards are only visible to factories built later.
// Abstract layers are walked but never indexed. When two implementations
// share a name the first one in traversal order wins and the other is
// dropped; New logs a warning for each drop unless collision warnings are
// disabled.
//
// # Errors
//
// Produce returns a *NameNotRegisteredError (matching ErrNameNotRegistered)
// when the name is unknown. Errors returned by a constructor are passed back
// exactly as the constructor returned them.
package factory
