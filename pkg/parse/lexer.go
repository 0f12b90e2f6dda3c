package parse

import (
	"fmt"
	"math/big"

	"github.com/mathsteps-go/mathsteps/pkg/expr"
)

// constantFromLiteral turns a decimal or integer literal ("3", "0.25")
// into an exact-rational Constant. big.Rat.SetString already parses
// decimal notation into an exact fraction, so no float ever enters.
func constantFromLiteral(lit string) (*expr.Constant, error) {
	v, ok := new(big.Rat).SetString(lit)
	if !ok {
		return nil, fmt.Errorf("not a valid number")
	}
	return &expr.Constant{Value: v}, nil
}
