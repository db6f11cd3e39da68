package radix

import (
	"fmt"
	"strings"
)

// Grammar returns the PEG grammar of the numbers accepted in base b.
// Any Unicode white space is accepted as Space.
//
// Grammar panics if b is not a valid base.
func Grammar(b Base) string {
	if !b.IsValid() {
		panic(fmt.Sprintf("Grammar(%v) failed: %v", b, &RangeError{Base: int(b)}))
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "Start     <- Space* (IntPart ('%[1]c' FractPart?)? / '%[1]c' FractPart?)?\n", DecimalPoint)
	sb.WriteString("IntPart   <- Digit+\n")
	sb.WriteString("FractPart <- Digit+\n")
	fmt.Fprintf(&sb, "Digit     <- [%v]", b.Digits())
	return sb.String()
}

// Record returns the line describing a conversion of input written in
// base from to result written in base to, for example:
//
//	0.5_{10} = 0.1_{2}
func Record(input string, from Base, result string, to Base) string {
	return fmt.Sprintf("%v_{%v} = %v_{%v}", input, from, result, to)
}
