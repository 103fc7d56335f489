// Command montycheck is a small diagnostic driver for package monty: it
// builds a variant for a given modulus and runs a convert-in/compute/
// convert-out round trip, printing the result. It exists to give the
// core arithmetic a runnable entry point outside `go test`, and is the
// one place in the module allowed to do I/O and logging.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/blck-snwmn/monty/monty"
)

func main() {
	var (
		modulus = flag.Uint64("n", 0, "odd modulus, 1 < n < 2^64 (required)")
		a       = flag.Uint64("a", 0, "left operand, 0 <= a < n")
		b       = flag.Uint64("b", 1, "right operand, 0 <= b < n")
		k       = flag.Uint64("k", 0, "if set (>0), print 2^k mod n instead of a*b mod n")
	)
	flag.Parse()

	if *modulus == 0 {
		log.Fatalf("montycheck: -n is required")
	}

	v, err := monty.NewAuto(*modulus)
	if err != nil {
		log.Fatalf("montycheck: constructing variant for modulus %d: %v", *modulus, err)
	}

	if *k > 0 {
		table := monty.NewTwoPowTable[uint64](v, monty.DefaultTableBits)
		result := v.ConvertOut(table.Pow(*k))
		fmt.Printf("2^%d mod %d = %d\n", *k, *modulus, result)
		return
	}

	if *a >= *modulus || *b >= *modulus {
		log.Fatalf("montycheck: a and b must be < n (got a=%d b=%d n=%d)", *a, *b, *modulus)
	}

	ma, mb := v.ConvertIn(*a), v.ConvertIn(*b)
	product := v.ConvertOut(v.Multiply(ma, mb))
	sum := v.ConvertOut(v.Add(ma, mb))
	fmt.Printf("%d * %d mod %d = %d\n", *a, *b, *modulus, product)
	fmt.Printf("%d + %d mod %d = %d\n", *a, *b, *modulus, sum)
}
