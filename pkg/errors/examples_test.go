package errors_test

import (
	"fmt"

	"github.com/psuedomagi/fedcal/pkg/errors"
)

// Example demonstrates telling bad input apart from corrupt data.
func Example() {
	err := errors.NewConversionError([]int{2024}, "unsupported date type", nil)

	switch {
	case errors.IsInvalidInput(err):
		fmt.Println("fix the input")
	case errors.IsDataIntegrity(err):
		fmt.Println("fix the tables")
	}

	// Output: fix the input
}

// Example_integrityError shows the context an integrity failure carries.
func Example_integrityError() {
	err := errors.NewIntegrityError("DOJ", "1987-12-19", "conflicting statuses", "gap", "shutdown")
	fmt.Println(err)

	// Output: data integrity violation for DOJ on 1987-12-19: conflicting statuses [gap shutdown]
}
