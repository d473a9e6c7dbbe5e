package fedcal_test

import (
	"fmt"

	"github.com/psuedomagi/fedcal"
	"github.com/psuedomagi/fedcal/pkg/depts"
)

func ExampleNew() {
	cal, err := fedcal.New()
	if err != nil {
		panic(err)
	}

	statuses, err := cal.Resolve("2013-10-05")
	if err != nil {
		panic(err)
	}
	fmt.Println(len(statuses), statuses.AnyShutdown(), statuses.AllFunded())
	// Output: 17 true false
}

func ExampleClient_resolve() {
	cal, err := fedcal.New()
	if err != nil {
		panic(err)
	}

	statuses, err := cal.Resolve("2019-01-01", depts.DOD, depts.DHS)
	if err != nil {
		panic(err)
	}
	fmt.Println("DOD:", statuses[depts.DOD].Readable())
	fmt.Println("DHS:", statuses[depts.DHS].Readable())
	// Output:
	// DOD: open, full year approps
	// DHS: closed, shutdown
}

func ExampleClient_timeline() {
	cal, err := fedcal.New()
	if err != nil {
		panic(err)
	}

	snapshots, err := cal.Timeline("2013-09-25", "2013-10-20", depts.DOD)
	if err != nil {
		panic(err)
	}
	for _, snap := range snapshots {
		fmt.Printf("%s..%s %s\n", snap.Day, snap.Through, snap.Statuses[depts.DOD].Readable())
	}
	// Output:
	// 2013-09-25..2013-09-30 open, full year approps
	// 2013-10-01..2013-10-16 closed, shutdown
	// 2013-10-17..2013-10-20 open with limits, continuing resolution
}

func ExampleClient_departmentsActiveOn() {
	cal, err := fedcal.New()
	if err != nil {
		panic(err)
	}

	before, _ := cal.DepartmentsActiveOn("2002-11-24")
	after, _ := cal.DepartmentsActiveOn("2002-11-25")
	fmt.Println(before.Len(), before.Has(depts.DHS))
	fmt.Println(after.Len(), after.Has(depts.DHS))
	// Output:
	// 16 false
	// 17 true
}
