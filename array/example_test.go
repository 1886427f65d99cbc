package array_test

import (
	"fmt"

	"github.com/katalvlaran/gambase/array"
)

// ExampleArray_Insert demonstrates insertion under a 1-based origin:
// elements at and above the target index shift up by one.
func ExampleArray_Insert() {
	a, _ := array.NewRange[int](1, 3)
	_ = a.Set(1, 10)
	_ = a.Set(2, 20)
	_ = a.Set(3, 30)

	at := a.Insert(15, 2)
	fmt.Println("inserted at:", at)
	for i := a.First(); i <= a.Last(); i++ {
		v, _ := a.Get(i)
		fmt.Printf("a[%d] = %d\n", i, v)
	}

	// Output:
	// inserted at: 2
	// a[1] = 10
	// a[2] = 15
	// a[3] = 20
	// a[4] = 30
}

// ExampleArray_Find shows the origin-tracking sentinel: a missing value
// reports First()-1, whatever the origin happens to be.
func ExampleArray_Find() {
	a, _ := array.NewRange[string](5, 7)
	_ = a.Set(5, "rock")
	_ = a.Set(6, "paper")
	_ = a.Set(7, "scissors")

	fmt.Println("paper at:", a.Find("paper"))
	fmt.Println("lizard at:", a.Find("lizard"))
	fmt.Println("sentinel:", a.First()-1)

	// Output:
	// paper at: 6
	// lizard at: 4
	// sentinel: 4
}

// ExamplePtrIterator walks an array of pointer elements without exposing
// the array's storage.
func ExamplePtrIterator() {
	type player struct{ name string }

	roster, _ := array.New[*player](0)
	roster.Append(&player{"Rose"})
	roster.Append(&player{"Colin"})

	for it := array.NewPtrIterator(roster); !it.AtEnd(); it.Next() {
		fmt.Println(it.Ptr().name)
	}

	// Output:
	// Rose
	// Colin
}
