package fast

import (
	"fmt"
)

func Example_basicUsage() {
	idx, err := New([]int32{10, 20, 30, 40, 50})
	if err != nil {
		panic(err)
	}

	fmt.Println(idx.Search(25))
	fmt.Println(idx.Search(5))
	fmt.Println(idx.LowerBound(25))
	// Output:
	// 1
	// -1
	// 2
}

func Example_rangeScan() {
	idx, err := New([]int32{1, 4, 9, 16, 25, 36})
	if err != nil {
		panic(err)
	}

	lo := idx.LowerBound(10)
	hi := idx.LowerBound(30)
	for i := lo; i < hi; i++ {
		fmt.Println(idx.KeyAt(i))
	}
	// Output:
	// 16
	// 25
}
