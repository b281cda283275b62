package shash_test

import (
	"fmt"

	"sorted_hashtable/shash"
)

func ExampleTable() {
	tbl, err := shash.New(1024)
	if err != nil {
		panic(err)
	}
	defer tbl.Destroy()

	tbl.Set("y", "0")
	tbl.Set("j", "1")
	tbl.Set("c", "2")
	tbl.Set("j", "3")

	v, _ := tbl.Get("j")
	fmt.Println(v)
	tbl.Print()
	tbl.PrintReverse()
	// Output:
	// 3
	// {'c': '2', 'j': '3', 'y': '0'}
	// {'y': '0', 'j': '3', 'c': '2'}
}
