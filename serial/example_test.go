package serial_test

import (
	"fmt"

	"github.com/bmsexpr/bms/encode"
	"github.com/bmsexpr/bms/gomap"
	"github.com/bmsexpr/bms/ir"
	"github.com/bmsexpr/bms/serial"
)

type person struct {
	name string
	id   int
}

func (p person) Serialize(root *ir.Node) {
	gomap.MustAppendNamed(root, "name", p.name)
	gomap.MustAppendNamed(root, "id", p.id)
}

func ExampleToRoot() {
	n := serial.ToRoot(person{name: "Alice", id: 1}, "person")
	fmt.Print(string(encode.MustBytes(n)))
	// Output: (person (name "Alice") (id 1))
}

func ExampleContainer() {
	root := ir.NewList("people")
	serial.Container(root, []person{{"Alice", 1}, {"Bob", 2}}, "person")
	fmt.Print(string(encode.MustBytes(root)))
	// Output:
	// (people
	//  (person (name "Alice") (id 1))
	//  (person (name "Bob") (id 2))
	// )
}
