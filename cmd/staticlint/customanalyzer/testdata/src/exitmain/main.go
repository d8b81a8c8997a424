package main

import (
	"fmt"
	myos "os"
)

func helper() {
	myos.Exit(2)
}

func main() {
	defer fmt.Println("unreachable")
	cleanup := func() {
		myos.Exit(3)
	}
	_ = cleanup
	helper()
	myos.Exit(1) // want "direct os.Exit call in main function of package main"
}
