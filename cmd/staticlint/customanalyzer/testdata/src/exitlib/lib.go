package exitlib

import "os"

func main() {
	os.Exit(1)
}

// Stop terminates the process.
func Stop() {
	os.Exit(0)
}
