// identctl is a small command-line companion for the identkit allocator:
// it allocates identifiers, classifies raw values into regions, checks
// strings against the strict parse grammar, and prints private-use slots.
package main

func main() {
	execute()
}
