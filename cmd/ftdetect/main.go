package main

// main is the entry point for the ftdetect application.
func main() {
	Execute()
}
