// Command langstat counts blank, comment, and code lines across a
// source tree by language, the CLI front end for package langstat.
package main

func main() {
	Execute()
}
