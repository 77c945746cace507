// Package greeter formats greetings.
package greeter

import "fmt"

// Greet returns "Hello, <name>!"
func Greet(name string) string {
	return fmt.Sprintf("Hello, %s!", name)
}
