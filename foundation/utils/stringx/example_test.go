// File: example_test.go
// Title: Example Functions for stringx Package
// Description: Runnable examples for the documented transforms.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-03-04
//
// Change History:
// - 2025-01-24 v0.1.0: Initial examples
// - 2025-03-04 v0.2.0: Examples for the pattern based transforms

package stringx_test

import (
	"fmt"

	"github.com/msto63/textkit/foundation/utils/stringx"
)

func ExampleToCamelCase() {
	fmt.Println(stringx.ToCamelCase("Hello World"))
	fmt.Println(stringx.ToCamelCase("my_variable_name"))
	// Output:
	// helloWorld
	// myVariableName
}

func ExampleToPascalCase() {
	fmt.Println(stringx.ToPascalCase("HELLO WORLD"))
	// Output: HelloWorld
}

func ExampleToKebabCase() {
	fmt.Println(stringx.ToKebabCase("Hello World"))
	fmt.Println(stringx.ToSnakeCase("Hello World"))
	// Output:
	// hello-world
	// hello_world
}

func ExampleCapitalize() {
	fmt.Println(stringx.Capitalize("hello world_foo"))
	// Output: Hello World_Foo
}

func ExampleSplitWordsByCase() {
	fmt.Println(stringx.SplitWordsByCase("parseHTTPResponse"))
	// Output: parse HTTP Response
}

func ExampleSwapCase() {
	fmt.Println(stringx.SwapCase("Hello World"))
	// Output: hELLO wORLD
}

func ExamplePad() {
	fmt.Printf("%q\n", stringx.PadLeft("Hello World", 13))
	fmt.Printf("%q\n", stringx.Pad("Hello World", 13, "*"))
	// Output:
	// "  Hello World"
	// "*Hello World*"
}

func ExampleTruncate() {
	fmt.Println(stringx.Truncate("Hello World", 8))
	fmt.Println(stringx.TrimLeftRemoving("Hello World", 100))
	// Output:
	// Hello...
	// Hello World
}

func ExampleWithoutAccents() {
	fmt.Println(stringx.WithoutAccents("Crème brûlée"))
	// Output: Creme brulee
}
