package main

import "github.com/km-arc/go-curp/console"

func main() {
	console.Execute()
}
