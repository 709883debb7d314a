/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package main

import (
	"github.com/muninnlabs/muninn/cmd/muninn/cmd"
)

func main() {
	cmd.Execute()
}
