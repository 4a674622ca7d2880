package main

import "github.com/steelhawks/HawkLib-Reformed/hawk/cmd"

func main() {
	cmd.Execute()
}
