package main

import "github.com/radityaputra/intranet-portal/cmd"

func main() {
	cmd.Execute()
}
