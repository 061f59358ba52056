package main

import "github.com/pss-admin/cmd"

func main() {
	cmd.Execute()
}
