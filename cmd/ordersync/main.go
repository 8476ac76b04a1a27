package main

import "ordersync/cmd/ordersync/cmd"

func main() {
	cmd.Execute()
}
