package main

import "booking-app/cmd"

func main() {
	cmd.Execute()
}
