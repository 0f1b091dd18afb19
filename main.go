package main

import "github.com/megapark/hotel-backend/cmd"

func main() {
	cmd.Execute()
}
