package main

import "sales-voucher/cmd"

func main() {
	cmd.Execute()
}
