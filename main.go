package main

import "github.com/Diogo1912/jobbi/cmd"

func main() {
	cmd.Execute()
}
